package handlers

import (
	"net/http"
	"strings"

	"github.com/concave-dev/morpheus-cli/cmd/morpheus/client"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/config"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/display"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/utils"
	"github.com/spf13/cobra"
)

var whoamiColumns = []display.Column{
	{Header: "ID", Path: "id"},
	{Header: "Username", Path: "username"},
	{Header: "Name", Value: func(u map[string]any) string {
		first, last := utils.GetString(u, "firstName"), utils.GetString(u, "lastName")
		if first != "" && last != "" {
			return first + " " + last
		}
		return first + last
	}},
	{Header: "Email", Path: "email"},
	{Header: "Tenant", Path: "account.name"},
	{Header: "Roles", Value: func(u map[string]any) string {
		var roles []string
		for _, r := range utils.GetMapSlice(u, "roles") {
			roles = append(roles, utils.GetString(r, "authority"))
		}
		return strings.Join(roles, ", ")
	}},
}

var applianceColumns = []display.Column{
	{Header: "Name", Value: func(map[string]any) string { return config.Global.ApplianceName }},
	{Header: "URL", Value: func(map[string]any) string { return config.Global.ApplianceURL }},
	{Header: "Version", Path: "buildVersion"},
}

// Whoami shows the user the access token belongs to, and the appliance.
func Whoami(cmd *cobra.Command, args []string) error {
	s := newSession(cmd)

	req := client.Request{Method: http.MethodGet, Path: "/api/whoami"}
	resp, dry, err := s.send(req, "Loading current user")
	if err != nil || dry {
		return err
	}
	if display.Structured() {
		return s.printStructured(resp, "user")
	}

	user := utils.GetMap(resp, "user")
	cols := display.ColumnsFor(config.Global.Fields, whoamiColumns)
	if config.Global.Output == "csv" {
		display.PrintCSV(s.out, cols, []map[string]any{user})
		return nil
	}

	display.PrintTitle(s.out, "Current User")
	display.PrintDetails(s.out, cols, user, config.Global.Verbose)

	display.PrintSection(s.out, "Appliance")
	appliance := utils.GetMap(resp, "appliance")
	if appliance == nil {
		appliance = map[string]any{}
	}
	display.PrintDetails(s.out, applianceColumns, appliance, config.Global.Verbose)
	return nil
}
