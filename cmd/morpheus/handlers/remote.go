package handlers

import (
	"fmt"
	"strings"

	"github.com/concave-dev/morpheus-cli/cmd/morpheus/config"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/display"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/utils"
	"github.com/concave-dev/morpheus-cli/internal/appliances"
	"github.com/concave-dev/morpheus-cli/internal/logging"
	"github.com/spf13/cobra"
)

func tokenState(name string) string {
	token, err := appliances.LoadToken(name)
	if err != nil || token == "" {
		return ""
	}
	return "stored"
}

var remoteColumns = []display.Column{
	{Header: "Name", Path: "name"},
	{Header: "URL", Path: "url"},
	{Header: "Insecure", Path: "insecure"},
	{Header: "Token", Value: func(r map[string]any) string { return tokenState(utils.GetString(r, "name")) }},
	{Header: "Active", Value: func(r map[string]any) string {
		if utils.GetBool(r, "active") {
			return "*"
		}
		return ""
	}},
}

func applianceRecord(a appliances.Appliance) map[string]any {
	return map[string]any{"name": a.Name, "url": a.URL, "insecure": a.Insecure, "active": a.Active}
}

// ListRemotes lists the registered appliances.
func ListRemotes(cmd *cobra.Command, args []string) error {
	s := newLocalSession(cmd)
	reg, err := appliances.Load()
	if err != nil {
		return err
	}

	records := make([]map[string]any, 0, len(reg.Appliances))
	for _, a := range reg.Appliances {
		records = append(records, applianceRecord(a))
	}

	if display.Structured() {
		items := make([]any, 0, len(records))
		for _, r := range records {
			items = append(items, r)
		}
		return s.printStructured(map[string]any{"remotes": items}, "remotes")
	}
	if config.Global.Output == "csv" {
		display.PrintCSV(s.out, remoteColumns, records)
		return nil
	}

	display.PrintTitle(s.out, "Morpheus Remotes", reg.Path())
	if len(records) == 0 {
		display.PrintEmpty(s.out, "remotes")
		return nil
	}
	display.PrintTable(s.out, remoteColumns, records, nil)
	return nil
}

// AddRemote registers an appliance as NAME at URL.
func AddRemote(cmd *cobra.Command, args []string) error {
	s := newLocalSession(cmd)
	name, rawURL := args[0], args[1]

	reg, err := appliances.Load()
	if err != nil {
		return err
	}
	app, err := reg.Add(name, rawURL, config.Global.Insecure)
	if err != nil {
		return err
	}
	if config.Remote.Use {
		if err := reg.Use(name); err != nil {
			return err
		}
	}
	if err := reg.Save(); err != nil {
		return err
	}

	logging.Debug("Registered remote %s at %s", name, app.URL)
	display.Success(s.out, "Added remote %s (%s)", name, app.URL)
	if active := reg.Active(); active != nil && active.Name == name {
		display.Success(s.out, "Remote %s is now active", name)
	}
	return nil
}

// UseRemote makes NAME the active appliance.
func UseRemote(cmd *cobra.Command, args []string) error {
	s := newLocalSession(cmd)
	reg, err := appliances.Load()
	if err != nil {
		return err
	}
	if err := reg.Use(args[0]); err != nil {
		return fmt.Errorf("remote '%s' is not registered", args[0])
	}
	if err := reg.Save(); err != nil {
		return err
	}
	display.Success(s.out, "Remote %s is now active", args[0])
	return nil
}

// RemoveRemote unregisters NAME and clears its stored token.
func RemoveRemote(cmd *cobra.Command, args []string) error {
	s := newLocalSession(cmd)
	defer s.close()
	name := args[0]

	reg, err := appliances.Load()
	if err != nil {
		return err
	}
	if _, err := reg.Get(name); err != nil {
		return fmt.Errorf("remote '%s' is not registered", name)
	}

	if err := s.confirm(fmt.Sprintf("Are you sure you want to remove the remote %s?", name)); err != nil {
		return err
	}

	if err := reg.Remove(name); err != nil {
		return err
	}
	if err := reg.Save(); err != nil {
		return err
	}
	if err := appliances.ClearToken(name); err != nil {
		logging.Warn("Failed to clear token for %s: %v", name, err)
	}
	display.Success(s.out, "Remote %s removed", name)
	return nil
}

// CurrentRemote prints the active appliance.
func CurrentRemote(cmd *cobra.Command, args []string) error {
	s := newLocalSession(cmd)
	reg, err := appliances.Load()
	if err != nil {
		return err
	}
	active := reg.Active()
	if active == nil {
		return fmt.Errorf("no active remote - see 'morpheus remote use'")
	}

	if display.Structured() {
		return s.printStructured(map[string]any{"remote": applianceRecord(*active)}, "remote")
	}
	display.PrintDetails(s.out, remoteColumns, applianceRecord(*active), config.Global.Verbose)
	return nil
}

// SetRemoteToken stores the API token for NAME, taken from --token or
// prompted for without echo.
func SetRemoteToken(cmd *cobra.Command, args []string) error {
	s := newLocalSession(cmd)
	defer s.close()
	name := args[0]

	reg, err := appliances.Load()
	if err != nil {
		return err
	}
	if _, err := reg.Get(name); err != nil {
		return fmt.Errorf("remote '%s' is not registered", name)
	}

	token := strings.TrimSpace(config.Global.Token)
	if token == "" {
		p := s.prompter()
		if p == nil {
			return fmt.Errorf("missing required option --token")
		}
		answer, err := p.Password("API Token: ")
		if err != nil {
			return err
		}
		token = strings.TrimSpace(answer)
	}
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}

	if err := appliances.StoreToken(name, token); err != nil {
		return err
	}
	display.Success(s.out, "Stored token for remote %s", name)
	return nil
}
