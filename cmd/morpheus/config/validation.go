package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/concave-dev/morpheus-cli/internal/appliances"
	"github.com/concave-dev/morpheus-cli/internal/logging"
	"github.com/concave-dev/morpheus-cli/internal/validate"
	"github.com/spf13/cobra"
)

// ValidOutputs lists the supported output formats.
var ValidOutputs = []string{"table", "json", "yaml", "csv"}

// ValidateGlobalFlags validates all global flags before running any command
func ValidateGlobalFlags(cmd *cobra.Command, args []string) error {
	if err := logging.ValidateLogLevel(strings.ToUpper(Global.LogLevel)); err != nil {
		return fmt.Errorf("%w - valid levels: DEBUG, INFO, WARN, ERROR", err)
	}

	if err := ValidateOutputFormat(); err != nil {
		return err
	}

	if err := validate.ValidateField(Global.Timeout, "min=1,max=3600"); err != nil {
		return fmt.Errorf("timeout must be between 1 and 3600 seconds")
	}

	if err := validate.ValidateNonNegative(List.Max, "max"); err != nil {
		return err
	}
	if err := validate.ValidateNonNegative(List.Offset, "offset"); err != nil {
		return err
	}
	if err := validate.ValidateNonNegative(List.Refresh, "refresh"); err != nil {
		return err
	}
	if d := strings.ToLower(List.Direction); d != "" && d != "asc" && d != "desc" {
		return fmt.Errorf("invalid sort direction '%s' - valid: asc, desc", List.Direction)
	}

	return nil
}

// ValidateOutputFormat folds the --json/--yaml/--csv shorthands into Global.Output
// and validates the result.
func ValidateOutputFormat() error {
	shorthands := 0
	for _, set := range []struct {
		on     bool
		format string
	}{{Global.JSON, "json"}, {Global.YAML, "yaml"}, {Global.CSV, "csv"}} {
		if set.on {
			shorthands++
			Global.Output = set.format
		}
	}
	if shorthands > 1 {
		return fmt.Errorf("only one of --json, --yaml, --csv may be given")
	}

	Global.Output = strings.ToLower(Global.Output)
	for _, valid := range ValidOutputs {
		if Global.Output == valid {
			return nil
		}
	}
	logging.Error("Invalid output format '%s' - valid formats are: %s", Global.Output, strings.Join(ValidOutputs, ", "))
	return fmt.Errorf("invalid output format - valid: %s", strings.Join(ValidOutputs, ", "))
}

// ResolveAppliance determines the appliance URL and token for this invocation.
// Precedence for the URL: --url, --remote, the active registered appliance,
// then MORPHEUS_URL. Precedence for the token: --token, MORPHEUS_API_TOKEN,
// then the token stored for the appliance.
func ResolveAppliance() error {
	target := Global.URL
	name := ""

	if target == "" {
		reg, err := appliances.Load()
		if err != nil {
			return err
		}

		var app *appliances.Appliance
		if Global.Remote != "" {
			app, err = reg.Get(Global.Remote)
			if err != nil {
				return fmt.Errorf("remote '%s' is not registered - see 'morpheus remote add'", Global.Remote)
			}
		} else {
			app = reg.Active()
		}

		if app != nil {
			target = app.URL
			name = app.Name
			Global.Insecure = Global.Insecure || app.Insecure
		} else {
			target = os.Getenv(URLEnvVar)
		}
	}

	if target == "" {
		return fmt.Errorf("no appliance configured - use --url, set %s, or run 'morpheus remote add'", URLEnvVar)
	}

	u, err := validate.ParseApplianceURL(target)
	if err != nil {
		return err
	}
	Global.ApplianceURL = u
	Global.ApplianceName = name

	token := Global.Token
	if token == "" {
		token = os.Getenv(TokenEnvVar)
	}
	if token == "" && name != "" {
		token, err = appliances.LoadToken(name)
		if err != nil {
			logging.Warn("Failed to load token for remote '%s': %v", name, err)
		}
	}
	Global.AccessToken = token

	logging.Debug("Targeting appliance %s (%s)", u, name)
	return nil
}
