// Package commands provides the command tree of the morpheus CLI.
//
// Commands are organised by resource, each with the same verbs, in the style
// of kubectl:
//   - budgets, networks, network-groups, clouds, groups, users, roles,
//     tenants, policies, key-pairs, environments: list, get, add, update, remove
//   - invoices: list, get, refresh
//   - whoami: the current user
//   - remote: the local registry of appliances
//
// This package only declares commands and flags. Handlers are attached by the
// main package so the tree can be built and inspected without side effects.
package commands

import (
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/config"
	"github.com/spf13/cobra"
)

// LocalAnnotation marks commands that never contact an appliance.
const LocalAnnotation = "morpheus.local"

// Root command
var RootCmd = &cobra.Command{
	Use:   "morpheus",
	Short: "Command-line client for the Morpheus cloud management platform",
	Long: `morpheus is a command-line client for Morpheus appliances.

Every resource has list, get, add, update and remove commands. Add prompts for
missing fields unless --no-prompt is given; any command can print its request
instead of sending it with --dry-run.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Example: `  # Register an appliance and store its API token
  morpheus remote add lab https://morpheus.example.com --use
  morpheus remote set-token lab

  # List budgets
  morpheus budgets list

  # Show a cloud by name or ID
  morpheus clouds get aws-east

  # Add a group without prompting
  morpheus groups add dev --location us-east -N

  # Print the request instead of sending it
  morpheus networks remove lab-net -d

  # Output in JSON format
  morpheus -o json users list --max 100`,
}

// SetupCommands initializes all commands and their relationships
func SetupCommands() {
	for _, rc := range resourceCommands() {
		RootCmd.AddCommand(rc.Parent)
	}
	RootCmd.AddCommand(whoamiCmd)
	RootCmd.AddCommand(remoteCmd)
}

// SetupGlobalFlags configures all global persistent flags
func SetupGlobalFlags(rootCmd *cobra.Command) {
	flags := rootCmd.PersistentFlags()
	g := &config.Global

	flags.StringVar(&g.Remote, "remote", "", "Registered appliance to use instead of the active one")
	flags.StringVar(&g.URL, "url", "", "Appliance URL, overrides --remote and "+config.URLEnvVar)
	flags.StringVar(&g.Token, "token", "", "API access token, overrides "+config.TokenEnvVar)
	flags.BoolVar(&g.Insecure, "insecure", false, "Skip TLS certificate verification")
	flags.IntVar(&g.Timeout, "timeout", config.DefaultTimeout, "Request timeout in seconds")
	flags.StringVar(&g.LogLevel, "log-level", config.DefaultLogLevel, "Log level: DEBUG, INFO, WARN, ERROR")
	flags.BoolVarP(&g.Verbose, "verbose", "v", false, "Show verbose output, including empty fields and error bodies")

	flags.StringVarP(&g.Output, "output", "o", config.DefaultOutput, "Output format: table, json, yaml, csv")
	flags.BoolVar(&g.JSON, "json", false, "Shorthand for --output=json")
	flags.BoolVar(&g.YAML, "yaml", false, "Shorthand for --output=yaml")
	flags.BoolVar(&g.CSV, "csv", false, "Shorthand for --output=csv")
	flags.StringSliceVar(&g.Fields, "fields", nil, "Fields to render, as dot paths (e.g. id,name,zone.name)")

	flags.BoolVarP(&g.Quiet, "quiet", "q", false, "Suppress success messages")
	flags.BoolVarP(&g.DryRun, "dry-run", "d", false, "Print the request instead of sending it")
	flags.BoolVarP(&g.NoPrompt, "no-prompt", "N", false, "Never prompt; use flags and defaults only")
	flags.BoolVarP(&g.Yes, "yes", "y", false, "Skip confirmation prompts")
}

// IsLocal reports whether cmd, or a parent, never contacts an appliance.
// Help and shell completion are always local.
func IsLocal(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "help" || c.Name() == "completion" {
			return true
		}
		if _, ok := c.Annotations[LocalAnnotation]; ok {
			return true
		}
	}
	return false
}
