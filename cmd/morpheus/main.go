// Package main provides the entry point for the morpheus CLI.
//
// The main package wires the command tree from the commands package to the
// handlers package: it sets up flags, assigns RunE functions and resolves the
// target appliance before any command that talks to one. Handlers return
// errors; main prints each error once and turns it into the exit code
// (0 success, 1 error or not found, 9 aborted confirmation).
package main

import (
	"os"

	"github.com/concave-dev/morpheus-cli/cmd/morpheus/commands"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/config"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/display"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/handlers"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/resources"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/utils"
	"github.com/spf13/cobra"
)

func init() {
	// Get root command from commands package
	rootCmd := commands.RootCmd

	// Set version and validation
	rootCmd.Version = config.Version
	rootCmd.PersistentPreRunE = prepareCommand

	// Setup all command structures
	commands.SetupCommands()
	commands.SetupRemoteCommands()

	// Setup flags
	commands.SetupGlobalFlags(rootCmd)
	commands.SetupBudgetFlags()
	commands.SetupInvoiceFlags()

	// Setup command handlers
	setupCommandHandlers()
}

// prepareCommand validates global flags and, for commands that talk to an
// appliance, resolves its URL and token.
func prepareCommand(cmd *cobra.Command, args []string) error {
	if err := config.ValidateGlobalFlags(cmd, args); err != nil {
		return err
	}
	utils.SetupLogging()

	if commands.IsLocal(cmd) {
		return nil
	}
	return config.ResolveAppliance()
}

// Resource-specific pipeline hooks
var resourceHooks = map[string]handlers.Hooks{
	resources.Budgets.Name:  handlers.BudgetHooks,
	resources.Invoices.Name: handlers.InvoiceHooks,
}

// setupCommandHandlers assigns RunE functions to commands
func setupCommandHandlers() {
	for _, rc := range commands.GetResourceCommands() {
		res := rc.Resource
		hooks := resourceHooks[res.Name]

		rc.List.RunE = handlers.List(res, hooks)
		rc.Get.RunE = handlers.Get(res, hooks)
		if rc.Add != nil {
			rc.Add.RunE = handlers.Add(res, hooks)
			rc.Update.RunE = handlers.Update(res, hooks)
			rc.Remove.RunE = handlers.Remove(res)
		}
	}

	// Invoices are fetched by ID only and have a refresh action
	commands.GetResourceCommand(resources.Invoices.Name).Get.RunE = handlers.GetInvoice
	commands.GetInvoiceRefreshCommand().RunE = handlers.RefreshInvoices

	commands.GetWhoamiCommand().RunE = handlers.Whoami

	listCmd, addCmd, useCmd, removeCmd, currentCmd, setTokenCmd := commands.GetRemoteCommands()
	listCmd.RunE = handlers.ListRemotes
	addCmd.RunE = handlers.AddRemote
	useCmd.RunE = handlers.UseRemote
	removeCmd.RunE = handlers.RemoveRemote
	currentCmd.RunE = handlers.CurrentRemote
	setTokenCmd.RunE = handlers.SetRemoteToken
}

// main is the main entry point
func main() {
	err := commands.RootCmd.Execute()
	code := handlers.ExitCode(err)
	if err != nil && code != handlers.ExitAborted {
		display.PrintError(os.Stderr, err)
	}
	os.Exit(code)
}
