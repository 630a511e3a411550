package commands

import (
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/config"
	"github.com/spf13/cobra"
)

// Remote command (parent command for the appliance registry)
var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Manage registered appliances",
	Long: `Commands for the local registry of Morpheus appliances.

Registered appliances live in $MORPHEUS_HOME/appliances.yaml (default
~/.morpheus). Commands target the active appliance unless --remote or --url
says otherwise. API tokens are kept in the OS keyring.`,
	Annotations: map[string]string{LocalAnnotation: "true"},
}

var remoteListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List registered appliances",
	Args:    cobra.NoArgs,
}

var remoteAddCmd = &cobra.Command{
	Use:   "add <name> <url>",
	Short: "Register an appliance",
	Long: `Register an appliance under a local name. The first appliance registered
becomes active.`,
	Example: `  # Register and switch to an appliance
  morpheus remote add lab https://morpheus.lab.example.com --use

  # Appliance with a self-signed certificate (remembered for later commands)
  morpheus remote add dev https://10.0.0.5 --insecure`,
	Args: exactArgs(2, "remote name and URL"),
}

var remoteUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Make an appliance active",
	Args:  exactArgs(1, "remote name"),
}

var remoteRemoveCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Unregister an appliance and forget its token",
	Args:    exactArgs(1, "remote name"),
}

var remoteCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the active appliance",
	Args:  cobra.NoArgs,
}

var remoteSetTokenCmd = &cobra.Command{
	Use:   "set-token <name>",
	Short: "Store the API token of an appliance",
	Long: `Store the API token of an appliance in the OS keyring, or in a file under
$MORPHEUS_HOME when no keyring is available. The token is prompted for
without echo unless --token is given.`,
	Example: `  # Prompt for the token
  morpheus remote set-token lab

  # Non-interactive
  morpheus remote set-token lab --token "$TOKEN" -N`,
	Args: exactArgs(1, "remote name"),
}

// SetupRemoteCommands initializes remote commands and their flags
func SetupRemoteCommands() {
	remoteCmd.AddCommand(remoteListCmd, remoteAddCmd, remoteUseCmd,
		remoteRemoveCmd, remoteCurrentCmd, remoteSetTokenCmd)

	remoteAddCmd.Flags().BoolVar(&config.Remote.Use, "use", false, "Make the appliance active")
}

// GetRemoteCommands returns the remote command structures for handler assignment
func GetRemoteCommands() (list, add, use, remove, current, setToken *cobra.Command) {
	return remoteListCmd, remoteAddCmd, remoteUseCmd, remoteRemoveCmd, remoteCurrentCmd, remoteSetTokenCmd
}
