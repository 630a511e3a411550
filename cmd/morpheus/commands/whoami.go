package commands

import "github.com/spf13/cobra"

// Whoami command
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current user and appliance",
	Long: `Show the user the access token belongs to, along with the appliance the
command was sent to. Useful to check that a remote and its token work.`,
	Example: `  # Check the active remote
  morpheus whoami

  # Check another remote
  morpheus whoami --remote prod`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// GetWhoamiCommand returns the whoami command for handler assignment
func GetWhoamiCommand() *cobra.Command {
	return whoamiCmd
}
