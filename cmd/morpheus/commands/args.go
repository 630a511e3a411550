package commands

import (
	"fmt"

	"github.com/concave-dev/morpheus-cli/internal/logging"
	"github.com/spf13/cobra"
)

// exactArgs requires exactly n arguments, printing help otherwise.
func exactArgs(n int, what string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			cmd.Help()
			fmt.Fprintln(cmd.OutOrStdout())
			logging.Error("Invalid arguments: expected %s, got %d argument(s)", what, len(args))
			return fmt.Errorf("requires exactly %d argument(s) (%s)", n, what)
		}
		return nil
	}
}

// minArgs requires at least n arguments, printing help otherwise.
func minArgs(n int, what string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			cmd.Help()
			fmt.Fprintln(cmd.OutOrStdout())
			logging.Error("Invalid arguments: expected %s", what)
			return fmt.Errorf("requires at least %d argument(s) (%s)", n, what)
		}
		return nil
	}
}
