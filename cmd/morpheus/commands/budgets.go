package commands

import (
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/config"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/resources"
	"github.com/spf13/cobra"
)

// SetupBudgetFlags configures the scope reference flags of budgets add and update.
// Giving one of them sets the budget scope accordingly.
func SetupBudgetFlags() {
	rc := GetResourceCommand(resources.Budgets.Name)
	for _, cmd := range []*cobra.Command{rc.Add, rc.Update} {
		cmd.Flags().StringVar(&config.Budget.Group, "group", "", "Group name or ID (scope group)")
		cmd.Flags().StringVar(&config.Budget.Cloud, "cloud", "", "Cloud name or ID (scope cloud)")
		cmd.Flags().StringVar(&config.Budget.User, "user", "", "Username or ID (scope user)")
	}
	rc.Add.Example = `  # Yearly budget for the whole tenant
  morpheus budgets add tenant-2026 --year 2026 --costs 120000

  # Quarterly budget for a group, the same cost each quarter
  morpheus budgets add dev-quarterly --group dev --interval quarter --costs 5000

  # Monthly budget for a cloud
  morpheus budgets add aws-monthly --cloud aws --interval month --costs 1000,1000,1200,1200,1200,1500,1500,1500,1200,1200,1000,1000`
}
