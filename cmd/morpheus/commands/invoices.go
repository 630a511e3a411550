package commands

import (
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/config"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/resources"
	"github.com/spf13/cobra"
)

// Invoice refresh command
var invoiceRefreshCmd = &cobra.Command{
	Use:   "refresh [flags]",
	Short: "Recalculate invoices",
	Long: `Ask the appliance to recalculate invoices for some clouds, or for all
clouds with --all. The refresh runs in the background on the appliance.`,
	Example: `  # Refresh this month's invoices for two clouds
  morpheus invoices refresh --clouds aws,azure

  # Refresh January for every cloud without confirmation
  morpheus invoices refresh --all --period 202601 -y`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// GetInvoiceRefreshCommand returns the refresh command for handler assignment
func GetInvoiceRefreshCommand() *cobra.Command {
	return invoiceRefreshCmd
}

// SetupInvoiceFlags configures the billing filters of invoices list, get and refresh
func SetupInvoiceFlags() {
	rc := GetResourceCommand(resources.Invoices.Name)
	inv := &config.Invoice

	list := rc.List.Flags()
	list.StringVar(&inv.RefType, "type", "", "Invoice type: cloud, group, instance, server, user, tenant")
	list.Int64Var(&inv.RefID, "ref-id", 0, "ID of the invoiced object, combined with --type")
	list.StringVar(&inv.Cloud, "cloud", "", "Cloud name or ID")
	list.StringVar(&inv.Group, "group", "", "Group name or ID")
	list.StringVar(&inv.Instance, "instance", "", "Instance name or ID")
	list.StringVar(&inv.Server, "server", "", "Server name or ID")
	list.StringVar(&inv.User, "user", "", "Username or ID")
	list.StringVar(&inv.Start, "start", "", "Start date, YYYY-MM-DD")
	list.StringVar(&inv.End, "end", "", "End date, YYYY-MM-DD")
	list.StringVar(&inv.Period, "period", "", "Billing period, YYYYMM")
	list.BoolVar(&inv.Active, "active", false, "Only active (or with =false, inactive) invoices")
	list.BoolVar(&inv.Estimate, "estimate", false, "Only estimates (or with =false, actual invoices)")
	list.BoolVar(&inv.Totals, "totals", false, "Show a totals row")
	rc.List.Example = `  # Invoices for a cloud in January
  morpheus invoices list --cloud aws --period 202601 --totals

  # Group invoices over a date range
  morpheus invoices list --type group --start 2026-01-01 --end 2026-03-31`

	rc.Get.Flags().BoolVar(&inv.LineItems, "line-items", false, "Include invoice line items")

	refresh := invoiceRefreshCmd.Flags()
	refresh.StringSliceVar(&inv.Clouds, "clouds", nil, "Cloud names or IDs to refresh")
	refresh.BoolVar(&inv.All, "all", false, "Refresh every cloud")
	refresh.StringVar(&inv.Period, "period", "", "Billing period to refresh, YYYYMM (default current)")
}
