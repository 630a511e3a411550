package resources

import (
	"fmt"
	"strings"

	"github.com/concave-dev/morpheus-cli/cmd/morpheus/display"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/utils"
)

// invoiceRefTypes maps --type aliases to appliance invoice refTypes.
var invoiceRefTypes = map[string]string{
	"cloud":    "ComputeZone",
	"zone":     "ComputeZone",
	"group":    "ComputeSite",
	"site":     "ComputeSite",
	"instance": "Instance",
	"server":   "ComputeServer",
	"host":     "ComputeServer",
	"user":     "User",
	"tenant":   "Account",
	"account":  "Account",
}

// InvoiceRefType resolves a --type alias (or an appliance refType given
// verbatim) to the refType sent to the appliance.
func InvoiceRefType(alias string) (string, error) {
	if refType, ok := invoiceRefTypes[strings.ToLower(alias)]; ok {
		return refType, nil
	}
	for _, refType := range invoiceRefTypes {
		if strings.EqualFold(alias, refType) {
			return refType, nil
		}
	}
	return "", fmt.Errorf("invalid invoice type '%s' - valid: cloud, group, instance, server, user, tenant", alias)
}

// InvoiceTypeLabel renders an appliance refType for display.
func InvoiceTypeLabel(refType string) string {
	switch refType {
	case "ComputeZone":
		return "Cloud"
	case "ComputeSite":
		return "Group"
	case "ComputeServer":
		return "Server"
	case "Account":
		return "Tenant"
	}
	return refType
}

var invoiceTypeCol = display.Column{Header: "Type", Value: func(r map[string]any) string {
	return InvoiceTypeLabel(utils.GetString(r, "refType"))
}}

var invoicePeriodCol = display.Column{Header: "Period", Value: func(r map[string]any) string {
	return utils.FormatPeriod(utils.GetPathString(r, "period"))
}}

var Invoices = register(&Resource{
	Name:     "invoices",
	Label:    "Invoice",
	Singular: "invoice",
	Plural:   "invoices",
	Path:     "/api/invoices",
	Key:      "invoice",
	ListKey:  "invoices",
	Columns: []display.Column{
		idCol, invoiceTypeCol, col("Name", "refName"), invoicePeriodCol,
		dateCol("Start", "startDate"), dateCol("End", "endDate"),
		col("Active", "active"), col("Estimate", "estimate"),
		currencyCol("Cost", "totalCost"), currencyCol("Price", "totalPrice"),
	},
	Details: []display.Column{
		idCol, invoiceTypeCol, col("Ref ID", "refId"), col("Name", "refName"),
		col("Cloud", "cloud.name"), col("Group", "group.name"), col("Instance", "instance.name"),
		col("Server", "server.name"), col("User", "user.username"), col("Tenant", "account.name"),
		invoicePeriodCol, dateCol("Start", "startDate"), dateCol("End", "endDate"),
		col("Active", "active"), col("Estimate", "estimate"),
		currencyCol("Compute Cost", "computeCost"), currencyCol("Storage Cost", "storageCost"),
		currencyCol("Network Cost", "networkCost"), currencyCol("Extra Cost", "extraCost"),
		currencyCol("Total Cost", "totalCost"), currencyCol("Total Price", "totalPrice"),
		dateCol("Updated", "lastUpdated"),
	},
})

// InvoiceLineItemColumns are the columns of get --line-items.
var InvoiceLineItemColumns = []display.Column{
	idCol, col("Type", "itemType"), col("Name", "itemName"), col("Usage", "itemUsage"),
	col("Rate", "itemRate"), currencyCol("Cost", "itemCost"), currencyCol("Price", "itemPrice"),
}

// Lookup-only collections referenced by invoice filters.
var (
	Instances = register(&Resource{
		Name: "instances", Label: "Instance", Singular: "instance", Plural: "instances",
		Path: "/api/instances", Key: "instance", ListKey: "instances",
	})
	Servers = register(&Resource{
		Name: "servers", Label: "Server", Singular: "server", Plural: "servers",
		Path: "/api/servers", Key: "server", ListKey: "servers",
	})
)
