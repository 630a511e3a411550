package resources

import (
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/display"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/prompt"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/utils"
)

// budgetScopes maps the appliance refType of a budget to its scope label.
var budgetScopes = map[string]string{
	"Account":     "Account",
	"ComputeSite": "Group",
	"ComputeZone": "Cloud",
	"User":        "User",
}

// BudgetScope renders the scope of a budget, e.g. "Group (dev)".
func BudgetScope(b map[string]any) string {
	refType := utils.GetString(b, "refType")
	scope, ok := budgetScopes[refType]
	if !ok {
		scope = refType
	}
	if name := utils.GetString(b, "refName"); name != "" && refType != "Account" {
		return scope + " (" + name + ")"
	}
	return scope
}

var scopeCol = display.Column{Header: "Scope", Value: BudgetScope}

var Budgets = register(&Resource{
	Name:     "budgets",
	Label:    "Budget",
	Singular: "budget",
	Plural:   "budgets",
	Path:     "/api/budgets",
	Key:      "budget",
	ListKey:  "budgets",
	Columns: []display.Column{
		idCol, nameCol, descriptionCol, col("Enabled", "enabled"), scopeCol,
		col("Period", "year"), col("Interval", "interval"),
		currencyCol("Total", "totalCost"), currencyCol("Average", "averageCost"),
	},
	Details: []display.Column{
		idCol, nameCol, descriptionCol, col("Enabled", "enabled"), scopeCol,
		col("Period", "year"), col("Interval", "interval"),
		dateCol("Start Date", "startDate"), dateCol("End Date", "endDate"),
		currencyCol("Total", "totalCost"), currencyCol("Average", "averageCost"),
		createdCol, updatedCol,
	},
	Options: []prompt.OptionType{
		nameOption("Budget"),
		descriptionOption(),
		activeOption("enabled", "Enabled"),
		{FieldName: "scope", FieldLabel: "Scope", Type: prompt.Select, DefaultValue: "account",
			Description: "Budget scope", Options: []prompt.SelectOption{
				{Name: "Account", Value: "account"},
				{Name: "Group", Value: "group"},
				{Name: "Cloud", Value: "cloud"},
				{Name: "User", Value: "user"},
			}},
		{FieldName: "year", FieldLabel: "Period", DefaultValue: "current",
			Description: "Budget year, e.g. 2025, or current"},
		{FieldName: "interval", FieldLabel: "Interval", Type: prompt.Select, DefaultValue: "year",
			Description: "Budget interval", Options: []prompt.SelectOption{
				{Name: "Year", Value: "year"},
				{Name: "Quarter", Value: "quarter"},
				{Name: "Month", Value: "month"},
			}},
		{FieldName: "costs", FieldLabel: "Costs", Required: true,
			Description: "Comma separated costs, one per period of the interval, or a single cost for every period"},
	},
})
