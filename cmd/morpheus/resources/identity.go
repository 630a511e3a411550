package resources

import (
	"strings"

	"github.com/concave-dev/morpheus-cli/cmd/morpheus/display"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/prompt"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/utils"
)

var fullNameCol = display.Column{Header: "Name", Value: func(r map[string]any) string {
	return strings.TrimSpace(utils.GetString(r, "firstName") + " " + utils.GetString(r, "lastName"))
}}

var Users = register(&Resource{
	Name:      "users",
	Label:     "User",
	Singular:  "user",
	Plural:    "users",
	Path:      "/api/users",
	Key:       "user",
	ListKey:   "users",
	NameField: "username",
	Columns: []display.Column{
		idCol, col("Username", "username"), fullNameCol, col("Email", "email"),
		namesCol("Roles", "roles", "authority"), col("Tenant", "account.name"),
	},
	Details: []display.Column{
		idCol, col("Tenant", "account.name"), col("First Name", "firstName"), col("Last Name", "lastName"),
		col("Username", "username"), col("Email", "email"), namesCol("Roles", "roles", "authority"),
		col("Enabled", "enabled"), col("Locked", "accountLocked"), createdCol, updatedCol,
	},
	Options: []prompt.OptionType{
		{FieldName: "username", FieldLabel: "Username", Required: true},
		{FieldName: "firstName", FieldLabel: "First Name"},
		{FieldName: "lastName", FieldLabel: "Last Name"},
		{FieldName: "email", FieldLabel: "Email", Required: true},
		{FieldName: "password", FieldLabel: "Password", Type: prompt.Password, Required: true, CreateOnly: true},
		{FieldName: "roles", FieldLabel: "Roles", Lookup: "roles", Many: true,
			Description: "Comma separated role names or IDs"},
	},
})

var Roles = register(&Resource{
	Name:      "roles",
	Label:     "Role",
	Singular:  "role",
	Plural:    "roles",
	Path:      "/api/roles",
	Key:       "role",
	ListKey:   "roles",
	NameField: "authority",
	Columns: []display.Column{
		idCol, col("Name", "authority"), descriptionCol, col("Scope", "scope"),
		col("Type", "roleType"), col("Multitenant", "multitenant"), col("Owner", "owner.name"),
	},
	Details: []display.Column{
		idCol, col("Name", "authority"), descriptionCol, col("Scope", "scope"),
		col("Type", "roleType"), col("Multitenant", "multitenant"), col("Owner", "owner.name"),
		createdCol, updatedCol,
	},
	Options: []prompt.OptionType{
		{FieldName: "authority", FieldLabel: "Name", FlagName: "name", Required: true},
		descriptionOption(),
		{FieldName: "roleType", FieldLabel: "Role Type", Type: prompt.Select, DefaultValue: "user",
			CreateOnly: true, FlagName: "type", Options: []prompt.SelectOption{
				{Name: "User Role", Value: "user"},
				{Name: "Tenant Role", Value: "account"},
			}},
		{FieldName: "multitenant", FieldLabel: "Multitenant", Type: prompt.Checkbox},
	},
})

var Tenants = register(&Resource{
	Name:     "tenants",
	Label:    "Tenant",
	Singular: "tenant",
	Plural:   "tenants",
	Path:     "/api/accounts",
	Key:      "account",
	ListKey:  "accounts",
	Columns: []display.Column{
		idCol, nameCol, descriptionCol, col("Subdomain", "subdomain"),
		col("Role", "role.authority"), col("Currency", "currency"), col("Master", "master"), col("Active", "active"),
	},
	Details: []display.Column{
		idCol, nameCol, descriptionCol, col("Subdomain", "subdomain"),
		col("Role", "role.authority"), col("Currency", "currency"), col("Master", "master"),
		col("Active", "active"), createdCol, updatedCol,
	},
	Options: []prompt.OptionType{
		nameOption("Tenant"),
		descriptionOption(),
		{FieldName: "subdomain", FieldLabel: "Subdomain"},
		{FieldName: "id", FieldContext: "role", FieldLabel: "Base Role", FlagName: "role", Lookup: "roles",
			Description: "Base role name or ID"},
		{FieldName: "currency", FieldLabel: "Currency", DefaultValue: "USD"},
		activeOption("active", "Active"),
	},
})
