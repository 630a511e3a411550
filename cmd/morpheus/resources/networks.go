package resources

import (
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/display"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/prompt"
)

var Networks = register(&Resource{
	Name:     "networks",
	Label:    "Network",
	Singular: "network",
	Plural:   "networks",
	Path:     "/api/networks",
	Key:      "network",
	ListKey:  "networks",
	Columns: []display.Column{
		idCol, nameCol, col("Type", "type.name"), col("Cloud", "zone.name"),
		col("CIDR", "cidr"), col("Gateway", "gateway"), col("DHCP", "dhcpServer"),
		col("Visibility", "visibility"), col("Active", "active"),
	},
	Details: []display.Column{
		idCol, nameCol, col("Display Name", "displayName"), descriptionCol,
		col("Type", "type.name"), col("Cloud", "zone.name"), col("Domain", "networkDomain.name"),
		col("CIDR", "cidr"), col("Gateway", "gateway"), col("Primary DNS", "dnsPrimary"),
		col("Secondary DNS", "dnsSecondary"), col("VLAN ID", "vlanId"), col("DHCP", "dhcpServer"),
		col("Allow IP Override", "allowStaticOverride"), col("Visibility", "visibility"),
		namesCol("Tenants", "tenants", "name"), col("Active", "active"),
	},
	Options: []prompt.OptionType{
		{FieldName: "id", FieldContext: "zone", FieldLabel: "Cloud", FlagName: "cloud", Required: true,
			Lookup: "clouds", Description: "Cloud name or ID", CreateOnly: true},
		{FieldName: "code", FieldContext: "type", FieldLabel: "Network Type", FlagName: "type", Required: true,
			Description: "Network type code", CreateOnly: true},
		nameOption("Network"),
		{FieldName: "displayName", FieldLabel: "Display Name"},
		descriptionOption(),
		{FieldName: "cidr", FieldLabel: "CIDR", Description: "CIDR, e.g. 10.0.0.0/24"},
		{FieldName: "gateway", FieldLabel: "Gateway"},
		{FieldName: "dnsPrimary", FieldLabel: "Primary DNS"},
		{FieldName: "dnsSecondary", FieldLabel: "Secondary DNS"},
		{FieldName: "vlanId", FieldLabel: "VLAN ID", Type: prompt.Number},
		{FieldName: "dhcpServer", FieldLabel: "DHCP Server", Type: prompt.Checkbox, DefaultValue: "on", FlagName: "dhcp"},
		{FieldName: "allowStaticOverride", FieldLabel: "Allow IP Override", Type: prompt.Checkbox},
		visibilityOption(),
		activeOption("active", "Active"),
	},
})

var NetworkGroups = register(&Resource{
	Name:     "network-groups",
	Label:    "Network Group",
	Singular: "network group",
	Plural:   "network groups",
	Path:     "/api/networks/groups",
	Key:      "networkGroup",
	ListKey:  "networkGroups",
	Columns: []display.Column{
		idCol, nameCol, descriptionCol, namesCol("Networks", "networks", "name"),
		col("Visibility", "visibility"), col("Active", "active"),
	},
	Details: []display.Column{
		idCol, nameCol, descriptionCol, namesCol("Networks", "networks", "name"),
		namesCol("Subnets", "subnets", "name"), namesCol("Tenants", "tenants", "name"),
		col("Visibility", "visibility"), col("Active", "active"),
	},
	Options: []prompt.OptionType{
		nameOption("Network group"),
		descriptionOption(),
		{FieldName: "networks", FieldLabel: "Networks", Lookup: "networks", Many: true,
			Description: "Comma separated network names or IDs"},
		visibilityOption(),
		activeOption("active", "Active"),
	},
})
