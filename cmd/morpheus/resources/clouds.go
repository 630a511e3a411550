package resources

import (
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/display"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/prompt"
)

var Clouds = register(&Resource{
	Name:     "clouds",
	Label:    "Cloud",
	Singular: "cloud",
	Plural:   "clouds",
	Path:     "/api/zones",
	Key:      "zone",
	ListKey:  "zones",
	Columns: []display.Column{
		idCol, nameCol, col("Type", "zoneType.name"), col("Location", "location"),
		col("Region", "regionCode"), namesCol("Groups", "groups", "name"),
		col("Servers", "serverCount"), col("Status", "status"),
	},
	Details: []display.Column{
		idCol, nameCol, col("Code", "code"), col("Type", "zoneType.name"), col("Location", "location"),
		col("Region", "regionCode"), col("Visibility", "visibility"), namesCol("Groups", "groups", "name"),
		col("Enabled", "enabled"), col("Status", "status"), col("Servers", "serverCount"),
	},
	Options: []prompt.OptionType{
		{FieldName: "groupId", FieldLabel: "Group", FlagName: "group", Required: true, Lookup: "groups",
			Description: "Group name or ID", CreateOnly: true},
		{FieldName: "code", FieldContext: "zoneType", FieldLabel: "Cloud Type", FlagName: "type", Required: true,
			Description: "Cloud type code, e.g. amazon, vmware", CreateOnly: true},
		nameOption("Cloud"),
		{FieldName: "code", FieldLabel: "Code"},
		{FieldName: "location", FieldLabel: "Location"},
		visibilityOption(),
		activeOption("enabled", "Enabled"),
		{FieldName: "autoRecoverPowerState", FieldLabel: "Automatically Power On VMs", Type: prompt.Checkbox},
	},
})

var Groups = register(&Resource{
	Name:     "groups",
	Label:    "Group",
	Singular: "group",
	Plural:   "groups",
	Path:     "/api/groups",
	Key:      "group",
	ListKey:  "groups",
	Columns: []display.Column{
		idCol, nameCol, col("Code", "code"), col("Location", "location"),
		namesCol("Clouds", "zones", "name"), col("Hosts", "serverCount"),
	},
	Details: []display.Column{
		idCol, nameCol, col("Code", "code"), col("Location", "location"),
		namesCol("Clouds", "zones", "name"), col("Hosts", "serverCount"), createdCol, updatedCol,
	},
	Options: []prompt.OptionType{
		nameOption("Group"),
		{FieldName: "code", FieldLabel: "Code"},
		{FieldName: "location", FieldLabel: "Location"},
	},
})

var Environments = register(&Resource{
	Name:     "environments",
	Label:    "Environment",
	Singular: "environment",
	Plural:   "environments",
	Path:     "/api/environments",
	Key:      "environment",
	ListKey:  "environments",
	Columns: []display.Column{
		idCol, nameCol, col("Code", "code"), descriptionCol,
		col("Visibility", "visibility"), col("Sort", "sortOrder"), col("Active", "active"),
	},
	Details: []display.Column{
		idCol, nameCol, col("Code", "code"), descriptionCol,
		col("Visibility", "visibility"), col("Sort", "sortOrder"), col("Active", "active"),
	},
	Options: []prompt.OptionType{
		nameOption("Environment"),
		{FieldName: "code", FieldLabel: "Code"},
		descriptionOption(),
		visibilityOption(),
		{FieldName: "sortOrder", FieldLabel: "Sort Order", Type: prompt.Number},
		activeOption("active", "Active"),
	},
})

var Policies = register(&Resource{
	Name:     "policies",
	Label:    "Policy",
	Singular: "policy",
	Plural:   "policies",
	Path:     "/api/policies",
	Key:      "policy",
	ListKey:  "policies",
	Columns: []display.Column{
		idCol, nameCol, col("Type", "policyType.name"), descriptionCol,
		col("Scope", "refType"), col("Enabled", "enabled"),
	},
	Details: []display.Column{
		idCol, nameCol, col("Type", "policyType.name"), descriptionCol,
		col("Scope", "refType"), col("Enabled", "enabled"), col("Each User", "eachUser"),
	},
	Options: []prompt.OptionType{
		{FieldName: "code", FieldContext: "policyType", FieldLabel: "Policy Type", FlagName: "type",
			Required: true, Description: "Policy type code, e.g. maxVms", CreateOnly: true},
		nameOption("Policy"),
		descriptionOption(),
		activeOption("enabled", "Enabled"),
		{FieldName: "eachUser", FieldLabel: "Apply To Each User", Type: prompt.Checkbox},
	},
})

var KeyPairs = register(&Resource{
	Name:     "key-pairs",
	Label:    "Key Pair",
	Singular: "key pair",
	Plural:   "key pairs",
	Path:     "/api/key-pairs",
	Key:      "keyPair",
	ListKey:  "keyPairs",
	Columns: []display.Column{
		idCol, nameCol, col("MD5", "md5"), createdCol,
	},
	Details: []display.Column{
		idCol, nameCol, col("MD5", "md5"), col("Public Key", "publicKey"),
		col("Has Private Key", "hasPrivateKey"), createdCol, updatedCol,
	},
	Options: []prompt.OptionType{
		nameOption("Key pair"),
		{FieldName: "publicKey", FieldLabel: "Public Key", Type: prompt.TextArea, Required: true, CreateOnly: true},
		{FieldName: "privateKey", FieldLabel: "Private Key", Type: prompt.TextArea, CreateOnly: true},
		{FieldName: "passphrase", FieldLabel: "Passphrase", Type: prompt.Password, CreateOnly: true},
	},
})
