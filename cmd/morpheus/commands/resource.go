package commands

import (
	"fmt"

	"github.com/concave-dev/morpheus-cli/cmd/morpheus/resources"
	"github.com/spf13/cobra"
)

// ResourceCommands is the command group of one resource. Verbs a resource
// does not support are nil.
type ResourceCommands struct {
	Resource *resources.Resource
	Parent   *cobra.Command
	List     *cobra.Command
	Get      *cobra.Command
	Add      *cobra.Command
	Update   *cobra.Command
	Remove   *cobra.Command
}

// CRUD resources in the order they appear in help.
var crudResources = []*resources.Resource{
	resources.Budgets,
	resources.Clouds,
	resources.Groups,
	resources.Environments,
	resources.Networks,
	resources.NetworkGroups,
	resources.Policies,
	resources.KeyPairs,
	resources.Users,
	resources.Roles,
	resources.Tenants,
}

var (
	built    []*ResourceCommands
	byName   = map[string]*ResourceCommands{}
	invoices *ResourceCommands
)

// resourceCommands builds the command groups once.
func resourceCommands() []*ResourceCommands {
	if built != nil {
		return built
	}
	for _, res := range crudResources {
		rc := newResourceCommands(res, true)
		built = append(built, rc)
		byName[res.Name] = rc
	}
	invoices = newResourceCommands(resources.Invoices, false)
	invoices.Parent.AddCommand(invoiceRefreshCmd)
	built = append(built, invoices)
	byName[resources.Invoices.Name] = invoices
	return built
}

// GetResourceCommands returns the command groups for handler assignment.
func GetResourceCommands() []*ResourceCommands {
	return resourceCommands()
}

// GetResourceCommand returns the command group of one resource.
func GetResourceCommand(name string) *ResourceCommands {
	resourceCommands()
	return byName[name]
}

func newResourceCommands(res *resources.Resource, crud bool) *ResourceCommands {
	id := res.Singular + " name or ID"
	if res == resources.Invoices {
		id = "invoice ID"
	}

	rc := &ResourceCommands{
		Resource: res,
		Parent: &cobra.Command{
			Use:   res.Name,
			Short: "Manage " + res.Plural,
			Long:  fmt.Sprintf("Commands for viewing and managing %s on the appliance (%s).", res.Plural, res.Path),
		},
		List: &cobra.Command{
			Use:     "list [phrase]",
			Aliases: []string{"ls"},
			Short:   "List " + res.Plural,
			Example: fmt.Sprintf(`  # List %[1]s
  morpheus %[2]s list

  # Search by phrase, 50 per page
  morpheus %[2]s list prod --max 50

  # Redraw every 10 seconds
  morpheus %[2]s list --refresh 10`, res.Plural, res.Name),
			Args: cobra.ArbitraryArgs,
		},
		Get: &cobra.Command{
			Use:     fmt.Sprintf("get <%s>...", shortID(res)),
			Aliases: []string{"info"},
			Short:   "Show " + res.Plural,
			Example: fmt.Sprintf(`  # Show one %[1]s
  morpheus %[2]s get 42

  # Output in YAML format
  morpheus %[2]s get 42 --yaml`, res.Singular, res.Name),
			Args: minArgs(1, id),
		},
	}
	rc.Parent.AddCommand(rc.List, rc.Get)
	SetupListFlags(rc.List)

	if !crud {
		return rc
	}

	rc.Add = &cobra.Command{
		Use:   fmt.Sprintf("add [%s] [flags]", res.LookupField()),
		Short: "Add a " + res.Singular,
		Long: fmt.Sprintf(`Add a %s.

Fields missing from the flags are prompted for. With --payload the file is
sent as the request body and nothing is prompted; flags and -O options still
override its values.`, res.Singular),
		Example: fmt.Sprintf(`  # Add interactively
  morpheus %[1]s add

  # Add from a payload file without prompting
  morpheus %[1]s add --payload %[2]s.yaml -N

  # Print the request instead of sending it
  morpheus %[1]s add example -N -d`, res.Name, res.Key),
		Args: cobra.MaximumNArgs(1),
	}
	rc.Update = &cobra.Command{
		Use:   fmt.Sprintf("update <%s> [flags]", shortID(res)),
		Short: "Update a " + res.Singular,
		Long: fmt.Sprintf(`Update a %s.

Only the fields given as flags, -O options or in --payload are sent. Update
never prompts.`, res.Singular),
		Example: fmt.Sprintf(`  # Change a field
  morpheus %[1]s update 42 -O description="managed by ops"`, res.Name),
		Args: exactArgs(1, id),
	}
	rc.Remove = &cobra.Command{
		Use:     fmt.Sprintf("remove <%s>", shortID(res)),
		Aliases: []string{"rm"},
		Short:   "Remove a " + res.Singular,
		Example: fmt.Sprintf(`  # Remove without confirmation
  morpheus %[1]s remove 42 -y`, res.Name),
		Args: exactArgs(1, id),
	}
	rc.Parent.AddCommand(rc.Add, rc.Update, rc.Remove)

	SetupPayloadFlags(rc.Add)
	SetupPayloadFlags(rc.Update)
	SetupOptionFlags(rc.Add, res.CreateOptions())
	SetupOptionFlags(rc.Update, res.UpdateOptions())
	return rc
}

func shortID(res *resources.Resource) string {
	if res == resources.Invoices {
		return "id"
	}
	return res.LookupField() + "|id"
}
