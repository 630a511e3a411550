// Package resources declares the appliance resources the morpheus CLI manages.
//
// A Resource is pure data: where the collection lives, which JSON keys wrap
// its objects, how records are looked up by name, which columns list and get
// render, and which option types add and update accept. The handlers package
// drives every resource through the same list/get/add/update/remove pipeline
// and adds behaviour only where a resource needs it.
package resources

import (
	"sort"
	"strings"

	"github.com/concave-dev/morpheus-cli/cmd/morpheus/display"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/prompt"
)

// Resource describes one appliance REST collection.
type Resource struct {
	Name     string // Command name, e.g. "network-groups"
	Label    string // Singular display label, e.g. "Network Group"
	Singular string // Lowercase singular used in messages
	Plural   string // Lowercase plural used in messages
	Path     string // Collection path, e.g. /api/networks/groups
	Key      string // JSON key of a single object
	ListKey  string // JSON key of the list

	// NameField is the record field holding the name; it is also the query
	// parameter used for name lookups. Defaults to "name".
	NameField string

	Columns []display.Column    // list columns
	Details []display.Column    // get rows
	Options []prompt.OptionType // add/update inputs
}

// LookupField returns the field used for name lookups.
func (r *Resource) LookupField() string {
	if r.NameField == "" {
		return "name"
	}
	return r.NameField
}

// Title returns the list heading, e.g. "Morpheus Budgets".
func (r *Resource) Title() string {
	return "Morpheus " + titleCase(r.Plural)
}

// CreateOptions returns the options offered by add.
func (r *Resource) CreateOptions() []prompt.OptionType {
	return r.Options
}

// UpdateOptions returns the options offered by update.
func (r *Resource) UpdateOptions() []prompt.OptionType {
	opts := make([]prompt.OptionType, 0, len(r.Options))
	for _, o := range r.Options {
		if !o.CreateOnly {
			opts = append(opts, o)
		}
	}
	return opts
}

var registry = map[string]*Resource{}

func register(r *Resource) *Resource {
	registry[r.Name] = r
	return r
}

// ByName returns the resource registered under a command name.
func ByName(name string) (*Resource, bool) {
	r, ok := registry[name]
	return r, ok
}

// Names returns all registered resource names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func titleCase(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "-", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
