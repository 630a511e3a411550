package resources

import (
	"testing"
)

// Flags registered globally or by the payload layer; option flags must not shadow them.
var reservedFlags = map[string]bool{
	"remote": true, "url": true, "token": true, "insecure": true, "timeout": true,
	"log-level": true, "verbose": true, "output": true, "json": true, "yaml": true,
	"csv": true, "fields": true, "quiet": true, "dry-run": true, "no-prompt": true,
	"yes": true, "payload": true, "payload-json": true, "option": true,
	"max": true, "offset": true, "phrase": true, "sort": true, "direction": true, "refresh": true,
}

func TestRegistry(t *testing.T) {
	for _, name := range []string{
		"budgets", "invoices", "networks", "network-groups", "clouds", "groups",
		"users", "roles", "tenants", "policies", "key-pairs", "environments",
	} {
		r, ok := ByName(name)
		if !ok {
			t.Errorf("resource %q not registered", name)
			continue
		}
		if r.Path == "" || r.Key == "" || r.ListKey == "" || r.Label == "" {
			t.Errorf("resource %q incomplete: %+v", name, r)
		}
		if len(r.Columns) == 0 || len(r.Details) == 0 {
			t.Errorf("resource %q has no columns", name)
		}
	}
}

func TestOptionFlagsAreUnique(t *testing.T) {
	for _, name := range Names() {
		r, _ := ByName(name)
		seenFlags := map[string]bool{}
		seenPaths := map[string]bool{}
		for _, opt := range r.Options {
			flag := opt.Flag()
			if reservedFlags[flag] {
				t.Errorf("%s: option flag --%s shadows a global flag", name, flag)
			}
			if seenFlags[flag] {
				t.Errorf("%s: duplicate option flag --%s", name, flag)
			}
			if seenPaths[opt.Path()] {
				t.Errorf("%s: duplicate option path %s", name, opt.Path())
			}
			seenFlags[flag] = true
			seenPaths[opt.Path()] = true

			if opt.Lookup != "" {
				if _, ok := ByName(opt.Lookup); !ok {
					t.Errorf("%s: option %s looks up unknown resource %q", name, flag, opt.Lookup)
				}
			}
		}
	}
}

func TestUpdateOptionsExcludeCreateOnly(t *testing.T) {
	for _, opt := range Users.UpdateOptions() {
		if opt.FieldName == "password" {
			t.Error("password offered on update")
		}
	}
	if len(Users.CreateOptions()) != len(Users.UpdateOptions())+1 {
		t.Errorf("expected exactly one create-only user option")
	}
}

func TestLookupField(t *testing.T) {
	tests := map[*Resource]string{Budgets: "name", Users: "username", Roles: "authority"}
	for r, want := range tests {
		if got := r.LookupField(); got != want {
			t.Errorf("%s.LookupField() = %q, want %q", r.Name, got, want)
		}
	}
}

func TestTitle(t *testing.T) {
	if got := NetworkGroups.Title(); got != "Morpheus Network Groups" {
		t.Errorf("Title() = %q", got)
	}
	if got := KeyPairs.Title(); got != "Morpheus Key Pairs" {
		t.Errorf("Title() = %q", got)
	}
}

func TestInvoiceRefType(t *testing.T) {
	tests := []struct {
		alias   string
		want    string
		wantErr bool
	}{
		{"cloud", "ComputeZone", false},
		{"Group", "ComputeSite", false},
		{"instance", "Instance", false},
		{"server", "ComputeServer", false},
		{"user", "User", false},
		{"tenant", "Account", false},
		{"ComputeZone", "ComputeZone", false},
		{"datastore", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			got, err := InvoiceRefType(tt.alias)
			if (err != nil) != tt.wantErr {
				t.Fatalf("InvoiceRefType(%q) error = %v", tt.alias, err)
			}
			if got != tt.want {
				t.Errorf("InvoiceRefType(%q) = %q, want %q", tt.alias, got, tt.want)
			}
		})
	}
}

func TestBudgetScope(t *testing.T) {
	tests := []struct {
		budget map[string]any
		want   string
	}{
		{map[string]any{"refType": "Account", "refName": "root"}, "Account"},
		{map[string]any{"refType": "ComputeSite", "refName": "dev"}, "Group (dev)"},
		{map[string]any{"refType": "ComputeZone", "refName": "aws"}, "Cloud (aws)"},
		{map[string]any{"refType": "User"}, "User"},
	}
	for _, tt := range tests {
		if got := BudgetScope(tt.budget); got != tt.want {
			t.Errorf("BudgetScope(%v) = %q, want %q", tt.budget, got, tt.want)
		}
	}
}
