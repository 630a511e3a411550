package handlers

import (
	"reflect"
	"strings"
	"testing"

	"github.com/concave-dev/morpheus-cli/cmd/morpheus/config"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/resources"
)

func TestListInvoicesFilters(t *testing.T) {
	fake, _ := setup(t)
	fake.Seed("/api/zones", map[string]any{"name": "aws"})
	fake.Seed("/api/invoices",
		map[string]any{"refType": "ComputeZone", "refName": "aws", "zoneId": 1, "period": "202601", "totalCost": 10.5, "totalPrice": 12},
		map[string]any{"refType": "ComputeZone", "refName": "aws", "zoneId": 1, "period": "202601", "totalCost": 4.5, "totalPrice": 6},
		map[string]any{"refType": "ComputeSite", "refName": "dev", "period": "202601", "totalCost": 100},
	)
	config.Invoice.RefType = "cloud"
	config.Invoice.Cloud = "aws"
	config.Invoice.Period = "202601"
	config.Invoice.Totals = true

	out, err := execute(t, List(resources.Invoices, InvoiceHooks), nil, nil)
	if err != nil {
		t.Fatalf("list invoices failed: %v", err)
	}

	reqs := fake.Requests()
	query := reqs[len(reqs)-1].Query
	for key, want := range map[string]string{
		"refType": "ComputeZone", "zoneId": "1", "period": "202601", "includeTotals": "true",
	} {
		if got := query.Get(key); got != want {
			t.Errorf("query %s = %q, want %q", key, got, want)
		}
	}
	if query.Has("active") || query.Has("estimate") {
		t.Errorf("unset boolean filters sent: %v", query)
	}
	for _, want := range []string{"Morpheus Invoices", "Jan 2026", "Total", "$15.00", "$18.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestListInvoicesBooleanFilters(t *testing.T) {
	fake, _ := setup(t)

	if _, err := execute(t, List(resources.Invoices, InvoiceHooks), nil, map[string]string{"active": "false"}); err != nil {
		t.Fatalf("list invoices failed: %v", err)
	}
	query := fake.Requests()[0].Query
	if query.Get("active") != "false" || query.Has("estimate") {
		t.Errorf("unexpected query %v", query)
	}
}

func TestListInvoicesValidation(t *testing.T) {
	tests := []struct {
		name  string
		apply func()
		want  string
	}{
		{"bad type", func() { config.Invoice.RefType = "planet" }, "invalid invoice type"},
		{"bad start", func() { config.Invoice.Start = "01/02/2026" }, "YYYY-MM-DD"},
		{"bad period", func() { config.Invoice.Period = "2026-01" }, "YYYYMM"},
		{"unknown user", func() { config.Invoice.User = "ghost" }, "User not found by username 'ghost'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake, _ := setup(t)
			tt.apply()

			_, err := execute(t, List(resources.Invoices, InvoiceHooks), nil, nil)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q, got %v", tt.want, err)
			}
			for _, r := range fake.Requests() {
				if r.Path == "/api/invoices" {
					t.Error("invoices were listed despite invalid filters")
				}
			}
		})
	}
}

func TestGetInvoiceLineItems(t *testing.T) {
	fake, _ := setup(t)
	fake.Seed("/api/invoices", map[string]any{
		"refType": "ComputeZone", "refName": "aws", "totalCost": 3,
		"lineItems": []any{map[string]any{"id": 7, "itemName": "vm-1", "itemCost": 3}},
	})
	config.Invoice.LineItems = true

	out, err := execute(t, GetInvoice, nil, nil, "1")
	if err != nil {
		t.Fatalf("get invoice failed: %v", err)
	}
	if got := fake.Requests()[0].Query.Get("includeLineItems"); got != "true" {
		t.Errorf("includeLineItems = %q", got)
	}
	for _, want := range []string{"Invoice Details", "Cloud", "Line Items", "vm-1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if _, err := execute(t, GetInvoice, nil, nil, "aws"); err == nil {
		t.Error("expected invoices to be fetched by ID only")
	}
}

func TestRefreshInvoices(t *testing.T) {
	fake, _ := setup(t, "y")
	fake.Seed("/api/zones", map[string]any{"name": "aws"}, map[string]any{"name": "azure"})
	config.Invoice.Clouds = []string{"aws,2"}
	config.Invoice.Period = "202602"

	out, err := execute(t, RefreshInvoices, nil, nil)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	writes := fake.Writes()
	if len(writes) != 1 || writes[0].Path != "/api/invoices/refresh" {
		t.Fatalf("unexpected writes %+v", writes)
	}
	want := map[string]any{"clouds": []any{float64(1), float64(2)}, "period": "202602"}
	if !reflect.DeepEqual(writes[0].Body, want) {
		t.Errorf("body = %v, want %v", writes[0].Body, want)
	}
	if !strings.Contains(out, "refresh requested") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestRefreshInvoicesNeedsTarget(t *testing.T) {
	setup(t)
	if _, err := execute(t, RefreshInvoices, nil, nil); err == nil {
		t.Error("expected error without --clouds or --all")
	}

	config.Invoice.All = true
	config.Invoice.Clouds = []string{"aws"}
	if _, err := execute(t, RefreshInvoices, nil, nil); err == nil {
		t.Error("expected error with both --clouds and --all")
	}
}

func TestRefreshInvoicesDeclined(t *testing.T) {
	fake, _ := setup(t, "n")
	config.Invoice.All = true

	_, err := execute(t, RefreshInvoices, nil, nil)
	if ExitCode(err) != ExitAborted {
		t.Fatalf("exit code = %d (%v)", ExitCode(err), err)
	}
	if len(fake.Writes()) != 0 {
		t.Error("refresh sent after declining")
	}
}
