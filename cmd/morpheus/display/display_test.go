package display

import (
	"bytes"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/concave-dev/morpheus-cli/cmd/morpheus/client"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/config"
)

var budgetColumns = []Column{
	{Header: "ID", Path: "id"},
	{Header: "Name", Path: "name"},
	{Header: "Scope", Path: "refType"},
	{Header: "Interval", Value: func(r map[string]any) string {
		return strings.ToUpper(r["interval"].(string))
	}},
}

var budgetRecords = []map[string]any{
	{"id": float64(1), "name": "q1", "refType": "Account", "interval": "year"},
	{"id": float64(2), "name": "lab", "refType": "ComputeSite", "interval": "month"},
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, budgetColumns, budgetRecords, nil)
	out := buf.String()

	for _, want := range []string{"ID", "NAME", "SCOPE", "q1", "ComputeSite", "MONTH"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestPrintCSV(t *testing.T) {
	var buf bytes.Buffer
	PrintCSV(&buf, budgetColumns, budgetRecords)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %d lines:\n%s", len(lines), buf.String())
	}
	if lines[1] != "1,q1,Account,YEAR" {
		t.Errorf("first row = %q", lines[1])
	}
}

func TestPrintDetailsSkipsEmpty(t *testing.T) {
	cols := []Column{{Header: "Name", Path: "name"}, {Header: "Description", Path: "description"}}
	record := map[string]any{"name": "q1"}

	var buf bytes.Buffer
	PrintDetails(&buf, cols, record, false)
	if strings.Contains(buf.String(), "Description") {
		t.Errorf("empty row rendered:\n%s", buf.String())
	}

	buf.Reset()
	PrintDetails(&buf, cols, record, true)
	if !strings.Contains(buf.String(), "Description:") {
		t.Errorf("verbose details missing empty row:\n%s", buf.String())
	}
}

func TestColumnsFor(t *testing.T) {
	if got := ColumnsFor(nil, budgetColumns); len(got) != len(budgetColumns) {
		t.Errorf("ColumnsFor(nil) returned %d columns", len(got))
	}
	got := ColumnsFor([]string{"id", "zone.name"}, budgetColumns)
	if len(got) != 2 || got[1].Header != "ZONE.NAME" || got[1].Path != "zone.name" {
		t.Errorf("ColumnsFor(fields) = %+v", got)
	}
}

func TestPrintPagination(t *testing.T) {
	tests := []struct {
		name string
		meta map[string]any
		want string
	}{
		{"first page", map[string]any{"size": float64(25), "total": float64(100), "offset": float64(0)}, "Viewing 1-25 of 100 budgets"},
		{"last page", map[string]any{"size": float64(5), "total": float64(30), "offset": float64(25)}, "Viewing 26-30 of 30 budgets"},
		{"empty", map[string]any{"size": float64(0), "total": float64(0)}, ""},
		{"no meta", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			PrintPagination(&buf, tt.meta, "budgets")
			got := strings.TrimSpace(buf.String())
			if got != tt.want {
				t.Errorf("PrintPagination() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrintStructured(t *testing.T) {
	data := map[string]any{"budget": map[string]any{"id": float64(7), "name": "q1"}}

	var buf bytes.Buffer
	if err := PrintStructured(&buf, "json", data); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !strings.Contains(buf.String(), `"name": "q1"`) {
		t.Errorf("json output:\n%s", buf.String())
	}

	buf.Reset()
	if err := PrintStructured(&buf, "yaml", data); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if !strings.Contains(buf.String(), "name: q1") || !strings.Contains(buf.String(), "id: 7") {
		t.Errorf("yaml output:\n%s", buf.String())
	}
}

func TestSelectFields(t *testing.T) {
	response := map[string]any{
		"budgets": []any{
			map[string]any{"id": float64(1), "name": "q1", "zone": map[string]any{"name": "aws"}},
		},
		"meta": map[string]any{"total": float64(1)},
	}

	got := SelectFields(response, "budgets", []string{"name", "zone.name"})
	items := got["budgets"].([]any)
	item := items[0].(map[string]any)
	if _, ok := item["id"]; ok {
		t.Error("unselected field id kept")
	}
	if item["name"] != "q1" || item["zone"].(map[string]any)["name"] != "aws" {
		t.Errorf("selected fields = %v", item)
	}
	if _, ok := got["meta"]; !ok {
		t.Error("meta dropped")
	}

	if same := SelectFields(response, "budgets", nil); len(same["budgets"].([]any)) != 1 {
		t.Error("SelectFields without fields changed the response")
	}
}

func TestPrintDryRun(t *testing.T) {
	c := client.New(client.Options{BaseURL: "https://morpheus.example.com", Timeout: 5})
	req := client.Request{
		Method: http.MethodPost,
		Path:   "/api/budgets",
		Query:  url.Values{"phrase": {"q1"}},
		Body:   map[string]any{"budget": map[string]any{"name": "q1"}},
	}

	var buf bytes.Buffer
	PrintDryRun(&buf, c, req)
	out := buf.String()
	for _, want := range []string{"DRY RUN", "POST https://morpheus.example.com/api/budgets?phrase=q1", "phrase=q1", `"name": "q1"`} {
		if !strings.Contains(out, want) {
			t.Errorf("dry run output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintError(t *testing.T) {
	config.Global.Verbose = false

	var buf bytes.Buffer
	PrintError(&buf, &client.APIError{
		StatusCode: 422,
		Message:    "Unable to save budget",
		Errors:     map[string]string{"name": "must be unique"},
		Body:       "{}",
	})
	out := buf.String()
	if !strings.Contains(out, "Unable to save budget") || !strings.Contains(out, "* name: must be unique") {
		t.Errorf("PrintError(APIError) output:\n%s", out)
	}

	buf.Reset()
	PrintError(&buf, errSample("Budget not found by name 'x'"))
	if !strings.Contains(buf.String(), "Budget not found by name 'x'") {
		t.Errorf("PrintError output:\n%s", buf.String())
	}
}

type errSample string

func (e errSample) Error() string { return string(e) }

func TestSuccessQuiet(t *testing.T) {
	defer func() { config.Global.Quiet = false }()

	var buf bytes.Buffer
	config.Global.Quiet = true
	Success(&buf, "Budget %s removed", "q1")
	if buf.Len() != 0 {
		t.Errorf("Success printed under --quiet: %q", buf.String())
	}

	config.Global.Quiet = false
	Success(&buf, "Budget %s removed", "q1")
	if !strings.Contains(buf.String(), "Budget q1 removed") {
		t.Errorf("Success output: %q", buf.String())
	}
}
