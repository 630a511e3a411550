package display

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// newTable creates a borderless table in the CLI's house style.
func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateRows = false
	t.Style().Options.SeparateFooter = true
	t.Style().Format.Header = text.FormatUpper
	t.Style().Format.Footer = text.FormatDefault
	return t
}

func headerRow(cols []Column) table.Row {
	row := make(table.Row, 0, len(cols))
	for _, c := range cols {
		row = append(row, c.Header)
	}
	return row
}

func recordRow(cols []Column, record map[string]any) table.Row {
	row := make(table.Row, 0, len(cols))
	for _, c := range cols {
		row = append(row, c.Render(record))
	}
	return row
}

// PrintTable renders records as a table. footer, when non-nil, is printed
// as a totals row below a separator.
func PrintTable(w io.Writer, cols []Column, records []map[string]any, footer []string) {
	t := newTable()
	t.AppendHeader(headerRow(cols))
	for _, r := range records {
		t.AppendRow(recordRow(cols, r))
	}
	if footer != nil {
		row := make(table.Row, 0, len(footer))
		for _, f := range footer {
			row = append(row, f)
		}
		t.AppendFooter(row)
	}
	fmt.Fprintln(w, t.Render())
}

// PrintCSV renders records as CSV with a header row.
func PrintCSV(w io.Writer, cols []Column, records []map[string]any) {
	t := table.NewWriter()
	t.AppendHeader(headerRow(cols))
	for _, r := range records {
		t.AppendRow(recordRow(cols, r))
	}
	fmt.Fprintln(w, t.RenderCSV())
}

// PrintDetails renders one record as aligned "Label: value" lines. Rows
// with an empty value are skipped unless --verbose is set.
func PrintDetails(w io.Writer, cols []Column, record map[string]any, verbose bool) {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateHeader = false
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, Align: text.AlignRight}})

	for _, c := range cols {
		value := c.Render(record)
		if value == "" && !verbose {
			continue
		}
		t.AppendRow(table.Row{c.Header + ":", value})
	}
	fmt.Fprintln(w, t.Render())
}

// PrintRecords renders a list of records in the configured tabular format,
// CSV or table.
func PrintRecords(w io.Writer, format string, cols []Column, records []map[string]any, footer []string) {
	if format == "csv" {
		PrintCSV(w, cols, records)
		return
	}
	PrintTable(w, cols, records, footer)
}
