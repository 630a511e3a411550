// Package display provides output formatting for the morpheus CLI.
//
// Every command renders the decoded appliance response in one of four
// formats. Table output is built with go-pretty from a resource's column
// definitions; CSV reuses the same columns through go-pretty's CSV renderer;
// JSON and YAML print the raw response, optionally narrowed by --fields.
// Alerts, the pagination footer and dry-run requests are styled with
// lipgloss, which drops colors when the output is not a terminal.
//
// Functions write to the io.Writer they are given so commands can be
// rendered into buffers by tests.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/config"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/utils"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#42E7FF"))
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8A8A8A"))
	alertStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4473"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#60F281"))
	dryRunStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFE763"))
)

// Column is one table column or details row.
type Column struct {
	Header string
	Path   string                      // Dot path into the record
	Value  func(map[string]any) string // Overrides Path when set
}

// Render returns the column's text for record.
func (c Column) Render(record map[string]any) string {
	if c.Value != nil {
		return c.Value(record)
	}
	return utils.GetPathString(record, c.Path)
}

// ColumnsFor returns columns for the --fields paths, or defaults when none
// were requested.
func ColumnsFor(fields []string, defaults []Column) []Column {
	if len(fields) == 0 {
		return defaults
	}
	cols := make([]Column, 0, len(fields))
	for _, f := range fields {
		cols = append(cols, Column{Header: strings.ToUpper(f), Path: f})
	}
	return cols
}

// Structured reports whether the output format prints raw data instead of
// tables.
func Structured() bool {
	return config.Global.Output == "json" || config.Global.Output == "yaml"
}

// PrintTitle prints a section title with optional subtitles.
func PrintTitle(w io.Writer, title string, subtitles ...string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render(title))
	var subs []string
	for _, s := range subtitles {
		if s != "" {
			subs = append(subs, s)
		}
	}
	if len(subs) > 0 {
		fmt.Fprintln(w, subtitleStyle.Render(strings.Join(subs, " | ")))
	}
	fmt.Fprintln(w, strings.Repeat("=", lipgloss.Width(title)))
	fmt.Fprintln(w)
}

// PrintSection prints a smaller heading inside details output.
func PrintSection(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render(title))
	fmt.Fprintln(w, strings.Repeat("-", lipgloss.Width(title)))
}

// PrintEmpty prints the message shown when a list has no results.
func PrintEmpty(w io.Writer, plural string) {
	fmt.Fprintf(w, "No %s found.\n", plural)
}

// PrintPagination prints the footer for a list response, e.g.
// "Viewing 1-25 of 100 budgets". meta is the response's meta object.
func PrintPagination(w io.Writer, meta map[string]any, plural string) {
	if meta == nil {
		return
	}
	total := utils.GetInt64(meta, "total")
	size := utils.GetInt64(meta, "size")
	offset := utils.GetInt64(meta, "offset")
	if total == 0 || size == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, subtitleStyle.Render(fmt.Sprintf("Viewing %d-%d of %d %s", offset+1, offset+size, total, plural)))
}

// Alert prints a red message, used for not-found and failure notices.
func Alert(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, alertStyle.Render(fmt.Sprintf(format, args...)))
}

// Success prints a green confirmation unless --quiet is set.
func Success(w io.Writer, format string, args ...any) {
	if config.Global.Quiet {
		return
	}
	fmt.Fprintln(w, successStyle.Render(fmt.Sprintf(format, args...)))
}
