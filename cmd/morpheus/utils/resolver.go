// Package utils provides utility functions for the morpheus CLI.
package utils

import (
	"fmt"
	"strings"
)

// IsNumericID reports whether an argument should be treated as a resource ID.
// Morpheus IDs are positive integers; anything else is looked up by name.
func IsNumericID(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, char := range s {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

// SplitList splits a comma separated flag value into trimmed, non-empty items.
func SplitList(values ...string) []string {
	var items []string
	for _, value := range values {
		for _, item := range strings.Split(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
	}
	return items
}

// MatchIDs formats the IDs of duplicate name matches for error messages.
func MatchIDs(matches []map[string]any) string {
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, fmt.Sprintf("%d", GetInt64(m, "id")))
	}
	return strings.Join(ids, ", ")
}
