// Package utils provides type-safe data conversion utilities for the morpheus CLI.
//
// Appliance responses are decoded into map[string]any and inspected ad hoc.
// Every accessor here handles missing keys and unexpected types by returning a
// zero value instead of panicking, so a response that lacks a field renders
// as an empty cell rather than crashing the command.
//
// SUPPORTED CONVERSIONS:
//   - Primitive types: string, int64, float64, bool
//   - Time values: RFC3339 formatted strings to time.Time
//   - Nested values: dot paths such as "zone.name" or "costs.0"
//   - Display strings: any JSON value to a single table cell
package utils

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// GetString safely extracts a string value from any maps.
// Returns empty string if key doesn't exist or type assertion fails.
func GetString(m map[string]any, key string) string {
	if val, ok := m[key].(string); ok {
		return val
	}
	return ""
}

// GetInt64 safely extracts an integer value from any maps.
// JSON numbers decode as float64; numeric strings are accepted as well since
// some appliance endpoints return IDs as strings.
func GetInt64(m map[string]any, key string) int64 {
	return ToInt64(m[key])
}

// ToInt64 converts a decoded JSON value to int64, returning 0 on failure.
func ToInt64(v any) int64 {
	switch val := v.(type) {
	case float64:
		return int64(val)
	case int:
		return int64(val)
	case int64:
		return val
	case json.Number:
		n, _ := val.Int64()
		return n
	case string:
		n, _ := strconv.ParseInt(val, 10, 64)
		return n
	}
	return 0
}

// GetFloat safely extracts a float64 value from any maps.
// Returns 0.0 if key doesn't exist or type assertion fails.
func GetFloat(m map[string]any, key string) float64 {
	return ToFloat(m[key])
}

// ToFloat converts a decoded JSON value to float64, returning 0 on failure.
func ToFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case string:
		f, _ := strconv.ParseFloat(val, 64)
		return f
	}
	return 0.0
}

// GetBool safely extracts a bool value from any maps.
// Returns false if key doesn't exist or type assertion fails.
func GetBool(m map[string]any, key string) bool {
	if val, ok := m[key].(bool); ok {
		return val
	}
	return false
}

// GetMap safely extracts a nested object.
func GetMap(m map[string]any, key string) map[string]any {
	if val, ok := m[key].(map[string]any); ok {
		return val
	}
	return nil
}

// GetSlice safely extracts a nested array.
func GetSlice(m map[string]any, key string) []any {
	if val, ok := m[key].([]any); ok {
		return val
	}
	return nil
}

// GetMapSlice extracts an array of objects, skipping non-object elements.
func GetMapSlice(m map[string]any, key string) []map[string]any {
	var result []map[string]any
	for _, item := range GetSlice(m, key) {
		if obj, ok := item.(map[string]any); ok {
			result = append(result, obj)
		}
	}
	return result
}

// ToTime parses an RFC3339 (or plain date) string value.
func ToTime(v any) time.Time {
	val, ok := v.(string)
	if !ok {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, val); err == nil {
			return t
		}
	}
	return time.Time{}
}

// GetPath walks a dot-separated path through nested objects and arrays.
// Numeric segments index arrays. Returns nil when any segment is missing.
func GetPath(m map[string]any, path string) any {
	var current any = m
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			current = node[segment]
		case []any:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil
			}
			current = node[idx]
		default:
			return nil
		}
		if current == nil {
			return nil
		}
	}
	return current
}

// GetPathString returns the display string of the value at path.
func GetPathString(m map[string]any, path string) string {
	return Stringify(GetPath(m, path))
}

// Stringify renders a decoded JSON value as a single table cell. Objects show
// their name (or code, or id), arrays are joined with commas, and whole floats drop
// their fraction.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "Yes"
		}
		return "No"
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case map[string]any:
		for _, key := range []string{"name", "code"} {
			if label := GetString(val, key); label != "" {
				return label
			}
		}
		if id, ok := val["id"]; ok {
			return Stringify(id)
		}
		return fmt.Sprintf("%d fields", len(val))
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, Stringify(item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", val)
	}
}
