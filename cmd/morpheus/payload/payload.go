// Package payload builds the JSON request bodies sent by add and update commands.
//
// A payload can come from three places: a --payload file (JSON or YAML) or
// inline --payload-json, answers collected by the interactive prompter, and
// explicit flags including -O key.path=value options. Layers merges them with
// flags taking precedence over prompt answers, and prompt answers over the file.
package payload

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"sigs.k8s.io/yaml"
)

// Load reads a payload file. YAML is converted to JSON first so both formats
// decode identically; the top level must be an object.
func Load(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read payload file: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid payload file %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a JSON or YAML document into a payload map.
func Parse(data []byte) (map[string]any, error) {
	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, err
	}

	var m map[string]any
	if err := json.Unmarshal(jsonData, &m); err != nil {
		return nil, fmt.Errorf("payload must be an object: %w", err)
	}
	if m == nil {
		return nil, fmt.Errorf("payload is empty")
	}
	return m, nil
}

// ParseOptions converts -O key.path=value pairs into a nested map. Values that
// look like booleans, numbers, JSON arrays or objects are decoded; everything
// else stays a string.
func ParseOptions(pairs []string) (map[string]any, error) {
	result := map[string]any{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid option '%s', expected key=value", pair)
		}
		Set(result, key, ParseValue(strings.TrimSpace(value)))
	}
	return result, nil
}

// ParseValue decodes a scalar or JSON literal given on the command line.
func ParseValue(s string) any {
	switch s {
	case "true", "on":
		return true
	case "false", "off":
		return false
	case "null":
		return nil
	}
	// Leading zeros mark codes such as "007", not numbers
	if n, err := strconv.ParseInt(s, 10, 64); err == nil && (s == "0" || !strings.HasPrefix(s, "0")) {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && strings.Contains(s, ".") {
		return f
	}
	if strings.HasPrefix(s, "[") || strings.HasPrefix(s, "{") {
		var v any
		if err := json.Unmarshal([]byte(s), &v); err == nil {
			return v
		}
	}
	return s
}

// Set assigns value at a dot-separated path, creating intermediate objects.
// An intermediate non-object value is replaced.
func Set(m map[string]any, path string, value any) {
	segments := strings.Split(path, ".")
	current := m
	for _, segment := range segments[:len(segments)-1] {
		next, ok := current[segment].(map[string]any)
		if !ok {
			next = map[string]any{}
			current[segment] = next
		}
		current = next
	}
	current[segments[len(segments)-1]] = value
}

// Get returns the value at a dot-separated path and whether it was present.
func Get(m map[string]any, path string) (any, bool) {
	segments := strings.Split(path, ".")
	current := m
	for i, segment := range segments {
		value, ok := current[segment]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return value, true
		}
		if current, ok = value.(map[string]any); !ok {
			return nil, false
		}
	}
	return nil, false
}

// Merge deep-merges src into dst. Nested objects merge key by key; any other
// value in src replaces the value in dst.
func Merge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = map[string]any{}
	}
	for key, value := range src {
		srcMap, srcIsMap := value.(map[string]any)
		dstMap, dstIsMap := dst[key].(map[string]any)
		if srcIsMap && dstIsMap {
			dst[key] = Merge(dstMap, srcMap)
			continue
		}
		if srcIsMap {
			dst[key] = Merge(map[string]any{}, srcMap)
			continue
		}
		dst[key] = value
	}
	return dst
}

// Layers holds the payload sources for one command, lowest precedence first.
type Layers struct {
	File   map[string]any // --payload / --payload-json
	Prompt map[string]any // interactive answers and defaults
	Flags  map[string]any // explicit flags and -O options
}

// Build merges the layers into a fresh payload: flags > prompt > file.
func (l Layers) Build() map[string]any {
	result := map[string]any{}
	for _, layer := range []map[string]any{l.File, l.Prompt, l.Flags} {
		result = Merge(result, layer)
	}
	return result
}

// Known merges file and flag layers; prompting asks only for what is missing here.
func (l Layers) Known() map[string]any {
	return Merge(Merge(map[string]any{}, l.File), l.Flags)
}
