package display

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/concave-dev/morpheus-cli/cmd/morpheus/payload"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/utils"
	"gopkg.in/yaml.v3"
)

// PrintStructured prints data as indented JSON or YAML.
func PrintStructured(w io.Writer, format string, data any) error {
	switch format {
	case "yaml":
		out, err := yaml.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		_, err = w.Write(out)
		return err
	default:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	}
}

// SelectFields narrows a response to the given dot paths of the object (or
// each object of the array) stored under key. The meta object is kept.
// Without fields the response is returned unchanged.
func SelectFields(response map[string]any, key string, fields []string) map[string]any {
	if len(fields) == 0 {
		return response
	}

	pick := func(record map[string]any) map[string]any {
		out := map[string]any{}
		for _, f := range fields {
			if v := utils.GetPath(record, f); v != nil {
				payload.Set(out, f, v)
			}
		}
		return out
	}

	result := map[string]any{}
	if meta, ok := response["meta"]; ok {
		result["meta"] = meta
	}
	switch v := response[key].(type) {
	case map[string]any:
		result[key] = pick(v)
	case []any:
		items := make([]any, 0, len(v))
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				items = append(items, pick(m))
			}
		}
		result[key] = items
	default:
		return pick(response)
	}
	return result
}
