package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/concave-dev/morpheus-cli/cmd/morpheus/utils"
)

// APIError is a non-2xx response from the appliance.
type APIError struct {
	StatusCode int
	Message    string            // msg or message from the response body
	Errors     map[string]string // Per-field validation errors
	Body       string            // Raw response body
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if len(e.Errors) > 0 {
		msg += " (" + strings.Join(e.FieldErrors(), "; ") + ")"
	}
	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, msg)
}

// FieldErrors returns the per-field errors as "field: message", sorted by field.
func (e *APIError) FieldErrors() []string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	out := make([]string, 0, len(fields))
	for _, field := range fields {
		out = append(out, field+": "+e.Errors[field])
	}
	return out
}

// IsNotFound reports whether the appliance answered 404.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// newAPIError parses the error body the appliance returns, which looks like
// {"success": false, "msg": "...", "errors": {"name": "..."}}. Bodies that are
// not JSON are kept raw.
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Body: string(body)}

	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return apiErr
	}

	apiErr.Message = utils.GetString(parsed, "msg")
	if apiErr.Message == "" {
		apiErr.Message = utils.GetString(parsed, "message")
	}
	if errs := utils.GetMap(parsed, "errors"); len(errs) > 0 {
		apiErr.Errors = make(map[string]string, len(errs))
		for field, v := range errs {
			apiErr.Errors[field] = utils.Stringify(v)
		}
	}
	return apiErr
}
