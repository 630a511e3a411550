package validate

import (
	"fmt"
	"net/url"
	"strings"
)

// ApplianceURL is a validated appliance base URL.
type ApplianceURL struct {
	Raw string `validate:"required,url"`
}

// ParseApplianceURL validates and normalizes an appliance URL. The scheme must be
// http or https and a host must be present. Trailing slashes are trimmed so
// API paths can be appended directly.
func ParseApplianceURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("appliance URL cannot be empty")
	}

	if err := validate.Struct(ApplianceURL{Raw: raw}); err != nil {
		return "", fmt.Errorf("invalid appliance URL '%s'", raw)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid appliance URL '%s': %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("appliance URL '%s' must use http or https", raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("appliance URL '%s' is missing a host", raw)
	}

	return strings.TrimRight(raw, "/"), nil
}
