// Package validate provides input validation utilities for the morpheus CLI,
// catching malformed flag values before any request reaches the appliance.
//
// VALIDATION COVERAGE:
//   - Remote Names: Format validation for locally registered appliances
//   - Appliance URLs: Absolute http/https URLs for the REST API
//   - Flag Values: Dates, billing periods, timeouts and numeric bounds
//
// All checks use the go-playground/validator library so error behavior stays
// consistent across config validation and handler input checks.
package validate

import (
	"github.com/go-playground/validator/v10"
)

var (
	// Global validator instance using built-in validations
	validate *validator.Validate
)

func init() {
	validate = validator.New()
}

// ValidateField validates individual values against specified validation rules using
// the go-playground/validator library. Supports all built-in tags without
// requiring struct definitions.
//
// Example: ValidateField("https://morpheus.example.com", "required,url")
func ValidateField(value interface{}, tag string) error {
	return validate.Var(value, tag)
}
