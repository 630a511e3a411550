package validate

import (
	"fmt"
	"time"
)

// ValidateRequiredString validates that a string field is not empty.
func ValidateRequiredString(value, fieldName string) error {
	if err := ValidateField(value, "required"); err != nil {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}

// ValidatePositiveTimeout validates that a timeout duration is positive (> 0).
func ValidatePositiveTimeout(timeout time.Duration, name string) error {
	if timeout <= 0 {
		return fmt.Errorf("%s must be positive", name)
	}
	return nil
}

// ValidateNonNegative validates paging values such as --max and --offset.
func ValidateNonNegative(value int, name string) error {
	if err := ValidateField(value, "min=0"); err != nil {
		return fmt.Errorf("%s cannot be negative", name)
	}
	return nil
}

// ValidateDate validates a calendar date in YYYY-MM-DD format.
func ValidateDate(value, name string) error {
	if err := ValidateField(value, "datetime=2006-01-02"); err != nil {
		return fmt.Errorf("%s '%s' must be a date in YYYY-MM-DD format", name, value)
	}
	return nil
}

// ValidatePeriod validates an invoice billing period in YYYYMM format.
func ValidatePeriod(value string) error {
	if err := ValidateField(value, "len=6,datetime=200601"); err != nil {
		return fmt.Errorf("period '%s' must be in YYYYMM format", value)
	}
	return nil
}
