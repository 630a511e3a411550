// Package logging provides centralized log level validation for the morpheus CLI.
//
// This file defines the canonical set of valid log levels accepted by the
// --log-level flag. Centralizing validation keeps flag validation and the
// logger's own level switch in agreement.
//
// SUPPORTED LOG LEVELS:
//   - DEBUG: Request/response tracing and resolver decisions
//   - INFO:  Progress messages for each command phase
//   - WARN:  Conditions that should be noted but don't stop a command
//   - ERROR: Failures that end a command
//
// All log level strings are case-sensitive and must be uppercase.
package logging

import "fmt"

// ValidLogLevels defines the canonical set of supported log levels.
var ValidLogLevels = map[string]bool{
	"DEBUG": true,
	"INFO":  true,
	"WARN":  true,
	"ERROR": true,
}

// IsValidLogLevel checks if the provided log level string is supported.
func IsValidLogLevel(level string) bool {
	return ValidLogLevels[level]
}

// ValidateLogLevel validates a log level string and returns an error if invalid.
// Used by global flag validation to catch invalid levels before any request is made.
func ValidateLogLevel(level string) error {
	if !IsValidLogLevel(level) {
		return fmt.Errorf("invalid log level: %s", level)
	}
	return nil
}
