// Package utils provides utility functions for the morpheus CLI.
// This file contains logging setup and Resty logger integration utilities.
package utils

import (
	"os"

	"github.com/concave-dev/morpheus-cli/cmd/morpheus/config"
	"github.com/concave-dev/morpheus-cli/internal/logging"
)

// RestyLogger implements resty.Logger and routes logs through structured logging
type RestyLogger struct{}

// Errorf routes error messages through structured logging.
func (RestyLogger) Errorf(format string, v ...interface{}) {
	logging.Error(format, v...)
}

// Warnf routes warning messages through structured logging.
func (RestyLogger) Warnf(format string, v ...interface{}) {
	logging.Warn(format, v...)
}

// Debugf routes debug messages through structured logging.
func (RestyLogger) Debugf(format string, v ...interface{}) {
	logging.Debug(format, v...)
}

// SetupLogging configures CLI logging behavior based on environment and config.
// DEBUG=true enables debug output; an explicit --log-level below ERROR is
// honored; otherwise only errors are shown.
func SetupLogging() {
	// keyring and readline log through the standard logger
	logging.RedirectStandardLog(logging.NewLevelWriter("debug", "log"))

	if os.Getenv("DEBUG") == "true" {
		logging.RestoreOutput()
		logging.SetLevel("DEBUG")
		return
	}

	logging.SuppressOutput()
	if config.Global.LogLevel != "" && config.Global.LogLevel != config.DefaultLogLevel {
		logging.RestoreOutput()
		logging.SetLevel(config.Global.LogLevel)
	}
}
