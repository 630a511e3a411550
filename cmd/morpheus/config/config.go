// Package config provides configuration management for the morpheus CLI.
//
// Flag values are bound to the package-level structs below by the commands
// package and read by handlers. A single invocation runs one command, so the
// state lives for exactly one process.
package config

import (
	"github.com/concave-dev/morpheus-cli/internal/version"
)

const (
	DefaultTimeout  = 30 // Default request timeout in seconds
	DefaultLogLevel = "ERROR"
	DefaultOutput   = "table"

	URLEnvVar   = "MORPHEUS_URL"       // Appliance URL used when no remote is registered
	TokenEnvVar = "MORPHEUS_API_TOKEN" // Bearer token override
)

// Version returns the current CLI version from the centralized version package
var Version = version.CLIVersion

// Global holds the global CLI configuration
var Global struct {
	Remote   string // Registered appliance name (--remote)
	URL      string // Appliance URL override (--url)
	Token    string // Bearer token override (--token)
	Insecure bool   // Skip TLS verification
	LogLevel string // Log level for CLI operations
	Timeout  int    // Request timeout in seconds
	Verbose  bool   // Show verbose output

	Output string   // Output format: table, json, yaml, csv
	JSON   bool     // Shorthand for --output=json
	YAML   bool     // Shorthand for --output=yaml
	CSV    bool     // Shorthand for --output=csv
	Fields []string // Restrict rendered fields (dot paths)

	Quiet    bool // Suppress non-error output
	DryRun   bool // Print requests instead of sending them
	NoPrompt bool // Never prompt; use flags and defaults only
	Yes      bool // Skip confirmation prompts

	// Resolved during validation
	ApplianceName string // Name of the targeted appliance (may be empty)
	ApplianceURL  string // Normalized base URL of the targeted appliance
	AccessToken   string // Bearer token sent with requests
}

// List holds the shared list command configuration
var List struct {
	Max       int    // Page size
	Offset    int    // Page offset
	Phrase    string // Search phrase
	Sort      string // Sort field
	Direction string // Sort direction: asc, desc
	Refresh   int    // Re-run every N seconds (0 disables)
}

// Payload holds the shared add/update payload configuration
var Payload struct {
	File    string   // --payload FILE (JSON or YAML)
	JSON    string   // --payload-json inline JSON
	Options []string // -O key.path=value pairs
}

// Budget holds budgets command configuration
var Budget struct {
	Group string
	Cloud string
	User  string
}

// Invoice holds invoices command configuration
var Invoice struct {
	RefType   string
	RefID     int64
	Group     string
	Cloud     string
	Instance  string
	Server    string
	User      string
	Start     string
	End       string
	Period    string
	Active    bool
	Estimate  bool
	Totals    bool
	LineItems bool
	Clouds    []string
	All       bool
}

// Remote holds remote command configuration
var Remote struct {
	Use bool // Make a newly added appliance active
}
