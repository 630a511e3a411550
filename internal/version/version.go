// Package version provides centralized version information for the morpheus CLI.
// The version is reported by `morpheus --version` and sent in the User-Agent
// header of every appliance request.
// All versions follow semantic versioning (semver) conventions.

package version

// CLIVersion holds the current morpheus CLI version.
// Format: major.minor.patch[-prerelease][+build]
const CLIVersion = "0.1.0-dev"
