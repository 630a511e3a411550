package display

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/config"
	"golang.org/x/term"
)

// spinnerEnabled reports whether progress can be drawn: table output to an
// interactive terminal, without --quiet.
func spinnerEnabled() bool {
	if config.Global.Quiet || config.Global.Output != "table" {
		return false
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// WithSpinner runs fn while a spinner with msg is drawn on stderr.
func WithSpinner(msg string, fn func() error) error {
	if !spinnerEnabled() {
		return fn()
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + msg
	s.Start()
	defer s.Stop()

	return fn()
}
