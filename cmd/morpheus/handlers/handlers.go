// Package handlers provides command handler functions for the morpheus CLI.
//
// Every resource command runs the same pipeline: parse flags, optionally
// prompt for missing fields, build the request payload, call the appliance,
// and render the response. resource.go implements that pipeline once for any
// resources.Resource; the other files add what a specific resource needs on
// top of it:
//   - budgets.go: scope references and cost expansion by interval
//   - invoices.go: billing filters, line items and refresh
//   - whoami.go: the current user and appliance
//   - remote.go: the local registry of appliances
//
// Handlers return errors instead of printing them. main prints the error once
// and converts it to the process exit code with ExitCode.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/concave-dev/morpheus-cli/cmd/morpheus/client"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/config"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/display"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/prompt"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/utils"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitError   = 1
	ExitAborted = 9
)

// ErrAborted is returned when a confirmation is declined or a prompt is
// interrupted.
var ErrAborted = prompt.ErrAborted

// NotFoundError reports a failed name or ID lookup.
type NotFoundError struct {
	Label string // Resource label, e.g. "Budget"
	Field string // Lookup field: id, name, username, ...
	Value string
}

func (e *NotFoundError) Error() string {
	if e.Field == "id" {
		return fmt.Sprintf("%s not found by id %s", e.Label, e.Value)
	}
	return fmt.Sprintf("%s not found by %s '%s'", e.Label, e.Field, e.Value)
}

// ExitCode maps a command error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrAborted):
		return ExitAborted
	default:
		return ExitError
	}
}

// NewPrompter creates the prompter used for interactive input. Tests replace
// it with a scripted prompter.
var NewPrompter = newReadlinePrompter

// newReadlinePrompter prompts on stderr so questions never mix into JSON,
// YAML or CSV written to stdout.
func newReadlinePrompter(cmd *cobra.Command) prompt.Prompter {
	return prompt.NewReadlinePrompter(io.NopCloser(cmd.InOrStdin()), cmd.ErrOrStderr())
}

// session carries what one command invocation needs.
type session struct {
	cmd    *cobra.Command
	ctx    context.Context
	out    io.Writer
	client *client.Client
	p      prompt.Prompter

	// fromFile is set when the payload came from --payload or
	// --payload-json. Nothing is prompted for in that case.
	fromFile bool
}

func newSession(cmd *cobra.Command) *session {
	utils.SetupLogging()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return &session{
		cmd:    cmd,
		ctx:    ctx,
		out:    cmd.OutOrStdout(),
		client: client.CreateAPIClient(),
	}
}

// newLocalSession is a session for commands that never contact an appliance.
func newLocalSession(cmd *cobra.Command) *session {
	utils.SetupLogging()
	return &session{cmd: cmd, ctx: context.Background(), out: cmd.OutOrStdout()}
}

// prompter returns the interactive prompter, or nil under --no-prompt.
func (s *session) prompter() prompt.Prompter {
	if config.Global.NoPrompt {
		return nil
	}
	if s.p == nil {
		s.p = NewPrompter(s.cmd)
	}
	return s.p
}

func (s *session) close() {
	if c, ok := s.p.(io.Closer); ok {
		c.Close()
	}
}

// send executes req, or prints it when --dry-run is set. dry reports that
// nothing was sent.
func (s *session) send(req client.Request, progress string) (resp map[string]any, dry bool, err error) {
	if config.Global.DryRun {
		display.PrintDryRun(s.out, s.client, req)
		return nil, true, nil
	}
	err = display.WithSpinner(progress, func() error {
		var doErr error
		resp, doErr = s.client.Do(s.ctx, req)
		return doErr
	})
	return resp, false, err
}

// confirm asks question unless --yes is set. A declined confirmation returns
// ErrAborted.
func (s *session) confirm(question string) error {
	if config.Global.Yes {
		return nil
	}
	p := s.prompter()
	if p == nil {
		return fmt.Errorf("confirmation required: %s (use --yes with --no-prompt)", question)
	}
	ok, err := p.Confirm(question)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAborted
	}
	return nil
}

// printStructured prints a response as JSON or YAML, narrowed by --fields.
func (s *session) printStructured(resp map[string]any, key string) error {
	return display.PrintStructured(s.out, config.Global.Output, display.SelectFields(resp, key, config.Global.Fields))
}
