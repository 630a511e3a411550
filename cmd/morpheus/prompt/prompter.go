package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// ErrAborted is returned when the user interrupts a prompt or declines a
// confirmation.
var ErrAborted = errors.New("aborted")

// Prompter asks the user for input.
type Prompter interface {
	// Ask reads one line for label. An empty answer is returned as "".
	Ask(label string) (string, error)
	// Password reads one line without echo.
	Password(label string) (string, error)
	// Confirm asks a yes/no question.
	Confirm(question string) (bool, error)
	// Say prints a line of guidance above the prompt.
	Say(format string, args ...any)
}

// ReadlinePrompter prompts on a terminal through readline.
type ReadlinePrompter struct {
	in  io.ReadCloser
	out io.Writer
	rl  *readline.Instance
}

// NewReadlinePrompter creates a prompter reading from in and writing to out.
// The readline instance is created on first use.
func NewReadlinePrompter(in io.ReadCloser, out io.Writer) *ReadlinePrompter {
	return &ReadlinePrompter{in: in, out: out}
}

func (p *ReadlinePrompter) instance() (*readline.Instance, error) {
	if p.rl != nil {
		return p.rl, nil
	}
	rl, err := readline.NewEx(&readline.Config{
		Stdin:           p.in,
		Stdout:          p.out,
		InterruptPrompt: "^C",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline instance: %w", err)
	}
	p.rl = rl
	return rl, nil
}

// Close releases the terminal.
func (p *ReadlinePrompter) Close() error {
	if p.rl == nil {
		return nil
	}
	return p.rl.Close()
}

func (p *ReadlinePrompter) Ask(label string) (string, error) {
	rl, err := p.instance()
	if err != nil {
		return "", err
	}
	rl.SetPrompt(label)
	line, err := rl.Readline()
	if err != nil {
		return "", readErr(err)
	}
	return strings.TrimSpace(line), nil
}

func (p *ReadlinePrompter) Password(label string) (string, error) {
	rl, err := p.instance()
	if err != nil {
		return "", err
	}
	b, err := rl.ReadPassword(label)
	if err != nil {
		return "", readErr(err)
	}
	return string(b), nil
}

func (p *ReadlinePrompter) Confirm(question string) (bool, error) {
	return confirm(p, question)
}

func (p *ReadlinePrompter) Say(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// readErr maps interrupt and end of input to ErrAborted.
func readErr(err error) error {
	if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
		return ErrAborted
	}
	return err
}

// confirm re-asks until the answer is yes or no.
func confirm(p Prompter, question string) (bool, error) {
	for {
		answer, err := p.Ask(question + " (yes/no): ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		p.Say("Please answer yes or no.")
	}
}
