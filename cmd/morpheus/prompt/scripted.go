package prompt

import (
	"fmt"
	"strings"
)

// ScriptedPrompter answers prompts from a fixed list, in order. It records
// every label it was asked so callers can assert which fields were prompted.
// Running out of answers behaves like end of input.
type ScriptedPrompter struct {
	Answers []string
	Asked   []string
	Said    []string
}

// NewScriptedPrompter returns a prompter that replays answers.
func NewScriptedPrompter(answers ...string) *ScriptedPrompter {
	return &ScriptedPrompter{Answers: answers}
}

func (p *ScriptedPrompter) next(label string) (string, error) {
	p.Asked = append(p.Asked, strings.TrimSpace(label))
	if len(p.Answers) == 0 {
		return "", ErrAborted
	}
	answer := p.Answers[0]
	p.Answers = p.Answers[1:]
	return answer, nil
}

func (p *ScriptedPrompter) Ask(label string) (string, error) {
	answer, err := p.next(label)
	return strings.TrimSpace(answer), err
}

func (p *ScriptedPrompter) Password(label string) (string, error) {
	return p.next(label)
}

func (p *ScriptedPrompter) Confirm(question string) (bool, error) {
	return confirm(p, question)
}

func (p *ScriptedPrompter) Say(format string, args ...any) {
	p.Said = append(p.Said, fmt.Sprintf(format, args...))
}
