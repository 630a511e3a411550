// Package prompt defines the option types that describe add/update inputs and
// the interactive prompter that asks for them.
//
// An OptionType names one field of a request payload: where it lives, how it
// is labelled, which flag sets it, and how a raw answer is converted. The same
// conversion runs for flag values and prompt answers, so a checkbox given as
// --enabled=off and answered as "no" both produce false.
package prompt

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Type is the input type of an option.
type Type string

const (
	Text     Type = "text"
	TextArea Type = "textarea"
	Number   Type = "number"
	Checkbox Type = "checkbox"
	Select   Type = "select"
	Password Type = "password"
)

// SelectOption is one choice of a select option.
type SelectOption struct {
	Name  string
	Value string
}

// OptionType describes one input of an add or update command.
type OptionType struct {
	FieldName    string // JSON field name
	FieldContext string // Nested object the field lives in, empty for the resource object itself
	FieldLabel   string // Prompt label and table heading
	Type         Type
	Required     bool
	DefaultValue string
	Description  string
	Options      []SelectOption // Choices for select options
	FlagName     string         // Overrides the flag derived from FieldName
	CreateOnly   bool           // Not offered by update

	// Lookup names the resource command (e.g. "clouds") whose name or ID the
	// answer refers to. Handlers replace the answer with the resolved ID, or
	// with [{id}] objects for a comma separated list when Many is set.
	Lookup string
	Many   bool
}

// Path returns the dot path of the field inside the resource object.
func (o OptionType) Path() string {
	if o.FieldContext == "" {
		return o.FieldName
	}
	return o.FieldContext + "." + o.FieldName
}

// Flag returns the command-line flag name for the option, deriving a
// kebab-case name from FieldName when FlagName is empty.
func (o OptionType) Flag() string {
	if o.FlagName != "" {
		return o.FlagName
	}
	return kebab(o.FieldName)
}

// Label returns the prompt label, falling back to the field name.
func (o OptionType) Label() string {
	if o.FieldLabel != "" {
		return o.FieldLabel
	}
	return o.FieldName
}

// Usage builds the flag help text.
func (o OptionType) Usage() string {
	usage := o.Label()
	if o.Description != "" {
		usage = o.Description
	}
	if len(o.Options) > 0 {
		values := make([]string, 0, len(o.Options))
		for _, opt := range o.Options {
			values = append(values, opt.Value)
		}
		usage += " (" + strings.Join(values, ", ") + ")"
	}
	if o.DefaultValue != "" {
		usage += fmt.Sprintf(" [default: %s]", o.DefaultValue)
	}
	return usage
}

// Convert turns a raw flag value or prompt answer into the payload value.
func (o OptionType) Convert(raw string) (any, error) {
	raw = strings.TrimSpace(raw)
	switch o.Type {
	case Number:
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return n, nil
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%s must be a number, got '%s'", o.Label(), raw)
		}
		return f, nil
	case Checkbox:
		switch strings.ToLower(raw) {
		case "on", "yes", "y", "true":
			return true, nil
		case "off", "no", "n", "false":
			return false, nil
		}
		return nil, fmt.Errorf("%s must be one of on, off, yes, no, true, false", o.Label())
	case Select:
		for _, opt := range o.Options {
			if strings.EqualFold(raw, opt.Value) || strings.EqualFold(raw, opt.Name) {
				return opt.Value, nil
			}
		}
		values := make([]string, 0, len(o.Options))
		for _, opt := range o.Options {
			values = append(values, opt.Value)
		}
		return nil, fmt.Errorf("invalid %s '%s' - valid: %s", o.Label(), raw, strings.Join(values, ", "))
	default:
		return raw, nil
	}
}

func kebab(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
