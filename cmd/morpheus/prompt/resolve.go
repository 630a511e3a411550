package prompt

import (
	"fmt"

	"github.com/concave-dev/morpheus-cli/cmd/morpheus/payload"
	"github.com/concave-dev/morpheus-cli/internal/logging"
)

// Resolve collects values for the options missing from known, which holds
// what the payload file and flags already supply. It returns only the new
// values, keyed by option path.
//
// With noPrompt (or a nil prompter) defaults fill optional fields and a
// missing required option is an error naming its flag. Otherwise each missing
// option is asked for; an empty answer takes the default, required options are
// re-asked until answered and invalid answers are re-asked with the reason.
func Resolve(opts []OptionType, known map[string]any, p Prompter, noPrompt bool) (map[string]any, error) {
	answers := map[string]any{}
	for _, opt := range opts {
		if _, ok := payload.Get(known, opt.Path()); ok {
			continue
		}

		if noPrompt || p == nil {
			if opt.DefaultValue != "" {
				v, err := opt.Convert(opt.DefaultValue)
				if err != nil {
					return nil, err
				}
				payload.Set(answers, opt.Path(), v)
				continue
			}
			if opt.Required {
				return nil, fmt.Errorf("missing required option --%s", opt.Flag())
			}
			continue
		}

		v, ok, err := ask(opt, p)
		if err != nil {
			return nil, err
		}
		if ok {
			payload.Set(answers, opt.Path(), v)
		}
	}
	return answers, nil
}

// ask prompts for one option until a usable answer is given. ok is false when
// an optional field was left empty with no default.
func ask(opt OptionType, p Prompter) (any, bool, error) {
	label := opt.Label()
	if opt.Required {
		label += " *"
	}
	if opt.DefaultValue != "" && opt.Type != Password {
		label += fmt.Sprintf(" [%s]", opt.DefaultValue)
	}
	label += ": "

	if opt.Type == Select {
		for _, choice := range opt.Options {
			p.Say("  %s (%s)", choice.Name, choice.Value)
		}
	}

	for {
		var raw string
		var err error
		if opt.Type == Password {
			raw, err = p.Password(label)
		} else {
			raw, err = p.Ask(label)
		}
		if err != nil {
			return nil, false, err
		}

		if raw == "" {
			raw = opt.DefaultValue
		}
		if raw == "" {
			if opt.Required {
				p.Say("%s is required.", opt.Label())
				continue
			}
			return nil, false, nil
		}

		v, err := opt.Convert(raw)
		if err != nil {
			p.Say("%v", err)
			continue
		}
		if opt.Type != Password {
			logging.Debug("Prompted %s = %v", opt.Path(), v)
		}
		return v, true, nil
	}
}
