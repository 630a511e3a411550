package commands

import (
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/config"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/prompt"
	"github.com/spf13/cobra"
)

// SetupListFlags configures the paging and search flags shared by list commands
func SetupListFlags(cmd *cobra.Command) {
	l := &config.List
	cmd.Flags().IntVar(&l.Max, "max", 0, "Maximum number of results (appliance default when 0)")
	cmd.Flags().IntVar(&l.Offset, "offset", 0, "Offset of the first result")
	cmd.Flags().StringVar(&l.Phrase, "phrase", "", "Search phrase, also accepted as arguments")
	cmd.Flags().StringVar(&l.Sort, "sort", "", "Sort by field, e.g. name")
	cmd.Flags().StringVar(&l.Direction, "direction", "", "Sort direction: asc, desc")
	cmd.Flags().IntVar(&l.Refresh, "refresh", 0, "Redraw every N seconds until interrupted")
}

// SetupPayloadFlags configures the request body flags shared by add and update
func SetupPayloadFlags(cmd *cobra.Command) {
	p := &config.Payload
	cmd.Flags().StringVar(&p.File, "payload", "", "Request body from a JSON or YAML file")
	cmd.Flags().StringVar(&p.JSON, "payload-json", "", "Request body as inline JSON")
	cmd.Flags().StringArrayVarP(&p.Options, "option", "O", nil,
		"Set a field of the object as key.path=value (repeatable)")
}

// SetupOptionFlags adds one string flag per option type. Values are converted
// by the option's type when the command runs, so --enabled=off and a prompt
// answer of "no" behave the same.
func SetupOptionFlags(cmd *cobra.Command, opts []prompt.OptionType) {
	for _, opt := range opts {
		if cmd.Flags().Lookup(opt.Flag()) != nil {
			continue
		}
		cmd.Flags().String(opt.Flag(), "", opt.Usage())
		if opt.Type == prompt.Checkbox {
			cmd.Flags().Lookup(opt.Flag()).NoOptDefVal = "on"
		}
	}
}
