// Package handlers provides command handler functions for the morpheus CLI.
//
// This file holds the resource pipeline shared by every CRUD command. Each
// handler is built from a resources.Resource, which supplies the API path,
// JSON keys, columns and option types, plus optional Hooks for behavior a
// single resource needs (budget scopes, invoice filters).
//
// Reads (list, get) never change appliance state and are safe to repeat.
// Writes (add, update, remove) resolve every name to an ID before anything is
// sent, so a failed lookup never leaves a half-applied change behind. Under
// --dry-run the lookups still run but the write is printed instead of sent.
package handlers

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/concave-dev/morpheus-cli/cmd/morpheus/config"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/display"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/payload"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/prompt"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/resources"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/utils"
	"github.com/concave-dev/morpheus-cli/internal/logging"
	"github.com/spf13/cobra"
)

// RunE is the signature cobra expects for command handlers.
type RunE func(cmd *cobra.Command, args []string) error

// Hooks customise the generic pipeline for one resource. All are optional.
type Hooks struct {
	// Flags adds resource-specific flag values to the flags layer of add
	// and update, before anything is prompted for.
	Flags func(s *session, obj map[string]any) error
	// Params adds resource filters to list queries.
	Params func(s *session, params url.Values) error
	// Footer returns a totals row for list tables.
	Footer func(cols []display.Column, records []map[string]any, resp map[string]any) []string
	// Prepare adjusts the resource object before add or update sends it.
	// current is the existing record on update and nil on add.
	Prepare func(s *session, obj map[string]any, current map[string]any) error
	// Details prints extra sections below get output.
	Details func(s *session, record map[string]any)
}

// List returns the list handler for res. It builds the shared paging and
// search query, lets the resource add its own filters, and renders the page
// as a table with a pagination footer, or as JSON, YAML or CSV.
//
// With --refresh N the request is repeated every N seconds until interrupted.
// Dry run prints the query once and returns without contacting the appliance.
func List(res *resources.Resource, hooks Hooks) RunE {
	return func(cmd *cobra.Command, args []string) error {
		s := newSession(cmd)

		params := listParams(args)
		if hooks.Params != nil {
			if err := hooks.Params(s, params); err != nil {
				return err
			}
		}

		req := s.client.Resource(res.Path).ListRequest(params)
		if config.Global.DryRun {
			_, _, err := s.send(req, "")
			return err
		}

		return utils.RunWithRefresh(s.ctx, s.out, config.List.Refresh, func(ctx context.Context) error {
			resp, _, err := s.send(req, "Loading "+res.Plural)
			if err != nil {
				return err
			}
			return s.renderList(res, resp, params, hooks.Footer)
		})
	}
}

// listParams builds the shared list query. Positional arguments form the
// search phrase.
func listParams(args []string) url.Values {
	params := url.Values{}
	if config.List.Max > 0 {
		params.Set("max", strconv.Itoa(config.List.Max))
	}
	if config.List.Offset > 0 {
		params.Set("offset", strconv.Itoa(config.List.Offset))
	}
	phrase := config.List.Phrase
	if phrase == "" && len(args) > 0 {
		phrase = strings.Join(args, " ")
	}
	if phrase != "" {
		params.Set("phrase", phrase)
	}
	if config.List.Sort != "" {
		params.Set("sort", config.List.Sort)
	}
	if config.List.Direction != "" {
		params.Set("direction", strings.ToLower(config.List.Direction))
	}
	return params
}

func (s *session) renderList(res *resources.Resource, resp map[string]any, params url.Values,
	footer func([]display.Column, []map[string]any, map[string]any) []string) error {
	if display.Structured() {
		return s.printStructured(resp, res.ListKey)
	}

	records := utils.GetMapSlice(resp, res.ListKey)
	cols := display.ColumnsFor(config.Global.Fields, res.Columns)
	if config.Global.Output == "csv" {
		display.PrintCSV(s.out, cols, records)
		return nil
	}

	var subtitles []string
	if phrase := params.Get("phrase"); phrase != "" {
		subtitles = append(subtitles, "Phrase: "+phrase)
	}
	if config.Global.ApplianceName != "" {
		subtitles = append(subtitles, "Remote: "+config.Global.ApplianceName)
	}
	display.PrintTitle(s.out, res.Title(), subtitles...)

	if len(records) == 0 {
		display.PrintEmpty(s.out, res.Plural)
		return nil
	}

	var footerRow []string
	if footer != nil && len(config.Global.Fields) == 0 {
		footerRow = footer(cols, records, resp)
	}
	display.PrintTable(s.out, cols, records, footerRow)
	display.PrintPagination(s.out, utils.GetMap(resp, "meta"), res.Plural)
	return nil
}

// Get returns the get handler for res. Each argument is resolved by name or
// ID and printed in turn; the first failure stops the loop so the exit code
// reflects it. A missing record is reported as a NotFoundError.
func Get(res *resources.Resource, hooks Hooks) RunE {
	return func(cmd *cobra.Command, args []string) error {
		s := newSession(cmd)
		for _, arg := range args {
			if err := s.show(res, arg, nil, hooks.Details); err != nil {
				return err
			}
		}
		return nil
	}
}

// show fetches one record by name or ID, with optional query params, and
// renders it.
func (s *session) show(res *resources.Resource, arg string, params url.Values, details func(*session, map[string]any)) error {
	var id int64
	if utils.IsNumericID(arg) {
		var err error
		if id, err = parseID(res, arg); err != nil {
			return err
		}
	} else {
		record, err := s.find(res, arg)
		if err != nil {
			return err
		}
		id = utils.GetInt64(record, "id")
	}
	return s.showID(res, id, params, details)
}

// showID fetches a record by ID and renders it. A 404 becomes a
// NotFoundError naming the ID.
func (s *session) showID(res *resources.Resource, id int64, params url.Values, details func(*session, map[string]any)) error {
	req := s.client.Resource(res.Path).GetRequest(id, params)
	resp, dry, err := s.send(req, "Loading "+res.Singular)
	if err != nil {
		return notFoundOr(err, res, "id", strconv.FormatInt(id, 10))
	}
	if dry {
		return nil
	}
	return s.renderDetails(res, resp, details)
}

// renderDetails prints one record. Extra sections from the details hook are
// skipped when --fields narrows the output.
func (s *session) renderDetails(res *resources.Resource, resp map[string]any, details func(*session, map[string]any)) error {
	if display.Structured() {
		return s.printStructured(resp, res.Key)
	}

	record := utils.GetMap(resp, res.Key)
	cols := display.ColumnsFor(config.Global.Fields, res.Details)
	if config.Global.Output == "csv" {
		display.PrintCSV(s.out, cols, []map[string]any{record})
		return nil
	}

	display.PrintTitle(s.out, res.Label+" Details")
	display.PrintDetails(s.out, cols, record, config.Global.Verbose)
	if details != nil && len(config.Global.Fields) == 0 {
		details(s, record)
	}
	return nil
}

// Add returns the add handler for res. An optional positional argument
// supplies the name.
//
// The payload is layered: a --payload file or --payload-json at the bottom,
// prompt answers above it, flags and -O options on top. Prompting only asks
// for what the other layers leave missing, and is skipped entirely when a
// payload file was given or --no-prompt is set; a missing required option
// is then an error naming its flag. References are resolved to IDs after
// layering and before the create request, which is the only write.
func Add(res *resources.Resource, hooks Hooks) RunE {
	return func(cmd *cobra.Command, args []string) error {
		s := newSession(cmd)
		defer s.close()

		opts := res.CreateOptions()
		file, hasFile, err := payloadFile()
		if err != nil {
			return err
		}
		s.fromFile = hasFile
		flags, err := optionFlags(cmd, opts)
		if err != nil {
			return err
		}
		if len(args) > 0 {
			if _, ok := payload.Get(flags, res.LookupField()); !ok {
				payload.Set(flags, res.LookupField(), args[0])
			}
		}
		if hooks.Flags != nil {
			if err := hooks.Flags(s, flags); err != nil {
				return err
			}
		}

		layers := payload.Layers{File: file, Flags: map[string]any{res.Key: flags}}
		if !hasFile {
			known := utils.GetMap(layers.Known(), res.Key)
			p := s.prompter()
			answers, err := prompt.Resolve(opts, known, p, p == nil)
			if err != nil {
				return err
			}
			layers.Prompt = map[string]any{res.Key: answers}
		}

		body := layers.Build()
		obj := objectOf(body, res.Key)
		if err := s.resolveLookups(opts, obj); err != nil {
			return err
		}
		if hooks.Prepare != nil {
			if err := hooks.Prepare(s, obj, nil); err != nil {
				return err
			}
		}

		resp, dry, err := s.send(s.client.Resource(res.Path).CreateRequest(body), "Creating "+res.Singular)
		if err != nil || dry {
			return err
		}
		if display.Structured() {
			return s.printStructured(resp, res.Key)
		}

		record := utils.GetMap(resp, res.Key)
		display.Success(s.out, "Added %s %s", res.Singular, utils.GetString(record, res.LookupField()))
		return s.showID(res, utils.GetInt64(record, "id"), nil, hooks.Details)
	}
}

// Update returns the update handler for res. Update never prompts; the
// payload comes from flags, -O options and --payload only.
//
// The target is resolved first so an unknown name fails before any payload
// work. An update that would change nothing is rejected rather than sent as
// an empty PUT.
func Update(res *resources.Resource, hooks Hooks) RunE {
	return func(cmd *cobra.Command, args []string) error {
		s := newSession(cmd)

		current, err := s.find(res, args[0])
		if err != nil {
			return err
		}
		id := utils.GetInt64(current, "id")

		opts := res.UpdateOptions()
		file, _, err := payloadFile()
		if err != nil {
			return err
		}
		flags, err := optionFlags(cmd, opts)
		if err != nil {
			return err
		}
		if hooks.Flags != nil {
			if err := hooks.Flags(s, flags); err != nil {
				return err
			}
		}

		body := payload.Layers{File: file, Flags: map[string]any{res.Key: flags}}.Build()
		obj := objectOf(body, res.Key)
		if err := s.resolveLookups(opts, obj); err != nil {
			return err
		}
		if hooks.Prepare != nil {
			if err := hooks.Prepare(s, obj, current); err != nil {
				return err
			}
		}
		if payloadEmpty(body, res.Key) {
			return fmt.Errorf("Specify at least one option to update")
		}

		resp, dry, err := s.send(s.client.Resource(res.Path).UpdateRequest(id, body), "Updating "+res.Singular)
		if err != nil || dry {
			return err
		}
		if display.Structured() {
			return s.printStructured(resp, res.Key)
		}

		display.Success(s.out, "Updated %s %s", res.Singular, utils.GetString(current, res.LookupField()))
		return s.showID(res, id, nil, hooks.Details)
	}
}

// Remove returns the remove handler for res. The record is resolved by exact
// name or ID and the user must confirm the delete unless --yes is given.
// Declining returns ErrAborted (exit 9). Under --no-prompt a missing --yes is
// an error instead of an implicit confirmation.
func Remove(res *resources.Resource) RunE {
	return func(cmd *cobra.Command, args []string) error {
		s := newSession(cmd)
		defer s.close()

		record, err := s.find(res, args[0])
		if err != nil {
			return err
		}
		name := utils.GetString(record, res.LookupField())

		if err := s.confirm(fmt.Sprintf("Are you sure you want to delete the %s %s?", res.Singular, name)); err != nil {
			return err
		}

		req := s.client.Resource(res.Path).DestroyRequest(utils.GetInt64(record, "id"), nil)
		resp, dry, err := s.send(req, "Removing "+res.Singular)
		if err != nil || dry {
			return err
		}
		if display.Structured() {
			return s.printStructured(resp, res.Key)
		}

		display.Success(s.out, "%s %s removed", res.Label, name)
		return nil
	}
}

// payloadFile loads --payload or --payload-json. ok reports whether either
// was given.
func payloadFile() (map[string]any, bool, error) {
	switch {
	case config.Payload.File != "" && config.Payload.JSON != "":
		return nil, false, fmt.Errorf("use only one of --payload and --payload-json")
	case config.Payload.File != "":
		m, err := payload.Load(config.Payload.File)
		return m, err == nil, err
	case config.Payload.JSON != "":
		m, err := payload.Parse([]byte(config.Payload.JSON))
		if err != nil {
			return nil, false, fmt.Errorf("invalid --payload-json: %w", err)
		}
		return m, true, nil
	}
	return nil, false, nil
}

// optionFlags collects the option values given as flags, plus -O options.
// Only flags set on the command line count.
func optionFlags(cmd *cobra.Command, opts []prompt.OptionType) (map[string]any, error) {
	obj := map[string]any{}
	for _, opt := range opts {
		f := cmd.Flags().Lookup(opt.Flag())
		if f == nil || !f.Changed {
			continue
		}
		v, err := opt.Convert(f.Value.String())
		if err != nil {
			return nil, err
		}
		payload.Set(obj, opt.Path(), v)
	}

	options, err := payload.ParseOptions(config.Payload.Options)
	if err != nil {
		return nil, err
	}
	if len(options) > 0 {
		logging.Debug("Applying %d -O options", len(config.Payload.Options))
	}
	return payload.Merge(obj, options), nil
}

// objectOf returns the object stored under key, creating it when missing.
func objectOf(body map[string]any, key string) map[string]any {
	obj, ok := body[key].(map[string]any)
	if !ok {
		obj = map[string]any{}
		body[key] = obj
	}
	return obj
}

// payloadEmpty reports whether an update body carries nothing to change.
func payloadEmpty(body map[string]any, key string) bool {
	for k, v := range body {
		if k != key {
			return false
		}
		if obj, ok := v.(map[string]any); !ok || len(obj) > 0 {
			return false
		}
	}
	return true
}
