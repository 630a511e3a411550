// Package handlers provides command handler functions for the morpheus CLI.
//
// This file resolves the names users type into the IDs the appliance
// expects, both for command arguments and for references inside payloads
// (--cloud, --group, --roles, ...). Matching is exact: a name must identify
// one record, and an ambiguous name is an error listing the candidate IDs
// instead of a guess.
package handlers

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/concave-dev/morpheus-cli/cmd/morpheus/client"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/payload"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/prompt"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/resources"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/utils"
	"github.com/concave-dev/morpheus-cli/internal/logging"
)

// find resolves a name or ID argument to a record. All-digit arguments are
// fetched by ID; anything else is searched by the resource's name field and
// must match exactly one record. Lookups run even under --dry-run.
func (s *session) find(res *resources.Resource, arg string) (map[string]any, error) {
	rc := s.client.Resource(res.Path)

	if utils.IsNumericID(arg) {
		id, err := parseID(res, arg)
		if err != nil {
			return nil, err
		}
		resp, err := rc.Get(s.ctx, id, nil)
		if err != nil {
			return nil, notFoundOr(err, res, "id", arg)
		}
		record := utils.GetMap(resp, res.Key)
		if record == nil {
			return nil, &NotFoundError{Label: res.Label, Field: "id", Value: arg}
		}
		return record, nil
	}

	field := res.LookupField()
	resp, err := rc.List(s.ctx, url.Values{field: {arg}})
	if err != nil {
		return nil, err
	}
	matches := utils.GetMapSlice(resp, res.ListKey)
	switch len(matches) {
	case 0:
		return nil, &NotFoundError{Label: res.Label, Field: field, Value: arg}
	case 1:
		logging.Debug("Resolved %s '%s' to id %d", res.Singular, arg, utils.GetInt64(matches[0], "id"))
		return matches[0], nil
	default:
		return nil, fmt.Errorf("Found %d %s named '%s': %s - use the ID instead",
			len(matches), res.Plural, arg, utils.MatchIDs(matches))
	}
}

// parseID converts an all-digit argument to an ID. Arguments too large for an
// int64 cannot name a record, so they are reported as not found under the
// value the user typed.
func parseID(res *resources.Resource, arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, &NotFoundError{Label: res.Label, Field: "id", Value: arg}
	}
	return id, nil
}

// findID resolves a name or ID argument to an ID.
func (s *session) findID(res *resources.Resource, arg string) (int64, error) {
	record, err := s.find(res, arg)
	if err != nil {
		return 0, err
	}
	return utils.GetInt64(record, "id"), nil
}

// notFoundOr turns a 404 from the appliance into a NotFoundError. Other
// errors, including connection failures, pass through unchanged.
func notFoundOr(err error, res *resources.Resource, field, value string) error {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.IsNotFound() {
		return &NotFoundError{Label: res.Label, Field: field, Value: value}
	}
	return err
}

// resolveLookups replaces reference answers in obj with IDs. Values that are
// already numbers are taken as IDs; strings are resolved by name or ID.
//
// It runs after all payload layers are merged, so a reference from a file, a
// prompt or a flag goes through the same lookup. Options marked Many accept
// a comma separated list and produce [{id}] objects.
func (s *session) resolveLookups(opts []prompt.OptionType, obj map[string]any) error {
	for _, opt := range opts {
		if opt.Lookup == "" {
			continue
		}
		v, ok := payload.Get(obj, opt.Path())
		if !ok || v == nil {
			continue
		}
		ref, ok := resources.ByName(opt.Lookup)
		if !ok {
			return fmt.Errorf("unknown resource %s", opt.Lookup)
		}

		if !opt.Many {
			name, isString := v.(string)
			if !isString {
				continue
			}
			id, err := s.findID(ref, name)
			if err != nil {
				return err
			}
			payload.Set(obj, opt.Path(), id)
			continue
		}

		refs, err := s.resolveRefList(ref, v)
		if err != nil {
			return err
		}
		payload.Set(obj, opt.Path(), refs)
	}
	return nil
}

// resolveRefList converts a comma separated string or an array of names,
// IDs or {id} objects into a list of {id} objects.
func (s *session) resolveRefList(ref *resources.Resource, v any) ([]any, error) {
	var items []any
	switch val := v.(type) {
	case string:
		for _, item := range utils.SplitList(val) {
			items = append(items, item)
		}
	case []any:
		items = val
	default:
		items = []any{val}
	}

	refs := make([]any, 0, len(items))
	for _, item := range items {
		switch val := item.(type) {
		case string:
			id, err := s.findID(ref, val)
			if err != nil {
				return nil, err
			}
			refs = append(refs, map[string]any{"id": id})
		case map[string]any:
			refs = append(refs, val)
		default:
			refs = append(refs, map[string]any{"id": utils.ToInt64(val)})
		}
	}
	return refs, nil
}
