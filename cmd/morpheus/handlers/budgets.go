package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/concave-dev/morpheus-cli/cmd/morpheus/config"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/display"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/payload"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/prompt"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/utils"
)

// BudgetHooks customise the generic pipeline for budgets.
var BudgetHooks = Hooks{
	Flags:   budgetFlags,
	Prepare: prepareBudget,
	Details: budgetCosts,
}

// budgetPeriods maps a budget interval to the labels of its cost periods.
var budgetPeriods = map[string][]string{
	"year":    {"Year"},
	"quarter": {"Q1", "Q2", "Q3", "Q4"},
	"month":   {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
}

// budgetRef is a scope reference: --group sets scopeGroup.id and scope=group.
type budgetRef struct {
	scope string
	value *string
	opt   prompt.OptionType
}

func budgetRefs() []budgetRef {
	ref := func(scope, field, label, lookup string, value *string) budgetRef {
		return budgetRef{scope: scope, value: value, opt: prompt.OptionType{
			FieldName: "id", FieldContext: field, FieldLabel: label, FlagName: scope,
			Required: true, Lookup: lookup,
		}}
	}
	return []budgetRef{
		ref("group", "scopeGroup", "Group", "groups", &config.Budget.Group),
		ref("cloud", "scopeCloud", "Cloud", "clouds", &config.Budget.Cloud),
		ref("user", "scopeUser", "User", "users", &config.Budget.User),
	}
}

// ExpandCosts fits costs to the number of periods of interval. A single cost
// is used for every period.
func ExpandCosts(interval string, costs []float64) ([]float64, error) {
	periods, ok := budgetPeriods[interval]
	if !ok {
		return nil, fmt.Errorf("invalid interval '%s' - valid: year, quarter, month", interval)
	}
	n := len(periods)
	switch {
	case len(costs) == n:
		return costs, nil
	case len(costs) == 1:
		expanded := make([]float64, n)
		for i := range expanded {
			expanded[i] = costs[0]
		}
		return expanded, nil
	}
	return nil, fmt.Errorf("a %s budget takes %d costs, got %d", interval, n, len(costs))
}

// parseCosts reads costs given as a comma separated string, a number or a
// list of numbers.
func parseCosts(v any) ([]float64, error) {
	var items []any
	switch val := v.(type) {
	case string:
		for _, s := range utils.SplitList(val) {
			items = append(items, s)
		}
	case []any:
		items = val
	default:
		items = []any{val}
	}

	costs := make([]float64, 0, len(items))
	for _, item := range items {
		switch val := item.(type) {
		case string:
			f, err := strconv.ParseFloat(strings.TrimPrefix(strings.TrimSpace(val), "$"), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid cost '%s'", val)
			}
			costs = append(costs, f)
		default:
			costs = append(costs, utils.ToFloat(val))
		}
	}
	if len(costs) == 0 {
		return nil, fmt.Errorf("costs cannot be empty")
	}
	return costs, nil
}

// budgetFlags turns --group, --cloud or --user into the scope reference. The
// reference implies the scope, so an explicit --scope must agree with it.
func budgetFlags(s *session, obj map[string]any) error {
	var given []budgetRef
	for _, ref := range budgetRefs() {
		if *ref.value != "" {
			given = append(given, ref)
		}
	}
	switch len(given) {
	case 0:
		return nil
	case 1:
	default:
		return fmt.Errorf("only one of --group, --cloud, --user may be given")
	}

	ref := given[0]
	if scope := utils.GetString(obj, "scope"); scope != "" && scope != ref.scope {
		return fmt.Errorf("--scope %s does not match --%s", scope, ref.scope)
	}
	payload.Set(obj, ref.opt.Path(), *ref.value)
	payload.Set(obj, "scope", ref.scope)
	return nil
}

// prepareBudget resolves the scope reference and expands the costs. On add a
// missing reference is prompted for, unless the payload came from a file or
// --no-prompt is set, in which case it is an error naming the flag.
func prepareBudget(s *session, obj map[string]any, current map[string]any) error {
	scope := utils.GetString(obj, "scope")
	for _, ref := range budgetRefs() {
		if scope != ref.scope {
			continue
		}
		opts := []prompt.OptionType{ref.opt}
		if current == nil {
			var p prompt.Prompter
			if !s.fromFile {
				p = s.prompter()
			}
			answers, err := prompt.Resolve(opts, obj, p, p == nil)
			if err != nil {
				return err
			}
			payload.Merge(obj, answers)
		}
		if err := s.resolveLookups(opts, obj); err != nil {
			return err
		}
	}

	raw, ok := obj["costs"]
	if !ok {
		return nil
	}
	costs, err := parseCosts(raw)
	if err != nil {
		return err
	}

	interval := utils.GetString(obj, "interval")
	if interval == "" && current != nil {
		interval = utils.GetString(current, "interval")
	}
	if interval == "" {
		interval = "year"
	}
	expanded, err := ExpandCosts(interval, costs)
	if err != nil {
		return err
	}

	list := make([]any, len(expanded))
	for i, c := range expanded {
		list[i] = c
	}
	obj["costs"] = list
	return nil
}

// budgetCosts prints the per-period costs of a budget.
func budgetCosts(s *session, budget map[string]any) {
	costs := utils.GetSlice(budget, "costs")
	if len(costs) == 0 {
		return
	}
	labels, ok := budgetPeriods[utils.GetString(budget, "interval")]
	if !ok || len(labels) != len(costs) {
		labels = make([]string, len(costs))
		for i := range labels {
			labels[i] = strconv.Itoa(i + 1)
		}
	}

	currency := utils.GetString(budget, "currency")
	cols := make([]display.Column, 0, len(costs)+1)
	for i, label := range labels {
		cost := costs[i]
		cols = append(cols, display.Column{Header: label, Value: func(map[string]any) string {
			return utils.FormatCurrency(utils.ToFloat(cost), currency)
		}})
	}
	total := 0.0
	for _, c := range costs {
		total += utils.ToFloat(c)
	}
	cols = append(cols, display.Column{Header: "Total", Value: func(map[string]any) string {
		return utils.FormatCurrency(total, currency)
	}})

	display.PrintSection(s.out, "Costs")
	display.PrintTable(s.out, cols, []map[string]any{budget}, nil)
}
