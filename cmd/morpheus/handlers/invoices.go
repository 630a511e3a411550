package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/concave-dev/morpheus-cli/cmd/morpheus/config"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/display"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/resources"
	"github.com/concave-dev/morpheus-cli/cmd/morpheus/utils"
	"github.com/concave-dev/morpheus-cli/internal/validate"
	"github.com/spf13/cobra"
)

// InvoiceHooks customise the generic list pipeline for invoices.
var InvoiceHooks = Hooks{
	Params: invoiceParams,
	Footer: invoiceTotals,
}

// invoiceParams adds the invoice filters to a list query. The boolean
// filters are only sent when given, so --active=false filters too.
func invoiceParams(s *session, params url.Values) error {
	inv := &config.Invoice

	if inv.RefType != "" {
		refType, err := resources.InvoiceRefType(inv.RefType)
		if err != nil {
			return err
		}
		params.Set("refType", refType)
	}
	if inv.RefID > 0 {
		params.Set("refId", strconv.FormatInt(inv.RefID, 10))
	}

	refs := []struct {
		value string
		res   *resources.Resource
		param string
	}{
		{inv.Cloud, resources.Clouds, "zoneId"},
		{inv.Group, resources.Groups, "siteId"},
		{inv.Instance, resources.Instances, "instanceId"},
		{inv.Server, resources.Servers, "serverId"},
		{inv.User, resources.Users, "userId"},
	}
	for _, ref := range refs {
		if ref.value == "" {
			continue
		}
		id, err := s.findID(ref.res, ref.value)
		if err != nil {
			return err
		}
		params.Set(ref.param, strconv.FormatInt(id, 10))
	}

	if inv.Start != "" {
		if err := validate.ValidateDate(inv.Start, "start date"); err != nil {
			return err
		}
		params.Set("startDate", inv.Start)
	}
	if inv.End != "" {
		if err := validate.ValidateDate(inv.End, "end date"); err != nil {
			return err
		}
		params.Set("endDate", inv.End)
	}
	if inv.Period != "" {
		if err := validate.ValidatePeriod(inv.Period); err != nil {
			return err
		}
		params.Set("period", inv.Period)
	}

	flags := s.cmd.Flags()
	if f := flags.Lookup("active"); f != nil && f.Changed {
		params.Set("active", strconv.FormatBool(inv.Active))
	}
	if f := flags.Lookup("estimate"); f != nil && f.Changed {
		params.Set("estimate", strconv.FormatBool(inv.Estimate))
	}
	if inv.Totals {
		params.Set("includeTotals", "true")
	}
	return nil
}

// invoiceTotals sums the cost and price columns when --totals is set.
func invoiceTotals(cols []display.Column, records []map[string]any, resp map[string]any) []string {
	if !config.Invoice.Totals {
		return nil
	}

	var cost, price float64
	currency := ""
	for _, r := range records {
		cost += utils.GetFloat(r, "totalCost")
		price += utils.GetFloat(r, "totalPrice")
		if currency == "" {
			currency = utils.GetString(r, "currency")
		}
	}
	// Totals computed by the appliance cover every page, not just this one.
	if totals := utils.GetMap(resp, "invoiceTotals"); totals != nil {
		cost = utils.GetFloat(totals, "actualTotalCost")
		price = utils.GetFloat(totals, "actualTotalPrice")
	}

	footer := make([]string, len(cols))
	footer[0] = "Total"
	for i, c := range cols {
		switch c.Header {
		case "Cost":
			footer[i] = utils.FormatCurrency(cost, currency)
		case "Price":
			footer[i] = utils.FormatCurrency(price, currency)
		}
	}
	return footer
}

// GetInvoice shows invoices by ID, with their line items when --line-items
// is set.
func GetInvoice(cmd *cobra.Command, args []string) error {
	s := newSession(cmd)
	res := resources.Invoices

	var params url.Values
	if config.Invoice.LineItems {
		params = url.Values{"includeLineItems": {"true"}}
	}

	for _, arg := range args {
		if !utils.IsNumericID(arg) {
			return fmt.Errorf("invoice must be given by ID, got '%s'", arg)
		}
		if err := s.show(res, arg, params, invoiceLineItems); err != nil {
			return err
		}
	}
	return nil
}

func invoiceLineItems(s *session, invoice map[string]any) {
	if !config.Invoice.LineItems {
		return
	}
	display.PrintSection(s.out, "Line Items")
	items := utils.GetMapSlice(invoice, "lineItems")
	if len(items) == 0 {
		display.PrintEmpty(s.out, "line items")
		return
	}
	display.PrintTable(s.out, resources.InvoiceLineItemColumns, items, nil)
}

// RefreshInvoices asks the appliance to recalculate invoices for the given
// clouds, or for all clouds with --all.
func RefreshInvoices(cmd *cobra.Command, args []string) error {
	s := newSession(cmd)
	defer s.close()
	inv := &config.Invoice

	names := utils.SplitList(inv.Clouds...)
	if len(names) == 0 && !inv.All {
		return fmt.Errorf("specify --clouds or --all")
	}
	if len(names) > 0 && inv.All {
		return fmt.Errorf("use only one of --clouds and --all")
	}

	body := map[string]any{}
	target := "all clouds"
	if len(names) > 0 {
		ids := make([]any, 0, len(names))
		for _, name := range names {
			id, err := s.findID(resources.Clouds, name)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		body["clouds"] = ids
		target = fmt.Sprintf("%d cloud(s)", len(ids))
	}
	if inv.Period != "" {
		if err := validate.ValidatePeriod(inv.Period); err != nil {
			return err
		}
		body["period"] = inv.Period
	}

	if err := s.confirm(fmt.Sprintf("Are you sure you want to refresh invoices for %s?", target)); err != nil {
		return err
	}

	req := s.client.Resource(resources.Invoices.Path).ActionRequest(http.MethodPost, "refresh", nil, body)
	resp, dry, err := s.send(req, "Refreshing invoices")
	if err != nil || dry {
		return err
	}
	if display.Structured() {
		return s.printStructured(resp, "")
	}

	msg := utils.GetString(resp, "msg")
	if msg == "" {
		msg = "Refreshing invoices for " + target
	}
	display.Success(s.out, "%s", msg)
	return nil
}
