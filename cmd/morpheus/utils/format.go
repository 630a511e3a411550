// Package utils provides utility functions for the morpheus CLI.
package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatDuration converts durations into compact human-readable strings
// (45s, 12m, 3h, 2d) for age columns.
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	} else if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	} else if d < 24*time.Hour {
		return fmt.Sprintf("%dh", int(d.Hours()))
	} else {
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}

// FormatCurrency renders an amount with thousands separators and two decimals,
// prefixed by the currency code's symbol when known.
func FormatCurrency(amount float64, currency string) string {
	symbols := map[string]string{"USD": "$", "EUR": "€", "GBP": "£", "JPY": "¥", "": "$"}
	symbol, ok := symbols[strings.ToUpper(currency)]
	if !ok {
		symbol = strings.ToUpper(currency) + " "
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + symbol + humanize.FormatFloat("#,###.##", amount)
}

// FormatDate renders an appliance timestamp as a local date and time, or an
// empty string for missing values.
func FormatDate(v any) string {
	t := ToTime(v)
	if t.IsZero() {
		return Stringify(v)
	}
	return t.Local().Format("2006-01-02 15:04:05")
}

// FormatAge renders a timestamp relative to now ("3 days ago").
func FormatAge(v any) string {
	t := ToTime(v)
	if t.IsZero() {
		return ""
	}
	return humanize.Time(t)
}

// FormatPeriod renders an invoice period (YYYYMM) as "Jan 2024".
func FormatPeriod(period string) string {
	t, err := time.Parse("200601", period)
	if err != nil {
		return period
	}
	return t.Format("Jan 2006")
}
