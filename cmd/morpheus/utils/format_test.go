package utils

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{45 * time.Second, "45s"},
		{12 * time.Minute, "12m"},
		{3 * time.Hour, "3h"},
		{50 * time.Hour, "2d"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount   float64
		currency string
		want     string
	}{
		{1234.5, "USD", "$1,234.50"},
		{0, "", "$0.00"},
		{99.999, "EUR", "€100.00"},
		{-20, "USD", "-$20.00"},
		{10, "CHF", "CHF 10.00"},
	}
	for _, tt := range tests {
		if got := FormatCurrency(tt.amount, tt.currency); got != tt.want {
			t.Errorf("FormatCurrency(%v, %q) = %q, want %q", tt.amount, tt.currency, got, tt.want)
		}
	}
}

func TestFormatPeriod(t *testing.T) {
	if got := FormatPeriod("202403"); got != "Mar 2024" {
		t.Errorf("FormatPeriod(202403) = %q", got)
	}
	if got := FormatPeriod("bogus"); got != "bogus" {
		t.Errorf("FormatPeriod(bogus) = %q", got)
	}
}
