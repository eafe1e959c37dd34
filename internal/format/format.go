// Package format holds the pure display helpers used at the read
// boundary: cents to dollar strings and dates to a short local form.
package format

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Currency renders an amount of cents as a US dollar string,
// e.g. 4250 -> "$42.50", 123456789 -> "$1,234,567.89".
func Currency(cents int64) string {
	dollars := float64(cents) / 100
	return printer.Sprintf("$%v", number.Decimal(dollars,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2)))
}

// DateToLocal renders a date for display, e.g. "Sep 1, 2026".
func DateToLocal(t time.Time) string {
	return t.Format("Jan 2, 2006")
}
