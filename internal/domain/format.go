package domain

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Display format constants
const (
	DisplayDateLayout     = "January 2, 2006"
	NumberSeparator       = " - "
	SpecialSeparator      = " | "
	currencyFormatPattern = "$%.2f"
)

var displayPrinter = message.NewPrinter(language.English)

// FormatCurrency renders an amount as dollars with two decimals and digit grouping
func FormatCurrency(amount float64) string {
	return displayPrinter.Sprintf(currencyFormatPattern, amount)
}

// FormatDate renders a date the way the history view shows it, e.g. "March 15, 2024"
func FormatDate(t time.Time) string {
	return t.UTC().Format(DisplayDateLayout)
}

// FormatNumbers renders a draw as "15 - 23 - 42 - 51 - 67 | Powerball: 12".
// The special part is omitted unless both the number and its label are present.
func FormatNumbers(d DrawResult) string {
	parts := make([]string, len(d.MainNumbers))
	for i, n := range d.MainNumbers {
		parts[i] = strconv.Itoa(n)
	}
	out := strings.Join(parts, NumberSeparator)

	if d.SpecialNumber != nil && d.SpecialLabel != "" {
		out += SpecialSeparator + d.SpecialLabel + ": " + strconv.Itoa(*d.SpecialNumber)
	}
	return out
}
