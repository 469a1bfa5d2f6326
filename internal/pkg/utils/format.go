package utils

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatMinutes convert minutes to duration format string
// Example: 125 -> "2h 5m", 1530 -> "1d 1h 30m"
func FormatMinutes(durationInMinutes int64) string {
	if durationInMinutes <= 0 {
		return "0m"
	}

	d := durationInMinutes / (24 * 60)
	h := durationInMinutes % (24 * 60) / 60
	m := durationInMinutes % 60

	parts := make([]string, 0, 3)
	if d > 0 {
		parts = append(parts, fmt.Sprintf("%dd", d))
	}
	if h > 0 {
		parts = append(parts, fmt.Sprintf("%dh", h))
	}
	if m > 0 {
		parts = append(parts, fmt.Sprintf("%dm", m))
	}

	return strings.Join(parts, " ")
}

// FormatHours convert hour to duration format string
// Example: 2.5 -> "2h 30m"
func FormatHours(durationInHours float64) string {
	return FormatMinutes(int64(math.Round(durationInHours * 60)))
}

// FormatDistance renders a distance in kilometers with one decimal.
func FormatDistance(km float64) string {
	return printer.Sprintf("%.1f km", km)
}

// FormatPrice renders amount with the currency symbol and the currency's
// standard number of decimals. Unknown or empty codes print the bare number.
func FormatPrice(amount float64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return printer.Sprintf("%.2f", amount)
	}

	scale, _ := currency.Standard.Rounding(unit)
	symbol := printer.Sprint(currency.Symbol(unit))

	return symbol + printer.Sprintf(fmt.Sprintf("%%.%df", scale), amount)
}
