package adapters

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatCurrency renders whole units with thousands separators, e.g. $340,000.
func FormatCurrency(amount float64, currency string) string {
	switch strings.ToUpper(currency) {
	case "", "USD":
		return printer.Sprintf("$%.0f", amount)
	default:
		return printer.Sprintf("%.0f %s", amount, strings.ToUpper(currency))
	}
}

// FormatAmount renders an amount with cents and thousands separators.
func FormatAmount(amount float64) string {
	return printer.Sprintf("%.2f", amount)
}
