package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Locale-aware rendering. The locale is always an explicit parameter;
// nothing here reads process-wide locale state.

var currencySymbols = map[string]string{
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
}

// FormatAmount renders a cent amount as a localized currency string.
// French output places the symbol after the number ("1 234,56 €"); other
// locales get the symbol first. Unknown currency codes are rendered with
// the ISO code in place of a symbol.
func FormatAmount(cents int64, currencyCode string, tag language.Tag) string {
	symbol, ok := currencySymbols[currencyCode]
	if !ok {
		symbol = currencyCode
	}

	n := FormatNumber(float64(cents)/100, 2, tag)
	if tag.Parent() == language.French || tag == language.French {
		return n + " " + symbol
	}
	return symbol + n
}

// FormatEUR renders a cent amount as French-locale euros.
func FormatEUR(cents int64) string {
	return FormatAmount(cents, "EUR", language.French)
}

// FormatNumber renders a number with the locale's digit grouping and
// decimal separator, with a fixed number of fraction digits.
func FormatNumber(value float64, decimals int, tag language.Tag) string {
	p := message.NewPrinter(tag)
	return p.Sprintf("%v", number.Decimal(value,
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals)))
}
