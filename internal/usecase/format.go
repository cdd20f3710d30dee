package usecase

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const currencySuffix = "TL"

// FormatPrice renders price as a whole number using the Turkish grouping
// convention: 1234567 becomes "1.234.567 TL".
func FormatPrice(price float64) string {
	p := message.NewPrinter(language.Turkish)
	return p.Sprintf("%.0f %s", price, currencySuffix)
}

// ConfidenceBand returns a symmetric interval of errorPercentage around price.
func ConfidenceBand(price, errorPercentage float64) (low, high float64) {
	margin := price * (errorPercentage / 100)
	return price - margin, price + margin
}
