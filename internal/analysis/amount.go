package analysis

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.English)

// ParseAmount converts a bureau amount string into a numeric value. The
// bureau emits thousands separators and an occasional currency symbol;
// anything that still fails to parse counts as zero rather than failing
// the loan.
func ParseAmount(raw string) float64 {
	if raw == "" {
		return 0
	}

	cleaned := strings.NewReplacer(",", "", "₹", "").Replace(raw)
	amount, err := strconv.ParseFloat(strings.TrimSpace(cleaned), 64)
	if err != nil {
		return 0
	}

	return amount
}

// FormatAmount renders an amount as ₹ with English digit grouping and two
// decimals, e.g. ₹1,234,567.89.
func FormatAmount(amount float64) string {
	return amountPrinter.Sprintf("₹%.2f", amount)
}
