package extraction

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseBRLNumber converts a Brazilian-locale numeric string ("." as
// thousands separator, "," as decimal separator, e.g. "1.234,56") to a
// float64. Empty or unparseable input yields 0; it never fails.
func ParseBRLNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	// Strip all thousands separators before swapping the decimal comma.
	normalized := strings.ReplaceAll(s, ".", "")
	normalized = strings.Replace(normalized, ",", ".", 1)

	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return 0
	}
	return d.InexactFloat64()
}

// FormatBRL renders a value as "R$ 1234,56": two decimal places with a
// comma as the decimal separator.
func FormatBRL(value float64) string {
	fixed := decimal.NewFromFloat(value).StringFixed(2)
	return "R$ " + strings.Replace(fixed, ".", ",", 1)
}
