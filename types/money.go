package types

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses user input such as "100", "$1,250.50" or " 42 ".
func ParseAmount(raw string) (float64, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0, fmt.Errorf("parse amount: empty value")
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", raw, err)
	}
	return d.InexactFloat64(), nil
}

// FormatAmount rounds v half away from zero to cents.
func FormatAmount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// FormatMoney is FormatAmount with a leading dollar sign.
func FormatMoney(v float64) string {
	if v < 0 {
		return "-$" + FormatAmount(-v)
	}
	return "$" + FormatAmount(v)
}

// FormatPercent renders a fractional rate such as 0.0195 as "1.95%".
func FormatPercent(rate float64) string {
	return decimal.NewFromFloat(rate).Shift(2).String() + "%"
}
