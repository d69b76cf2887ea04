package utils

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// UnmarshalDecimal parses amounts from backup documents. Exports written by
// older console builds carry user-formatted strings, so accept:
// - 20000 (plain JSON number)
// - "20,000"
// - "Rs 20,000"
// - "Rs -20,000"
//
// Keep digits, '.', and a leading '-' only.
func UnmarshalDecimal(i interface{}) (decimal.Decimal, error) {
	switch v := i.(type) {
	case string:
		s := strings.TrimSpace(v)
		if s != "" {
			s = strings.ReplaceAll(s, ",", "")
			s = strings.ReplaceAll(s, "Rs", "")
			s = strings.ReplaceAll(s, "rs", "")
			s = strings.TrimSpace(s)
		}
		neg := false
		if strings.HasPrefix(s, "-") {
			neg = true
			s = strings.TrimSpace(strings.TrimPrefix(s, "-"))
		}
		// Strip everything except digits and '.'.
		var b strings.Builder
		b.Grow(len(s) + 1)
		for _, r := range s {
			if (r >= '0' && r <= '9') || r == '.' {
				b.WriteRune(r)
			}
		}
		clean := b.String()
		if clean == "" {
			return decimal.NewFromInt(0), fmt.Errorf("invalid value")
		}
		if neg {
			clean = "-" + clean
		}

		val, err := decimal.NewFromString(clean)
		if err != nil {
			return decimal.NewFromInt(0), err
		}
		return val, nil
	case json.Number:
		val, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.NewFromInt(0), err
		}
		return val, nil
	case float64:
		return decimal.NewFromFloat(v), nil
	default:
		return decimal.NewFromInt(0), fmt.Errorf("invalid value")
	}
}
