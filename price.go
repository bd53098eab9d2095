package uracheck

import (
	"strconv"
	"strings"
)

// ParsePrice extracts a numeric price from free-form text. Every character
// except digits, the decimal point and the minus sign is stripped before
// parsing. Non-numeric content yields 0. Idempotent on already-numeric input.
func ParsePrice(s string) float64 {
	var sb strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			sb.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(sb.String(), 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatPrice renders a price with its natural stringification: integral
// values carry no decimal point ("3000"), fractional values keep only the
// digits needed ("3000.5").
func FormatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
