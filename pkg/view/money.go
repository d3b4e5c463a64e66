package view

import (
	"fmt"
	"strconv"
	"strings"
)

// MoneyFromCents converts cents to a human-readable currency string.
// E.g., 98000 EUR -> "€980.00"
func MoneyFromCents(cents int64, currency string) string {
	major := float64(cents) / 100.0
	switch currency {
	case "EUR":
		return fmt.Sprintf("€%.2f", major)
	case "USD":
		return fmt.Sprintf("$%.2f", major)
	case "GBP":
		return fmt.Sprintf("£%.2f", major)
	case "TRY":
		return fmt.Sprintf("₺%.2f", major)
	default:
		return fmt.Sprintf("%.2f %s", major, currency)
	}
}

// ParsePriceCents normalizes a display price string ("980,00€", "1.840,00€",
// "€10.50") to cents. Everything except digits and separators is stripped;
// when both separators appear, the rightmost one is the decimal point.
// Returns false for strings with no digits.
func ParsePriceCents(s string) (int64, bool) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0, false
	}

	lastComma := strings.LastIndex(cleaned, ",")
	lastDot := strings.LastIndex(cleaned, ".")
	dec := lastComma
	if lastDot > dec {
		dec = lastDot
	}

	intPart := cleaned
	fracPart := ""
	if dec >= 0 {
		intPart = cleaned[:dec]
		fracPart = cleaned[dec+1:]
	}
	// A separator followed by 3 digits is grouping, not decimals ("1,840").
	if len(fracPart) == 3 {
		intPart += fracPart
		fracPart = ""
	}

	intPart = strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, intPart)
	if intPart == "" {
		intPart = "0"
	}

	major, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, false
	}

	switch len(fracPart) {
	case 0:
		return major * 100, true
	case 1:
		f, _ := strconv.ParseInt(fracPart, 10, 64)
		return major*100 + f*10, true
	default:
		f, err := strconv.ParseInt(fracPart[:2], 10, 64)
		if err != nil {
			return 0, false
		}
		return major*100 + f, true
	}
}
