package validate

import (
	"math"
	"regexp"
	"strings"
)

var (
	promoCodeRe = regexp.MustCompile(`^[A-Z0-9_]{3,32}$`)
	itemKeyRe   = regexp.MustCompile(`^[a-z0-9_]{1,24}$`)
)

// NormalizePromoCode upper-cases and trims user input before lookup.
func NormalizePromoCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func IsPromoCode(s string) bool {
	return promoCodeRe.MatchString(s)
}

// IsItemKey keeps gift keys short enough for callback data.
func IsItemKey(s string) bool {
	return itemKeyRe.MatchString(s)
}

// IsAmount accepts finite positive amounts with at most two decimals.
func IsAmount(v float64) bool {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return false
	}
	cents := v * 100
	return v > 0 && math.Abs(cents-math.Round(cents)) < 1e-9
}
