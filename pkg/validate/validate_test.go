package validate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPromoCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"SPRING", true},
		{"NEW_YEAR_2025", true},
		{"AB", false},
		{"spring", false},
		{"BAD CODE", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPromoCode(tt.code))
		})
	}
}

func TestNormalizePromoCode(t *testing.T) {
	assert.Equal(t, "SPRING", NormalizePromoCode("  spring "))
}

func TestIsItemKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"bear", true},
		{"heart_2", true},
		{"Bear", false},
		{"", false},
		{"a_very_long_item_key_that_overflows", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, IsItemKey(tt.key))
		})
	}
}

func TestIsAmount(t *testing.T) {
	assert.True(t, IsAmount(15))
	assert.True(t, IsAmount(0.5))
	assert.True(t, IsAmount(0.3))
	assert.False(t, IsAmount(0))
	assert.False(t, IsAmount(-3))
	assert.False(t, IsAmount(0.001))
	assert.False(t, IsAmount(math.Inf(1)))
	assert.False(t, IsAmount(math.NaN()))
}
