package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{1234567, "1.234.567 TL"},
		{999, "999 TL"},
		{1000, "1.000 TL"},
		{850000.4, "850.000 TL"},
		{0, "0 TL"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(tt.price))
		})
	}
}

func TestConfidenceBand(t *testing.T) {
	low, high := ConfidenceBand(500000, 10)
	assert.InDelta(t, 450000.0, low, 1e-6)
	assert.InDelta(t, 550000.0, high, 1e-6)

	low, high = ConfidenceBand(200000, 0)
	assert.Equal(t, 200000.0, low)
	assert.Equal(t, 200000.0, high)
}
