package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"Stock Market Foundations", "stock-market-foundations"},
		{"Options & Derivatives Masterclass", "options-derivatives-masterclass"},
		{"  Intraday  Momentum Trading  ", "intraday-momentum-trading"},
		{"100% Practical!", "100-practical"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Make(tt.title), "title %q", tt.title)
	}
}
