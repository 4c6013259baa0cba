package outwriter

import (
	"testing"

	"github.com/huangsam/roastcurve/internal/contract"
	"github.com/stretchr/testify/assert"
)

func TestGetMaxTableIDWidth(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *contract.Config
		expected int
	}{
		{name: "override width", cfg: &contract.Config{Width: 100}, expected: 35},
		{name: "narrow terminal", cfg: &contract.Config{Width: 50}, expected: 12},
		{name: "wide terminal", cfg: &contract.Config{Width: 300}, expected: 60},
		{name: "detail columns", cfg: &contract.Config{Width: 120, Detail: true}, expected: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetMaxTableIDWidth(tt.cfg))
		})
	}
}

func TestGetMaxTableIDWidthAutoDetect(t *testing.T) {
	// Without a terminal the conservative default applies
	width := GetMaxTableIDWidth(&contract.Config{})
	assert.GreaterOrEqual(t, width, 12)
	assert.LessOrEqual(t, width, 60)
}
