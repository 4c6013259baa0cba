package ingest

import (
	"testing"

	"github.com/huangsam/roastcurve/schema"
	"github.com/stretchr/testify/assert"
)

func TestResolveMapping(t *testing.T) {
	fallback := schema.DefaultFieldMapping()

	tests := []struct {
		name     string
		header   []string
		expected schema.FieldMapping
	}{
		{
			name:     "roaster export",
			header:   []string{"Time", "ET", "BT", "Fan", "Power", "RoR"},
			expected: schema.FieldMapping{Time: 0, Primary: 2, Secondary: 5},
		},
		{
			name:     "korean headers",
			header:   []string{"시간", "온도", "ROR"},
			expected: schema.FieldMapping{Time: 0, Primary: 1, Secondary: 2},
		},
		{
			name:     "long names",
			header:   []string{"Elapsed (s)", "Bean Temp (°C)", "Rate of Rise"},
			expected: schema.FieldMapping{Time: 0, Primary: 1, Secondary: 2},
		},
		{
			name:     "bean temp preferred over other temps",
			header:   []string{"Env Temp", "Time", "Bean Temp"},
			expected: schema.FieldMapping{Time: 1, Primary: 2, Secondary: -1},
		},
		{
			name:     "unknown headers keep positions",
			header:   []string{"a", "b", "c"},
			expected: schema.FieldMapping{Time: 0, Primary: 2, Secondary: -1},
		},
		{
			name:     "short header without rate",
			header:   []string{"Time", "Temp"},
			expected: schema.FieldMapping{Time: 0, Primary: 1, Secondary: -1},
		},
		{
			name:     "wide unknown header keeps fallback rate",
			header:   []string{"a", "b", "c", "d", "e", "f", "g"},
			expected: fallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveMapping(tt.header, fallback))
		})
	}
}
