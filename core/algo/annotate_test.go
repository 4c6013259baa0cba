package algo

import (
	"testing"

	"github.com/huangsam/roastcurve/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAssemble tests the marker, label and connector parts.
func TestAssemble(t *testing.T) {
	cfg := schema.DefaultAnnotationConfig()
	point := schema.KeyPoint{Event: schema.Yellowing, Time: 312, Index: 312, Value: 160.44}

	t.Run("label above with connector", func(t *testing.T) {
		off := schema.LabelOffset{XAdjust: 5, YAdjust: -30, Event: schema.Yellowing}
		set := Assemble(schema.Yellowing, point, off, "#2563eb", "a.csv", cfg)

		assert.Equal(t, "Y:a.csv", set.Key.String())
		assert.True(t, set.Visible)
		assert.Equal(t, schema.Marker{Time: 312, Index: 312, Value: 160.44, Color: "#2563eb", Radius: 4}, set.Marker)
		assert.Equal(t, []string{"Y: 05:12", "160.4°C"}, set.Label.Lines)
		assert.Equal(t, 5.0, set.Label.XAdjust)
		assert.Equal(t, -30.0, set.Label.YAdjust)

		require.NotNil(t, set.Connector)
		assert.Equal(t, -5.0, set.Connector.FromY)
		assert.Equal(t, -25.0, set.Connector.ToY)
		assert.Equal(t, []float64{2, 2}, set.Connector.Dash)
		assert.Equal(t, 312, set.Connector.Index)
	})

	t.Run("label below with connector", func(t *testing.T) {
		off := schema.LabelOffset{YAdjust: 45}
		set := Assemble(schema.FirstEvent, point, off, "#dc2626", "b.csv", cfg)
		require.NotNil(t, set.Connector)
		assert.Equal(t, 5.0, set.Connector.FromY)
		assert.Equal(t, 40.0, set.Connector.ToY)
		assert.Equal(t, "FIRST: 05:12", set.Label.Lines[0])
	})

	t.Run("short offsets omit the connector", func(t *testing.T) {
		for _, y := range []float64{0, 10, -10, 9.99} {
			set := Assemble(schema.EndPoint, point, schema.LabelOffset{YAdjust: y}, "#16a34a", "c.csv", cfg)
			assert.Nil(t, set.Connector, "yAdjust %v", y)
		}
		set := Assemble(schema.EndPoint, point, schema.LabelOffset{YAdjust: 10.5}, "#16a34a", "c.csv", cfg)
		assert.NotNil(t, set.Connector)
	})
}

// TestLabelLines tests label text formatting.
func TestLabelLines(t *testing.T) {
	kp := schema.KeyPoint{Time: 725, Value: 211.96}
	assert.Equal(t, []string{"OUT: 12:05", "212.0°C"}, LabelLines(schema.EndPoint, kp, "°C"))
	assert.Equal(t, []string{"TP: 12:05", "212.0"}, LabelLines(schema.TurningPoint, kp, ""))
}
