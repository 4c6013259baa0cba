package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventTypeCode(t *testing.T) {
	assert.Equal(t, "TP", TurningPoint.Code())
	assert.Equal(t, "Y", Yellowing.Code())
	assert.Equal(t, "FIRST", FirstEvent.Code())
	assert.Equal(t, "OUT", EndPoint.Code())
	assert.Equal(t, "other", EventType("other").Code())

	assert.True(t, TurningPoint.LabelsAbove())
	assert.True(t, Yellowing.LabelsAbove())
	assert.False(t, FirstEvent.LabelsAbove())
	assert.False(t, EndPoint.LabelsAbove())
}

func TestAlignedSeries(t *testing.T) {
	s := AlignedSeries{
		Primary:   []*float64{Float(1), nil, Float(3)},
		Secondary: []*float64{nil, nil, Float(2)},
	}
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 2, s.Filled())
	assert.Equal(t, 0, AlignedSeries{}.Filled())
}

func TestKeyPoints(t *testing.T) {
	kp := KeyPoints{
		EndPoint:     &KeyPoint{Event: EndPoint, Time: 600},
		TurningPoint: &KeyPoint{Event: TurningPoint, Time: 60},
	}
	assert.Equal(t, TimeStamp(60), kp.Get(TurningPoint).Time)
	assert.Nil(t, kp.Get(Yellowing))
	assert.Nil(t, kp.Get("unknown"))

	present := kp.Present()
	assert.Len(t, present, 2)
	assert.Equal(t, TurningPoint, present[0].Event)
	assert.Equal(t, EndPoint, present[1].Event)
	assert.Empty(t, KeyPoints{}.Present())
}

func TestAnnotationKeyString(t *testing.T) {
	key := AnnotationKey{Event: FirstEvent, RecordingID: "kenya-3.csv"}
	assert.Equal(t, "FIRST:kenya-3.csv", key.String())
}

func TestDefaults(t *testing.T) {
	grid := DefaultGridConfig()
	assert.Equal(t, 90, grid.Pad)
	assert.Equal(t, 0.5, grid.Tolerance)

	for _, c := range DefaultPalette {
		assert.Regexp(t, `^#[0-9a-f]{6}$`, c)
	}
	assert.Len(t, ValidOutputModes, 5)
	assert.Len(t, ValidEvents, len(AllEvents))
}
