package timeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tonal/affine"
	"github.com/katalvlaran/tonal/timeline"
)

// TestArithmetic checks the time/duration operation table.
func TestArithmetic(t *testing.T) {
	t0 := timeline.At(1)
	t1 := timeline.At(4.5)

	d := t1.Diff(t0)
	assert.Equal(t, timeline.Span(3.5), d, "time minus time is a duration")
	assert.Equal(t, t1, t0.Add(d))
	assert.Equal(t, timeline.At(-2.5), t0.Sub(d))
	assert.Equal(t, timeline.Span(7), d.Scale(2))
	assert.Equal(t, timeline.Span(1.75), d.Div(2))
	assert.Equal(t, timeline.Span(-3.5), d.Neg())
}

// TestOrdering verifies instants sort on the timeline.
func TestOrdering(t *testing.T) {
	assert.True(t, affine.Less(timeline.At(1), timeline.At(2)))
	assert.False(t, affine.Less(timeline.At(2), timeline.At(2)))
	assert.Equal(t, -1, affine.Compare(timeline.At(-1), timeline.At(0)))
}

// TestFrom verifies permissive raw construction.
func TestFrom(t *testing.T) {
	for raw, want := range map[any]timeline.Time{
		3:     timeline.At(3),
		2.5:   timeline.At(2.5),
		"1.5": timeline.At(1.5),
	} {
		got, err := timeline.From(raw)
		require.NoError(t, err)
		assert.Equal(t, want, got, "%v", raw)
	}

	_, err := timeline.From("later")
	assert.Error(t, err)
}

// TestRange verifies the generic stepper over beats.
func TestRange(t *testing.T) {
	var got []float64
	for p := range affine.Range(timeline.At(0), timeline.At(2), timeline.Span(0.5), true) {
		got = append(got, float64(p.Value()))
	}
	assert.Equal(t, []float64{0, 0.5, 1, 1.5, 2}, got)
}
