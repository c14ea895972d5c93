package timeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tonal/timeline"
)

// ev is shorthand for a labeled event.
func ev(start, dur float64, label string) timeline.Event {
	return timeline.Event{Time: timeline.At(start), Duration: timeline.Span(dur), Data: label}
}

// seg is shorthand for an expected slice with its sounding labels.
func seg(start, dur float64, labels ...string) timeline.Event {
	data := make([]any, 0, len(labels))
	for _, l := range labels {
		data = append(data, l)
	}

	return timeline.Event{Time: timeline.At(start), Duration: timeline.Span(dur), Data: data}
}

// TestChordify_Empty verifies the trivial case.
func TestChordify_Empty(t *testing.T) {
	got, err := timeline.Chordify(nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

// TestChordify_Sequential verifies non-overlapping events pass through.
func TestChordify_Sequential(t *testing.T) {
	got, err := timeline.Chordify([]timeline.Event{
		ev(0, 1, "a"),
		ev(1, 1, "b"),
	})
	require.NoError(t, err)
	assert.Equal(t, []timeline.Event{
		seg(0, 1, "a"),
		seg(1, 1, "b"),
	}, got)
}

// TestChordify_Overlap verifies an overlap splits both events at the
// inner boundary, onsets listed before carried events.
func TestChordify_Overlap(t *testing.T) {
	got, err := timeline.Chordify([]timeline.Event{
		ev(0, 2, "a"),
		ev(1, 1, "b"),
	})
	require.NoError(t, err)
	assert.Equal(t, []timeline.Event{
		seg(0, 1, "a"),
		seg(1, 1, "b", "a"),
	}, got)
}

// TestChordify_Gap verifies silence becomes an explicit empty segment.
func TestChordify_Gap(t *testing.T) {
	got, err := timeline.Chordify([]timeline.Event{
		ev(0, 1, "a"),
		ev(2, 1, "b"),
	})
	require.NoError(t, err)
	assert.Equal(t, []timeline.Event{
		seg(0, 1, "a"),
		seg(1, 1),
		seg(2, 1, "b"),
	}, got)
}

// TestChordify_Nested verifies a long note spanning several short ones.
func TestChordify_Nested(t *testing.T) {
	got, err := timeline.Chordify([]timeline.Event{
		ev(0, 4, "pedal"),
		ev(1, 1, "b"),
		ev(1, 2, "c"),
	})
	require.NoError(t, err)
	assert.Equal(t, []timeline.Event{
		seg(0, 1, "pedal"),
		seg(1, 1, "b", "c", "pedal"),
		seg(2, 1, "pedal", "c"),
		seg(3, 1, "pedal"),
	}, got)
}

// TestChordify_SharedOnset verifies chords starting together stay together.
func TestChordify_SharedOnset(t *testing.T) {
	got, err := timeline.Chordify([]timeline.Event{
		ev(0, 2, "a"),
		ev(0, 1, "b"),
	})
	require.NoError(t, err)
	assert.Equal(t, []timeline.Event{
		seg(0, 1, "a", "b"),
		seg(1, 1, "a"),
	}, got)
}

// TestChordify_Tiling verifies the output durations tile the piece.
func TestChordify_Tiling(t *testing.T) {
	got, err := timeline.Chordify([]timeline.Event{
		ev(0, 3, "a"),
		ev(0.5, 1, "b"),
		ev(2, 2, "c"),
	})
	require.NoError(t, err)

	cur := timeline.At(0)
	for _, s := range got {
		assert.Equal(t, cur, s.Time, "segments must be contiguous")
		cur = s.Time.Add(s.Duration)
	}
	assert.Equal(t, timeline.At(4), cur, "segments end at the last offset")
}
