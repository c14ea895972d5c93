package timeline

import (
	"errors"
	"sort"

	"github.com/katalvlaran/tonal/affine"
)

// ErrUnclosedSlice indicates the final slice boundary still had sounding
// events — only possible when onset/offset arithmetic misbehaves (e.g.
// accumulated floating-point drift in the input).
var ErrUnclosedSlice = errors.New("timeline: events extend past the final slice boundary")

// Event is a timestamped datum: something (a note, a chord, an annotation)
// sounding from Time for Duration.
type Event struct {
	Time     Time
	Duration Duration
	Data     any
}

// End returns the instant the event stops sounding.
func (e Event) End() Time {
	return e.Time.Add(e.Duration)
}

// Chordify reslices a piece of (possibly overlapping) events into maximal
// segments during which the set of sounding events is constant. Each
// returned Event covers one segment; its Data is the []any of the data of
// all events sounding there, onsets first, earlier-started events after.
// Gaps between events yield segments with empty data.
//
// Slice boundaries are the union of all onsets and offsets, so the result
// is ordered by time and the durations tile the piece exactly.
//
// Complexity: O(E·S) for E events over S slice boundaries.
func Chordify(events []Event) ([]Event, error) {
	if len(events) == 0 {
		return nil, nil
	}

	// Collect every onset and offset as a slice boundary; remember the
	// events starting at each onset.
	onsets := make(map[Time][]Event)
	for _, e := range events {
		onsets[e.Time] = append(onsets[e.Time], e)
		if _, ok := onsets[e.End()]; !ok {
			onsets[e.End()] = nil
		}
	}

	times := make([]Time, 0, len(onsets))
	for t := range onsets {
		times = append(times, t)
	}
	sort.Slice(times, func(i, j int) bool { return affine.Less(times[i], times[j]) })

	// Sweep the boundaries, carrying events that sound across them.
	slices := make([][]Event, len(times))
	var active []Event
	for i, t := range times {
		carried := active[:0:0]
		for _, e := range active {
			if affine.Less(t, e.End()) {
				carried = append(carried, e)
			}
		}
		slices[i] = append(onsets[t], carried...)
		active = append(carried, onsets[t]...)
	}

	// The last boundary exists only because the final event(s) end there.
	if len(slices[len(slices)-1]) != 0 {
		return nil, ErrUnclosedSlice
	}

	out := make([]Event, 0, len(times)-1)
	for i := 0; i+1 < len(times); i++ {
		data := make([]any, 0, len(slices[i]))
		for _, e := range slices[i] {
			data = append(data, e.Data)
		}
		out = append(out, Event{
			Time:     times[i],
			Duration: times[i+1].Diff(times[i]),
			Data:     data,
		})
	}

	return out, nil
}
