package timeline

import (
	"github.com/spf13/cast"

	"github.com/katalvlaran/tonal/affine"
)

// Beat is the scalar time coordinate, measured in whatever unit the
// surrounding corpus uses (beats, seconds, ticks).
type Beat float64

// Add returns b + o.
func (b Beat) Add(o Beat) Beat { return b + o }

// Sub returns b − o.
func (b Beat) Sub(o Beat) Beat { return b - o }

// Scale returns k·b.
func (b Beat) Scale(k float64) Beat { return Beat(float64(b) * k) }

// Div returns b divided by k.
func (b Beat) Div(k float64) Beat { return Beat(float64(b) / k) }

// Unit returns the unit duration.
func (Beat) Unit() Beat { return 1 }

// Less reports whether b sorts strictly before o.
func (b Beat) Less(o Beat) bool { return b < o }

// Time is an instant on the timeline.
type Time = affine.Point[Beat]

// Duration is a displacement between instants.
type Duration = affine.Vector[Beat]

// At returns the instant at t.
func At(t float64) Time {
	return affine.At(Beat(t))
}

// Span returns the duration of d units.
func Span(d float64) Duration {
	return affine.Vec(Beat(d))
}

// From builds a Time from any numeric-ish raw value (int, float, numeric
// string). It mirrors the permissive raw-value construction of the other
// domains; non-numeric input is rejected.
func From(v any) (Time, error) {
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return Time{}, err
	}

	return At(f), nil
}
