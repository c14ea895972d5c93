package logfreq

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/tonal/affine"
	"github.com/katalvlaran/tonal/enharmonic"
	"github.com/katalvlaran/tonal/pitch"
)

// ErrBadFrequency indicates construction from a frequency that is not
// strictly positive.
var ErrBadFrequency = errors.New("logfreq: frequency must be positive")

// Period is the pitch-class period: one octave, a frequency ratio of 2.
const Period = math.Ln2

// LogHz is the continuous domain value: the natural logarithm of a
// frequency in Hz, or a log-frequency ratio when used as a displacement.
type LogHz float64

// Add returns l + o.
func (l LogHz) Add(o LogHz) LogHz { return l + o }

// Sub returns l − o.
func (l LogHz) Sub(o LogHz) LogHz { return l - o }

// Scale returns k·l.
func (l LogHz) Scale(k float64) LogHz { return LogHz(float64(l) * k) }

// Div returns l/k.
func (l LogHz) Div(k float64) LogHz { return LogHz(float64(l) / k) }

// Unit returns the unit displacement of one natural-log step (a factor e).
func (LogHz) Unit() LogHz { return 1 }

// Less reports whether l sorts strictly before o.
func (l LogHz) Less(o LogHz) bool { return l < o }

// ReduceClass returns the canonical pitch-class representative
// l mod ln2, in [0, ln2).
func (l LogHz) ReduceClass() LogHz {
	r := math.Mod(float64(l), Period)
	if r < 0 {
		r += Period
	}

	return LogHz(r)
}

// ReduceIClass returns the centered interval-class representative in
// (−ln2/2, ln2/2]: up a fifth and down a fourth coincide.
func (l LogHz) ReduceIClass() LogHz {
	r := float64(l.ReduceClass())
	if r > Period/2 {
		r -= Period
	}

	return LogHz(r)
}

// Phase returns l/ln2. Meaningful on reduced values: [0,1) for a class
// representative, (−1/2, 1/2] for an interval-class representative.
func (l LogHz) Phase() (float64, bool) {
	return float64(l) / Period, true
}

// Pitch is an absolute log-frequency pitch.
type Pitch = affine.Point[LogHz]

// Interval is a log-frequency ratio.
type Interval = affine.Vector[LogHz]

// Class is a log-frequency pitch class (an octave-free chroma).
type Class = pitch.Class[LogHz]

// IntervalClass is a log-frequency interval class.
type IntervalClass = pitch.IClass[LogHz]

// New returns the pitch sounding at freq Hz.
func New(freq float64) (Pitch, error) {
	if freq <= 0 || math.IsNaN(freq) || math.IsInf(freq, 1) {
		return Pitch{}, fmt.Errorf("%w: %v", ErrBadFrequency, freq)
	}

	return affine.At(LogHz(math.Log(freq))), nil
}

// FromLog returns the pitch with the given raw log-frequency value.
func FromLog(l float64) Pitch {
	return affine.At(LogHz(l))
}

// Ratio returns the interval corresponding to a frequency ratio, e.g.
// Ratio(2) is one octave up.
func Ratio(r float64) (Interval, error) {
	if r <= 0 || math.IsNaN(r) || math.IsInf(r, 1) {
		return Interval{}, fmt.Errorf("%w: ratio %v", ErrBadFrequency, r)
	}

	return affine.Vec(LogHz(math.Log(r))), nil
}

// Freq returns the frequency of p in Hz.
func Freq(p Pitch) float64 {
	return math.Exp(float64(p.Value()))
}

// FreqRatio returns the frequency ratio spanned by the interval iv.
func FreqRatio(iv Interval) float64 {
	return math.Exp(float64(iv.Value()))
}

// FromEnharmonic maps a twelve-tone pitch to its log-frequency under
// equal-tempered A4=440 tuning. This is the domain's standard registry
// converter.
func FromEnharmonic(p enharmonic.Pitch) (Pitch, error) {
	return affine.At(LogHz(math.Log(enharmonic.Freq(p)))), nil
}
