package pitch

import (
	"math"

	"github.com/katalvlaran/tonal/affine"
)

// ClassValue is the contract a domain value must satisfy to support
// pitch-class reduction on top of the affine algebra.
//
// ReduceClass maps a value to its canonical pitch-class representative:
// (value − origin) mod period, in [0, period). Domains that reduce only
// part of their value (line of fifths) zero the unreduced axis instead.
// ReduceIClass maps a displacement to the centered interval-class
// representative in (−period/2, period/2]. Both must be idempotent.
//
// Phase reports the position of an already-reduced value within the
// period as a fraction; ok is false when the domain declares no period.
type ClassValue[D any] interface {
	affine.Value[D]

	// ReduceClass returns the canonical pitch-class representative.
	ReduceClass() D

	// ReduceIClass returns the centered interval-class representative.
	ReduceIClass() D

	// Phase returns value/period; ok=false when the domain has no period.
	Phase() (frac float64, ok bool)
}

// Class is a pitch class: a pitch reduced modulo the domain period.
// The wrapped value is always in canonical form, so == compares classes
// correctly (e.g. semitone −5 and 7 construct the same Class).
type Class[D ClassValue[D]] struct {
	v D
}

// NewClass reduces a raw domain value to its pitch class.
func NewClass[D ClassValue[D]](v D) Class[D] {
	return Class[D]{v: v.ReduceClass()}
}

// ToClass reduces a pitch to its pitch class. Idempotent through
// Class.Pitch: ToClass(c.Pitch()) == c.
func ToClass[D ClassValue[D]](p affine.Point[D]) Class[D] {
	return NewClass(p.Value())
}

// Value returns the canonical representative value.
func (c Class[D]) Value() D { return c.v }

// Pitch returns the canonical representative as an absolute pitch.
func (c Class[D]) Pitch() affine.Point[D] {
	return affine.At(c.v)
}

// Diff returns the interval class from o to c.
func (c Class[D]) Diff(o Class[D]) IClass[D] {
	return NewIClass(c.v.Sub(o.v))
}

// Add transposes c by the interval class i, renormalizing.
func (c Class[D]) Add(i IClass[D]) Class[D] {
	return NewClass(c.v.Add(i.v))
}

// Sub transposes c by the negation of i, renormalizing.
func (c Class[D]) Sub(i IClass[D]) Class[D] {
	return NewClass(c.v.Sub(i.v))
}

// IClass is an interval class: an interval reduced to the centered
// representative in (−period/2, period/2]. As with Class, the wrapped
// value is always canonical, so == compares interval classes correctly.
type IClass[D ClassValue[D]] struct {
	v D
}

// NewIClass reduces a raw domain value to its interval class.
func NewIClass[D ClassValue[D]](v D) IClass[D] {
	return IClass[D]{v: v.ReduceIClass()}
}

// ToIClass reduces an interval to its interval class.
func ToIClass[D ClassValue[D]](v affine.Vector[D]) IClass[D] {
	return NewIClass(v.Value())
}

// Value returns the centered representative value.
func (i IClass[D]) Value() D { return i.v }

// Interval returns the centered representative as a plain interval.
func (i IClass[D]) Interval() affine.Vector[D] {
	return affine.Vec(i.v)
}

// Add returns i + o, renormalizing.
func (i IClass[D]) Add(o IClass[D]) IClass[D] {
	return NewIClass(i.v.Add(o.v))
}

// Sub returns i − o, renormalizing.
func (i IClass[D]) Sub(o IClass[D]) IClass[D] {
	return NewIClass(i.v.Sub(o.v))
}

// Neg returns the inverse of i, renormalizing.
func (i IClass[D]) Neg() IClass[D] {
	var zero D
	return NewIClass(zero.Sub(i.v))
}

// PhaseOption configures Phase and PhaseDiff.
type PhaseOption func(*phaseConfig)

type phaseConfig struct {
	radians bool
}

// WithRadians scales the returned phase by 2π, mapping one full period to
// the unit circle.
func WithRadians() PhaseOption {
	return func(c *phaseConfig) { c.radians = true }
}

// Phase returns the position of the pitch class within its period as a
// fraction in [0, 1), or ErrNoPeriod for domains without a period.
func Phase[D ClassValue[D]](c Class[D], opts ...PhaseOption) (float64, error) {
	return phase(c.v, opts)
}

// PhaseDiff returns the signed fraction of the period covered by the
// interval class, in (−1/2, 1/2], or ErrNoPeriod for domains without a
// period.
func PhaseDiff[D ClassValue[D]](i IClass[D], opts ...PhaseOption) (float64, error) {
	return phase(i.v, opts)
}

func phase[D ClassValue[D]](v D, opts []PhaseOption) (float64, error) {
	var cfg phaseConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	frac, ok := v.Phase()
	if !ok {
		return 0, ErrNoPeriod
	}
	if cfg.radians {
		frac *= 2 * math.Pi
	}

	return frac, nil
}
