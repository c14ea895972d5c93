package affine

// Value is the contract a domain value type must satisfy to act as the
// coordinate of an affine pair. D is always the implementing type itself
// (e.g. `type Beat float64` implements Value[Beat]).
//
// Add/Sub are the displacement group operations; Scale/Div multiply a
// displacement by a scalar. Unit is the domain's unit displacement, used
// as the default step by Range. Integer-backed domains round on Scale/Div.
type Value[D any] interface {
	comparable

	// Add returns the sum of the receiver and other.
	Add(other D) D

	// Sub returns the difference between the receiver and other.
	Sub(other D) D

	// Scale multiplies the receiver by the scalar k.
	Scale(k float64) D

	// Div divides the receiver by the scalar k.
	Div(k float64) D

	// Unit returns the domain's unit displacement.
	Unit() D
}

// Ordered extends Value with a strict total order. Domains whose value is
// not totally ordered (e.g. 2-D line-of-fifths coordinates) implement only
// Value and are rejected by Less, Compare and Range at compile time.
type Ordered[D any] interface {
	Value[D]

	// Less reports whether the receiver sorts strictly before other.
	Less(other D) bool
}

// Point is an absolute position in the affine space over D.
// Points are immutable values; all methods return fresh values.
type Point[D Value[D]] struct {
	v D
}

// At wraps a raw domain value as a Point.
func At[D Value[D]](v D) Point[D] {
	return Point[D]{v: v}
}

// Value returns the wrapped domain value.
func (p Point[D]) Value() D { return p.v }

// Diff returns the displacement from o to p (point minus point).
func (p Point[D]) Diff(o Point[D]) Vector[D] {
	return Vector[D]{v: p.v.Sub(o.v)}
}

// Add displaces p by v.
func (p Point[D]) Add(v Vector[D]) Point[D] {
	return Point[D]{v: p.v.Add(v.v)}
}

// Sub displaces p by the negation of v.
func (p Point[D]) Sub(v Vector[D]) Point[D] {
	return Point[D]{v: p.v.Sub(v.v)}
}

// ToVector reinterprets p as the displacement from the domain origin.
func (p Point[D]) ToVector() Vector[D] {
	return Vector[D]{v: p.v}
}

// Vector is a displacement in the affine space over D.
// Vectors are immutable values; all methods return fresh values.
type Vector[D Value[D]] struct {
	v D
}

// Vec wraps a raw domain value as a Vector.
func Vec[D Value[D]](v D) Vector[D] {
	return Vector[D]{v: v}
}

// Value returns the wrapped domain value.
func (v Vector[D]) Value() D { return v.v }

// Add returns v + o.
func (v Vector[D]) Add(o Vector[D]) Vector[D] {
	return Vector[D]{v: v.v.Add(o.v)}
}

// Sub returns v − o.
func (v Vector[D]) Sub(o Vector[D]) Vector[D] {
	return Vector[D]{v: v.v.Sub(o.v)}
}

// Scale returns k·v.
func (v Vector[D]) Scale(k float64) Vector[D] {
	return Vector[D]{v: v.v.Scale(k)}
}

// Div returns v divided by the scalar k.
func (v Vector[D]) Div(k float64) Vector[D] {
	return Vector[D]{v: v.v.Div(k)}
}

// Neg returns the negation of v, computed as zero − v.
func (v Vector[D]) Neg() Vector[D] {
	var zero D
	return Vector[D]{v: zero.Sub(v.v)}
}

// IsZero reports whether v is the zero displacement.
func (v Vector[D]) IsZero() bool {
	var zero D
	return v.v == zero
}

// ToPoint reinterprets v as the position displaced from the domain origin.
func (v Vector[D]) ToPoint() Point[D] {
	return Point[D]{v: v.v}
}

// Unit returns the domain's unit displacement as a Vector.
func Unit[D Value[D]]() Vector[D] {
	var zero D
	return Vector[D]{v: zero.Unit()}
}

// Less reports whether point a sorts strictly before point b.
func Less[D Ordered[D]](a, b Point[D]) bool {
	return a.v.Less(b.v)
}

// LessVec reports whether vector a sorts strictly before vector b.
func LessVec[D Ordered[D]](a, b Vector[D]) bool {
	return a.v.Less(b.v)
}

// Compare returns −1, 0 or +1 ordering point a against point b.
func Compare[D Ordered[D]](a, b Point[D]) int {
	switch {
	case a.v.Less(b.v):
		return -1
	case b.v.Less(a.v):
		return +1
	default:
		return 0
	}
}
