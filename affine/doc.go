// Package affine implements the point/vector algebra shared by every
// concrete quantity in tonal: pitches, time instants, and their
// displacements (intervals, durations).
//
// The model is a plain affine space over a domain value type D:
//
//   - Point[D]  — an absolute position (a pitch, an instant).
//   - Vector[D] — a displacement between positions (an interval, a duration).
//
// The algebra is the usual one:
//
//	Point − Point  → Vector   (Point.Diff)
//	Point + Vector → Point    (Point.Add)
//	Point − Vector → Point    (Point.Sub)
//	Vector ± Vector → Vector  (Vector.Add / Vector.Sub)
//	k · Vector      → Vector  (Vector.Scale / Vector.Div)
//
// Operations that make no sense in an affine space — adding two points,
// adding a point to a vector — are simply not present, so misuse is a
// compile error rather than a runtime check.
//
// A concrete domain is defined by its value type D satisfying Value[D]
// (see timeline.Beat, enharmonic.Semitone, spelled.Fifths, logfreq.LogHz).
// Two domains never mix: Point[Beat] and Point[Semitone] are distinct
// types with no common operations.
//
// Equality and hashing delegate structurally to D: Point and Vector values
// are comparable with == and usable as map keys. Ordering is opt-in via the
// Ordered[D] constraint; domains without a total order (spelled.Fifths)
// omit Less and are rejected by ordering-dependent generics at compile time.
//
// The package also ships two generic range helpers that need nothing beyond
// the affine contract:
//
//   - Linspace — fixed-count interpolation between two points.
//   - Range    — lazy arithmetic progression of points (iter.Seq).
//
// Errors:
//
//	ErrBadCount — Linspace called with num < 1.
package affine
