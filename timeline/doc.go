// Package timeline instantiates the affine algebra for strictly ordered
// scalar time.
//
// Time is a point on the line, Duration a displacement along it; both wrap
// a float64 Beat. The usual affine rules apply: Time−Time is a Duration,
// Time±Duration is a Time, two Times do not add.
//
// Event pairs a Time and Duration with arbitrary payload data — the unit
// produced by corpus readers and consumed by analysis code. Chordify
// reslices a piece of overlapping events into maximal segments with a
// constant set of sounding data.
package timeline
