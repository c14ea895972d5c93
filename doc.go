// Package tonal is an algebraic toolkit for musical pitch and time:
// affine point/vector arithmetic, pitch-class reduction, and typed
// conversion between pitch representations.
//
// Everything is built from one affine contract:
//
//	affine/     — generic Point/Vector algebra + Linspace/Range
//	pitch/      — pitch-class & interval-class layer, converter registry
//	timeline/   — linear time, durations, events, chordify
//	enharmonic/ — 12-tone semitone pitch with name parsing ("C#4")
//	spelled/    — line-of-fifths notated pitch (C# ≠ Db)
//	logfreq/    — continuous log-frequency pitch
//
// Points (pitches, instants) and vectors (intervals, durations) obey the
// affine rules — point−point is a vector, point±vector is a point, two
// points never add — and each rule that the algebra forbids is simply
// absent from the API, so misuse fails at compile time.
//
// Cross-domain conversion goes through an explicit pitch.Registry. The
// one returned by StandardRegistry knows the standard routes:
//
//	spelled → enharmonic   (fifths-to-semitone mapping)
//	enharmonic → logfreq   (equal-tempered A4=440)
//	spelled → logfreq      (synthesized by transitive closure)
//
// A quick taste:
//
//	reg, _ := tonal.StandardRegistry()
//	c4, _ := enharmonic.ParsePitch("C4")
//	lf, _ := pitch.Convert[logfreq.Pitch](reg, c4)
//	fmt.Printf("%.2f Hz\n", logfreq.Freq(lf)) // 261.63 Hz
package tonal
