// Package enharmonic implements twelve-tone equal-tempered pitch on
// integer semitones (MIDI numbering: middle C = 60, A4 = 69).
//
// The domain value is a Semitone; the four shapes are
//
//	Pitch         = affine.Point[Semitone]   — e.g. C#4, MIDI 61
//	Interval      = affine.Vector[Semitone]  — e.g. a fifth, +7
//	Class         = pitch.Class[Semitone]    — e.g. C#, canonical 1
//	IntervalClass = pitch.IClass[Semitone]   — centered in (−6, 6]
//
// Names follow the pattern <letter A–G><repeated # or b><octave>, octave
// optional: "C#4" is a pitch, "C#" a pitch class. Enharmonic spellings
// collapse — ParsePitch("Db5") == ParsePitch("C#5") — which is exactly
// what distinguishes this domain from spelled pitch.
//
// The class period is 12 semitones with origin 60, so class values are
// canonical in [0, 12) and phases are twelfths of an octave.
//
// Errors:
//
//	ErrBadName    — name does not match the pitch-name pattern.
//	ErrClassOnly  — pitch requested from a name that omits the octave.
//	ErrNotInteger — raw construction from a non-integral number.
package enharmonic
