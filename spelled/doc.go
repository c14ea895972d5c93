// Package spelled implements notated pitch on the line of fifths, where
// enharmonically equivalent spellings stay distinct: C# and Db are one
// semitone apart on a keyboard but eleven fifths apart here.
//
// The domain value is a 2-D lattice coordinate Fifths{Steps, Octaves}:
// Steps counts fifths from C, Octaves balances the total register so that
// the semitone image is 7·Steps + 12·Octaves. One sharp raises a letter by
// seven fifths (and drops four octaves); one flat does the opposite.
//
// Class reduction zeroes only the octave axis — the fifths axis is
// unbounded, so the domain has no period and no phase. The lattice has no
// total order either, so ordering helpers and Range do not apply; both
// restrictions are enforced at compile time.
//
// ToEnharmonic collapses a spelled pitch to its twelve-tone equivalent and
// is the domain's standard registry converter.
//
// Errors:
//
//	ErrBadName   — name does not match the pitch-name pattern.
//	ErrClassOnly — pitch requested from a name that omits the octave.
package spelled
