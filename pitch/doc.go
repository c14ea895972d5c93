// Package pitch builds the musical layer on top of the affine algebra:
// modular pitch-class/interval-class reduction, phase computation, and a
// registry of conversion functions between concrete pitch domains.
//
// # Classes
//
// A pitch domain may declare a period (12 semitones, one octave of
// log-frequency) over which pitches repeat. Reducing modulo that period
// yields four shapes per domain D:
//
//	affine.Point[D]  — pitch            (absolute, unreduced)
//	affine.Vector[D] — interval         (displacement, unreduced)
//	pitch.Class[D]   — pitch class      (canonical representative in [0, period))
//	pitch.IClass[D]  — interval class   (centered representative in (−period/2, period/2])
//
// Class-ness is part of the type, not a runtime flag: subtracting a pitch
// class from a pitch, or adding an interval to an interval class, is a
// compile error. Reduction (ToClass, ToIClass) is explicit and idempotent.
//
// Phase and PhaseDiff report the position of a class within its period as
// a fraction (optionally in radians via WithRadians). Domains without a
// period (spelled pitch) return ErrNoPeriod.
//
// # Conversion
//
// A Registry holds typed conversion pipelines between concrete domain
// types. It is an explicit value passed to every conversion call — there
// is no hidden package-level registry. Registration keeps the pipeline set
// transitively closed: whenever A→B and B→C exist, A→C is materialized as
// their concatenation unless a direct converter is already installed.
// Direct (length-1) pipelines are "explicit" and protected; synthesized
// (longer) pipelines are "implicit" and may be replaced by later
// registrations. See Register for the exact policy knobs.
//
// Convert applies a direct pipeline. ConvertInterval falls back to the
// pitch-duality route — lift the interval to a pitch, convert the pitch,
// lift back, then correct for the two domains' distinct origins — because
// the point/vector correspondence is defined relative to each domain's own
// origin. ConvertClass and ConvertIClass convert the canonical
// representative and renormalize in the target domain.
//
// Errors:
//
//	ErrNoConverter    — no pipeline registered for the requested pair.
//	ErrConversion     — a converter produced a value of the wrong type.
//	ErrConverterExists — explicit pipeline present and no overwrite policy given.
//	ErrNoPeriod       — phase requested in a domain without a period.
package pitch
