// Package logfreq implements continuous pitch as the natural logarithm of
// frequency in Hz.
//
// The domain value is a LogHz float; intervals are log-frequency ratios,
// so transposition is addition and a frequency ratio of 2 (one octave) is
// the class period ln 2. The origin is ln 1 = 0, i.e. 1 Hz.
//
// Pitches are built from a frequency (New) or a raw log-frequency value
// (FromLog). FromEnharmonic maps twelve-tone pitches in via the
// equal-tempered A4=440 tuning and is the domain's standard registry
// converter.
//
// Errors:
//
//	ErrBadFrequency — construction from a non-positive frequency.
package logfreq
