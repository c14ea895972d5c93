package enharmonic

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/katalvlaran/tonal/affine"
	"github.com/katalvlaran/tonal/pitch"
)

var (
	// ErrBadName indicates a name that does not match the pitch-name
	// pattern <letter A-G><#...|b...><optional signed octave>.
	ErrBadName = errors.New("enharmonic: malformed pitch name")

	// ErrClassOnly indicates a pitch was requested from a name that omits
	// the octave and therefore denotes a pitch class.
	ErrClassOnly = errors.New("enharmonic: name omits octave and denotes a pitch class")

	// ErrNotInteger indicates raw construction from a number that is not
	// an integral semitone count.
	ErrNotInteger = errors.New("enharmonic: non-integer semitone value")
)

// Semitone is the twelve-tone domain value: a MIDI note number, or a
// signed count of semitones when used as a displacement.
type Semitone int

// Origin is the pitch-class reference point (middle C) and Period the
// class period in semitones.
const (
	Origin Semitone = 60
	Period          = 12
)

// Add returns s + o.
func (s Semitone) Add(o Semitone) Semitone { return s + o }

// Sub returns s − o.
func (s Semitone) Sub(o Semitone) Semitone { return s - o }

// Scale returns k·s, rounded to the nearest semitone.
func (s Semitone) Scale(k float64) Semitone {
	return Semitone(math.Round(float64(s) * k))
}

// Div returns s/k, rounded to the nearest semitone.
func (s Semitone) Div(k float64) Semitone {
	return Semitone(math.Round(float64(s) / k))
}

// Unit returns the unit displacement of one semitone.
func (Semitone) Unit() Semitone { return 1 }

// Less reports whether s sorts strictly before o.
func (s Semitone) Less(o Semitone) bool { return s < o }

// ReduceClass returns the canonical pitch-class representative
// (s − Origin) mod Period, in [0, 12).
func (s Semitone) ReduceClass() Semitone {
	return mod(s-Origin, Period)
}

// ReduceIClass returns the centered interval-class representative in
// (−6, 6]: a descending fifth and an ascending fourth coincide.
func (s Semitone) ReduceIClass() Semitone {
	r := mod(s, Period)
	if r > Period/2 {
		r -= Period
	}

	return r
}

// Phase returns s/Period. Meaningful on reduced values: [0,1) for a class
// representative, (−1/2, 1/2] for an interval-class representative.
func (s Semitone) Phase() (float64, bool) {
	return float64(s) / Period, true
}

// mod returns a mod m with the result in [0, m).
func mod(a, m Semitone) Semitone {
	return ((a % m) + m) % m
}

// Pitch is an absolute twelve-tone pitch.
type Pitch = affine.Point[Semitone]

// Interval is a displacement in semitones.
type Interval = affine.Vector[Semitone]

// Class is a twelve-tone pitch class.
type Class = pitch.Class[Semitone]

// IntervalClass is a twelve-tone interval class.
type IntervalClass = pitch.IClass[Semitone]

// New returns the pitch with the given MIDI number.
func New(midi int) Pitch {
	return affine.At(Semitone(midi))
}

// NewInterval returns the interval of n semitones.
func NewInterval(n int) Interval {
	return affine.Vec(Semitone(n))
}

// NewClass returns the pitch class of the given semitone value, reduced.
func NewClass(n int) Class {
	return pitch.NewClass(Semitone(n))
}

// NewIntervalClass returns the interval class of n semitones, reduced to
// the centered representative.
func NewIntervalClass(n int) IntervalClass {
	return pitch.NewIClass(Semitone(n))
}

// diatonic maps a letter to its semitone offset above C.
var diatonic = map[byte]Semitone{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// nameRe matches <letter><all-sharps or all-flats><optional signed octave>.
var nameRe = regexp.MustCompile(`^([A-G])(b*|#*)(-?[0-9]+)?$`)

// parse returns the semitone value of name and whether an octave was given.
func parse(name string) (Semitone, bool, error) {
	m := nameRe.FindStringSubmatch(name)
	if m == nil {
		return 0, false, fmt.Errorf("%w: %q", ErrBadName, name)
	}

	v := diatonic[m[1][0]]
	if strings.HasPrefix(m[2], "#") {
		v += Semitone(len(m[2]))
	} else {
		v -= Semitone(len(m[2]))
	}

	if m[3] == "" {
		return v, false, nil
	}
	oct, err := strconv.Atoi(m[3])
	if err != nil {
		return 0, false, fmt.Errorf("%w: %q", ErrBadName, name)
	}

	return v + Period*Semitone(oct+1), true, nil
}

// ParsePitch parses an absolute pitch name such as "C#4" or "Bb-1".
// A name without an octave denotes a pitch class and fails with
// ErrClassOnly; use ParseClass for those.
func ParsePitch(name string) (Pitch, error) {
	v, hasOctave, err := parse(name)
	if err != nil {
		return Pitch{}, err
	}
	if !hasOctave {
		return Pitch{}, fmt.Errorf("%w: %q", ErrClassOnly, name)
	}

	return affine.At(v), nil
}

// ParseClass parses a pitch-class name such as "C#" or "Eb". A full pitch
// name is accepted too and reduces to its class: ParseClass("C#4") is the
// class C#.
func ParseClass(name string) (Class, error) {
	v, _, err := parse(name)
	if err != nil {
		return Class{}, err
	}

	return pitch.NewClass(v), nil
}

// From builds a Pitch from a raw value: an integer or integral float MIDI
// number (in any Go numeric type), or an absolute pitch name.
func From(v any) (Pitch, error) {
	if s, ok := v.(string); ok {
		return ParsePitch(s)
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return Pitch{}, fmt.Errorf("%w: %v", ErrBadName, err)
	}
	if f != math.Trunc(f) {
		return Pitch{}, fmt.Errorf("%w: %v", ErrNotInteger, v)
	}

	return New(int(f)), nil
}

// MIDI returns the MIDI number of p.
func MIDI(p Pitch) int {
	return int(p.Value())
}

// Octave returns the scientific octave number of p (C4 = 60 is octave 4).
func Octave(p Pitch) int {
	return floorDiv(int(p.Value()), Period) - 1
}

// Freq returns the equal-tempered frequency of p in Hz, tuned to A4=440.
func Freq(p Pitch) float64 {
	return math.Pow(2, float64(p.Value()-69)/Period) * 440
}

// Spelling selects the accidental table used when rendering names.
type Spelling int

const (
	// Sharp renders the black keys as C#, D#, F#, G#, A#.
	Sharp Spelling = iota

	// Flat renders the black keys as Db, Eb, Gb, Ab, Bb.
	Flat
)

var (
	sharpNames = [Period]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	flatNames  = [Period]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}
)

// Name renders p as <class><octave>, e.g. "C#4".
func Name(p Pitch, s Spelling) string {
	return baseName(mod(p.Value(), Period), s) + strconv.Itoa(Octave(p))
}

// ClassName renders the pitch class of c, e.g. "C#".
func ClassName(c Class, s Spelling) string {
	return baseName(c.Value(), s)
}

func baseName(v Semitone, s Spelling) string {
	if s == Flat {
		return flatNames[v]
	}

	return sharpNames[v]
}

// floorDiv returns floor(a/b) for positive b.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}

	return q
}
