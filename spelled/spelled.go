package spelled

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/tonal/affine"
	"github.com/katalvlaran/tonal/enharmonic"
	"github.com/katalvlaran/tonal/pitch"
)

var (
	// ErrBadName indicates a name that does not match the pitch-name
	// pattern <letter A-G><#...|b...><optional signed octave>.
	ErrBadName = errors.New("spelled: malformed pitch name")

	// ErrClassOnly indicates a pitch was requested from a name that omits
	// the octave and therefore denotes a pitch class.
	ErrClassOnly = errors.New("spelled: name omits octave and denotes a pitch class")
)

// Fifths is the line-of-fifths lattice coordinate. Steps counts fifths
// from C; Octaves is the register component, chosen so that the semitone
// image is 7·Steps + 12·Octaves.
type Fifths struct {
	Steps   int
	Octaves int
}

// Add returns the component-wise sum.
func (f Fifths) Add(o Fifths) Fifths {
	return Fifths{Steps: f.Steps + o.Steps, Octaves: f.Octaves + o.Octaves}
}

// Sub returns the component-wise difference.
func (f Fifths) Sub(o Fifths) Fifths {
	return Fifths{Steps: f.Steps - o.Steps, Octaves: f.Octaves - o.Octaves}
}

// Scale multiplies both components by k, rounding each.
func (f Fifths) Scale(k float64) Fifths {
	return Fifths{
		Steps:   int(math.Round(float64(f.Steps) * k)),
		Octaves: int(math.Round(float64(f.Octaves) * k)),
	}
}

// Div divides both components by k, rounding each.
func (f Fifths) Div(k float64) Fifths {
	return Fifths{
		Steps:   int(math.Round(float64(f.Steps) / k)),
		Octaves: int(math.Round(float64(f.Octaves) / k)),
	}
}

// Unit returns the unit displacement of one fifth step.
func (Fifths) Unit() Fifths { return Fifths{Steps: 1} }

// ReduceClass zeroes the octave axis; the fifths axis is unbounded and
// stays as is, so C# and Db remain distinct classes.
func (f Fifths) ReduceClass() Fifths {
	return Fifths{Steps: f.Steps}
}

// ReduceIClass zeroes the octave axis, like ReduceClass: the fifths axis
// has no period to center on.
func (f Fifths) ReduceIClass() Fifths {
	return Fifths{Steps: f.Steps}
}

// Phase reports no period: the line of fifths does not repeat.
func (Fifths) Phase() (float64, bool) { return 0, false }

// Pitch is an absolute spelled pitch.
type Pitch = affine.Point[Fifths]

// Interval is a displacement on the line of fifths.
type Interval = affine.Vector[Fifths]

// Class is a spelled pitch class (octave axis zeroed).
type Class = pitch.Class[Fifths]

// IntervalClass is a spelled interval class (octave axis zeroed).
type IntervalClass = pitch.IClass[Fifths]

// New returns the pitch at the given lattice coordinate.
func New(steps, octaves int) Pitch {
	return affine.At(Fifths{Steps: steps, Octaves: octaves})
}

// NewInterval returns the displacement of the given lattice coordinate.
func NewInterval(steps, octaves int) Interval {
	return affine.Vec(Fifths{Steps: steps, Octaves: octaves})
}

// NewClass returns the pitch class with the given fifth steps.
func NewClass(steps int) Class {
	return pitch.NewClass(Fifths{Steps: steps})
}

// baseFifths maps a letter to its fifth steps from C.
var baseFifths = map[byte]int{
	'F': -1, 'C': 0, 'G': 1, 'D': 2, 'A': 3, 'E': 4, 'B': 5,
}

// diatonic maps a letter to its semitone offset above C, used to solve
// the octave component from a scientific octave number.
var diatonic = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

var nameRe = regexp.MustCompile(`^([A-G])(b*|#*)(-?[0-9]+)?$`)

// parse returns the lattice value of name and whether an octave was given.
func parse(name string) (Fifths, bool, error) {
	m := nameRe.FindStringSubmatch(name)
	if m == nil {
		return Fifths{}, false, fmt.Errorf("%w: %q", ErrBadName, name)
	}

	acc := len(m[2])
	if strings.HasPrefix(m[2], "b") {
		acc = -acc
	}
	steps := baseFifths[m[1][0]] + 7*acc

	if m[3] == "" {
		return Fifths{Steps: steps}, false, nil
	}
	oct, err := strconv.Atoi(m[3])
	if err != nil {
		return Fifths{}, false, fmt.Errorf("%w: %q", ErrBadName, name)
	}

	// Solve 7·Steps + 12·Octaves = semitone image of the written name.
	semis := diatonic[m[1][0]] + acc + 12*(oct+1)

	return Fifths{Steps: steps, Octaves: (semis - 7*steps) / 12}, true, nil
}

// ParsePitch parses an absolute spelled pitch name such as "C#4" or
// "Fb3". A name without an octave denotes a pitch class and fails with
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

// ParseClass parses a spelled pitch-class name such as "C#" or "Eb". A
// full pitch name is accepted too and reduces to its class.
func ParseClass(name string) (Class, error) {
	v, _, err := parse(name)
	if err != nil {
		return Class{}, err
	}

	return pitch.NewClass(v), nil
}

// FifthSteps returns the fifths component of p.
func FifthSteps(p Pitch) int {
	return p.Value().Steps
}

// Octaves returns the register component of p.
func Octaves(p Pitch) int {
	return p.Value().Octaves
}

// Semitones returns the twelve-tone image of p: 7·Steps + 12·Octaves.
func Semitones(p Pitch) int {
	return 7*p.Value().Steps + 12*p.Value().Octaves
}

// letters is indexed by (Steps+1) mod 7.
var letters = [7]string{"F", "C", "G", "D", "A", "E", "B"}

// Name renders p as <letter><accidentals><octave>, e.g. "C#4". The octave
// digit belongs to the written letter, so Cb4 (semitone 59, sounding B3)
// still renders as "Cb4".
func Name(p Pitch) string {
	steps := p.Value().Steps
	acc := floorDiv(steps+1, 7)
	dia := mod(7*(steps-7*acc), 12)
	oct := (Semitones(p)-dia-acc)/12 - 1

	return spellSteps(steps) + strconv.Itoa(oct)
}

// ClassName renders the pitch class of c, e.g. "C#".
func ClassName(c Class) string {
	return spellSteps(c.Value().Steps)
}

// spellSteps renders a fifths count as letter plus accidentals: the letter
// is letters[(steps+1) mod 7] and the accidental count (steps+1) div 7,
// sharps positive, flats negative.
func spellSteps(steps int) string {
	letter := letters[mod(steps+1, 7)]
	acc := floorDiv(steps+1, 7)
	if acc >= 0 {
		return letter + strings.Repeat("#", acc)
	}

	return letter + strings.Repeat("b", -acc)
}

// ToEnharmonic collapses a spelled pitch to its twelve-tone equivalent
// via the fifths-to-semitone mapping. This is the domain's standard
// registry converter.
func ToEnharmonic(p Pitch) (enharmonic.Pitch, error) {
	return enharmonic.New(Semitones(p)), nil
}

// mod returns a mod m with the result in [0, m).
func mod(a, m int) int {
	return ((a % m) + m) % m
}

// floorDiv returns floor(a/b) for positive b.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}

	return q
}
