package pitch_test

import "math"

// semis is a toy twelve-periodic domain value (period 12, origin 0) used
// to exercise the class layer without importing a concrete music domain.
type semis int

func (s semis) Add(o semis) semis { return s + o }

func (s semis) Sub(o semis) semis { return s - o }

func (s semis) Scale(k float64) semis { return semis(math.Round(float64(s) * k)) }

func (s semis) Div(k float64) semis { return semis(math.Round(float64(s) / k)) }

func (semis) Unit() semis { return 1 }

func (s semis) Less(o semis) bool { return s < o }

func (s semis) ReduceClass() semis { return ((s % 12) + 12) % 12 }

func (s semis) ReduceIClass() semis {
	r := ((s % 12) + 12) % 12
	if r > 6 {
		r -= 12
	}

	return r
}

func (s semis) Phase() (float64, bool) { return float64(s) / 12, true }

// cents is a second periodic toy domain (period 1200) for conversion
// tests: one semis unit corresponds to one hundred cents.
type cents int

func (c cents) Add(o cents) cents { return c + o }

func (c cents) Sub(o cents) cents { return c - o }

func (c cents) Scale(k float64) cents { return cents(math.Round(float64(c) * k)) }

func (c cents) Div(k float64) cents { return cents(math.Round(float64(c) / k)) }

func (cents) Unit() cents { return 1 }

func (c cents) Less(o cents) bool { return c < o }

func (c cents) ReduceClass() cents { return ((c % 1200) + 1200) % 1200 }

func (c cents) ReduceIClass() cents {
	r := ((c % 1200) + 1200) % 1200
	if r > 600 {
		r -= 1200
	}

	return r
}

func (c cents) Phase() (float64, bool) { return float64(c) / 1200, true }

// steps is a toy aperiodic domain value: class reduction is the identity
// and phase is undefined.
type steps int

func (s steps) Add(o steps) steps { return s + o }

func (s steps) Sub(o steps) steps { return s - o }

func (s steps) Scale(k float64) steps { return steps(math.Round(float64(s) * k)) }

func (s steps) Div(k float64) steps { return steps(math.Round(float64(s) / k)) }

func (steps) Unit() steps { return 1 }

func (s steps) ReduceClass() steps { return s }

func (s steps) ReduceIClass() steps { return s }

func (steps) Phase() (float64, bool) { return 0, false }
