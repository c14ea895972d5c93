package affine_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/tonal/affine"
)

// coord is a minimal ordered domain value for exercising the algebra
// without pulling in a concrete musical domain.
type coord float64

func (c coord) Add(o coord) coord { return c + o }

func (c coord) Sub(o coord) coord { return c - o }

func (c coord) Scale(k float64) coord { return coord(float64(c) * k) }

func (c coord) Div(k float64) coord { return coord(float64(c) / k) }

func (coord) Unit() coord { return 1 }

func (c coord) Less(o coord) bool { return c < o }

// TestPoint_RoundTrip verifies the fundamental affine identity
// p1 + (p2 − p1) == p2 over random point pairs.
func TestPoint_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		p1 := affine.At(coord(rng.Float64()*20 - 10))
		p2 := affine.At(coord(rng.Float64()*20 - 10))

		assert.Equal(t, p2, p1.Add(p2.Diff(p1)), "p1 + (p2 - p1) must equal p2")
	}
}

// TestPoint_Arithmetic checks the full operation table of the affine pair.
func TestPoint_Arithmetic(t *testing.T) {
	p1 := affine.At(coord(5))
	p2 := affine.At(coord(2))
	v1 := affine.Vec(coord(3))
	v2 := affine.Vec(coord(7))

	assert.Equal(t, affine.Vec(coord(3)), p1.Diff(p2), "point minus point yields a vector")
	assert.Equal(t, affine.At(coord(8)), p1.Add(v1), "point plus vector yields a point")
	assert.Equal(t, affine.At(coord(2)), p1.Sub(v1), "point minus vector yields a point")
	assert.Equal(t, affine.Vec(coord(10)), v1.Add(v2), "vector plus vector")
	assert.Equal(t, affine.Vec(coord(-4)), v1.Sub(v2), "vector minus vector")
	assert.Equal(t, affine.Vec(coord(6)), v1.Scale(2), "scalar multiply")
	assert.Equal(t, affine.Vec(coord(1.5)), v1.Div(2), "scalar divide")
	assert.Equal(t, affine.Vec(coord(-3)), v1.Neg(), "negation via zero minus v")
}

// TestPoint_VectorDuality checks the point↔vector reinterpretations.
func TestPoint_VectorDuality(t *testing.T) {
	p := affine.At(coord(4))
	v := affine.Vec(coord(4))

	assert.Equal(t, v, p.ToVector(), "point reinterprets as vector with same value")
	assert.Equal(t, p, v.ToPoint(), "vector reinterprets as point with same value")
	assert.True(t, p.Diff(p).IsZero(), "p - p is the zero vector")
}

// TestPoint_Equality verifies structural equality and map-key hashing.
func TestPoint_Equality(t *testing.T) {
	assert.True(t, affine.At(coord(1)) == affine.At(coord(1)), "equal wrapped values compare equal")
	assert.False(t, affine.At(coord(1)) == affine.At(coord(2)), "unequal wrapped values differ")

	seen := map[affine.Point[coord]]int{
		affine.At(coord(1)): 10,
	}
	seen[affine.At(coord(1))]++
	assert.Equal(t, 11, seen[affine.At(coord(1))], "points must hash structurally as map keys")
}

// TestPoint_Ordering checks Less and Compare on an ordered domain.
func TestPoint_Ordering(t *testing.T) {
	lo := affine.At(coord(1))
	hi := affine.At(coord(2))

	assert.True(t, affine.Less(lo, hi))
	assert.False(t, affine.Less(hi, lo))
	assert.Equal(t, -1, affine.Compare(lo, hi))
	assert.Equal(t, +1, affine.Compare(hi, lo))
	assert.Equal(t, 0, affine.Compare(lo, lo))
	assert.True(t, affine.LessVec(affine.Vec(coord(-1)), affine.Vec(coord(0))))
}

// TestUnit verifies the domain unit displacement helper.
func TestUnit(t *testing.T) {
	assert.Equal(t, affine.Vec(coord(1)), affine.Unit[coord]())
}
