package affine

import (
	"errors"
	"iter"
)

// ErrBadCount indicates Linspace was asked for fewer than one sample.
var ErrBadCount = errors.New("affine: linspace needs num >= 1")

// Linspace returns num evenly spaced points from start towards stop,
// together with the step between consecutive points.
//
// With endpoint=true the sequence ends exactly at stop and the step is
// (stop−start)/(num−1); with endpoint=false stop is excluded and the step
// is (stop−start)/num. num==1 with endpoint=true yields just start and a
// zero step.
//
// Complexity: O(num).
func Linspace[D Value[D]](start, stop Point[D], num int, endpoint bool) ([]Point[D], Vector[D], error) {
	if num < 1 {
		return nil, Vector[D]{}, ErrBadCount
	}

	div := num
	if endpoint {
		div = num - 1
	}

	var step Vector[D]
	if div > 0 {
		step = stop.Diff(start).Div(float64(div))
	}

	out := make([]Point[D], num)
	for n := range out {
		out[n] = start.Add(step.Scale(float64(n)))
	}

	return out, step, nil
}

// Range returns a lazy, restartable sequence of points walking from start
// by step until stop. A zero step defaults to the domain's unit
// displacement. The direction is inferred from the sign of step relative
// to the zero vector: an ascending walk stops once the running point
// passes stop, a descending walk once it falls below stop. stop itself is
// yielded only when endpoint is true.
//
// A step that never approaches stop (e.g. zero progress in a float domain)
// produces an endless sequence; guarding against that is the caller's
// responsibility.
//
// Complexity: O(1) per yielded point.
func Range[D Ordered[D]](start, stop Point[D], step Vector[D], endpoint bool) iter.Seq[Point[D]] {
	return func(yield func(Point[D]) bool) {
		st := step
		if st.IsZero() {
			st = Unit[D]()
		}
		var zero Vector[D]
		descending := LessVec(st, zero)

		for cur := start; ; cur = cur.Add(st) {
			if !endpoint && cur == stop {
				return
			}
			if descending && Less(cur, stop) {
				return
			}
			if !descending && Less(stop, cur) {
				return
			}
			if !yield(cur) {
				return
			}
		}
	}
}
