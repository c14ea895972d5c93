package pitch

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/tonal/affine"
)

// Convert runs the registered pipeline from the dynamic type of `from` to
// To and returns the result. Every step's output feeds the next step; the
// final value must be a To (ErrConversion otherwise). ErrNoConverter is
// returned when no pipeline is registered for the pair.
func Convert[To any](r *Registry, from any) (To, error) {
	var zero To

	pipe, err := r.Get(reflect.TypeOf(from), reflect.TypeFor[To]())
	if err != nil {
		return zero, err
	}

	cur := from
	for _, step := range pipe {
		if cur, err = step(cur); err != nil {
			return zero, err
		}
	}

	out, ok := cur.(To)
	if !ok {
		return zero, fmt.Errorf("%w: pipeline produced %T, want %v",
			ErrConversion, cur, reflect.TypeFor[To]())
	}

	return out, nil
}

// ConvertInterval converts an interval between domains. A direct
// Vector[DF]→Vector[DT] pipeline wins when registered; otherwise the
// interval is routed through the corresponding pitch conversion:
//
//	naive = convert(iv as pitch) as interval
//
// The pitch↔interval correspondence is defined relative to each domain's
// own origin, so when the two origins differ the naive result is off by
// their difference. The correction is the image of DF's origin in DT,
// measured against DT's own origin:
//
//	result = naive + (originDT − convert(originDF))
//
// Instantiate DT explicitly; DF is inferred from the argument:
//
//	pitch.ConvertInterval[logfreq.LogHz](reg, iv)
func ConvertInterval[DT affine.Value[DT], DF affine.Value[DF]](r *Registry, iv affine.Vector[DF]) (affine.Vector[DT], error) {
	if r.has(reflect.TypeFor[affine.Vector[DF]](), reflect.TypeFor[affine.Vector[DT]]()) {
		return Convert[affine.Vector[DT]](r, iv)
	}

	naive, err := Convert[affine.Point[DT]](r, iv.ToPoint())
	if err != nil {
		return affine.Vector[DT]{}, err
	}

	// Image of the source origin (the zero displacement as a point).
	originFrom, err := Convert[affine.Point[DT]](r, iv.Sub(iv).ToPoint())
	if err != nil {
		return affine.Vector[DT]{}, err
	}
	var originTo affine.Point[DT]

	return naive.ToVector().Add(originTo.Diff(originFrom)), nil
}

// ConvertClass converts a pitch class between domains. A direct
// Class[DF]→Class[DT] pipeline wins when registered; otherwise the
// canonical representative pitch is converted and renormalized in the
// target domain. Class-ness is preserved structurally: the result is
// always a Class.
//
// Instantiate DT explicitly; DF is inferred from the argument.
func ConvertClass[DT ClassValue[DT], DF ClassValue[DF]](r *Registry, c Class[DF]) (Class[DT], error) {
	if r.has(reflect.TypeFor[Class[DF]](), reflect.TypeFor[Class[DT]]()) {
		return Convert[Class[DT]](r, c)
	}

	p, err := Convert[affine.Point[DT]](r, c.Pitch())
	if err != nil {
		return Class[DT]{}, err
	}

	return ToClass(p), nil
}

// ConvertIClass converts an interval class between domains via
// ConvertInterval on its centered representative, renormalized in the
// target domain.
//
// Instantiate DT explicitly; DF is inferred from the argument.
func ConvertIClass[DT ClassValue[DT], DF ClassValue[DF]](r *Registry, i IClass[DF]) (IClass[DT], error) {
	if r.has(reflect.TypeFor[IClass[DF]](), reflect.TypeFor[IClass[DT]]()) {
		return Convert[IClass[DT]](r, i)
	}

	iv, err := ConvertInterval[DT](r, i.Interval())
	if err != nil {
		return IClass[DT]{}, err
	}

	return ToIClass(iv), nil
}
