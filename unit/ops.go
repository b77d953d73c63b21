package unit

import (
	"fmt"

	"github.com/katalvlaran/united/dimension"
)

// Mul returns u·v. The result keeps u's rendering options.
// Commutative and associative on the reduced multisets.
func (u Unit) Mul(v Unit) Unit {
	num, den := product(u.num, u.den, v.num, v.den)

	return build(num, den, u.options())
}

// Div returns u/v, i.e. u·Reciprocal(v).
func (u Unit) Div(v Unit) Unit {
	num, den := product(u.num, u.den, v.den, v.num)

	return build(num, den, u.options())
}

// FloorDiv is identical to Div; units carry no magnitude to floor.
func (u Unit) FloorDiv(v Unit) Unit { return u.Div(v) }

// Reciprocal returns 1/u.
func (u Unit) Reciprocal() Unit {
	return build(u.Denominators(), u.Numerators(), u.options())
}

// Pow returns u multiplied with itself |n| times, inverted when n < 0.
// Pow(0) is the identity unit.
func (u Unit) Pow(n int) Unit {
	k := n
	if k < 0 {
		k = -k
	}
	var num, den []dimension.Symbol
	for i := 0; i < k; i++ {
		num, den = product(num, den, u.num, u.den)
	}
	if n < 0 {
		num, den = den, num
	}

	return build(num, den, u.options())
}

// Equal reports whether u and v have the same numerator and denominator
// multisets. Rendering options are ignored.
func (u Unit) Equal(v Unit) bool {
	return sameMultiset(u.num, v.num) && sameMultiset(u.den, v.den)
}

// Add checks that u and v have the same shape and returns u.
// Units have no magnitude, so the sum of two equal shapes is that shape.
//
// Errors:
//   - ErrIncompatibleUnits when !u.Equal(v).
func (u Unit) Add(v Unit) (Unit, error) {
	if !u.Equal(v) {
		return Unit{}, fmt.Errorf("%w: %s + %s", ErrIncompatibleUnits, u, v)
	}

	return u, nil
}

// Sub behaves exactly like Add: the shapes must match and u is returned.
func (u Unit) Sub(v Unit) (Unit, error) {
	if !u.Equal(v) {
		return Unit{}, fmt.Errorf("%w: %s - %s", ErrIncompatibleUnits, u, v)
	}

	return u, nil
}
