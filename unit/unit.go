package unit

import (
	"fmt"

	"github.com/katalvlaran/united/dimension"
)

// New builds a Unit from numerator and denominator symbols.
//
// Each symbol may be a base dimension ("s", "kg", ...) or a named unit of
// the standard table ("V", "Ω", "O", ...). Derived units are expanded into
// base dimensions; a derived unit in the denominator contributes its
// reciprocal. The result is reduced and its display string is rendered.
//
// Errors:
//   - ErrUnknownSymbol (wrapped with the position and symbol) for any
//     symbol that cannot be resolved. Nothing is dropped silently.
//
// Complexity: O(K·R) resolution for K symbols and R rules, plus rendering.
func New(numerators, denominators []string, opts ...Option) (Unit, error) {
	var num, den []dimension.Symbol
	for _, s := range numerators {
		n, d, err := dimension.Resolve(s)
		if err != nil {
			return Unit{}, fmt.Errorf("unit: numerator: %w", err)
		}
		num = append(num, n...)
		den = append(den, d...)
	}
	for _, s := range denominators {
		n, d, err := dimension.Resolve(s)
		if err != nil {
			return Unit{}, fmt.Errorf("unit: denominator: %w", err)
		}
		num = append(num, d...)
		den = append(den, n...)
	}
	num, den = reduce(num, den)

	return build(num, den, gatherOptions(opts...)), nil
}

// MustNew is like New but panics on error. Intended for literals.
func MustNew(numerators, denominators []string, opts ...Option) Unit {
	u, err := New(numerators, denominators, opts...)
	if err != nil {
		panic(err)
	}

	return u
}

// One returns the dimensionless identity unit, rendered "1".
func One(opts ...Option) Unit {
	return build(nil, nil, gatherOptions(opts...))
}

// build wraps already reduced base multisets and renders them.
func build(num, den []dimension.Symbol, o *Options) Unit {
	return Unit{
		num:  num,
		den:  den,
		opts: o,
		repr: render(num, den, o),
	}
}

// options returns the options captured at construction, or fresh defaults
// for the zero value.
func (u Unit) options() *Options {
	if u.opts != nil {
		return u.opts
	}

	return gatherOptions()
}

// Numerators returns a copy of the reduced numerator multiset.
func (u Unit) Numerators() []dimension.Symbol {
	return append([]dimension.Symbol(nil), u.num...)
}

// Denominators returns a copy of the reduced denominator multiset.
func (u Unit) Denominators() []dimension.Symbol {
	return append([]dimension.Symbol(nil), u.den...)
}

// String returns the cached display string.
func (u Unit) String() string {
	if u.repr == "" {
		return render(u.num, u.den, u.options())
	}

	return u.repr
}

// Render renders u again with opts applied on top of the options u was
// built with. u itself is not changed.
func (u Unit) Render(opts ...Option) string {
	o := *u.options()
	for _, opt := range opts {
		opt(&o)
	}

	return render(u.num, u.den, &o)
}

// IsIdentity reports whether u is dimensionless.
func (u Unit) IsIdentity() bool {
	return len(u.num) == 0 && len(u.den) == 0
}

// Quantity returns the name of the quantity u measures, based on its
// reduced shape only, so every profile gives the same answer. A single base
// dimension over nothing yields that dimension's name; a shape equal to a
// base-level rule of the standard table yields the name of the rule's unit.
// Anything else yields dimension.UnknownQuantity.
func (u Unit) Quantity() string {
	if len(u.num) == 1 && len(u.den) == 0 {
		return dimension.QuantityOf(u.num[0])
	}
	for _, r := range dimension.Rules() {
		if r.IsBaseLevel() && sameMultiset(u.num, r.Numerators) && sameMultiset(u.den, r.Denominators) {
			return dimension.QuantityOf(r.Result)
		}
	}

	return dimension.UnknownQuantity
}
