package dimension

import "fmt"

// UnknownQuantity is returned by QuantityOf for symbols without a catalogue entry.
const UnknownQuantity = "Unknown"

// IsBase reports whether s is one of the seven SI base dimensions.
func IsBase(s Symbol) bool {
	for _, b := range baseDimensions {
		if b == s {
			return true
		}
	}

	return false
}

// Lookup finds a catalogue entry by its symbol or its short symbol.
func Lookup(s Symbol) (NamedUnit, bool) {
	for _, u := range namedUnits {
		if u.Symbol == s || (u.Short != "" && u.Short == s) {
			return u, true
		}
	}

	return NamedUnit{}, false
}

// QuantityOf returns the quantity name of s, or UnknownQuantity.
func QuantityOf(s Symbol) string {
	if u, ok := Lookup(s); ok {
		return u.Quantity
	}

	return UnknownQuantity
}

// Resolve expands symbol into base dimensions.
//
// A base dimension resolves to itself: ({symbol}, {}). Any other symbol
// (or short alias) is looked up among the base-level rules of the standard
// table and the first match in table order is returned. The returned slices
// are fresh copies.
//
// Errors:
//   - ErrUnknownSymbol (wrapped with the symbol) when nothing matches.
//
// Complexity: O(R·P) for R rules of pattern size P.
func Resolve(symbol string) (numerators, denominators []Symbol, err error) {
	s := Symbol(symbol)
	if IsBase(s) {
		return []Symbol{s}, nil, nil
	}
	if u, ok := Lookup(s); ok {
		s = u.Symbol
	}
	for _, r := range standardRules {
		if r.Result != s || !r.IsBaseLevel() {
			continue
		}

		return append([]Symbol(nil), r.Numerators...), append([]Symbol(nil), r.Denominators...), nil
	}

	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
}
