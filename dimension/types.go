package dimension

// Symbol is the textual identity of a base dimension or a named unit.
// Two symbols are the same unit iff the strings are equal.
type Symbol string

// The seven SI base dimensions. They are the only symbols a reduced unit
// is ever stored in.
const (
	Second   Symbol = "s"   // time
	Kilogram Symbol = "kg"  // mass
	Ampere   Symbol = "A"   // electric current
	Metre    Symbol = "m"   // length
	Kelvin   Symbol = "K"   // temperature
	Mole     Symbol = "mol" // amount of substance
	Candela  Symbol = "cd"  // luminous intensity
)

// NamedUnit describes a unit known to the table.
//
// Symbol is the display form used by the renderer. Short is an optional
// ASCII spelling (e.g. "O" for "Ω") that Resolve and Lookup accept as an
// alias. Quantity is the human-readable name of what the unit measures.
type NamedUnit struct {
	Symbol   Symbol
	Short    Symbol
	Quantity string
}

// Display returns Short when short is true and the unit has one, else Symbol.
func (u NamedUnit) Display(short bool) Symbol {
	if short && u.Short != "" {
		return u.Short
	}

	return u.Symbol
}

// Rule maps a fraction of symbols to a single named symbol.
//
// Numerators and Denominators are multisets: multiplicity matters, order
// does not. When Reciprocal is true the renderer may also apply the rule
// with the pattern roles swapped, producing Result in the denominator.
type Rule struct {
	Numerators   []Symbol
	Denominators []Symbol
	Result       Symbol
	Reciprocal   bool
}

// Size returns the total number of symbols consumed by one application of r.
func (r Rule) Size() int {
	return len(r.Numerators) + len(r.Denominators)
}

// IsBaseLevel reports whether both patterns consist of base dimensions only.
func (r Rule) IsBaseLevel() bool {
	for _, s := range r.Numerators {
		if !IsBase(s) {
			return false
		}
	}
	for _, s := range r.Denominators {
		if !IsBase(s) {
			return false
		}
	}

	return true
}

// Validate checks that r can take part in rendering.
// Returns ErrEmptySymbol or ErrDegenerateRule.
//
// Rules must consume at least two symbols, so single-symbol definitions
// such as Hz = 1/s cannot be expressed; a rewrite that consumes one symbol
// and inserts one would never shrink the fraction.
func (r Rule) Validate() error {
	if r.Result == "" {
		return ErrEmptySymbol
	}
	for _, s := range r.Numerators {
		if s == "" {
			return ErrEmptySymbol
		}
	}
	for _, s := range r.Denominators {
		if s == "" {
			return ErrEmptySymbol
		}
	}
	// every rewrite inserts one symbol, so it must consume at least two
	if r.Size() < 2 {
		return ErrDegenerateRule
	}

	return nil
}

// clone returns a deep copy of r.
func (r Rule) clone() Rule {
	return Rule{
		Numerators:   append([]Symbol(nil), r.Numerators...),
		Denominators: append([]Symbol(nil), r.Denominators...),
		Result:       r.Result,
		Reciprocal:   r.Reciprocal,
	}
}
