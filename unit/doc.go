// Package unit implements the unit algebra engine: a Unit value holding the
// reduced numerator and denominator multisets of SI base dimensions, the
// operators that combine units, and the renderer that folds base dimensions
// back into named symbols.
//
// 🚀 How a unit is built
//
//  1. Every numerator symbol is resolved through dimension.Resolve. A base
//     dimension is kept as is; a derived unit contributes its own numerator
//     pattern to the numerators and its denominator pattern to the denominators.
//  2. Denominator symbols are resolved the same way with the roles swapped
//     (dividing by V multiplies by s·s·s·A / m·m·kg).
//  3. Common elements are cancelled one-for-one (multiset reduction).
//  4. The display string is rendered once and cached.
//
// 🔁 Rendering
//
//	The renderer walks the rules of the active dimension.Profile in order.
//	The first rule whose pattern is a sub-multiset of the working fraction
//	(forward, or swapped when the rule is reciprocal) is applied: the pattern
//	is removed and the rule's symbol is added on the matching side. The scan
//	then restarts from the first rule, until a full pass applies nothing.
//
//	Each rewrite consumes at least two symbols and inserts one, so the loop
//	always terminates. The result is greedy, not minimal: the same unit can
//	render differently under different profiles.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/united/unit"
//
//	w, _ := unit.New([]string{"V", "A"}, nil)
//	fmt.Println(w)                   // W
//	r, _ := unit.New([]string{"V"}, []string{"A"}, unit.WithShortSymbols())
//	fmt.Println(r)                   // O
//	fmt.Println(w.Div(r).Quantity()) // Unknown
//
// Units are immutable values and safe for concurrent use. The profile is
// captured when a unit is built (WithProfile, or the process-wide default
// set by SetDefaultProfile); results of Mul, Div and friends keep the
// receiver's options.
package unit
