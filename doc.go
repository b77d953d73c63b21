// Package united is a symbolic unit algebra: it tracks the shape of
// physical units (which SI base dimensions appear, how often, above or
// below the fraction bar) and renders a composed unit back into its most
// idiomatic named form.
//
// 🚀 What is united?
//
//	A small, pure-Go, allocation-light library that brings together:
//		• the 7 SI base dimensions and a table of named derived units
//		• a Unit value type with ·, /, ^n, ==, and shape-checked +/−
//		• a greedy, priority-ordered rewrite renderer (V·A → W, V/A → Ω)
//		• swappable priority profiles: default, electric, mechanic, custom
//
// ✨ What it is not
//
//   - No magnitudes: "5 m + 3 m" is out of scope, only the shape m is tracked.
//   - No affine conversions (°C ↔ K) and no unit-string parsing beyond
//     exact symbols.
//
// Under the hood the module is organized in two packages:
//
//	dimension/  base dimensions, named units, conversion rules, priority profiles
//	unit/       the Unit type, its operators and the renderer
//
// Quick example:
//
//	w := unit.MustNew([]string{"V", "A"}, nil)     // W
//	r := unit.MustNew([]string{"V"}, []string{"A"}) // Ω
//	fmt.Println(w.Div(r))                           // A*A
//
//	go get github.com/katalvlaran/united
package united
