// Package dimension defines the shape vocabulary of the united module:
// the seven SI base dimensions, the table of named derived units, and the
// conversion rules that map multisets of base dimensions to a named symbol.
//
// 🚀 What is a conversion rule?
//
//	A rule is a fraction pattern (numerators / denominators) plus the named
//	symbol it stands for. For example Volt is
//
//	    m·m·kg / (s·s·s·A)  →  V
//
//	Rules are used in two directions:
//	  • resolution: a symbol is expanded into base dimensions (Resolve);
//	  • rendering: base dimensions are folded back into symbols by the
//	    unit package, in the order given by a Profile.
//
// ✨ Key features:
//   - fixed, read-only standard table (19 named units, 15 rules)
//   - three built-in priority profiles: default, electric, mechanic
//   - custom profiles by index (NewProfile) or by injected rules (NewCustomProfile)
//   - YAML profile files (ParseProfiles / LoadProfiles)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/united/dimension"
//
//	num, den, err := dimension.Resolve("V")
//	// num = [m m kg], den = [s s s A]
//
//	p, err := dimension.ProfileByName(dimension.ProfileElectric)
//
// Resolution only uses base-level rules (patterns made of base dimensions),
// the first match in table order wins. Rules built on other named units are
// reserved for rendering.
package dimension
