package unit

import (
	"strings"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/united/dimension"
)

// render rewrites num/den under o's profile and formats the result.
func render(num, den []dimension.Symbol, o *Options) string {
	num, den = rewrite(num, den, o.profile, o.logger)

	return format(num, den, o.short)
}

// rewrite applies the profile's rules greedily until a fixed point.
//
// On every pass the rules are tried in priority order. A rule fires forward
// when its numerator pattern is a sub-multiset of num and its denominator
// pattern a sub-multiset of den; the patterns are removed and the result is
// appended to num. A reciprocal rule may instead fire with the roles swapped,
// appending the result to den. The first firing ends the pass and the next
// pass starts again from the highest priority rule.
//
// Inputs are not modified.
func rewrite(num, den []dimension.Symbol, p dimension.Profile, log logr.Logger) ([]dimension.Symbol, []dimension.Symbol) {
	num = append([]dimension.Symbol(nil), num...)
	den = append([]dimension.Symbol(nil), den...)

	for pass := 1; ; pass++ {
		fired := false
		for i := 0; i < p.Len(); i++ {
			r := p.Rule(i)
			if containsAll(num, r.Numerators) && containsAll(den, r.Denominators) {
				num = append(removeAll(num, r.Numerators), r.Result)
				den = removeAll(den, r.Denominators)
				log.V(1).Info("rewrite", "profile", p.Name(), "rule", i, "result", string(r.Result), "side", "numerator")
				fired = true

				break
			}
			if r.Reciprocal && containsAll(num, r.Denominators) && containsAll(den, r.Numerators) {
				num = removeAll(num, r.Denominators)
				den = append(removeAll(den, r.Numerators), r.Result)
				log.V(1).Info("rewrite", "profile", p.Name(), "rule", i, "result", string(r.Result), "side", "denominator")
				fired = true

				break
			}
		}
		if !fired {
			log.V(1).Info("fixed point", "profile", p.Name(), "passes", pass)

			return num, den
		}
	}
}

// format joins the symbols of each side with "*".
//
//	{} / {}        → 1
//	a·b / {}       → a*b
//	{} / a         → 1/a
//	{} / a·b       → 1/(a*b)
//	a·b / c        → (a*b)/c
//
// A side is parenthesised only when it has more than one factor.
func format(num, den []dimension.Symbol, short bool) string {
	switch {
	case len(num) == 0 && len(den) == 0:
		return "1"
	case len(den) == 0:
		return join(num, short)
	case len(num) == 0:
		return "1/" + group(den, short)
	default:
		return group(num, short) + "/" + group(den, short)
	}
}

func group(xs []dimension.Symbol, short bool) string {
	if len(xs) > 1 {
		return "(" + join(xs, short) + ")"
	}

	return join(xs, short)
}

func join(xs []dimension.Symbol, short bool) string {
	parts := make([]string, len(xs))
	for i, s := range xs {
		parts[i] = string(display(s, short))
	}

	return strings.Join(parts, "*")
}

// display maps s to its short spelling when requested and available.
func display(s dimension.Symbol, short bool) dimension.Symbol {
	if !short {
		return s
	}
	if u, ok := dimension.Lookup(s); ok {
		return u.Display(true)
	}

	return s
}
