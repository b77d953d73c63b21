package unit

import "github.com/katalvlaran/united/dimension"

// Multisets are kept as slices: insertion order drives the rendered string,
// counts drive every comparison. Removal always takes the first occurrence.

func indexOf(xs []dimension.Symbol, s dimension.Symbol) int {
	for i, x := range xs {
		if x == s {
			return i
		}
	}

	return -1
}

func counts(xs []dimension.Symbol) map[dimension.Symbol]int {
	m := make(map[dimension.Symbol]int, len(xs))
	for _, x := range xs {
		m[x]++
	}

	return m
}

// containsAll reports whether pattern is a sub-multiset of xs.
func containsAll(xs, pattern []dimension.Symbol) bool {
	if len(pattern) == 0 {
		return true
	}
	if len(pattern) > len(xs) {
		return false
	}
	have := counts(xs)
	for s, n := range counts(pattern) {
		if have[s] < n {
			return false
		}
	}

	return true
}

// removeAll returns xs without one occurrence of each pattern element.
// The caller must have checked containsAll.
func removeAll(xs, pattern []dimension.Symbol) []dimension.Symbol {
	out := append([]dimension.Symbol(nil), xs...)
	for _, s := range pattern {
		if i := indexOf(out, s); i >= 0 {
			out = append(out[:i], out[i+1:]...)
		}
	}

	return out
}

// sameMultiset reports whether a and b hold the same elements with the
// same multiplicities.
func sameMultiset(a, b []dimension.Symbol) bool {
	if len(a) != len(b) {
		return false
	}
	ca := counts(a)
	for s, n := range counts(b) {
		if ca[s] != n {
			return false
		}
	}

	return true
}

// reduce cancels elements present on both sides one-for-one.
func reduce(num, den []dimension.Symbol) ([]dimension.Symbol, []dimension.Symbol) {
	outNum := make([]dimension.Symbol, 0, len(num))
	outDen := append([]dimension.Symbol(nil), den...)
	for _, s := range num {
		if i := indexOf(outDen, s); i >= 0 {
			outDen = append(outDen[:i], outDen[i+1:]...)
			continue
		}
		outNum = append(outNum, s)
	}

	return outNum, outDen
}

// product multiplies two reduced fractions: every incoming numerator
// cancels a denominator of a if one is present, and the other way round.
func product(aNum, aDen, bNum, bDen []dimension.Symbol) ([]dimension.Symbol, []dimension.Symbol) {
	num := append([]dimension.Symbol(nil), aNum...)
	den := append([]dimension.Symbol(nil), aDen...)
	for _, s := range bNum {
		if i := indexOf(den, s); i >= 0 {
			den = append(den[:i], den[i+1:]...)
		} else {
			num = append(num, s)
		}
	}
	for _, s := range bDen {
		if i := indexOf(num, s); i >= 0 {
			num = append(num[:i], num[i+1:]...)
		} else {
			den = append(den, s)
		}
	}

	return num, den
}
