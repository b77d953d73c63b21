// SPDX-License-Identifier: MIT

package dimension

import (
	"fmt"
	"sort"
)

// Names of the built-in profiles.
const (
	ProfileDefault  = "default"
	ProfileElectric = "electric"
	ProfileMechanic = "mechanic"
)

// builtinOrders holds the rule order of each built-in profile as indices
// into standardRules.
var builtinOrders = map[string][]int{
	ProfileDefault:  {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14},
	ProfileElectric: {0, 1, 2, 3, 4, 6, 9, 14, 11, 12, 5, 7, 8, 10, 13},
	ProfileMechanic: {8, 10, 7, 13, 5, 0, 1, 2, 3, 4, 6, 9, 11, 12, 14},
}

// Profile is a named, ordered list of rules. The renderer tries rules in
// this order and restarts from the top after every successful rewrite, so
// the order decides which named form wins.
//
// A Profile is immutable once built; the zero value has no rules and
// renders every unit in plain base dimensions.
type Profile struct {
	name  string
	rules []Rule
}

// Name returns the profile name.
func (p Profile) Name() string { return p.name }

// Len returns the number of rules in the profile.
func (p Profile) Len() int { return len(p.rules) }

// Rules returns a deep copy of the rules in priority order.
func (p Profile) Rules() []Rule {
	out := make([]Rule, len(p.rules))
	for i, r := range p.rules {
		out[i] = r.clone()
	}

	return out
}

// Rule returns the i-th rule without copying its patterns. Callers must
// treat the result as read-only. Panics if i is out of range.
func (p Profile) Rule(i int) Rule { return p.rules[i] }

// NewProfile builds a profile from indices into the standard table.
// The order may be a permutation or a subset.
//
// Errors:
//   - ErrEmptyProfileName if name is empty.
//   - ErrRuleIndex if an index is outside [0, len(Rules())).
//   - ErrDuplicateRule if an index repeats.
func NewProfile(name string, order ...int) (Profile, error) {
	if name == "" {
		return Profile{}, ErrEmptyProfileName
	}
	seen := make(map[int]bool, len(order))
	rules := make([]Rule, 0, len(order))
	for _, idx := range order {
		if idx < 0 || idx >= len(standardRules) {
			return Profile{}, fmt.Errorf("%w: %d", ErrRuleIndex, idx)
		}
		if seen[idx] {
			return Profile{}, fmt.Errorf("%w: %d", ErrDuplicateRule, idx)
		}
		seen[idx] = true
		rules = append(rules, standardRules[idx].clone())
	}

	return Profile{name: name, rules: rules}, nil
}

// NewCustomProfile builds a profile from caller-supplied rules, used as-is
// in the given order. Every rule must pass Rule.Validate.
func NewCustomProfile(name string, rules ...Rule) (Profile, error) {
	if name == "" {
		return Profile{}, ErrEmptyProfileName
	}
	out := make([]Rule, len(rules))
	for i, r := range rules {
		if err := r.Validate(); err != nil {
			return Profile{}, fmt.Errorf("rule %d (%s): %w", i, r.Result, err)
		}
		out[i] = r.clone()
	}

	return Profile{name: name, rules: out}, nil
}

// mustBuiltin builds a built-in profile; the orders are static so failure
// is a programming error.
func mustBuiltin(name string) Profile {
	p, err := NewProfile(name, builtinOrders[name]...)
	if err != nil {
		panic(err)
	}

	return p
}

// DefaultProfile applies the standard table in index order.
func DefaultProfile() Profile { return mustBuiltin(ProfileDefault) }

// ElectricProfile prefers electrical units (Ω V F S H Wb T C) over
// power, energy and mechanical units.
func ElectricProfile() Profile { return mustBuiltin(ProfileElectric) }

// MechanicProfile tries force, pressure, energy and power before the
// electrical units.
func MechanicProfile() Profile { return mustBuiltin(ProfileMechanic) }

// ProfileByName returns the built-in profile called name.
func ProfileByName(name string) (Profile, error) {
	if _, ok := builtinOrders[name]; !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}

	return mustBuiltin(name), nil
}

// ProfileNames lists the built-in profile names in sorted order.
func ProfileNames() []string {
	names := make([]string, 0, len(builtinOrders))
	for n := range builtinOrders {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}
