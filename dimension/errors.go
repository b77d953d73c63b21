// SPDX-License-Identifier: MIT

package dimension

import "errors"

// Every message is prefixed with "dimension: ". Callers match with errors.Is;
// functions that add context wrap with fmt.Errorf("...: %w", ErrX).
var (
	// ErrUnknownSymbol indicates a symbol is neither a base dimension nor
	// the result of any base-level rule.
	ErrUnknownSymbol = errors.New("dimension: unknown unit symbol")

	// ErrUnknownProfile indicates a profile name that is not registered.
	ErrUnknownProfile = errors.New("dimension: unknown priority profile")

	// ErrEmptyProfileName indicates a profile was created without a name.
	ErrEmptyProfileName = errors.New("dimension: profile name is empty")

	// ErrRuleIndex indicates a profile order references a rule outside the standard table.
	ErrRuleIndex = errors.New("dimension: rule index out of range")

	// ErrDuplicateRule indicates a profile order lists the same rule twice.
	ErrDuplicateRule = errors.New("dimension: rule listed twice in profile")

	// ErrDegenerateRule indicates a rule whose patterns hold fewer than two
	// symbols in total. Such a rule would not shrink the multisets it rewrites.
	ErrDegenerateRule = errors.New("dimension: rule pattern must hold at least two symbols")

	// ErrEmptySymbol indicates an empty string was used as a rule symbol.
	ErrEmptySymbol = errors.New("dimension: empty symbol in rule")

	// ErrInvalidProfile indicates a malformed profile configuration document.
	ErrInvalidProfile = errors.New("dimension: invalid profile configuration")
)
