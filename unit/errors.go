// SPDX-License-Identifier: MIT

package unit

import (
	"errors"

	"github.com/katalvlaran/united/dimension"
)

var (
	// ErrUnknownSymbol is returned by New when an input symbol is neither a
	// base dimension nor a known derived unit. It aliases the dimension
	// sentinel so errors.Is matches either name.
	ErrUnknownSymbol = dimension.ErrUnknownSymbol

	// ErrIncompatibleUnits is returned by Add and Sub when the operands
	// have different shapes.
	ErrIncompatibleUnits = errors.New("unit: incompatible units")

	// ErrMalformedEncoding is returned when decoding a Unit from msgpack
	// input that does not have the expected layout.
	ErrMalformedEncoding = errors.New("unit: malformed encoding")
)
