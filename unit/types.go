package unit

import "github.com/katalvlaran/united/dimension"

// Unit is an immutable unit shape: reduced multisets of base dimensions in
// the numerator and the denominator. No element appears on both sides.
//
// The zero value is the dimensionless unit rendered with the default options.
type Unit struct {
	num  []dimension.Symbol
	den  []dimension.Symbol
	opts *Options
	repr string // cached display string
}
