// SPDX-License-Identifier: MIT

package unit

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/united/dimension"
)

var (
	_ msgpack.CustomEncoder = Unit{}
	_ msgpack.CustomDecoder = (*Unit)(nil)
)

// EncodeMsgpack writes u as a two-element array: the numerator symbols and
// the denominator symbols. Only the reduced shape is stored; rendering
// options are not.
func (u Unit) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := encodeSymbols(enc, u.num); err != nil {
		return err
	}

	return encodeSymbols(enc, u.den)
}

// DecodeMsgpack reads the layout written by EncodeMsgpack. Every symbol
// must be a base dimension. The shape is reduced again and rendered with
// the default options.
func (u *Unit) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}
	if n != 2 {
		return fmt.Errorf("%w: want 2 sides, got %d", ErrMalformedEncoding, n)
	}
	num, err := decodeSymbols(dec)
	if err != nil {
		return err
	}
	den, err := decodeSymbols(dec)
	if err != nil {
		return err
	}
	num, den = reduce(num, den)
	*u = build(num, den, gatherOptions())

	return nil
}

func encodeSymbols(enc *msgpack.Encoder, xs []dimension.Symbol) error {
	if err := enc.EncodeArrayLen(len(xs)); err != nil {
		return err
	}
	for _, s := range xs {
		if err := enc.EncodeString(string(s)); err != nil {
			return err
		}
	}

	return nil
}

func decodeSymbols(dec *msgpack.Decoder) ([]dimension.Symbol, error) {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}
	if n < 0 {
		return nil, nil
	}
	out := make([]dimension.Symbol, 0, n)
	for i := 0; i < n; i++ {
		s, err := dec.DecodeString()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
		}
		if !dimension.IsBase(dimension.Symbol(s)) {
			return nil, fmt.Errorf("unit: decode: %w: %q", ErrUnknownSymbol, s)
		}
		out = append(out, dimension.Symbol(s))
	}

	return out, nil
}
