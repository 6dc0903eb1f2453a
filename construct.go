package fixedint

import (
	"github.com/segmentio/fixedint/bitwidth"
	"github.com/segmentio/fixedint/internal/digit"
)

// Zero returns the value 0 at width w.
func Zero(w bitwidth.BitWidth) Int {
	if w.Storage() == bitwidth.Inline {
		return Int{width: w}
	}
	return Int{width: w, ext: allocDigits(w)}
}

// One returns the value 1 at width w.
func One(w bitwidth.BitWidth) Int {
	a := Zero(w)
	if w.Storage() == bitwidth.Inline {
		a.inline = digit.One
	} else {
		a.ext[0] = digit.One
	}
	return a
}

// AllSet returns the value with every bit set at width w (i.e. -1 under a
// signed interpretation, or 2^w - 1 under an unsigned one).
func AllSet(w bitwidth.BitWidth) Int {
	a := Zero(w)
	if w.Storage() == bitwidth.Inline {
		a.inline = digit.AllSet
	} else {
		for i := range a.ext {
			a.ext[i] = digit.AllSet
		}
	}
	a.clearUnusedBits()
	return a
}

// SignedMin returns the bit pattern 100...0: the smallest value under a
// signed interpretation at width w.
func SignedMin(w bitwidth.BitWidth) Int {
	a := Zero(w)
	_ = a.setBitMut(w.Value() - 1)
	return a
}

// SignedMax returns the bit pattern 011...1: the largest value under a
// signed interpretation at width w.
func SignedMax(w bitwidth.BitWidth) Int {
	a := AllSet(w)
	_ = a.unsetBitMut(w.Value() - 1)
	return a
}

// fromUint64 sign-agnostically builds a value of width bits holding v,
// zero-extended. It is the shared kernel behind FromU8..FromU64.
func fromUint64(width uint, v uint64) Int {
	w := bitwidth.MustNew(width)
	a := Zero(w)
	if w.Storage() == bitwidth.Inline {
		a.inline = digit.Digit(v)
	} else {
		a.ext[0] = digit.Digit(v)
	}
	a.clearUnusedBits()
	return a
}

// FromU8 returns an 8-bit value holding v.
func FromU8(v uint8) Int { return fromUint64(8, uint64(v)) }

// FromU16 returns a 16-bit value holding v.
func FromU16(v uint16) Int { return fromUint64(16, uint64(v)) }

// FromU32 returns a 32-bit value holding v.
func FromU32(v uint32) Int { return fromUint64(32, uint64(v)) }

// FromU64 returns a 64-bit value holding v.
func FromU64(v uint64) Int { return fromUint64(64, v) }

// FromU128 returns a 128-bit value holding the unsigned integer hi<<64 |
// lo. Go has no native 128-bit integer type, so the value is supplied as
// its two 64-bit halves, little-endian order matching the digit layout
// (lo is digit 0, hi is digit 1).
func FromU128(hi, lo uint64) Int {
	w := bitwidth.MustNew(128)
	return Int{width: w, ext: []digit.Digit{digit.Digit(lo), digit.Digit(hi)}}
}

// fromInt64 builds a width-bit value holding v, sign-extended into the
// two's-complement bit pattern. It is the shared kernel behind
// FromI8..FromI64.
func fromInt64(width uint, v int64) Int {
	return fromUint64(width, uint64(v))
}

// FromI8 returns an 8-bit value holding the two's-complement pattern of v.
func FromI8(v int8) Int { return fromInt64(8, int64(v)) }

// FromI16 returns a 16-bit value holding the two's-complement pattern of v.
func FromI16(v int16) Int { return fromInt64(16, int64(v)) }

// FromI32 returns a 32-bit value holding the two's-complement pattern of v.
func FromI32(v int32) Int { return fromInt64(32, int64(v)) }

// FromI64 returns a 64-bit value holding the two's-complement pattern of v.
func FromI64(v int64) Int { return fromInt64(64, v) }

// FromI128 returns a 128-bit value holding the two's-complement pattern of
// the signed integer described by hi (which carries the sign) and the
// unsigned low half lo.
func FromI128(hi int64, lo uint64) Int {
	w := bitwidth.MustNew(128)
	return Int{width: w, ext: []digit.Digit{digit.Digit(lo), digit.Digit(uint64(hi))}}
}
