// Package fixedint implements ApInt-style arbitrary-precision fixed-width
// integers: a value type representing an N-bit integer where N is chosen at
// construction and stays fixed for the value's lifetime. Arithmetic
// truncates to that width with two's-complement wraparound semantics, and
// binary operations require both operands to share a width. Signedness is
// a property of the operation invoked (checked{U,S}div etc.), never of the
// value itself.
package fixedint

import (
	"github.com/segmentio/fixedint/bitwidth"
	"github.com/segmentio/fixedint/internal/digit"
)

// Int is a fixed-width integer. The zero value is not meaningful on its
// own — every Int must be produced through one of the constructors in
// construct.go or through FromStringRadix (see serialization.go), since its
// storage layout depends entirely on its width.
//
// Storage is a discriminated union keyed by width.Storage() (§9 of the
// design notes): when the width fits in a single digit.Digit, inline holds
// the value and ext is nil; otherwise ext holds required_digits(width)
// digits, little-endian, and inline is unused. The width itself is the
// discriminator — no separate tag field is needed, matching the
// "discriminated storage" approach outlined in the design notes, and
// directly analogous to segmentio/go-hll's storage interface dispatch in
// its Hll type (storage chosen by settings, not by a redundant tag).
type Int struct {
	width  bitwidth.BitWidth
	inline digit.Digit
	ext    []digit.Digit
}

// Width returns the bit width of a.
func (a Int) Width() bitwidth.BitWidth {
	return a.width
}

// IsZero reports whether a represents the value 0.
func (a Int) IsZero() bool {
	if a.width.Storage() == bitwidth.Inline {
		return a.inline.IsZero()
	}
	for _, d := range a.ext {
		if !d.IsZero() {
			return false
		}
	}
	return true
}

// Equal reports whether a and b have the same width and the same digit
// sequence (§3 invariant 4: equality is structural).
func (a Int) Equal(b Int) bool {
	if a.width.Value() != b.width.Value() {
		return false
	}
	if a.width.Storage() == bitwidth.Inline {
		return a.inline == b.inline
	}
	for i := range a.ext {
		if a.ext[i] != b.ext[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of a; external storage gets its own backing
// array so mutating the clone never affects a.
func (a Int) Clone() Int {
	if a.width.Storage() == bitwidth.Inline {
		return a
	}
	ext := make([]digit.Digit, len(a.ext))
	copy(ext, a.ext)
	return Int{width: a.width, ext: ext}
}

// asDigitSlice returns a read-only view of a's digits, little-endian. This
// is the leaf accessor serialization.go's formatters consume. IsZero,
// Equal, Clone and bitAt do not use it and branch on the storage kind
// directly.
func (a Int) asDigitSlice() []digit.Digit {
	if a.width.Storage() == bitwidth.Inline {
		return []digit.Digit{a.inline}
	}
	return a.ext
}

// signBit reports whether a's most significant (sign) bit, at position
// width-1, is set.
func (a Int) signBit() bool {
	pos := a.width.Value() - 1
	set, _ := a.bitAt(pos)
	return set
}

// bitAt reads the bit at an already-validated position without going
// through the public Bit() bounds check — used internally by signBit and
// by the shift/arithmetic layers.
func (a Int) bitAt(pos uint) (bool, error) {
	digitIdx := pos / digit.Bits
	bitIdx := pos % digit.Bits
	var d digit.Digit
	if a.width.Storage() == bitwidth.Inline {
		d = a.inline
	} else {
		d = a.ext[digitIdx]
	}
	return d.Get(bitIdx)
}
