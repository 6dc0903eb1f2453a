// Package radix implements Radix, the validated base used to convert
// between ApInt values and their string representations.
//
// Ported faithfully from the original Rust implementation's radix.rs: the
// supported range, the power-of-two fast path and the non-power-of-two
// chunked-base precomputation are all preserved.
package radix

import (
	"math/bits"

	"github.com/segmentio/fixedint/errs"
)

// Min and Max bound the supported radix range: binary up through full
// case-insensitive alphanumerics.
const (
	Min uint8 = 2
	Max uint8 = 36
)

// Radix is a validated base in [Min, Max] used for string <-> ApInt
// conversion.
type Radix struct {
	r uint8
}

// New validates r and returns a Radix wrapping it.
func New(r uint8) (Radix, error) {
	if r < Min || r > Max {
		return Radix{}, errs.NewInvalidRadix(r)
	}
	return Radix{r: r}, nil
}

// MustNew is like New but panics on an invalid radix. Intended for call
// sites building well-known radices (2, 8, 10, 16) as constants.
func MustNew(r uint8) Radix {
	rad, err := New(r)
	if err != nil {
		panic(err)
	}
	return rad
}

// Binary, Octal, Decimal and Hex are the four radices the formatting
// surface (§6) exposes directly.
var (
	Binary  = MustNew(2)
	Octal   = MustNew(8)
	Decimal = MustNew(10)
	Hex     = MustNew(16)
)

// Value returns the radix as a plain uint8.
func (r Radix) Value() uint8 {
	return r.r
}

// IsValidByte reports whether d, already normalized to a digit value in
// 0..35 (not an ASCII code), is within this radix's alphabet.
func (r Radix) IsValidByte(d uint8) bool {
	return d < r.r
}

// IsPowerOfTwo reports whether this radix's base is a power of two.
func (r Radix) IsPowerOfTwo() bool {
	return r.r&(r.r-1) == 0
}

// BitsPerDigit returns log2(radix) for a power-of-two radix. It panics if
// called on a non-power-of-two radix; callers must check IsPowerOfTwo
// first, matching the Rust source's debug_assert-guarded precondition.
func (r Radix) BitsPerDigit() uint {
	if !r.IsPowerOfTwo() {
		panic("radix: BitsPerDigit called on a non-power-of-two radix")
	}
	return uint(bits.TrailingZeros8(r.r))
}

// Base returns (base, power) where base == radix^power is the largest
// power of this radix that fits in a single digit.Digit, and power is its
// exponent. This pair drives chunked base conversion for non-power-of-two
// radices: multiplying the accumulator by base and adding one chunk's
// value is equivalent to, but far cheaper than, appending `power` separate
// radix digits one at a time.
func (r Radix) Base() (base uint64, power int) {
	base = 1
	radix := uint64(r.r)
	power = 0
	for {
		next := base * radix
		if next/radix != base {
			// would overflow a uint64, i.e. no longer fits in one Digit.
			break
		}
		base = next
		power++
	}
	return base, power
}
