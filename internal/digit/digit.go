// Package digit implements the fixed-width machine word that every ApInt is
// built out of.  A Digit is the smallest unit of storage: arithmetic,
// bitwise operations and comparisons all eventually bottom out in calls to
// this package.
package digit

import (
	"math/bits"

	"github.com/pkg/errors"
)

// Bits is the width, in bits, of a single Digit.  This is the "B" referred
// to throughout the surrounding packages.
const Bits = 64

// Digit is an unsigned machine word used as a limb of a larger integer.
type Digit uint64

// Zero is the additive identity.
const Zero Digit = 0

// One is the multiplicative identity.
const One Digit = 1

// AllSet is the digit with every bit set.
const AllSet Digit = ^Digit(0)

// ErrOutOfBounds is returned by the single-bit accessors when asked to
// operate on a bit position that does not exist in a Digit.
var ErrOutOfBounds = errors.New("digit: bit position out of bounds")

// Repr returns the raw uint64 representation of d.
func (d Digit) Repr() uint64 {
	return uint64(d)
}

// IsZero returns true if d has no bits set.
func (d Digit) IsZero() bool {
	return d == Zero
}

// CarryAdd returns the low Bits of (a + b + *carry) and updates *carry to
// the carry-out bit (0 or 1).
func CarryAdd(a, b Digit, carry *Digit) Digit {
	sum, c := bits.Add64(uint64(a), uint64(b), uint64(*carry))
	*carry = Digit(c)
	return Digit(sum)
}

// BorrowSub returns the low Bits of (a - b - *borrow) mod 2^Bits and updates
// *borrow to 1 iff the true signed result was negative.
func BorrowSub(a, b Digit, borrow *Digit) Digit {
	diff, bo := bits.Sub64(uint64(a), uint64(b), uint64(*borrow))
	*borrow = Digit(bo)
	return Digit(diff)
}

// MulWithCarry returns the low Bits of (a*b + addend + *carry) and sets
// *carry to the high Bits of the double-width product. It is the
// schoolbook-multiply kernel used by external-storage Mul.
func MulWithCarry(a, b, addend Digit, carry *Digit) Digit {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	var c0, c1 uint64
	lo, c0 = bits.Add64(lo, uint64(addend), 0)
	lo, c1 = bits.Add64(lo, uint64(*carry), 0)
	hi += c0 + c1
	*carry = Digit(hi)
	return Digit(lo)
}

// Get returns the bit at pos, where pos must be < Bits.
func (d Digit) Get(pos uint) (bool, error) {
	if pos >= Bits {
		return false, ErrOutOfBounds
	}
	return (d>>pos)&1 == 1, nil
}

// Set returns d with the bit at pos set to 1.
func (d Digit) Set(pos uint) (Digit, error) {
	if pos >= Bits {
		return d, ErrOutOfBounds
	}
	return d | (Digit(1) << pos), nil
}

// Unset returns d with the bit at pos set to 0.
func (d Digit) Unset(pos uint) (Digit, error) {
	if pos >= Bits {
		return d, ErrOutOfBounds
	}
	return d &^ (Digit(1) << pos), nil
}

// Flip returns d with the bit at pos toggled.
func (d Digit) Flip(pos uint) (Digit, error) {
	if pos >= Bits {
		return d, ErrOutOfBounds
	}
	return d ^ (Digit(1) << pos), nil
}

// Not returns the bitwise complement of d.
func (d Digit) Not() Digit {
	return ^d
}

// And returns the bitwise AND of a and b.
func And(a, b Digit) Digit { return a & b }

// Or returns the bitwise OR of a and b.
func Or(a, b Digit) Digit { return a | b }

// Xor returns the bitwise XOR of a and b.
func Xor(a, b Digit) Digit { return a ^ b }

// RetainLastN zeroes every bit at position >= n, where n must be in
// [0, Bits]. It is the primitive behind the unused-bits invariant: the top
// digit of an ApInt's storage always has its high bits cleared via this
// call.
func (d Digit) RetainLastN(n uint) Digit {
	if n >= Bits {
		return d
	}
	if n == 0 {
		return Zero
	}
	mask := (Digit(1) << n) - 1
	return d & mask
}

// LeadingZeros returns the number of leading zero bits in d.
func (d Digit) LeadingZeros() int {
	return bits.LeadingZeros64(uint64(d))
}

// TrailingZeros returns the number of trailing zero bits in d. For d == 0
// this returns Bits.
func (d Digit) TrailingZeros() int {
	return bits.TrailingZeros64(uint64(d))
}

// Compare returns -1, 0 or 1 depending on whether a is less than, equal to,
// or greater than b, comparing the raw unsigned representation.
func Compare(a, b Digit) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// ShlWithCarry shifts d left by n bits (n < Bits) and returns the result
// along with the bits shifted out of the top (aligned at bit 0 of the
// carry-out digit), for use when propagating a shift across digit
// boundaries.
func ShlWithCarry(d Digit, n uint) (result, carryOut Digit) {
	if n == 0 {
		return d, 0
	}
	result = d << n
	carryOut = d >> (Bits - n)
	return result, carryOut
}

// ShrWithCarry shifts d right by n bits (n < Bits) and returns the result
// along with the bits shifted out of the bottom, aligned at the top of the
// carry-out digit — the mirror image of ShlWithCarry for right shifts that
// must propagate a carry-in from the next-more-significant digit.
func ShrWithCarry(d Digit, n uint) (result, carryOut Digit) {
	if n == 0 {
		return d, 0
	}
	result = d >> n
	carryOut = d << (Bits - n)
	return result, carryOut
}
