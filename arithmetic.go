package fixedint

import (
	"github.com/segmentio/fixedint/bitwidth"
	"github.com/segmentio/fixedint/errs"
	"github.com/segmentio/fixedint/internal/digit"
)

// # Arithmetic Operations
//
// Grounded on apint::arithmetic.rs: the inline path always uses a single
// wrapping word operation; the external path iterates
// least-significant-digit-first threading a carry/borrow register,
// restoring the unused-bits invariant once at the end rather than after
// every digit. Two's-complement arithmetic makes signed and unsigned
// add/sub/mul identical at the bit level; only div/rem need a signed
// variant.

// Negate negates a inplace (two's complement: bitnot then +1).
func (a *Int) Negate() {
	a.BitNot()
	one := One(a.width)
	// This cannot fail: one was constructed at exactly a's width.
	_ = a.CheckedAddAssign(&one)
}

// IntoNegate returns the negation of a, consuming a.
func IntoNegate(a Int) Int {
	a.Negate()
	return a
}

// CheckedAddAssign add-assigns rhs into a. Wraparound is the contract:
// this can only fail with UnmatchingBitWidths.
func (a *Int) CheckedAddAssign(rhs *Int) error {
	view, err := a.zipAccessDataMut(rhs)
	if err != nil {
		return err
	}
	if view.kind == bitwidth.Inline {
		*view.lhsInl = *view.lhsInl + view.rhsInl
	} else {
		var carry digit.Digit
		for i := range view.lhsExt {
			view.lhsExt[i] = digit.CarryAdd(view.lhsExt[i], view.rhsExt[i], &carry)
		}
	}
	a.clearUnusedBits()
	return nil
}

// IntoCheckedAdd returns a + rhs, consuming a.
func IntoCheckedAdd(a Int, rhs *Int) (Int, error) {
	if err := a.CheckedAddAssign(rhs); err != nil {
		return Int{}, err
	}
	return a, nil
}

// CheckedSubAssign subtract-assigns rhs from a. Wraparound is the
// contract: this can only fail with UnmatchingBitWidths.
func (a *Int) CheckedSubAssign(rhs *Int) error {
	view, err := a.zipAccessDataMut(rhs)
	if err != nil {
		return err
	}
	if view.kind == bitwidth.Inline {
		*view.lhsInl = *view.lhsInl - view.rhsInl
	} else {
		var borrow digit.Digit
		for i := range view.lhsExt {
			view.lhsExt[i] = digit.BorrowSub(view.lhsExt[i], view.rhsExt[i], &borrow)
		}
	}
	a.clearUnusedBits()
	return nil
}

// IntoCheckedSub returns a - rhs, consuming a.
func IntoCheckedSub(a Int, rhs *Int) (Int, error) {
	if err := a.CheckedSubAssign(rhs); err != nil {
		return Int{}, err
	}
	return a, nil
}

// CheckedMulAssign multiply-assigns rhs into a. External multiplication is
// schoolbook O(n^2): for each digit b[j] of rhs, a[i]*b[j] (a double-width
// product) is added into result digits [i+j, i+j+1], propagating carries;
// the result is truncated to required_digits(width) digits.
func (a *Int) CheckedMulAssign(rhs *Int) error {
	view, err := a.zipAccessDataMut(rhs)
	if err != nil {
		return err
	}
	if view.kind == bitwidth.Inline {
		*view.lhsInl = *view.lhsInl * view.rhsInl
		a.clearUnusedBits()
		return nil
	}

	lhs := view.lhsExt
	rhsDigits := view.rhsExt
	n := len(lhs)

	result := make([]digit.Digit, n)
	for i := 0; i < n; i++ {
		if lhs[i].IsZero() {
			continue
		}
		var carry digit.Digit
		for j := 0; i+j < n; j++ {
			var b digit.Digit
			if j < len(rhsDigits) {
				b = rhsDigits[j]
			}
			result[i+j] = digit.MulWithCarry(lhs[i], b, result[i+j], &carry)
		}
		// carry beyond the top digit is discarded: modular semantics.
	}
	copy(lhs, result)
	a.clearUnusedBits()
	return nil
}

// IntoCheckedMul returns a * rhs, consuming a.
func IntoCheckedMul(a Int, rhs *Int) (Int, error) {
	if err := a.CheckedMulAssign(rhs); err != nil {
		return Int{}, err
	}
	return a, nil
}

// CheckedUdivAssign assigns a to the unsigned quotient of a / rhs. It
// fails with DivisionByZero if rhs is zero, or UnmatchingBitWidths if the
// widths differ.
func (a *Int) CheckedUdivAssign(rhs *Int) error {
	q, _, err := a.checkedUdivRem(rhs, errs.UnsignedDiv)
	if err != nil {
		return err
	}
	*a = q
	return nil
}

// IntoCheckedUdiv returns the unsigned quotient of a / rhs, consuming a.
func IntoCheckedUdiv(a Int, rhs *Int) (Int, error) {
	if err := a.CheckedUdivAssign(rhs); err != nil {
		return Int{}, err
	}
	return a, nil
}

// CheckedUremAssign assigns a to the unsigned remainder of a / rhs. It
// fails with DivisionByZero if rhs is zero, or UnmatchingBitWidths if the
// widths differ.
func (a *Int) CheckedUremAssign(rhs *Int) error {
	_, r, err := a.checkedUdivRem(rhs, errs.UnsignedRem)
	if err != nil {
		return err
	}
	*a = r
	return nil
}

// IntoCheckedUrem returns the unsigned remainder of a / rhs, consuming a.
func IntoCheckedUrem(a Int, rhs *Int) (Int, error) {
	if err := a.CheckedUremAssign(rhs); err != nil {
		return Int{}, err
	}
	return a, nil
}

// checkedUdivRem is the shared kernel behind CheckedUdivAssign and
// CheckedUremAssign: it enforces matching widths and a non-zero divisor
// once, then dispatches to the inline or external unsigned division
// kernel.
func (a *Int) checkedUdivRem(rhs *Int, op errs.DivOp) (quotient, remainder Int, err error) {
	if _, err := a.zipAccessDataMut(rhs); err != nil {
		return Int{}, Int{}, err
	}
	if rhs.IsZero() {
		return Int{}, Int{}, errs.NewDivisionByZero(op, a.FormatDecimal())
	}

	if a.width.Storage() == bitwidth.Inline {
		q := uint64(a.inline) / uint64(rhs.inline)
		r := uint64(a.inline) % uint64(rhs.inline)
		quotient = Int{width: a.width, inline: digit.Digit(q)}
		remainder = Int{width: a.width, inline: digit.Digit(r)}
		return quotient, remainder, nil
	}

	qd, rd := digitsDivMod(a.ext, rhs.ext, a.width.Value())
	quotient = Int{width: a.width, ext: qd}
	remainder = Int{width: a.width, ext: rd}
	return quotient, remainder, nil
}

// CheckedSdivAssign assigns a to the signed (truncating-toward-zero)
// quotient of a / rhs. It fails with DivisionByZero if rhs is zero, or
// UnmatchingBitWidths if the widths differ.
func (a *Int) CheckedSdivAssign(rhs *Int) error {
	q, _, err := a.checkedSdivRem(rhs, errs.SignedDiv)
	if err != nil {
		return err
	}
	*a = q
	return nil
}

// IntoCheckedSdiv returns the signed quotient of a / rhs, consuming a.
func IntoCheckedSdiv(a Int, rhs *Int) (Int, error) {
	if err := a.CheckedSdivAssign(rhs); err != nil {
		return Int{}, err
	}
	return a, nil
}

// CheckedSremAssign assigns a to the signed remainder of a / rhs, which
// takes the sign of the dividend. It fails with DivisionByZero if rhs is
// zero, or UnmatchingBitWidths if the widths differ.
func (a *Int) CheckedSremAssign(rhs *Int) error {
	_, r, err := a.checkedSdivRem(rhs, errs.SignedRem)
	if err != nil {
		return err
	}
	*a = r
	return nil
}

// IntoCheckedSrem returns the signed remainder of a / rhs, consuming a.
func IntoCheckedSrem(a Int, rhs *Int) (Int, error) {
	if err := a.CheckedSremAssign(rhs); err != nil {
		return Int{}, err
	}
	return a, nil
}

// checkedSdivRem is the shared kernel behind CheckedSdivAssign and
// CheckedSremAssign. For the inline path it sign-extends both operands
// into an ambient int64 register (§4.6, §9) and uses Go's native
// truncating-toward-zero integer division. For the external path it takes
// absolute values, performs the unsigned algorithm, and restores signs:
// the quotient's sign is the XOR of the operand signs, and the remainder
// takes the sign of the dividend.
func (a *Int) checkedSdivRem(rhs *Int, op errs.DivOp) (quotient, remainder Int, err error) {
	if _, err := a.zipAccessDataMut(rhs); err != nil {
		return Int{}, Int{}, err
	}
	if rhs.IsZero() {
		return Int{}, Int{}, errs.NewDivisionByZero(op, a.FormatDecimal())
	}

	width := a.width.Value()

	if a.width.Storage() == bitwidth.Inline {
		lval := int64(signExtend(a.inline, width))
		rval := int64(signExtend(rhs.inline, width))
		q := lval / rval
		r := lval % rval
		quotient = Int{width: a.width, inline: digit.Digit(uint64(q))}
		remainder = Int{width: a.width, inline: digit.Digit(uint64(r))}
		quotient.clearUnusedBits()
		remainder.clearUnusedBits()
		return quotient, remainder, nil
	}

	lhsNeg := a.signBit()
	rhsNeg := rhs.signBit()

	lhsAbs := a.Clone()
	if lhsNeg {
		lhsAbs.Negate()
	}
	rhsAbs := rhs.Clone()
	if rhsNeg {
		rhsAbs.Negate()
	}

	qd, rd := digitsDivMod(lhsAbs.ext, rhsAbs.ext, width)
	quotient = Int{width: a.width, ext: qd}
	remainder = Int{width: a.width, ext: rd}

	if lhsNeg != rhsNeg {
		quotient.Negate()
	}
	if lhsNeg {
		remainder.Negate()
	}
	return quotient, remainder, nil
}

// IncrementBy add-assigns delta into a. Unlike Negate's internal use of a
// fixed one-literal, this accepts any same-width delta.
func (a *Int) IncrementBy(delta *Int) error {
	return a.CheckedAddAssign(delta)
}

// DecrementBy subtract-assigns delta from a.
func (a *Int) DecrementBy(delta *Int) error {
	return a.CheckedSubAssign(delta)
}

// digitsDivMod performs unsigned long division of the little-endian digit
// sequences dividend and divisor (both required_digits(width) long),
// returning a same-length quotient and remainder. It is a bit-at-a-time
// restoring-division algorithm operating directly on the digit
// primitives (compare, shift-with-carry, borrow-sub) — simple to verify
// directly at the cost of O(width) iterations rather than a full
// multi-word Knuth Algorithm D.
func digitsDivMod(dividend, divisor []digit.Digit, width uint) (quotient, remainder []digit.Digit) {
	n := len(dividend)
	quotient = make([]digit.Digit, n)
	remainder = make([]digit.Digit, n)

	for bit := int(width) - 1; bit >= 0; bit-- {
		idx := uint(bit) / digit.Bits
		off := uint(bit) % digit.Bits
		dividendBit := (dividend[idx] >> off) & 1

		digitsShlWithCarryIn(remainder, digit.Digit(dividendBit))

		if digitsCompare(remainder, divisor) >= 0 {
			digitsSubInPlace(remainder, divisor)
			qIdx := uint(bit) / digit.Bits
			qOff := uint(bit) % digit.Bits
			quotient[qIdx] |= digit.Digit(1) << qOff
		}
	}

	return quotient, remainder
}

// digitsShlWithCarryIn shifts the little-endian digit sequence ds left by
// one bit in place, setting bit 0 of the result to carryIn (which must be
// 0 or 1). Any bit shifted out of the top digit is discarded, matching
// this helper's only caller (bit-at-a-time division, where the dividend
// and divisor are already known to fit in len(ds) digits).
func digitsShlWithCarryIn(ds []digit.Digit, carryIn digit.Digit) {
	carry := carryIn
	for i := 0; i < len(ds); i++ {
		low, carryOut := digit.ShlWithCarry(ds[i], 1)
		ds[i] = low | carry
		carry = carryOut
	}
}

// digitsCompare compares two little-endian digit sequences of equal length
// as unsigned big integers, returning -1, 0 or 1.
func digitsCompare(a, b []digit.Digit) int {
	for i := len(a) - 1; i >= 0; i-- {
		if c := digit.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// digitsSubInPlace subtracts b from a in place; callers must ensure a >= b.
func digitsSubInPlace(a, b []digit.Digit) {
	var borrow digit.Digit
	for i := range a {
		a[i] = digit.BorrowSub(a[i], b[i], &borrow)
	}
}
