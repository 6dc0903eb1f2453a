package fixedint

import (
	"github.com/segmentio/fixedint/bitwidth"
	"github.com/segmentio/fixedint/errs"
	"github.com/segmentio/fixedint/internal/digit"
)

// ShiftAmount represents an amount of bits to shift an Int by. It exists,
// rather than a bare uint, so that the digit/bit decomposition used by the
// shift kernels has a single named home — ported from the original
// implementation's ShiftAmount (src/apint/shift.rs), which exists for the
// same reason.
type ShiftAmount struct {
	n uint
}

// NewShiftAmount wraps n as a ShiftAmount. Validity against a particular
// Int's width is checked by Shl/Lshr/Ashr, not here, since a ShiftAmount
// has no width of its own.
func NewShiftAmount(n uint) ShiftAmount {
	return ShiftAmount{n: n}
}

// Value returns the shift amount as a plain uint.
func (s ShiftAmount) Value() uint {
	return s.n
}

// DigitSteps returns the number of whole digits this shift leaps over.
func (s ShiftAmount) DigitSteps() uint {
	return s.n / digit.Bits
}

// BitSteps returns the number of bits within a single digit this shift
// leaps over, after accounting for whole-digit steps.
func (s ShiftAmount) BitSteps() uint {
	return s.n % digit.Bits
}

func checkShiftAmount(s ShiftAmount, width uint) error {
	if s.n >= width {
		return errs.NewInvalidShiftAmount(s.n, width)
	}
	return nil
}

// signExtend sign-extends d, treating only its low width bits as
// meaningful, out to the full digit width. Ported from the design notes:
// "sign-extend into the ambient word by left-shifting by B-width then
// arithmetic-right-shifting back".
func signExtend(d digit.Digit, width uint) digit.Digit {
	shift := digit.Bits - width
	return digit.Digit(uint64(int64(uint64(d)<<shift) >> shift))
}

// Shl shift-assigns a left by s. It fails with InvalidShiftAmount if s is
// not strictly less than a's width.
func (a *Int) Shl(s ShiftAmount) error {
	width := a.width.Value()
	if err := checkShiftAmount(s, width); err != nil {
		return err
	}
	if a.width.Storage() == bitwidth.Inline {
		a.inline = a.inline << s.n
		a.clearUnusedBits()
		return nil
	}
	shiftExternalLeft(a.ext, s)
	a.clearUnusedBits()
	return nil
}

// shiftExternalLeft implements the external-storage left shift described
// in §4.5: move digits up by digitSteps (zero-filling the low positions),
// then, if bitSteps != 0, shift each digit left within itself and OR in
// the carry-out of the digit below it.
func shiftExternalLeft(ds []digit.Digit, s ShiftAmount) {
	n := len(ds)
	digitSteps := int(s.DigitSteps())
	bitSteps := s.BitSteps()

	shifted := make([]digit.Digit, n)
	for i := n - 1; i >= 0; i-- {
		srcIdx := i - digitSteps
		if srcIdx >= 0 {
			shifted[i] = ds[srcIdx]
		}
	}

	if bitSteps != 0 {
		var carryIn digit.Digit
		for i := 0; i < n; i++ {
			low, carryOut := digit.ShlWithCarry(shifted[i], bitSteps)
			shifted[i] = low | carryIn
			carryIn = carryOut
		}
	}

	copy(ds, shifted)
}

// Lshr logical-shift-assigns a right by s, zero-filling from the top. It
// fails with InvalidShiftAmount if s is not strictly less than a's width.
func (a *Int) Lshr(s ShiftAmount) error {
	width := a.width.Value()
	if err := checkShiftAmount(s, width); err != nil {
		return err
	}
	if a.width.Storage() == bitwidth.Inline {
		a.inline = a.inline >> s.n
		a.clearUnusedBits()
		return nil
	}
	shiftExternalRight(a.ext, s, digit.Zero)
	a.clearUnusedBits()
	return nil
}

// Ashr arithmetic-shift-assigns a right by s, replicating the sign bit
// into the vacated high bits. It fails with InvalidShiftAmount if s is not
// strictly less than a's width.
func (a *Int) Ashr(s ShiftAmount) error {
	width := a.width.Value()
	if err := checkShiftAmount(s, width); err != nil {
		return err
	}
	if a.width.Storage() == bitwidth.Inline {
		extended := signExtend(a.inline, width)
		a.inline = digit.Digit(uint64(int64(uint64(extended)) >> s.n))
		a.clearUnusedBits()
		return nil
	}
	fill := digit.Zero
	if a.signBit() {
		fill = digit.AllSet
		// Sign-extend the partially used top digit so the shifted-in bits
		// land below the width rather than in the unused high bits.
		if k := a.width.ExcessBits(); k != 0 {
			last := len(a.ext) - 1
			a.ext[last] = signExtend(a.ext[last], k)
		}
	}
	shiftExternalRight(a.ext, s, fill)
	a.clearUnusedBits()
	return nil
}

// shiftExternalRight implements the external-storage right shift
// described in §4.5: move digits down, zero/sign-fill the vacated high
// digits with fill, then, if bitSteps != 0, shift each digit right within
// itself and OR in the carry-in from the digit above it (or from fill
// once the top of the array is passed).
func shiftExternalRight(ds []digit.Digit, s ShiftAmount, fill digit.Digit) {
	n := len(ds)
	digitSteps := int(s.DigitSteps())
	bitSteps := s.BitSteps()

	shifted := make([]digit.Digit, n)
	for i := 0; i < n; i++ {
		srcIdx := i + digitSteps
		if srcIdx < n {
			shifted[i] = ds[srcIdx]
		} else {
			shifted[i] = fill
		}
	}

	if bitSteps != 0 {
		_, carryIn := digit.ShrWithCarry(fill, bitSteps)
		for i := n - 1; i >= 0; i-- {
			high, carryOut := digit.ShrWithCarry(shifted[i], bitSteps)
			shifted[i] = high | carryIn
			carryIn = carryOut
		}
	}

	copy(ds, shifted)
}

// IntoShl returns a shifted left by s, consuming a.
func IntoShl(a Int, s ShiftAmount) (Int, error) {
	if err := a.Shl(s); err != nil {
		return Int{}, err
	}
	return a, nil
}

// IntoLshr returns a logical-shifted right by s, consuming a.
func IntoLshr(a Int, s ShiftAmount) (Int, error) {
	if err := a.Lshr(s); err != nil {
		return Int{}, err
	}
	return a, nil
}

// IntoAshr returns a arithmetic-shifted right by s, consuming a.
func IntoAshr(a Int, s ShiftAmount) (Int, error) {
	if err := a.Ashr(s); err != nil {
		return Int{}, err
	}
	return a, nil
}
