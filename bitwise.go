package fixedint

import (
	"github.com/segmentio/fixedint/bitwidth"
	"github.com/segmentio/fixedint/errs"
	"github.com/segmentio/fixedint/internal/digit"
)

// Bit returns the value of the bit at pos, where pos must be < a.Width().
func (a Int) Bit(pos uint) (bool, error) {
	if pos >= a.width.Value() {
		return false, errs.NewInvalidBitAccess(pos, a.width.Value(), nil)
	}
	return a.bitAt(pos)
}

// digitIndexAndBit splits an already-validated bit position into a digit
// index and an in-digit bit index.
func digitIndexAndBit(pos uint) (idx, bit uint) {
	return pos / digit.Bits, pos % digit.Bits
}

// setBitMut sets the bit at pos (already validated by the caller) and
// returns an error only if the underlying digit-level accessor fails,
// which cannot happen for a validated position — it exists so the
// internal constructors (SignedMin) and the public SetBit share one
// implementation.
func (a *Int) setBitMut(pos uint) error {
	idx, bit := digitIndexAndBit(pos)
	if a.width.Storage() == bitwidth.Inline {
		d, err := a.inline.Set(bit)
		if err != nil {
			return errs.NewInvalidBitAccess(pos, a.width.Value(), err)
		}
		a.inline = d
		return nil
	}
	d, err := a.ext[idx].Set(bit)
	if err != nil {
		return errs.NewInvalidBitAccess(pos, a.width.Value(), err)
	}
	a.ext[idx] = d
	return nil
}

func (a *Int) unsetBitMut(pos uint) error {
	idx, bit := digitIndexAndBit(pos)
	if a.width.Storage() == bitwidth.Inline {
		d, err := a.inline.Unset(bit)
		if err != nil {
			return errs.NewInvalidBitAccess(pos, a.width.Value(), err)
		}
		a.inline = d
		return nil
	}
	d, err := a.ext[idx].Unset(bit)
	if err != nil {
		return errs.NewInvalidBitAccess(pos, a.width.Value(), err)
	}
	a.ext[idx] = d
	return nil
}

func (a *Int) flipBitMut(pos uint) error {
	idx, bit := digitIndexAndBit(pos)
	if a.width.Storage() == bitwidth.Inline {
		d, err := a.inline.Flip(bit)
		if err != nil {
			return errs.NewInvalidBitAccess(pos, a.width.Value(), err)
		}
		a.inline = d
		return nil
	}
	d, err := a.ext[idx].Flip(bit)
	if err != nil {
		return errs.NewInvalidBitAccess(pos, a.width.Value(), err)
	}
	a.ext[idx] = d
	return nil
}

// SetBit sets the bit at pos to 1. pos must be < a.Width().
func (a *Int) SetBit(pos uint) error {
	if pos >= a.width.Value() {
		return errs.NewInvalidBitAccess(pos, a.width.Value(), nil)
	}
	return a.setBitMut(pos)
}

// UnsetBit sets the bit at pos to 0. pos must be < a.Width().
func (a *Int) UnsetBit(pos uint) error {
	if pos >= a.width.Value() {
		return errs.NewInvalidBitAccess(pos, a.width.Value(), nil)
	}
	return a.unsetBitMut(pos)
}

// FlipBit toggles the bit at pos. pos must be < a.Width().
func (a *Int) FlipBit(pos uint) error {
	if pos >= a.width.Value() {
		return errs.NewInvalidBitAccess(pos, a.width.Value(), nil)
	}
	return a.flipBitMut(pos)
}

// BitNot inplace-inverts every bit of a, then restores the unused-bits
// invariant.
func (a *Int) BitNot() {
	view := a.accessDataMut()
	if view.kind == bitwidth.Inline {
		*view.inl = view.inl.Not()
	} else {
		for i := range view.ext {
			view.ext[i] = view.ext[i].Not()
		}
	}
	a.clearUnusedBits()
}

// IntoBitNot returns the bitwise complement of a, consuming a.
func IntoBitNot(a Int) Int {
	a.BitNot()
	return a
}

// BitAndAssign and-assigns rhs into a. Both operands must share a width.
func (a *Int) BitAndAssign(rhs *Int) error {
	view, err := a.zipAccessDataMut(rhs)
	if err != nil {
		return err
	}
	if view.kind == bitwidth.Inline {
		*view.lhsInl = digit.And(*view.lhsInl, view.rhsInl)
		return nil
	}
	for i := range view.lhsExt {
		view.lhsExt[i] = digit.And(view.lhsExt[i], view.rhsExt[i])
	}
	return nil
}

// BitOrAssign or-assigns rhs into a. Both operands must share a width.
func (a *Int) BitOrAssign(rhs *Int) error {
	view, err := a.zipAccessDataMut(rhs)
	if err != nil {
		return err
	}
	if view.kind == bitwidth.Inline {
		*view.lhsInl = digit.Or(*view.lhsInl, view.rhsInl)
		return nil
	}
	for i := range view.lhsExt {
		view.lhsExt[i] = digit.Or(view.lhsExt[i], view.rhsExt[i])
	}
	return nil
}

// BitXorAssign xor-assigns rhs into a. Both operands must share a width.
func (a *Int) BitXorAssign(rhs *Int) error {
	view, err := a.zipAccessDataMut(rhs)
	if err != nil {
		return err
	}
	if view.kind == bitwidth.Inline {
		*view.lhsInl = digit.Xor(*view.lhsInl, view.rhsInl)
		return nil
	}
	for i := range view.lhsExt {
		view.lhsExt[i] = digit.Xor(view.lhsExt[i], view.rhsExt[i])
	}
	return nil
}

// IntoBitAnd returns a AND rhs, consuming a.
func IntoBitAnd(a Int, rhs *Int) (Int, error) {
	if err := a.BitAndAssign(rhs); err != nil {
		return Int{}, err
	}
	return a, nil
}

// IntoBitOr returns a OR rhs, consuming a.
func IntoBitOr(a Int, rhs *Int) (Int, error) {
	if err := a.BitOrAssign(rhs); err != nil {
		return Int{}, err
	}
	return a, nil
}

// IntoBitXor returns a XOR rhs, consuming a.
func IntoBitXor(a Int, rhs *Int) (Int, error) {
	if err := a.BitXorAssign(rhs); err != nil {
		return Int{}, err
	}
	return a, nil
}
