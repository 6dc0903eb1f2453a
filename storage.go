package fixedint

import (
	"github.com/segmentio/fixedint/bitwidth"
	"github.com/segmentio/fixedint/errs"
	"github.com/segmentio/fixedint/internal/digit"
)

// dataView is the read/write view produced by (*Int).accessDataMut: a
// single operand's storage as either its inline digit or its external
// digit slice. Not every single-operand routine uses it; the bit accessors,
// the shifts and the read-only helpers in apint.go branch on the storage
// kind themselves.
//
// This mirrors segmentio/go-hll's storage interface (storage.go), which
// centralizes "how do I read/write my bytes" behind one seam so the rest
// of the package never re-implements the dispatch.
type dataView struct {
	kind bitwidth.Storage
	inl  *digit.Digit
	ext  []digit.Digit
}

// accessDataMut returns a view over a's digit storage without enforcing
// anything about another value — used by BitNot (and so by Negate).
func (a *Int) accessDataMut() dataView {
	if a.width.Storage() == bitwidth.Inline {
		return dataView{kind: bitwidth.Inline, inl: &a.inline}
	}
	return dataView{kind: bitwidth.External, ext: a.ext}
}

// zipDataView is the paired view produced by (*Int).zipAccessDataMut. It
// is the sole place where cross-value width enforcement happens; every
// binary operator in this package routes through it.
type zipDataView struct {
	kind bitwidth.Storage

	lhsInl *digit.Digit
	rhsInl digit.Digit

	lhsExt []digit.Digit
	rhsExt []digit.Digit
}

// zipAccessDataMut validates that a and b share a width, then returns a
// paired view over both operands' storage. This is the only place in the
// package where UnmatchingBitWidths is raised.
func (a *Int) zipAccessDataMut(b *Int) (zipDataView, error) {
	if a.width.Value() != b.width.Value() {
		return zipDataView{}, errs.NewUnmatchingBitWidths(a.width.Value(), b.width.Value())
	}
	if a.width.Storage() == bitwidth.Inline {
		return zipDataView{kind: bitwidth.Inline, lhsInl: &a.inline, rhsInl: b.inline}, nil
	}
	return zipDataView{kind: bitwidth.External, lhsExt: a.ext, rhsExt: b.ext}, nil
}

// clearUnusedBits restores invariant 3 (§3): when the top digit is only
// partially used, the bits above the value's width are zeroed. It is a
// no-op when the width is an exact multiple of digit.Bits.
func (a *Int) clearUnusedBits() {
	k := a.width.ExcessBits()
	if k == 0 {
		return
	}
	if a.width.Storage() == bitwidth.Inline {
		a.inline = a.inline.RetainLastN(k)
		return
	}
	last := len(a.ext) - 1
	a.ext[last] = a.ext[last].RetainLastN(k)
}

// allocDigits returns a freshly zeroed digit slice sized for external
// storage of width w. Callers must only call this when
// w.Storage() == bitwidth.External.
func allocDigits(w bitwidth.BitWidth) []digit.Digit {
	return make([]digit.Digit, w.RequiredDigits())
}
