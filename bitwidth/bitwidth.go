// Package bitwidth implements BitWidth, the validated positive integer that
// fixes how many bits an ApInt represents and which storage representation
// (inline or external) backs it.
package bitwidth

import (
	"fmt"

	"github.com/segmentio/fixedint/errs"
	"github.com/segmentio/fixedint/internal/digit"
)

// Storage classifies whether a value of a given BitWidth fits in a single
// Digit (Inline) or requires a heap-allocated digit sequence (External).
type Storage int

const (
	// Inline is used when the width fits in a single digit.Digit.
	Inline Storage = iota
	// External is used when more than one digit is required.
	External
)

func (s Storage) String() string {
	switch s {
	case Inline:
		return "Inline"
	case External:
		return "External"
	default:
		return fmt.Sprintf("Storage(%d)", int(s))
	}
}

// BitWidth is a validated, immutable positive integer: the number of value
// bits an ApInt represents. The minimum allowed width is 1; there is no
// fixed maximum other than what fits in a uint.
type BitWidth struct {
	n uint
}

// New validates n and returns a BitWidth wrapping it. n == 0 is rejected:
// every ApInt must represent at least one bit.
func New(n uint) (BitWidth, error) {
	if n == 0 {
		return BitWidth{}, errs.NewInvalidBitWidth(n)
	}
	return BitWidth{n: n}, nil
}

// MustNew is like New but panics if n is invalid. It exists for call sites
// (constants, tests, generated code) that know the width is valid at
// compile time.
func MustNew(n uint) BitWidth {
	w, err := New(n)
	if err != nil {
		panic(err)
	}
	return w
}

// Value returns the bit width as a plain uint.
func (w BitWidth) Value() uint {
	return w.n
}

// RequiredDigits returns ceil(n / digit.Bits): the number of Digit-sized
// limbs needed to hold a value of this width.
func (w BitWidth) RequiredDigits() uint {
	return (w.n + digit.Bits - 1) / digit.Bits
}

// ExcessBits returns n mod digit.Bits: the number of meaningful bits in the
// most significant digit. Zero means the top digit is fully used.
func (w BitWidth) ExcessBits() uint {
	return w.n % digit.Bits
}

// Storage returns Inline when the width fits in a single digit and External
// otherwise. This is the sole source of truth for the inline/external
// storage decision throughout the apint package.
func (w BitWidth) Storage() Storage {
	if w.n <= digit.Bits {
		return Inline
	}
	return External
}

// String renders the width as a bare decimal number, e.g. "32".
func (w BitWidth) String() string {
	return fmt.Sprintf("%d", w.n)
}
