// Package errs defines the closed error taxonomy shared by bitwidth, radix
// and the root apint package. It exists as its own leaf package so that
// bitwidth and radix can return richly-typed errors without importing the
// apint package that in turn imports them.
//
// The taxonomy mirrors segmentio/go-hll's validation idiom (settings.go: a
// small fixed set of range-checked constructors, each producing a
// context-carrying error) generalized to pkg/errors so an
// internal digit-level failure (OutOfBounds) can be wrapped into a public
// one (InvalidBitAccess) without losing its cause.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies which member of the closed error taxonomy an Error
// represents.
type Kind int

const (
	// InvalidBitWidth is raised by bitwidth.New(0).
	InvalidBitWidth Kind = iota
	// InvalidRadix is raised by radix.New(r) with r outside [2, 36].
	InvalidRadix
	// InvalidStringRepr is raised for a structurally invalid numeric
	// string: empty input, or leading/trailing underscore separators.
	InvalidStringRepr
	// InvalidCharInStringRepr is raised when a character does not belong
	// to the alphabet of the radix being parsed.
	InvalidCharInStringRepr
	// ValueExceedsBitWidth is raised when a parsed value does not fit in
	// the caller-supplied target width.
	ValueExceedsBitWidth
	// UnmatchingBitWidths is raised by any binary operation whose two
	// operands have different widths.
	UnmatchingBitWidths
	// InvalidBitAccess is raised when a single-bit accessor is given a
	// position >= width.
	InvalidBitAccess
	// InvalidShiftAmount is raised when a shift amount is >= width.
	InvalidShiftAmount
	// DivisionByZero is raised by any div/rem operation with a zero
	// divisor.
	DivisionByZero
	// OutOfBounds is the internal digit-level counterpart of
	// InvalidBitAccess; it is rarely observed directly since the apint
	// package translates it before returning to callers.
	OutOfBounds
)

func (k Kind) String() string {
	switch k {
	case InvalidBitWidth:
		return "InvalidBitWidth"
	case InvalidRadix:
		return "InvalidRadix"
	case InvalidStringRepr:
		return "InvalidStringRepr"
	case InvalidCharInStringRepr:
		return "InvalidCharInStringRepr"
	case ValueExceedsBitWidth:
		return "ValueExceedsBitWidth"
	case UnmatchingBitWidths:
		return "UnmatchingBitWidths"
	case InvalidBitAccess:
		return "InvalidBitAccess"
	case InvalidShiftAmount:
		return "InvalidShiftAmount"
	case DivisionByZero:
		return "DivisionByZero"
	case OutOfBounds:
		return "OutOfBounds"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// DivOp names which division/remainder operation triggered a
// DivisionByZero error.
type DivOp int

const (
	UnsignedDiv DivOp = iota
	SignedDiv
	UnsignedRem
	SignedRem
)

func (op DivOp) String() string {
	switch op {
	case UnsignedDiv:
		return "UnsignedDiv"
	case SignedDiv:
		return "SignedDiv"
	case UnsignedRem:
		return "UnsignedRem"
	case SignedRem:
		return "SignedRem"
	default:
		return fmt.Sprintf("DivOp(%d)", int(op))
	}
}

// Error is the single exported error type for the whole taxonomy. Every
// field beyond Kind and Message is optional context, populated only by the
// constructors relevant to that Kind.
type Error struct {
	Kind    Kind
	Message string

	// Width-related context.
	Width      uint
	LHSWidth   uint
	RHSWidth   uint
	Position   uint
	Amount     uint
	ParsedBits uint

	// String-parsing context.
	Input string
	Radix uint8
	Char  rune

	// Division context.
	Op       DivOp
	Dividend string

	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap allows errors.Is/errors.As to see through to an internal cause,
// e.g. a digit-level OutOfBounds wrapped by InvalidBitAccess.
func (e *Error) Unwrap() error {
	return e.cause
}

// Cause implements the github.com/pkg/errors Causer interface, unwinding
// past any intermediate pkg/errors wrapping added by newErr to the
// original cause.
func (e *Error) Cause() error {
	if e.cause == nil {
		return nil
	}
	return errors.Cause(e.cause)
}

// newErr builds an Error, wrapping cause (when given) with pkg/errors so
// the formatted message is attached to the original cause's chain instead
// of discarding it.
func newErr(kind Kind, cause error, format string, args ...interface{}) *Error {
	msg := fmt.Sprintf(format, args...)
	var wrapped error
	if cause != nil {
		wrapped = errors.Wrap(cause, msg)
	}
	return &Error{
		Kind:    kind,
		Message: msg,
		cause:   wrapped,
	}
}

// NewInvalidBitWidth builds the error for bitwidth.New(0).
func NewInvalidBitWidth(n uint) *Error {
	e := newErr(InvalidBitWidth, nil, "invalid bit width %d: width must be at least 1", n)
	e.Width = n
	return e
}

// NewInvalidRadix builds the error for radix.New(r) outside [2, 36].
func NewInvalidRadix(r uint8) *Error {
	e := newErr(InvalidRadix, nil, "invalid radix %d: radix must be within 2..=36", r)
	e.Radix = r
	return e
}

// NewInvalidStringRepr builds the error for a structurally malformed input
// string, with an optional human-readable annotation appended.
func NewInvalidStringRepr(input string, radix uint8, annotation string) *Error {
	msg := fmt.Sprintf("invalid string representation %q for radix %d", input, radix)
	if annotation != "" {
		msg = msg + ": " + annotation
	}
	e := newErr(InvalidStringRepr, nil, "%s", msg)
	e.Input = input
	e.Radix = radix
	return e
}

// NewInvalidCharInStringRepr builds the error for a byte that is not part
// of the alphabet of the given radix.
func NewInvalidCharInStringRepr(input string, radix uint8, position int, ch rune) *Error {
	e := newErr(InvalidCharInStringRepr, nil,
		"invalid character %q in string representation %q at position %d for radix %d",
		ch, input, position, radix)
	e.Input = input
	e.Radix = radix
	e.Position = uint(position)
	e.Char = ch
	return e
}

// NewValueExceedsBitWidth builds the error for a parsed value that does
// not fit the target width.
func NewValueExceedsBitWidth(parsedBits, targetWidth uint) *Error {
	e := newErr(ValueExceedsBitWidth, nil,
		"parsed value requires %d bits which exceeds target width %d", parsedBits, targetWidth)
	e.ParsedBits = parsedBits
	e.Width = targetWidth
	return e
}

// NewUnmatchingBitWidths builds the error raised by any binary operation
// whose operands have different widths.
func NewUnmatchingBitWidths(lhs, rhs uint) *Error {
	e := newErr(UnmatchingBitWidths, nil,
		"unmatching bit widths: left operand has width %d, right operand has width %d", lhs, rhs)
	e.LHSWidth = lhs
	e.RHSWidth = rhs
	return e
}

// NewInvalidBitAccess builds the error for a single-bit access at a
// position >= width, wrapping the digit-level cause when one is given.
func NewInvalidBitAccess(position, width uint, cause error) *Error {
	e := newErr(InvalidBitAccess, cause,
		"invalid bit access at position %d for width %d", position, width)
	e.Position = position
	e.Width = width
	return e
}

// NewInvalidShiftAmount builds the error for a shift amount >= width.
func NewInvalidShiftAmount(amount, width uint) *Error {
	e := newErr(InvalidShiftAmount, nil,
		"invalid shift amount %d for width %d: shift amount must be < width", amount, width)
	e.Amount = amount
	e.Width = width
	return e
}

// NewDivisionByZero builds the error for a zero divisor, naming which
// division/remainder operation was attempted and the decimal value of the
// dividend that was about to be divided.
func NewDivisionByZero(op DivOp, dividend string) *Error {
	e := newErr(DivisionByZero, nil, "division by zero in %s: dividend %s", op, dividend)
	e.Op = op
	e.Dividend = dividend
	return e
}

// NewOutOfBounds wraps a digit-level out-of-bounds failure.
func NewOutOfBounds(cause error) *Error {
	return newErr(OutOfBounds, cause, "internal digit access out of bounds")
}

// Is allows errors.Is(err, &errs.Error{Kind: errs.InvalidBitWidth}) style
// checks: it compares only Kind when the target is an *Error, ignoring the
// target's other fields.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
