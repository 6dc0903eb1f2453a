package fixedint

// ceilDiv returns ceil(a / b) for non-negative a and positive b. Grounded
// on segmentio/go-hll's divideBy8RoundUp (util.go), generalized from a
// fixed divisor of 8 to an arbitrary one since this package needs the
// same "round up" arithmetic for chunking by digit.Bits, by a radix's
// base-power, and by bits-per-digit.
func ceilDiv(a, b int) int {
	result := a / b
	if a%b != 0 {
		result++
	}
	return result
}

// asciiDigitValue normalizes an ASCII input byte to its digit value (0..35)
// the way from_str_radix does: '0'..'9' -> 0..9, 'a'..'z'/'A'..'Z' -> 10..35.
// ok is false for any other byte, including '_' which callers must special
// case themselves (it is a separator, not a digit).
func asciiDigitValue(b byte) (value uint8, ok bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'z':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'Z':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}

// reverseBytes reverses s in place.
func reverseBytes(s []uint8) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
