package fixedint

import (
	"math/bits"
	"strings"

	"github.com/segmentio/fixedint/bitwidth"
	"github.com/segmentio/fixedint/errs"
	"github.com/segmentio/fixedint/internal/digit"
	"github.com/segmentio/fixedint/radix"
)

const (
	lowerAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	upperAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// lb2To36I3F13 holds ceil(log2(radix) * 2^13) for radix in 2..=36, indexed by
// radix-2, as an I3F13 fixed-point. It bounds the number of bits needed to
// hold a string of a given length in a given radix without underestimating,
// and exists only to size the preallocation in fromRadixDigitsChunked.
var lb2To36I3F13 = [35]uint16{
	8192, 12985, 16384, 19022, 21177, 22998, 24576, 25969, 27214, 28340, 29369,
	30315, 31190, 32006, 32768, 33485, 34161, 34800, 35406, 35982, 36532,
	37058, 37561, 38043, 38507, 38953, 39382, 39797, 40198, 40585, 40960,
	41324, 41677, 42020, 42353,
}

// FormatBinary renders a in base 2, most significant bit first.
func (a Int) FormatBinary() string { return a.FormatRadix(radix.Binary) }

// FormatOctal renders a in base 8, most significant digit first.
func (a Int) FormatOctal() string { return a.FormatRadix(radix.Octal) }

// FormatLowerHex renders a in base 16 using lowercase letters.
func (a Int) FormatLowerHex() string { return a.FormatRadix(radix.Hex) }

// FormatUpperHex renders a in base 16 using uppercase letters.
func (a Int) FormatUpperHex() string {
	return a.formatWithAlphabet(radix.Hex, upperAlphabet)
}

// FormatDecimal renders a in base 10.
func (a Int) FormatDecimal() string { return a.FormatRadix(radix.Decimal) }

// FormatRadix renders a in the given radix using lowercase letters for
// digit values above 9. Zero always formats as "0" regardless of radix.
func (a Int) FormatRadix(r radix.Radix) string {
	return a.formatWithAlphabet(r, lowerAlphabet)
}

func (a Int) formatWithAlphabet(r radix.Radix, alphabet string) string {
	if a.IsZero() {
		return "0"
	}
	ds := a.asDigitSlice()
	if r.IsPowerOfTwo() {
		return formatPowerOfTwo(ds, r.BitsPerDigit(), alphabet)
	}
	return formatNonPowerOfTwo(ds, r, alphabet)
}

// formatPowerOfTwo renders the little-endian digit slice ds in a radix whose
// base is 2^bitsPerDigit. It treats the whole slice as one contiguous bit
// string and walks it in bitsPerDigit-sized groups from the most significant
// end down, which is what the Digit-major algorithm described for binary and
// hex reduces to whenever bitsPerDigit evenly divides a Digit's width, and
// what it must become when it doesn't (octal) since groups then straddle
// Digit boundaries.
func formatPowerOfTwo(ds []digit.Digit, bitsPerDigit uint, alphabet string) string {
	fullBits := uint(len(ds)) * digit.Bits
	numGroups := ceilDiv(int(fullBits), int(bitsPerDigit))

	chars := make([]byte, 0, numGroups)
	started := false
	for g := numGroups - 1; g >= 0; g-- {
		v := extractBits(ds, uint(g)*bitsPerDigit, bitsPerDigit)
		if !started {
			if v == 0 {
				continue
			}
			started = true
		}
		chars = append(chars, alphabet[v])
	}
	if !started {
		return "0"
	}
	return string(chars)
}

// extractBits reads the n-bit (n <= digit.Bits) field of ds starting at bit
// position start, little-endian, straddling a Digit boundary if needed.
// Positions past the end of ds read as zero, which lets the top, possibly
// partial, group of a non-evenly-dividing radix read safely off the end.
func extractBits(ds []digit.Digit, start, n uint) uint64 {
	idx := start / digit.Bits
	off := start % digit.Bits

	var lo, hi uint64
	if int(idx) < len(ds) {
		lo = uint64(ds[idx]) >> off
	}
	remaining := digit.Bits - off
	if n > remaining && int(idx+1) < len(ds) {
		hi = uint64(ds[idx+1]) << remaining
	}
	mask := uint64(1)<<n - 1
	return (lo | hi) & mask
}

// formatNonPowerOfTwo renders ds in a non-power-of-two radix by repeatedly
// dividing the magnitude by radixBase (the largest power of r fitting a
// Digit), collecting remainder chunks, and reversing. Each chunk below the
// most significant is zero-padded to power characters so chunk boundaries
// stay unambiguous.
func formatNonPowerOfTwo(ds []digit.Digit, r radix.Radix, alphabet string) string {
	base, power := r.Base()

	work := make([]uint64, len(ds))
	for i, d := range ds {
		work[i] = uint64(d)
	}

	var groups []uint64
	for !allZeroUint64(work) {
		groups = append(groups, divModSmall(work, base))
	}
	if len(groups) == 0 {
		return "0"
	}

	var sb strings.Builder
	last := len(groups) - 1
	sb.Write(uintToRadixDigits(groups[last], r.Value(), alphabet))
	for i := last - 1; i >= 0; i-- {
		sb.Write(padRadixDigits(groups[i], r.Value(), alphabet, power))
	}
	return sb.String()
}

// divModSmall divides the little-endian magnitude work by divisor in place,
// leaving the quotient in work, and returns the remainder. It walks from the
// most significant word down, using a 128-by-64 hardware division at each
// step since the running remainder is always smaller than divisor.
func divModSmall(work []uint64, divisor uint64) uint64 {
	var rem uint64
	for i := len(work) - 1; i >= 0; i-- {
		work[i], rem = bits.Div64(rem, work[i], divisor)
	}
	return rem
}

func allZeroUint64(work []uint64) bool {
	for _, w := range work {
		if w != 0 {
			return false
		}
	}
	return true
}

// uintToRadixDigits converts v to its big-endian digit representation in
// base, with no leading zeros ("0" for v == 0).
func uintToRadixDigits(v uint64, base uint8, alphabet string) []byte {
	if v == 0 {
		return []byte{'0'}
	}
	b := uint64(base)
	var buf []byte
	for v > 0 {
		buf = append(buf, alphabet[v%b])
		v /= b
	}
	reverseBytes(buf)
	return buf
}

func padRadixDigits(v uint64, base uint8, alphabet string, width int) []byte {
	d := uintToRadixDigits(v, base, alphabet)
	if len(d) >= width {
		return d
	}
	padded := make([]byte, width)
	for i := range padded {
		padded[i] = '0'
	}
	copy(padded[width-len(d):], d)
	return padded
}

// FromStringRadix parses input as a big-endian, unsigned numeral in radix r.
// If targetWidth is nil, the result gets the smallest width that fits the
// parsed value; otherwise a value that doesn't fit targetWidth fails with
// ValueExceedsBitWidth.
func FromStringRadix(r radix.Radix, input string, targetWidth *bitwidth.BitWidth) (Int, error) {
	if input == "" {
		return Int{}, errs.NewInvalidStringRepr(input, r.Value(),
			"cannot parse an empty string")
	}
	if strings.HasPrefix(input, "_") {
		return Int{}, errs.NewInvalidStringRepr(input, r.Value(),
			"input starts with '_'; underscores separate digits, they cannot lead")
	}
	if strings.HasSuffix(input, "_") {
		return Int{}, errs.NewInvalidStringRepr(input, r.Value(),
			"input ends with '_'; underscores separate digits, they cannot trail")
	}

	values := make([]uint8, 0, len(input))
	for i := 0; i < len(input); i++ {
		b := input[i]
		if b == '_' {
			continue
		}
		v, ok := asciiDigitValue(b)
		if !ok || !r.IsValidByte(v) {
			return Int{}, errs.NewInvalidCharInStringRepr(input, r.Value(), i, rune(b))
		}
		values = append(values, v)
	}

	var mag []digit.Digit
	if r.IsPowerOfTwo() {
		bitsPerDigit := r.BitsPerDigit()
		rev := make([]uint8, len(values))
		copy(rev, values)
		reverseBytes(rev)
		if digit.Bits%bitsPerDigit == 0 {
			mag = fromBitwiseDigitsExact(rev, bitsPerDigit)
		} else {
			mag = fromInexactBitwiseDigits(rev, bitsPerDigit)
		}
	} else {
		mag = fromRadixDigitsChunked(values, r)
	}

	parsedBits := magnitudeBitLength(mag)

	var width bitwidth.BitWidth
	if targetWidth == nil {
		need := parsedBits
		if need == 0 {
			need = 1
		}
		width = bitwidth.MustNew(need)
	} else {
		width = *targetWidth
		if parsedBits > width.Value() {
			return Int{}, errs.NewValueExceedsBitWidth(parsedBits, width.Value())
		}
	}

	return intFromMagnitude(width, mag), nil
}

// fromBitwiseDigitsExact packs v (already reversed to least-significant
// digit value first) into Digits, bitsPerDigit bits at a time, for radices
// whose bitsPerDigit evenly divides a Digit's width: every Digit is filled
// from a disjoint run of digit values, so chunks never straddle a boundary.
func fromBitwiseDigitsExact(v []uint8, bitsPerDigit uint) []digit.Digit {
	radixDigitsPerDigit := int(digit.Bits / bitsPerDigit)
	if len(v) == 0 {
		return []digit.Digit{digit.Zero}
	}
	out := make([]digit.Digit, 0, ceilDiv(len(v), radixDigitsPerDigit))
	for start := 0; start < len(v); start += radixDigitsPerDigit {
		end := start + radixDigitsPerDigit
		if end > len(v) {
			end = len(v)
		}
		chunk := v[start:end]
		var acc uint64
		for i := len(chunk) - 1; i >= 0; i-- {
			acc = (acc << bitsPerDigit) | uint64(chunk[i])
		}
		out = append(out, digit.Digit(acc))
	}
	return out
}

// fromInexactBitwiseDigits packs v (already reversed to least-significant
// digit value first) into Digits, bitsPerDigit bits at a time, for radices
// whose bitsPerDigit does not evenly divide a Digit's width (octal): digit
// values straddle Digit boundaries, so bits accumulate in a running register
// and spill over into the next Digit.
func fromInexactBitwiseDigits(v []uint8, bitsPerDigit uint) []digit.Digit {
	if len(v) == 0 {
		return []digit.Digit{digit.Zero}
	}
	var data []digit.Digit
	var d uint64
	var dbits uint
	for _, c := range v {
		d |= uint64(c) << dbits
		dbits += bitsPerDigit
		if dbits >= digit.Bits {
			data = append(data, digit.Digit(d))
			dbits -= digit.Bits
			d = uint64(c) >> (bitsPerDigit - dbits)
		}
	}
	if dbits > 0 {
		data = append(data, digit.Digit(d))
	}
	return data
}

// fromRadixDigitsChunked reads values (big-endian digit values, not
// reversed) in a non-power-of-two radix by splitting off a head chunk of
// len(values) mod power digits (or power, if that's zero), folding it into
// the initial magnitude, then repeatedly multiplying the running magnitude
// by radixBase and adding each subsequent power-sized chunk's value.
func fromRadixDigitsChunked(values []uint8, r radix.Radix) []digit.Digit {
	base, power := r.Base()
	radixVal := uint64(r.Value())

	estBits := uint64(lb2To36I3F13[r.Value()-2]) * uint64(len(values)+1) >> 13
	capacity := int(estBits/digit.Bits) + 1

	headLen := len(values) % power
	if headLen == 0 {
		headLen = power
	}
	if headLen > len(values) {
		headLen = len(values)
	}
	head, tail := values[:headLen], values[headLen:]

	var first uint64
	for _, d := range head {
		first = first*radixVal + uint64(d)
	}

	data := make([]uint64, 1, capacity)
	data[0] = first

	for i := 0; i < len(tail); i += power {
		end := i + power
		if end > len(tail) {
			end = len(tail)
		}
		chunk := tail[i:end]
		var chunkVal uint64
		for _, d := range chunk {
			chunkVal = chunkVal*radixVal + uint64(d)
		}
		data = mulAddSmall(data, base, chunkVal)
	}

	out := make([]digit.Digit, len(data))
	for i, w := range data {
		out[i] = digit.Digit(w)
	}
	return out
}

// mulAddSmall multiplies the little-endian magnitude data by mul and adds
// add, growing data by one word if the final carry doesn't fit.
func mulAddSmall(data []uint64, mul, add uint64) []uint64 {
	carry := add
	for i := range data {
		hi, lo := bits.Mul64(data[i], mul)
		var c uint64
		lo, c = bits.Add64(lo, carry, 0)
		hi += c
		data[i] = lo
		carry = hi
	}
	if carry != 0 {
		data = append(data, carry)
	}
	return data
}

// magnitudeBitLength returns the number of bits needed to hold ds, i.e. the
// position of its highest set bit plus one, or 0 if ds is entirely zero.
func magnitudeBitLength(ds []digit.Digit) uint {
	for i := len(ds) - 1; i >= 0; i-- {
		if !ds[i].IsZero() {
			return uint(i)*digit.Bits + uint(digit.Bits-ds[i].LeadingZeros())
		}
	}
	return 0
}

// intFromMagnitude builds an Int of width w from a little-endian magnitude
// slice, which may be shorter or longer than w's required digit count; the
// caller is responsible for having checked the magnitude actually fits w.
func intFromMagnitude(w bitwidth.BitWidth, mag []digit.Digit) Int {
	a := Zero(w)
	if w.Storage() == bitwidth.Inline {
		if len(mag) > 0 {
			a.inline = mag[0]
		}
	} else {
		copy(a.ext, mag)
	}
	a.clearUnusedBits()
	return a
}
