package fixedint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segmentio/fixedint/bitwidth"
	"github.com/segmentio/fixedint/errs"
	"github.com/segmentio/fixedint/radix"
)

func Test_Format_zeroIsAlwaysZero(t *testing.T) {
	z := Zero(bitwidth.MustNew(128))
	assert.Equal(t, "0", z.FormatBinary())
	assert.Equal(t, "0", z.FormatOctal())
	assert.Equal(t, "0", z.FormatLowerHex())
	assert.Equal(t, "0", z.FormatUpperHex())
	assert.Equal(t, "0", z.FormatDecimal())
}

func Test_Format_S5_upperHex128(t *testing.T) {
	v := FromU128(0xFEDCBA98, 0x0A1B7654ABCD0123)
	assert.Equal(t, "FEDCBA980A1B7654ABCD0123", v.FormatUpperHex())
}

func Test_Format_S7(t *testing.T) {
	min := SignedMin(bitwidth.MustNew(32))
	assert.Equal(t, "1"+zeros(31), min.FormatBinary())

	all := AllSet(bitwidth.MustNew(32))
	assert.Equal(t, "FFFFFFFF", all.FormatUpperHex())
}

func Test_Format_octal_partialTopDigit(t *testing.T) {
	// 10 bits all set = 0b11_1111_1111 = 0o1777; the top octal digit only
	// carries one meaningful bit since 10 isn't a multiple of 3.
	a := AllSet(bitwidth.MustNew(10))
	assert.Equal(t, "1777", a.FormatOctal())
}

func Test_Format_decimal(t *testing.T) {
	a := FromU32(123456789)
	assert.Equal(t, "123456789", a.FormatDecimal())

	big := FromU128(0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF)
	assert.Equal(t, "340282366920938463463374607431768211455", big.FormatDecimal())
}

func Test_FromStringRadix_S6_underscoreSeparators(t *testing.T) {
	v, err := FromStringRadix(radix.Binary, "1001_0011", nil)
	require.NoError(t, err)
	assert.True(t, v.Equal(FromU8(0b10010011)))
}

func Test_FromStringRadix_S6_valueExceedsBitWidth(t *testing.T) {
	w := bitwidth.MustNew(8)
	_, err := FromStringRadix(radix.Decimal, "256", &w)
	require.Error(t, err)
	var e *errs.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errs.ValueExceedsBitWidth, e.Kind)
}

func Test_FromStringRadix_rejectsEmpty(t *testing.T) {
	_, err := FromStringRadix(radix.Decimal, "", nil)
	require.Error(t, err)
	var e *errs.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errs.InvalidStringRepr, e.Kind)
}

func Test_FromStringRadix_rejectsLeadingTrailingUnderscore(t *testing.T) {
	_, err := FromStringRadix(radix.Decimal, "_1", nil)
	assert.Error(t, err)
	_, err = FromStringRadix(radix.Decimal, "1_", nil)
	assert.Error(t, err)
}

func Test_FromStringRadix_invalidChar(t *testing.T) {
	_, err := FromStringRadix(radix.Binary, "102", nil)
	require.Error(t, err)
	var e *errs.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errs.InvalidCharInStringRepr, e.Kind)
	assert.Equal(t, uint(2), e.Position)
}

func Test_FromStringRadix_inferredWidth(t *testing.T) {
	v, err := FromStringRadix(radix.Decimal, "5", nil)
	require.NoError(t, err)
	assert.Equal(t, uint(3), v.Width().Value())
}

func Test_FromStringRadix_octalInexactPacking(t *testing.T) {
	v, err := FromStringRadix(radix.Octal, "777", nil)
	require.NoError(t, err)
	assert.Equal(t, "777", v.FormatOctal())
}

func Test_FromStringRadix_isLeftInverseOfFormat(t *testing.T) {
	widths := []uint{1, 7, 8, 9, 32, 63, 64, 65, 96, 128, 200}
	radices := []radix.Radix{radix.Binary, radix.Octal, radix.Hex}

	for _, width := range widths {
		w := bitwidth.MustNew(width)
		for _, r := range radices {
			v := AllSet(w)
			s := v.formatWithAlphabet(r, lowerAlphabet)
			parsed, err := FromStringRadix(r, s, &w)
			require.NoError(t, err, "width=%d radix=%d", width, r.Value())
			assert.True(t, parsed.Equal(v), "width=%d radix=%d repr=%q", width, r.Value(), s)
		}
	}
}

func Test_FromStringRadix_decimalRoundTrip(t *testing.T) {
	w := bitwidth.MustNew(128)
	v := FromU128(0x0123456789ABCDEF, 0xFEDCBA9876543210)
	s := v.FormatDecimal()
	parsed, err := FromStringRadix(radix.Decimal, s, &w)
	require.NoError(t, err)
	assert.True(t, v.Equal(parsed))
}
