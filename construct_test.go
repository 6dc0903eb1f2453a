package fixedint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segmentio/fixedint/bitwidth"
)

func Test_Zero_inlineAndExternal(t *testing.T) {
	a := Zero(bitwidth.MustNew(32))
	assert.True(t, a.IsZero())
	assert.Equal(t, uint(32), a.Width().Value())

	b := Zero(bitwidth.MustNew(128))
	assert.True(t, b.IsZero())
	assert.Equal(t, uint(128), b.Width().Value())
}

func Test_One(t *testing.T) {
	a := One(bitwidth.MustNew(8))
	assert.False(t, a.IsZero())
	assert.Equal(t, "1", a.FormatDecimal())

	b := One(bitwidth.MustNew(128))
	assert.Equal(t, "1", b.FormatDecimal())
}

func Test_AllSet(t *testing.T) {
	a := AllSet(bitwidth.MustNew(32))
	assert.Equal(t, "FFFFFFFF", a.FormatUpperHex())

	b := AllSet(bitwidth.MustNew(4))
	assert.Equal(t, "f", b.FormatLowerHex())
}

func Test_SignedMinMax(t *testing.T) {
	min := SignedMin(bitwidth.MustNew(32))
	assert.Equal(t, "1"+strings.Repeat("0", 31), min.FormatBinary())

	max := SignedMax(bitwidth.MustNew(32))
	want := AllSet(bitwidth.MustNew(32))
	want.UnsetBit(31)
	assert.True(t, max.Equal(want))
}

func Test_FromUnsigned(t *testing.T) {
	require.Equal(t, uint(8), FromU8(0xFF).Width().Value())
	require.Equal(t, uint(16), FromU16(0xFFFF).Width().Value())
	require.Equal(t, uint(32), FromU32(0xFFFFFFFF).Width().Value())
	require.Equal(t, uint(64), FromU64(0xFFFFFFFFFFFFFFFF).Width().Value())

	assert.Equal(t, "255", FromU8(255).FormatDecimal())
	assert.Equal(t, "65535", FromU16(65535).FormatDecimal())
}

func Test_FromU128(t *testing.T) {
	v := FromU128(0xFEDCBA98, 0x0A1B7654ABCD0123)
	assert.Equal(t, uint(128), v.Width().Value())
	assert.Equal(t, "FEDCBA980A1B7654ABCD0123", v.FormatUpperHex())
}

func Test_FromSigned(t *testing.T) {
	neg1 := FromI8(-1)
	assert.Equal(t, "ff", neg1.FormatLowerHex())

	minVal := FromI8(-128)
	assert.True(t, minVal.Equal(SignedMin(bitwidth.MustNew(8))))
}

func Test_FromI128(t *testing.T) {
	v := FromI128(-1, 0xFFFFFFFFFFFFFFFF)
	assert.True(t, v.Equal(AllSet(bitwidth.MustNew(128))))
}
