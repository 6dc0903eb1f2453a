package fixedint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segmentio/fixedint/bitwidth"
)

func Test_Shl_zeroIsIdentity(t *testing.T) {
	a := FromU32(12345)
	b := a.Clone()
	require.NoError(t, b.Shl(NewShiftAmount(0)))
	assert.True(t, a.Equal(b))
}

func Test_Shl_atWidthIsRejected(t *testing.T) {
	a := FromU32(1)
	err := a.Shl(NewShiftAmount(32))
	assert.Error(t, err)
}

func Test_Shl_inline(t *testing.T) {
	a := FromU8(0b0000_0001)
	require.NoError(t, a.Shl(NewShiftAmount(3)))
	assert.Equal(t, "1000", a.FormatBinary())
}

func Test_Shl_external_crossesDigitBoundary(t *testing.T) {
	a := One(bitwidth.MustNew(128))
	require.NoError(t, a.Shl(NewShiftAmount(64)))
	assert.Equal(t, "1"+zeros(64), a.FormatBinary())
}

func Test_Lshr_undoesShl(t *testing.T) {
	for _, width := range []uint{8, 64, 128, 200} {
		w := bitwidth.MustNew(width)
		a := AllSet(w)
		s := NewShiftAmount(3)

		shifted := a.Clone()
		require.NoError(t, shifted.Shl(s))
		require.NoError(t, shifted.Lshr(s))

		expect := AllSet(w)
		require.NoError(t, expect.Lshr(NewShiftAmount(3)))
		assert.True(t, expect.Equal(shifted), "width=%d", width)
	}
}

func Test_Ashr_signExtends(t *testing.T) {
	a := SignedMin(bitwidth.MustNew(8))
	require.NoError(t, a.Ashr(NewShiftAmount(1)))
	assert.Equal(t, "11000000", a.FormatBinary())
}

func Test_Ashr_external_signExtends(t *testing.T) {
	a := SignedMin(bitwidth.MustNew(128))
	require.NoError(t, a.Ashr(NewShiftAmount(64)))
	assert.Equal(t, strings.Repeat("1", 65)+strings.Repeat("0", 63), a.FormatBinary())
}

func zeros(n int) string {
	s := make([]byte, n)
	for i := range s {
		s[i] = '0'
	}
	return string(s)
}
