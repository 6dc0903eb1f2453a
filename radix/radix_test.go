package radix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segmentio/fixedint/errs"
)

func Test_New_bounds(t *testing.T) {
	_, err := New(1)
	require.Error(t, err)
	var e *errs.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errs.InvalidRadix, e.Kind)

	_, err = New(37)
	require.Error(t, err)

	_, err = New(2)
	require.NoError(t, err)

	_, err = New(36)
	require.NoError(t, err)
}

func Test_IsPowerOfTwo(t *testing.T) {
	tests := []struct {
		r    uint8
		want bool
	}{
		{2, true},
		{4, true},
		{8, true},
		{16, true},
		{32, true},
		{3, false},
		{10, false},
		{36, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MustNew(tt.r).IsPowerOfTwo(), "r == %d", tt.r)
	}
}

func Test_BitsPerDigit(t *testing.T) {
	assert.Equal(t, uint(1), Binary.BitsPerDigit())
	assert.Equal(t, uint(3), Octal.BitsPerDigit())
	assert.Equal(t, uint(4), Hex.BitsPerDigit())
	assert.Equal(t, uint(5), MustNew(32).BitsPerDigit())
}

func Test_BitsPerDigit_panicsOnNonPowerOfTwo(t *testing.T) {
	assert.Panics(t, func() {
		Decimal.BitsPerDigit()
	})
}

func Test_IsValidByte(t *testing.T) {
	assert.True(t, Decimal.IsValidByte(9))
	assert.False(t, Decimal.IsValidByte(10))
	assert.True(t, Hex.IsValidByte(15))
	assert.False(t, Hex.IsValidByte(16))
}

func Test_Base(t *testing.T) {
	base, power := Decimal.Base()
	assert.Equal(t, uint64(10000000000000000000), base)
	assert.Equal(t, 19, power)

	base, power = Binary.Base()
	assert.Equal(t, uint64(1)<<63, base)
	assert.Equal(t, 63, power)
}
