package fixedint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/segmentio/fixedint/bitwidth"
)

func Test_Int_Width(t *testing.T) {
	assert.Equal(t, uint(17), Zero(bitwidth.MustNew(17)).Width().Value())
}

func Test_Int_IsZero(t *testing.T) {
	assert.True(t, Zero(bitwidth.MustNew(128)).IsZero())
	assert.False(t, One(bitwidth.MustNew(128)).IsZero())
	assert.True(t, Zero(bitwidth.MustNew(8)).IsZero())
	assert.False(t, One(bitwidth.MustNew(8)).IsZero())
}

func Test_Int_Equal(t *testing.T) {
	a := FromU32(42)
	b := FromU32(42)
	c := FromU32(43)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	wide := FromU64(42)
	assert.False(t, a.Equal(wide), "different widths are never equal")
}

func Test_Int_Clone_isIndependentForExternalStorage(t *testing.T) {
	a := FromU128(0, 42)
	b := a.Clone()
	assert.True(t, a.Equal(b))

	one := One(bitwidth.MustNew(128))
	err := a.CheckedAddAssign(&one)
	assert.NoError(t, err)
	assert.False(t, a.Equal(b), "mutating the clone's source must not affect the clone")
}

func Test_Int_Bit(t *testing.T) {
	a := FromU8(0b0000_0101)
	bit0, err := a.Bit(0)
	assert.NoError(t, err)
	assert.True(t, bit0)

	bit1, err := a.Bit(1)
	assert.NoError(t, err)
	assert.False(t, bit1)

	_, err = a.Bit(8)
	assert.Error(t, err)
}
