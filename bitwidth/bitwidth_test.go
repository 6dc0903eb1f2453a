package bitwidth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segmentio/fixedint/errs"
)

func Test_New_rejectsZero(t *testing.T) {
	_, err := New(0)
	require.Error(t, err)

	var e *errs.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errs.InvalidBitWidth, e.Kind)
}

func Test_New_valid(t *testing.T) {
	w, err := New(32)
	require.NoError(t, err)
	assert.Equal(t, uint(32), w.Value())
}

func Test_RequiredDigits(t *testing.T) {
	tests := []struct {
		n    uint
		want uint
	}{
		{1, 1},
		{63, 1},
		{64, 1},
		{65, 2},
		{128, 2},
		{129, 3},
	}
	for _, tt := range tests {
		w := MustNew(tt.n)
		assert.Equal(t, tt.want, w.RequiredDigits(), "n == %d", tt.n)
	}
}

func Test_ExcessBits(t *testing.T) {
	tests := []struct {
		n    uint
		want uint
	}{
		{1, 1},
		{63, 63},
		{64, 0},
		{65, 1},
		{128, 0},
		{129, 1},
	}
	for _, tt := range tests {
		w := MustNew(tt.n)
		assert.Equal(t, tt.want, w.ExcessBits(), "n == %d", tt.n)
	}
}

func Test_Storage(t *testing.T) {
	assert.Equal(t, Inline, MustNew(1).Storage())
	assert.Equal(t, Inline, MustNew(64).Storage())
	assert.Equal(t, External, MustNew(65).Storage())
	assert.Equal(t, External, MustNew(128).Storage())
}
