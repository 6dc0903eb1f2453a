package fixedint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ceilDiv(t *testing.T) {
	assert.Equal(t, 0, ceilDiv(0, 8))
	assert.Equal(t, 1, ceilDiv(1, 8))
	assert.Equal(t, 1, ceilDiv(7, 8))
	assert.Equal(t, 1, ceilDiv(8, 8))
	assert.Equal(t, 2, ceilDiv(9, 8))
	assert.Equal(t, 8, ceilDiv(64, 8))
	assert.Equal(t, 9, ceilDiv(65, 8))
}

func Test_asciiDigitValue(t *testing.T) {
	tests := []struct {
		b     byte
		value uint8
		ok    bool
	}{
		{'0', 0, true},
		{'9', 9, true},
		{'a', 10, true},
		{'z', 35, true},
		{'A', 10, true},
		{'Z', 35, true},
		{'_', 0, false},
		{'!', 0, false},
	}
	for _, tt := range tests {
		value, ok := asciiDigitValue(tt.b)
		assert.Equal(t, tt.ok, ok, "b == %q", tt.b)
		if ok {
			assert.Equal(t, tt.value, value, "b == %q", tt.b)
		}
	}
}

func Test_reverseBytes(t *testing.T) {
	s := []uint8{1, 2, 3, 4, 5}
	reverseBytes(s)
	assert.Equal(t, []uint8{5, 4, 3, 2, 1}, s)

	s = []uint8{}
	reverseBytes(s)
	assert.Equal(t, []uint8{}, s)

	s = []uint8{1}
	reverseBytes(s)
	assert.Equal(t, []uint8{1}, s)
}
