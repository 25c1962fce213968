package diffcode_test

import (
	"testing"

	"github.com/minminlittleshrimp/helix/diffcode"
	"github.com/minminlittleshrimp/helix/symbol"
	"github.com/stretchr/testify/assert"
)

// TestEncode_RunsBecomeZeros checks the canonical example from the
// transform definition: repeats turn into zeros.
func TestEncode_RunsBecomeZeros(t *testing.T) {
	x := []symbol.Symbol{2, 2, 2, 3}
	y := diffcode.Encode(x)
	assert.Equal(t, []symbol.Symbol{2, 0, 0, 1}, y)
}

// TestDecode_Inverse verifies Decode(Encode(x)) == x on assorted inputs,
// including all-identical and wrap-around differences.
func TestDecode_Inverse(t *testing.T) {
	assert.Empty(t, diffcode.Encode(nil))
	assert.Empty(t, diffcode.Decode(nil))

	cases := [][]symbol.Symbol{
		{0},
		{2, 2, 2, 3},
		{0, 1, 2, 3},
		{3, 3, 3, 3},
		{1, 0, 3, 2, 1},
		{3, 0, 3, 0, 3, 0},
	}
	for _, x := range cases {
		y := diffcode.Encode(x)
		assert.Len(t, y, len(x), "transform must preserve length")
		assert.Equal(t, x, diffcode.Decode(y))
	}
}

// TestEncode_DoesNotMutate ensures the input slice is left untouched.
func TestEncode_DoesNotMutate(t *testing.T) {
	x := []symbol.Symbol{1, 1, 2}
	_ = diffcode.Encode(x)
	assert.Equal(t, []symbol.Symbol{1, 1, 2}, x)
}
