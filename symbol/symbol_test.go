package symbol_test

import (
	"testing"

	"github.com/minminlittleshrimp/helix/symbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBitsToQuat_Basic checks the bit-pair grouping against hand values.
func TestBitsToQuat_Basic(t *testing.T) {
	q, err := symbol.BitsToQuat("11010011")
	require.NoError(t, err)
	assert.Equal(t, []symbol.Symbol{3, 1, 0, 3}, q, "pairs (MSB,LSB) must map to 2·MSB+LSB")
}

// TestBitsToQuat_OddLength verifies ErrBadLength on odd input.
func TestBitsToQuat_OddLength(t *testing.T) {
	_, err := symbol.BitsToQuat("101")
	assert.ErrorIs(t, err, symbol.ErrBadLength)
}

// TestBitsToQuat_BadChar verifies ErrBadAlphabet on non-binary characters.
func TestBitsToQuat_BadChar(t *testing.T) {
	_, err := symbol.BitsToQuat("1x")
	assert.ErrorIs(t, err, symbol.ErrBadAlphabet)
}

// TestQuatToBits_Inverse verifies the round trip preserves leading zeros.
func TestQuatToBits_Inverse(t *testing.T) {
	bits := "00011011"
	q, err := symbol.BitsToQuat(bits)
	require.NoError(t, err)
	assert.Equal(t, bits, symbol.QuatToBits(q), "2·|q| bits, leading zeros intact")
}

// TestDNA_Mapping checks both directions of the fixed nucleotide bijection.
func TestDNA_Mapping(t *testing.T) {
	q := []symbol.Symbol{0, 1, 2, 3}
	assert.Equal(t, "ATCG", symbol.QuatToDNA(q))

	back, err := symbol.DNAToQuat("atcg")
	require.NoError(t, err, "lower case must be accepted")
	assert.Equal(t, q, back)

	_, err = symbol.DNAToQuat("ATCN")
	assert.ErrorIs(t, err, symbol.ErrBadAlphabet)
}

// TestFlip_Involution verifies f(f(c)) = c and the GC-class toggle for all
// four symbols.
func TestFlip_Involution(t *testing.T) {
	for s := symbol.Symbol(0); s < 4; s++ {
		assert.Equal(t, s, symbol.Flip(symbol.Flip(s)), "flip must be an involution")
		assert.NotEqual(t, symbol.IsGC(s), symbol.IsGC(symbol.Flip(s)), "flip must toggle GC membership")
	}
	assert.Equal(t, symbol.Symbol(2), symbol.Flip(0))
	assert.Equal(t, symbol.Symbol(3), symbol.Flip(1))
}

// TestDigits_RoundTrip checks fixed-width base-4 digit packing.
func TestDigits_RoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 3, 4, 17, 255, 1000} {
		w := symbol.DigitWidth(v)
		d := symbol.Digits(v, w)
		assert.Len(t, d, w)
		assert.Equal(t, v, symbol.Value(d), "digits must fold back to v")
	}
	assert.Equal(t, 1, symbol.DigitWidth(0))
	assert.Equal(t, 1, symbol.DigitWidth(3))
	assert.Equal(t, 2, symbol.DigitWidth(4))
	assert.Equal(t, 3, symbol.DigitWidth(17))
}

// TestInterleave_RoundTrip verifies pairing and its validation.
func TestInterleave_RoundTrip(t *testing.T) {
	digits := []symbol.Symbol{0, 3, 2, 1}
	pairs := symbol.Interleave(digits)
	assert.Equal(t, []symbol.Symbol{0, 2, 3, 1, 2, 0, 1, 3}, pairs)
	assert.Equal(t, len(pairs)/2, symbol.GCCount(pairs), "interleaved suffix is exactly half GC")

	back, err := symbol.Deinterleave(pairs)
	require.NoError(t, err)
	assert.Equal(t, digits, back)

	pairs[1] = pairs[0] // break one pair
	_, err = symbol.Deinterleave(pairs)
	assert.ErrorIs(t, err, symbol.ErrPairing)

	_, err = symbol.Deinterleave(pairs[:3])
	assert.ErrorIs(t, err, symbol.ErrPairing, "odd length must fail")
}
