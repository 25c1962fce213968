package helix_test

import (
	"errors"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/minminlittleshrimp/helix/analyzer"
	"github.com/minminlittleshrimp/helix/helix"
	"github.com/minminlittleshrimp/helix/symbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCodec(t *testing.T, maxRun int, epsilon float64, ec bool) *helix.Codec {
	t.Helper()
	c, err := helix.New(helix.Options{MaxRun: maxRun, Epsilon: epsilon, ErrorDetection: ec})
	require.NoError(t, err)

	return c
}

// checkCodeword asserts the two constraints on an encoded sequence: the
// runlength bound always, the GC window once the length admits it.
func checkCodeword(t *testing.T, dna string, maxRun int, epsilon float64) {
	t.Helper()
	q, err := symbol.DNAToQuat(dna)
	require.NoError(t, err)
	assert.LessOrEqual(t, analyzer.MaxRunLength(q), maxRun, "homopolymer bound broken in %s", dna)
	if len(q) >= int(math.Ceil(1/(2*epsilon))) {
		dev := analyzer.GCRatio(q) - 0.5
		assert.LessOrEqual(t, math.Abs(dev), epsilon+1e-9, "GC window broken in %s", dna)
	}
}

// TestNew_BadParams verifies the parameter taxonomy.
func TestNew_BadParams(t *testing.T) {
	_, err := helix.New(helix.Options{MaxRun: 1, Epsilon: 0.05})
	assert.ErrorIs(t, err, helix.ErrParam)
	_, err = helix.New(helix.Options{MaxRun: 3, Epsilon: 0})
	assert.ErrorIs(t, err, helix.ErrParam)
	_, err = helix.New(helix.Options{MaxRun: 3, Epsilon: 0.5})
	assert.ErrorIs(t, err, helix.ErrParam)
}

// TestEncode_BadInput verifies the input taxonomy.
func TestEncode_BadInput(t *testing.T) {
	c := newCodec(t, 3, 0.05, true)

	_, err := c.Encode("101")
	assert.ErrorIs(t, err, symbol.ErrBadLength)

	_, err = c.Encode("10x1")
	assert.ErrorIs(t, err, symbol.ErrBadAlphabet)

	_, err = c.Decode("ATXG")
	assert.ErrorIs(t, err, symbol.ErrBadAlphabet)
}

// TestRoundTrip_Scenario1 is the canonical worked example: 11010011
// under ℓ=3, ε=0.05 with detection on.
func TestRoundTrip_Scenario1(t *testing.T) {
	c := newCodec(t, 3, 0.05, true)

	dna, err := c.Encode("11010011")
	require.NoError(t, err)
	checkCodeword(t, dna, 3, 0.05)

	bits, err := c.Decode(dna)
	require.NoError(t, err)
	assert.Equal(t, "11010011", bits)
}

// TestRoundTrip_AllZeros forces the runlength stage to excise a window:
// four zero symbols differentiate to four zeros.
func TestRoundTrip_AllZeros(t *testing.T) {
	c := newCodec(t, 3, 0.05, true)

	dna, err := c.Encode("00000000")
	require.NoError(t, err)
	checkCodeword(t, dna, 3, 0.05)

	bits, err := c.Decode(dna)
	require.NoError(t, err)
	assert.Equal(t, "00000000", bits)
}

// TestRoundTrip_Alternating encodes "01"×16; the differential leaves a
// long zero run that the runlength stage must rewrite repeatedly.
func TestRoundTrip_Alternating(t *testing.T) {
	c := newCodec(t, 3, 0.05, true)

	bits := strings.Repeat("01", 16)
	dna, err := c.Encode(bits)
	require.NoError(t, err)
	checkCodeword(t, dna, 3, 0.05)

	back, err := c.Decode(dna)
	require.NoError(t, err)
	assert.Equal(t, bits, back)
}

// TestRoundTrip_Empty encodes the empty payload to the empty codeword.
func TestRoundTrip_Empty(t *testing.T) {
	c := newCodec(t, 3, 0.05, true)

	dna, err := c.Encode("")
	require.NoError(t, err)
	assert.Empty(t, dna)

	bits, err := c.Decode("")
	require.NoError(t, err)
	assert.Empty(t, bits)
}

// TestRoundTrip_TightParams exercises ℓ=2, ε=0.1 per the parameter edge
// scenario.
func TestRoundTrip_TightParams(t *testing.T) {
	c := newCodec(t, 2, 0.1, true)

	dna, err := c.Encode("11110000")
	require.NoError(t, err)
	checkCodeword(t, dna, 2, 0.1)

	bits, err := c.Decode(dna)
	require.NoError(t, err)
	assert.Equal(t, "11110000", bits)
}

// TestRoundTrip_Exhaustive sweeps every even-length bitstring up to ten
// bits under both parameter sets and both detection modes.
func TestRoundTrip_Exhaustive(t *testing.T) {
	type params struct {
		maxRun  int
		epsilon float64
		ec      bool
	}
	for _, p := range []params{
		{3, 0.05, true},
		{3, 0.05, false},
		{2, 0.1, true},
	} {
		c := newCodec(t, p.maxRun, p.epsilon, p.ec)
		for n := 2; n <= 10; n += 2 {
			for v := 0; v < 1<<n; v++ {
				bits := make([]byte, n)
				for i := 0; i < n; i++ {
					bits[i] = '0' + byte(v>>i&1)
				}
				in := string(bits)

				dna, err := c.Encode(in)
				require.NoError(t, err, "params=%+v bits=%s", p, in)
				checkCodeword(t, dna, p.maxRun, p.epsilon)

				back, err := c.Decode(dna)
				require.NoError(t, err, "params=%+v bits=%s dna=%s", p, in, dna)
				require.Equal(t, in, back, "params=%+v dna=%s", p, dna)
			}
		}
	}
}

// TestRoundTrip_LongRandom round-trips longer random payloads and checks
// both constraints on every output.
func TestRoundTrip_LongRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, ec := range []bool{true, false} {
		c := newCodec(t, 3, 0.05, ec)
		for trial := 0; trial < 200; trial++ {
			n := 2 * (1 + rng.Intn(128))
			bits := make([]byte, n)
			for i := range bits {
				bits[i] = '0' + byte(rng.Intn(2))
			}
			in := string(bits)

			dna, err := c.Encode(in)
			require.NoError(t, err, "bits=%s", in)
			checkCodeword(t, dna, 3, 0.05)

			back, err := c.Decode(dna)
			require.NoError(t, err, "bits=%s dna=%s", in, dna)
			require.Equal(t, in, back)
		}
	}
}

// TestDecode_DetectsEverySubstitution flips every position of a codeword
// to every other nucleotide: the VT pair or a structural check must trip
// each time, and decoding the pristine codeword must stay clean.
func TestDecode_DetectsEverySubstitution(t *testing.T) {
	c := newCodec(t, 3, 0.05, true)

	for _, in := range []string{"11010011", "00000000", strings.Repeat("01", 16)} {
		dna, err := c.Encode(in)
		require.NoError(t, err)

		_, err = c.Decode(dna)
		require.NoError(t, err, "pristine codeword must decode cleanly")

		for i := 0; i < len(dna); i++ {
			for _, nt := range "ATCG" {
				if byte(nt) == dna[i] {
					continue
				}
				mut := dna[:i] + string(nt) + dna[i+1:]
				_, err := c.Decode(mut)
				assert.ErrorIs(t, err, helix.ErrDetected, "substitution %c at %d in %s", nt, i, dna)
			}
		}
	}
}

// TestDecode_LengthEdits inserts and deletes one nucleotide at every
// position: the corruption must never silently decode to the original.
func TestDecode_LengthEdits(t *testing.T) {
	c := newCodec(t, 3, 0.05, true)

	in := "1101001110010110"
	dna, err := c.Encode(in)
	require.NoError(t, err)

	for i := 0; i <= len(dna); i++ {
		for _, nt := range "ATCG" {
			mut := dna[:i] + string(nt) + dna[i:]
			back, err := c.Decode(mut)
			assert.True(t, err != nil || back != in, "insertion %c at %d went unnoticed", nt, i)
		}
		if i < len(dna) {
			mut := dna[:i] + dna[i+1:]
			back, err := c.Decode(mut)
			assert.True(t, err != nil || back != in, "deletion at %d went unnoticed", i)
		}
	}
}

// TestDecode_TruncatedFrame verifies the frame arithmetic rejects
// lengths no codeword can have.
func TestDecode_TruncatedFrame(t *testing.T) {
	noEC := newCodec(t, 3, 0.05, false)
	_, err := noEC.Decode("AT")
	assert.ErrorIs(t, err, helix.ErrBadFrame)

	withEC := newCodec(t, 3, 0.05, true)
	_, err = withEC.Decode("ATC")
	assert.ErrorIs(t, err, helix.ErrDetected, "with detection on, an impossible length is a detected edit")
}

// TestDetectedError_Report verifies the report carries a kind and matches
// the sentinel through errors.Is.
func TestDetectedError_Report(t *testing.T) {
	c := newCodec(t, 3, 0.05, true)

	dna, err := c.Encode("11010011")
	require.NoError(t, err)

	// Substitute inside the body: bits may still come back, the report
	// must name a substitution.
	mut := []byte(dna)
	if mut[0] == 'A' {
		mut[0] = 'T'
	} else {
		mut[0] = 'A'
	}
	_, err = c.Decode(string(mut))
	require.Error(t, err)

	var det *helix.DetectedError
	require.True(t, errors.As(err, &det))
	assert.Equal(t, "substitution", det.Kind.String())
}

// TestVerifyRoundTrip covers the convenience surface.
func TestVerifyRoundTrip(t *testing.T) {
	c := newCodec(t, 3, 0.05, true)

	ok, err := c.VerifyRoundTrip("100100011010")
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestEncodeWithAnalysis attaches a valid report to the codeword.
func TestEncodeWithAnalysis(t *testing.T) {
	c := newCodec(t, 3, 0.05, true)

	out, err := c.EncodeWithAnalysis("10101010")
	require.NoError(t, err)
	assert.Equal(t, "10101010", out.Bits)
	assert.Equal(t, len(out.DNA), out.Report.Length)
	assert.True(t, out.Report.RunOK)
}
