// Package symbol defines the quaternary pivot type shared by every HELIX
// transform, the fixed bit↔symbol↔nucleotide bijections, and the GC flip
// involution used by the balancing and suffix machinery.
package symbol

import (
	"errors"

	"github.com/cznic/mathutil"
)

// Sentinel errors for alphabet conversions.
var (
	// ErrBadLength indicates a bitstring whose length is not even.
	ErrBadLength = errors.New("symbol: bitstring length must be even")
	// ErrBadAlphabet indicates a character outside the expected alphabet.
	ErrBadAlphabet = errors.New("symbol: character outside alphabet")
	// ErrPairing indicates an interleaved digit sequence whose pairs are not
	// of the form (digit, Flip(digit)).
	ErrPairing = errors.New("symbol: interleaved pair is not (digit, flip)")
)

// Symbol is a quaternary symbol in {0,1,2,3}. Under the nucleotide mapping
// 0↔A, 1↔T, 2↔C, 3↔G; symbols 2 and 3 are the GC class.
type Symbol uint8

// Nucleotide bytes in symbol order: nucleotides[s] is the base for s.
var nucleotides = [4]byte{'A', 'T', 'C', 'G'}

// Flip is the GC involution f: 0↔2, 1↔3. Flipping a symbol toggles its
// GC-class membership and Flip(Flip(s)) == s.
func Flip(s Symbol) Symbol { return s ^ 2 }

// IsGC reports whether s belongs to the GC class {2,3} (bases C and G).
func IsGC(s Symbol) bool { return s&2 != 0 }

// GCCount returns the number of GC-class symbols in q.
func GCCount(q []Symbol) int {
	var n int
	for _, s := range q {
		if IsGC(s) {
			n++
		}
	}

	return n
}

// DigitWidth returns the number of base-4 digits needed to represent v,
// with a minimum of one digit for v == 0.
func DigitWidth(v uint64) int {
	if v == 0 {
		return 1
	}
	bits := mathutil.Log2Uint64(v) + 1

	return (bits + 1) / 2
}

// Digits writes v as exactly width base-4 digits, most significant first.
// The caller must pick width large enough; high digits beyond v are zero.
func Digits(v uint64, width int) []Symbol {
	d := make([]Symbol, width)
	for i := width - 1; i >= 0; i-- {
		d[i] = Symbol(v & 3)
		v >>= 2
	}

	return d
}

// Value folds base-4 digits (most significant first) back into an integer.
func Value(digits []Symbol) uint64 {
	var v uint64
	for _, d := range digits {
		v = v<<2 | uint64(d&3)
	}

	return v
}

// Interleave expands digits into the self-balanced pair form
// (d₀, Flip(d₀), d₁, Flip(d₁), …). Each pair contributes exactly one
// GC-class symbol, so the result never shifts GC content away from ½.
func Interleave(digits []Symbol) []Symbol {
	out := make([]Symbol, 0, 2*len(digits))
	for _, d := range digits {
		out = append(out, d, Flip(d))
	}

	return out
}

// Deinterleave validates the (digit, Flip(digit)) pairing and returns the
// even-indexed digits. It fails with ErrPairing on odd length or on any
// pair whose second element is not the flip of the first.
func Deinterleave(pairs []Symbol) ([]Symbol, error) {
	if len(pairs)%2 != 0 {
		return nil, ErrPairing
	}
	out := make([]Symbol, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		if pairs[i+1] != Flip(pairs[i]) {
			return nil, ErrPairing
		}
		out = append(out, pairs[i])
	}

	return out, nil
}
