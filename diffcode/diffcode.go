// Package diffcode implements the first-difference transform modulo 4.
//
// Under the transform, maximal runs of identical symbols in the input
// become runs of zeros in the output, so the run-length stage downstream
// only has to police the single substring of consecutive zeros rather
// than four distinct homopolymers.
//
//	Encode: y[0] = x[0];  y[i] = (x[i] − x[i−1]) mod 4
//	Decode: x[0] = y[0];  x[i] = (x[i−1] + y[i]) mod 4
//
// Both directions are linear single passes, length-preserving, and exact
// inverses of each other on sequences of any length.
package diffcode

import "github.com/minminlittleshrimp/helix/symbol"

// Encode applies the first-difference transform. The empty sequence maps
// to an empty sequence; the input is never mutated.
func Encode(x []symbol.Symbol) []symbol.Symbol {
	if len(x) == 0 {
		return nil
	}
	y := make([]symbol.Symbol, len(x))
	y[0] = x[0]
	for i := 1; i < len(x); i++ {
		y[i] = (x[i] - x[i-1]) & 3
	}

	return y
}

// Decode integrates a differential sequence back to the original.
func Decode(y []symbol.Symbol) []symbol.Symbol {
	if len(y) == 0 {
		return nil
	}
	x := make([]symbol.Symbol, len(y))
	x[0] = y[0]
	for i := 1; i < len(y); i++ {
		x[i] = (x[i-1] + y[i]) & 3
	}

	return x
}
