// Package vt computes the Varshamov–Tenengolts syndrome and checksum pair
// used to detect a single edit (substitution, insertion, or deletion) in a
// quaternary codeword. Detection only: localizing and repairing the edit
// is out of scope.
package vt

import (
	"errors"
	"fmt"

	"github.com/minminlittleshrimp/helix/symbol"
)

// ErrBadSuffix indicates an error-detection suffix that is not properly
// interleaved or has the wrong width.
var ErrBadSuffix = errors.New("vt: malformed error-detection suffix")

// Syndrome returns Σ i·x[i] mod 2n with 1-indexed positions; 0 for the
// empty sequence.
func Syndrome(x []symbol.Symbol) uint64 {
	n := uint64(len(x))
	if n == 0 {
		return 0
	}
	var s uint64
	for i, v := range x {
		s += uint64(i+1) * uint64(v)
	}

	return s % (2 * n)
}

// Checksum returns Σ x[i] mod 4.
func Checksum(x []symbol.Symbol) symbol.Symbol {
	var s uint64
	for _, v := range x {
		s += uint64(v)
	}

	return symbol.Symbol(s & 3)
}

// SyndromeWidth returns the base-4 digit count ⌈log₄(2n)⌉ that holds any
// syndrome of a length-n sequence. Width is a pure function of n, so the
// decoder derives it from the frame arithmetic.
func SyndromeWidth(n int) int {
	if n <= 0 {
		return 1
	}

	return symbol.DigitWidth(uint64(2*n - 1))
}

// Suffix computes the (syndrome, checksum) pair of x and renders it as a
// self-balanced interleaved suffix of 2·(SyndromeWidth(n)+1) symbols.
func Suffix(x []symbol.Symbol) []symbol.Symbol {
	digits := symbol.Digits(Syndrome(x), SyndromeWidth(len(x)))
	digits = append(digits, Checksum(x))

	return symbol.Interleave(digits)
}

// ParseSuffix validates the interleaving and splits the pair back out.
func ParseSuffix(suffix []symbol.Symbol) (syn uint64, chk symbol.Symbol, err error) {
	digits, err := symbol.Deinterleave(suffix)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrBadSuffix, err)
	}
	if len(digits) < 2 {
		return 0, 0, ErrBadSuffix
	}

	return symbol.Value(digits[:len(digits)-1]), digits[len(digits)-1], nil
}

// Verify recomputes the pair over x and compares it to the stored values.
func Verify(x []symbol.Symbol, syn uint64, chk symbol.Symbol) bool {
	return Syndrome(x) == syn && Checksum(x) == chk
}

// EditKind is the inferred class of a detected single edit.
type EditKind int

const (
	// EditNone: the stored and recomputed pairs agree.
	EditNone EditKind = iota
	// EditSubstitution: same length, checksum residue moved. A single
	// substituted symbol always shifts the checksum by a nonzero amount
	// mod 4, so this inference is exact for substitutions.
	EditSubstitution
	// EditIndel: checksum intact but syndrome moved, consistent with an
	// inserted or deleted symbol (a zero symbol leaves the checksum
	// untouched while shifting every position weight after it).
	EditIndel
	// EditUnknown: the residues moved in a way no single edit explains.
	EditUnknown
)

// String renders the kind for reports.
func (k EditKind) String() string {
	switch k {
	case EditNone:
		return "none"
	case EditSubstitution:
		return "substitution"
	case EditIndel:
		return "insertion-or-deletion"
	default:
		return "unknown"
	}
}

// Classify infers the edit kind from the recomputed pair of a received
// sequence against the stored pair. Heuristic beyond substitutions; the
// caller reports it as an annotation, never acts on it.
func Classify(x []symbol.Symbol, syn uint64, chk symbol.Symbol) EditKind {
	gotSyn, gotChk := Syndrome(x), Checksum(x)
	switch {
	case gotSyn == syn && gotChk == chk:
		return EditNone
	case gotChk != chk:
		return EditSubstitution
	case gotSyn != syn:
		return EditIndel
	default:
		return EditUnknown
	}
}
