// Package helix: codec options, documented defaults, and sentinel errors.
package helix

import (
	"errors"
	"fmt"

	"github.com/minminlittleshrimp/helix/vt"
)

// Defaults - single source of truth for DefaultOptions and the CLI flags.
// New does not fill in zero fields: a zero MaxRun or Epsilon is rejected.
const (
	// DefaultMaxRun is the homopolymer limit ℓ of DefaultOptions.
	DefaultMaxRun = 3

	// DefaultEpsilon is the GC tolerance ε of DefaultOptions.
	DefaultEpsilon = 0.05
)

// Sentinel errors for the codec driver.
var (
	// ErrParam indicates invalid codec parameters (ℓ < 2 or ε ∉ (0,½)).
	ErrParam = errors.New("helix: invalid codec parameters")
	// ErrBadFrame indicates a received sequence whose length or glue
	// structure matches no codeword frame.
	ErrBadFrame = errors.New("helix: sequence does not parse as a codeword frame")
	// ErrDetected reports a single-edit error found while decoding with
	// error detection on, by the VT pair or by a frame, glue or suffix
	// check. It is a report, not a failure: when the rest of the codeword
	// still parses,
	// Decode returns the recovered bits alongside this error and the
	// caller decides.
	ErrDetected = errors.New("helix: error detected in received codeword")
)

// Options configures a Codec.
//
// Fields:
//   - MaxRun         — homopolymer limit ℓ ≥ 2; no ℓ+1 identical
//     nucleotides ever appear in a codeword.
//   - Epsilon        — GC tolerance ε ∈ (0, ½); codewords long enough to
//     admit it keep their GC fraction inside [½−ε, ½+ε].
//   - ErrorDetection — attach the VT syndrome/checksum suffix and verify
//     it on decode.
type Options struct {
	MaxRun         int
	Epsilon        float64
	ErrorDetection bool
}

// DefaultOptions returns the canonical configuration: ℓ=3, ε=0.05,
// error detection on.
func DefaultOptions() Options {
	return Options{
		MaxRun:         DefaultMaxRun,
		Epsilon:        DefaultEpsilon,
		ErrorDetection: true,
	}
}

// validateOptions rejects parameter combinations up front so every later
// stage can assume a sane configuration.
func validateOptions(o Options) error {
	if o.MaxRun < 2 {
		return fmt.Errorf("%w: MaxRun %d, need at least 2", ErrParam, o.MaxRun)
	}
	if o.Epsilon <= 0 || o.Epsilon >= 0.5 {
		return fmt.Errorf("%w: Epsilon %v, need 0 < ε < 0.5", ErrParam, o.Epsilon)
	}

	return nil
}

// DetectedError carries the inferred kind of a detected single edit and,
// when the edit also broke a structural layer, the underlying cause.
type DetectedError struct {
	Kind  vt.EditKind
	Cause error
}

// Error renders the report.
func (e *DetectedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("helix: error detected (%s): %v", e.Kind, e.Cause)
	}

	return fmt.Sprintf("helix: error detected (%s)", e.Kind)
}

// Is matches the ErrDetected sentinel so callers can use errors.Is.
func (e *DetectedError) Is(target error) bool { return target == ErrDetected }

// Unwrap exposes the structural cause, if any.
func (e *DetectedError) Unwrap() error { return e.Cause }
