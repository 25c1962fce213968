package rll

import (
	"errors"

	"github.com/minminlittleshrimp/helix/symbol"
)

// Sentinel errors for run-length coding.
var (
	// ErrRunLimit indicates a limit below the smallest supported value.
	ErrRunLimit = errors.New("rll: runlength limit must be at least 2")
	// ErrBadRLL indicates a malformed encoded sequence: missing terminator,
	// truncated record digits, or a record position out of bounds.
	ErrBadRLL = errors.New("rll: malformed runlength-coded sequence")
)

// Record trailer symbols. Digits encode base-2 bits, delim closes a record.
const (
	digitZero = symbol.Symbol(1)
	digitOne  = symbol.Symbol(2)
	delim     = symbol.Symbol(3)
)

// Codec rewrites quaternary sequences so that no ℓ consecutive zeros
// remain. A Codec holds only its limit and is safe for concurrent use.
type Codec struct {
	ell int
}

// New returns a Codec with the given runlength limit ℓ ≥ 2.
func New(ell int) (*Codec, error) {
	if ell < 2 {
		return nil, ErrRunLimit
	}

	return &Codec{ell: ell}, nil
}

// Limit returns the configured runlength limit ℓ.
func (c *Codec) Limit() int { return c.ell }

// Encode rewrites y into a sequence with no window of ℓ consecutive zeros
// and reports whether a terminator was appended. The terminator is present
// exactly when y is non-empty; empty input passes through untouched so the
// caller can frame it as a zero-length codeword.
func (c *Codec) Encode(y []symbol.Symbol) (z []symbol.Symbol, termUsed bool) {
	if len(y) == 0 {
		return nil, false
	}

	out := make([]symbol.Symbol, 0, len(y)+1)
	var recs []uint64
	run := 0
	for _, s := range y {
		out = append(out, s)
		if s == 0 {
			run++
		} else {
			run = 0
		}
		if run == c.ell {
			// Excise the window; everything to its left is already clean.
			pos := len(out) - c.ell
			out = out[:pos]
			recs = append(recs, uint64(pos)<<1)
			run = 0
		}
	}

	out = append(out, 0) // terminator
	if run == c.ell-1 {
		// The terminator completed a forbidden window: excise the ℓ−1 data
		// zeros in front of it with a tail record.
		pos := len(out) - c.ell
		out = append(out[:pos], 0)
		recs = append(recs, uint64(pos)<<1|1)
	}

	for _, v := range recs {
		out = appendRecord(out, v)
	}

	return out, true
}

// Decode inverts Encode. With termUsed false the input is returned as a
// copy (the encoder never rewrote it); otherwise the record trailer is
// parsed, replayed last-to-first, and the terminator stripped.
func (c *Codec) Decode(z []symbol.Symbol, termUsed bool) ([]symbol.Symbol, error) {
	if !termUsed {
		return append([]symbol.Symbol{}, z...), nil
	}

	// The trailer is zero-free, so the boundary is the rightmost zero.
	b := len(z) - 1
	for b >= 0 && z[b] != 0 {
		b--
	}
	if b < 0 {
		return nil, ErrBadRLL
	}

	recs, err := parseRecords(z[b+1:])
	if err != nil {
		return nil, err
	}

	x := append([]symbol.Symbol(nil), z[:b+1]...)
	for i := len(recs) - 1; i >= 0; i-- {
		v := recs[i]
		if v>>1 > uint64(len(x)) {
			return nil, ErrBadRLL
		}
		pos, tail := int(v>>1), v&1 == 1
		width := c.ell
		if tail {
			if pos != len(x)-1 {
				return nil, ErrBadRLL
			}
			width = c.ell - 1
		} else if pos > len(x)-1 {
			return nil, ErrBadRLL
		}
		x = insertZeros(x, pos, width)
	}

	if len(x) == 0 || x[len(x)-1] != 0 {
		return nil, ErrBadRLL
	}

	return x[:len(x)-1], nil
}

// MaxZeroRun returns the length of the longest run of zeros in q.
func MaxZeroRun(q []symbol.Symbol) int {
	var best, run int
	for _, s := range q {
		if s == 0 {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}

	return best
}

// appendRecord writes v in base 2 over {digitZero, digitOne}, most
// significant bit first, closed by delim. v == 0 is the bare delimiter.
func appendRecord(z []symbol.Symbol, v uint64) []symbol.Symbol {
	var digs [64]symbol.Symbol
	n := 0
	for ; v > 0; v >>= 1 {
		d := digitZero
		if v&1 == 1 {
			d = digitOne
		}
		digs[n] = d
		n++
	}
	for i := n - 1; i >= 0; i-- {
		z = append(z, digs[i])
	}

	return append(z, delim)
}

// parseRecords reads the zero-free trailer left to right. Every record is
// a digit run closed by delim; pending digits at the end are malformed.
func parseRecords(trailer []symbol.Symbol) ([]uint64, error) {
	var recs []uint64
	var v uint64
	open := false
	for _, s := range trailer {
		switch s {
		case digitZero:
			v <<= 1
			open = true
		case digitOne:
			v = v<<1 | 1
			open = true
		case delim:
			recs = append(recs, v)
			v, open = 0, false
		default:
			return nil, ErrBadRLL
		}
	}
	if open {
		return nil, ErrBadRLL
	}

	return recs, nil
}

// insertZeros re-expands width zeros at position pos (0 ≤ pos ≤ len(x)).
func insertZeros(x []symbol.Symbol, pos, width int) []symbol.Symbol {
	out := make([]symbol.Symbol, 0, len(x)+width)
	out = append(out, x[:pos]...)
	for i := 0; i < width; i++ {
		out = append(out, 0)
	}

	return append(out, x[pos:]...)
}
