package gcbal

import (
	"github.com/minminlittleshrimp/helix/symbol"
)

// SuffixWidth returns the digit count k = ⌈log₄(n+1)⌉ of the index suffix
// for a body of length n, one digit at minimum; the wire suffix is 2·k symbols after
// interleaving. The width depends only on n, so the decoder recomputes it
// from the frame arithmetic without any side channel.
func SuffixWidth(n int) int {
	if n <= 0 {
		return 1
	}

	return symbol.DigitWidth(uint64(n))
}

// IndexSuffix encodes the flip index t for a body of length n as the
// self-balanced interleaved suffix (t₀, f(t₀), t₁, f(t₁), …) with digits
// most significant first.
func (b *Balancer) IndexSuffix(t, n int) []symbol.Symbol {
	return symbol.Interleave(symbol.Digits(uint64(t), SuffixWidth(n)))
}

// DecodeIndexSuffix validates the interleaving and recovers t. Fails with
// ErrBadSuffix on a broken pair or odd length.
func (b *Balancer) DecodeIndexSuffix(suffix []symbol.Symbol) (int, error) {
	digits, err := symbol.Deinterleave(suffix)
	if err != nil {
		return 0, badSuffix(err)
	}

	return int(symbol.Value(digits)), nil
}
