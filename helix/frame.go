// Package helix: codeword frame arithmetic and the Corollary-24 glue rule.
//
// Wire layout of a non-empty codeword, in quaternary symbols:
//
//	[ body (n) | γ₁ | index suffix (2k) | γ₂ | VT suffix (2(d+1)) ]
//
// with k = ⌈log₄(n+1)⌉ and d = ⌈log₄(2N)⌉ for N = n+1+2k; the γ₂/VT part
// is present only with error detection on. Every width is a function of n
// and the parameters alone, and the total length is strictly increasing
// in n, so the decoder recovers n from the total length with no side
// channel.
package helix

import (
	"github.com/minminlittleshrimp/helix/gcbal"
	"github.com/minminlittleshrimp/helix/symbol"
	"github.com/minminlittleshrimp/helix/vt"
)

// frameLen returns the total codeword length for a body of length n.
func frameLen(n int, ec bool) int {
	total := n + 1 + 2*gcbal.SuffixWidth(n)
	if ec {
		total += 1 + 2*(vt.SyndromeWidth(total)+1)
	}

	return total
}

// solveBody inverts frameLen: the body length whose frame is exactly
// total symbols. Fails with ErrBadFrame when no body length fits, which
// is how a length-changing edit first shows up.
func solveBody(total int, ec bool) (int, error) {
	for n := 1; n <= total; n++ {
		switch l := frameLen(n, ec); {
		case l == total:
			return n, nil
		case l > total:
			return 0, ErrBadFrame
		}
	}

	return 0, ErrBadFrame
}

// gcDeficit measures how many GC symbols q is short of exact balance,
// doubled to stay integral: positive means GC-poor.
func gcDeficit(q []symbol.Symbol) int {
	return len(q) - 2*symbol.GCCount(q)
}

// glueSymbol picks the junction symbol γ of Corollary 24: never equal to
// either neighbor, GC class chosen toward the deficit, smallest such
// symbol. Two exclusions leave at least two candidates, so the preferred
// class is empty only when both its members are the neighbors themselves.
// The rule is deterministic, so the decoder recomputes and re-verifies γ.
func glueSymbol(prev, next symbol.Symbol, deficit int) symbol.Symbol {
	order := [4]symbol.Symbol{0, 1, 2, 3}
	if deficit > 0 {
		order = [4]symbol.Symbol{2, 3, 0, 1}
	}
	for _, g := range order {
		if g != prev && g != next {
			return g
		}
	}

	return order[0]
}
