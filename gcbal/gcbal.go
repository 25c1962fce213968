package gcbal

import (
	"errors"
	"fmt"

	"github.com/minminlittleshrimp/helix/symbol"
)

// Sentinel errors for GC balancing.
var (
	// ErrTolerance indicates ε outside the open interval (0, ½).
	ErrTolerance = errors.New("gcbal: tolerance must satisfy 0 < epsilon < 0.5")
	// ErrRunLimit indicates a homopolymer limit below 2.
	ErrRunLimit = errors.New("gcbal: runlength limit must be at least 2")
	// ErrTooShort indicates no flip index can reach the GC window.
	ErrTooShort = errors.New("gcbal: sequence too short to balance within tolerance")
	// ErrBadSuffix indicates an index suffix that is not properly
	// interleaved or does not fit the sequence it describes.
	ErrBadSuffix = errors.New("gcbal: malformed index suffix")
)

// Balancer selects prefix-flip indices for a fixed tolerance and
// homopolymer limit. It holds only parameters and is safe to share.
type Balancer struct {
	epsilon float64
	maxRun  int
}

// New returns a Balancer for the given tolerance ε ∈ (0, ½) and
// homopolymer limit ℓ ≥ 2 (used to police the flip seam).
func New(epsilon float64, maxRun int) (*Balancer, error) {
	if epsilon <= 0 || epsilon >= 0.5 {
		return nil, ErrTolerance
	}
	if maxRun < 2 {
		return nil, ErrRunLimit
	}

	return &Balancer{epsilon: epsilon, maxRun: maxRun}, nil
}

// Epsilon returns the configured tolerance.
func (b *Balancer) Epsilon() float64 { return b.epsilon }

// Candidates returns the flip indices for w in the order the encoder
// should try them: every seam-safe t whose flipped sequence lands inside
// the GC window, ascending, followed by the remaining seam-safe indices
// ordered by GC deviation (then ascending). The tail lets the caller emit
// the best achievable balance for payloads too short for the window, and
// exhaust every index before rejecting a payload outright.
func (b *Balancer) Candidates(w []symbol.Symbol) []int {
	n := len(w)
	if n == 0 {
		return []int{0}
	}

	runEnd := make([]int, n)   // length of the run ending at i
	runStart := make([]int, n) // length of the run starting at i
	runEnd[0] = 1
	for i := 1; i < n; i++ {
		runEnd[i] = 1
		if w[i] == w[i-1] {
			runEnd[i] = runEnd[i-1] + 1
		}
	}
	runStart[n-1] = 1
	for i := n - 2; i >= 0; i-- {
		runStart[i] = 1
		if w[i] == w[i+1] {
			runStart[i] = runStart[i+1] + 1
		}
	}

	seamSafe := func(t int) bool {
		if t == 0 || t == n {
			return true
		}
		// f preserves equality, so only a merge across the seam can grow a
		// run: it happens exactly when f(w[t−1]) == w[t].
		if symbol.Flip(w[t-1]) != w[t] {
			return true
		}

		return runEnd[t-1]+runStart[t] <= b.maxRun
	}

	type cand struct {
		t   int
		dev float64
	}
	var inside []int
	var rest []cand
	gc := symbol.GCCount(w)
	for t := 0; t <= n; t++ {
		if t > 0 {
			// Flipping one more leading symbol toggles its GC membership.
			if symbol.IsGC(w[t-1]) {
				gc--
			} else {
				gc++
			}
		}
		if !seamSafe(t) {
			continue
		}
		dev := absf(float64(gc)/float64(n) - 0.5)
		if dev <= b.epsilon+floatSlack {
			inside = append(inside, t)
		} else {
			rest = append(rest, cand{t: t, dev: dev})
		}
	}

	// Best achievable deviation first among the out-of-window indices,
	// stable in t.
	out := append(make([]int, 0, len(inside)+len(rest)), inside...)
	for len(rest) > 0 {
		best := 0
		for i := 1; i < len(rest); i++ {
			if rest[i].dev < rest[best].dev {
				best = i
			}
		}
		out = append(out, rest[best].t)
		rest = append(rest[:best], rest[best+1:]...)
	}

	return out
}

// Balance flips the shortest prefix of w that lands the GC fraction
// inside [½−ε, ½+ε] without a seam violation, returning the flipped
// sequence and the chosen index. When the window is unreachable the
// best-deviation index is used, matching what short payloads admit.
// ErrTooShort is returned only when no seam-safe index exists at all.
func (b *Balancer) Balance(w []symbol.Symbol) ([]symbol.Symbol, int, error) {
	cands := b.Candidates(w)
	if len(cands) == 0 {
		return nil, 0, ErrTooShort
	}
	t := cands[0]

	return b.Unbalance(w, t), t, nil
}

// Unbalance flips the first t symbols of w. Flipping is an involution, so
// the same operation serves both directions. The input is not mutated.
func (b *Balancer) Unbalance(w []symbol.Symbol, t int) []symbol.Symbol {
	out := append([]symbol.Symbol(nil), w...)
	if t > len(out) {
		t = len(out)
	}
	for i := 0; i < t; i++ {
		out[i] = symbol.Flip(out[i])
	}

	return out
}

// floatSlack absorbs rounding in the ε comparison; GC counts are exact
// integers, the ratio is not.
const floatSlack = 1e-12

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}

// badSuffix wraps a pairing failure with the package sentinel.
func badSuffix(err error) error {
	return fmt.Errorf("%w: %v", ErrBadSuffix, err)
}
