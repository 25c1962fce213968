package helix

import (
	"fmt"
	"math"

	"github.com/minminlittleshrimp/helix/analyzer"
	"github.com/minminlittleshrimp/helix/diffcode"
	"github.com/minminlittleshrimp/helix/gcbal"
	"github.com/minminlittleshrimp/helix/rll"
	"github.com/minminlittleshrimp/helix/symbol"
	"github.com/minminlittleshrimp/helix/vt"
)

// Codec is the full HELIX pipeline for one parameter set. It holds only
// parameters and stage codecs, so a single instance is safe to share
// across goroutines.
type Codec struct {
	opts Options
	rc   *rll.Codec
	bal  *gcbal.Balancer
}

// New builds a Codec after validating the parameters.
func New(opts Options) (*Codec, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	rc, err := rll.New(opts.MaxRun)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParam, err)
	}
	bal, err := gcbal.New(opts.Epsilon, opts.MaxRun)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParam, err)
	}

	return &Codec{opts: opts, rc: rc, bal: bal}, nil
}

// Options returns the codec's immutable configuration.
func (c *Codec) Options() Options { return c.opts }

// Encode transforms an even-length bitstring into a DNA codeword
// satisfying the homopolymer and GC constraints. The empty bitstring
// encodes to the empty codeword.
//
// Pipeline: bits → quaternary → differential → runlength limiting →
// integral → prefix-flip balancing → glue + index suffix → optional
// glue + VT suffix → nucleotides.
func (c *Codec) Encode(bits string) (string, error) {
	q0, err := symbol.BitsToQuat(bits)
	if err != nil {
		return "", err
	}
	if len(q0) == 0 {
		return "", nil
	}

	// The wire body is the integral of the runlength-limited differential
	// sequence: zero runs there are homopolymers here, so bounding the one
	// bounds the other.
	z, _ := c.rc.Encode(diffcode.Encode(q0))
	body := diffcode.Decode(z)

	// Smallest flip index whose assembled frame passes both constraints;
	// later candidates cover seams and glue choices the first one loses.
	for _, t := range c.bal.Candidates(body) {
		frame := c.assemble(c.bal.Unbalance(body, t), t)
		if c.frameValid(frame) {
			return symbol.QuatToDNA(frame), nil
		}
	}

	return "", gcbal.ErrTooShort
}

// assemble frames a balanced body: glue, index suffix, and (optionally)
// glue plus VT suffix.
func (c *Codec) assemble(w []symbol.Symbol, t int) []symbol.Symbol {
	s := c.bal.IndexSuffix(t, len(w))

	frame := make([]symbol.Symbol, 0, frameLen(len(w), c.opts.ErrorDetection))
	frame = append(frame, w...)
	frame = append(frame, glueSymbol(w[len(w)-1], s[0], gcDeficit(w)))
	frame = append(frame, s...)

	if c.opts.ErrorDetection {
		ec := vt.Suffix(frame)
		frame = append(frame, glueSymbol(frame[len(frame)-1], ec[0], gcDeficit(frame)))
		frame = append(frame, ec...)
	}

	return frame
}

// frameValid checks the final frame against both constraints. The GC
// window binds only once the codeword is long enough to admit any flip
// index inside it; shorter codewords carry the best achievable balance.
func (c *Codec) frameValid(frame []symbol.Symbol) bool {
	if analyzer.MaxRunLength(frame) > c.opts.MaxRun {
		return false
	}
	minLen := int(math.Ceil(1 / (2 * c.opts.Epsilon)))
	if len(frame) < minLen {
		return true
	}

	return analyzer.Valid(frame, c.opts.MaxRun, c.opts.Epsilon)
}

// Decode inverts Encode, validating every boundary on the way back:
// frame arithmetic, VT pair, glue symbols, index-suffix pairing, and the
// runlength trailer. A VT mismatch alone is a report: the bits are still
// recovered and returned together with a *DetectedError.
func (c *Codec) Decode(dna string) (string, error) {
	q, err := symbol.DNAToQuat(dna)
	if err != nil {
		return "", err
	}
	if len(q) == 0 {
		return "", nil
	}

	n, err := solveBody(len(q), c.opts.ErrorDetection)
	if err != nil {
		// A length-changing edit lands here before anything else can.
		return "", c.stageErr(vt.EditIndel, err)
	}

	var detected *DetectedError
	pre := q
	if c.opts.ErrorDetection {
		bodyPlus := n + 1 + 2*gcbal.SuffixWidth(n)
		pre = q[:bodyPlus]
		g2 := q[bodyPlus]
		ec := q[bodyPlus+1:]

		syn, chk, perr := vt.ParseSuffix(ec)
		if perr != nil {
			return "", c.stageErr(vt.EditUnknown, perr)
		}
		if kind := vt.Classify(pre, syn, chk); kind != vt.EditNone {
			detected = &DetectedError{Kind: kind}
		} else if g2 != glueSymbol(pre[len(pre)-1], ec[0], gcDeficit(pre)) {
			detected = &DetectedError{Kind: vt.EditSubstitution}
		}
	}

	w := pre[:n]
	g1 := pre[n]
	s := pre[n+1:]

	t, serr := c.bal.DecodeIndexSuffix(s)
	if serr != nil {
		return "", c.stageErrWith(detected, vt.EditSubstitution, serr)
	}
	if t > n {
		return "", c.stageErrWith(detected, vt.EditSubstitution,
			fmt.Errorf("%w: flip index %d exceeds body length %d", gcbal.ErrBadSuffix, t, n))
	}
	if g1 != glueSymbol(w[len(w)-1], s[0], gcDeficit(w)) {
		return "", c.stageErrWith(detected, vt.EditSubstitution,
			fmt.Errorf("%w: glue symbol mismatch", ErrBadFrame))
	}

	body := c.bal.Unbalance(w, t)
	y, rerr := c.rc.Decode(diffcode.Encode(body), true)
	if rerr != nil {
		return "", c.stageErrWith(detected, vt.EditSubstitution, rerr)
	}

	bits := symbol.QuatToBits(diffcode.Decode(y))
	if detected != nil {
		return bits, detected
	}

	return bits, nil
}

// stageErr maps a structural failure to a detection report when error
// detection is on, and surfaces it unchanged otherwise.
func (c *Codec) stageErr(kind vt.EditKind, cause error) error {
	if c.opts.ErrorDetection {
		return &DetectedError{Kind: kind, Cause: cause}
	}

	return cause
}

// stageErrWith prefers the kind already inferred by the VT stage.
func (c *Codec) stageErrWith(detected *DetectedError, kind vt.EditKind, cause error) error {
	if detected != nil {
		detected.Cause = cause

		return detected
	}

	return c.stageErr(kind, cause)
}
