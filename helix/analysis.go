package helix

import (
	"github.com/minminlittleshrimp/helix/analyzer"
	"github.com/minminlittleshrimp/helix/symbol"
)

// AnalyzedCodeword pairs an encoded payload with its sequence report.
type AnalyzedCodeword struct {
	Bits   string
	DNA    string
	Report analyzer.Report
}

// Analyze runs the constraint report over an arbitrary DNA string under
// this codec's parameters.
func (c *Codec) Analyze(dna string) (analyzer.Report, error) {
	q, err := symbol.DNAToQuat(dna)
	if err != nil {
		return analyzer.Report{}, err
	}

	return analyzer.Analyze(q, c.opts.MaxRun, c.opts.Epsilon), nil
}

// EncodeWithAnalysis encodes bits and attaches the report of the
// resulting codeword.
func (c *Codec) EncodeWithAnalysis(bits string) (AnalyzedCodeword, error) {
	dna, err := c.Encode(bits)
	if err != nil {
		return AnalyzedCodeword{}, err
	}
	report, err := c.Analyze(dna)
	if err != nil {
		return AnalyzedCodeword{}, err
	}

	return AnalyzedCodeword{Bits: bits, DNA: dna, Report: report}, nil
}

// VerifyRoundTrip reports whether decode(encode(bits)) recovers bits.
func (c *Codec) VerifyRoundTrip(bits string) (bool, error) {
	dna, err := c.Encode(bits)
	if err != nil {
		return false, err
	}
	back, err := c.Decode(dna)
	if err != nil {
		return false, err
	}

	return back == bits, nil
}
