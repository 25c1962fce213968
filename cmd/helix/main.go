// Command helix is the command-line front-end of the HELIX codec:
// encode/decode binary payloads and UTF-8 text to DNA, analyze sequences
// against the constraints, and run a small demonstration.
//
// Exit codes: 0 success, 1 bad input, 2 constraint or frame violation on
// decode, 3 detected single-edit error.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/minminlittleshrimp/helix/analyzer"
	"github.com/minminlittleshrimp/helix/gcbal"
	"github.com/minminlittleshrimp/helix/helix"
	"github.com/minminlittleshrimp/helix/symbol"
)

const version = "1.0.0"

const usage = `helix - DNA storage encoding/decoding

Usage:
  helix <command> [flags]

Commands:
  encode       Encode a binary string to DNA
  decode       Decode a DNA sequence to binary
  text-encode  Encode UTF-8 text to DNA
  text-decode  Decode a DNA sequence to UTF-8 text
  analyze      Report constraint metrics of a DNA sequence
  demo         Run the built-in demonstration payloads
  version      Print version information

Common flags:
  -i <string>      input value
  -f <path>        read input from file
  -o <path>        write output to file (default stdout)
  --ell <int>      maximum homopolymer runlength (default 3)
  --epsilon <f>    GC-content tolerance (default 0.05)
  --no-ec          disable the error-detection suffix
`

const (
	exitOK = iota
	exitBadInput
	exitViolation
	exitDetected
)

// cmdFlags holds the flag set shared by every verb.
type cmdFlags struct {
	fs      *flag.FlagSet
	input   string
	file    string
	output  string
	ell     int
	epsilon float64
	noEC    bool
	chart   string
}

func newFlags(name string) *cmdFlags {
	c := &cmdFlags{fs: flag.NewFlagSet(name, flag.ExitOnError)}
	c.fs.StringVar(&c.input, "i", "", "input value")
	c.fs.StringVar(&c.file, "f", "", "read input from file")
	c.fs.StringVar(&c.output, "o", "", "write output to file")
	c.fs.IntVar(&c.ell, "ell", helix.DefaultMaxRun, "maximum homopolymer runlength")
	c.fs.Float64Var(&c.epsilon, "epsilon", helix.DefaultEpsilon, "GC-content tolerance")
	c.fs.BoolVar(&c.noEC, "no-ec", false, "disable the error-detection suffix")
	if name == "analyze" {
		c.fs.StringVar(&c.chart, "chart", "", "write GC-profile SVG to file")
	}

	return c
}

func (c *cmdFlags) codec() (*helix.Codec, error) {
	return helix.New(helix.Options{
		MaxRun:         c.ell,
		Epsilon:        c.epsilon,
		ErrorDetection: !c.noEC,
	})
}

// readInput resolves -i/-f, trimming surrounding whitespace.
func (c *cmdFlags) readInput() (string, error) {
	if c.input != "" {
		return strings.TrimSpace(c.input), nil
	}
	if c.file != "" {
		data, err := os.ReadFile(c.file)
		if err != nil {
			return "", err
		}

		return strings.TrimSpace(string(data)), nil
	}

	return "", fmt.Errorf("must provide either -i or -f")
}

// writeOutput sends data to -o or stdout.
func (c *cmdFlags) writeOutput(data string) error {
	if c.output == "" {
		fmt.Println(data)

		return nil
	}
	if err := os.WriteFile(c.output, []byte(data+"\n"), 0o644); err != nil {
		return err
	}
	fmt.Printf("output written to: %s\n", c.output)

	return nil
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		fmt.Print(usage)

		return exitOK
	}

	switch args[0] {
	case "encode":
		return runEncode(args[1:], false)
	case "decode":
		return runDecode(args[1:], false)
	case "text-encode":
		return runEncode(args[1:], true)
	case "text-decode":
		return runDecode(args[1:], true)
	case "analyze":
		return runAnalyze(args[1:])
	case "demo":
		return runDemo(args[1:])
	case "version":
		fmt.Printf("helix v%s\nDNA storage encoding/decoding system\n", version)

		return exitOK
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", args[0], usage)

		return exitBadInput
	}
}

func fail(code int, err error) int {
	fmt.Fprintln(os.Stderr, "error:", err)

	return code
}

// decodeExit maps the error taxonomy onto exit codes.
func decodeExit(err error) int {
	switch {
	case errors.Is(err, helix.ErrDetected):
		return exitDetected
	case errors.Is(err, symbol.ErrBadAlphabet),
		errors.Is(err, symbol.ErrBadLength),
		errors.Is(err, helix.ErrParam):
		return exitBadInput
	default:
		return exitViolation
	}
}

func runEncode(args []string, text bool) int {
	f := newFlags("encode")
	_ = f.fs.Parse(args)

	in, err := f.readInput()
	if err != nil {
		return fail(exitBadInput, err)
	}
	bits := in
	if text {
		bits = textToBits(in)
	}

	codec, err := f.codec()
	if err != nil {
		return fail(exitBadInput, err)
	}
	dna, err := codec.Encode(bits)
	if err != nil {
		if errors.Is(err, gcbal.ErrTooShort) {
			return fail(exitViolation, err)
		}

		return fail(exitBadInput, err)
	}
	if err := f.writeOutput(dna); err != nil {
		return fail(exitBadInput, err)
	}

	return exitOK
}

func runDecode(args []string, text bool) int {
	f := newFlags("decode")
	_ = f.fs.Parse(args)

	in, err := f.readInput()
	if err != nil {
		return fail(exitBadInput, err)
	}
	codec, err := f.codec()
	if err != nil {
		return fail(exitBadInput, err)
	}

	bits, err := codec.Decode(in)
	if err != nil {
		// A detection report with recovered bits is still printed; the
		// exit code tells the caller what happened.
		if bits == "" || !errors.Is(err, helix.ErrDetected) {
			return fail(decodeExit(err), err)
		}
		fmt.Fprintln(os.Stderr, "warning:", err)
	}

	out := bits
	if text {
		out = bitsToText(bits)
	}
	if werr := f.writeOutput(out); werr != nil {
		return fail(exitBadInput, werr)
	}
	if err != nil {
		return exitDetected
	}

	return exitOK
}

func runAnalyze(args []string) int {
	f := newFlags("analyze")
	_ = f.fs.Parse(args)

	in, err := f.readInput()
	if err != nil {
		return fail(exitBadInput, err)
	}
	codec, err := f.codec()
	if err != nil {
		return fail(exitBadInput, err)
	}
	report, err := codec.Analyze(in)
	if err != nil {
		return fail(exitBadInput, err)
	}

	fmt.Printf("length:       %d nt\n", report.Length)
	fmt.Printf("gc-content:   %.2f%% (target 50%% ± %.0f%%)\n", 100*report.GCRatio, 100*f.epsilon)
	fmt.Printf("gc-balanced:  %v\n", report.GCBalanced)
	fmt.Printf("max-run:      %d (limit %d)\n", report.MaxRun, f.ell)
	fmt.Printf("runlength-ok: %v\n", report.RunOK)
	fmt.Printf("counts:       A=%d T=%d C=%d G=%d\n",
		report.Counts[0], report.Counts[1], report.Counts[2], report.Counts[3])
	for _, r := range report.Runs {
		fmt.Printf("  run of %d at %d (%s)\n", r.Len, r.Pos, symbol.QuatToDNA([]symbol.Symbol{r.Sym}))
	}
	fmt.Printf("valid:        %v\n", report.Valid)

	if f.chart != "" {
		q, qerr := symbol.DNAToQuat(in)
		if qerr != nil {
			return fail(exitBadInput, qerr)
		}
		fh, ferr := os.Create(f.chart)
		if ferr != nil {
			return fail(exitBadInput, ferr)
		}
		defer fh.Close()
		if cerr := analyzer.RenderGCProfile(fh, q, 16); cerr != nil {
			return fail(exitBadInput, cerr)
		}
		fmt.Printf("chart written to: %s\n", f.chart)
	}

	if !report.Valid {
		return exitViolation
	}

	return exitOK
}

func runDemo(args []string) int {
	f := newFlags("demo")
	_ = f.fs.Parse(args)

	codec, err := f.codec()
	if err != nil {
		return fail(exitBadInput, err)
	}

	cases := []struct{ name, bits string }{
		{"Simple", "11010011"},
		{"Alternating", "10101010"},
		{"All ones", "11111111"},
		{"Mixed", "100100011010"},
	}

	for _, tc := range cases {
		out, err := codec.EncodeWithAnalysis(tc.bits)
		if err != nil {
			return fail(exitViolation, err)
		}
		ok, err := codec.VerifyRoundTrip(tc.bits)
		if err != nil {
			return fail(exitViolation, err)
		}

		fmt.Printf("%s\n", strings.Repeat("=", 60))
		fmt.Printf("%s: %s (%d bits)\n", tc.name, tc.bits, len(tc.bits))
		fmt.Printf("  dna:        %s (%d nt)\n", out.DNA, out.Report.Length)
		fmt.Printf("  gc-content: %.2f%%\n", 100*out.Report.GCRatio)
		fmt.Printf("  max-run:    %d\n", out.Report.MaxRun)
		fmt.Printf("  roundtrip:  %v\n", ok)
	}
	fmt.Println(strings.Repeat("=", 60))

	return exitOK
}

// textToBits renders each input byte as eight bits, high bit first.
func textToBits(text string) string {
	var sb strings.Builder
	sb.Grow(8 * len(text))
	for i := 0; i < len(text); i++ {
		for b := 7; b >= 0; b-- {
			sb.WriteByte('0' + text[i]>>b&1)
		}
	}

	return sb.String()
}

// bitsToText packs eight bits per byte, dropping a ragged tail.
func bitsToText(bits string) string {
	var sb strings.Builder
	for i := 0; i+8 <= len(bits); i += 8 {
		var b byte
		for j := 0; j < 8; j++ {
			b = b<<1 | (bits[i+j] - '0')
		}
		sb.WriteByte(b)
	}

	return sb.String()
}
