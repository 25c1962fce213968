// Package helix encodes arbitrary binary payloads into DNA codewords that
// honor two biochemical constraints at once — a homopolymer runlength
// bound ℓ and a GC-content window [½−ε, ½+ε] — while staying fully
// invertible and carrying a single-edit detection syndrome.
//
// 🧬 The pipeline
//
//	bits ──► quaternary ──► differential ──► runlength limit ──► integral
//	     ──► prefix-flip balance ──► γ₁ + index suffix
//	     ──► γ₂ + VT syndrome suffix ──► nucleotides
//
// Each stage is a pure function over immutable symbol sequences; the
// driver owns the ordering, the frame widths, and the glue symbols that
// keep both constraints alive across every concatenation seam. Decoding
// is the exact mirror and validates each boundary as it strips it.
//
// ✨ Guarantees:
//   - Round trip: Decode(Encode(b)) == b for every even-length bitstring.
//   - Runlength: no ℓ+1 identical nucleotides anywhere in a codeword,
//     suffixes and seams included.
//   - GC window: codewords long enough to admit a balancing index stay
//     within ε of half GC; shorter ones carry the best achievable balance.
//   - Detection: any single substituted nucleotide trips the checksum or
//     a structural check. A length change trips the frame arithmetic only
//     when the new length fits no frame; otherwise it is left to the VT
//     pair, the glue symbols and the suffix checks.
//
// ⚙️ Usage:
//
//	codec, err := helix.New(helix.DefaultOptions())
//	if err != nil { ... }
//
//	dna, err := codec.Encode("11010011")
//	bits, err := codec.Decode(dna)
//
//	report, _ := codec.Analyze(dna)
//	fmt.Println(report.GCRatio, report.MaxRun, report.Valid)
//
// A Codec stores only its parameters; one instance serves any number of
// goroutines. Streaming at the file level is the caller's concern: each
// payload maps to one independent codeword with no cross-block state.
package helix
