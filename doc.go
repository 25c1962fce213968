// Package helix is a constrained-code toolkit for DNA data storage: it
// turns binary payloads into nucleotide strings that respect the two
// constraints synthesis and sequencing care about — bounded homopolymer
// runs and near-half GC content — while staying exactly invertible and
// detecting any single-edit corruption.
//
// 🧬 What's inside?
//
//	A small set of composable, purely functional packages:
//		• symbol/   — the quaternary pivot type, bit/DNA bijections, GC flip
//		• diffcode/ — first-difference transform modulo 4
//		• rll/      — Method-B runlength limiter (pointer excision)
//		• gcbal/    — Method-D prefix-flip GC balancer + index suffix
//		• vt/       — Varshamov–Tenengolts syndrome & checksum
//		• helix/    — the codec driver stitching it all together
//		• analyzer/ — GC/runlength reports, validation, SVG charts
//		• cmd/helix — command-line front-end
//
// ✨ Why choose helix?
//
//   - Exact round trips — decode(encode(b)) == b, leading zeros included
//   - Constraint-true output — every codeword honors ℓ and ε, seams too
//   - Single-edit detection — substitutions, insertions and deletions trip
//     the syndrome, the checksum, a glue or suffix check, or the frame
//     arithmetic
//   - Pure Go core — no shared state, safe to share across goroutines
//
// Start with the helix subpackage; the leaf packages are usable on their
// own when only one transform is needed.
package helix
