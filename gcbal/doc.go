// Package gcbal implements the Method-D prefix-flip GC balancer.
//
// Flipping the first t symbols of a sequence through the involution
// f(0)=2, f(2)=0, f(1)=3, f(3)=1 swaps each flipped symbol's GC-class
// membership. The GC count of the flipped sequence therefore walks in ±1
// steps as t grows, so for any sequence long enough relative to the
// tolerance ε some prefix length lands the GC fraction inside
// [½−ε, ½+ε]. The balancer scans t = 0, 1, …, n and picks the smallest
// index that satisfies the window without merging two runs past the
// configured homopolymer limit at the flip seam.
//
// The chosen index travels with the codeword as a self-balanced suffix:
// t is written as fixed-width base-4 digits and each digit is interleaved
// with its flip, so the suffix contributes exactly half GC symbols and
// never has a run longer than two.
package gcbal
