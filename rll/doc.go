// Package rll implements the Method-B run-length limiter for quaternary
// sequences: given a limit ℓ, it rewrites an arbitrary sequence into one
// that contains no window of ℓ consecutive zeros, invertibly.
//
// 🧬 Why zeros only?
//
//	The codec operates in the differential domain, where every homopolymer
//	of the eventual DNA strand appears as a run of zeros. Bounding zero
//	runs here bounds homopolymers there, so a single forbidden substring
//	suffices.
//
// Algorithm outline (encode):
//  1. Stream the input left to right into a working buffer, counting the
//     trailing zero run.
//  2. Whenever the run reaches ℓ, excise those ℓ zeros and push a position
//     record; the buffer to the left of the excision is already clean, so
//     one pass suffices.
//  3. Append the terminator symbol 0. If the data now ends in ℓ−1 zeros,
//     the terminator would complete a forbidden window: excise those ℓ−1
//     zeros with a tail record.
//  4. Append all records as a zero-free trailer after the terminator.
//
// Record layout: a record carries the value 2·pos+kind (kind 1 marks the
// tail excision) written in base 2 over the digit symbols {1, 2}, most
// significant first, closed by the delimiter symbol 3. Because the trailer
// contains no zero symbol, the data/trailer boundary is simply the
// rightmost zero of the output, and the trailer grammar ({1,2}*3)* parses
// unambiguously. The decoder replays records last-to-first, re-inserting
// the excised zeros at the recorded positions, then strips the terminator.
//
// Each excision removes ℓ (or ℓ−1) zeros and never creates a window to the
// left of the cursor, so encoding is a single O(n) pass. Decoding rebuilds
// the buffer once per record, O(n·r) for r records.
package rll
