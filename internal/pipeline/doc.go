// Package pipeline parses GenBank files and runs feature extraction over a
// worker pool, handing Products to a visit callback in feature-table order.
//
// The parser stays single-threaded; only resolution and translation fan out,
// over a read-only view of the assembled sequence.
package pipeline
