// Package extract turns a parsed GenBank feature into a Product: its
// nucleotide sequence and, for coding features, the protein. It never
// imports app, writers, cli, or pipeline; keep it domain-only.
//
// External outputs must not depend on the internal shape here; use pkg/api
// for stable wire types (JSON/JSONL v1).
package extract
