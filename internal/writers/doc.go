// Package writers turns extracted features into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (FASTA/JSON/JSONL/TSV).
//   - extract stays domain-only; pipeline stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
