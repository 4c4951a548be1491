package codon

import (
	"errors"
	"fmt"
)

var ErrUnknownCodon = errors.New("unknown codon")

// UnknownCodonError carries the offending codon and its 0-based offset.
type UnknownCodonError struct {
	Codon  string
	Offset int
}

func (e *UnknownCodonError) Error() string {
	return fmt.Sprintf("%s %q at offset %d", ErrUnknownCodon, e.Codon, e.Offset)
}

func (e *UnknownCodonError) Unwrap() error { return ErrUnknownCodon }

// Translate converts dna codon by codon. A trailing partial codon is
// dropped. Any codon outside {A,C,G,T}^3 fails the whole translation.
func (t *Table) Translate(dna string) (string, error) {
	n := len(dna) / 3
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := dna[i*3 : i*3+3]
		aa, ok := t.Lookup(c)
		if !ok {
			return "", &UnknownCodonError{Codon: c, Offset: i * 3}
		}
		out[i] = aa
	}
	return string(out), nil
}

// Translate uses the Standard table.
func Translate(dna string) (string, error) { return Standard.Translate(dna) }
