// Package codon translates nucleotide sequences with the standard genetic
// code. Stop codons translate to Stop ('_').
package codon

// Stop is the symbol emitted for TAA, TAG and TGA.
const Stop = '_'

// standardAA is NCBI translation table 1 with codons ordered T, C, A, G at
// each of the three positions.
const standardAA = "FFLLSSSSYY__CC_W" +
	"LLLLPPPPHHQQRRRR" +
	"IIIMTTTTNNKKSSRR" +
	"VVVVAAAADDEEGGGG"

var baseIndex [256]int8

func init() {
	for i := range baseIndex {
		baseIndex[i] = -1
	}
	baseIndex['T'] = 0
	baseIndex['C'] = 1
	baseIndex['A'] = 2
	baseIndex['G'] = 3
}

// Table maps each of the 64 codons to a one-letter amino acid code.
type Table [64]byte

// Standard is the read-only standard genetic code.
var Standard = newTable(standardAA)

func newTable(aa string) *Table {
	var t Table
	copy(t[:], aa)
	return &t
}

func index(c string) (int, bool) {
	if len(c) != 3 {
		return 0, false
	}
	i, j, k := baseIndex[c[0]], baseIndex[c[1]], baseIndex[c[2]]
	if i < 0 || j < 0 || k < 0 {
		return 0, false
	}
	return int(i)*16 + int(j)*4 + int(k), true
}

// Lookup returns the amino acid for a three-letter upper-case codon.
func (t *Table) Lookup(c string) (byte, bool) {
	i, ok := index(c)
	if !ok {
		return 0, false
	}
	return t[i], true
}
