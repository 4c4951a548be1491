package extract

import (
	"gbextract-core/dna"
	"gbextract-core/genbank"
)

type Product struct {
	SourceFile string
	Feature    genbank.Feature
	Position   dna.Position

	DNA string
	// Protein is set only when Translated is true.
	Protein    string
	Translated bool
}

// Translatable reports whether a feature gets a protein sequence.
func Translatable(f genbank.Feature) bool {
	return f.Kind == genbank.KindCDS && !f.Pseudo
}
