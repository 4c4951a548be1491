package extract

import (
	"fmt"

	"gbextract-core/codon"
	"gbextract-core/dna"
	"gbextract-core/genbank"
)

// Feature resolves f against seq and translates it when Translatable.
// seq is only read; the returned strings do not alias it.
//
// When the location resolves but translation fails, the Product still
// carries DNA (Translated false) alongside the error.
func Feature(sourceFile, seq string, f genbank.Feature) (Product, error) {
	pos, err := dna.ParsePosition(f.Position)
	if err != nil {
		return Product{}, wrap(f, err)
	}
	nt, err := dna.Extract(seq, pos)
	if err != nil {
		return Product{}, wrap(f, err)
	}
	p := Product{SourceFile: sourceFile, Feature: f, Position: pos, DNA: nt}
	if !Translatable(f) {
		return p, nil
	}
	aa, err := codon.Translate(nt)
	if err != nil {
		return p, wrap(f, err)
	}
	p.Protein = aa
	p.Translated = true
	return p, nil
}

func wrap(f genbank.Feature, err error) error {
	return fmt.Errorf("feature %q: %w", f.LocusTag, err)
}
