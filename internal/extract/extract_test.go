package extract

import (
	"errors"
	"strings"
	"testing"

	"gbextract-core/codon"
	"gbextract-core/dna"
	"gbextract-core/genbank"
)

func TestFeatureCDS(t *testing.T) {
	f := genbank.Feature{LocusTag: "gene1", Product: "hypothetical protein", Position: "1..6", Kind: genbank.KindCDS}
	p, err := Feature("a.gbk", "ATGAAATAG", f)
	if err != nil {
		t.Fatal(err)
	}
	if p.DNA != "ATGAAA" || p.Protein != "MK" || !p.Translated {
		t.Fatalf("product = %+v", p)
	}
	if p.Position.Len() != 6 || p.SourceFile != "a.gbk" {
		t.Fatalf("position/source = %+v %q", p.Position, p.SourceFile)
	}
}

func TestFeatureMinusStrand(t *testing.T) {
	// reverse complement of ATGAAATAG is CTATTTCAT
	f := genbank.Feature{LocusTag: "r", Position: "complement(1..9)", Kind: genbank.KindCDS}
	p, err := Feature("", "CTATTTCAT", f)
	if err != nil {
		t.Fatal(err)
	}
	if p.DNA != "ATGAAATAG" || p.Protein != "MK_" {
		t.Fatalf("product = %+v", p)
	}
	if p.Position.Strand != dna.Minus {
		t.Fatalf("strand = %s", p.Position.Strand)
	}
}

func TestFeatureNotTranslated(t *testing.T) {
	for _, f := range []genbank.Feature{
		{LocusTag: "t", Position: "1..6", Kind: genbank.KindTRNA},
		{LocusTag: "p", Position: "1..6", Kind: genbank.KindCDS, Pseudo: true},
	} {
		p, err := Feature("", "ATGAAATAG", f)
		if err != nil {
			t.Fatal(err)
		}
		if p.Translated || p.Protein != "" || p.DNA != "ATGAAA" {
			t.Errorf("%s: product = %+v", f.LocusTag, p)
		}
	}
}

func TestFeatureErrorsNameTheLocus(t *testing.T) {
	cases := []struct {
		f      genbank.Feature
		seq    string
		target error
	}{
		{genbank.Feature{LocusTag: "bad", Position: "1-6", Kind: genbank.KindCDS}, "ATGAAA", dna.ErrMalformedPosition},
		{genbank.Feature{LocusTag: "far", Position: "1..60", Kind: genbank.KindCDS}, "ATGAAA", dna.ErrMalformedPosition},
		{genbank.Feature{LocusTag: "n", Position: "1..6", Kind: genbank.KindCDS}, "ATGNAA", codon.ErrUnknownCodon},
	}
	for _, tc := range cases {
		_, err := Feature("", tc.seq, tc.f)
		if !errors.Is(err, tc.target) {
			t.Errorf("%s: want %v, got %v", tc.f.LocusTag, tc.target, err)
			continue
		}
		if !strings.Contains(err.Error(), `"`+tc.f.LocusTag+`"`) {
			t.Errorf("error %q does not name %s", err, tc.f.LocusTag)
		}
	}

	f := genbank.Feature{LocusTag: "ib", Position: "complement(1..3)", Kind: genbank.KindCDS}
	var ib *dna.InvalidBaseError
	if _, err := Feature("", "ANG", f); !errors.As(err, &ib) {
		t.Fatalf("want InvalidBaseError, got %v", err)
	}
}

func TestTranslationFailureKeepsDNA(t *testing.T) {
	f := genbank.Feature{LocusTag: "n", Position: "1..9", Kind: genbank.KindCDS}
	p, err := Feature("a.gbk", "ATGNNNTAA", f)
	if !errors.Is(err, codon.ErrUnknownCodon) {
		t.Fatalf("want ErrUnknownCodon, got %v", err)
	}
	if p.DNA != "ATGNNNTAA" || p.Translated || p.Protein != "" || p.SourceFile != "a.gbk" {
		t.Fatalf("product = %+v", p)
	}

	// a location failure yields no DNA
	p, err = Feature("", "ATG", genbank.Feature{LocusTag: "far", Position: "1..9", Kind: genbank.KindCDS})
	if err == nil || p.DNA != "" {
		t.Fatalf("out of range: p=%+v err=%v", p, err)
	}
}
