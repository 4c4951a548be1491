package output

import (
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"gbextract/internal/extract"
)

// Description is the FASTA header text after the ID.
func Description(p extract.Product) string {
	return fmt.Sprintf("product=%s type=%s", p.Feature.Product, p.Feature.Kind)
}

func toSeq(p extract.Product, o Options) *linear.Seq {
	var alpha alphabet.Alphabet = alphabet.DNA
	if o.Seq == SeqProtein {
		alpha = alphabet.Protein
	}
	s := linear.NewSeq(p.Feature.LocusTag, alphabet.BytesToLetters([]byte(o.Sequence(p))), alpha)
	s.Desc = Description(p)
	return s
}

func writeOne(w io.Writer, p extract.Product, o Options) error {
	sq := o.Sequence(p)
	if sq == "" {
		return nil
	}
	width := o.Width
	if width <= 0 {
		width = len(sq)
	}
	_, err := fasta.NewWriter(w, width).Write(toSeq(p, o))
	return err
}

// StreamFASTA streams FASTA records from a channel to the writer.
func StreamFASTA(w io.Writer, in <-chan extract.Product, o Options) error {
	for p := range in {
		if err := writeOne(w, p, o); err != nil {
			return err
		}
	}
	return nil
}
