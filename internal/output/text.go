package output

import (
	"fmt"
	"io"

	"gbextract/internal/extract"
)

func writeRow(w io.Writer, p extract.Product, o Options) error {
	sq := o.Sequence(p)
	_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%s\t%d\t%s\t%s\n",
		p.SourceFile, p.Feature.LocusTag, p.Feature.Kind, p.Feature.Position,
		p.Position.Start, p.Position.Stop, p.Position.Strand,
		len(sq), p.Feature.Product, sq,
	)
	return err
}

// StreamTSV writes one tab-delimited row per product as it arrives.
func StreamTSV(w io.Writer, in <-chan extract.Product, o Options) error {
	if o.Header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for p := range in {
		if err := writeRow(w, p, o); err != nil {
			return err
		}
	}
	return nil
}
