package output

import "gbextract/internal/extract"

// Output formats understood by the writers.
const (
	FormatFASTA = "fasta"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatTSV   = "tsv"
)


// TSVHeader is the canonical header row for TSV output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "source_file\tlocus_tag\ttype\tlocation\tstart\tend\tstrand\tlength\tproduct\tseq"

// SeqKind selects which sequence of a Product a writer emits.
type SeqKind int

const (
	SeqDNA SeqKind = iota
	SeqProtein
)

func (k SeqKind) String() string {
	if k == SeqProtein {
		return "protein"
	}
	return "dna"
}

// Options are shared by every format.
type Options struct {
	Seq    SeqKind
	Width  int  // FASTA line width; <= 0 writes each sequence on one line
	Header bool // TSV header row
}

// Sequence returns the sequence o selects from p.
func (o Options) Sequence(p extract.Product) string {
	if o.Seq == SeqProtein {
		return p.Protein
	}
	return p.DNA
}
