// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"

	"gbextract-core/genbank"
	"gbextract/internal/cliutil"
	"gbextract/internal/cmdutil"
	"gbextract/internal/output"
	"gbextract/internal/writers"
)

// Stdout is the destination name that means standard output.
const Stdout = "-"

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Inputs []string
	Gzip   bool

	// Features
	Types      []string
	KeepPseudo bool
	Strict     bool

	// Output
	AAOut           string // protein destination; "" disables
	DNAOut          string // nucleotide destination; "" disables
	Output          string // fasta|json|jsonl|tsv
	Width           int
	Header          bool // true unless --no-header
	NoMatchExitCode int

	// Performance
	Threads int

	// Misc
	LogLevel string
	Quiet    bool
}

// Register wires all flags onto fs and returns a pointer to the "no-header"
// bool that AfterParse folds into Options.Header.
func Register(fs *pflag.FlagSet, o *Options) *bool {
	// Input
	fs.BoolVarP(&o.Gzip, "gzip", "z", false, "input is gzip-compressed (auto-detected otherwise)")

	// Features
	fs.StringSliceVar(&o.Types, "types", []string{string(genbank.KindCDS)}, "feature types to extract: CDS,tRNA,mRNA,rRNA")
	fs.BoolVar(&o.KeepPseudo, "keep-pseudo", false, "keep /pseudo features in nucleotide output (never translated)")
	fs.BoolVar(&o.Strict, "strict", false, "abort on the first feature that cannot be resolved or translated")

	// Output
	fs.StringVarP(&o.AAOut, "aa", "a", Stdout, "protein output file ('-' = stdout, '' = off)")
	fs.StringVarP(&o.DNAOut, "dna", "d", "", "nucleotide output file ('-' = stdout, '' = off)")
	fs.StringVarP(&o.Output, "output", "o", output.FormatFASTA, "output format: "+strings.Join(writers.Registered(), " | "))
	fs.IntVarP(&o.Width, "width", "w", 0, "FASTA line width (0 = unwrapped)")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in TSV output")
	fs.IntVar(&o.NoMatchExitCode, "no-match-exit-code", 1, "exit code when no features are written")

	// Performance
	fs.IntVarP(&o.Threads, "threads", "t", 0, "worker threads (0 = all CPUs)")

	// Misc
	fs.StringVar(&o.LogLevel, "log-level", "info", "log level: debug | info | warn | error")
	fs.BoolVarP(&o.Quiet, "quiet", "q", false, "only log errors")

	return &noHeader
}

// AfterParse finalizes header and expands positionals, then validates.
func AfterParse(o *Options, noHeader *bool, posArgs []string) error {
	o.Header = !*noHeader
	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandInputs(posArgs)
		if err != nil {
			return err
		}
		o.Inputs = append(o.Inputs, exp...)
	}
	return Validate(o)
}

// parseArgs registers flags on fs, parses argv, and validates the result.
func parseArgs(fs *pflag.FlagSet, argv []string) (Options, error) {
	var o Options
	noHeader := Register(fs, &o)
	if err := fs.Parse(argv); err != nil {
		return o, err
	}
	return o, AfterParse(&o, noHeader, fs.Args())
}

// Validate applies CLI invariants.
func Validate(o *Options) error {
	if len(o.Inputs) == 0 {
		return errors.New("at least one GenBank file is required")
	}
	switch {
	case o.AAOut == "" && o.DNAOut == "":
		return errors.New("nothing to write: set --aa and/or --dna")
	case o.AAOut == Stdout && o.DNAOut == Stdout:
		return errors.New("--aa and --dna cannot both write to stdout")
	case o.AAOut != "" && o.AAOut == o.DNAOut:
		return fmt.Errorf("--aa and --dna both write to %q", o.AAOut)
	}
	if _, err := o.Kinds(); err != nil {
		return err
	}
	if !slices.Contains(writers.Registered(), o.Output) {
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if o.Width < 0 {
		return errors.New("--width must be ≥ 0")
	}
	if o.NoMatchExitCode < 0 || o.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	if _, err := cmdutil.ParseLevel(o.LogLevel); err != nil {
		return err
	}
	return nil
}

// Kinds converts --types into feature kinds, dropping duplicates.
func (o Options) Kinds() ([]genbank.Kind, error) {
	var out []genbank.Kind
	seen := map[genbank.Kind]bool{}
	for _, s := range o.Types {
		k, ok := genbank.ParseKind(strings.TrimSpace(s))
		if !ok {
			return nil, fmt.Errorf("invalid --types entry %q (want CDS, tRNA, mRNA or rRNA)", s)
		}
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	if len(out) == 0 {
		return nil, errors.New("--types must name at least one feature type")
	}
	return out, nil
}
