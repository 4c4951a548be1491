package app

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"gbextract/internal/cli"
	"gbextract/internal/version"
)

// usageError marks failures that should print usage and exit 2.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }

func newRootCommand(opts *cli.Options, code *int, stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "gbextract [flags] GENBANK...",
		Short: "extract CDS/RNA feature sequences and translations from GenBank files",
		Long: `gbextract reads the FEATURES and ORIGIN sections of GenBank flat files
(plain or gzip, '-' for stdin), resolves each feature's location on the
assembled sequence, and writes nucleotide and/or translated protein records.`,
		Example: `  gbextract genome.gbk > proteins.faa
  gbextract --dna genes.fna --aa proteins.faa --types CDS,tRNA,rRNA genome.gbk.gz
  gbextract -o jsonl --aa - genomes/*.gbk`,
		Version:       version.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetVersionTemplate("gbextract version {{.Version}}\n")
	root.SetOut(stdout)
	root.SetErr(stderr)

	noHeader := cli.Register(root.Flags(), opts)
	root.RunE = func(cmd *cobra.Command, args []string) error {
		if err := cli.AfterParse(opts, noHeader, args); err != nil {
			return usageError{err}
		}
		*code = run(cmd.Context(), *opts, stdout, stderr)
		return nil
	}
	return root
}

// RunContext executes gbextract with argv and returns the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	if len(argv) == 0 {
		argv = []string{"--help"}
	}
	var (
		opts cli.Options
		code int
	)
	root := newRootCommand(&opts, &code, stdout, stderr)
	root.SetArgs(argv)
	if err := root.ExecuteContext(parent); err != nil {
		// cobra flag errors and validation errors are both usage errors
		_, _ = fmt.Fprintln(stderr, "error:", err)
		_, _ = fmt.Fprint(stderr, root.UsageString())
		return 2
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
