package app

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"runtime"

	"github.com/charmbracelet/log"

	"gbextract-core/codon"
	"gbextract-core/genbank"
	"gbextract/internal/cli"
	"gbextract/internal/cmdutil"
	"gbextract/internal/extract"
	"gbextract/internal/output"
	"gbextract/internal/pipeline"
	"gbextract/internal/report"
	"gbextract/internal/writers"
)

// sink is one output destination with its writer goroutine.
type sink struct {
	dest string
	bw   *bufio.Writer
	file *os.File
	in   chan<- extract.Product
	done <-chan error
}

func openSink(dest string, stdout *bufio.Writer, format string, o output.Options, bufSize int) (*sink, error) {
	s := &sink{dest: dest, bw: stdout}
	if dest != cli.Stdout {
		f, err := os.Create(dest)
		if err != nil {
			return nil, err
		}
		s.file = f
		s.bw = bufio.NewWriter(f)
	}
	s.in, s.done = writers.StartProductWriter(s.bw, format, o, bufSize)
	return s, nil
}

// finish closes the channel, waits for the writer, and flushes.
func (s *sink) finish() error {
	close(s.in)
	err := <-s.done
	if ferr := s.bw.Flush(); err == nil {
		err = ferr
	}
	if s.file != nil {
		if cerr := s.file.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func run(ctx context.Context, o cli.Options, stdout, stderr io.Writer) int {
	logger, err := cmdutil.NewLogger(stderr, o.LogLevel, o.Quiet)
	if err != nil {
		logger = log.New(stderr)
	}
	kinds, _ := o.Kinds()

	thr := o.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	outw := bufio.NewWriter(stdout)
	var sinks []*sink
	open := func(dest string, kind output.SeqKind) (*sink, error) {
		if dest == "" {
			return nil, nil
		}
		s, err := openSink(dest, outw, o.Output, output.Options{Seq: kind, Width: o.Width, Header: o.Header}, thr*4)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, s)
		return s, nil
	}
	finishAll := func() error {
		var first error
		for _, s := range sinks {
			if err := s.finish(); err != nil && first == nil {
				first = err
			}
		}
		return first
	}

	dnaSink, err := open(o.DNAOut, output.SeqDNA)
	var aaSink *sink
	if err == nil {
		aaSink, err = open(o.AAOut, output.SeqProtein)
	}
	if err != nil {
		logger.Error("cannot open output", "err", err)
		_ = finishAll()
		return 3
	}
	return extractAll(ctx, o, kinds, thr, logger, dnaSink, aaSink, finishAll)
}

func extractAll(
	ctx context.Context,
	o cli.Options,
	kinds []genbank.Kind,
	thr int,
	logger *log.Logger,
	dnaSink, aaSink *sink,
	finishAll func() error,
) int {
	send := func(s *sink, p extract.Product) error {
		select {
		case s.in <- p:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	var (
		sum     report.Summary
		written int
	)
	logger.Debug("starting", "inputs", len(o.Inputs), "types", o.Types, "threads", thr, "output", o.Output)
	st, perr := pipeline.ForEachProduct(ctx,
		pipeline.Config{
			Threads:   thr,
			Parse:     genbank.Options{Kinds: kinds, KeepPseudo: o.KeepPseudo},
			ForceGzip: o.Gzip,
			Strict:    o.Strict,
		},
		o.Inputs,
		func(p extract.Product) error {
			sum.Add(p)
			if dnaSink != nil {
				if err := send(dnaSink, p); err != nil {
					return err
				}
				written++
			}
			// a CDS shorter than one codon translates to nothing
			if aaSink != nil && p.Translated && p.Protein != "" {
				if err := send(aaSink, p); err != nil {
					return err
				}
				written++
			}
			return nil
		},
		func(file string, f genbank.Feature, err error) {
			msg := "skipping feature"
			if errors.Is(err, codon.ErrUnknownCodon) {
				msg = "skipping translation"
			}
			logger.Warn(msg, "file", file, "locus_tag", f.LocusTag, "err", err)
		},
	)
	sum.Files = st.Files
	sum.Records = st.Records
	sum.Skipped = st.Skipped

	if code, stop := exitFor(perr, finishAll(), logger); stop {
		return code
	}
	logger.Info("done", sum.KeyVals()...)
	if written == 0 {
		logger.Warn("no features written")
		return o.NoMatchExitCode
	}
	return 0
}

// exitFor maps pipeline and writer errors to an exit code. stop is false
// when neither error ends the run. A pipeline failure outranks a broken pipe.
func exitFor(perr, werr error, logger *log.Logger) (code int, stop bool) {
	switch {
	case errors.Is(perr, context.Canceled):
		return 130, true
	case perr != nil:
		logger.Error("extraction failed", "err", perr)
		return 3, true
	case writers.IsBrokenPipe(werr):
		return 0, true
	case werr != nil:
		logger.Error("write failed", "err", werr)
		return 3, true
	}
	return 0, false
}
