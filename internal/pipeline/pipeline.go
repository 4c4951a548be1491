package pipeline

import (
	"context"
	"fmt"
	"sync"

	"gbextract-core/genbank"
	"gbextract/internal/extract"
)

// Config controls the extraction pipeline.
type Config struct {
	Threads   int             // number of worker goroutines (>=1)
	Parse     genbank.Options // feature kinds and pseudo handling
	ForceGzip bool            // decompress even without magic bytes or .gz suffix
	Strict    bool            // abort on the first feature that fails
}

// SkipFunc is told about each feature failure in lenient mode. A feature
// whose location resolved but whose translation failed is still visited
// with its DNA.
type SkipFunc func(file string, f genbank.Feature, err error)

// Stats counts what a run saw.
type Stats struct {
	Files    int
	Records  int
	Features int
	Skipped  int
}

// ForEachProduct parses every record of every file and calls visit once per
// extracted Product, in table order per record, then record and file order. Unreadable files
// are skipped and the first such error is returned at the end (immediately
// with Strict). Feature failures go to skip unless Strict is set.
func ForEachProduct(
	ctx context.Context,
	cfg Config,
	files []string,
	visit func(extract.Product) error,
	skip SkipFunc,
) (Stats, error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	if skip == nil {
		skip = func(string, genbank.Feature, error) {}
	}

	var (
		st   Stats
		ferr error
	)
	for _, fn := range files {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		recs, err := readRecords(fn, cfg)
		if err != nil {
			err = fmt.Errorf("%s: %w", fn, err)
			if cfg.Strict {
				return st, err
			}
			// Keep scanning other files; first error will be returned.
			if ferr == nil {
				ferr = err
			}
			continue
		}
		st.Files++
		for _, rec := range recs {
			st.Records++
			n, skipped, err := forEachFeature(ctx, cfg, fn, rec, visit, skip)
			st.Features += n
			st.Skipped += skipped
			if err != nil {
				return st, err
			}
		}
	}
	return st, ferr
}

func readRecords(fn string, cfg Config) ([]genbank.Record, error) {
	rc, err := genbank.Open(fn, cfg.ForceGzip)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return genbank.ParseAll(rc, cfg.Parse)
}

func forEachFeature(
	parent context.Context,
	cfg Config,
	file string,
	rec genbank.Record,
	visit func(extract.Product) error,
	skip SkipFunc,
) (int, int, error) {
	feats := rec.Features.Features()
	if len(feats) == 0 {
		return 0, 0, nil
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	type job struct {
		idx int
		f   genbank.Feature
	}
	type result struct {
		idx int
		f   genbank.Feature
		p   extract.Product
		err error
	}
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan result, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				p, err := extract.Feature(file, rec.Sequence, j.f)
				select {
				case results <- result{idx: j.idx, f: j.f, p: p, err: err}:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	// Feed work
	go func() {
		defer close(jobs)
		for i, f := range feats {
			select {
			case jobs <- job{idx: i, f: f}:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	// Collector: restore table order before visiting.
	var (
		cerr    error
		n       int
		skipped int
		next    int
		pending = make(map[int]result, cfg.Threads*2)
	)
	for r := range results {
		pending[r.idx] = r
		for {
			cur, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if cerr != nil {
				continue
			}
			if cur.err != nil {
				if cfg.Strict {
					cerr = fmt.Errorf("%s: %w", file, cur.err)
					cancel()
					continue
				}
				skip(file, cur.f, cur.err)
				skipped++
				if cur.p.DNA == "" {
					continue
				}
			}
			if err := visit(cur.p); err != nil {
				cerr = err
				cancel()
				continue
			}
			n++
		}
	}

	if cerr != nil {
		return n, skipped, cerr
	}
	if err := parent.Err(); err != nil {
		return n, skipped, err
	}
	return n, skipped, nil
}
