// Package report summarizes an extraction run.
package report

import (
	"github.com/montanaflynn/stats"

	"gbextract/internal/extract"
)

// Summary accumulates counts and protein lengths as products arrive.
// It is not safe for concurrent use.
type Summary struct {
	Files      int
	Records    int
	Features   int
	Translated int
	Pseudo     int
	Skipped    int

	lengths stats.Float64Data
}

// Add records one product.
func (s *Summary) Add(p extract.Product) {
	s.Features++
	if p.Feature.Pseudo {
		s.Pseudo++
	}
	if p.Translated {
		s.Translated++
		s.lengths = append(s.lengths, float64(len(p.Protein)))
	}
}

// Lengths describes translated protein lengths (in residues, stops included).
type Lengths struct {
	Min, Max     float64
	Mean, Median float64
}

// ProteinLengths returns ok=false when nothing was translated.
func (s *Summary) ProteinLengths() (Lengths, bool) {
	if len(s.lengths) == 0 {
		return Lengths{}, false
	}
	var l Lengths
	// errors only signal empty input, ruled out above
	l.Min, _ = stats.Min(s.lengths)
	l.Max, _ = stats.Max(s.lengths)
	l.Mean, _ = stats.Mean(s.lengths)
	l.Median, _ = stats.Median(s.lengths)
	return l, true
}

// KeyVals flattens the summary into logger key/value pairs.
func (s *Summary) KeyVals() []any {
	kv := []any{
		"files", s.Files,
		"records", s.Records,
		"features", s.Features,
		"translated", s.Translated,
		"pseudo", s.Pseudo,
		"skipped", s.Skipped,
	}
	if l, ok := s.ProteinLengths(); ok {
		mean, _ := stats.Round(l.Mean, 1)
		kv = append(kv,
			"aa_min", l.Min,
			"aa_median", l.Median,
			"aa_mean", mean,
			"aa_max", l.Max,
		)
	}
	return kv
}
