// Package genbank reads the FEATURES and ORIGIN sections of a GenBank
// flat file into a feature table and an assembled nucleotide sequence.
//
// A Parser consumes one record and stops at the "//" that closes its ORIGIN
// block; ParseAll restarts it for every record in a multi-record file.
// Decompression is the caller's job (see Open).
package genbank

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Options controls which features the parser keeps.
type Options struct {
	// Kinds are the feature keys to accumulate. Empty means CDS only.
	Kinds []Kind
	// KeepPseudo emits /pseudo features (with Pseudo set) instead of dropping them.
	KeepPseudo bool
}

func (o Options) rules() rules {
	r := rules{kinds: o.Kinds, keepPseudo: o.KeepPseudo}
	if len(r.kinds) == 0 {
		r.kinds = []Kind{KindCDS}
	}
	return r
}

// Parser is a one-pass, line-at-a-time GenBank reader.
// A feature is complete when its /product qualifier arrives; a feature that
// never sees /product is silently dropped.
type Parser struct {
	rules rules
	st    state
	seq   strings.Builder
	table *Table
}

func NewParser(opt Options) *Parser {
	return &Parser{rules: opt.rules(), table: NewTable()}
}

// Feed consumes one line (without its newline) and reports whether the
// record is complete. Lines fed after completion are ignored.
func (p *Parser) Feed(line string) bool {
	if p.st.section == sectionDone {
		return true
	}
	s := transition(p.st, line, p.rules)
	p.st = s.next
	if s.emit != nil {
		p.table.Put(*s.emit)
	}
	if s.bases != "" {
		p.seq.WriteString(s.bases)
	}
	return p.st.section == sectionDone
}

// started reports whether the FEATURES header has been seen.
func (p *Parser) started() bool { return p.st.section != sectionHeader }

// Done reports whether the closing "//" of ORIGIN was seen.
func (p *Parser) Done() bool { return p.st.section == sectionDone }

// Record returns what has been parsed so far.
func (p *Parser) Record() Record {
	return Record{Sequence: p.seq.String(), Features: p.table}
}

// ParseLines runs the parser over in-memory lines.
func ParseLines(lines []string, opt Options) Record {
	p := NewParser(opt)
	for _, l := range lines {
		if p.Feed(l) {
			break
		}
	}
	return p.Record()
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024
	sc.Buffer(make([]byte, 64*1024), maxLine)
	return sc
}

func scanLine(sc *bufio.Scanner) string { return strings.TrimRight(sc.Text(), "\r") }

// Parse reads r until the end of the first record's ORIGIN block or EOF.
func Parse(r io.Reader, opt Options) (Record, error) {
	sc := newScanner(r)
	p := NewParser(opt)
	for sc.Scan() {
		if p.Feed(scanLine(sc)) {
			return p.Record(), nil
		}
	}
	if err := sc.Err(); err != nil {
		return Record{}, fmt.Errorf("genbank scan: %w", err)
	}
	return p.Record(), nil
}

// ParseAll reads every record in r, in file order. A fresh Parser starts
// after each "//". Trailing text that never reaches FEATURES (blank lines
// after the last record) does not count as a record.
func ParseAll(r io.Reader, opt Options) ([]Record, error) {
	sc := newScanner(r)
	var recs []Record
	p := NewParser(opt)
	for sc.Scan() {
		if p.Feed(scanLine(sc)) {
			recs = append(recs, p.Record())
			p = NewParser(opt)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("genbank scan: %w", err)
	}
	if p.started() {
		recs = append(recs, p.Record())
	}
	return recs, nil
}
