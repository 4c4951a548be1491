// Package dna resolves GenBank location tokens against an assembled
// sequence and reverse-complements minus-strand features.
package dna

import (
	"strconv"
	"strings"
)

// Strand is the orientation of a feature.
type Strand int8

const (
	Plus  Strand = 1
	Minus Strand = -1
)

func (s Strand) String() string {
	if s == Minus {
		return "-"
	}
	return "+"
}

const complementPrefix = "complement("

// Position is a parsed location. Start and Stop are 1-based inclusive.
type Position struct {
	Start  int
	Stop   int
	Strand Strand
}

// Len is the number of bases the position covers.
func (p Position) Len() int { return p.Stop - p.Start + 1 }

// ParsePosition accepts "start..stop" and "complement(start..stop)".
// Partial-end markers '<' and '>' are tolerated; join/order are not.
func ParsePosition(raw string) (Position, error) {
	p := Position{Strand: Plus}
	tok := raw
	if strings.Contains(tok, complementPrefix) {
		p.Strand = Minus
		tok = strings.Replace(tok, complementPrefix, "", 1)
		tok = strings.TrimSuffix(tok, ")")
	}
	if strings.ContainsAny(tok, "(),") {
		return Position{}, &PositionError{Raw: raw, Reason: "compound locations are not supported"}
	}
	lo, hi, ok := strings.Cut(tok, "..")
	if !ok {
		return Position{}, &PositionError{Raw: raw, Reason: "missing '..'"}
	}
	var err error
	if p.Start, err = parseBound(lo); err != nil {
		return Position{}, &PositionError{Raw: raw, Reason: "bad start: " + err.Error()}
	}
	if p.Stop, err = parseBound(hi); err != nil {
		return Position{}, &PositionError{Raw: raw, Reason: "bad stop: " + err.Error()}
	}
	if p.Start < 1 {
		return Position{}, &PositionError{Raw: raw, Reason: "start must be >= 1"}
	}
	if p.Start > p.Stop {
		return Position{}, &PositionError{Raw: raw, Reason: "start after stop"}
	}
	return p, nil
}

func parseBound(s string) (int, error) {
	s = strings.TrimLeft(s, "<>")
	return strconv.Atoi(s)
}
