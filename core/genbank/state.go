package genbank

import "strings"

type section int

const (
	sectionHeader section = iota
	sectionFeatures
	sectionOrigin
	sectionDone
)

// accumulator holds the qualifiers of the feature currently being read.
// The zero value (empty kind) means no feature is open.
type accumulator struct {
	kind     Kind
	position string
	locusTag string
	product  string
	pseudo   bool
}

func (a accumulator) open() bool { return a.kind != "" }

func (a accumulator) feature() Feature {
	return Feature{
		LocusTag: a.locusTag,
		Product:  a.product,
		Position: a.position,
		Kind:     a.kind,
		Pseudo:   a.pseudo,
	}
}

// state is the parser position. current is only meaningful in sectionFeatures.
type state struct {
	section section
	current accumulator
}

// step is the result of feeding one line to a state.
type step struct {
	next  state
	emit  *Feature
	bases string
}

// rules are the option-derived inputs a transition needs.
type rules struct {
	kinds      []Kind
	keepPseudo bool
}

const (
	prefixFeatures = "FEATURES"
	prefixOrigin   = "ORIGIN"
	prefixEnd      = "//"
	qualLocusTag   = "/locus_tag"
	qualPseudo     = "/pseudo"
	qualProduct    = "/product"
)

// transition is a pure function of (state, line). It never mutates s.
func transition(s state, line string, r rules) step {
	switch s.section {
	case sectionHeader:
		if strings.HasPrefix(line, prefixFeatures) {
			return step{next: state{section: sectionFeatures}}
		}
		return step{next: s}

	case sectionFeatures:
		if strings.HasPrefix(line, prefixOrigin) {
			return step{next: state{section: sectionOrigin}}
		}
		return featureLine(s, strings.TrimSpace(line), r)

	case sectionOrigin:
		if strings.HasPrefix(line, prefixEnd) {
			return step{next: state{section: sectionDone}}
		}
		return step{next: s, bases: originBases(line)}
	}
	return step{next: s}
}

func featureLine(s state, line string, r rules) step {
	if k, ok := r.startsFeature(line); ok {
		acc := accumulator{kind: k}
		if f := strings.Fields(line); len(f) > 1 {
			acc.position = f[1]
		}
		return step{next: state{section: sectionFeatures, current: acc}}
	}
	if !s.current.open() {
		return step{next: s}
	}

	acc := s.current
	switch {
	case strings.HasPrefix(line, qualLocusTag):
		acc.locusTag = qualifierValue(line, qualLocusTag+"=")
	case strings.HasPrefix(line, qualPseudo):
		acc.pseudo = true
	case strings.HasPrefix(line, qualProduct):
		acc.product = qualifierValue(line, qualProduct+"=")
		st := step{next: state{section: sectionFeatures}}
		if !acc.pseudo || r.keepPseudo {
			f := acc.feature()
			st.emit = &f
		}
		return st
	default:
		return step{next: s}
	}
	return step{next: state{section: sectionFeatures, current: acc}}
}

func (r rules) startsFeature(line string) (Kind, bool) {
	for _, k := range r.kinds {
		if strings.HasPrefix(line, string(k)) {
			return k, true
		}
	}
	return "", false
}

// qualifierValue drops the "/name=" prefix and every double quote.
func qualifierValue(line, prefix string) string {
	v := strings.TrimPrefix(line, prefix)
	return strings.ReplaceAll(v, `"`, "")
}

// originBases turns "       61 gtgagcgtga ..." into "GTGAGCGTGA...".
func originBases(line string) string {
	f := strings.Fields(line)
	if len(f) < 2 {
		return ""
	}
	return strings.ToUpper(strings.Join(f[1:], ""))
}
