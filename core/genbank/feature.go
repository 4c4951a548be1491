package genbank

// Kind is a GenBank feature key the parser can accumulate.
type Kind string

const (
	KindCDS  Kind = "CDS"
	KindTRNA Kind = "tRNA"
	KindMRNA Kind = "mRNA"
	KindRRNA Kind = "rRNA"
)

// Kinds lists every feature key the parser understands, in display order.
var Kinds = []Kind{KindCDS, KindTRNA, KindMRNA, KindRRNA}

// ParseKind maps a feature key to a Kind. Keys are case-sensitive.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Feature is one completed feature record.
// Position is the raw location token, e.g. "190..255" or "complement(5..10)".
type Feature struct {
	LocusTag string
	Product  string
	Position string
	Kind     Kind
	Pseudo   bool
}

// Table maps locus tags to features. Iteration follows first insertion;
// a later Put for the same tag replaces the value in place.
type Table struct {
	order []string
	byTag map[string]Feature
}

func NewTable() *Table {
	return &Table{byTag: make(map[string]Feature)}
}

// Put inserts or overwrites f under f.LocusTag (last write wins).
func (t *Table) Put(f Feature) {
	if _, ok := t.byTag[f.LocusTag]; !ok {
		t.order = append(t.order, f.LocusTag)
	}
	t.byTag[f.LocusTag] = f
}

func (t *Table) Get(tag string) (Feature, bool) {
	f, ok := t.byTag[tag]
	return f, ok
}

func (t *Table) Len() int { return len(t.order) }

// Tags returns the locus tags in iteration order.
func (t *Table) Tags() []string {
	return append([]string(nil), t.order...)
}

// Features returns a copy of the table's values in iteration order.
func (t *Table) Features() []Feature {
	out := make([]Feature, 0, len(t.order))
	for _, tag := range t.order {
		out = append(out, t.byTag[tag])
	}
	return out
}

// Record is everything the parser extracts from one GenBank entry.
type Record struct {
	Sequence string
	Features *Table
}
