package api

// FeatureV1 is the stable JSON/JSONL schema for one extracted feature.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type FeatureV1 struct {
	LocusTag   string `json:"locus_tag"`
	Product    string `json:"product"`
	Type       string `json:"type"`     // "CDS" | "tRNA" | "mRNA" | "rRNA"
	Location   string `json:"location"` // raw GenBank token
	Start      int    `json:"start"`    // 1-based inclusive
	End        int    `json:"end"`      // 1-based inclusive
	Strand     string `json:"strand"`   // "+" | "-"
	Length     int    `json:"length"`   // length of Seq
	Pseudo     bool   `json:"pseudo,omitempty"`
	Seq        string `json:"seq"`
	SourceFile string `json:"source_file,omitempty"`
}
