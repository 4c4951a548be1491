package output

import (
	"io"

	"gbextract/internal/extract"
	"gbextract/internal/jsonutil"
	"gbextract/pkg/api"
)

// ToAPIFeature converts a domain Product to the stable wire schema (v1).
func ToAPIFeature(p extract.Product, o Options) api.FeatureV1 {
	sq := o.Sequence(p)
	return api.FeatureV1{
		LocusTag:   p.Feature.LocusTag,
		Product:    p.Feature.Product,
		Type:       string(p.Feature.Kind),
		Location:   p.Feature.Position,
		Start:      p.Position.Start,
		End:        p.Position.Stop,
		Strand:     p.Position.Strand.String(),
		Length:     len(sq),
		Pseudo:     p.Feature.Pseudo,
		Seq:        sq,
		SourceFile: p.SourceFile,
	}
}

func toAPIFeatures(list []extract.Product, o Options) []api.FeatureV1 {
	out := make([]api.FeatureV1, 0, len(list))
	for _, p := range list {
		out = append(out, ToAPIFeature(p, o))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 features (pretty-indented).
func WriteJSON(w io.Writer, list []extract.Product, o Options) error {
	return jsonutil.EncodePretty(w, toAPIFeatures(list, o))
}
