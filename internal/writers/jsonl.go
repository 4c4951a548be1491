package writers

import (
	"encoding/json"
	"io"

	"gbextract/internal/extract"
	"gbextract/internal/jsonlutil"
	"gbextract/internal/output"
)

// streamJSONL writes each extract.Product as one JSON line (v1).
func streamJSONL(w io.Writer, in <-chan extract.Product, o output.Options) error {
	return jsonlutil.Stream[extract.Product](w, in,
		func(enc *json.Encoder, p extract.Product) error {
			return enc.Encode(output.ToAPIFeature(p, o))
		},
		IsBrokenPipe,
	)
}
