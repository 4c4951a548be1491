package writers

import (
	"fmt"
	"io"
	"sort"

	"gbextract/internal/extract"
	"gbextract/internal/output"
)

// StreamFunc consumes products until in is closed.
type StreamFunc func(w io.Writer, in <-chan extract.Product, o output.Options) error

// ProductWriters maps a format name to its handler.
// Register in init() blocks; last registration wins.
var ProductWriters = map[string]StreamFunc{}

func RegisterProduct(format string, fn StreamFunc) { ProductWriters[format] = fn }

func lookupProduct(format string) (StreamFunc, error) {
	fn, ok := ProductWriters[format]
	if !ok {
		return nil, fmt.Errorf("unknown product format %q (no writer registered)", format)
	}
	return fn, nil
}

// Registered lists the registered format names, sorted.
func Registered() []string {
	out := make([]string, 0, len(ProductWriters))
	for k := range ProductWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
