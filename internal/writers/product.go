package writers

import (
	"io"

	"gbextract/internal/extract"
	"gbextract/internal/output"
)

func init() {
	RegisterProduct(output.FormatFASTA, output.StreamFASTA)
	RegisterProduct(output.FormatTSV, output.StreamTSV)
	RegisterProduct(output.FormatJSONL, streamJSONL)
	RegisterProduct(output.FormatJSON, func(w io.Writer, in <-chan extract.Product, o output.Options) error {
		var buf []extract.Product
		for p := range in {
			buf = append(buf, p)
		}
		return output.WriteJSON(w, buf, o)
	})
}

// StartProductWriter spins up a writer goroutine for extract.Product items.
// The channel is always drained, so senders never block on a failed writer;
// the first error is delivered once the channel is closed.
func StartProductWriter(out io.Writer, format string, o output.Options, bufSize int) (chan<- extract.Product, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan extract.Product, bufSize)
	errCh := make(chan error, 1)

	go func() {
		fn, err := lookupProduct(format)
		if err == nil {
			err = fn(out, in, o)
		}
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}
