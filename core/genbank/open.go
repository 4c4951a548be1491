package genbank

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a reader over path ("-" is stdin). Gzip input is detected by
// the 1F 8B magic number or a .gz suffix; forceGzip skips detection.
func Open(path string, forceGzip bool) (io.ReadCloser, error) {
	if path == "-" {
		return wrapStream(io.NopCloser(os.Stdin), forceGzip)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return wrapStream(fh, forceGzip || strings.HasSuffix(path, ".gz"))
}

// wrapStream peeks at the first two bytes so non-seekable input (stdin,
// pipes) gets the same detection as files.
func wrapStream(rc io.ReadCloser, forceGzip bool) (io.ReadCloser, error) {
	br := bufio.NewReader(rc)
	sig, _ := br.Peek(2)
	isGzip := len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b
	if !isGzip && !forceGzip {
		return &multiReadCloser{Reader: br, closers: []io.Closer{rc}}, nil
	}
	gr, err := gzip.NewReader(br)
	if err != nil {
		_ = rc.Close()
		return nil, err
	}
	return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, rc}}, nil
}
