package writers

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"syscall"
	"testing"

	"gbextract-core/dna"
	"gbextract-core/genbank"
	"gbextract/internal/extract"
	"gbextract/internal/output"
	"gbextract/pkg/api"
)

func product(tag string) extract.Product {
	return extract.Product{
		Feature:    genbank.Feature{LocusTag: tag, Product: "p " + tag, Position: "1..6", Kind: genbank.KindCDS},
		Position:   dna.Position{Start: 1, Stop: 6, Strand: dna.Plus},
		DNA:        "ATGAAA",
		Protein:    "MK",
		Translated: true,
	}
}

func TestUnknownProductFormatError(t *testing.T) {
	var b bytes.Buffer
	in, done := StartProductWriter(&b, "nope-format", output.Options{}, 1)
	in <- product("a") // must not block even though no writer exists
	close(in)
	err := <-done
	if err == nil || !strings.Contains(err.Error(), "unknown product format") {
		t.Fatalf("want 'unknown product format' error, got: %v", err)
	}
}

func TestRegisteredFormats(t *testing.T) {
	got := strings.Join(Registered(), ",")
	if got != "fasta,json,jsonl,tsv" {
		t.Fatalf("registered = %s", got)
	}
}

func TestStartProductWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartProductWriter(&buf, output.FormatJSON, output.Options{Seq: output.SeqProtein}, 4)
	in <- product("x")
	in <- product("y")
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("writer err: %v", err)
	}
	var got []api.FeatureV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil || len(got) != 2 {
		t.Fatalf("json roundtrip: %v len=%d", err, len(got))
	}
	if got[0].LocusTag != "x" || got[0].Seq != "MK" {
		t.Fatalf("first = %+v", got[0])
	}
}

func TestStartProductWriterJSONL(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartProductWriter(&buf, output.FormatJSONL, output.Options{Seq: output.SeqDNA}, 4)
	in <- product("a")
	in <- product("b")
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("writer err: %v", err)
	}
	sc := bufio.NewScanner(&buf)
	var tags []string
	for sc.Scan() {
		var f api.FeatureV1
		if err := json.Unmarshal(sc.Bytes(), &f); err != nil {
			t.Fatalf("line %q: %v", sc.Text(), err)
		}
		if f.Seq != "ATGAAA" {
			t.Fatalf("seq = %q", f.Seq)
		}
		tags = append(tags, f.LocusTag)
	}
	if strings.Join(tags, ",") != "a,b" {
		t.Fatalf("tags = %v", tags)
	}
}

func TestStartProductWriterFASTAAndTSV(t *testing.T) {
	for _, format := range []string{output.FormatFASTA, output.FormatTSV} {
		var buf bytes.Buffer
		in, done := StartProductWriter(&buf, format, output.Options{Seq: output.SeqProtein}, 0)
		in <- product("a")
		close(in)
		if err := <-done; err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		if !strings.Contains(buf.String(), "MK") {
			t.Fatalf("%s output missing protein: %q", format, buf.String())
		}
	}
}

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

func TestWriterErrorDrainsInput(t *testing.T) {
	in, done := StartProductWriter(failWriter{err: io.ErrClosedPipe}, output.FormatTSV, output.Options{Header: true}, 1)
	for i := 0; i < 10; i++ {
		in <- product("a")
	}
	close(in)
	err := <-done
	if !IsBrokenPipe(err) {
		t.Fatalf("want broken pipe, got %v", err)
	}
}

func TestIsBrokenPipe(t *testing.T) {
	if !IsBrokenPipe(syscall.EPIPE) || !IsBrokenPipe(io.ErrClosedPipe) {
		t.Fatal("pipe errors not recognized")
	}
	if IsBrokenPipe(nil) || IsBrokenPipe(errors.New("other")) {
		t.Fatal("false positive")
	}
}
