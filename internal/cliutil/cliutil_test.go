package cliutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExpandInputs(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.gbk")
	b := filepath.Join(dir, "b.gbk.gz")
	_ = os.WriteFile(a, []byte("LOCUS\n"), 0o644)
	_ = os.WriteFile(b, []byte("LOCUS\n"), 0o644)
	got, err := ExpandInputs([]string{filepath.Join(dir, "*.gbk*"), "-", "plain.gbk"})
	if err != nil || len(got) != 4 {
		t.Fatalf("expand: err=%v got=%v", err, got)
	}
	if got[0] != a || got[1] != b {
		t.Fatalf("glob matches not sorted: %v", got)
	}
	if got[2] != "-" || got[3] != "plain.gbk" {
		t.Fatalf("pass-through order wrong: %v", got)
	}
}

func TestExpandInputsErrors(t *testing.T) {
	_, err := ExpandInputs([]string{filepath.Join(t.TempDir(), "*.gbk")})
	if err == nil || !strings.Contains(err.Error(), "no GenBank file matches") {
		t.Fatalf("empty glob: %v", err)
	}
	_, err = ExpandInputs([]string{"[bad"})
	if !errors.Is(err, filepath.ErrBadPattern) {
		t.Fatalf("bad pattern: %v", err)
	}
}
