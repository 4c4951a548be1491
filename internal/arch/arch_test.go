// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	upper := []string{"gbextract/internal/app", "gbextract/internal/cli", "gbextract/cmd/"}
	with := func(extra ...string) []string { return append(append([]string{}, upper...), extra...) }
	bans := map[string][]string{
		"gbextract/internal/extract": with(
			"gbextract/internal/pipeline", "gbextract/internal/writers",
			"gbextract/internal/output", "gbextract/internal/report",
		),
		"gbextract/internal/pipeline": with("gbextract/internal/writers", "gbextract/internal/output"),
		"gbextract/internal/writers":  with("gbextract/internal/pipeline"),
		"gbextract/internal/output":   with("gbextract/internal/pipeline", "gbextract/internal/writers"),
		"gbextract/internal/report":   with("gbextract/internal/pipeline", "gbextract/internal/writers"),
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "gbextract/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "gbextract/") {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}

// The core module stays free of CLI and output concerns.
func TestCoreHasNoAppImports(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = "../../core"
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list core: %v", err)
	}
	dec := json.NewDecoder(&out)
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		for _, dep := range p.Imports {
			if strings.HasPrefix(dep, "gbextract/") {
				t.Errorf("%s imports %s", p.ImportPath, dep)
			}
		}
	}
}
