// Package cliutil turns command-line GENBANK arguments into input paths.
package cliutil

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ExpandInputs replaces each glob pattern among args with the files it
// matches (sorted), keeping argument order. "-" and literal paths are
// kept as given; a pattern that matches no file is an error.
func ExpandInputs(args []string) ([]string, error) {
	inputs := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "-" || !strings.ContainsAny(arg, "*?[") {
			inputs = append(inputs, arg)
			continue
		}
		files, err := filepath.Glob(arg)
		switch {
		case err != nil:
			return nil, fmt.Errorf("input pattern %q: %w", arg, err)
		case len(files) == 0:
			return nil, fmt.Errorf("no GenBank file matches %q", arg)
		}
		inputs = append(inputs, files...)
	}
	return inputs, nil
}
