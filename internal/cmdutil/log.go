package cmdutil

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// NewLogger builds the stderr logger shared by the commands.
// quiet raises the level to error regardless of level.
func NewLogger(dst io.Writer, level string, quiet bool) (*log.Logger, error) {
	logger := log.NewWithOptions(dst, log.Options{Prefix: "gbextract"})
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if quiet {
		lvl = log.ErrorLevel
	}
	logger.SetLevel(lvl)
	return logger, nil
}

// ParseLevel accepts debug, info, warn/warning and error ("" means info).
func ParseLevel(s string) (log.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return log.DebugLevel, nil
	case "info", "":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	}
	return log.InfoLevel, fmt.Errorf("invalid --log-level %q", s)
}
