package obs

import (
	"io"
	"strings"

	"github.com/pterm/pterm"
)

var levels = map[string]pterm.LogLevel{
	"trace": pterm.LogLevelTrace,
	"debug": pterm.LogLevelDebug,
	"info":  pterm.LogLevelInfo,
	"warn":  pterm.LogLevelWarn,
	"error": pterm.LogLevelError,
}

// NewLogger returns a pterm logger writing to w. Unknown level names fall
// back to warn.
func NewLogger(level string, w io.Writer) *pterm.Logger {
	lvl, ok := levels[strings.ToLower(level)]
	if !ok {
		lvl = pterm.LogLevelWarn
	}

	return pterm.DefaultLogger.
		WithLevel(lvl).
		WithWriter(w).
		WithTime(false)
}
