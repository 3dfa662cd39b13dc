package errhandler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"unicode"

	"github.com/pterm/pterm"
)

// HandleError prints err for the operator and returns the exit code.
func HandleError(w io.Writer, err error) int {
	if errors.Is(err, context.Canceled) {
		fmt.Fprint(w, pterm.Warning.Sprintln("Operation Cancelled"))
		return 130
	}

	fmt.Fprint(w, pterm.Error.Sprintln(capitalize(err.Error())))
	return 1
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
