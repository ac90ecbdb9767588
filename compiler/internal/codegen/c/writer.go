package cgen

import (
	"fmt"
	"strings"
)

const indentUnit = "    "

// writer collects output lines with an explicit indent depth. Block closers
// are emitted at the depth the caller owns; outer indentation is never
// reconstructed by trimming characters off an indent string.
type writer struct {
	lines []string
	depth int
}

func (w *writer) linef(format string, a ...any) {
	w.lines = append(w.lines, strings.Repeat(indentUnit, w.depth)+fmt.Sprintf(format, a...))
}

func (w *writer) indent() { w.depth++ }
func (w *writer) dedent() {
	if w.depth > 0 {
		w.depth--
	}
}
