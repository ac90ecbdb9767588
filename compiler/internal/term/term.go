package term

import (
	"fmt"
	"os"
)

// Print helpers that ignore (n, err) so linters don't complain about
// unhandled fmt results.

func Printf(format string, a ...any)  { _, _ = fmt.Printf(format, a...) }
func Eprintf(format string, a ...any) { _, _ = fmt.Fprintf(os.Stderr, format, a...) }
func Eprintln(a ...any)               { _, _ = fmt.Fprintln(os.Stderr, a...) }
