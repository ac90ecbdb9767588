package main

import (
	"os"

	"github.com/pytoc/pytoc/compiler/internal/term"
	"github.com/pytoc/pytoc/compiler/internal/version"
)

/* ---------- main ---------- */

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}
	switch os.Args[1] {
	case "version", "--version", "-v":
		term.Printf("%s\n", version.String())
	case "help", "--help", "-h":
		usage()
	case "lex":
		if len(os.Args) != 3 {
			term.Eprintln("usage: pytoc lex <file.py>")
			os.Exit(2)
		}
		os.Exit(cmdLex(os.Args[2]))
	case "parse":
		os.Exit(cmdParse(os.Args[2:]))
	case "build":
		os.Exit(cmdBuild(os.Args[2:]))
	default:
		term.Eprintf("unknown command: %s\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}
