package main

import (
	"os"
	"strings"

	"github.com/pytoc/pytoc/compiler/internal/ast"
	"github.com/pytoc/pytoc/compiler/internal/parser"
	"github.com/pytoc/pytoc/compiler/internal/term"
)

/* ---------- parse ---------- */

func cmdParse(args []string) int {
	var file string
	for _, s := range args {
		switch {
		case !strings.HasPrefix(s, "-") && file == "":
			file = s
		default:
			term.Eprintln("usage: pytoc parse <file.py>")
			return 2
		}
	}
	if file == "" {
		term.Eprintln("usage: pytoc parse <file.py>")
		return 2
	}

	data, err := os.ReadFile(file)
	if err != nil {
		term.Eprintf("read %s: %v\n", file, err)
		return 1
	}
	p := parser.New(string(data))
	prog, err := p.ParseProgram()
	if err != nil {
		term.Eprintf("error: %v\n", err)
		return 1
	}
	term.Printf("%s", ast.DumpProgram(prog))
	return 0
}
