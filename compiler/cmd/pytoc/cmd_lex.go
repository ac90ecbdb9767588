package main

import (
	"os"

	"github.com/pytoc/pytoc/compiler/internal/lexer"
	"github.com/pytoc/pytoc/compiler/internal/term"
)

/* ---------- lex ---------- */

func cmdLex(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		term.Eprintf("read %s: %v\n", path, err)
		return 1
	}
	lx := lexer.New(string(data))
	for {
		t := lx.Next()
		if t.Lex != "" {
			term.Printf("%d:%d\t%v\t%q\n", t.Line, t.Col, t.Kind, t.Lex)
		} else {
			term.Printf("%d:%d\t%v\n", t.Line, t.Col, t.Kind)
		}
		if t.Kind == lexer.TokEOF {
			break
		}
	}
	for _, d := range lx.Diagnostics() {
		term.Eprintf("%s: %v\n", path, d)
	}
	return 0
}
