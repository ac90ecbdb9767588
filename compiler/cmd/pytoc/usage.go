package main

import "github.com/pytoc/pytoc/compiler/internal/term"

func usage() {
	term.Eprintln("pytoc — Python-subset → C transpiler")
	term.Eprintln("")
	term.Eprintln("Usage:")
	term.Eprintln("  pytoc <command> [args]")
	term.Eprintln("")
	term.Eprintln("Commands:")
	term.Eprintln("  version                                Print version")
	term.Eprintln("  help                                   Show this help")
	term.Eprintln("  lex <file.py>                          Lex a file and print tokens")
	term.Eprintln("  parse <file.py>                        Parse a file and print the AST outline")
	term.Eprintln("  build [--out=path] [--cc[=bin]] [--strict] [--Werror] [--watch] [--verbose] <file.py>...")
	term.Eprintln("                                         Transpile to C (flags may appear before or after files)")
	term.Eprintln("")
	term.Eprintln("Notes:")
	term.Eprintln("  - Output goes next to the input with a .c extension; --out overrides it (single input only).")
	term.Eprintln("  - --strict aborts on the first construct outside the translated subset;")
	term.Eprintln("    the default skips it and prints a warning per occurrence.")
	term.Eprintln("  - --cc compiles the generated C (clang/gcc autodetected, PYTOC_CC overrides).")
	term.Eprintln("  - --watch rebuilds whenever an input file changes.")
}
