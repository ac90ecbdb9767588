// Package build orchestrates file-level transpilation: read source, parse,
// lower to C, and write the output unit. Parsing or strict-mode failures
// produce no output file, never a partial one.
package build

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	cgen "github.com/pytoc/pytoc/compiler/internal/codegen/c"
	"github.com/pytoc/pytoc/compiler/internal/diag"
	"github.com/pytoc/pytoc/compiler/internal/lexer"
	"github.com/pytoc/pytoc/compiler/internal/parser"
)

// Result is the outcome of transpiling one input file.
type Result struct {
	Input string
	CText string
	Diags []diag.Diagnostic
}

// TranspileFile reads and transpiles one file. The returned error covers
// read failures, parse failures, strict-mode aborts, and internal faults;
// collected diagnostics are returned alongside either way.
func TranspileFile(path string, opts cgen.Options) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return TranspileSource(path, string(data), opts)
}

// TranspileSource transpiles already-read source text. Split out so tests
// and the watch loop can feed sources without touching the filesystem.
// Lexer warnings (unterminated strings, inconsistent dedents) are merged
// ahead of the lowering diagnostics.
func TranspileSource(name, src string, opts cgen.Options) (*Result, error) {
	lx := lexer.New(src)
	p := parser.NewFromSource(lx)
	prog, err := p.ParseProgram()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	out, diags, err := cgen.EmitProgram(prog, opts)
	diags = append(lx.Diagnostics(), diags...)
	res := &Result{Input: name, CText: out, Diags: diags}
	if err != nil {
		return res, fmt.Errorf("transpile %s: %w", name, err)
	}
	return res, nil
}

// OutputPath derives the written .c path: an explicit out wins, otherwise
// the input path with its extension swapped for .c.
func OutputPath(input, out string) string {
	if out != "" {
		return out
	}
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + ".c"
}

// WriteResult writes the translated unit. Callers only reach this on
// success; there is deliberately no write-what-we-have mode.
func WriteResult(res *Result, path string) error {
	if err := os.WriteFile(path, []byte(res.CText), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// BatchItem pairs one input with its outcome.
type BatchItem struct {
	Path   string
	Result *Result
	Err    error
}

// Batch transpiles many files concurrently, one isolated transpilation
// context per file; no scope or indent state is shared between invocations.
// Results come back in input order.
func Batch(paths []string, opts cgen.Options) []BatchItem {
	items := make([]BatchItem, len(paths))
	sem := make(chan struct{}, batchWorkers(len(paths)))
	var wg sync.WaitGroup
	for i, p := range paths {
		wg.Add(1)
		go func(i int, p string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			res, err := TranspileFile(p, opts)
			items[i] = BatchItem{Path: p, Result: res, Err: err}
		}(i, p)
	}
	wg.Wait()
	return items
}

func batchWorkers(n int) int {
	const max = 8
	if n < 1 {
		return 1
	}
	if n > max {
		return max
	}
	return n
}
