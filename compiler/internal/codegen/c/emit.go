// Package cgen lowers a parsed Python-subset program into one C translation
// unit: a fixed header block and a single main() holding the lowered
// statement sequence.
package cgen

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/pytoc/pytoc/compiler/internal/ast"
	"github.com/pytoc/pytoc/compiler/internal/diag"
)

// Mode selects the policy for unsupported constructs.
type Mode int

const (
	// ModeLenient skips each unsupported construct and collects a warning
	// per occurrence.
	ModeLenient Mode = iota
	// ModeStrict aborts the run on the first unsupported construct.
	ModeStrict
)

// Options configures one transpilation call.
type Options struct {
	Mode Mode
}

// ErrInternal marks a recovered panic inside the transpiler, as opposed to
// the recoverable per-statement gaps reported as diagnostics.
var ErrInternal = errors.New("internal transpiler error")

// defaultHeaders is the fixed include set, emitted whether or not a feature
// is used. Usage-driven selection is a known possible refinement; the fixed
// set keeps output stable.
var defaultHeaders = []string{"stdio.h", "stdbool.h", "string.h", "stdlib.h"}

// transpiler is the per-call context: scope chain, output builder,
// diagnostic sink. Nothing here outlives or is shared between calls, so
// concurrent EmitProgram calls are independent.
type transpiler struct {
	opts  Options
	scope *scope
	w     *writer
	diags *diag.List
}

// EmitProgram walks the program's top-level statements and assembles the
// final translation unit. It returns the C text, all collected diagnostics,
// and an error when strict mode aborted or an internal fault was recovered.
// On error the returned text is empty; callers must not write partial output.
func EmitProgram(prog *ast.Program, opts Options) (out string, diags []diag.Diagnostic, err error) {
	t := &transpiler{
		opts:  opts,
		scope: newScope(nil),
		w:     &writer{depth: 1},
		diags: &diag.List{},
	}
	defer func() {
		if r := recover(); r != nil {
			out = ""
			diags = t.diags.All()
			err = fmt.Errorf("%w: %v", ErrInternal, r)
		}
	}()

	if walkErr := t.lowerStmts(prog.Stmts); walkErr != nil {
		return "", t.diags.All(), walkErr
	}

	var b strings.Builder
	headers := append([]string(nil), defaultHeaders...)
	sort.Strings(headers)
	for _, h := range headers {
		fmt.Fprintf(&b, "#include <%s>\n", h)
	}
	b.WriteString("\n")
	b.WriteString("int main() {\n")
	for _, line := range t.w.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(indentUnit + "return 0;\n")
	b.WriteString("}\n")
	return b.String(), t.diags.All(), nil
}

/* ---------- gap reporting ---------- */

// severity of a gap depends on the mode: strict turns it into an error.
func (t *transpiler) gapSeverity() diag.Severity {
	if t.opts.Mode == ModeStrict {
		return diag.SevError
	}
	return diag.SevWarning
}

// gap decides propagation for a reported gap: abort in strict mode, skip
// the statement otherwise.
func (t *transpiler) gap(reported error) error {
	if t.opts.Mode == ModeStrict {
		return reported
	}
	return nil
}

func (t *transpiler) unsupportedStmt(pos diag.Pos, format string, a ...any) error {
	ce := diag.MustLookup("transpile", "unsupported_stmt", "PTC0001", "unsupported statement")
	d := diag.Diagnostic{
		Severity: t.gapSeverity(),
		Code:     ce.ID,
		Span:     diag.Span{Start: pos},
		Msg:      ce.Title + ": " + fmt.Sprintf(format, a...),
	}
	t.diags.Add(d)
	return d
}

func (t *transpiler) unsupportedExpr(pos diag.Pos, format string, a ...any) error {
	ce := diag.MustLookup("transpile", "unsupported_expr", "PTC0002", "unsupported expression")
	d := diag.Diagnostic{
		Severity: t.gapSeverity(),
		Code:     ce.ID,
		Span:     diag.Span{Start: pos},
		Msg:      ce.Title + ": " + fmt.Sprintf(format, a...),
	}
	t.diags.Add(d)
	return d
}

func (t *transpiler) unsupportedLoop(pos diag.Pos, format string, a ...any) error {
	ce := diag.MustLookup("transpile", "unsupported_loop", "PTC0003", "unsupported loop shape")
	d := diag.Diagnostic{
		Severity: t.gapSeverity(),
		Code:     ce.ID,
		Span:     diag.Span{Start: pos},
		Msg:      ce.Title + ": " + fmt.Sprintf(format, a...),
	}
	t.diags.Add(d)
	return d
}
