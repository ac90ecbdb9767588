package cgen

import (
	"github.com/pytoc/pytoc/compiler/internal/ast"
	"github.com/pytoc/pytoc/compiler/internal/diag"
)

// lowerStmt emits the C lines for one statement, recursing into nested
// blocks. A recoverable gap (unsupported construct) skips the statement in
// lenient mode and aborts the run in strict mode.
func (t *transpiler) lowerStmt(s ast.Stmt) error {
	switch st := s.(type) {
	case *ast.AssignStmt:
		return t.lowerAssign(st)
	case *ast.IfStmt:
		return t.lowerIf(st)
	case *ast.ForStmt:
		return t.lowerFor(st)
	case *ast.ExprStmt:
		return t.lowerExprStmt(st)
	case *ast.UnsupportedStmt:
		return t.gap(t.unsupportedStmt(st.Pos(), "%s", st.Kind))
	default:
		return t.gap(t.unsupportedStmt(s.Pos(), "unknown statement node"))
	}
}

func (t *transpiler) lowerStmts(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if err := t.lowerStmt(s); err != nil {
			return err
		}
	}
	return nil
}

// lowerAssign applies the declare-or-assign rule: the first assignment to a
// name declares it with the type inferred from the lowered right-hand side;
// every later assignment is bare, whatever the new value's shape.
func (t *transpiler) lowerAssign(st *ast.AssignStmt) error {
	rhs, err := t.lowerExpr(st.Expr)
	if err != nil {
		return t.gap(err)
	}
	typ := inferType(rhs)

	if b, ok := t.scope.lookup(st.Name); ok {
		if b.ctype != typ {
			ce := diag.MustLookup("transpile", "retype", "PTC0004", "reassignment changes inferred type")
			t.diags.Add(diag.Warningf(ce.ID, st.Pos(),
				"%q stays %s; value %s looks like %s", st.Name, b.ctype, rhs, typ))
		}
		t.w.linef("%s = %s;", st.Name, rhs)
		return nil
	}

	if typ == COpaque {
		ce := diag.MustLookup("transpile", "opaque_type", "PTC0005", "expression type not inferable")
		t.diags.Add(diag.Notef(ce.ID, st.Pos(), "%q declared void*: %s", st.Name, ce.Help))
	}
	t.scope.declare(st.Name, typ)
	t.w.linef("%s %s = %s;", typ, st.Name, rhs)
	return nil
}

// lowerIf emits matched brace blocks. The writer carries the outer depth
// explicitly, so `if` and `} else {` always share the same indentation,
// whatever the nesting.
func (t *transpiler) lowerIf(st *ast.IfStmt) error {
	cond, err := t.lowerExpr(st.Cond)
	if err != nil {
		return t.gap(err)
	}
	t.w.linef("if (%s) {", cond)
	if err := t.inBlock(st.Then); err != nil {
		return err
	}
	if st.Else != nil {
		t.w.linef("} else {")
		if err := t.inBlock(st.Else); err != nil {
			return err
		}
	}
	t.w.linef("}")
	return nil
}

// lowerFor recognizes exactly the bounded shapes range(end) and
// range(start, end) and emits the canonical counted loop. Anything else is
// an explicit gap, never a silent skip.
func (t *transpiler) lowerFor(st *ast.ForStmt) error {
	call, ok := st.Iter.(*ast.CallExpr)
	if !ok {
		return t.gap(t.unsupportedLoop(st.Pos(), "iteration over a non-range value"))
	}
	callee, ok := call.Callee.(*ast.IdentExpr)
	if !ok || callee.Name != "range" {
		return t.gap(t.unsupportedLoop(st.Pos(), "iteration over %s", ast.ExprString(call.Callee)))
	}

	var start, end string
	switch len(call.Args) {
	case 1:
		start = "0"
		e, err := t.lowerExpr(call.Args[0])
		if err != nil {
			return t.gap(err)
		}
		end = e
	case 2:
		s, err := t.lowerExpr(call.Args[0])
		if err != nil {
			return t.gap(err)
		}
		e, err := t.lowerExpr(call.Args[1])
		if err != nil {
			return t.gap(err)
		}
		start, end = s, e
	default:
		return t.gap(t.unsupportedLoop(st.Pos(), "range with %d arguments", len(call.Args)))
	}

	t.w.linef("for (int %s = %s; %s < %s; %s++) {", st.Var, start, st.Var, end, st.Var)
	prev := t.scope
	t.scope = newScope(prev)
	t.scope.vars[st.Var] = &binding{name: st.Var, ctype: CInt}
	t.w.indent()
	err := t.lowerStmts(st.Body)
	t.w.dedent()
	t.scope = prev
	if err != nil {
		return err
	}
	t.w.linef("}")
	return nil
}

// lowerExprStmt translates a bare call statement 1:1 onto a target routine
// of the same name. No arity or type validation happens here; the C
// compiler is the arbiter.
func (t *transpiler) lowerExprStmt(st *ast.ExprStmt) error {
	call, ok := st.Expr.(*ast.CallExpr)
	if !ok {
		if u, isU := st.Expr.(*ast.UnsupportedExpr); isU {
			return t.gap(t.unsupportedExpr(u.Pos(), "%s", u.Kind))
		}
		return t.gap(t.unsupportedStmt(st.Pos(), "expression statement with no effect"))
	}
	callee, ok := call.Callee.(*ast.IdentExpr)
	if !ok {
		return t.gap(t.unsupportedStmt(st.Pos(), "call of a non-identifier target"))
	}
	args := make([]string, 0, len(call.Args))
	for _, a := range call.Args {
		s, err := t.lowerExpr(a)
		if err != nil {
			return t.gap(err)
		}
		args = append(args, s)
	}
	t.w.linef("%s(%s);", callee.Name, joinArgs(args))
	return nil
}

// inBlock lowers a statement list one level deeper, in a child scope.
func (t *transpiler) inBlock(stmts []ast.Stmt) error {
	prev := t.scope
	t.scope = newScope(prev)
	t.w.indent()
	err := t.lowerStmts(stmts)
	t.w.dedent()
	t.scope = prev
	return err
}

func joinArgs(args []string) string {
	out := ""
	for i, a := range args {
		if i > 0 {
			out += ", "
		}
		out += a
	}
	return out
}
