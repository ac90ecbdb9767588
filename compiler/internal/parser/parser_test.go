package parser

import (
	"strings"
	"testing"

	"github.com/pytoc/pytoc/compiler/internal/ast"
)

func parseOK(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := New(src)
	prog, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return prog
}

func TestParseAssignAndCall(t *testing.T) {
	prog := parseOK(t, "x = 1 + 2 * 3\nprint(x)\n")
	if len(prog.Stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(prog.Stmts))
	}

	asg, ok := prog.Stmts[0].(*ast.AssignStmt)
	if !ok || asg.Name != "x" {
		t.Fatalf("stmt0 not AssignStmt to x")
	}
	plus, ok := asg.Expr.(*ast.BinaryExpr)
	if !ok || plus.Op != "+" {
		t.Fatalf("assign expr not Binary '+'")
	}
	times, ok := plus.Right.(*ast.BinaryExpr)
	if !ok || times.Op != "*" {
		t.Fatalf("right child not '*': %T", plus.Right)
	}

	es, ok := prog.Stmts[1].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("stmt1 not ExprStmt")
	}
	call, ok := es.Expr.(*ast.CallExpr)
	if !ok {
		t.Fatalf("stmt1 expr not CallExpr: %T", es.Expr)
	}
	if id, ok := call.Callee.(*ast.IdentExpr); !ok || id.Name != "print" {
		t.Fatalf("callee not print")
	}
}

func TestParseIfElifElse(t *testing.T) {
	src := "" +
		"if a < b:\n" +
		"    x = 1\n" +
		"elif a == b:\n" +
		"    x = 2\n" +
		"else:\n" +
		"    x = 3\n"
	prog := parseOK(t, src)
	ifst, ok := prog.Stmts[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("stmt0 not IfStmt")
	}
	if len(ifst.Then) != 1 || ifst.Else == nil {
		t.Fatalf("if shape wrong: then=%d else=%v", len(ifst.Then), ifst.Else)
	}
	nested, ok := ifst.Else[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("elif did not become nested IfStmt: %T", ifst.Else[0])
	}
	if nested.Else == nil || len(nested.Else) != 1 {
		t.Fatalf("nested else missing")
	}
}

func TestParseForRange(t *testing.T) {
	prog := parseOK(t, "for i in range(2, 7):\n    print(i)\n")
	fst, ok := prog.Stmts[0].(*ast.ForStmt)
	if !ok || fst.Var != "i" {
		t.Fatalf("stmt0 not ForStmt over i")
	}
	call, ok := fst.Iter.(*ast.CallExpr)
	if !ok || len(call.Args) != 2 {
		t.Fatalf("iter not 2-arg call: %v", ast.ExprString(fst.Iter))
	}
}

func TestUnsupportedStatementsSurvive(t *testing.T) {
	src := "" +
		"while x < 10:\n" +
		"    x = x + 1\n" +
		"x += 1\n" +
		"def f():\n" +
		"    return 1\n" +
		"import os\n"
	prog := parseOK(t, src)
	if len(prog.Stmts) != 4 {
		t.Fatalf("expected 4 statements, got %d", len(prog.Stmts))
	}
	wantKinds := []string{"while loop", "augmented assignment", "function definition", "import"}
	for i, want := range wantKinds {
		u, ok := prog.Stmts[i].(*ast.UnsupportedStmt)
		if !ok {
			t.Fatalf("stmt%d not UnsupportedStmt: %T", i, prog.Stmts[i])
		}
		if u.Kind != want {
			t.Fatalf("stmt%d kind=%q, want %q", i, u.Kind, want)
		}
	}
}

func TestNegativeLiteralFolds(t *testing.T) {
	prog := parseOK(t, "x = -5\ny = -2.5\n")
	if lit, ok := prog.Stmts[0].(*ast.AssignStmt).Expr.(*ast.IntLit); !ok || lit.Value != "-5" {
		t.Fatalf("negative int literal not folded: %v", ast.ExprString(prog.Stmts[0].(*ast.AssignStmt).Expr))
	}
	if lit, ok := prog.Stmts[1].(*ast.AssignStmt).Expr.(*ast.FloatLit); !ok || lit.Value != "-2.5" {
		t.Fatalf("negative float literal not folded")
	}
}

func TestUnsupportedExprShapes(t *testing.T) {
	prog := parseOK(t, "x = not y\nz = a < b < c\nw = v[0]\n")
	for i, want := range []string{"unary operator", "chained comparison", "subscript"} {
		asg := prog.Stmts[i].(*ast.AssignStmt)
		u, ok := asg.Expr.(*ast.UnsupportedExpr)
		if !ok {
			t.Fatalf("stmt%d expr not UnsupportedExpr: %T", i, asg.Expr)
		}
		if u.Kind != want {
			t.Fatalf("stmt%d kind=%q, want %q", i, u.Kind, want)
		}
	}
}

func TestNonNameAssignTargetsSkip(t *testing.T) {
	src := "" +
		"a[0] = 1\n" +
		"x.y = 2\n" +
		"b[1] += 3\n" +
		"x = 2\n"
	prog := parseOK(t, src)
	if len(prog.Stmts) != 4 {
		t.Fatalf("expected 4 statements, got %d", len(prog.Stmts))
	}
	wantKinds := []string{
		"assignment to a non-name target",
		"assignment to a non-name target",
		"augmented assignment",
	}
	for i, want := range wantKinds {
		u, ok := prog.Stmts[i].(*ast.UnsupportedStmt)
		if !ok {
			t.Fatalf("stmt%d not UnsupportedStmt: %T", i, prog.Stmts[i])
		}
		if u.Kind != want {
			t.Fatalf("stmt%d kind=%q, want %q", i, u.Kind, want)
		}
	}
	if asg, ok := prog.Stmts[3].(*ast.AssignStmt); !ok || asg.Name != "x" {
		t.Fatalf("statement after skipped targets did not parse")
	}
}

func TestDictLiteralIsUnsupportedExpr(t *testing.T) {
	prog := parseOK(t, "d = {1: 2, 3: {4: 5}}\nx = 1\n")
	if len(prog.Stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(prog.Stmts))
	}
	u, ok := prog.Stmts[0].(*ast.AssignStmt).Expr.(*ast.UnsupportedExpr)
	if !ok || u.Kind != "dict or set literal" {
		t.Fatalf("dict rhs not flagged: %v", ast.ExprString(prog.Stmts[0].(*ast.AssignStmt).Expr))
	}
	if _, ok := prog.Stmts[1].(*ast.AssignStmt); !ok {
		t.Fatalf("statement after dict literal did not parse")
	}
}

func TestMissingColonIsParseError(t *testing.T) {
	p := New("if x < y\n    z = 1\n")
	_, err := p.ParseProgram()
	if err == nil {
		t.Fatalf("expected parse error for missing ':'")
	}
	if !strings.Contains(err.Error(), "PTP0002") {
		t.Fatalf("error not cataloged: %v", err)
	}
}

func TestListLiteral(t *testing.T) {
	prog := parseOK(t, "xs = [1, 2, 3]\n")
	lit, ok := prog.Stmts[0].(*ast.AssignStmt).Expr.(*ast.ListLit)
	if !ok || len(lit.Elems) != 3 {
		t.Fatalf("list literal shape wrong")
	}
}
