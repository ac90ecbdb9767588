package ast

import (
	"fmt"
	"strings"
)

/*** DUMP (pretty outline for CLI) ***/

// DumpProgram renders a compact source-shaped outline of the program,
// used by `pytoc parse`.
func DumpProgram(p *Program) string {
	var b strings.Builder
	writeStmts(&b, p.Stmts, 0)
	return b.String()
}

func writeStmts(b *strings.Builder, stmts []Stmt, depth int) {
	for _, s := range stmts {
		writeStmt(b, s, depth)
	}
}

func writeStmt(b *strings.Builder, s Stmt, depth int) {
	ind := strings.Repeat("  ", depth)
	switch st := s.(type) {
	case *AssignStmt:
		fmt.Fprintf(b, "%s%s = %s\n", ind, st.Name, ExprString(st.Expr))
	case *IfStmt:
		fmt.Fprintf(b, "%sif %s:\n", ind, ExprString(st.Cond))
		writeStmts(b, st.Then, depth+1)
		if st.Else != nil {
			fmt.Fprintf(b, "%selse:\n", ind)
			writeStmts(b, st.Else, depth+1)
		}
	case *ForStmt:
		fmt.Fprintf(b, "%sfor %s in %s:\n", ind, st.Var, ExprString(st.Iter))
		writeStmts(b, st.Body, depth+1)
	case *ExprStmt:
		fmt.Fprintf(b, "%s%s\n", ind, ExprString(st.Expr))
	case *UnsupportedStmt:
		fmt.Fprintf(b, "%s<unsupported: %s>\n", ind, st.Kind)
	}
}

// ExprString renders an expression back to compact source-ish text.
func ExprString(e Expr) string {
	switch v := e.(type) {
	case *IdentExpr:
		return v.Name
	case *IntLit:
		return v.Value
	case *FloatLit:
		return v.Value
	case *StrLit:
		return v.Value
	case *BoolLit:
		if v.Value {
			return "True"
		}
		return "False"
	case *ListLit:
		var parts []string
		for _, el := range v.Elems {
			parts = append(parts, ExprString(el))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *BinaryExpr:
		return "(" + ExprString(v.Left) + " " + v.Op + " " + ExprString(v.Right) + ")"
	case *CallExpr:
		var parts []string
		for _, a := range v.Args {
			parts = append(parts, ExprString(a))
		}
		return ExprString(v.Callee) + "(" + strings.Join(parts, ", ") + ")"
	case *UnsupportedExpr:
		if v.Text != "" {
			return "<" + v.Kind + ": " + v.Text + ">"
		}
		return "<" + v.Kind + ">"
	default:
		return "<expr>"
	}
}
