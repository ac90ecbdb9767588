package cgen

import (
	"strings"

	"github.com/pytoc/pytoc/compiler/internal/ast"
)

// cOps maps source operators to their C spelling. Only these translate;
// every other operator the parser produced (%, !=, and, or) is reported as
// an unsupported expression rather than emitted unverified.
var cOps = map[string]string{
	"+":  "+",
	"-":  "-",
	"*":  "*",
	"/":  "/",
	"<":  "<",
	"<=": "<=",
	">":  ">",
	">=": ">=",
	"==": "==",
}

// lowerExpr renders one expression into C text. Unsupported shapes record a
// diagnostic and return an error so the enclosing statement can be skipped
// (lenient) or the run aborted (strict); no placeholder text is ever
// emitted into the output.
func (t *transpiler) lowerExpr(e ast.Expr) (string, error) {
	switch v := e.(type) {
	case *ast.IntLit:
		return v.Value, nil
	case *ast.FloatLit:
		return v.Value, nil
	case *ast.StrLit:
		return v.Value, nil
	case *ast.BoolLit:
		if v.Value {
			return "true", nil
		}
		return "false", nil
	case *ast.IdentExpr:
		return v.Name, nil
	case *ast.ListLit:
		var parts []string
		for _, el := range v.Elems {
			s, err := t.lowerExpr(el)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return "{" + strings.Join(parts, ", ") + "}", nil
	case *ast.BinaryExpr:
		op, ok := cOps[v.Op]
		if !ok {
			return "", t.unsupportedExpr(v.Pos(), "operator %q", v.Op)
		}
		left, err := t.lowerExpr(v.Left)
		if err != nil {
			return "", err
		}
		right, err := t.lowerExpr(v.Right)
		if err != nil {
			return "", err
		}
		// always fully parenthesized so source evaluation order survives,
		// independent of C precedence
		return "(" + left + " " + op + " " + right + ")", nil
	case *ast.CallExpr:
		// calls translate only as whole statements or range() bounds
		return "", t.unsupportedExpr(v.Pos(), "call in expression position")
	case *ast.UnsupportedExpr:
		if v.Text != "" {
			return "", t.unsupportedExpr(v.Pos(), "%s (%s)", v.Kind, v.Text)
		}
		return "", t.unsupportedExpr(v.Pos(), "%s", v.Kind)
	default:
		return "", t.unsupportedExpr(e.Pos(), "unknown expression node")
	}
}
