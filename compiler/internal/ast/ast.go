package ast

import (
	"github.com/pytoc/pytoc/compiler/internal/diag"
)

/*** NODES ***/

type Node interface {
	Pos() diag.Pos
	node()
}

// Program is one parsed source file: the top-level statement sequence.
type Program struct {
	Stmts []Stmt
}

/*** EXPRESSIONS ***/

// Expr is the closed set of expression variants the transpiler recognizes.
// Shapes outside the set parse into *UnsupportedExpr so downstream switches
// stay exhaustive and nothing is dropped silently.
type Expr interface {
	Node
	expr()
}

type IdentExpr struct {
	P    diag.Pos
	Name string
}

func (e *IdentExpr) Pos() diag.Pos { return e.P }
func (*IdentExpr) node()           {}
func (*IdentExpr) expr()           {}

// IntLit keeps the literal text, including a folded leading minus.
type IntLit struct {
	P     diag.Pos
	Value string
}

func (e *IntLit) Pos() diag.Pos { return e.P }
func (*IntLit) node()           {}
func (*IntLit) expr()           {}

// FloatLit keeps the digits '.' digits literal text.
type FloatLit struct {
	P     diag.Pos
	Value string
}

func (e *FloatLit) Pos() diag.Pos { return e.P }
func (*FloatLit) node()           {}
func (*FloatLit) expr()           {}

// StrLit keeps the quoted text, quotes included.
type StrLit struct {
	P     diag.Pos
	Value string
}

func (e *StrLit) Pos() diag.Pos { return e.P }
func (*StrLit) node()           {}
func (*StrLit) expr()           {}

type BoolLit struct {
	P     diag.Pos
	Value bool
}

func (e *BoolLit) Pos() diag.Pos { return e.P }
func (*BoolLit) node()           {}
func (*BoolLit) expr()           {}

// ListLit is a simple bracketed element list, e.g. [1, 2, 3].
type ListLit struct {
	P     diag.Pos
	Elems []Expr
}

func (e *ListLit) Pos() diag.Pos { return e.P }
func (*ListLit) node()           {}
func (*ListLit) expr()           {}

// BinaryExpr covers arithmetic {+ - * /} and comparison {< <= > >= ==}.
// The parser may also produce ops outside that set (%, !=, and, or); the
// lowering stage decides which ops it translates.
type BinaryExpr struct {
	P     diag.Pos
	Op    string
	Left  Expr
	Right Expr
}

func (e *BinaryExpr) Pos() diag.Pos { return e.P }
func (*BinaryExpr) node()           {}
func (*BinaryExpr) expr()           {}

// CallExpr appears as the iteration bound of a for statement and as the
// direct child of an ExprStmt. Calls in any other expression position are
// not part of the translated subset.
type CallExpr struct {
	P      diag.Pos
	Callee Expr
	Args   []Expr
}

func (e *CallExpr) Pos() diag.Pos { return e.P }
func (*CallExpr) node()           {}
func (*CallExpr) expr()           {}

// UnsupportedExpr marks an expression shape with no lowering rule.
// Kind names the construct (e.g. "unary operator", "chained comparison").
type UnsupportedExpr struct {
	P    diag.Pos
	Kind string
	Text string // best-effort source rendering for messages
}

func (e *UnsupportedExpr) Pos() diag.Pos { return e.P }
func (*UnsupportedExpr) node()           {}
func (*UnsupportedExpr) expr()           {}

/*** STATEMENTS ***/

type Stmt interface {
	Node
	stmt()
}

// AssignStmt is a single-target assignment: name = expr.
type AssignStmt struct {
	P    diag.Pos
	Name string
	Expr Expr
}

func (s *AssignStmt) Pos() diag.Pos { return s.P }
func (*AssignStmt) node()           {}
func (*AssignStmt) stmt()           {}

// IfStmt is a two-way conditional. elif chains parse as a nested IfStmt as
// the sole statement of Else.
type IfStmt struct {
	P    diag.Pos
	Cond Expr
	Then []Stmt
	Else []Stmt // nil when absent
}

func (s *IfStmt) Pos() diag.Pos { return s.P }
func (*IfStmt) node()           {}
func (*IfStmt) stmt()           {}

// ForStmt is `for <var> in <iter>:`. Iter is kept as parsed; only the
// lowering stage decides whether the bound is a supported range() shape.
type ForStmt struct {
	P    diag.Pos
	Var  string
	Iter Expr
	Body []Stmt
}

func (s *ForStmt) Pos() diag.Pos { return s.P }
func (*ForStmt) node()           {}
func (*ForStmt) stmt()           {}

// ExprStmt is a bare expression statement; only direct calls translate.
type ExprStmt struct {
	P    diag.Pos
	Expr Expr
}

func (s *ExprStmt) Pos() diag.Pos { return s.P }
func (*ExprStmt) node()           {}
func (*ExprStmt) stmt()           {}

// UnsupportedStmt marks a statement kind with no lowering rule
// (def, class, import, while, return, try, augmented or multi-target
// assignment, ...). Kind names the construct for diagnostics.
type UnsupportedStmt struct {
	P    diag.Pos
	Kind string
}

func (s *UnsupportedStmt) Pos() diag.Pos { return s.P }
func (*UnsupportedStmt) node()           {}
func (*UnsupportedStmt) stmt()           {}
