package parser

import (
	"github.com/pytoc/pytoc/compiler/internal/ast"
	"github.com/pytoc/pytoc/compiler/internal/diag"
	"github.com/pytoc/pytoc/compiler/internal/lexer"
)

// Parser is a recursive-descent parser over the lexer's token stream.
// It recognizes the translated subset (assignment, if/elif/else,
// for-over-range headers, call statements) and folds everything else into
// explicit Unsupported nodes so the lowering stage can report them.
type Parser struct {
	src lexer.Source
	tok lexer.Token
}

func New(src string) *Parser {
	return NewFromSource(lexer.NewSource(src))
}

// NewFromSource builds a parser over any token source.
func NewFromSource(src lexer.Source) *Parser {
	p := &Parser{src: src}
	p.next()
	return p
}

func (p *Parser) next()                   { p.tok = p.src.Next() }
func (p *Parser) at(k lexer.TokKind) bool { return p.tok.Kind == k }
func (p *Parser) accept(k lexer.TokKind) bool {
	if p.at(k) {
		p.next()
		return true
	}
	return false
}
func (p *Parser) pos() diag.Pos { return diag.Pos{Line: p.tok.Line, Col: p.tok.Col} }

func (p *Parser) expect(k lexer.TokKind) (lexer.Token, error) {
	if !p.at(k) {
		ce := diag.MustLookup("parser", "expected_token", "PTP0001", "unexpected token")
		return p.tok, diag.Errorf(ce.ID, p.pos(), "expected %v, got %v", k, p.tok.Kind)
	}
	t := p.tok
	p.next()
	return t, nil
}

func (p *Parser) skipNewlines() {
	for p.accept(lexer.TokNewline) {
	}
}

// ParseProgram parses the whole input into a top-level statement sequence.
// The first malformed header or bracket aborts with an error; there is no
// partial recovery at the parse boundary.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	p.skipNewlines()
	for !p.at(lexer.TokEOF) {
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		prog.Stmts = append(prog.Stmts, s)
		p.skipNewlines()
	}
	return prog, nil
}

/* ---------- statements ---------- */

func (p *Parser) parseStmt() (ast.Stmt, error) {
	switch p.tok.Kind {
	case lexer.TokIf:
		return p.parseIf()
	case lexer.TokFor:
		return p.parseFor()
	case lexer.TokWhile:
		return p.skipUnsupported("while loop")
	case lexer.TokDef:
		return p.skipUnsupported("function definition")
	case lexer.TokClass:
		return p.skipUnsupported("class definition")
	case lexer.TokImport, lexer.TokFrom:
		return p.skipUnsupported("import")
	case lexer.TokReturn:
		return p.skipUnsupported("return")
	case lexer.TokTry:
		return p.skipUnsupported("exception handling")
	case lexer.TokPass:
		return p.skipUnsupported("pass")
	default:
		return p.parseSimpleStmt()
	}
}

// parseSimpleStmt handles one-line statements: assignment, augmented or
// multi-target assignment (unsupported), and bare expression statements.
func (p *Parser) parseSimpleStmt() (ast.Stmt, error) {
	start := p.pos()

	if p.at(lexer.TokIdent) {
		name := p.tok
		p.next()
		switch p.tok.Kind {
		case lexer.TokEq:
			p.next()
			rhs, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			// a second '=' means x = y = ... which is multi-target
			if p.at(lexer.TokEq) {
				return p.skipUnsupported("multi-target assignment")
			}
			if err := p.endOfStmt(); err != nil {
				return nil, err
			}
			return &ast.AssignStmt{P: start, Name: name.Lex, Expr: rhs}, nil
		case lexer.TokPlusEq, lexer.TokMinusEq, lexer.TokStarEq, lexer.TokSlashEq:
			return p.skipUnsupported("augmented assignment")
		case lexer.TokComma:
			return p.skipUnsupported("multi-target assignment")
		default:
			// expression statement starting with that identifier
			e, err := p.continueExpr(&ast.IdentExpr{P: start, Name: name.Lex})
			if err != nil {
				return nil, err
			}
			if k, ok := p.assignTail(); ok {
				return p.skipUnsupported(k)
			}
			if err := p.endOfStmt(); err != nil {
				return nil, err
			}
			return &ast.ExprStmt{P: start, Expr: e}, nil
		}
	}

	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if k, ok := p.assignTail(); ok {
		return p.skipUnsupported(k)
	}
	if err := p.endOfStmt(); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{P: start, Expr: e}, nil
}

// assignTail recognizes an assignment operator left over after a full
// expression parsed: the target was not a plain name (a[0] = 1, x.y = 2).
// Those statements are skipped as a unit, never a parse abort.
func (p *Parser) assignTail() (string, bool) {
	switch p.tok.Kind {
	case lexer.TokEq:
		return "assignment to a non-name target", true
	case lexer.TokPlusEq, lexer.TokMinusEq, lexer.TokStarEq, lexer.TokSlashEq:
		return "augmented assignment", true
	case lexer.TokComma:
		return "multi-target assignment", true
	default:
		return "", false
	}
}

// endOfStmt consumes the logical newline terminating a simple statement.
// EOF is accepted so a file without a trailing newline still parses.
func (p *Parser) endOfStmt() error {
	if p.at(lexer.TokEOF) {
		return nil
	}
	_, err := p.expect(lexer.TokNewline)
	return err
}

func (p *Parser) parseIf() (ast.Stmt, error) {
	start := p.pos()
	p.next() // if / elif
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	st := &ast.IfStmt{P: start, Cond: cond, Then: then}

	switch p.tok.Kind {
	case lexer.TokElif:
		// elif chains become a nested conditional in the else block
		nested, err := p.parseIf()
		if err != nil {
			return nil, err
		}
		st.Else = []ast.Stmt{nested}
	case lexer.TokElse:
		p.next()
		els, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		st.Else = els
	}
	return st, nil
}

func (p *Parser) parseFor() (ast.Stmt, error) {
	start := p.pos()
	p.next() // for
	name, err := p.expect(lexer.TokIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokIn); err != nil {
		return nil, err
	}
	iter, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ForStmt{P: start, Var: name.Lex, Iter: iter, Body: body}, nil
}

// parseBlock parses ":" NEWLINE INDENT stmts DEDENT.
func (p *Parser) parseBlock() ([]ast.Stmt, error) {
	if !p.at(lexer.TokColon) {
		ce := diag.MustLookup("parser", "expected_colon", "PTP0002", "missing ':' after compound statement header")
		return nil, diag.Errorf(ce.ID, p.pos(), "%s, got %v", ce.Title, p.tok.Kind)
	}
	p.next()
	if _, err := p.expect(lexer.TokNewline); err != nil {
		return nil, err
	}
	if !p.at(lexer.TokIndent) {
		ce := diag.MustLookup("parser", "expected_indent", "PTP0003", "expected an indented block")
		return nil, diag.Errorf(ce.ID, p.pos(), "%s", ce.Title)
	}
	p.next()

	var body []ast.Stmt
	for !p.at(lexer.TokDedent) && !p.at(lexer.TokEOF) {
		p.skipNewlines()
		if p.at(lexer.TokDedent) || p.at(lexer.TokEOF) {
			break
		}
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		body = append(body, s)
	}
	if p.at(lexer.TokDedent) {
		p.next()
	}
	return body, nil
}

// skipUnsupported consumes a construct we do not translate: the rest of its
// header line and, if one follows, its whole indented block. The statement
// survives as an explicit node so lowering can report it per occurrence.
func (p *Parser) skipUnsupported(kind string) (ast.Stmt, error) {
	start := p.pos()
	depth := 0
	for {
		switch p.tok.Kind {
		case lexer.TokEOF:
			return &ast.UnsupportedStmt{P: start, Kind: kind}, nil
		case lexer.TokNewline:
			p.next()
			if depth == 0 && !p.at(lexer.TokIndent) {
				return &ast.UnsupportedStmt{P: start, Kind: kind}, nil
			}
		case lexer.TokIndent:
			depth++
			p.next()
		case lexer.TokDedent:
			depth--
			p.next()
			if depth <= 0 {
				return &ast.UnsupportedStmt{P: start, Kind: kind}, nil
			}
		default:
			p.next()
		}
	}
}

/* ---------- expressions ---------- */

// Precedence climbing: comparison < additive < multiplicative < unary.
// `and`/`or`/`not` and `!=`/`%` parse into ordinary nodes; whether an op
// translates is the lowering stage's call.

func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parseOr()
}

func (p *Parser) continueExpr(lead ast.Expr) (ast.Expr, error) {
	e, err := p.parsePostfixFrom(lead)
	if err != nil {
		return nil, err
	}
	e, err = p.parseMulFrom(e)
	if err != nil {
		return nil, err
	}
	e, err = p.parseAddFrom(e)
	if err != nil {
		return nil, err
	}
	e, err = p.parseCompareFrom(e)
	if err != nil {
		return nil, err
	}
	return p.parseBoolFrom(e)
}

func (p *Parser) parseOr() (ast.Expr, error) {
	left, err := p.parseCompare()
	if err != nil {
		return nil, err
	}
	return p.parseBoolFrom(left)
}

func (p *Parser) parseBoolFrom(left ast.Expr) (ast.Expr, error) {
	for p.at(lexer.TokAnd) || p.at(lexer.TokOr) {
		op := p.tok.Lex
		pos := p.pos()
		p.next()
		right, err := p.parseCompare()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{P: pos, Op: op, Left: left, Right: right}
	}
	return left, nil
}

func compareOp(k lexer.TokKind) (string, bool) {
	switch k {
	case lexer.TokLt:
		return "<", true
	case lexer.TokLe:
		return "<=", true
	case lexer.TokGt:
		return ">", true
	case lexer.TokGe:
		return ">=", true
	case lexer.TokEqEq:
		return "==", true
	case lexer.TokNe:
		return "!=", true
	default:
		return "", false
	}
}

func (p *Parser) parseCompare() (ast.Expr, error) {
	left, err := p.parseAdd()
	if err != nil {
		return nil, err
	}
	return p.parseCompareFrom(left)
}

func (p *Parser) parseCompareFrom(left ast.Expr) (ast.Expr, error) {
	op, ok := compareOp(p.tok.Kind)
	if !ok {
		return left, nil
	}
	pos := p.pos()
	p.next()
	right, err := p.parseAdd()
	if err != nil {
		return nil, err
	}
	// a < b < c has no single-comparison lowering
	if _, chained := compareOp(p.tok.Kind); chained {
		for {
			if _, more := compareOp(p.tok.Kind); !more {
				break
			}
			p.next()
			if _, err := p.parseAdd(); err != nil {
				return nil, err
			}
		}
		return &ast.UnsupportedExpr{P: pos, Kind: "chained comparison"}, nil
	}
	return &ast.BinaryExpr{P: pos, Op: op, Left: left, Right: right}, nil
}

func (p *Parser) parseAdd() (ast.Expr, error) {
	left, err := p.parseMul()
	if err != nil {
		return nil, err
	}
	return p.parseAddFrom(left)
}

func (p *Parser) parseAddFrom(left ast.Expr) (ast.Expr, error) {
	for p.at(lexer.TokPlus) || p.at(lexer.TokMinus) {
		op := p.tok.Kind.String()
		pos := p.pos()
		p.next()
		right, err := p.parseMul()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{P: pos, Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseMul() (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return p.parseMulFrom(left)
}

func (p *Parser) parseMulFrom(left ast.Expr) (ast.Expr, error) {
	for p.at(lexer.TokStar) || p.at(lexer.TokSlash) || p.at(lexer.TokPercent) {
		op := p.tok.Kind.String()
		pos := p.pos()
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{P: pos, Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	pos := p.pos()
	switch p.tok.Kind {
	case lexer.TokMinus:
		p.next()
		// a minus directly before a numeric literal folds into the literal;
		// any other operand is an unsupported unary expression
		switch p.tok.Kind {
		case lexer.TokInt:
			v := p.tok.Lex
			p.next()
			return &ast.IntLit{P: pos, Value: "-" + v}, nil
		case lexer.TokFloat:
			v := p.tok.Lex
			p.next()
			return &ast.FloatLit{P: pos, Value: "-" + v}, nil
		default:
			operand, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			return &ast.UnsupportedExpr{P: pos, Kind: "unary operator", Text: "- " + ast.ExprString(operand)}, nil
		}
	case lexer.TokNot:
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnsupportedExpr{P: pos, Kind: "unary operator", Text: "not " + ast.ExprString(operand)}, nil
	default:
		return p.parsePostfix()
	}
}

func (p *Parser) parsePostfix() (ast.Expr, error) {
	e, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return p.parsePostfixFrom(e)
}

func (p *Parser) parsePostfixFrom(e ast.Expr) (ast.Expr, error) {
	for {
		switch p.tok.Kind {
		case lexer.TokLParen:
			pos := p.pos()
			p.next()
			var args []ast.Expr
			if !p.accept(lexer.TokRParen) {
				for {
					a, err := p.parseExpr()
					if err != nil {
						return nil, err
					}
					args = append(args, a)
					if p.accept(lexer.TokComma) {
						continue
					}
					if _, err := p.expect(lexer.TokRParen); err != nil {
						return nil, err
					}
					break
				}
			}
			e = &ast.CallExpr{P: pos, Callee: e, Args: args}
		case lexer.TokLBrack:
			pos := p.pos()
			p.next()
			idx, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.TokRBrack); err != nil {
				return nil, err
			}
			e = &ast.UnsupportedExpr{P: pos, Kind: "subscript", Text: ast.ExprString(e) + "[" + ast.ExprString(idx) + "]"}
		case lexer.TokDot:
			pos := p.pos()
			p.next()
			name, err := p.expect(lexer.TokIdent)
			if err != nil {
				return nil, err
			}
			e = &ast.UnsupportedExpr{P: pos, Kind: "attribute access", Text: ast.ExprString(e) + "." + name.Lex}
		default:
			return e, nil
		}
	}
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	pos := p.pos()
	switch p.tok.Kind {
	case lexer.TokInt:
		v := p.tok.Lex
		p.next()
		return &ast.IntLit{P: pos, Value: v}, nil
	case lexer.TokFloat:
		v := p.tok.Lex
		p.next()
		return &ast.FloatLit{P: pos, Value: v}, nil
	case lexer.TokStr:
		v := p.tok.Lex
		p.next()
		return &ast.StrLit{P: pos, Value: v}, nil
	case lexer.TokTrue:
		p.next()
		return &ast.BoolLit{P: pos, Value: true}, nil
	case lexer.TokFalse:
		p.next()
		return &ast.BoolLit{P: pos, Value: false}, nil
	case lexer.TokNone:
		p.next()
		return &ast.UnsupportedExpr{P: pos, Kind: "None literal", Text: "None"}, nil
	case lexer.TokIdent:
		name := p.tok.Lex
		p.next()
		return &ast.IdentExpr{P: pos, Name: name}, nil
	case lexer.TokLBrack:
		p.next()
		lit := &ast.ListLit{P: pos}
		if p.accept(lexer.TokRBrack) {
			return lit, nil
		}
		for {
			el, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			lit.Elems = append(lit.Elems, el)
			if p.accept(lexer.TokComma) {
				continue
			}
			if !p.at(lexer.TokRBrack) {
				ce := diag.MustLookup("parser", "unterminated_bracket", "PTP0004", "unterminated bracket")
				return nil, diag.Errorf(ce.ID, p.pos(), "%s", ce.Title)
			}
			p.next()
			return lit, nil
		}
	case lexer.TokLBrace:
		// dict/set literals have no array lowering; consume the balanced
		// braces so the rest of the line still parses
		depth := 0
		for {
			switch p.tok.Kind {
			case lexer.TokLBrace:
				depth++
			case lexer.TokRBrace:
				depth--
			case lexer.TokNewline, lexer.TokEOF:
				depth = 0
			}
			if depth == 0 {
				if p.at(lexer.TokRBrace) {
					p.next()
				}
				return &ast.UnsupportedExpr{P: pos, Kind: "dict or set literal", Text: "{...}"}, nil
			}
			p.next()
		}
	case lexer.TokLParen:
		p.next()
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokRParen); err != nil {
			return nil, err
		}
		return e, nil
	default:
		ce := diag.MustLookup("parser", "expected_token", "PTP0001", "unexpected token")
		return nil, diag.Errorf(ce.ID, pos, "unexpected %v in expression", p.tok.Kind)
	}
}
