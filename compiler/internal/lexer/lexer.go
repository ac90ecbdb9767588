package lexer

import (
	"unicode"

	"github.com/pytoc/pytoc/compiler/internal/diag"
)

// Lexer scans Python-subset source into tokens, producing NEWLINE/INDENT/DEDENT
// from physical indentation. TAB counts as 4 spaces. Unknown characters are
// skipped rather than failing: the parser decides what to reject. Conditions
// the lexer tolerates but cannot represent faithfully (unterminated strings,
// dedents to an unused width) are collected as warnings.
type Lexer struct {
	src []rune
	i   int

	line int
	col  int

	bol        bool    // beginning-of-line: next non-space decides indentation
	indents    []int   // stack of indent widths; starts with 0
	pending    []Token // queued tokens (INDENT/DEDENT/NEWLINE)
	eofEmitted bool

	diags []diag.Diagnostic
}

func New(src string) *Lexer {
	return &Lexer{
		src:     []rune(src),
		line:    1,
		col:     0,
		bol:     true,
		indents: []int{0},
	}
}

func (lx *Lexer) enqueue(t Token) { lx.pending = append(lx.pending, t) }

// Diagnostics returns the warnings collected so far; complete once TokEOF
// has been returned.
func (lx *Lexer) Diagnostics() []diag.Diagnostic { return lx.diags }

func (lx *Lexer) make(kind TokKind, lex string, line, col int) Token {
	return Token{Kind: kind, Lex: lex, Line: line, Col: col}
}

func (lx *Lexer) peek() (rune, bool) {
	if lx.i >= len(lx.src) {
		return 0, false
	}
	return lx.src[lx.i], true
}

func (lx *Lexer) peekAt(off int) (rune, bool) {
	if lx.i+off >= len(lx.src) {
		return 0, false
	}
	return lx.src[lx.i+off], true
}

func (lx *Lexer) advance() (rune, bool) {
	ch, ok := lx.peek()
	if !ok {
		return 0, false
	}
	lx.i++
	if ch == '\n' {
		lx.line++
		lx.col = 0
	} else {
		lx.col++
	}
	return ch, true
}

func (lx *Lexer) match(expect rune) bool {
	ch, ok := lx.peek()
	if ok && ch == expect {
		lx.advance()
		return true
	}
	return false
}

func (lx *Lexer) atEOF() bool { return lx.i >= len(lx.src) }

// handleBOL computes indentation at the start of a logical line and queues
// INDENT/DEDENT tokens. Blank and comment-only lines never produce tokens.
func (lx *Lexer) handleBOL() {
	for lx.bol {
		// EOF: unwind any remaining indents
		if lx.atEOF() {
			for len(lx.indents) > 1 {
				lx.indents = lx.indents[:len(lx.indents)-1]
				lx.enqueue(lx.make(TokDedent, "", lx.line, lx.col))
			}
			lx.bol = false
			return
		}

		// Count indentation (spaces/tabs) but don't consume the newline yet
		width := 0
		for {
			ch, ok := lx.peek()
			if !ok {
				break
			}
			if ch == ' ' {
				width++
				lx.advance()
				continue
			}
			if ch == '\t' {
				width += 4 // TAB = 4 spaces
				lx.advance()
				continue
			}
			break
		}

		// Blank or comment-only line? Consume to newline and stay at BOL.
		if ch, ok := lx.peek(); !ok {
			// EOF right after trailing spaces: a blank line, not an indent;
			// loop back so the EOF branch unwinds any open dedents
			continue
		} else if ch == '\n' {
			lx.advance()
			continue
		} else if ch == '#' {
			for {
				ch, ok := lx.peek()
				if !ok || ch == '\n' {
					break
				}
				lx.advance()
			}
			// comment-only line, whether a newline or EOF ends it
			lx.match('\n')
			continue
		}

		// Compare indentation with top of stack
		top := lx.indents[len(lx.indents)-1]
		if width > top {
			lx.indents = append(lx.indents, width)
			lx.enqueue(lx.make(TokIndent, "", lx.line, lx.col))
		} else if width < top {
			for width < top && len(lx.indents) > 1 {
				lx.indents = lx.indents[:len(lx.indents)-1]
				top = lx.indents[len(lx.indents)-1]
				lx.enqueue(lx.make(TokDedent, "", lx.line, lx.col))
			}
			// width != top means a dedent to a width never opened; the
			// nearest enclosing level wins, but the gap is reported
			if width != top {
				ce := diag.MustLookup("lexer", "bad_indent", "PTL0002", "inconsistent indentation")
				lx.diags = append(lx.diags, diag.Warningf(ce.ID,
					diag.Pos{Line: lx.line, Col: 1},
					"%s: dedent to width %d, using enclosing width %d", ce.Title, width, top))
			}
		}
		lx.bol = false
		return
	}
}

// Next returns the next token. It never panics on user input.
func (lx *Lexer) Next() Token {
	if n := len(lx.pending); n > 0 {
		t := lx.pending[0]
		lx.pending = lx.pending[1:]
		return t
	}

	if lx.bol {
		lx.handleBOL()
		if n := len(lx.pending); n > 0 {
			t := lx.pending[0]
			lx.pending = lx.pending[1:]
			return t
		}
	}

	// EOF: unwind remaining indents, then emit EOF
	if lx.atEOF() {
		if !lx.eofEmitted {
			for len(lx.indents) > 1 {
				lx.indents = lx.indents[:len(lx.indents)-1]
				return lx.make(TokDedent, "", lx.line, lx.col)
			}
			lx.eofEmitted = true
		}
		return lx.make(TokEOF, "", lx.line, lx.col)
	}

	// Skip mid-line spaces/tabs
	for {
		ch, ok := lx.peek()
		if !ok {
			break
		}
		if ch == ' ' || ch == '\t' {
			lx.advance()
			continue
		}
		break
	}

	startLine, startCol := lx.line, lx.col+1

	// Newline terminates a statement
	if ch, ok := lx.peek(); ok && ch == '\n' {
		lx.advance()
		lx.bol = true
		return lx.make(TokNewline, "", startLine, startCol)
	}

	// Comment mid-line: consume to EOL, then emit NEWLINE. EOF ends the
	// line the same way; the next call unwinds any open dedents.
	if ch, ok := lx.peek(); ok && ch == '#' {
		for {
			ch, ok := lx.peek()
			if !ok || ch == '\n' {
				break
			}
			lx.advance()
		}
		lx.match('\n')
		lx.bol = true
		return lx.make(TokNewline, "", startLine, startCol)
	}

	// Identifiers / keywords
	if ch, ok := lx.peek(); ok && isIdentStart(ch) {
		lex := lx.scanIdent()
		if kind, ok := keywordKind(lex); ok {
			return lx.make(kind, lex, startLine, startCol)
		}
		return lx.make(TokIdent, lex, startLine, startCol)
	}

	// Numbers: decimal integers and digits '.' digits floats
	if ch, ok := lx.peek(); ok && unicode.IsDigit(ch) {
		lex, isFloat := lx.scanNumber()
		if isFloat {
			return lx.make(TokFloat, lex, startLine, startCol)
		}
		return lx.make(TokInt, lex, startLine, startCol)
	}

	// Strings: '...' or "..." with basic escapes, single line
	if ch, ok := lx.peek(); ok && (ch == '"' || ch == '\'') {
		lex := lx.scanString(ch)
		return lx.make(TokStr, lex, startLine, startCol)
	}

	// Multi-char operators first
	if lx.match('=') {
		if lx.match('=') {
			return lx.make(TokEqEq, "==", startLine, startCol)
		}
		return lx.make(TokEq, "=", startLine, startCol)
	}
	if lx.match('!') {
		if lx.match('=') {
			return lx.make(TokNe, "!=", startLine, startCol)
		}
		// lone '!' is not Python; skip it
		return lx.Next()
	}
	if lx.match('<') {
		if lx.match('=') {
			return lx.make(TokLe, "<=", startLine, startCol)
		}
		return lx.make(TokLt, "<", startLine, startCol)
	}
	if lx.match('>') {
		if lx.match('=') {
			return lx.make(TokGe, ">=", startLine, startCol)
		}
		return lx.make(TokGt, ">", startLine, startCol)
	}
	if lx.match('+') {
		if lx.match('=') {
			return lx.make(TokPlusEq, "+=", startLine, startCol)
		}
		return lx.make(TokPlus, "+", startLine, startCol)
	}
	if lx.match('-') {
		if lx.match('=') {
			return lx.make(TokMinusEq, "-=", startLine, startCol)
		}
		return lx.make(TokMinus, "-", startLine, startCol)
	}
	if lx.match('*') {
		if lx.match('=') {
			return lx.make(TokStarEq, "*=", startLine, startCol)
		}
		return lx.make(TokStar, "*", startLine, startCol)
	}
	if lx.match('/') {
		if lx.match('=') {
			return lx.make(TokSlashEq, "/=", startLine, startCol)
		}
		return lx.make(TokSlash, "/", startLine, startCol)
	}

	// Single-char punctuation
	if lx.match('%') {
		return lx.make(TokPercent, "%", startLine, startCol)
	}
	if lx.match('(') {
		return lx.make(TokLParen, "(", startLine, startCol)
	}
	if lx.match(')') {
		return lx.make(TokRParen, ")", startLine, startCol)
	}
	if lx.match('[') {
		return lx.make(TokLBrack, "[", startLine, startCol)
	}
	if lx.match(']') {
		return lx.make(TokRBrack, "]", startLine, startCol)
	}
	if lx.match('{') {
		return lx.make(TokLBrace, "{", startLine, startCol)
	}
	if lx.match('}') {
		return lx.make(TokRBrace, "}", startLine, startCol)
	}
	if lx.match('.') {
		return lx.make(TokDot, ".", startLine, startCol)
	}
	if lx.match(',') {
		return lx.make(TokComma, ",", startLine, startCol)
	}
	if lx.match(':') {
		return lx.make(TokColon, ":", startLine, startCol)
	}

	// Unknown character: skip it and continue (lenient)
	lx.advance()
	return lx.Next()
}

// ----- scanning helpers -----

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}
func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (lx *Lexer) scanIdent() string {
	start := lx.i
	for {
		r, ok := lx.peek()
		if !ok || !isIdentPart(r) {
			break
		}
		lx.advance()
	}
	return string(lx.src[start:lx.i])
}

func (lx *Lexer) scanNumber() (lex string, isFloat bool) {
	start := lx.i
	for {
		r, ok := lx.peek()
		if !ok || !unicode.IsDigit(r) {
			break
		}
		lx.advance()
	}
	// fractional part only when '.' is followed by a digit, so "5." and
	// method-ish "5.x" don't swallow the dot
	if r, ok := lx.peek(); ok && r == '.' {
		if r2, ok2 := lx.peekAt(1); ok2 && unicode.IsDigit(r2) {
			lx.advance() // '.'
			for {
				r, ok := lx.peek()
				if !ok || !unicode.IsDigit(r) {
					break
				}
				lx.advance()
			}
			return string(lx.src[start:lx.i]), true
		}
	}
	return string(lx.src[start:lx.i]), false
}

// scanString consumes a quoted literal including quotes. The returned lexeme
// is normalized to double quotes so downstream stages see one form; a bare
// `"` inside a single-quoted literal is escaped so the form stays valid.
func (lx *Lexer) scanString(quote rune) string {
	startLine, startCol := lx.line, lx.col+1
	var body []rune
	terminated := false
	lx.advance() // opening quote
	for {
		r, ok := lx.peek()
		if !ok || r == '\n' {
			break // unterminated: keep what we have
		}
		if r == '\\' {
			lx.advance()
			if esc, ok := lx.advance(); ok {
				body = append(body, '\\', esc)
			}
			continue
		}
		if r == quote {
			lx.advance()
			terminated = true
			break
		}
		lx.advance()
		if r == '"' {
			body = append(body, '\\', '"')
			continue
		}
		body = append(body, r)
	}
	if !terminated {
		ce := diag.MustLookup("lexer", "unterminated_string", "PTL0001", "unterminated string literal")
		lx.diags = append(lx.diags, diag.Warningf(ce.ID,
			diag.Pos{Line: startLine, Col: startCol},
			"%s: %s", ce.Title, ce.Help))
	}
	return "\"" + string(body) + "\""
}

// keywordKind maps identifiers to keyword tokens.
func keywordKind(s string) (TokKind, bool) {
	switch s {
	case "if":
		return TokIf, true
	case "elif":
		return TokElif, true
	case "else":
		return TokElse, true
	case "for":
		return TokFor, true
	case "in":
		return TokIn, true
	case "while":
		return TokWhile, true
	case "def":
		return TokDef, true
	case "return":
		return TokReturn, true
	case "import":
		return TokImport, true
	case "from":
		return TokFrom, true
	case "class":
		return TokClass, true
	case "pass":
		return TokPass, true
	case "try":
		return TokTry, true
	case "except":
		return TokExcept, true
	case "True":
		return TokTrue, true
	case "False":
		return TokFalse, true
	case "None":
		return TokNone, true
	case "and":
		return TokAnd, true
	case "or":
		return TokOr, true
	case "not":
		return TokNot, true
	default:
		return 0, false
	}
}
