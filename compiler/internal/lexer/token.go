package lexer

// TokKind enumerates token kinds produced by the lexer.
// Covers the translated Python subset plus enough surrounding syntax to
// recognize (and report) constructs the transpiler does not handle.
type TokKind int

const (
	// Special
	TokEOF     TokKind = iota
	TokNewline         // logical newline
	TokIndent          // indent block
	TokDedent          // dedent block

	// Literals/identifiers
	TokIdent
	TokInt
	TokFloat
	TokStr

	// Keywords
	TokIf
	TokElif
	TokElse
	TokFor
	TokIn
	TokWhile
	TokDef
	TokReturn
	TokImport
	TokFrom
	TokClass
	TokPass
	TokTry
	TokExcept
	TokTrue
	TokFalse
	TokNone
	TokAnd
	TokOr
	TokNot

	// Operators/punctuation
	TokEq      // =
	TokPlus    // +
	TokMinus   // -
	TokStar    // *
	TokSlash   // /
	TokPercent // %
	TokLParen  // (
	TokRParen  // )
	TokLBrack  // [
	TokRBrack  // ]
	TokLBrace  // {
	TokRBrace  // }
	TokDot     // .
	TokColon   // :
	TokComma   // ,

	TokPlusEq  // +=
	TokMinusEq // -=
	TokStarEq  // *=
	TokSlashEq // /=

	TokEqEq // ==
	TokNe   // !=
	TokLt   // <
	TokLe   // <=
	TokGt   // >
	TokGe   // >=
)

var kindNames = map[TokKind]string{
	TokEOF:     "EOF",
	TokNewline: "NEWLINE",
	TokIndent:  "INDENT",
	TokDedent:  "DEDENT",
	TokIdent:   "IDENT",
	TokInt:     "INT",
	TokFloat:   "FLOAT",
	TokStr:     "STR",
	TokIf:      "if",
	TokElif:    "elif",
	TokElse:    "else",
	TokFor:     "for",
	TokIn:      "in",
	TokWhile:   "while",
	TokDef:     "def",
	TokReturn:  "return",
	TokImport:  "import",
	TokFrom:    "from",
	TokClass:   "class",
	TokPass:    "pass",
	TokTry:     "try",
	TokExcept:  "except",
	TokTrue:    "True",
	TokFalse:   "False",
	TokNone:    "None",
	TokAnd:     "and",
	TokOr:      "or",
	TokNot:     "not",
	TokEq:      "=",
	TokPlus:    "+",
	TokMinus:   "-",
	TokStar:    "*",
	TokSlash:   "/",
	TokPercent: "%",
	TokLParen:  "(",
	TokRParen:  ")",
	TokLBrack:  "[",
	TokRBrack:  "]",
	TokLBrace:  "{",
	TokRBrace:  "}",
	TokDot:     ".",
	TokColon:   ":",
	TokComma:   ",",
	TokPlusEq:  "+=",
	TokMinusEq: "-=",
	TokStarEq:  "*=",
	TokSlashEq: "/=",
	TokEqEq:    "==",
	TokNe:      "!=",
	TokLt:      "<",
	TokLe:      "<=",
	TokGt:      ">",
	TokGe:      ">=",
}

func (k TokKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "TOKEN"
}

// Token is a single lexeme with source position.
type Token struct {
	Kind TokKind
	Lex  string
	Line int
	Col  int
}
