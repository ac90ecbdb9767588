package lexer

// Source is a minimal token source the parser can consume.
// Any implementation only needs to yield successive tokens via Next().
type Source interface {
	Next() Token
}

// NewSource returns a Source backed by the lexer for the input string.
func NewSource(src string) Source { return New(src) }
