package lexer

import "testing"

func kindsFrom(src string) []TokKind {
	l := New(src)
	var kinds []TokKind
	for {
		t := l.Next()
		kinds = append(kinds, t.Kind)
		if t.Kind == TokEOF {
			break
		}
	}
	return kinds
}

func TestEmptyInput(t *testing.T) {
	ks := kindsFrom("")
	if got, want := ks[len(ks)-1], TokEOF; got != want {
		t.Fatalf("expected EOF, got %v", got)
	}
}

func TestAssignAndNewlines(t *testing.T) {
	src := "x = 10\ny = x + 1\n"
	ks := kindsFrom(src)
	want := []TokKind{
		TokIdent, TokEq, TokInt, TokNewline,
		TokIdent, TokEq, TokIdent, TokPlus, TokInt, TokNewline,
		TokEOF,
	}
	if len(ks) != len(want) {
		t.Fatalf("token count mismatch: got %d, want %d (%v)", len(ks), len(want), ks)
	}
	for i := range want {
		if ks[i] != want[i] {
			t.Fatalf("ks[%d]=%v, want %v (full=%v)", i, ks[i], want[i], ks)
		}
	}
}

func TestIndentDedent(t *testing.T) {
	src := "" +
		"if x < y:\n" +
		"    z = 1\n" +
		"    print(z)\n" +
		"else:\n" +
		"    z = 2\n"
	ks := kindsFrom(src)
	want := []TokKind{
		TokIf, TokIdent, TokLt, TokIdent, TokColon, TokNewline,
		TokIndent,
		TokIdent, TokEq, TokInt, TokNewline,
		TokIdent, TokLParen, TokIdent, TokRParen, TokNewline,
		TokDedent,
		TokElse, TokColon, TokNewline,
		TokIndent,
		TokIdent, TokEq, TokInt, TokNewline,
		TokDedent,
		TokEOF,
	}
	if len(ks) != len(want) {
		t.Fatalf("token count mismatch: got %d, want %d (%v)", len(ks), len(want), ks)
	}
	for i := range want {
		if ks[i] != want[i] {
			t.Fatalf("ks[%d]=%v, want %v (full=%v)", i, ks[i], want[i], ks)
		}
	}
}

func TestFloatVsInt(t *testing.T) {
	lx := New("a = 3.14\nb = 3\n")
	var got []Token
	for {
		tok := lx.Next()
		if tok.Kind == TokEOF {
			break
		}
		got = append(got, tok)
	}
	if got[2].Kind != TokFloat || got[2].Lex != "3.14" {
		t.Fatalf("expected FLOAT 3.14, got %v %q", got[2].Kind, got[2].Lex)
	}
	if got[6].Kind != TokInt || got[6].Lex != "3" {
		t.Fatalf("expected INT 3, got %v %q", got[6].Kind, got[6].Lex)
	}
}

func TestSingleQuoteStringNormalized(t *testing.T) {
	lx := New("s = 'hi'\n")
	lx.Next() // s
	lx.Next() // =
	tok := lx.Next()
	if tok.Kind != TokStr {
		t.Fatalf("expected STR, got %v", tok.Kind)
	}
	if tok.Lex != `"hi"` {
		t.Fatalf("expected normalized double-quoted lexeme, got %q", tok.Lex)
	}
}

func TestCommentAndBlankLinesProduceNoTokens(t *testing.T) {
	src := "# leading comment\n\nx = 1  # trailing\n\n# only comment\n"
	ks := kindsFrom(src)
	want := []TokKind{TokIdent, TokEq, TokInt, TokNewline, TokEOF}
	if len(ks) != len(want) {
		t.Fatalf("token count mismatch: got %v, want %v", ks, want)
	}
	for i := range want {
		if ks[i] != want[i] {
			t.Fatalf("ks[%d]=%v, want %v", i, ks[i], want[i])
		}
	}
}

func TestKeywordsRecognized(t *testing.T) {
	ks := kindsFrom("for i in range(5):\n    pass\n")
	want := []TokKind{
		TokFor, TokIdent, TokIn, TokIdent, TokLParen, TokInt, TokRParen, TokColon, TokNewline,
		TokIndent, TokPass, TokNewline, TokDedent, TokEOF,
	}
	if len(ks) != len(want) {
		t.Fatalf("token count mismatch: got %v, want %v", ks, want)
	}
	for i := range want {
		if ks[i] != want[i] {
			t.Fatalf("ks[%d]=%v, want %v", i, ks[i], want[i])
		}
	}
}

func TestTrailingSpacesBeforeEOF(t *testing.T) {
	// a final line of only spaces (or an indented trailing comment) is a
	// blank line, not an indented block
	for _, src := range []string{"x = 1\n    ", "x = 1\n    # tail", "x = 1  # tail"} {
		ks := kindsFrom(src)
		want := []TokKind{TokIdent, TokEq, TokInt, TokNewline, TokEOF}
		if len(ks) != len(want) {
			t.Fatalf("%q: token count mismatch: got %v, want %v", src, ks, want)
		}
		for i := range want {
			if ks[i] != want[i] {
				t.Fatalf("%q: ks[%d]=%v, want %v (full=%v)", src, i, ks[i], want[i], ks)
			}
		}
	}
}

func TestUnterminatedStringWarns(t *testing.T) {
	lx := New("s = \"abc\n")
	for {
		if lx.Next().Kind == TokEOF {
			break
		}
	}
	ds := lx.Diagnostics()
	if len(ds) != 1 || ds[0].Code != "PTL0001" {
		t.Fatalf("expected one PTL0001 warning, got %v", ds)
	}
	if ds[0].Span.Start.Line != 1 || ds[0].Span.Start.Col != 5 {
		t.Fatalf("warning at %d:%d, want 1:5", ds[0].Span.Start.Line, ds[0].Span.Start.Col)
	}
}

func TestInconsistentDedentWarns(t *testing.T) {
	src := "" +
		"if x:\n" +
		"    y = 1\n" +
		"  z = 2\n"
	lx := New(src)
	for {
		if lx.Next().Kind == TokEOF {
			break
		}
	}
	ds := lx.Diagnostics()
	if len(ds) != 1 || ds[0].Code != "PTL0002" {
		t.Fatalf("expected one PTL0002 warning, got %v", ds)
	}
}

func TestEmbeddedDoubleQuoteEscaped(t *testing.T) {
	lx := New("s = 'say \"hi\"'\n")
	lx.Next() // s
	lx.Next() // =
	tok := lx.Next()
	if tok.Kind != TokStr {
		t.Fatalf("expected STR, got %v", tok.Kind)
	}
	if tok.Lex != `"say \"hi\""` {
		t.Fatalf("embedded quotes not escaped: %q", tok.Lex)
	}
	if len(lx.Diagnostics()) != 0 {
		t.Fatalf("unexpected diagnostics: %v", lx.Diagnostics())
	}
}

func TestAugmentedOperators(t *testing.T) {
	ks := kindsFrom("x += 1\n")
	want := []TokKind{TokIdent, TokPlusEq, TokInt, TokNewline, TokEOF}
	for i := range want {
		if ks[i] != want[i] {
			t.Fatalf("ks[%d]=%v, want %v (full=%v)", i, ks[i], want[i], ks)
		}
	}
}
