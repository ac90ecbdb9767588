package diag

import "fmt"

// Pos marks a 1-based line/column location in a file.
type Pos struct{ Line, Col int }

// Span marks a half-open range [Start, End) within a file.
type Span struct {
	Start Pos
	End   Pos
}

// Severity orders diagnostics from informational to fatal.
type Severity int

const (
	SevNote Severity = iota
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevNote:
		return "note"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	default:
		return "diagnostic"
	}
}

// Diagnostic is a transpiler message with an optional span and catalog code.
type Diagnostic struct {
	Severity Severity
	Code     string // e.g., "PTC0002"; empty when uncataloged
	Span     Span
	Msg      string
}

func (d Diagnostic) Error() string {
	prefix := d.Severity.String()
	if d.Code != "" {
		prefix = fmt.Sprintf("%s[%s]", prefix, d.Code)
	}
	if d.Span.Start.Line == 0 {
		return fmt.Sprintf("%s: %s", prefix, d.Msg)
	}
	return fmt.Sprintf("%d:%d: %s: %s", d.Span.Start.Line, d.Span.Start.Col, prefix, d.Msg)
}

// Notef builds a note-severity diagnostic at pos.
func Notef(code string, pos Pos, format string, a ...any) Diagnostic {
	return Diagnostic{Severity: SevNote, Code: code, Span: Span{Start: pos}, Msg: fmt.Sprintf(format, a...)}
}

// Warningf builds a warning-severity diagnostic at pos.
func Warningf(code string, pos Pos, format string, a ...any) Diagnostic {
	return Diagnostic{Severity: SevWarning, Code: code, Span: Span{Start: pos}, Msg: fmt.Sprintf(format, a...)}
}

// Errorf builds an error-severity diagnostic at pos.
func Errorf(code string, pos Pos, format string, a ...any) Diagnostic {
	return Diagnostic{Severity: SevError, Code: code, Span: Span{Start: pos}, Msg: fmt.Sprintf(format, a...)}
}

// List is an append-only collection of diagnostics gathered during one run.
type List struct {
	all []Diagnostic
}

func (l *List) Add(d Diagnostic)  { l.all = append(l.all, d) }
func (l *List) All() []Diagnostic { return l.all }
func (l *List) Len() int          { return len(l.all) }

func (l *List) Count(s Severity) int {
	n := 0
	for _, d := range l.all {
		if d.Severity == s {
			n++
		}
	}
	return n
}

// HasErrors reports whether any collected diagnostic is error-severity.
func (l *List) HasErrors() bool { return l.Count(SevError) > 0 }
