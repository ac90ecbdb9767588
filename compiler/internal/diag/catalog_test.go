package diag

import "testing"

func TestLookupKnownCode(t *testing.T) {
	ce, ok := Lookup("transpile", "unsupported_stmt")
	if !ok {
		t.Fatalf("unsupported_stmt missing from catalog")
	}
	if ce.ID != "PTC0001" {
		t.Fatalf("unexpected ID: %q", ce.ID)
	}
	if ce.Title == "" {
		t.Fatalf("catalog entry has no title")
	}
}

func TestLookupUnknownDomain(t *testing.T) {
	if _, ok := Lookup("nonsense", "unsupported_stmt"); ok {
		t.Fatalf("unknown domain must not resolve")
	}
}

func TestMustLookupFallsBack(t *testing.T) {
	ce := MustLookup("transpile", "no_such_key", "PTC9999", "placeholder")
	if ce.ID != "PTC9999" || ce.Title != "placeholder" {
		t.Fatalf("fallback not synthesized: %+v", ce)
	}
}

func TestDiagnosticError(t *testing.T) {
	d := Warningf("PTC0001", Pos{Line: 3, Col: 7}, "unsupported statement: %s", "while loop")
	want := "3:7: warning[PTC0001]: unsupported statement: while loop"
	if d.Error() != want {
		t.Fatalf("Error() = %q, want %q", d.Error(), want)
	}

	spanless := Diagnostic{Severity: SevError, Msg: "boom"}
	if spanless.Error() != "error: boom" {
		t.Fatalf("spanless Error() = %q", spanless.Error())
	}
}

func TestListCounts(t *testing.T) {
	var l List
	l.Add(Notef("", Pos{}, "n"))
	l.Add(Warningf("", Pos{}, "w"))
	l.Add(Errorf("", Pos{}, "e"))
	if l.Len() != 3 {
		t.Fatalf("Len = %d", l.Len())
	}
	if l.Count(SevWarning) != 1 || l.Count(SevError) != 1 {
		t.Fatalf("counts wrong")
	}
	if !l.HasErrors() {
		t.Fatalf("HasErrors should be true")
	}
}
