package domain

import "testing"

func TestInterner_Idempotent(t *testing.T) {
	in := NewInterner()

	a := in.Intern("Alpha")
	b := in.Intern("Buzz")
	a2 := in.Intern("Alpha")

	if a != a2 {
		t.Errorf("Equal strings must map to the same handle: %d vs %d", a, a2)
	}
	if a == b {
		t.Error("Different strings must not share a handle")
	}
	if in.Len() != 2 {
		t.Errorf("Expected 2 interned strings, got %d", in.Len())
	}
}

func TestInterner_Resolve(t *testing.T) {
	in := NewInterner()
	sym := in.Intern("Hiveum")

	if got := in.Resolve(sym); got != "Hiveum" {
		t.Errorf("Resolve mismatch: got %q", got)
	}

	// NilSymbol и неизвестные хендлы резолвятся в пустую строку
	if got := in.Resolve(NilSymbol); got != "" {
		t.Errorf("NilSymbol should resolve to empty string, got %q", got)
	}
	if got := in.Resolve(Symbol(999)); got != "" {
		t.Errorf("Unknown symbol should resolve to empty string, got %q", got)
	}
}

func TestInterner_Lookup(t *testing.T) {
	in := NewInterner()
	in.Intern("Alpha")

	if _, ok := in.Lookup("Alpha"); !ok {
		t.Error("Lookup should find interned string")
	}
	if _, ok := in.Lookup("Missing"); ok {
		t.Error("Lookup must not intern new strings")
	}
}
