package ids

import "testing"

func TestFreshVarMonotonic(t *testing.T) {
	s := NewSupply()
	a := s.FreshVar()
	b := s.FreshVar()
	c := s.FreshVar()

	if !(a < b && b < c) {
		t.Fatalf("expected strictly increasing vars, got %d %d %d", a, b, c)
	}
	if s.NumVars() != 3 {
		t.Fatalf("NumVars() = %d, want 3", s.NumVars())
	}
}

func TestFreshLocDisjointFromVar(t *testing.T) {
	s := NewSupply()
	v := s.FreshVar()
	l := s.FreshLoc()

	// Var and Loc are distinct types, so this is a compile-time
	// guarantee; here we only check each counter is independently
	// monotonic and starts at zero.
	if v != 0 || l != 0 {
		t.Fatalf("expected both counters to start at zero, got var=%d loc=%d", v, l)
	}
	if s.FreshLoc() != 1 {
		t.Fatal("second loc should be 1")
	}
}
