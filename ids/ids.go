// Package ids provides the fresh-identity supply for variables and
// heap locations (spec component C2). Both counters are monotonic and
// never reused within a compilation, so two compilations of the same
// program are byte-stable against each other.
package ids

// Var is an opaque, non-negative variable identity.
type Var uint32

// Loc is an opaque, non-negative heap-location identity. Disjoint from Var.
type Loc uint32

// Supply hands out fresh Var and Loc identities in increasing order.
type Supply struct {
	nextVar Var
	nextLoc Loc
}

// NewSupply returns a supply with both counters starting at zero.
func NewSupply() *Supply {
	return &Supply{}
}

// FreshVar allocates and returns the next Var, bumping the counter.
func (s *Supply) FreshVar() Var {
	v := s.nextVar
	s.nextVar++
	return v
}

// FreshLoc allocates and returns the next Loc, bumping the counter.
func (s *Supply) FreshLoc() Loc {
	l := s.nextLoc
	s.nextLoc++
	return l
}

// NumVars returns the count of Vars allocated so far (== next_var).
func (s *Supply) NumVars() int { return int(s.nextVar) }

// NumLocs returns the count of Locs allocated so far (== next_loc).
func (s *Supply) NumLocs() int { return int(s.nextLoc) }
