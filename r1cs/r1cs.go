// Package r1cs implements the R1CS compiler and witness engine (spec
// components C7/C8/C9): it lowers a texp.TExp into a flat Rank-1
// Constraint System, generates a satisfying witness from input values,
// and checks/serializes the result. Grounded in the gnark-style
// LinearCombination/Term representation retrieved alongside the
// teacher (frontend/cs/r1cs and zkvm's circuit_builder.go).
package r1cs

import (
	"fmt"
	"sort"

	"arc/field"
	"arc/ids"
)

// LinearCombination is a sparse affine form over the variable
// alphabet: Const + sum(coeff_i * var_i). Both A, B, and C of a
// Constraint are LinearCombinations, matching how gnark's compiled.R1C
// represents each side as a LinearExpression rather than a bare
// variable.
type LinearCombination struct {
	Const field.Elem
	Terms map[ids.Var]field.Elem
}

// LC returns the zero linear combination.
func LC() LinearCombination {
	return LinearCombination{Const: field.Zero(), Terms: make(map[ids.Var]field.Elem)}
}

// LCConst returns the constant linear combination c.
func LCConst(c field.Elem) LinearCombination {
	lc := LC()
	lc.Const = c
	return lc
}

// LCVar returns the linear combination naming var v with coefficient 1.
func LCVar(v ids.Var) LinearCombination {
	lc := LC()
	lc.Terms[v] = field.One()
	return lc
}

func (lc LinearCombination) clone() LinearCombination {
	out := LinearCombination{Const: lc.Const, Terms: make(map[ids.Var]field.Elem, len(lc.Terms))}
	for v, c := range lc.Terms {
		out.Terms[v] = c
	}
	return out
}

// AddTerm returns a copy of lc with coeff added into var v's coefficient.
func (lc LinearCombination) AddTerm(v ids.Var, coeff field.Elem) LinearCombination {
	out := lc.clone()
	if existing, ok := out.Terms[v]; ok {
		out.Terms[v] = existing.Add(coeff)
	} else {
		out.Terms[v] = coeff
	}
	return out
}

// Add returns lc + other.
func (lc LinearCombination) Add(other LinearCombination) LinearCombination {
	out := lc.clone()
	out.Const = out.Const.Add(other.Const)
	for v, c := range other.Terms {
		out = out.AddTerm(v, c)
	}
	return out
}

// Sub returns lc - other.
func (lc LinearCombination) Sub(other LinearCombination) LinearCombination {
	return lc.Add(other.Scale(field.FromInt64(-1)))
}

// Scale returns lc * c.
func (lc LinearCombination) Scale(c field.Elem) LinearCombination {
	out := LC()
	out.Const = lc.Const.Mul(c)
	for v, coeff := range lc.Terms {
		out.Terms[v] = coeff.Mul(c)
	}
	return out
}

// Vars returns the LC's referenced variables in ascending order, for
// deterministic iteration (serialization, dedup).
func (lc LinearCombination) Vars() []ids.Var {
	out := make([]ids.Var, 0, len(lc.Terms))
	for v := range lc.Terms {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Eval evaluates lc under assignment; ok is false if any referenced
// variable is missing.
func (lc LinearCombination) Eval(assign map[ids.Var]field.Elem) (field.Elem, bool) {
	return lc.EvalLookup(func(v ids.Var) (field.Elem, bool) {
		val, ok := assign[v]
		return val, ok
	})
}

// EvalLookup is Eval generalized over an arbitrary lookup closure,
// used by constraint hints that only see the witness engine's partial
// assignment through a function, not a map.
func (lc LinearCombination) EvalLookup(lookup func(ids.Var) (field.Elem, bool)) (field.Elem, bool) {
	sum := lc.Const
	for _, v := range lc.Vars() {
		val, ok := lookup(v)
		if !ok {
			return field.Elem{}, false
		}
		sum = sum.Add(lc.Terms[v].Mul(val))
	}
	return sum, true
}

// evalPartial scans lc under assign: rest is the sum of every known
// term plus Const; if exactly one term is unknown, coeff/unknownVar
// name it and numUnknown is 1, else numUnknown is 0 (fully known) or
// >=2 (not solvable this round from lc alone).
func (lc LinearCombination) evalPartial(assign map[ids.Var]field.Elem) (coeff field.Elem, rest field.Elem, unknownVar ids.Var, numUnknown int) {
	rest = lc.Const
	for _, v := range lc.Vars() {
		c := lc.Terms[v]
		if val, ok := assign[v]; ok {
			rest = rest.Add(c.Mul(val))
			continue
		}
		numUnknown++
		coeff = c
		unknownVar = v
	}
	return
}

func (lc LinearCombination) String() string {
	s := lc.Const.String()
	for _, v := range lc.Vars() {
		s += fmt.Sprintf(" + %s*v%d", lc.Terms[v], v)
	}
	return s
}

// HintFunc computes newly-determined variable assignments for a
// constraint directly from already-known values, used for the gadgets
// (Eq, Div) whose defining equations are not single-unknown-linear in
// the generic sense. Returning a nil map with a nil error means "not
// enough information yet, try again later".
type HintFunc func(lookup func(ids.Var) (field.Elem, bool)) (map[ids.Var]field.Elem, error)

// Constraint is one rank-1 constraint A * B = C.
type Constraint struct {
	A, B, C LinearCombination
	Hint    HintFunc
}

// R1CS is a complete constraint system plus its variable bookkeeping.
type R1CS struct {
	Constraints []Constraint
	NumVars     int
	InputVars   []ids.Var
	OutputVars  []ids.Var

	// boolVars is the set of variables carrying an implicit
	// b*(b-1)=0 range constraint, recorded so it is never duplicated.
	boolVars map[ids.Var]bool
}

func newR1CS(numVars int, inputs []ids.Var) *R1CS {
	return &R1CS{
		NumVars:   numVars,
		InputVars: inputs,
		boolVars:  make(map[ids.Var]bool),
	}
}

func (r *R1CS) addConstraint(c Constraint) {
	r.Constraints = append(r.Constraints, c)
}

// ensureBoolRange appends v's b*(b-1)=0 constraint the first time v is
// seen as boolean-typed; subsequent calls are no-ops.
func (r *R1CS) ensureBoolRange(v ids.Var) {
	if r.boolVars[v] {
		return
	}
	r.boolVars[v] = true
	vlc := LCVar(v)
	r.addConstraint(Constraint{
		A: vlc,
		B: vlc.Sub(LCConst(field.One())),
		C: LCConst(field.Zero()),
	})
}

// NumConstraints returns the number of emitted constraints.
func (r *R1CS) NumConstraints() int { return len(r.Constraints) }
