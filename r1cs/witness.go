package r1cs

import (
	"arc/errors"
	"arc/field"
	"arc/ids"
)

// Witness runs the fixed-point solver described in spec.md §4.8: seed
// every input (constants live in each LinearCombination's Const, so no
// variable stands for 1), then repeatedly walk constraints —
// first trying each constraint's Hint (for the Eq/Div gadgets, whose
// defining equations are not single-unknown-linear), then falling back
// to generic linear solving — until no constraint makes further
// progress. Fails InputArityMismatch, DivByZero (surfaced through a
// Hint), UnderDetermined, or Overdetermined.
func Witness(r *R1CS, inputs []field.Elem) (map[ids.Var]field.Elem, error) {
	if len(inputs) != len(r.InputVars) {
		return nil, errors.InputArityMismatch(len(inputs), len(r.InputVars))
	}

	assign := make(map[ids.Var]field.Elem, r.NumVars)
	for i, v := range r.InputVars {
		assign[v] = inputs[i]
	}
	lookup := func(v ids.Var) (field.Elem, bool) {
		val, ok := assign[v]
		return val, ok
	}

	for {
		progressed := false
		for _, con := range r.Constraints {
			changed, err := solveOne(con, assign, lookup)
			if err != nil {
				return nil, err
			}
			if changed {
				progressed = true
			}
		}
		if !progressed {
			break
		}
	}

	unassigned := 0
	for i := 0; i < r.NumVars; i++ {
		if _, ok := assign[ids.Var(i)]; !ok {
			unassigned++
		}
	}
	if unassigned > 0 {
		return nil, errors.UnderDetermined(unassigned)
	}
	return assign, nil
}

// solveOne attempts to make progress on one constraint, recording any
// newly-determined variable(s) into assign. Returns an error on a
// detected contradiction (Overdetermined) or a gadget-specific failure
// (DivByZero, surfaced by a Hint).
func solveOne(con Constraint, assign map[ids.Var]field.Elem, lookup func(ids.Var) (field.Elem, bool)) (bool, error) {
	if con.Hint != nil {
		newly, err := con.Hint(lookup)
		if err != nil {
			return false, err
		}
		if newly != nil {
			changed := false
			for v, val := range newly {
				if existing, ok := assign[v]; ok {
					if !existing.Equal(val) {
						return false, errors.Overdetermined()
					}
					continue
				}
				assign[v] = val
				changed = true
			}
			if changed {
				return true, nil
			}
		}
	}

	aCoeff, aRest, aVar, aUnk := con.A.evalPartial(assign)
	bCoeff, bRest, bVar, bUnk := con.B.evalPartial(assign)
	cCoeff, cRest, cVar, cUnk := con.C.evalPartial(assign)

	total := aUnk + bUnk + cUnk
	if total == 0 {
		aVal, _ := con.A.Eval(assign)
		bVal, _ := con.B.Eval(assign)
		cVal, _ := con.C.Eval(assign)
		if !aVal.Mul(bVal).Equal(cVal) {
			return false, errors.Overdetermined()
		}
		return false, nil
	}
	if total != 1 {
		return false, nil
	}

	var v ids.Var
	var val field.Elem
	switch {
	case aUnk == 1:
		// (aCoeff*v + aRest) * bVal = cVal
		bVal, ok := con.B.Eval(assign)
		if !ok {
			return false, nil
		}
		cVal, ok := con.C.Eval(assign)
		if !ok {
			return false, nil
		}
		if bVal.IsZero() {
			return false, nil
		}
		rhs, err := cVal.Div(bVal)
		if err != nil {
			return false, nil
		}
		solved, err := rhs.Sub(aRest).Div(aCoeff)
		if err != nil {
			return false, nil
		}
		v, val = aVar, solved
	case bUnk == 1:
		aVal, ok := con.A.Eval(assign)
		if !ok {
			return false, nil
		}
		cVal, ok := con.C.Eval(assign)
		if !ok {
			return false, nil
		}
		if aVal.IsZero() {
			return false, nil
		}
		rhs, err := cVal.Div(aVal)
		if err != nil {
			return false, nil
		}
		solved, err := rhs.Sub(bRest).Div(bCoeff)
		if err != nil {
			return false, nil
		}
		v, val = bVar, solved
	case cUnk == 1:
		aVal, ok := con.A.Eval(assign)
		if !ok {
			return false, nil
		}
		bVal, ok := con.B.Eval(assign)
		if !ok {
			return false, nil
		}
		solved, err := aVal.Mul(bVal).Sub(cRest).Div(cCoeff)
		if err != nil {
			return false, nil
		}
		v, val = cVar, solved
	default:
		return false, nil
	}

	if existing, ok := assign[v]; ok {
		if !existing.Equal(val) {
			return false, errors.Overdetermined()
		}
		return false, nil
	}
	assign[v] = val
	return true, nil
}

// SatR1CS checks every constraint against wit, per spec.md §4.8's
// sat_r1cs: A*B=C must hold exactly for each one.
func SatR1CS(wit map[ids.Var]field.Elem, r *R1CS) bool {
	for _, con := range r.Constraints {
		aVal, ok := con.A.Eval(wit)
		if !ok {
			return false
		}
		bVal, ok := con.B.Eval(wit)
		if !ok {
			return false
		}
		cVal, ok := con.C.Eval(wit)
		if !ok {
			return false
		}
		if !aVal.Mul(bVal).Equal(cVal) {
			return false
		}
	}
	return true
}
