package comp

import "arc/texp"

// FreshVar allocates a new logic variable of the given type, bumping
// Env's variable counter (spec.md §4.3).
func FreshVar(typ texp.Type) Comp {
	return func(env *texp.Env) (texp.TExp, error) {
		v := env.Supply.FreshVar()
		return texp.Var{V: v, Typ: typ}, nil
	}
}

// FreshInput allocates a new logic variable and additionally marks it
// as user-supplied, prepending it onto Env's input list.
func FreshInput(typ texp.Type) Comp {
	return func(env *texp.Env) (texp.TExp, error) {
		v := env.Supply.FreshVar()
		env.PushInput(v)
		return texp.Var{V: v, Typ: typ}, nil
	}
}
