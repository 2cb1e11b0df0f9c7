// Package comp's array/pair support implements spec component C5: the
// compound value layer. Every compound TExp is Val(LocRef(L)); its
// components live in Env's object map, never inlined into the tree.
package comp

import (
	"arc/errors"
	"arc/ids"
	"arc/texp"
)

// locOf resolves e to the heap location it denotes. e is ordinarily a
// bare Val(LocRef(L)), but Pair threads its component Asserts as
// (possibly nested) Seqs around that Val, so every Seq is unwrapped to
// its result value first.
func locOf(e texp.TExp) (ids.Loc, bool) {
	for {
		sq, ok := e.(texp.Seq)
		if !ok {
			break
		}
		e = sq.Last()
	}
	if v, ok := e.(texp.Val); ok {
		if lr, ok := v.V.(texp.LocRef); ok {
			return lr.L, true
		}
	}
	return 0, false
}

func arrElemType(t texp.Type) texp.Type {
	if a, ok := t.(texp.ArrTy); ok {
		return a.Elem
	}
	return texp.UnitTy{}
}

func resolveObj(env *texp.Env, loc ids.Loc, i int, typ texp.Type) (texp.TExp, error) {
	bind, ok := env.Get(loc, i)
	if !ok {
		return nil, errors.UnboundIndex(int(loc), i)
	}
	switch b := bind.(type) {
	case texp.ObjLoc:
		return texp.Val{V: texp.LocRef{L: b.L}, Typ: typ}, nil
	case texp.ObjVar:
		return texp.Var{V: b.V, Typ: typ}, nil
	default:
		return nil, internalErr("object map entry of unrecognized kind")
	}
}

// Arr allocates an array of n elements of type elemTyp, each backed by
// a fresh variable. Fails ZeroSizedArray when n <= 0.
func Arr(n int, elemTyp texp.Type) Comp {
	return func(env *texp.Env) (texp.TExp, error) {
		if n <= 0 {
			return nil, errors.ZeroSizedArray()
		}
		loc := env.Supply.FreshLoc()
		for i := 0; i < n; i++ {
			v := env.Supply.FreshVar()
			env.Set(loc, i, texp.ObjVar{V: v})
		}
		return texp.Val{V: texp.LocRef{L: loc}, Typ: texp.ArrTy{Elem: elemTyp}}, nil
	}
}

// InputArr is Arr, except every element variable is additionally
// marked user-supplied, in index order.
func InputArr(n int, elemTyp texp.Type) Comp {
	return func(env *texp.Env) (texp.TExp, error) {
		if n <= 0 {
			return nil, errors.ZeroSizedArray()
		}
		loc := env.Supply.FreshLoc()
		for i := 0; i < n; i++ {
			v := env.Supply.FreshVar()
			env.Set(loc, i, texp.ObjVar{V: v})
			env.PushInput(v)
		}
		return texp.Val{V: texp.LocRef{L: loc}, Typ: texp.ArrTy{Elem: elemTyp}}, nil
	}
}

// Get reads element i of array a. Bot propagates: get from Bot is Bot.
func Get(a Comp, i int) Comp {
	return func(env *texp.Env) (texp.TExp, error) {
		ae, err := a(env)
		if err != nil {
			return nil, err
		}
		elemTyp := arrElemType(ae.Type())
		if IsBot(env, ae) {
			return texp.Bot{Typ: elemTyp}, nil
		}
		loc, ok := locOf(ae)
		if !ok {
			return nil, errors.NotALocation()
		}
		return resolveObj(env, loc, i, elemTyp)
	}
}

// Set writes e into element i of array a, returning Unit. When e is
// already a Var or a LocRef, the existing binding is rebound directly
// with no new variable or constraint; otherwise a fresh variable is
// allocated and asserted equal to e.
func Set(a Comp, i int, e Comp) Comp {
	return func(env *texp.Env) (texp.TExp, error) {
		ae, err := a(env)
		if err != nil {
			return nil, err
		}
		if IsBot(env, ae) {
			return texp.Bot{Typ: texp.UnitTy{}}, nil
		}
		loc, ok := locOf(ae)
		if !ok {
			return nil, errors.NotALocation()
		}
		ee, err := e(env)
		if err != nil {
			return nil, err
		}
		if v, ok := ee.(texp.Var); ok {
			env.Set(loc, i, texp.ObjVar{V: v.V})
			return unitExpr(), nil
		}
		if val, ok := ee.(texp.Val); ok {
			if lr, ok := val.V.(texp.LocRef); ok {
				env.Set(loc, i, texp.ObjLoc{L: lr.L})
				return unitExpr(), nil
			}
		}
		fv := env.Supply.FreshVar()
		env.Set(loc, i, texp.ObjVar{V: fv})
		return MakeAssert(env, fv, ee), nil
	}
}
