package comp

import (
	"arc/errors"
	"arc/ids"
	"arc/texp"
)

// bindComponent installs component e at (loc, idx). Unlike Set,
// pair never reuses an existing Var: per spec.md §4.5, only a LocRef
// component is stored directly; every other component is bound
// through a fresh variable and an Assert, even if e is already a Var.
func bindComponent(env *texp.Env, loc ids.Loc, idx int, e texp.TExp) texp.TExp {
	if val, ok := e.(texp.Val); ok {
		if lr, ok := val.V.(texp.LocRef); ok {
			env.Set(loc, idx, texp.ObjLoc{L: lr.L})
			return nil
		}
	}
	fv := env.Supply.FreshVar()
	env.Set(loc, idx, texp.ObjVar{V: fv})
	return MakeAssert(env, fv, e)
}

// Pair allocates a 2-element compound from a and b, returning a
// LocRef of ProdTy(a's type, b's type).
func Pair(a, b Comp) Comp {
	return func(env *texp.Env) (texp.TExp, error) {
		ae, err := a(env)
		if err != nil {
			return nil, err
		}
		be, err := b(env)
		if err != nil {
			return nil, err
		}

		loc := env.Supply.FreshLoc()
		fstEffect := bindComponent(env, loc, 0, ae)
		sndEffect := bindComponent(env, loc, 1, be)

		result := texp.TExp(texp.Val{
			V:   texp.LocRef{L: loc},
			Typ: texp.ProdTy{Fst: ae.Type(), Snd: be.Type()},
		})
		if sndEffect != nil {
			result = seqGlue(sndEffect, result)
		}
		if fstEffect != nil {
			result = seqGlue(fstEffect, result)
		}
		return result, nil
	}
}

func prodType(t texp.Type, fst bool) texp.Type {
	p, ok := t.(texp.ProdTy)
	if !ok {
		return texp.UnitTy{}
	}
	if fst {
		return p.Fst
	}
	return p.Snd
}

// Fst projects the first component of a pair; Bot propagates.
func Fst(p Comp) Comp {
	return func(env *texp.Env) (texp.TExp, error) {
		pe, err := p(env)
		if err != nil {
			return nil, err
		}
		typ := prodType(pe.Type(), true)
		if IsBot(env, pe) {
			return texp.Bot{Typ: typ}, nil
		}
		loc, ok := locOf(pe)
		if !ok {
			return nil, errors.NotALocation()
		}
		return resolveObj(env, loc, 0, typ)
	}
}

// Snd projects the second component of a pair; Bot propagates.
func Snd(p Comp) Comp {
	return func(env *texp.Env) (texp.TExp, error) {
		pe, err := p(env)
		if err != nil {
			return nil, err
		}
		typ := prodType(pe.Type(), false)
		if IsBot(env, pe) {
			return texp.Bot{Typ: typ}, nil
		}
		loc, ok := locOf(pe)
		if !ok {
			return nil, errors.NotALocation()
		}
		return resolveObj(env, loc, 1, typ)
	}
}
