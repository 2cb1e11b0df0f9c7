package script

import (
	"fmt"

	"arc/comp"
	"arc/errors"
	"arc/texp"
)

// scope is a flat name -> bound value table. Scenario programs have no
// modules, functions, or shadowing beyond sequential let-binding, so a
// single map threaded through binding is enough.
type scope map[string]texp.TExp

// Bind translates a parsed Program into a single comp.Comp whose
// result is the program's declared return expression, one priming
// step per statement in source order.
func Bind(p *Program) comp.Comp {
	return bindStmts(p.Stmts, scope{}, func(sc scope) comp.Comp {
		return bindExpr(p.Return.Expr, sc)
	})
}

func bindStmts(stmts []*Stmt, sc scope, k func(scope) comp.Comp) comp.Comp {
	if len(stmts) == 0 {
		return k(sc)
	}
	stmt := stmts[0]
	rest := stmts[1:]
	return comp.Bind(bindRhs(stmt.Rhs, sc), func(v texp.TExp) comp.Comp {
		next := make(scope, len(sc)+1)
		for name, val := range sc {
			next[name] = val
		}
		next[stmt.Name] = v
		return bindStmts(rest, next, k)
	})
}

func bindRhs(rhs *Rhs, sc scope) comp.Comp {
	switch {
	case rhs.Pair != nil:
		return comp.Pair(bindExpr(rhs.Pair.A, sc), bindExpr(rhs.Pair.B, sc))
	case rhs.InputArr != nil:
		return comp.InputArr(rhs.InputArr.N, texp.FieldTy{})
	case rhs.Input != nil:
		return comp.FreshInput(texp.FieldTy{})
	case rhs.Expr != nil:
		return bindExpr(rhs.Expr, sc)
	default:
		return comp.Raise(errors.InternalInvariant("empty right-hand side"))
	}
}

func bindExpr(e *Expr, sc scope) comp.Comp {
	acc := bindProduct(e.Left, sc)
	for _, op := range e.Ops {
		rhs := bindProduct(op.Right, sc)
		switch op.Op {
		case "+":
			acc = comp.Add(acc, rhs)
		case "-":
			acc = comp.Sub(acc, rhs)
		default:
			return comp.Raise(errors.InternalInvariant(fmt.Sprintf("unknown additive operator %q", op.Op)))
		}
	}
	return acc
}

func bindProduct(p *Product, sc scope) comp.Comp {
	acc := bindUnary(p.Left, sc)
	for _, op := range p.Ops {
		rhs := bindUnary(op.Right, sc)
		switch op.Op {
		case "*":
			acc = comp.Mul(acc, rhs)
		case "/":
			acc = comp.Div(acc, rhs)
		default:
			return comp.Raise(errors.InternalInvariant(fmt.Sprintf("unknown multiplicative operator %q", op.Op)))
		}
	}
	return acc
}

func bindUnary(u *Unary, sc scope) comp.Comp {
	c := bindPrimary(u.Primary, sc)
	if u.Neg {
		return comp.Neg(c)
	}
	return c
}

func bindPrimary(p *Primary, sc scope) comp.Comp {
	switch {
	case p.If != nil:
		cond := bindExpr(p.If.Cond, sc)
		return comp.IfThenElse(cond, func() comp.Comp {
			return bindExpr(p.If.Then, sc)
		}, func() comp.Comp {
			return bindExpr(p.If.Else, sc)
		}, texp.FieldTy{})
	case p.Eq != nil:
		return comp.Eq(bindExpr(p.Eq.A, sc), bindExpr(p.Eq.B, sc))
	case p.Get != nil:
		return comp.Get(bindExpr(p.Get.Array, sc), p.Get.Index)
	case p.Fst != nil:
		return comp.Fst(bindExpr(p.Fst.Pair, sc))
	case p.Snd != nil:
		return comp.Snd(bindExpr(p.Snd.Pair, sc))
	case p.BigSum != nil:
		return bindBigSum(p.BigSum, sc)
	case p.Int != nil:
		return comp.ConstInt(int64(*p.Int))
	case p.Ident != nil:
		v, ok := sc[*p.Ident]
		if !ok {
			return comp.Raise(errors.UndefinedName(*p.Ident))
		}
		return comp.Pure(v)
	case p.Paren != nil:
		return bindExpr(p.Paren, sc)
	default:
		return comp.Raise(errors.InternalInvariant("empty primary expression"))
	}
}

func bindBigSum(b *BigSumExpr, sc scope) comp.Comp {
	return comp.BigSum(b.N, func(i int) comp.Comp {
		inner := make(scope, len(sc)+1)
		for name, val := range sc {
			inner[name] = val
		}
		return comp.Bind(comp.ConstInt(int64(i)), func(v texp.TExp) comp.Comp {
			inner[b.Var] = v
			return bindExpr(b.Body, inner)
		})
	})
}
