// Package comp implements the elaboration monad (spec component C4):
// a stateful program builder that threads an *texp.Env through a
// sequence of combinators and produces a texp.TExp denoting both the
// circuit built so far and its current result value.
//
// The "user program" described by spec.md is a Go value of type Comp,
// built by composing the exported combinators in this package and its
// sibling files (arrays.go, pairs.go, ops.go, iter.go, analysis.go) —
// there is no external syntax to parse for the programmatic API; the
// host language (Go) is the surface syntax, the way a gnark circuit's
// Define method is itself the circuit description.
package comp

import (
	"arc/errors"
	"arc/texp"
)

// Comp is the elaboration monad: running it against an *texp.Env
// produces either the TExp it denotes or an ElabError.
type Comp func(env *texp.Env) (texp.TExp, error)

// Run executes m against env, the entry point used by the compiler
// driver (package r1cs) and the test driver.
func Run(m Comp, env *texp.Env) (texp.TExp, error) {
	return m(env)
}

// Pure lifts an already-built TExp into Comp without touching Env.
func Pure(e texp.TExp) Comp {
	return func(*texp.Env) (texp.TExp, error) { return e, nil }
}

// Raise abandons the computation; every downstream combinator built
// from Then/Bind short-circuits once an error appears.
func Raise(err error) Comp {
	return func(*texp.Env) (texp.TExp, error) { return nil, err }
}

// Then runs m1 then m2, gluing their result expressions with the smart
// seq constructor: m1's result is kept as a side-effecting prefix only
// if it is impure.
func Then(m1, m2 Comp) Comp {
	return func(env *texp.Env) (texp.TExp, error) {
		e1, err := m1(env)
		if err != nil {
			return nil, err
		}
		e2, err := m2(env)
		if err != nil {
			return nil, err
		}
		return seqGlue(e1, e2), nil
	}
}

// Bind runs m, passes its result expression to k, and glues the two
// results the same way Then does.
func Bind(m Comp, k func(texp.TExp) Comp) Comp {
	return func(env *texp.Env) (texp.TExp, error) {
		e1, err := m(env)
		if err != nil {
			return nil, err
		}
		e2, err := k(e1)(env)
		if err != nil {
			return nil, err
		}
		return seqGlue(e1, e2), nil
	}
}

// isPure reports whether e is side-effect free: a plain value, a
// variable reference, or a Unop/Binop over pure sub-expressions.
// Assert, If, and every surviving Seq are never pure (spec.md §4.2).
func isPure(e texp.TExp) bool {
	switch v := e.(type) {
	case texp.Val:
		return true
	case texp.Var:
		return true
	case texp.Unop:
		return isPure(v.X)
	case texp.Binop:
		return isPure(v.X) && isPure(v.Y)
	default:
		return false
	}
}

// dropPure filters the pure elements out of a prefix of Seq exprs.
func dropPure(exprs []texp.TExp) []texp.TExp {
	var out []texp.TExp
	for _, e := range exprs {
		if !isPure(e) {
			out = append(out, e)
		}
	}
	return out
}

// seqGlue is the smart Seq constructor described in spec.md §4.2:
// a pure left operand is dropped; a left operand that is itself a Seq
// is spliced in rather than nested, with the pure elements of its
// prefix dropped and its last element kept verbatim. A Seq on the
// right is not flattened: it becomes the last element as it is.
func seqGlue(left, right texp.TExp) texp.TExp {
	if isPure(left) {
		return right
	}
	if sq, ok := left.(texp.Seq); ok {
		init := sq.Exprs[:len(sq.Exprs)-1]
		last := sq.Last()
		kept := dropPure(init)
		exprs := make([]texp.TExp, 0, len(kept)+2)
		exprs = append(exprs, kept...)
		exprs = append(exprs, last, right)
		return texp.Seq{Exprs: exprs}
	}
	return texp.Seq{Exprs: []texp.TExp{left, right}}
}

func unitExpr() texp.TExp {
	return texp.Val{V: texp.UnitVal{}, Typ: texp.UnitTy{}}
}

// internalErr wraps an InternalInvariant CompilerError as a Go error.
func internalErr(msg string) error {
	return errors.InternalInvariant(msg)
}
