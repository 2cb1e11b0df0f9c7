// Iteration helpers (spec.md §6): all compile-time unrolled into a
// flat sequence of Go-level calls, no runtime loop construct exists in
// the IR.
package comp

import "arc/texp"

// Iter performs a right fold over [0, n]: the innermost application is
// f(n, e0), the outermost is f(0, ...). Both n and the loop bound are
// resolved entirely at elaboration time.
func Iter(n int, f func(i int, acc texp.TExp) Comp, e0 Comp) Comp {
	return func(env *texp.Env) (texp.TExp, error) {
		acc, err := e0(env)
		if err != nil {
			return nil, err
		}
		for i := n; i >= 0; i-- {
			acc, err = f(i, acc)(env)
			if err != nil {
				return nil, err
			}
		}
		return acc, nil
	}
}

// BigSum sums f(i) for i in [0, n], via Iter with addition as the
// folding step and 0 as the base case.
func BigSum(n int, f func(i int) Comp) Comp {
	return Iter(n, func(i int, acc texp.TExp) Comp {
		return Add(Pure(acc), f(i))
	}, ConstInt(0))
}

// Times repeats the effect produced by m, n times, sequencing the
// results the way Then sequences two computations. n <= 0 yields Unit.
func Times(n int, m func() Comp) Comp {
	return func(env *texp.Env) (texp.TExp, error) {
		if n <= 0 {
			return unitExpr(), nil
		}
		acc, err := m()(env)
		if err != nil {
			return nil, err
		}
		for i := 1; i < n; i++ {
			next, err := m()(env)
			if err != nil {
				return nil, err
			}
			acc = seqGlue(acc, next)
		}
		return acc, nil
	}
}

// ForAll runs m once per element of xs, in order, sequencing results.
// An empty xs yields Unit.
func ForAll(xs []texp.TExp, m func(x texp.TExp) Comp) Comp {
	return func(env *texp.Env) (texp.TExp, error) {
		if len(xs) == 0 {
			return unitExpr(), nil
		}
		acc, err := m(xs[0])(env)
		if err != nil {
			return nil, err
		}
		for _, x := range xs[1:] {
			next, err := m(x)(env)
			if err != nil {
				return nil, err
			}
			acc = seqGlue(acc, next)
		}
		return acc, nil
	}
}

// ForAllPairs runs m once per index in the shorter of xs/ys, zipping
// them element-wise, sequencing results. Either list empty yields Unit.
func ForAllPairs(xs, ys []texp.TExp, m func(x, y texp.TExp) Comp) Comp {
	return func(env *texp.Env) (texp.TExp, error) {
		n := len(xs)
		if len(ys) < n {
			n = len(ys)
		}
		if n == 0 {
			return unitExpr(), nil
		}
		acc, err := m(xs[0], ys[0])(env)
		if err != nil {
			return nil, err
		}
		for i := 1; i < n; i++ {
			next, err := m(xs[i], ys[i])(env)
			if err != nil {
				return nil, err
			}
			acc = seqGlue(acc, next)
		}
		return acc, nil
	}
}
