package comp

import (
	"arc/field"
	"arc/ids"
	"arc/texp"
)

// IsTrue reports whether e is statically known to be the Bool literal
// True: either the literal itself, or a Var with a BoolBind{true} fact
// in Env's analysis map. Absence of a fact never implies falsity.
func IsTrue(env *texp.Env, e texp.TExp) bool {
	switch v := e.(type) {
	case texp.Val:
		_, ok := v.V.(texp.TrueVal)
		return ok
	case texp.Var:
		if b, ok := env.Analysis[v.V]; ok {
			bb, ok := b.(texp.BoolBind)
			return ok && bb.B
		}
	}
	return false
}

// IsFalse is IsTrue's mirror for the False literal.
func IsFalse(env *texp.Env, e texp.TExp) bool {
	switch v := e.(type) {
	case texp.Val:
		_, ok := v.V.(texp.FalseVal)
		return ok
	case texp.Var:
		if b, ok := env.Analysis[v.V]; ok {
			bb, ok := b.(texp.BoolBind)
			return ok && !bb.B
		}
	}
	return false
}

// IsBot reports whether e is statically known to be Bot. Bot
// propagates through Unop, Binop, and Seq: if any operand is Bot, the
// whole expression is considered Bot without inspecting anything else.
func IsBot(env *texp.Env, e texp.TExp) bool {
	switch v := e.(type) {
	case texp.Bot:
		return true
	case texp.Var:
		if b, ok := env.Analysis[v.V]; ok {
			_, ok := b.(texp.BotBind)
			return ok
		}
		return false
	case texp.Unop:
		return IsBot(env, v.X)
	case texp.Binop:
		return IsBot(env, v.X) || IsBot(env, v.Y)
	case texp.Seq:
		for _, sub := range v.Exprs {
			if IsBot(env, sub) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// constOf reports the field constant e is statically known to denote,
// either a literal FieldConst or a Var with a ConstBind fact.
func constOf(env *texp.Env, e texp.TExp) (field.Elem, bool) {
	switch v := e.(type) {
	case texp.Val:
		if fc, ok := v.V.(texp.FieldConst); ok {
			return fc.F, true
		}
	case texp.Var:
		if b, ok := env.Analysis[v.V]; ok {
			if cb, ok := b.(texp.ConstBind); ok {
				return cb.F, true
			}
		}
	}
	return field.Elem{}, false
}

// updateAnalysis records the static fact spec.md §4.6 describes for
// Assert(Var(v), e): when e resolves to a known constant, boolean, or
// Bot, that fact is attached to v.
func updateAnalysis(env *texp.Env, v ids.Var, e texp.TExp) {
	if IsBot(env, e) {
		env.Analysis[v] = texp.BotBind{}
		return
	}
	if IsTrue(env, e) {
		env.Analysis[v] = texp.BoolBind{B: true}
		return
	}
	if IsFalse(env, e) {
		env.Analysis[v] = texp.BoolBind{B: false}
		return
	}
	if c, ok := constOf(env, e); ok {
		env.Analysis[v] = texp.ConstBind{F: c}
	}
}

// MakeAssert builds an Assert(v, e) node, recording whatever static
// fact about v the assertion establishes.
func MakeAssert(env *texp.Env, v ids.Var, e texp.TExp) texp.TExp {
	updateAnalysis(env, v, e)
	return texp.Assert{V: v, X: e}
}

// Assert is the exported combinator form of spec.md's Assert(var, e):
// vc must elaborate to a Var, or elaboration fails with
// InternalInvariant (an assertion target must be a variable).
func Assert(vc Comp, e Comp) Comp {
	return func(env *texp.Env) (texp.TExp, error) {
		ve, err := vc(env)
		if err != nil {
			return nil, err
		}
		v, ok := ve.(texp.Var)
		if !ok {
			return nil, internalErr("assert target must be a variable")
		}
		ee, err := e(env)
		if err != nil {
			return nil, err
		}
		return MakeAssert(env, v.V, ee), nil
	}
}

// IfThenElse implements spec.md §4.6's conditional pruning: cond is
// always elaborated, but then/els are thunks so that a statically
// resolved condition can skip the untaken branch's side effects
// entirely. If cond is statically Bot, the whole expression is Bot.
func IfThenElse(cond Comp, then, els func() Comp, resultTyp texp.Type) Comp {
	return func(env *texp.Env) (texp.TExp, error) {
		c, err := cond(env)
		if err != nil {
			return nil, err
		}
		if IsBot(env, c) {
			return texp.Bot{Typ: resultTyp}, nil
		}
		if IsTrue(env, c) {
			return then()(env)
		}
		if IsFalse(env, c) {
			return els()(env)
		}
		t, err := then()(env)
		if err != nil {
			return nil, err
		}
		e, err := els()(env)
		if err != nil {
			return nil, err
		}
		return texp.If{Cond: c, Then: t, Else: e, Typ: resultTyp}, nil
	}
}
