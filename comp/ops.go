package comp

import (
	"arc/errors"
	"arc/field"
	"arc/texp"
)

func binop(op texp.BinOp, x, y Comp, resultTyp texp.Type) Comp {
	return func(env *texp.Env) (texp.TExp, error) {
		xe, err := x(env)
		if err != nil {
			return nil, err
		}
		ye, err := y(env)
		if err != nil {
			return nil, err
		}
		if IsBot(env, xe) || IsBot(env, ye) {
			return texp.Bot{Typ: resultTyp}, nil
		}
		return texp.Binop{Op: op, X: xe, Y: ye, Typ: resultTyp}, nil
	}
}

func unop(op texp.UnOp, x Comp, resultTyp texp.Type) Comp {
	return func(env *texp.Env) (texp.TExp, error) {
		xe, err := x(env)
		if err != nil {
			return nil, err
		}
		if IsBot(env, xe) {
			return texp.Bot{Typ: resultTyp}, nil
		}
		return texp.Unop{Op: op, X: xe, Typ: resultTyp}, nil
	}
}

// Add, Sub, Mul, Div are the arithmetic operators; all Field-typed.
func Add(x, y Comp) Comp { return binop(texp.Add, x, y, texp.FieldTy{}) }
func Sub(x, y Comp) Comp { return binop(texp.Sub, x, y, texp.FieldTy{}) }
func Mul(x, y Comp) Comp { return binop(texp.Mul, x, y, texp.FieldTy{}) }
func Div(x, y Comp) Comp { return binop(texp.Div, x, y, texp.FieldTy{}) }

// Neg is arithmetic negation; Field-typed.
func Neg(x Comp) Comp { return unop(texp.Neg, x, texp.FieldTy{}) }

// And, Or, Xor are boolean operators; all Bool-typed.
func And(x, y Comp) Comp { return binop(texp.And, x, y, texp.BoolTy{}) }
func Or(x, y Comp) Comp  { return binop(texp.Or, x, y, texp.BoolTy{}) }
func Xor(x, y Comp) Comp { return binop(texp.XOr, x, y, texp.BoolTy{}) }

// Not is boolean negation; Bool-typed.
func Not(x Comp) Comp { return unop(texp.Not, x, texp.BoolTy{}) }

// Eq is general field equality (usable on Field-typed operands),
// lowered with the aux-inverse trick in package r1cs; Bool-typed.
func Eq(x, y Comp) Comp { return binop(texp.Eq, x, y, texp.BoolTy{}) }

// BoolEq is the cheaper boolean-equality (XNOR) form, intended for
// Bool-typed operands; Bool-typed.
func BoolEq(x, y Comp) Comp { return binop(texp.BEq, x, y, texp.BoolTy{}) }

// ConstInt embeds a signed machine integer as a FieldConst. Pure: does
// not touch Env.
func ConstInt(n int64) Comp {
	return Pure(texp.Val{V: texp.FieldConst{F: field.FromInt64(n)}, Typ: texp.FieldTy{}})
}

// ConstRat embeds a rational literal num/den as a FieldConst,
// dividing in the field; fails DivByZero if den is 0 mod p.
func ConstRat(num, den int64) Comp {
	return func(env *texp.Env) (texp.TExp, error) {
		v, err := field.FromRat(num, den)
		if err != nil {
			return nil, errors.DivByZero()
		}
		return texp.Val{V: texp.FieldConst{F: v}, Typ: texp.FieldTy{}}, nil
	}
}

// True and False are the Bool literals. Pure.
func True() Comp  { return Pure(texp.Val{V: texp.TrueVal{}, Typ: texp.BoolTy{}}) }
func False() Comp { return Pure(texp.Val{V: texp.FalseVal{}, Typ: texp.BoolTy{}}) }

// Unit is the sole Unit value. Pure.
func Unit() Comp { return Pure(unitExpr()) }
