// Package texp defines the typed expression IR that elaboration
// produces (spec component C3): a tagged tree of values, variables,
// unary/binary operators, sequencing, assertions, conditionals, and
// the Bot marker. The R1CS compiler (package r1cs) lowers this tree;
// nothing in this package knows about constraints or witnesses.
package texp

import (
	"fmt"

	"arc/field"
	"arc/ids"
)

// Value is the closed set of atomic, non-variable values a Val node
// can carry.
type Value interface {
	fmt.Stringer
	isValue()
}

// UnitVal is the sole inhabitant of UnitTy.
type UnitVal struct{}

// TrueVal / FalseVal are the canonical Bool literals (encoded 1 / 0 by
// the R1CS compiler).
type TrueVal struct{}
type FalseVal struct{}

// FieldConst is a statically-known field element.
type FieldConst struct {
	F field.Elem
}

// LocRef names a heap location; every Arr- or Prod-typed TExp is
// exactly Val(LocRef(L)) per the compound-by-reference invariant.
type LocRef struct {
	L ids.Loc
}

func (UnitVal) isValue()    {}
func (TrueVal) isValue()    {}
func (FalseVal) isValue()   {}
func (FieldConst) isValue() {}
func (LocRef) isValue()     {}

func (UnitVal) String() string       { return "unit" }
func (TrueVal) String() string       { return "true" }
func (FalseVal) String() string      { return "false" }
func (f FieldConst) String() string  { return f.F.String() }
func (l LocRef) String() string      { return fmt.Sprintf("loc%d", l.L) }

// UnOp is the set of unary operators.
type UnOp int

const (
	Neg UnOp = iota
	Not
)

func (op UnOp) String() string {
	switch op {
	case Neg:
		return "neg"
	case Not:
		return "not"
	default:
		return "unop?"
	}
}

// BinOp is the set of binary operators.
type BinOp int

const (
	Add BinOp = iota
	Sub
	Mul
	Div
	And
	Or
	XOr
	Eq  // general field equality, lowered via the aux-inverse trick
	BEq // boolean equality (XNOR), cheaper when both operands are Bool
)

func (op BinOp) String() string {
	switch op {
	case Add:
		return "add"
	case Sub:
		return "sub"
	case Mul:
		return "mul"
	case Div:
		return "div"
	case And:
		return "and"
	case Or:
		return "or"
	case XOr:
		return "xor"
	case Eq:
		return "eq"
	case BEq:
		return "beq"
	default:
		return "binop?"
	}
}

// TExp is the typed expression tree. It is a closed sum: the variants
// below are the only implementations, each tagged with its own Type.
type TExp interface {
	fmt.Stringer
	Type() Type
	isTExp()
}

// Val wraps an atomic Value.
type Val struct {
	V   Value
	Typ Type
}

// Var references a logic variable allocated by the elaborator.
type Var struct {
	V   ids.Var
	Typ Type
}

// Unop applies a unary operator to a sub-expression.
type Unop struct {
	Op  UnOp
	X   TExp
	Typ Type
}

// Binop applies a binary operator to two sub-expressions.
type Binop struct {
	Op  BinOp
	X   TExp
	Y   TExp
	Typ Type
}

// If is a conditional; Cond must be Bool-typed, Then and Else must
// share a type, which becomes If's own type.
type If struct {
	Cond TExp
	Then TExp
	Else TExp
	Typ  Type
}

// Assert asserts that V is bound to the value of X. Always Unit-typed.
type Assert struct {
	V ids.Var
	X TExp
}

// Seq sequences one or more sub-expressions; the last is the result
// value and determines Seq's type. Invariant: len(Exprs) >= 1.
type Seq struct {
	Exprs []TExp
}

// Bot is the undefined/bottom marker, absorbing under every operator.
type Bot struct {
	Typ Type
}

func (Val) isTExp()    {}
func (Var) isTExp()    {}
func (Unop) isTExp()   {}
func (Binop) isTExp()  {}
func (If) isTExp()     {}
func (Assert) isTExp() {}
func (Seq) isTExp()    {}
func (Bot) isTExp()    {}

func (v Val) Type() Type   { return v.Typ }
func (v Var) Type() Type   { return v.Typ }
func (u Unop) Type() Type  { return u.Typ }
func (b Binop) Type() Type { return b.Typ }
func (i If) Type() Type    { return i.Typ }
func (Assert) Type() Type  { return UnitTy{} }
func (s Seq) Type() Type {
	if len(s.Exprs) == 0 {
		panic("texp: Seq with no sub-expressions violates the TExp invariant")
	}
	return s.Exprs[len(s.Exprs)-1].Type()
}
func (b Bot) Type() Type { return b.Typ }

func (v Val) String() string  { return v.V.String() }
func (v Var) String() string  { return fmt.Sprintf("v%d", v.V) }
func (u Unop) String() string { return fmt.Sprintf("%s(%s)", u.Op, u.X) }
func (b Binop) String() string {
	return fmt.Sprintf("%s(%s, %s)", b.Op, b.X, b.Y)
}
func (i If) String() string {
	return fmt.Sprintf("if %s then %s else %s", i.Cond, i.Then, i.Else)
}
func (a Assert) String() string { return fmt.Sprintf("assert(v%d == %s)", a.V, a.X) }
func (s Seq) String() string {
	out := "seq("
	for i, e := range s.Exprs {
		if i > 0 {
			out += "; "
		}
		out += e.String()
	}
	return out + ")"
}
func (b Bot) String() string { return "bot" }

// Last returns the result sub-expression of a Seq. Safe by the Seq
// invariant: a Seq always carries at least one element.
func (s Seq) Last() TExp { return s.Exprs[len(s.Exprs)-1] }
