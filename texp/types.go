package texp

import "fmt"

// Type is the closed set of value types a TExp can carry: Unit, Bool,
// Field, Arr(elem), and Prod(fst, snd). Mirrors the teacher's ir.Type
// sum (IntType/BoolType/...), but over this compiler's own alphabet.
type Type interface {
	String() string
	isType()
}

// UnitTy is the type of the Unit value and of Assert/Set results.
type UnitTy struct{}

// BoolTy is the type of True/False and every Bool-typed variable.
type BoolTy struct{}

// FieldTy is the type of field constants and field-typed variables.
type FieldTy struct{}

// ArrTy is the type of an array of Elem, stored by reference.
type ArrTy struct {
	Elem Type
}

// ProdTy is the type of a pair, stored by reference.
type ProdTy struct {
	Fst Type
	Snd Type
}

func (UnitTy) isType()  {}
func (BoolTy) isType()  {}
func (FieldTy) isType() {}
func (ArrTy) isType()   {}
func (ProdTy) isType()  {}

func (UnitTy) String() string  { return "Unit" }
func (BoolTy) String() string  { return "Bool" }
func (FieldTy) String() string { return "Field" }
func (a ArrTy) String() string { return fmt.Sprintf("Arr(%s)", a.Elem) }
func (p ProdTy) String() string {
	return fmt.Sprintf("Prod(%s, %s)", p.Fst, p.Snd)
}

// IsCompound reports whether t is an Arr or Prod, i.e. every TExp of
// this type must obey the compound-by-reference invariant.
func IsCompound(t Type) bool {
	switch t.(type) {
	case ArrTy, ProdTy:
		return true
	default:
		return false
	}
}
