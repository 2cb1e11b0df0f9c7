// Package field implements prime-field arithmetic for the R1CS backend.
//
// Every value produced by elaboration or compilation that needs an
// arithmetic meaning ultimately bottoms out in an Elem: the field the
// whole circuit is defined over. The modulus matches the BN254 scalar
// field, the curve the retrieved gnark R1CS backends target, so a
// serialized constraint system here is arithmetically compatible with
// those backends even though proving itself is out of scope.
package field

import (
	"fmt"
	"math/big"
)

// Modulus is the BN254 scalar field order.
var Modulus = mustParse("21888242871839275222246405745257275088548364400416034343698204186575808495617")

func mustParse(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("field: invalid modulus literal")
	}
	return n
}

// Elem is an element of F_p, always kept in canonical form [0, p).
type Elem struct {
	v *big.Int
}

// Zero is the additive identity.
func Zero() Elem { return Elem{v: new(big.Int)} }

// One is the multiplicative identity.
func One() Elem { return Elem{v: big.NewInt(1)} }

// FromInt64 embeds a signed machine integer into the field, reducing
// negative values mod p the way a rational-literal lowering would.
func FromInt64(n int64) Elem {
	return FromBigInt(big.NewInt(n))
}

// FromBigInt reduces an arbitrary integer into canonical form.
func FromBigInt(n *big.Int) Elem {
	v := new(big.Int).Mod(n, Modulus)
	return Elem{v: v}
}

// FromRat embeds a rational literal p/q by dividing in the field;
// fails the same way runtime Div does if q is 0 mod p.
func FromRat(num, den int64) (Elem, error) {
	n := FromInt64(num)
	d := FromInt64(den)
	return n.Div(d)
}

func (e Elem) big() *big.Int {
	if e.v == nil {
		return new(big.Int)
	}
	return e.v
}

// Add returns e + other mod p.
func (e Elem) Add(other Elem) Elem {
	r := new(big.Int).Add(e.big(), other.big())
	r.Mod(r, Modulus)
	return Elem{v: r}
}

// Sub returns e - other mod p.
func (e Elem) Sub(other Elem) Elem {
	r := new(big.Int).Sub(e.big(), other.big())
	r.Mod(r, Modulus)
	return Elem{v: r}
}

// Mul returns e * other mod p.
func (e Elem) Mul(other Elem) Elem {
	r := new(big.Int).Mul(e.big(), other.big())
	r.Mod(r, Modulus)
	return Elem{v: r}
}

// Neg returns -e mod p.
func (e Elem) Neg() Elem {
	r := new(big.Int).Neg(e.big())
	r.Mod(r, Modulus)
	return Elem{v: r}
}

// ErrDivByZero is returned by Inv and Div when dividing by the zero element.
var ErrDivByZero = fmt.Errorf("field: division by zero")

// Inv returns the multiplicative inverse of e, or ErrDivByZero if e is zero.
func (e Elem) Inv() (Elem, error) {
	if e.IsZero() {
		return Elem{}, ErrDivByZero
	}
	r := new(big.Int).ModInverse(e.big(), Modulus)
	return Elem{v: r}, nil
}

// Div returns e / other, or ErrDivByZero if other is zero (including 0/0).
func (e Elem) Div(other Elem) (Elem, error) {
	inv, err := other.Inv()
	if err != nil {
		return Elem{}, err
	}
	return e.Mul(inv), nil
}

// IsZero reports whether e is the additive identity.
func (e Elem) IsZero() bool { return e.big().Sign() == 0 }

// IsOne reports whether e is the multiplicative identity.
func (e Elem) IsOne() bool { return e.big().Cmp(big.NewInt(1)) == 0 }

// Equal reports whether e and other denote the same residue.
func (e Elem) Equal(other Elem) bool { return e.big().Cmp(other.big()) == 0 }

// BigInt returns a copy of the canonical representative in [0, p).
func (e Elem) BigInt() *big.Int { return new(big.Int).Set(e.big()) }

// String renders the decimal residue.
func (e Elem) String() string { return e.big().String() }
