package texp

import (
	"fmt"

	"arc/field"
	"arc/ids"
)

// ObjKey addresses one component of a compound value: index i of the
// object stored at heap location L.
type ObjKey struct {
	L ids.Loc
	I int
}

// ObjBind is what an ObjKey resolves to: either another location (for
// nested compounds) or a logic variable.
type ObjBind interface {
	isObjBind()
}

// ObjLoc binds an index to a nested compound.
type ObjLoc struct{ L ids.Loc }

// ObjVar binds an index to a scalar variable.
type ObjVar struct{ V ids.Var }

func (ObjLoc) isObjBind() {}
func (ObjVar) isObjBind() {}

// ObjMap is the elaborator's heap: a partial function (L, index) -> ObjBind.
type ObjMap map[ObjKey]ObjBind

// AnalBind is a statically-known fact about a variable: it is a
// constant boolean, a constant field element, or always bottom.
// Absence of a binding means "unknown", never "false"/"not constant".
type AnalBind interface {
	isAnalBind()
}

// BoolBind records that a variable is statically known to carry this
// boolean value.
type BoolBind struct{ B bool }

// ConstBind records that a variable is statically known to carry this
// field constant.
type ConstBind struct{ F field.Elem }

// BotBind records that a variable is statically known to be Bot.
type BotBind struct{}

func (BoolBind) isAnalBind()  {}
func (ConstBind) isAnalBind() {}
func (BotBind) isAnalBind()   {}

// AnalMap is the elaborator's optimistic static-analysis table:
// V -> AnalBind, absent meaning "no fact known".
type AnalMap map[ids.Var]AnalBind

// Env is the elaborator's threaded state (spec component C4's Env):
// the identity supply, the ordered list of input variables, the
// object heap, and the analysis table. It is mutated only through the
// Comp monad's combinators, so updates are always ordered.
type Env struct {
	Supply *ids.Supply

	// inputs accumulates input variables by prepending, matching the
	// source behavior described in spec.md's open question on input
	// ordering; Inputs() reverses this once for external consumers.
	inputs []ids.Var

	Objects  ObjMap
	Analysis AnalMap
}

// NewEnv returns a freshly initialized, empty elaboration environment.
func NewEnv() *Env {
	return &Env{
		Supply:   ids.NewSupply(),
		Objects:  make(ObjMap),
		Analysis: make(AnalMap),
	}
}

// PushInput prepends v to the internal input list (declaration order
// is recovered by Inputs()).
func (e *Env) PushInput(v ids.Var) {
	e.inputs = append([]ids.Var{v}, e.inputs...)
}

// Inputs returns the input variables in declaration order.
func (e *Env) Inputs() []ids.Var {
	out := make([]ids.Var, len(e.inputs))
	for i, v := range e.inputs {
		out[len(e.inputs)-1-i] = v
	}
	return out
}

// NumVars returns the total number of variables allocated so far.
func (e *Env) NumVars() int { return e.Supply.NumVars() }

// Get resolves (L, i) in the object map, or ok=false on a miss.
func (e *Env) Get(l ids.Loc, i int) (ObjBind, bool) {
	b, ok := e.Objects[ObjKey{L: l, I: i}]
	return b, ok
}

// Set installs a binding for (L, i), overwriting any prior binding.
func (e *Env) Set(l ids.Loc, i int, b ObjBind) {
	e.Objects[ObjKey{L: l, I: i}] = b
}

// String renders a short debug summary of the environment's shape.
func (e *Env) String() string {
	return fmt.Sprintf("Env{vars=%d locs=%d inputs=%d objects=%d}",
		e.Supply.NumVars(), e.Supply.NumLocs(), len(e.inputs), len(e.Objects))
}
