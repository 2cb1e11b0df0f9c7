package r1cs

import (
	"arc/errors"
	"arc/field"
	"arc/ids"
	"arc/texp"
)

// loweredValue is what compiling one TExp node produces: either the
// variable holding its arithmetic value, or a witness that the node is
// statically Bot, which emits no constraints and carries no value.
type loweredValue struct {
	bot bool
	v   ids.Var
}

type compiler struct {
	env   *texp.Env
	r1cs  *R1CS
	fresh ids.Supply
}

// Compile lowers e into an R1CS, reusing env's variable identities (so
// inputs line up with the identities Get/Set/Assert already assigned)
// and allocating any additional auxiliary variables from a private
// supply seeded past env's current high-water mark, per spec.md §4.7.
func Compile(e texp.TExp, env *texp.Env) (*R1CS, ids.Var, error) {
	c := &compiler{env: env, r1cs: newR1CS(env.NumVars(), env.Inputs())}
	c.fresh = *ids.NewSupply()
	// seed the auxiliary supply past every variable env already handed
	// out, so fresh compiler-introduced variables never collide.
	for i := 0; i < env.NumVars(); i++ {
		c.fresh.FreshVar()
	}

	lv, err := c.compile(e)
	if err != nil {
		return nil, 0, err
	}
	c.r1cs.NumVars = int(c.fresh.NumVars())
	if lv.bot {
		// a wholly-Bot program still needs a designated output
		// variable; materialize one bound to the constant zero.
		out := c.freshVar()
		c.emitConst(out, field.Zero())
		c.r1cs.OutputVars = []ids.Var{out}
		c.r1cs.NumVars = int(c.fresh.NumVars())
		return c.r1cs, out, nil
	}
	c.r1cs.OutputVars = []ids.Var{lv.v}
	return c.r1cs, lv.v, nil
}

func (c *compiler) freshVar() ids.Var { return c.fresh.FreshVar() }

func (c *compiler) emitConst(v ids.Var, val field.Elem) {
	c.r1cs.addConstraint(Constraint{
		A: LCConst(field.One()),
		B: LCConst(val),
		C: LCVar(v),
	})
}

func (c *compiler) compile(e texp.TExp) (loweredValue, error) {
	switch n := e.(type) {
	case texp.Val:
		return c.compileVal(n)
	case texp.Var:
		// a Bool-typed operand variable (not just a gadget output)
		// still needs its range constraint; ensureBoolRange dedupes.
		if _, ok := n.Typ.(texp.BoolTy); ok {
			c.r1cs.ensureBoolRange(n.V)
		}
		return loweredValue{v: n.V}, nil
	case texp.Unop:
		return c.compileUnop(n)
	case texp.Binop:
		return c.compileBinop(n)
	case texp.If:
		return c.compileIf(n)
	case texp.Assert:
		return c.compileAssert(n)
	case texp.Seq:
		return c.compileSeq(n)
	case texp.Bot:
		return loweredValue{bot: true}, nil
	default:
		return loweredValue{}, errors.InternalInvariant("unrecognized TExp variant reached the compiler")
	}
}

func constOfValue(v texp.Value) (field.Elem, bool) {
	switch val := v.(type) {
	case texp.FieldConst:
		return val.F, true
	case texp.TrueVal:
		return field.One(), true
	case texp.FalseVal:
		return field.Zero(), true
	case texp.UnitVal:
		return field.Zero(), false
	case texp.LocRef:
		return field.Zero(), false
	default:
		return field.Zero(), false
	}
}

func (c *compiler) compileVal(n texp.Val) (loweredValue, error) {
	val, _ := constOfValue(n.V)
	out := c.freshVar()
	c.emitConst(out, val)
	if _, ok := n.Typ.(texp.BoolTy); ok {
		c.r1cs.ensureBoolRange(out)
	}
	return loweredValue{v: out}, nil
}

func (c *compiler) compileUnop(n texp.Unop) (loweredValue, error) {
	x, err := c.compile(n.X)
	if err != nil {
		return loweredValue{}, err
	}
	if x.bot {
		return loweredValue{bot: true}, nil
	}
	out := c.freshVar()
	switch n.Op {
	case texp.Neg:
		// 1 * (-Vx) = Ve
		c.r1cs.addConstraint(Constraint{
			A: LCConst(field.One()),
			B: LCVar(x.v).Scale(field.FromInt64(-1)),
			C: LCVar(out),
		})
	case texp.Not:
		// Ve = 1 - Vx
		c.r1cs.addConstraint(Constraint{
			A: LCConst(field.One()),
			B: LCConst(field.One()).Sub(LCVar(x.v)),
			C: LCVar(out),
		})
		c.r1cs.ensureBoolRange(out)
	default:
		return loweredValue{}, errors.InternalInvariant("unrecognized UnOp reached the compiler")
	}
	return loweredValue{v: out}, nil
}

func (c *compiler) compileBinop(n texp.Binop) (loweredValue, error) {
	x, err := c.compile(n.X)
	if err != nil {
		return loweredValue{}, err
	}
	y, err := c.compile(n.Y)
	if err != nil {
		return loweredValue{}, err
	}
	if x.bot || y.bot {
		return loweredValue{bot: true}, nil
	}

	switch n.Op {
	case texp.Add:
		out := c.freshVar()
		c.r1cs.addConstraint(Constraint{A: LCConst(field.One()), B: LCVar(x.v).Add(LCVar(y.v)), C: LCVar(out)})
		return loweredValue{v: out}, nil
	case texp.Sub:
		out := c.freshVar()
		c.r1cs.addConstraint(Constraint{A: LCConst(field.One()), B: LCVar(x.v).Sub(LCVar(y.v)), C: LCVar(out)})
		return loweredValue{v: out}, nil
	case texp.Mul:
		out := c.freshVar()
		c.r1cs.addConstraint(Constraint{A: LCVar(x.v), B: LCVar(y.v), C: LCVar(out)})
		return loweredValue{v: out}, nil
	case texp.Div:
		return c.compileDiv(x.v, y.v)
	case texp.And:
		out := c.freshVar()
		c.r1cs.addConstraint(Constraint{A: LCVar(x.v), B: LCVar(y.v), C: LCVar(out)})
		c.r1cs.ensureBoolRange(out)
		return loweredValue{v: out}, nil
	case texp.Or:
		return c.compileOr(x.v, y.v)
	case texp.XOr:
		return c.compileXor(x.v, y.v)
	case texp.Eq:
		return c.compileEq(x.v, y.v)
	case texp.BEq:
		return c.compileBoolEq(x.v, y.v)
	default:
		return loweredValue{}, errors.InternalInvariant("unrecognized BinOp reached the compiler")
	}
}

// compileDiv introduces Ve such that Vb * Ve = Va, with a hint that
// computes Ve directly (and fails DivByZero) rather than relying on
// the generic linear solver, since the defining equation's unknown
// sits on the B side of a multiplication.
func (c *compiler) compileDiv(va, vb ids.Var) (loweredValue, error) {
	out := c.freshVar()
	hint := func(lookup func(ids.Var) (field.Elem, bool)) (map[ids.Var]field.Elem, error) {
		bVal, ok := lookup(vb)
		if !ok {
			return nil, nil
		}
		if bVal.IsZero() {
			return nil, errors.DivByZero()
		}
		aVal, ok := lookup(va)
		if !ok {
			return nil, nil
		}
		q, err := aVal.Div(bVal)
		if err != nil {
			return nil, errors.DivByZero()
		}
		return map[ids.Var]field.Elem{out: q}, nil
	}
	c.r1cs.addConstraint(Constraint{A: LCVar(vb), B: LCVar(out), C: LCVar(va), Hint: hint})
	return loweredValue{v: out}, nil
}

// compileOr realizes Ve = Va + Vb - Va*Vb via an auxiliary product.
func (c *compiler) compileOr(va, vb ids.Var) (loweredValue, error) {
	aux := c.freshVar()
	c.r1cs.addConstraint(Constraint{A: LCVar(va), B: LCVar(vb), C: LCVar(aux)})
	out := c.freshVar()
	sum := LCVar(va).Add(LCVar(vb)).Sub(LCVar(aux))
	c.r1cs.addConstraint(Constraint{A: LCConst(field.One()), B: sum, C: LCVar(out)})
	c.r1cs.ensureBoolRange(out)
	return loweredValue{v: out}, nil
}

// compileXor realizes Ve = Va + Vb - 2*Va*Vb via an auxiliary product.
func (c *compiler) compileXor(va, vb ids.Var) (loweredValue, error) {
	aux := c.freshVar()
	c.r1cs.addConstraint(Constraint{A: LCVar(va), B: LCVar(vb), C: LCVar(aux)})
	out := c.freshVar()
	sum := LCVar(va).Add(LCVar(vb)).Sub(LCVar(aux).Scale(field.FromInt64(2)))
	c.r1cs.addConstraint(Constraint{A: LCConst(field.One()), B: sum, C: LCVar(out)})
	c.r1cs.ensureBoolRange(out)
	return loweredValue{v: out}, nil
}

// compileEq realizes the auxiliary-inverse equality gadget: let
// d = Va - Vb; require d*w = 1-Ve and d*Ve = 0, forcing Ve=1 iff d=0.
// A hint resolves both w and Ve together the moment d is known, since
// neither equation alone is single-unknown-linear.
func (c *compiler) compileEq(va, vb ids.Var) (loweredValue, error) {
	d := LCVar(va).Sub(LCVar(vb))
	w := c.freshVar()
	out := c.freshVar()

	hint := func(lookup func(ids.Var) (field.Elem, bool)) (map[ids.Var]field.Elem, error) {
		dVal, ok := d.EvalLookup(lookup)
		if !ok {
			return nil, nil
		}
		if dVal.IsZero() {
			return map[ids.Var]field.Elem{out: field.One(), w: field.Zero()}, nil
		}
		winv, err := dVal.Inv()
		if err != nil {
			return nil, err
		}
		return map[ids.Var]field.Elem{out: field.Zero(), w: winv}, nil
	}

	c.r1cs.addConstraint(Constraint{
		A:    d,
		B:    LCVar(w),
		C:    LCConst(field.One()).Sub(LCVar(out)),
		Hint: hint,
	})
	c.r1cs.addConstraint(Constraint{
		A: d,
		B: LCVar(out),
		C: LCConst(field.Zero()),
	})
	c.r1cs.ensureBoolRange(out)
	return loweredValue{v: out}, nil
}

// compileBoolEq realizes XNOR: Ve = 1 - (Va + Vb - 2*Va*Vb).
func (c *compiler) compileBoolEq(va, vb ids.Var) (loweredValue, error) {
	xor, err := c.compileXor(va, vb)
	if err != nil {
		return loweredValue{}, err
	}
	out := c.freshVar()
	c.r1cs.addConstraint(Constraint{
		A: LCConst(field.One()),
		B: LCConst(field.One()).Sub(LCVar(xor.v)),
		C: LCVar(out),
	})
	c.r1cs.ensureBoolRange(out)
	return loweredValue{v: out}, nil
}

// compileIf realizes the select gadget in two constraints:
//
//	aux = Vc * (Vt - Ve)
//	Vout = aux + Ve
//
// which is algebraically Vc*Vt + (1-Vc)*Ve, the formula spec.md §4.7
// gives for If, decomposed through one auxiliary product.
func (c *compiler) compileIf(n texp.If) (loweredValue, error) {
	cond, err := c.compile(n.Cond)
	if err != nil {
		return loweredValue{}, err
	}
	if cond.bot {
		return loweredValue{bot: true}, nil
	}
	then, err := c.compile(n.Then)
	if err != nil {
		return loweredValue{}, err
	}
	els, err := c.compile(n.Else)
	if err != nil {
		return loweredValue{}, err
	}
	if then.bot || els.bot {
		return loweredValue{bot: true}, nil
	}

	aux := c.freshVar()
	c.r1cs.addConstraint(Constraint{
		A: LCVar(cond.v),
		B: LCVar(then.v).Sub(LCVar(els.v)),
		C: LCVar(aux),
	})
	out := c.freshVar()
	c.r1cs.addConstraint(Constraint{
		A: LCConst(field.One()),
		B: LCVar(aux).Add(LCVar(els.v)),
		C: LCVar(out),
	})
	return loweredValue{v: out}, nil
}

func (c *compiler) compileAssert(n texp.Assert) (loweredValue, error) {
	x, err := c.compile(n.X)
	if err != nil {
		return loweredValue{}, err
	}
	if x.bot {
		// Bot absorbs: the assertion contributes no constraint.
		return loweredValue{bot: true}, nil
	}
	if x.v != n.V {
		c.r1cs.addConstraint(Constraint{
			A: LCVar(n.V).Sub(LCVar(x.v)),
			B: LCConst(field.One()),
			C: LCConst(field.Zero()),
		})
	}
	return loweredValue{v: n.V}, nil
}

func (c *compiler) compileSeq(n texp.Seq) (loweredValue, error) {
	var last loweredValue
	for _, sub := range n.Exprs {
		lv, err := c.compile(sub)
		if err != nil {
			return loweredValue{}, err
		}
		last = lv
	}
	return last, nil
}

