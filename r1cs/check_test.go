package r1cs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arc/comp"
	"arc/field"
	"arc/r1cs"
	"arc/texp"
)

// S1: x <- input; return x + x * x. Inputs [3], expected result 12.
func TestScenarioS1(t *testing.T) {
	prog := comp.Bind(comp.FreshInput(texp.FieldTy{}), func(x texp.TExp) comp.Comp {
		return comp.Add(comp.Pure(x), comp.Mul(comp.Pure(x), comp.Pure(x)))
	})
	res, err := r1cs.Check(prog, []field.Elem{field.FromInt64(3)})
	require.NoError(t, err)
	assert.True(t, res.Sat)
	assert.True(t, res.OutValue.Equal(field.FromInt64(12)))
}

func TestScenarioS1ArityMismatch(t *testing.T) {
	prog := comp.Bind(comp.FreshInput(texp.FieldTy{}), func(x texp.TExp) comp.Comp {
		return comp.Add(comp.Pure(x), comp.Mul(comp.Pure(x), comp.Pure(x)))
	})
	_, err := r1cs.Check(prog, []field.Elem{field.FromInt64(3), field.FromInt64(4)})
	require.Error(t, err)
}

// S2: a <- input_arr(3); return get(a,0)+get(a,1)+get(a,2). Inputs
// [4,5,6], expected result 15.
func TestScenarioS2(t *testing.T) {
	prog := comp.Bind(comp.InputArr(3, texp.FieldTy{}), func(a texp.TExp) comp.Comp {
		return comp.Add(
			comp.Add(comp.Get(comp.Pure(a), 0), comp.Get(comp.Pure(a), 1)),
			comp.Get(comp.Pure(a), 2),
		)
	})
	res, err := r1cs.Check(prog, []field.Elem{field.FromInt64(4), field.FromInt64(5), field.FromInt64(6)})
	require.NoError(t, err)
	assert.True(t, res.Sat)
	assert.True(t, res.OutValue.Equal(field.FromInt64(15)))
}

// S3/S4: x,y <- input,input; return if eq(x,y) then 1 else 0.
func eqIfProgram() comp.Comp {
	return comp.Bind(comp.FreshInput(texp.FieldTy{}), func(x texp.TExp) comp.Comp {
		return comp.Bind(comp.FreshInput(texp.FieldTy{}), func(y texp.TExp) comp.Comp {
			cond := comp.Eq(comp.Pure(x), comp.Pure(y))
			return comp.IfThenElse(cond, func() comp.Comp {
				return comp.ConstInt(1)
			}, func() comp.Comp {
				return comp.ConstInt(0)
			}, texp.FieldTy{})
		})
	})
}

func TestScenarioS3EqualInputs(t *testing.T) {
	res, err := r1cs.Check(eqIfProgram(), []field.Elem{field.FromInt64(7), field.FromInt64(7)})
	require.NoError(t, err)
	assert.True(t, res.Sat)
	assert.True(t, res.OutValue.Equal(field.FromInt64(1)))
}

func TestScenarioS4DifferentInputs(t *testing.T) {
	res, err := r1cs.Check(eqIfProgram(), []field.Elem{field.FromInt64(7), field.FromInt64(8)})
	require.NoError(t, err)
	assert.True(t, res.Sat)
	assert.True(t, res.OutValue.Equal(field.FromInt64(0)))
}

// S5: p <- pair(2, 3); return fst(p) * snd(p). No inputs, expected 6.
func TestScenarioS5(t *testing.T) {
	prog := comp.Bind(comp.Pair(comp.ConstInt(2), comp.ConstInt(3)), func(p texp.TExp) comp.Comp {
		return comp.Mul(comp.Fst(comp.Pure(p)), comp.Snd(comp.Pure(p)))
	})
	res, err := r1cs.Check(prog, nil)
	require.NoError(t, err)
	assert.True(t, res.Sat)
	assert.True(t, res.OutValue.Equal(field.FromInt64(6)))
}

// S6: x <- input; return bigsum 4 (\i -> x * i). Inputs [2], expected
// sum of i*x for i in [0,4] = 0+2+4+6+8 = 20.
func TestScenarioS6(t *testing.T) {
	prog := comp.Bind(comp.FreshInput(texp.FieldTy{}), func(x texp.TExp) comp.Comp {
		return comp.BigSum(4, func(i int) comp.Comp {
			return comp.Mul(comp.Pure(x), comp.ConstInt(int64(i)))
		})
	})
	res, err := r1cs.Check(prog, []field.Elem{field.FromInt64(2)})
	require.NoError(t, err)
	assert.True(t, res.Sat)
	assert.True(t, res.OutValue.Equal(field.FromInt64(20)))
}

// Division by a witness value of 0 must fail DivByZero, not silently
// produce a wrong witness.
func TestDivByZeroAtWitnessTime(t *testing.T) {
	prog := comp.Bind(comp.FreshInput(texp.FieldTy{}), func(x texp.TExp) comp.Comp {
		return comp.Div(comp.ConstInt(10), comp.Pure(x))
	})
	_, err := r1cs.Check(prog, []field.Elem{field.Zero()})
	require.Error(t, err)
}

func TestDivNonZeroSucceeds(t *testing.T) {
	prog := comp.Bind(comp.FreshInput(texp.FieldTy{}), func(x texp.TExp) comp.Comp {
		return comp.Div(comp.ConstInt(10), comp.Pure(x))
	})
	res, err := r1cs.Check(prog, []field.Elem{field.FromInt64(5)})
	require.NoError(t, err)
	assert.True(t, res.Sat)
	assert.True(t, res.OutValue.Equal(field.FromInt64(2)))
}

// Property 1: every variable appearing in any constraint is < num_vars.
func TestAllConstraintVarsBelowNumVars(t *testing.T) {
	env := texp.NewEnv()
	prog := comp.Bind(comp.FreshInput(texp.FieldTy{}), func(x texp.TExp) comp.Comp {
		return comp.Add(comp.Pure(x), comp.Mul(comp.Pure(x), comp.Pure(x)))
	})
	e, err := comp.Run(prog, env)
	require.NoError(t, err)
	system, _, err := r1cs.Compile(e, env)
	require.NoError(t, err)
	for _, con := range system.Constraints {
		for _, v := range con.A.Vars() {
			assert.Less(t, int(v), system.NumVars)
		}
		for _, v := range con.B.Vars() {
			assert.Less(t, int(v), system.NumVars)
		}
		for _, v := range con.C.Vars() {
			assert.Less(t, int(v), system.NumVars)
		}
	}
}

// Property 6: a statically-true condition prunes the else branch's
// constraints entirely (the Div node of the else branch is never
// compiled).
func TestIfPruningDropsUntakenBranchConstraints(t *testing.T) {
	env := texp.NewEnv()
	prog := comp.IfThenElse(comp.True(), func() comp.Comp {
		return comp.ConstInt(1)
	}, func() comp.Comp {
		return comp.Div(comp.ConstInt(1), comp.ConstInt(0))
	}, texp.FieldTy{})
	e, err := comp.Run(prog, env)
	require.NoError(t, err)
	system, _, err := r1cs.Compile(e, env)
	require.NoError(t, err)
	// the else branch (1/0) is never elaborated at all, so the system
	// holds only the then branch's single constant constraint.
	assert.Equal(t, 1, system.NumConstraints())
}

// Round-trip: Serialize then Parse preserves the shape enough for
// SatR1CS to agree with the original witness.
func TestSerializeParseRoundTrip(t *testing.T) {
	env := texp.NewEnv()
	prog := comp.Bind(comp.FreshInput(texp.FieldTy{}), func(x texp.TExp) comp.Comp {
		return comp.Add(comp.Pure(x), comp.Mul(comp.Pure(x), comp.Pure(x)))
	})
	e, err := comp.Run(prog, env)
	require.NoError(t, err)
	system, _, err := r1cs.Compile(e, env)
	require.NoError(t, err)
	wit, err := r1cs.Witness(system, []field.Elem{field.FromInt64(3)})
	require.NoError(t, err)
	require.True(t, r1cs.SatR1CS(wit, system))

	text := r1cs.Serialize(system)
	parsed, err := r1cs.Parse(text)
	require.NoError(t, err)
	assert.True(t, r1cs.SatR1CS(wit, parsed))
}
