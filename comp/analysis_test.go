package comp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arc/field"
	"arc/texp"
)

func TestAssertRecordsConstFact(t *testing.T) {
	env := texp.NewEnv()
	prog := Bind(FreshVar(texp.FieldTy{}), func(v texp.TExp) Comp {
		return Assert(Pure(v), ConstInt(42))
	})
	_, err := Run(prog, env)
	require.NoError(t, err)

	found := false
	for _, bind := range env.Analysis {
		if cb, ok := bind.(texp.ConstBind); ok {
			assert.True(t, cb.F.Equal(field.FromInt64(42)))
			found = true
		}
	}
	assert.True(t, found, "expected a ConstBind fact to be recorded")
}

func TestAssertRecordsBoolFact(t *testing.T) {
	env := texp.NewEnv()
	prog := Bind(FreshVar(texp.BoolTy{}), func(v texp.TExp) Comp {
		return Assert(Pure(v), True())
	})
	result, err := Run(prog, env)
	require.NoError(t, err)
	// the bound Var is pure, so Bind drops it and the Assert is the result.
	assertNode, ok := result.(texp.Assert)
	require.True(t, ok)
	assert.True(t, IsTrue(env, texp.Var{V: assertNode.V, Typ: texp.BoolTy{}}))
}

func TestAssertNonVarTargetFails(t *testing.T) {
	env := texp.NewEnv()
	_, err := Run(Assert(ConstInt(1), ConstInt(2)), env)
	require.Error(t, err)
}

func TestIfPrunesUntakenBranchWhenConditionTrue(t *testing.T) {
	env := texp.NewEnv()
	before := env.NumVars()
	thenCalled, elseCalled := false, false
	cond := Pure(texp.TExp(texp.Val{V: texp.TrueVal{}, Typ: texp.BoolTy{}}))
	prog := IfThenElse(cond, func() Comp {
		thenCalled = true
		return ConstInt(1)
	}, func() Comp {
		elseCalled = true
		return FreshVar(texp.FieldTy{}) // would allocate if run
	}, texp.FieldTy{})
	_, err := Run(prog, env)
	require.NoError(t, err)
	assert.True(t, thenCalled)
	assert.False(t, elseCalled, "else thunk must not run when condition is statically true")
	assert.Equal(t, before, env.NumVars()) // then branch (ConstInt) allocates nothing
}

func TestIfBuildsNodeWhenConditionUnknown(t *testing.T) {
	env := texp.NewEnv()
	prog := Bind(FreshVar(texp.BoolTy{}), func(c texp.TExp) Comp {
		return IfThenElse(Pure(c), func() Comp {
			return ConstInt(1)
		}, func() Comp {
			return ConstInt(2)
		}, texp.FieldTy{})
	})
	result, err := Run(prog, env)
	require.NoError(t, err)
	// the bound condition Var is pure, so Bind drops it and the If is the result.
	_, ok := result.(texp.If)
	assert.True(t, ok)
}

func TestIfBotConditionPropagates(t *testing.T) {
	env := texp.NewEnv()
	prog := IfThenElse(Pure(texp.TExp(texp.Bot{Typ: texp.BoolTy{}})), func() Comp {
		return ConstInt(1)
	}, func() Comp {
		return ConstInt(2)
	}, texp.FieldTy{})
	result, err := Run(prog, env)
	require.NoError(t, err)
	_, ok := result.(texp.Bot)
	assert.True(t, ok)
}
