package comp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arc/field"
	"arc/texp"
)

func TestThenDropsPureLeft(t *testing.T) {
	env := texp.NewEnv()
	result, err := Run(Then(ConstInt(1), ConstInt(2)), env)
	require.NoError(t, err)
	// left is pure (a plain Val), so it is dropped entirely.
	assert.Equal(t, texp.Val{V: texp.FieldConst{F: field.FromInt64(2)}, Typ: texp.FieldTy{}}, result)
}

func TestThenKeepsImpureLeft(t *testing.T) {
	env := texp.NewEnv()
	m := Then(Assert(FreshVar(texp.FieldTy{}), ConstInt(1)), ConstInt(2))
	result, err := Run(m, env)
	require.NoError(t, err)
	seq, ok := result.(texp.Seq)
	require.True(t, ok, "expected Seq, got %T", result)
	assert.Len(t, seq.Exprs, 2)
}

func TestBindThreadsResult(t *testing.T) {
	env := texp.NewEnv()
	m := Bind(FreshVar(texp.FieldTy{}), func(v texp.TExp) Comp {
		return Assert(Pure(v), ConstInt(7))
	})
	result, err := Run(m, env)
	require.NoError(t, err)
	assertNode, ok := result.(texp.Assert)
	require.True(t, ok)
	assert.Equal(t, texp.Val{V: texp.FieldConst{F: field.FromInt64(7)}, Typ: texp.FieldTy{}}, assertNode.X)
}

func TestSeqGlueFlattensNestedSeq(t *testing.T) {
	env := texp.NewEnv()
	vA, err := Run(FreshVar(texp.FieldTy{}), env)
	require.NoError(t, err)
	vB, err := Run(FreshVar(texp.FieldTy{}), env)
	require.NoError(t, err)

	step1 := MakeAssert(env, vA.(texp.Var).V, texp.Val{V: texp.FieldConst{F: field.FromInt64(1)}, Typ: texp.FieldTy{}})
	step2 := MakeAssert(env, vB.(texp.Var).V, texp.Val{V: texp.FieldConst{F: field.FromInt64(2)}, Typ: texp.FieldTy{}})

	nested := seqGlue(step1, step2)
	final := seqGlue(nested, texp.Val{V: texp.UnitVal{}, Typ: texp.UnitTy{}})

	seq, ok := final.(texp.Seq)
	require.True(t, ok)
	// flattened into one Seq of 3, not a Seq-of-Seq.
	assert.Len(t, seq.Exprs, 3)
}
