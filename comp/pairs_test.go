package comp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arc/field"
	"arc/texp"
)

func TestPairFstSndRoundTrip(t *testing.T) {
	env := texp.NewEnv()
	p := Pair(ConstInt(3), ConstInt(4))
	prog := Bind(p, func(pv texp.TExp) Comp {
		return Bind(Fst(Pure(pv)), func(fst texp.TExp) Comp {
			return Bind(Snd(Pure(pv)), func(snd texp.TExp) Comp {
				return Pure(texp.Seq{Exprs: []texp.TExp{fst, snd}})
			})
		})
	})
	result, err := Run(prog, env)
	require.NoError(t, err)

	// descend through the glued Seq wrappers while the last element is
	// itself a Seq; the innermost such Seq is the payload.
	seq := result
	for {
		s, ok := seq.(texp.Seq)
		if !ok {
			break
		}
		next, ok := s.Last().(texp.Seq)
		if !ok {
			break
		}
		seq = next
	}
	inner, ok := seq.(texp.Seq)
	require.True(t, ok)
	require.Len(t, inner.Exprs, 2)

	fstVar, ok := inner.Exprs[0].(texp.Var)
	require.True(t, ok)
	sndVar, ok := inner.Exprs[1].(texp.Var)
	require.True(t, ok)
	assert.NotEqual(t, fstVar.V, sndVar.V)
}

func TestPairAlwaysAllocatesFreshVarForExistingVar(t *testing.T) {
	env := texp.NewEnv()
	before := env.NumVars()
	prog := Bind(FreshVar(texp.FieldTy{}), func(v texp.TExp) Comp {
		return Pair(Pure(v), ConstInt(1))
	})
	_, err := Run(prog, env)
	require.NoError(t, err)
	// 1 fresh var for v, then Pair must allocate 2 more (fst, snd) even
	// though fst's payload is already a Var — unlike Set, Pair never
	// reuses an existing variable binding.
	assert.Equal(t, before+3, env.NumVars())
}

func TestPairLocRefComponentStoredDirectly(t *testing.T) {
	env := texp.NewEnv()
	inner := Arr(2, texp.FieldTy{})
	before := env.NumVars()
	prog := Bind(inner, func(av texp.TExp) Comp {
		return Pair(Pure(av), ConstInt(1))
	})
	_, err := Run(prog, env)
	require.NoError(t, err)
	// inner array allocates 2 vars; Pair's fst component is a LocRef and
	// is stored directly (no fresh var), only snd allocates one more.
	assert.Equal(t, before+3, env.NumVars())
}

func TestFstOnBotPropagates(t *testing.T) {
	env := texp.NewEnv()
	botPair := Pure(texp.Bot{Typ: texp.ProdTy{Fst: texp.FieldTy{}, Snd: texp.FieldTy{}}})
	result, err := Run(Fst(botPair), env)
	require.NoError(t, err)
	_, ok := result.(texp.Bot)
	assert.True(t, ok)
}

func TestFieldConstStillFieldType(t *testing.T) {
	// sanity: ConstInt embeds via field.FromInt64 and is Field-typed.
	e, err := Run(ConstInt(5), texp.NewEnv())
	require.NoError(t, err)
	val, ok := e.(texp.Val)
	require.True(t, ok)
	assert.Equal(t, texp.FieldTy{}, val.Typ)
	f := val.V.(texp.FieldConst).F
	assert.True(t, f.Equal(field.FromInt64(5)))
}
