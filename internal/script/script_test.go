package script_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arc/field"
	"arc/internal/script"
	"arc/r1cs"
)

func checkSource(t *testing.T, src string, inputs []field.Elem) r1cs.Result {
	t.Helper()
	prog, err := script.CompileString("test", src)
	require.NoError(t, err)
	res, err := r1cs.Check(prog, inputs)
	require.NoError(t, err)
	return res
}

func TestScriptS1(t *testing.T) {
	res := checkSource(t, `
x <- input
return x + x * x
`, []field.Elem{field.FromInt64(3)})
	assert.True(t, res.Sat)
	assert.True(t, res.OutValue.Equal(field.FromInt64(12)))
}

func TestScriptS2(t *testing.T) {
	res := checkSource(t, `
a <- input_arr(3)
return get(a, 0) + get(a, 1) + get(a, 2)
`, []field.Elem{field.FromInt64(4), field.FromInt64(5), field.FromInt64(6)})
	assert.True(t, res.Sat)
	assert.True(t, res.OutValue.Equal(field.FromInt64(15)))
}

func TestScriptS3EqualInputs(t *testing.T) {
	res := checkSource(t, `
x <- input
y <- input
return if eq(x, y) then 1 else 0
`, []field.Elem{field.FromInt64(7), field.FromInt64(7)})
	assert.True(t, res.Sat)
	assert.True(t, res.OutValue.Equal(field.FromInt64(1)))
}

func TestScriptS4DifferentInputs(t *testing.T) {
	res := checkSource(t, `
x <- input
y <- input
return if eq(x, y) then 1 else 0
`, []field.Elem{field.FromInt64(7), field.FromInt64(8)})
	assert.True(t, res.Sat)
	assert.True(t, res.OutValue.Equal(field.FromInt64(0)))
}

func TestScriptS5(t *testing.T) {
	res := checkSource(t, `
p <- pair(2, 3)
return fst(p) * snd(p)
`, nil)
	assert.True(t, res.Sat)
	assert.True(t, res.OutValue.Equal(field.FromInt64(6)))
}

func TestScriptS6(t *testing.T) {
	res := checkSource(t, `
x <- input
return bigsum 4 (lambda i -> x * i)
`, []field.Elem{field.FromInt64(2)})
	assert.True(t, res.Sat)
	assert.True(t, res.OutValue.Equal(field.FromInt64(20)))
}

func TestScriptArityMismatch(t *testing.T) {
	prog, err := script.CompileString("test", `
x <- input
return x + x * x
`)
	require.NoError(t, err)
	_, err = r1cs.Check(prog, []field.Elem{field.FromInt64(3), field.FromInt64(4)})
	require.Error(t, err)
}

func TestScriptDivByZero(t *testing.T) {
	prog, err := script.CompileString("test", `
x <- input
return 10 / x
`)
	require.NoError(t, err)
	_, err = r1cs.Check(prog, []field.Elem{field.Zero()})
	require.Error(t, err)
}

func TestScriptUndefinedReference(t *testing.T) {
	prog, err := script.CompileString("test", `
return y
`)
	require.NoError(t, err)
	_, err = r1cs.Check(prog, nil)
	require.Error(t, err)
}

func TestScriptParseErrorReported(t *testing.T) {
	_, err := script.CompileString("test", `
x <- input
return x +
`)
	require.Error(t, err)
}
