package r1cs

import (
	"arc/comp"
	"arc/field"
	"arc/texp"
)

// Result is what check returns per spec.md §4.8: satisfiability, the
// system's size, the witnessed output value, and its serialized form.
type Result struct {
	Sat            bool
	NumVars        int
	NumConstraints int
	OutValue       field.Elem
	Serialized     string
}

// Check composes elaborate -> compile -> witness -> satisfiability,
// the single entry point the test driver (cmd/arcc) and end-to-end
// tests call.
func Check(prog comp.Comp, inputs []field.Elem) (Result, error) {
	env := texp.NewEnv()
	e, err := comp.Run(prog, env)
	if err != nil {
		return Result{}, err
	}

	system, outVar, err := Compile(e, env)
	if err != nil {
		return Result{}, err
	}

	wit, err := Witness(system, inputs)
	if err != nil {
		return Result{}, err
	}

	sat := SatR1CS(wit, system)
	outVal := wit[outVar]
	return Result{
		Sat:            sat,
		NumVars:        system.NumVars,
		NumConstraints: system.NumConstraints(),
		OutValue:       outVal,
		Serialized:     Serialize(system),
	}, nil
}
