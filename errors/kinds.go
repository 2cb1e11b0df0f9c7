package errors

import "fmt"

// The kinds below are the closed set from spec.md §7. Each constructor
// returns a *CompilerError so callers can chain WithNote/WithHelp/At
// the way the teacher's SemanticErrorBuilder chains onto CompilerError.

// ZeroSizedArray reports an attempt to allocate a length-0 array.
func ZeroSizedArray() *CompilerError {
	return New(ErrorZeroSizedArray, "cannot allocate a zero-length array").
		WithHelp("arrays must declare a length of at least 1")
}

// NotALocation reports that get/set received a non-LocRef argument.
func NotALocation() *CompilerError {
	return New(ErrorNotALocation, "expected an array or pair, got a scalar value")
}

// UnboundIndex reports a heap lookup miss at (loc, index).
func UnboundIndex(loc, index int) *CompilerError {
	return New(ErrorUnboundIndex, "no value bound at this index").
		WithNote(fmt.Sprintf("looked up location %d index %d", loc, index))
}

// InternalInvariant reports a violated internal compiler invariant:
// compound-by-reference broken, an empty Seq, or an Assert target
// that resolved to something other than a plain variable.
func InternalInvariant(msg string) *CompilerError {
	return New(ErrorInternalInvariant, "internal invariant violated: "+msg)
}

// InputArityMismatch reports witness inputs of the wrong length.
func InputArityMismatch(got, want int) *CompilerError {
	return New(ErrorInputArityMismatch, "wrong number of inputs supplied to witness").
		WithNote(fmt.Sprintf("expected %d input(s), got %d", want, got))
}

// DivByZero reports a witness-time division by zero (including 0/0).
func DivByZero() *CompilerError {
	return New(ErrorDivByZero, "division by zero")
}

// UnderDetermined reports that fixed-point solving left a variable unassigned.
func UnderDetermined(numUnassigned int) *CompilerError {
	return New(ErrorUnderDetermined, "witness solving reached a fixed point with unassigned variables").
		WithNote(fmt.Sprintf("%d variable(s) remain unassigned", numUnassigned))
}

// Overdetermined reports that solving computed two conflicting values
// for the same variable.
func Overdetermined() *CompilerError {
	return New(ErrorOverdetermined, "witness solving produced conflicting values for a variable")
}

// UndefinedName reports a script-frontend reference to a name with no
// binding in scope.
func UndefinedName(name string) *CompilerError {
	return New(ErrorUndefinedName, "undefined reference").
		WithNote(fmt.Sprintf("no binding for %q in scope", name))
}
