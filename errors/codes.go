package errors

// Error codes for the circuit compiler.
//
// Error code ranges:
// E0001-E0099: Elaboration errors (Comp monad, arrays, pairs)
// E0100-E0199: R1CS compilation errors
// E0200-E0299: Witness-engine errors
// E0300-E0399: Script-frontend (parse/bind) errors

const (
	// E0001: array allocated with length 0
	ErrorZeroSizedArray = "E0001"

	// E0002: get/set given a non-LocRef argument
	ErrorNotALocation = "E0002"

	// E0003: heap lookup (L, index) miss
	ErrorUnboundIndex = "E0003"

	// E0004: compound-by-reference invariant violated
	ErrorInternalInvariant = "E0004"

	// E0100: witness inputs length mismatch against r1cs.input_vars
	ErrorInputArityMismatch = "E0100"

	// E0200: witness-time division by zero
	ErrorDivByZero = "E0200"

	// E0201: witness solving left a variable unassigned
	ErrorUnderDetermined = "E0201"

	// E0202: witness solving produced two different values for one variable
	ErrorOverdetermined = "E0202"

	// E0300: script syntax error
	ErrorScriptSyntax = "E0300"

	// E0301: script referenced an undefined name
	ErrorUndefinedName = "E0301"
)

// GetErrorDescription returns a human-readable description of the error code.
func GetErrorDescription(code string) string {
	switch code {
	case ErrorZeroSizedArray:
		return "Arrays must have at least one element"
	case ErrorNotALocation:
		return "Expected a reference to a compound value (array or pair)"
	case ErrorUnboundIndex:
		return "No value is bound at this heap index"
	case ErrorInternalInvariant:
		return "An internal compiler invariant was violated"
	case ErrorInputArityMismatch:
		return "The number of supplied inputs does not match the circuit's declared inputs"
	case ErrorDivByZero:
		return "Division by zero at witness time"
	case ErrorUnderDetermined:
		return "Witness solving could not determine every variable"
	case ErrorOverdetermined:
		return "Witness solving produced conflicting values for a variable"
	case ErrorScriptSyntax:
		return "The script could not be parsed"
	case ErrorUndefinedName:
		return "This name has no binding in scope"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code.
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0001" && code < "E0100":
		return "Elaboration"
	case code >= "E0100" && code < "E0200":
		return "R1CS Compilation"
	case code >= "E0200" && code < "E0300":
		return "Witness Engine"
	case code >= "E0300" && code < "E0400":
		return "Script Frontend"
	default:
		return "Unknown"
	}
}
