package r1cs

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"arc/errors"
	"arc/field"
	"arc/ids"
)

// Serialize renders r in this package's own round-trippable grammar
// (spec.md §4.9/§6 leave the exact textual format to the implementer):
//
//	num_vars <n> num_constraints <m> inputs[i0,i1,...] outputs[o0,...]
//
// followed by one line per constraint, each a sequence of three
// semicolon-separated sparse terms for A, B, C, each term a
// comma-separated list of "coef:var" pairs with a leading "const"
// pseudo-term for the constant part. The inputs/outputs lists are
// bracket-delimited (rather than bare-%s-scanned) so an empty list —
// a legal R1CS, e.g. a pairs-only program with no declared inputs —
// still renders as a distinct, non-blank token the header parser can
// split on.
func Serialize(r *R1CS) string {
	var b strings.Builder
	fmt.Fprintf(&b, "num_vars %d num_constraints %d inputs[%s] outputs[%s]\n",
		r.NumVars, len(r.Constraints), joinVars(r.InputVars), joinVars(r.OutputVars))
	for _, con := range r.Constraints {
		fmt.Fprintf(&b, "%s;%s;%s\n", serializeLC(con.A), serializeLC(con.B), serializeLC(con.C))
	}
	return b.String()
}

// bracketed strips prefix+"[" and a trailing "]" from tok, used to
// recover the (possibly empty) comma list the header packed into the
// inputs[...]/outputs[...] field.
func bracketed(tok, prefix string) (string, error) {
	want := prefix + "["
	if !strings.HasPrefix(tok, want) || !strings.HasSuffix(tok, "]") {
		return "", errors.New(errors.ErrorScriptSyntax, "malformed "+prefix+" field: "+tok)
	}
	return tok[len(want) : len(tok)-1], nil
}

func joinVars(vs []ids.Var) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatUint(uint64(v), 10)
	}
	return strings.Join(parts, ",")
}

func serializeLC(lc LinearCombination) string {
	terms := []string{lc.Const.String() + ":const"}
	for _, v := range lc.Vars() {
		terms = append(terms, fmt.Sprintf("%s:%d", lc.Terms[v].String(), v))
	}
	return strings.Join(terms, ",")
}

// Parse reads the grammar Serialize produces back into an R1CS. Hints
// are not recoverable from text (they are closures over compile-time
// structure); a parsed R1CS can still be checked with SatR1CS against
// a witness obtained independently, but not re-solved with Witness
// for the Eq/Div gadgets.
func Parse(s string) (*R1CS, error) {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, errors.New(errors.ErrorScriptSyntax, "empty R1CS text")
	}
	header := lines[0]
	fields := strings.Fields(header)
	if len(fields) != 6 || fields[0] != "num_vars" || fields[2] != "num_constraints" {
		return nil, errors.New(errors.ErrorScriptSyntax, "malformed R1CS header: "+header)
	}
	numVars, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, errors.New(errors.ErrorScriptSyntax, "malformed num_vars: "+fields[1])
	}
	if _, err := strconv.Atoi(fields[3]); err != nil {
		return nil, errors.New(errors.ErrorScriptSyntax, "malformed num_constraints: "+fields[3])
	}
	inputsStr, err := bracketed(fields[4], "inputs")
	if err != nil {
		return nil, err
	}
	outputsStr, err := bracketed(fields[5], "outputs")
	if err != nil {
		return nil, err
	}

	r := &R1CS{
		NumVars:    numVars,
		InputVars:  parseVarList(inputsStr),
		OutputVars: parseVarList(outputsStr),
		boolVars:   make(map[ids.Var]bool),
	}

	for _, line := range lines[1:] {
		if line == "" {
			continue
		}
		parts := strings.Split(line, ";")
		if len(parts) != 3 {
			return nil, errors.New(errors.ErrorScriptSyntax, "constraint line must have 3 sides")
		}
		a, err := parseLC(parts[0])
		if err != nil {
			return nil, err
		}
		b, err := parseLC(parts[1])
		if err != nil {
			return nil, err
		}
		c, err := parseLC(parts[2])
		if err != nil {
			return nil, err
		}
		r.Constraints = append(r.Constraints, Constraint{A: a, B: b, C: c})
	}
	return r, nil
}

func parseVarList(s string) []ids.Var {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	fields := strings.Split(s, ",")
	out := make([]ids.Var, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseUint(strings.TrimSpace(f), 10, 32)
		if err != nil {
			continue
		}
		out = append(out, ids.Var(n))
	}
	return out
}

func parseLC(s string) (LinearCombination, error) {
	lc := LC()
	terms := strings.Split(s, ",")
	for _, term := range terms {
		idx := strings.LastIndex(term, ":")
		if idx < 0 {
			return lc, errors.New(errors.ErrorScriptSyntax, "malformed term: "+term)
		}
		coefStr, tail := term[:idx], term[idx+1:]
		coef, err := parseFieldElem(coefStr)
		if err != nil {
			return lc, err
		}
		if tail == "const" {
			lc.Const = coef
			continue
		}
		n, err := strconv.ParseUint(tail, 10, 32)
		if err != nil {
			return lc, errors.New(errors.ErrorScriptSyntax, "malformed variable index: "+tail)
		}
		lc = lc.AddTerm(ids.Var(n), coef)
	}
	return lc, nil
}

func parseFieldElem(s string) (field.Elem, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return field.Elem{}, errors.New(errors.ErrorScriptSyntax, "malformed field element: "+s)
	}
	return field.FromBigInt(n), nil
}
