// Package script implements the textual scenario-program frontend
// (spec component C11): a small grammar for the (program, inputs,
// expected_output) style test fixtures described in spec.md §8,
// compiled one-to-one into comp package calls. It is sugar over the
// programmatic API, never a dependency of it.
package script

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ScriptLexer tokenizes scenario programs, adapted from the teacher's
// stateful KansoLexer down to the smaller alphabet this grammar needs.
var ScriptLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `//[^\n]*`, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},
		{"Integer", `[0-9]+`, nil},
		{"Arrow", `<-|->`, nil},
		{"Operator", `[-+*/]`, nil},
		{"Punctuation", `[(),]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
