package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var ExprLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Literals
		{Name: "String", Pattern: `"[^"\n]*"`, Action: nil},

		// Keywords and Identifiers
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`, Action: nil},

		// Integer literals
		{Name: "Integer", Pattern: `[0-9]+`, Action: nil},

		// Operators, two-character forms first
		{Name: "Operator", Pattern: `\+\+|\+=|--|-=|\*=|[-+*()]`, Action: nil},

		// Whitespace
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`, Action: nil},
	},
})
