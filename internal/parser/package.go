package parser

import (
	"io"
	"strings"

	"simplelang/internal/ast"
)

// ParseSource lexes and parses source as a single expression. Unlike
// Expression it requires every token to be consumed. The token list is
// returned whenever lexing succeeded so callers can dump it.
func ParseSource(source string) (ast.Expr, []Token, error) {
	return ParseReader(strings.NewReader(source), DefaultConfig())
}

func ParseReader(input io.Reader, config Config) (ast.Expr, []Token, error) {
	tokens, err := Lex(input)
	if err != nil {
		return nil, nil, err
	}

	rest, expr, err := NewParser(tokens, config).Expression()
	if err != nil {
		return nil, tokens, err
	}
	if len(rest) > 0 {
		return nil, tokens, errTrailingTokens(rest)
	}

	return expr, tokens, nil
}
