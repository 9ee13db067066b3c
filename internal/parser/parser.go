package parser

import "simplelang/internal/ast"

// DefaultMaxDepth bounds how deeply parenthesized groups and higher
// precedence operands may nest before the parser gives up.
const DefaultMaxDepth = 256

type Config struct {
	MaxDepth int
}

func DefaultConfig() Config {
	return Config{MaxDepth: DefaultMaxDepth}
}

// Parser reads a token slice forward-only. It keeps no state between
// Expression calls other than its read position.
type Parser struct {
	tokens  []Token
	current int
	depth   int
	config  Config
}

func NewParser(tokens []Token, config Config) *Parser {
	if config.MaxDepth <= 0 {
		config.MaxDepth = DefaultMaxDepth
	}
	return &Parser{
		tokens: tokens,
		config: config,
	}
}

// Expression parses one expression from the front of tokens and returns the
// tokens left after it. Trailing tokens are not an error here; callers that
// need the whole input consumed must check the remainder themselves.
func Expression(tokens []Token) ([]Token, ast.Expr, error) {
	return NewParser(tokens, DefaultConfig()).Expression()
}

func (p *Parser) Expression() ([]Token, ast.Expr, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return nil, nil, err
	}
	return p.remaining(), expr, nil
}
