package parser

import (
	"strconv"

	"simplelang/internal/ast"
)

type operatorInfo struct {
	operator   ast.BinaryOperator
	precedence int // higher binds tighter
}

var binaryOperators = map[TokenKind]operatorInfo{
	Asterisk: {operator: ast.Mul, precedence: 6},
	Plus:     {operator: ast.Add, precedence: 5},
}

var prefixOperators = map[TokenKind]ast.UnaryOperator{
	Plus:       ast.Plus,
	Minus:      ast.Negate,
	PlusPlus:   ast.PreInc,
	MinusMinus: ast.PreDec,
}

var postfixOperators = map[TokenKind]ast.UnaryOperator{
	PlusPlus:   ast.PostInc,
	MinusMinus: ast.PostDec,
}

func (p *Parser) parseExpr() (ast.Expr, *SyntaxError) {
	lhs, err := p.parsePrimaryExpr()
	if err != nil {
		return nil, err
	}
	return p.parseBinaryRHS(lhs, 0)
}

// parseBinaryRHS folds binary operators of at least minPrecedence into lhs.
// An operand followed by a tighter operator is extended first, which keeps
// equal precedence left-associative.
func (p *Parser) parseBinaryRHS(lhs ast.Expr, minPrecedence int) (ast.Expr, *SyntaxError) {
	for {
		info, ok := p.peekBinaryOperator(minPrecedence)
		if !ok {
			return lhs, nil
		}
		opTok := p.advance()

		rhs, err := p.parsePrimaryExpr()
		if err != nil {
			return nil, err
		}

		nextPrecedence := info.precedence + 1
		if _, tighter := p.peekBinaryOperator(nextPrecedence); tighter {
			if err := p.enter(opTok); err != nil {
				return nil, err
			}
			rhs, err = p.parseBinaryRHS(rhs, nextPrecedence)
			p.leave()
			if err != nil {
				return nil, err
			}
		}

		lhs = &ast.BinaryExpr{
			Op:    info.operator,
			Left:  lhs,
			Right: rhs,
		}
	}
}

func (p *Parser) peekBinaryOperator(minPrecedence int) (operatorInfo, bool) {
	if p.isAtEnd() {
		return operatorInfo{}, false
	}
	info, ok := binaryOperators[p.peek().Kind]
	if !ok || info.precedence < minPrecedence {
		return operatorInfo{}, false
	}
	return info, true
}

// parsePrimaryExpr parses a literal or parenthesized group together with its
// unary operators. Postfix operators wrap left to right; prefix operators are
// applied last, the one nearest the operand innermost.
func (p *Parser) parsePrimaryExpr() (ast.Expr, *SyntaxError) {
	tok, err := p.pop()
	if err != nil {
		return nil, err
	}

	var prefix []ast.UnaryOperator
	for {
		op, ok := prefixOperators[tok.Kind]
		if !ok {
			break
		}
		prefix = append(prefix, op)
		if tok, err = p.pop(); err != nil {
			return nil, err
		}
	}

	var expr ast.Expr
	switch tok.Kind {
	case Integer:
		value, convErr := strconv.ParseInt(tok.Text, 10, 32)
		if convErr != nil {
			return nil, errLiteralOutOfRange(tok)
		}
		expr = &ast.IntegerExpr{Value: int32(value)}
	case LParen:
		if expr, err = p.parseGroup(tok); err != nil {
			return nil, err
		}
	case String:
		expr = &ast.StringExpr{Value: unquote(tok.Text)}
	default:
		return nil, errExpectedLiteral(tok)
	}

	for !p.isAtEnd() {
		op, ok := postfixOperators[p.peek().Kind]
		if !ok {
			break
		}
		p.advance()
		expr = &ast.UnaryExpr{Op: op, Value: expr}
	}

	for i := len(prefix) - 1; i >= 0; i-- {
		expr = &ast.UnaryExpr{Op: prefix[i], Value: expr}
	}

	return expr, nil
}

func (p *Parser) parseGroup(open Token) (ast.Expr, *SyntaxError) {
	if err := p.enter(open); err != nil {
		return nil, err
	}
	defer p.leave()

	inner, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if p.isAtEnd() {
		return nil, errParenAtEOF(open)
	}
	if next := p.peek(); next.Kind != RParen {
		return nil, errMissingParen(open, next)
	}
	p.advance()

	return inner, nil
}

// unquote drops the first and last character of a string literal.
func unquote(text string) string {
	runes := []rune(text)
	if len(runes) < 2 {
		return ""
	}
	return string(runes[1 : len(runes)-1])
}
