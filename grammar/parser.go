package grammar

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"
	"simplelang/internal/ast"
)

var parser = buildParser()

func buildParser() *participle.Parser[Expression] {
	p, err := participle.Build[Expression](
		participle.Lexer(ExprLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		panic(fmt.Errorf("failed to build parser: %w", err))
	}

	return p
}

func ParseFile(path string) (ast.Expr, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return ParseString(path, string(source))
}

// ParseString parses source as a single expression and converts the parse
// tree into the same AST internal/parser produces.
func ParseString(filename, source string) (ast.Expr, error) {
	tree, err := parser.ParseString(filename, source)
	if err != nil {
		return nil, err
	}
	return tree.ToAST()
}

// ReportParseError prints a friendly caret-style parse error message.
func ReportParseError(w io.Writer, src string, err error) {
	red := color.New(color.FgRed).SprintfFunc()
	hiRed := color.New(color.FgHiRed).SprintFunc()

	pe, ok := err.(participle.Error)
	if !ok {
		fmt.Fprintln(w, red("Unexpected error: %s", err))
		return
	}

	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		fmt.Fprintln(w, red("Syntax error at unknown location: %s", err))
		return
	}

	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", max(0, pos.Column-1)) + "^"

	fmt.Fprintln(w, red("Syntax error in %s at line %d, column %d:", pos.Filename, pos.Line, pos.Column))
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, hiRed(caret))
	fmt.Fprintf(w, "→ %s\n", pe.Message())
}

func (e *Expression) ToAST() (ast.Expr, error) {
	left, err := e.Left.ToAST()
	if err != nil {
		return nil, err
	}
	for _, op := range e.Right {
		right, err := op.Term.ToAST()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: ast.Add, Left: left, Right: right}
	}
	return left, nil
}

func (t *Term) ToAST() (ast.Expr, error) {
	left, err := t.Left.ToAST()
	if err != nil {
		return nil, err
	}
	for _, op := range t.Right {
		right, err := op.Unary.ToAST()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: ast.Mul, Left: left, Right: right}
	}
	return left, nil
}

var prefixOperators = map[string]ast.UnaryOperator{
	"+":  ast.Plus,
	"-":  ast.Negate,
	"++": ast.PreInc,
	"--": ast.PreDec,
}

var postfixOperators = map[string]ast.UnaryOperator{
	"++": ast.PostInc,
	"--": ast.PostDec,
}

func (u *Unary) ToAST() (ast.Expr, error) {
	expr, err := u.Primary.ToAST()
	if err != nil {
		return nil, err
	}
	for _, op := range u.Postfix {
		expr = &ast.UnaryExpr{Op: postfixOperators[op], Value: expr}
	}
	for i := len(u.Prefix) - 1; i >= 0; i-- {
		expr = &ast.UnaryExpr{Op: prefixOperators[u.Prefix[i]], Value: expr}
	}
	return expr, nil
}

func (p *Primary) ToAST() (ast.Expr, error) {
	switch {
	case p.Integer != nil:
		value, err := strconv.ParseInt(*p.Integer, 10, 32)
		if err != nil {
			return nil, participle.Errorf(p.Pos, "integer literal %s out of range", *p.Integer)
		}
		return &ast.IntegerExpr{Value: int32(value)}, nil
	case p.Str != nil:
		text := *p.Str
		return &ast.StringExpr{Value: text[1 : len(text)-1]}, nil
	case p.Group != nil:
		return p.Group.ToAST()
	}
	return nil, participle.Errorf(p.Pos, "empty primary expression")
}
