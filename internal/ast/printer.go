package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// String methods render the debug form used by the CLI dump, e.g.
// Binary(Add, Integer(12), Integer(34)).

func (i *IntegerExpr) String() string {
	return fmt.Sprintf("Integer(%d)", i.Value)
}

func (s *StringExpr) String() string {
	return fmt.Sprintf("String(%s)", strconv.Quote(s.Value))
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("Binary(%s, %s, %s)", b.Op, b.Left.String(), b.Right.String())
}

func (u *UnaryExpr) String() string {
	return fmt.Sprintf("Unary(%s, %s)", u.Op, u.Value.String())
}

// Source renders expr back to source text, fully parenthesizing every binary
// and unary node so that the grouping chosen by the parser is explicit.
func Source(expr Expr) string {
	var b strings.Builder
	writeSource(&b, expr)
	return b.String()
}

func writeSource(b *strings.Builder, expr Expr) {
	switch e := expr.(type) {
	case *IntegerExpr:
		b.WriteString(strconv.FormatInt(int64(e.Value), 10))
	case *StringExpr:
		b.WriteString(`"` + e.Value + `"`)
	case *BinaryExpr:
		b.WriteString("(")
		writeSource(b, e.Left)
		b.WriteString(" " + e.Op.Symbol() + " ")
		writeSource(b, e.Right)
		b.WriteString(")")
	case *UnaryExpr:
		b.WriteString("(")
		if e.Op.IsPostfix() {
			writeSource(b, e.Value)
			b.WriteString(e.Op.Symbol())
		} else {
			b.WriteString(e.Op.Symbol())
			writeSource(b, e.Value)
		}
		b.WriteString(")")
	default:
		b.WriteString("<nil>")
	}
}
