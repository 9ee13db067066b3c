package ast

type Node interface {
	NodeType() NodeType
	String() string
}

func (*IntegerExpr) NodeType() NodeType { return INTEGER_EXPR }

func (*StringExpr) NodeType() NodeType { return STRING_EXPR }

func (*BinaryExpr) NodeType() NodeType { return BINARY_EXPR }

func (*UnaryExpr) NodeType() NodeType { return UNARY_EXPR }

// Walk visits expr and its descendants in depth-first pre-order. Returning
// false from fn skips the children of the current node.
func Walk(expr Expr, fn func(Expr) bool) {
	if expr == nil || !fn(expr) {
		return
	}

	switch e := expr.(type) {
	case *BinaryExpr:
		Walk(e.Left, fn)
		Walk(e.Right, fn)
	case *UnaryExpr:
		Walk(e.Value, fn)
	}
}

// Depth returns the height of the tree rooted at expr. A single literal has
// depth 1.
func Depth(expr Expr) int {
	switch e := expr.(type) {
	case nil:
		return 0
	case *BinaryExpr:
		return 1 + max(Depth(e.Left), Depth(e.Right))
	case *UnaryExpr:
		return 1 + Depth(e.Value)
	default:
		return 1
	}
}
