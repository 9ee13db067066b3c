package ast

// Expr is a node of the expression tree. Every node exclusively owns its
// children; trees are never shared or mutated after parsing.
type Expr interface {
	Node
	isExpr()
}

type IntegerExpr struct {
	Value int32
}

// StringExpr holds a string literal with its quotes already removed.
type StringExpr struct {
	Value string
}

type BinaryExpr struct {
	Op    BinaryOperator
	Left  Expr
	Right Expr
}

type UnaryExpr struct {
	Op    UnaryOperator
	Value Expr
}

func (*IntegerExpr) isExpr() {}

func (*StringExpr) isExpr() {}

func (*BinaryExpr) isExpr() {}

func (*UnaryExpr) isExpr() {}
