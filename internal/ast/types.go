package ast

type NodeType int

const (
	ILLEGAL NodeType = iota

	// Literals
	INTEGER_EXPR
	STRING_EXPR

	// Operators
	BINARY_EXPR
	UNARY_EXPR
)

var nodeTypeNames = [...]string{
	ILLEGAL:      "ILLEGAL",
	INTEGER_EXPR: "INTEGER_EXPR",
	STRING_EXPR:  "STRING_EXPR",
	BINARY_EXPR:  "BINARY_EXPR",
	UNARY_EXPR:   "UNARY_EXPR",
}

func (t NodeType) String() string {
	if t >= 0 && int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return "NodeType(?)"
}

// BinaryOperator is the operator of a BinaryExpr.
type BinaryOperator int

const (
	Mul BinaryOperator = iota
	Add
)

func (op BinaryOperator) String() string {
	switch op {
	case Mul:
		return "Mul"
	case Add:
		return "Add"
	}
	return "BinaryOperator(?)"
}

// Symbol returns the source spelling of the operator.
func (op BinaryOperator) Symbol() string {
	switch op {
	case Mul:
		return "*"
	case Add:
		return "+"
	}
	return "?"
}

// UnaryOperator is the operator of a UnaryExpr. Pre* operators come from
// prefix tokens, Post* operators from postfix tokens.
type UnaryOperator int

const (
	Plus UnaryOperator = iota
	Negate
	PreInc
	PostInc
	PreDec
	PostDec
)

func (op UnaryOperator) String() string {
	switch op {
	case Plus:
		return "Plus"
	case Negate:
		return "Negate"
	case PreInc:
		return "PreInc"
	case PostInc:
		return "PostInc"
	case PreDec:
		return "PreDec"
	case PostDec:
		return "PostDec"
	}
	return "UnaryOperator(?)"
}

// IsPostfix reports whether the operator is written after its operand.
func (op UnaryOperator) IsPostfix() bool {
	return op == PostInc || op == PostDec
}

// Symbol returns the source spelling of the operator.
func (op UnaryOperator) Symbol() string {
	switch op {
	case Plus:
		return "+"
	case Negate:
		return "-"
	case PreInc, PostInc:
		return "++"
	case PreDec, PostDec:
		return "--"
	}
	return "?"
}
