package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// The grammar encodes precedence as one rule per level, which is the
// declarative counterpart of the precedence table used by internal/parser.

type Expression struct {
	Pos   lexer.Position
	Left  *Term    `parser:"@@"`
	Right []*AddOp `parser:"{ @@ }"`
}

type AddOp struct {
	Operator string `parser:"@\"+\""`
	Term     *Term  `parser:"@@"`
}

type Term struct {
	Pos   lexer.Position
	Left  *Unary   `parser:"@@"`
	Right []*MulOp `parser:"{ @@ }"`
}

type MulOp struct {
	Operator string `parser:"@\"*\""`
	Unary    *Unary `parser:"@@"`
}

type Unary struct {
	Pos     lexer.Position
	Prefix  []string `parser:"{ @( \"+\" | \"-\" | \"++\" | \"--\" ) }"`
	Primary *Primary `parser:"@@"`
	Postfix []string `parser:"{ @( \"++\" | \"--\" ) }"`
}

type Primary struct {
	Pos     lexer.Position
	EndPos  lexer.Position
	Integer *string     `parser:"  @Integer"`
	Str     *string     `parser:"| @String"`
	Group   *Expression `parser:"| \"(\" @@ \")\""`
}
