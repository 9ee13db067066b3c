package parser

import "fmt"

type TokenKind int

const (
	// Identifiers + literals
	Identifier TokenKind = iota
	Integer
	String

	// Keywords
	FnKeyword

	// Operators
	Plus
	PlusPlus
	PlusEqual
	Minus
	MinusMinus
	MinusEqual
	Asterisk
	AsteriskEqual

	// Brackets
	LParen
	RParen
)

var tokenKindNames = [...]string{
	Identifier:    "Identifier",
	Integer:       "Integer",
	String:        "String",
	FnKeyword:     "FnKeyword",
	Plus:          "Plus",
	PlusPlus:      "PlusPlus",
	PlusEqual:     "PlusEqual",
	Minus:         "Minus",
	MinusMinus:    "MinusMinus",
	MinusEqual:    "MinusEqual",
	Asterisk:      "Asterisk",
	AsteriskEqual: "AsteriskEqual",
	LParen:        "LParen",
	RParen:        "RParen",
}

func (k TokenKind) String() string {
	if k >= 0 && int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// IsOperator reports whether the kind is an operator or bracket token.
func (k TokenKind) IsOperator() bool {
	return k >= Plus && k <= RParen
}

// TextPosition locates a character in the source. Index counts characters
// from the start of the current line and restarts at 0 on every line; Line
// is the zero-based line number.
type TextPosition struct {
	Line  int
	Index int
}

func (p TextPosition) Next() TextPosition {
	return TextPosition{Line: p.Line, Index: p.Index + 1}
}

// Before reports whether p comes strictly before other in the source.
func (p TextPosition) Before(other TextPosition) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Index < other.Index
}

func (p TextPosition) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Index)
}

// Span is the half-open range [Start, End).
type Span struct {
	Start TextPosition
	End   TextPosition
}

func (s Span) String() string {
	return fmt.Sprintf("%s..%s", s.Start, s.End)
}

// Len returns the number of characters covered when the span lies on a
// single line, and 0 otherwise.
func (s Span) Len() int {
	if s.Start.Line != s.End.Line {
		return 0
	}
	return s.End.Index - s.Start.Index
}

type Token struct {
	Text  string
	Start TextPosition
	End   TextPosition // exclusive
	Kind  TokenKind
}

func (t Token) Span() Span {
	return Span{Start: t.Start, End: t.End}
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q [%s)", t.Kind, t.Text, t.Span())
}
