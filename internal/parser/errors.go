package parser

import (
	"fmt"
	"strings"
)

type ErrorKind int

const (
	// Lexer errors
	UnexpectedSymbol ErrorKind = iota
	UnclosedString

	// Parser errors
	UnexpectedEndOfInput
	UnclosedParenthesis
	ExpectedLiteralOrGroup
	LiteralOutOfRange
	NestingTooDeep
	TrailingTokens
)

var errorKindNames = [...]string{
	UnexpectedSymbol:       "UnexpectedSymbol",
	UnclosedString:         "UnclosedString",
	UnexpectedEndOfInput:   "UnexpectedEndOfInput",
	UnclosedParenthesis:    "UnclosedParenthesis",
	ExpectedLiteralOrGroup: "ExpectedLiteralOrGroup",
	LiteralOutOfRange:      "LiteralOutOfRange",
	NestingTooDeep:         "NestingTooDeep",
	TrailingTokens:         "TrailingTokens",
}

func (k ErrorKind) String() string {
	if k >= 0 && int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// SyntaxError is returned by the lexer and the parser. Every error aborts the
// call that produced it.
type SyntaxError struct {
	Kind    ErrorKind
	Message string

	// Span is nil when there is no source location to blame, e.g. when the
	// token stream ends early.
	Span *Span

	Char  rune   // UnexpectedSymbol: the offending character
	Text  string // LiteralOutOfRange: the literal text
	Found *Token // UnclosedParenthesis, ExpectedLiteralOrGroup, TrailingTokens; nil at EOF
	Open  *Span  // UnclosedParenthesis: the opening '('
}

func (e *SyntaxError) Error() string {
	if e.Span == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Span.Start, e.Message)
}

// Position returns the start of the error span, if any.
func (e *SyntaxError) Position() (TextPosition, bool) {
	if e.Span == nil {
		return TextPosition{}, false
	}
	return e.Span.Start, true
}

func errUnexpectedSymbol(pos TextPosition, c rune) *SyntaxError {
	return &SyntaxError{
		Kind:    UnexpectedSymbol,
		Message: fmt.Sprintf("Unexpected symbol '%c'", c),
		Span:    &Span{Start: pos, End: pos.Next()},
		Char:    c,
	}
}

func errUnclosedString(start, end TextPosition) *SyntaxError {
	return &SyntaxError{
		Kind:    UnclosedString,
		Message: "Unclosed string",
		Span:    &Span{Start: start, End: end},
	}
}

func errUnexpectedEOF() *SyntaxError {
	return &SyntaxError{
		Kind:    UnexpectedEndOfInput,
		Message: "Unexpected EOF",
	}
}

func errMissingParen(open Token, found Token) *SyntaxError {
	openSpan := open.Span()
	foundSpan := found.Span()
	return &SyntaxError{
		Kind:    UnclosedParenthesis,
		Message: "Missing ')'",
		Span:    &foundSpan,
		Found:   &found,
		Open:    &openSpan,
	}
}

func errParenAtEOF(open Token) *SyntaxError {
	openSpan := open.Span()
	return &SyntaxError{
		Kind:    UnclosedParenthesis,
		Message: "Expected ')' at EOF",
		Span:    &openSpan,
		Open:    &openSpan,
	}
}

func errExpectedLiteral(found Token) *SyntaxError {
	span := found.Span()
	return &SyntaxError{
		Kind:    ExpectedLiteralOrGroup,
		Message: "Expected literal or '('",
		Span:    &span,
		Found:   &found,
	}
}

func errLiteralOutOfRange(tok Token) *SyntaxError {
	span := tok.Span()
	return &SyntaxError{
		Kind:    LiteralOutOfRange,
		Message: fmt.Sprintf("Integer literal %s out of range", tok.Text),
		Span:    &span,
		Text:    tok.Text,
	}
}

func errNestingTooDeep(tok Token, limit int) *SyntaxError {
	span := tok.Span()
	return &SyntaxError{
		Kind:    NestingTooDeep,
		Message: fmt.Sprintf("Expression nested deeper than %d levels", limit),
		Span:    &span,
		Found:   &tok,
	}
}

func errTrailingTokens(rest []Token) *SyntaxError {
	first := rest[0]
	span := Span{Start: first.Start, End: rest[len(rest)-1].End}

	texts := make([]string, 0, len(rest))
	for _, t := range rest {
		texts = append(texts, t.Text)
	}

	return &SyntaxError{
		Kind:    TrailingTokens,
		Message: fmt.Sprintf("Expected end of input, got %s", strings.Join(texts, " ")),
		Span:    &span,
		Found:   &first,
	}
}
