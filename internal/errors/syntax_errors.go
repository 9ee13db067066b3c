package errors

import (
	"fmt"
	"math"

	"simplelang/internal/parser"
)

// SyntaxErrorBuilder provides a fluent interface for creating diagnostics
type SyntaxErrorBuilder struct {
	err CompilerError
}

// NewSyntaxError creates a new error builder located at pos
func NewSyntaxError(code, message string, pos parser.TextPosition) *SyntaxErrorBuilder {
	return &SyntaxErrorBuilder{
		err: CompilerError{
			Level:       Error,
			Code:        code,
			Message:     message,
			Position:    pos,
			HasPosition: true,
			Length:      1,
		},
	}
}

// WithLength sets the length of the error span
func (b *SyntaxErrorBuilder) WithLength(length int) *SyntaxErrorBuilder {
	b.err.Length = length
	return b
}

// WithoutPosition marks the error as having no source location
func (b *SyntaxErrorBuilder) WithoutPosition() *SyntaxErrorBuilder {
	b.err.HasPosition = false
	b.err.Position = parser.TextPosition{}
	b.err.Length = 0
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *SyntaxErrorBuilder) WithSuggestion(message string) *SyntaxErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion with replacement text
func (b *SyntaxErrorBuilder) WithReplacement(message, replacement string, pos parser.TextPosition, length int) *SyntaxErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
		Position:    pos,
		Length:      length,
	})
	return b
}

// WithNote adds a note to the error
func (b *SyntaxErrorBuilder) WithNote(note string) *SyntaxErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *SyntaxErrorBuilder) WithHelp(help string) *SyntaxErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed compiler error
func (b *SyntaxErrorBuilder) Build() CompilerError {
	return b.err
}

// FromSyntaxError converts a lexer or parser error into a reportable
// diagnostic with a code, notes and suggestions.
func FromSyntaxError(se *parser.SyntaxError) CompilerError {
	var b *SyntaxErrorBuilder
	if se.Span != nil {
		b = NewSyntaxError(CodeFor(se.Kind), se.Message, se.Span.Start).WithLength(se.Span.Len())
	} else {
		b = NewSyntaxError(CodeFor(se.Kind), se.Message, parser.TextPosition{}).WithoutPosition()
	}

	switch se.Kind {
	case parser.UnexpectedSymbol:
		b.WithNote("supported operators are + ++ += - -- -= * *= ( )")
	case parser.UnclosedString:
		b.WithHelp("string literals must be closed with '\"' on the same line")
		if se.Span != nil {
			b.WithReplacement("close the string", `"`, se.Span.End, 0)
		}
	case parser.UnexpectedEndOfInput:
		b.WithHelp("complete the expression with an integer, a string or a parenthesized expression")
	case parser.UnclosedParenthesis:
		if se.Open != nil {
			b.WithNote(fmt.Sprintf("unclosed '(' opened at line %d, column %d",
				se.Open.Start.Line+1, se.Open.Start.Index+1))
		}
		b.WithSuggestion("add ')' to close the group")
	case parser.ExpectedLiteralOrGroup:
		if se.Found != nil {
			b.WithNote(fmt.Sprintf("found %s %q", se.Found.Kind, se.Found.Text))
			if se.Found.Kind == parser.Identifier || se.Found.Kind == parser.FnKeyword {
				b.WithHelp("identifiers cannot be used as operands")
			}
		}
	case parser.LiteralOutOfRange:
		b.WithNote(fmt.Sprintf("integer literals must lie between %d and %d", math.MinInt32, math.MaxInt32))
	case parser.NestingTooDeep:
		b.WithHelp("split the expression or remove redundant parentheses")
	case parser.TrailingTokens:
		b.WithSuggestion("join the operands with '+' or '*'")
	}

	return b.Build()
}

// CodeFor returns the diagnostic code of an error kind
func CodeFor(kind parser.ErrorKind) string {
	switch kind {
	case parser.UnexpectedSymbol:
		return ErrorUnexpectedSymbol
	case parser.UnclosedString:
		return ErrorUnclosedString
	case parser.UnexpectedEndOfInput:
		return ErrorUnexpectedEndOfInput
	case parser.UnclosedParenthesis:
		return ErrorUnclosedParenthesis
	case parser.ExpectedLiteralOrGroup:
		return ErrorExpectedLiteralOrGroup
	case parser.LiteralOutOfRange:
		return ErrorLiteralOutOfRange
	case parser.NestingTooDeep:
		return ErrorNestingTooDeep
	case parser.TrailingTokens:
		return ErrorTrailingTokens
	default:
		return ""
	}
}
