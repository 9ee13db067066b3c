package errors

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"simplelang/internal/parser"
)

func init() {
	color.NoColor = true
}

func syntaxError(t *testing.T, source string) *parser.SyntaxError {
	t.Helper()
	_, _, err := parser.ParseSource(source)
	se, ok := err.(*parser.SyntaxError)
	require.True(t, ok, "expected *parser.SyntaxError, got %v", err)
	return se
}

func TestErrorReporter(t *testing.T) {
	source := "1 +\n  (2 * 3\n"
	reporter := NewErrorReporter("test.sl", source)

	formatted := reporter.FormatSyntaxError(syntaxError(t, source))

	// Should contain error level and code
	assert.Contains(t, formatted, "error["+ErrorUnclosedParenthesis+"]")
	assert.Contains(t, formatted, "Expected ')' at EOF")

	// Should point at the opening parenthesis
	assert.Contains(t, formatted, "test.sl:2:3")
	assert.Contains(t, formatted, "  (2 * 3")
	assert.Contains(t, formatted, "unclosed '(' opened at line 2, column 3")
	assert.Contains(t, formatted, "add ')'")
	assert.Contains(t, formatted, "= Parser error: "+GetErrorDescription(ErrorUnclosedParenthesis))
}

func TestDescriptionOmittedWithoutCode(t *testing.T) {
	reporter := NewErrorReporter("test.sl", "1")

	formatted := reporter.FormatError(CompilerError{Level: Error, Message: "plain", HasPosition: true})
	assert.NotContains(t, formatted, "=")

	formatted = reporter.FormatSyntaxError(syntaxError(t, "1 / 2"))
	assert.Contains(t, formatted, "= Lexer error: Character does not start any token")
}

func TestUnexpectedSymbolError(t *testing.T) {
	source := "12 / 3"
	err := FromSyntaxError(syntaxError(t, source))

	assert.Equal(t, ErrorUnexpectedSymbol, err.Code)
	assert.True(t, err.HasPosition)
	assert.Equal(t, parser.TextPosition{Line: 0, Index: 3}, err.Position)
	assert.Equal(t, 1, err.Length)
	assert.Len(t, err.Notes, 1)
}

func TestUnclosedStringError(t *testing.T) {
	source := `"abc`
	err := FromSyntaxError(syntaxError(t, source))

	assert.Equal(t, ErrorUnclosedString, err.Code)
	assert.Equal(t, 4, err.Length)
	require.Len(t, err.Suggestions, 1)
	assert.Equal(t, `"`, err.Suggestions[0].Replacement)
	assert.Equal(t, parser.TextPosition{Line: 0, Index: 4}, err.Suggestions[0].Position)
}

func TestExpectedLiteralError(t *testing.T) {
	err := FromSyntaxError(syntaxError(t, "1 + abc"))

	assert.Equal(t, ErrorExpectedLiteralOrGroup, err.Code)
	assert.Contains(t, err.Notes[0], `Identifier "abc"`)
	assert.Contains(t, err.HelpText, "identifiers")
}

func TestLiteralOutOfRangeError(t *testing.T) {
	err := FromSyntaxError(syntaxError(t, "4294967296"))

	assert.Equal(t, ErrorLiteralOutOfRange, err.Code)
	assert.Equal(t, 10, err.Length)
	assert.Contains(t, err.Notes[0], "2147483647")
}

func TestEndOfInputError(t *testing.T) {
	source := "1 *\n\n"
	reporter := NewErrorReporter("test.sl", source)

	se := syntaxError(t, source)
	err := FromSyntaxError(se)
	assert.False(t, err.HasPosition)
	assert.Equal(t, ErrorUnexpectedEndOfInput, err.Code)

	// Located just after the last non-empty line
	formatted := reporter.FormatError(err)
	assert.Contains(t, formatted, "test.sl:1:4")
	assert.Contains(t, formatted, "Unexpected EOF")
}

func TestTrailingTokensError(t *testing.T) {
	source := "1 2"
	reporter := NewErrorReporter("test.sl", source)

	formatted := reporter.FormatSyntaxError(syntaxError(t, source))
	assert.Contains(t, formatted, "error["+ErrorTrailingTokens+"]")
	assert.Contains(t, formatted, "test.sl:1:3")
}

func TestErrorMarkerCreation(t *testing.T) {
	source := `1 + variable`
	reporter := NewErrorReporter("test.sl", source)

	// Test marker creation
	marker := reporter.createMarker(5, 8, Error) // "variable" is 8 chars at column 5

	// Should have correct spacing and marker length
	spaces := strings.Count(marker, " ")
	assert.Equal(t, 4, spaces) // column 5 means 4 spaces before
	carets := strings.Count(marker, "^")
	assert.Equal(t, 8, carets) // 8 character length
}

func TestErrorLevels(t *testing.T) {
	source := `test`
	reporter := NewErrorReporter("test.sl", source)

	// Test different error levels produce different headers
	errorErr := CompilerError{Level: Error, Message: "test error", HasPosition: true}
	warningErr := CompilerError{Level: Warning, Message: "test warning", HasPosition: true}

	errorFormatted := reporter.FormatError(errorErr)
	warningFormatted := reporter.FormatError(warningErr)

	assert.Contains(t, errorFormatted, "error:")
	assert.Contains(t, warningFormatted, "warning:")
}

func TestCodes(t *testing.T) {
	kinds := []parser.ErrorKind{
		parser.UnexpectedSymbol, parser.UnclosedString, parser.UnexpectedEndOfInput,
		parser.UnclosedParenthesis, parser.ExpectedLiteralOrGroup, parser.LiteralOutOfRange,
		parser.NestingTooDeep, parser.TrailingTokens,
	}

	seen := map[string]bool{}
	for _, kind := range kinds {
		code := CodeFor(kind)
		assert.NotEmpty(t, code, kind.String())
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
		assert.NotEqual(t, "Unknown error code", GetErrorDescription(code))
	}

	assert.Equal(t, "Lexer", GetErrorCategory(ErrorUnclosedString))
	assert.Equal(t, "Parser", GetErrorCategory(ErrorTrailingTokens))
}
