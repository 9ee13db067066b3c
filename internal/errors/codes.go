package errors

// Error codes for the simplelang front end.
// These codes are used in diagnostics printed by the CLI, the REPL and the
// language server.
//
// Error code ranges:
// E0100-E0149: Lexer errors
// E0150-E0199: Parser errors

const (
	// E0100: A character that starts no token
	ErrorUnexpectedSymbol = "E0100"

	// E0101: String literal without a closing quote on the same line
	ErrorUnclosedString = "E0101"

	// E0150: Token stream ended while an operand was expected
	ErrorUnexpectedEndOfInput = "E0150"

	// E0151: '(' without a matching ')'
	ErrorUnclosedParenthesis = "E0151"

	// E0152: Token that cannot start an operand
	ErrorExpectedLiteralOrGroup = "E0152"

	// E0153: Integer literal outside the 32-bit signed range
	ErrorLiteralOutOfRange = "E0153"

	// E0154: Expression nested beyond the parser's depth limit
	ErrorNestingTooDeep = "E0154"

	// E0155: Tokens left after a complete expression
	ErrorTrailingTokens = "E0155"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnexpectedSymbol:
		return "Character does not start any token"
	case ErrorUnclosedString:
		return "String literal is not closed before the end of the line"
	case ErrorUnexpectedEndOfInput:
		return "Input ended where an operand was expected"
	case ErrorUnclosedParenthesis:
		return "Opening parenthesis has no matching closing parenthesis"
	case ErrorExpectedLiteralOrGroup:
		return "Expected an integer, a string or a parenthesized expression"
	case ErrorLiteralOutOfRange:
		return "Integer literal does not fit in 32 bits"
	case ErrorNestingTooDeep:
		return "Expression is nested too deeply"
	case ErrorTrailingTokens:
		return "Unexpected tokens after the end of the expression"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0100" && code < "E0150":
		return "Lexer"
	case code >= "E0150" && code < "E0200":
		return "Parser"
	default:
		return "Unknown"
	}
}
