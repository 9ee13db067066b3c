package lsp

import (
	"simplelang/internal/parser"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions, StartChar and Length in UTF-16 units
// TokenType is an index into the semanticTokenTypes array
// TokenModifiers is a bitmask based on semanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into semanticTokenTypes
	TokenModifiers int // bitmask
}

// collectSemanticTokens classifies the lexer's tokens. It works from the
// token stream rather than the AST so that highlighting survives parse
// errors.
func collectSemanticTokens(tokens []parser.Token, lines lineIndex) []SemanticToken {
	var result []SemanticToken

	for _, tok := range tokens {
		switch tok.Kind {
		case parser.FnKeyword:
			result = append(result, makeToken(tok, lines, "keyword", 0)...)
		case parser.Identifier:
			result = append(result, makeToken(tok, lines, "variable", 0)...)
		case parser.Integer:
			result = append(result, makeToken(tok, lines, "number", 1)...)
		case parser.String:
			result = append(result, makeToken(tok, lines, "string", 1)...)
		default:
			if tok.Kind.IsOperator() {
				result = append(result, makeToken(tok, lines, "operator", 0)...)
			}
		}
	}

	return result
}

// encodeSemanticTokens packs tokens into the LSP wire format (delta-line,
// delta-start compression)
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	var data []uint32
	var prevLine, prevStart uint32

	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return data
}

// makeToken creates a semantic token for a lexer token
func makeToken(tok parser.Token, lines lineIndex, tokenType string, readonlyModifier int) []SemanticToken {
	if tok.Text == "" {
		return nil
	}

	start := lines.toProtocol(tok.Start)

	return []SemanticToken{{
		Line:           start.Line,
		StartChar:      start.Character,
		Length:         uint32(utf16Len([]rune(tok.Text))),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: readonlyModifier << indexOf("readonly", SemanticTokenModifiers),
	}}
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0 // Default to first token type if not found
}
