package lsp

import (
	"strings"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"
	"simplelang/internal/parser"
)

// lineIndex converts between the lexer's rune-based positions and LSP
// positions, whose Character field counts UTF-16 code units.
type lineIndex []string

func newLineIndex(content string) lineIndex {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func (li lineIndex) line(n int) []rune {
	if n < 0 || n >= len(li) {
		return nil
	}
	return []rune(li[n])
}

func (li lineIndex) toProtocol(pos parser.TextPosition) protocol.Position {
	runes := li.line(pos.Line)
	return protocol.Position{
		Line:      uint32(pos.Line),
		Character: uint32(utf16Len(runes[:min(pos.Index, len(runes))])) + uint32(max(0, pos.Index-len(runes))),
	}
}

// toIndex maps an LSP position back to a rune index on its line. A
// position inside a surrogate pair resolves to the rune it belongs to.
func (li lineIndex) toIndex(pos protocol.Position) parser.TextPosition {
	runes := li.line(int(pos.Line))
	units := 0
	for i, r := range runes {
		units += utf16RuneLen(r)
		if uint32(units) > pos.Character {
			return parser.TextPosition{Line: int(pos.Line), Index: i}
		}
	}
	return parser.TextPosition{Line: int(pos.Line), Index: len(runes) + int(pos.Character) - units}
}

// end is the position just after the last non-empty line.
func (li lineIndex) end() protocol.Position {
	for i := len(li) - 1; i >= 0; i-- {
		if strings.TrimSpace(li[i]) != "" {
			return li.toProtocol(parser.TextPosition{Line: i, Index: utf8.RuneCountInString(li[i])})
		}
	}
	return protocol.Position{}
}

func (li lineIndex) toRange(span parser.Span) protocol.Range {
	return protocol.Range{
		Start: li.toProtocol(span.Start),
		End:   li.toProtocol(span.End),
	}
}

func utf16Len(runes []rune) int {
	n := 0
	for _, r := range runes {
		n += utf16RuneLen(r)
	}
	return n
}

func utf16RuneLen(r rune) int {
	if r >= 0x10000 {
		return 2
	}
	return 1
}
