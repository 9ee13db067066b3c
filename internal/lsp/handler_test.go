package lsp_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"simplelang/internal/lsp"
)

const testURI = "file:///tmp/test.sl"

type recorder struct {
	published []*protocol.PublishDiagnosticsParams
}

func (r *recorder) context() *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			if method == protocol.ServerTextDocumentPublishDiagnostics {
				r.published = append(r.published, params.(*protocol.PublishDiagnosticsParams))
			}
		},
	}
}

func (r *recorder) last(t *testing.T) *protocol.PublishDiagnosticsParams {
	require.NotEmpty(t, r.published, "no diagnostics published")
	return r.published[len(r.published)-1]
}

func open(t *testing.T, h *lsp.Handler, ctx *glsp.Context, text string) {
	err := h.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: testURI, LanguageID: "simplelang", Version: 1, Text: text},
	})
	require.NoError(t, err)
}

func TestInitializeAdvertisesCapabilities(t *testing.T) {
	h := lsp.NewHandler()

	result, err := h.Initialize(&glsp.Context{}, &protocol.InitializeParams{})
	require.NoError(t, err)

	initResult, ok := result.(*protocol.InitializeResult)
	require.True(t, ok)
	hover, ok := initResult.Capabilities.HoverProvider.(*bool)
	require.True(t, ok)
	require.True(t, *hover)

	opts, ok := initResult.Capabilities.SemanticTokensProvider.(*protocol.SemanticTokensOptions)
	require.True(t, ok)
	require.Equal(t, lsp.SemanticTokenTypes, opts.Legend.TokenTypes)
	require.Equal(t, lsp.ServerName, initResult.ServerInfo.Name)
}

func TestDidOpenPublishesEmptyDiagnostics(t *testing.T) {
	rec := &recorder{}
	h := lsp.NewHandler()

	open(t, h, rec.context(), "12 + 34 * 56")

	last := rec.last(t)
	require.Equal(t, testURI, last.URI)
	require.Empty(t, last.Diagnostics)
	require.NotNil(t, last.Diagnostics)
}

func TestDidOpenPublishesSyntaxError(t *testing.T) {
	rec := &recorder{}
	h := lsp.NewHandler()

	open(t, h, rec.context(), "1 + (2 * 3")

	diags := rec.last(t).Diagnostics
	require.Len(t, diags, 1)
	require.Equal(t, "Expected ')' at EOF", diags[0].Message)
	require.Equal(t, protocol.Position{Line: 0, Character: 4}, diags[0].Range.Start)
	require.Equal(t, protocol.Position{Line: 0, Character: 5}, diags[0].Range.End)
	require.Equal(t, "simplelang-parser", *diags[0].Source)
	require.Equal(t, "E0151", diags[0].Code.Value)
}

func TestLexerErrorDiagnostic(t *testing.T) {
	rec := &recorder{}
	h := lsp.NewHandler()

	open(t, h, rec.context(), "1 +\n  2 / 3")

	diags := rec.last(t).Diagnostics
	require.Len(t, diags, 1)
	require.Equal(t, "Unexpected symbol '/'", diags[0].Message)
	require.Equal(t, protocol.Position{Line: 1, Character: 4}, diags[0].Range.Start)
	require.Equal(t, "simplelang-lexer", *diags[0].Source)
}

func TestEndOfInputDiagnosticAtDocumentEnd(t *testing.T) {
	rec := &recorder{}
	h := lsp.NewHandler()

	open(t, h, rec.context(), "1 +\n2 *\n\n")

	diags := rec.last(t).Diagnostics
	require.Len(t, diags, 1)
	require.Equal(t, "Unexpected EOF", diags[0].Message)
	require.Equal(t, protocol.Position{Line: 1, Character: 3}, diags[0].Range.Start)
}

func TestDidChangeClearsDiagnostics(t *testing.T) {
	rec := &recorder{}
	h := lsp.NewHandler()
	ctx := rec.context()

	open(t, h, ctx, "(1")
	require.Len(t, rec.last(t).Diagnostics, 1)

	err := h.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: testURI},
			Version:                2,
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "(1)"}},
	})
	require.NoError(t, err)
	require.Empty(t, rec.last(t).Diagnostics)
}

func TestDidCloseClearsDiagnostics(t *testing.T) {
	rec := &recorder{}
	h := lsp.NewHandler()
	ctx := rec.context()

	open(t, h, ctx, "1 +")
	require.NoError(t, h.TextDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	}))

	require.Empty(t, rec.last(t).Diagnostics)
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	rec := &recorder{}
	h := lsp.NewHandler()
	ctx := rec.context()

	open(t, h, ctx, "fn + 12\n  * \"hi\"++ x")

	tokens, err := h.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	require.NoError(t, err, "TextDocumentSemanticTokensFull returned error")
	require.NotNil(t, tokens, "Returned tokens should not be nil")

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err, "Failed to decode semantic tokens")
	require.Len(t, decoded, 7)

	assertToken(t, &decoded[0], 1, 1, 2, "keyword", nil)
	assertToken(t, &decoded[1], 1, 4, 1, "operator", nil)
	assertToken(t, &decoded[2], 1, 6, 2, "number", []string{"readonly"})
	assertToken(t, &decoded[3], 2, 3, 1, "operator", nil)
	assertToken(t, &decoded[4], 2, 5, 4, "string", []string{"readonly"})
	assertToken(t, &decoded[5], 2, 9, 2, "operator", nil)
	assertToken(t, &decoded[6], 2, 12, 1, "variable", nil)
}

func TestSemanticTokensFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expr.sl")
	require.NoError(t, os.WriteFile(path, []byte("(1 + 2)"), 0o644))

	rec := &recorder{}
	h := lsp.NewHandler()

	tokens, err := h.TextDocumentSemanticTokensFull(rec.context(), &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file://" + filepath.ToSlash(path)},
	})
	require.NoError(t, err)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 5)
	assertToken(t, &decoded[0], 1, 1, 1, "operator", nil)
	assertToken(t, &decoded[1], 1, 2, 1, "number", []string{"readonly"})
	assertToken(t, &decoded[4], 1, 7, 1, "operator", nil)
	require.Empty(t, rec.last(t).Diagnostics)
}

func TestSemanticTokensMissingFile(t *testing.T) {
	h := lsp.NewHandler()

	_, err := h.TextDocumentSemanticTokensFull(&glsp.Context{}, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///does/not/exist.sl"},
	})
	require.Error(t, err)
}

func TestTextDocumentHover(t *testing.T) {
	rec := &recorder{}
	h := lsp.NewHandler()
	ctx := rec.context()

	open(t, h, ctx, "12 + 34 * 56")

	hover, err := h.TextDocumentHover(ctx, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
			Position:     protocol.Position{Line: 0, Character: 6},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, hover)

	content, ok := hover.Contents.(protocol.MarkupContent)
	require.True(t, ok)
	require.Contains(t, content.Value, "**Integer** `34`")
	require.Contains(t, content.Value, "(12 + (34 * 56))")
	require.Equal(t, protocol.Position{Line: 0, Character: 5}, hover.Range.Start)
	require.Equal(t, protocol.Position{Line: 0, Character: 7}, hover.Range.End)

	// whitespace between tokens
	hover, err = h.TextDocumentHover(ctx, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
			Position:     protocol.Position{Line: 0, Character: 2},
		},
	})
	require.NoError(t, err)
	require.Nil(t, hover)
}

func TestHoverShowsParseError(t *testing.T) {
	rec := &recorder{}
	h := lsp.NewHandler()
	ctx := rec.context()

	open(t, h, ctx, "1 2")

	hover, err := h.TextDocumentHover(ctx, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
			Position:     protocol.Position{Line: 0, Character: 0},
		},
	})
	require.NoError(t, err)

	content := hover.Contents.(protocol.MarkupContent)
	require.Contains(t, content.Value, "error: 0:2: Expected end of input, got 2")
}

func TestNonASCIIPositionsUseUTF16(t *testing.T) {
	rec := &recorder{}
	h := lsp.NewHandler()
	ctx := rec.context()

	open(t, h, ctx, "\"é😀\" + 1")

	tokens, err := h.TextDocumentSemanticTokensFull(ctx, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
	})
	require.NoError(t, err)

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err)
	require.Len(t, decoded, 3)
	assertToken(t, &decoded[0], 1, 1, 5, "string", []string{"readonly"})
	assertToken(t, &decoded[1], 1, 7, 1, "operator", nil)
	assertToken(t, &decoded[2], 1, 9, 1, "number", []string{"readonly"})

	hover, err := h.TextDocumentHover(ctx, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
			Position:     protocol.Position{Line: 0, Character: 8},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, hover)
	require.Contains(t, hover.Contents.(protocol.MarkupContent).Value, "**Integer** `1`")
	require.Equal(t, protocol.Position{Line: 0, Character: 8}, hover.Range.Start)
	require.Equal(t, protocol.Position{Line: 0, Character: 9}, hover.Range.End)
}

func TestNonASCIIDiagnosticRange(t *testing.T) {
	rec := &recorder{}
	h := lsp.NewHandler()
	ctx := rec.context()

	open(t, h, ctx, "\"😀\" / 1")

	diags := rec.last(t).Diagnostics
	require.Len(t, diags, 1)
	require.Equal(t, protocol.Position{Line: 0, Character: 5}, diags[0].Range.Start)
	require.Equal(t, protocol.Position{Line: 0, Character: 6}, diags[0].Range.End)
	require.Equal(t, protocol.DiagnosticSeverityError, *diags[0].Severity)

	open(t, h, ctx, "\"😀\" +")

	diags = rec.last(t).Diagnostics
	require.Len(t, diags, 1)
	require.Equal(t, "Unexpected EOF", diags[0].Message)
	require.Equal(t, protocol.Position{Line: 0, Character: 7}, diags[0].Range.Start)
}

func TestHoverShowsWholeDocumentTree(t *testing.T) {
	rec := &recorder{}
	h := lsp.NewHandler()
	ctx := rec.context()

	open(t, h, ctx, "1 +\n2 * 3")

	hover, err := h.TextDocumentHover(ctx, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: testURI},
			Position:     protocol.Position{Line: 1, Character: 0},
		},
	})
	require.NoError(t, err)
	require.Contains(t, hover.Contents.(protocol.MarkupContent).Value, "(1 + (2 * 3))")
}

type DecodedToken struct {
	Index     int
	Line      uint32
	Char      uint32
	Length    uint32
	Type      string
	Modifiers []string
}

func decodeSemanticTokens(raw []uint32) ([]DecodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []DecodedToken
		line    uint32
		char    uint32
	)

	for i := 0; i < len(raw); i += 5 {
		deltaLine := raw[i]
		deltaStart := raw[i+1]
		length := raw[i+2]
		tokenTypeIdx := raw[i+3]
		tokenModMask := raw[i+4]

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		var modifiers []string
		for j, name := range lsp.SemanticTokenModifiers {
			if tokenModMask&(1<<j) != 0 {
				modifiers = append(modifiers, name)
			}
		}

		decoded = append(decoded, DecodedToken{
			Index:     i / 5,
			Line:      line + 1, // LSP uses 0-based indexing
			Char:      char + 1, // LSP uses 0-based indexing
			Length:    length,
			Type:      lsp.SemanticTokenTypes[tokenTypeIdx],
			Modifiers: modifiers,
		})
	}

	return decoded, nil
}

func assertToken(t *testing.T, token *DecodedToken, expectedLine, expectedChar, expectedLength uint32, expectedType string, expectedModifiers []string) {
	require.Equal(t, expectedLine, token.Line, "line mismatch (expected line %d)", expectedLine)
	require.Equal(t, expectedChar, token.Char, "char mismatch (expected char %d)", expectedChar)
	require.Equal(t, expectedLength, token.Length, "length mismatch")
	require.Equal(t, expectedType, token.Type, "type mismatch")
	require.ElementsMatch(t, expectedModifiers, token.Modifiers, "modifiers mismatch")
}
