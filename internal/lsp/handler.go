package lsp

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"simplelang/internal/ast"
	"simplelang/internal/parser"
)

var log = commonlog.GetLogger("simplelang.lsp")

const (
	ServerName    = "simplelang"
	ServerVersion = "0.1.0"
)

// Define the set of supported semantic token types (as required by the LSP spec)
var SemanticTokenTypes = []string{
	"keyword",
	"number",
	"string",
	"operator",
	"variable",
}

// Literals are tagged readonly
var SemanticTokenModifiers = []string{
	"readonly",
}

// document is the last analysis result for one open file
type document struct {
	content string
	lines   lineIndex
	tokens  []parser.Token
	expr    ast.Expr
	err     error
}

// Handler implements the LSP server handlers for simplelang
type Handler struct {
	mu        sync.RWMutex
	documents map[string]*document
}

// NewHandler creates and returns a new Handler instance
func NewHandler() *Handler {
	return &Handler{
		documents: make(map[string]*document),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			HoverProvider: ptrBool(true),
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    ServerName,
			Version: ptrString(ServerVersion),
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities and completes initialization
func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *Handler) Shutdown(ctx *glsp.Context) error {
	log.Info("shutdown")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (h *Handler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Infof("opened file: %s", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}

	doc := h.update(path, params.TextDocument.Text)
	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnosticsFor(doc))
	return nil
}

// TextDocumentDidChange handles file change notifications from the editor.
// Only full-document sync is advertised, so the last change carries the
// whole text.
func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Debugf("changed file: %s", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}

	text, ok := lastFullText(params.ContentChanges)
	if !ok {
		return fmt.Errorf("no full content change for %s", params.TextDocument.URI)
	}

	doc := h.update(path, text)
	sendDiagnosticNotification(ctx, params.TextDocument.URI, diagnosticsFor(doc))
	return nil
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Infof("closed file: %s", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}

	h.mu.Lock()
	delete(h.documents, path)
	h.mu.Unlock()

	sendDiagnosticNotification(ctx, params.TextDocument.URI, []protocol.Diagnostic{})
	return nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *Handler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	log.Debugf("semantic tokens requested for: %s", params.TextDocument.URI)

	doc, err := h.getOrLoad(ctx, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(collectSemanticTokens(doc.tokens, doc.lines)),
	}, nil
}

// TextDocumentHover shows the token under the cursor and the tree parsed
// from the whole document, which holds a single expression.
func (h *Handler) TextDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc, err := h.getOrLoad(ctx, params.TextDocument.URI)
	if err != nil {
		return nil, err
	}

	tok, ok := tokenAt(doc.tokens, doc.lines.toIndex(params.Position))
	if !ok {
		return nil, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s** `%s`\n\n", tok.Kind, tok.Text)
	if doc.err != nil {
		fmt.Fprintf(&b, "error: %s", doc.err)
	} else {
		fmt.Fprintf(&b, "```\n%s\n```\n\n%s", ast.Source(doc.expr), doc.expr)
	}

	rng := doc.lines.toRange(tok.Span())
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: b.String(),
		},
		Range: &rng,
	}, nil
}

func (h *Handler) update(path, content string) *document {
	expr, tokens, err := parser.ParseSource(content)
	if err != nil {
		log.Debugf("%s: %s", path, err)
	}

	doc := &document{
		content: content,
		lines:   newLineIndex(content),
		tokens:  tokens,
		expr:    expr,
		err:     err,
	}

	h.mu.Lock()
	h.documents[path] = doc
	h.mu.Unlock()

	return doc
}

// getOrLoad returns the cached analysis, reading the file from disk when
// the editor never opened it.
func (h *Handler) getOrLoad(ctx *glsp.Context, rawURI protocol.DocumentUri) (*document, error) {
	path, err := uriToPath(rawURI)
	if err != nil {
		return nil, err
	}

	h.mu.RLock()
	doc, ok := h.documents[path]
	h.mu.RUnlock()
	if ok {
		return doc, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	doc = h.update(path, string(content))
	sendDiagnosticNotification(ctx, rawURI, diagnosticsFor(doc))
	return doc, nil
}

func diagnosticsFor(doc *document) []protocol.Diagnostic {
	if doc.err == nil {
		return []protocol.Diagnostic{}
	}
	return ConvertError(doc.err, doc.content)
}

func lastFullText(changes []any) (string, bool) {
	for i := len(changes) - 1; i >= 0; i-- {
		switch change := changes[i].(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			return change.Text, true
		case protocol.TextDocumentContentChangeEvent:
			if change.Range == nil {
				return change.Text, true
			}
		}
	}
	return "", false
}

func tokenAt(tokens []parser.Token, pos parser.TextPosition) (parser.Token, bool) {
	for _, tok := range tokens {
		if tok.Start.Line != pos.Line {
			continue
		}
		if tok.Start.Index <= pos.Index && pos.Index < tok.End.Index {
			return tok, true
		}
	}
	return parser.Token{}, false
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) -> C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path), nil
}

// sendDiagnosticNotification always publishes, so an empty slice clears
// stale diagnostics in the editor.
func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}

	log.Debugf("sending %d diagnostics for %s", len(diagnostics), uri)

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
