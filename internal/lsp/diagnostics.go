package lsp

import (
	"errors"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"
	serrors "simplelang/internal/errors"
	"simplelang/internal/parser"
)

// ConvertError transforms a lexer or parser error into LSP diagnostics for
// IDE display. Errors without a source location are placed at the end of
// the document.
func ConvertError(err error, content string) []protocol.Diagnostic {
	var syntaxErr *parser.SyntaxError
	if !errors.As(err, &syntaxErr) {
		return []protocol.Diagnostic{{
			Range:    protocol.Range{},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("simplelang"),
			Message:  err.Error(),
		}}
	}

	lines := newLineIndex(content)
	compilerErr := serrors.FromSyntaxError(syntaxErr)

	var rng protocol.Range
	if syntaxErr.Span != nil {
		rng = lines.toRange(*syntaxErr.Span)
	} else {
		end := lines.end()
		rng = protocol.Range{Start: end, End: end}
	}

	category := serrors.GetErrorCategory(compilerErr.Code)

	diagnostic := protocol.Diagnostic{
		Range:    rng,
		Severity: ptrSeverity(severityFor(compilerErr.Level)),
		Code:     &protocol.IntegerOrString{Value: compilerErr.Code},
		Source:   ptrString("simplelang-" + strings.ToLower(category)),
		Message:  compilerErr.Message,
	}

	if syntaxErr.Open != nil && syntaxErr.Span != nil && syntaxErr.Open.Start != syntaxErr.Span.Start {
		diagnostic.Message += " (unclosed '(' at " + syntaxErr.Open.Start.String() + ")"
	}

	return []protocol.Diagnostic{diagnostic}
}

func severityFor(level serrors.ErrorLevel) protocol.DiagnosticSeverity {
	switch level {
	case serrors.Warning:
		return protocol.DiagnosticSeverityWarning
	case serrors.Note:
		return protocol.DiagnosticSeverityInformation
	case serrors.Help:
		return protocol.DiagnosticSeverityHint
	default:
		return protocol.DiagnosticSeverityError
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
