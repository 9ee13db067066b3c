// SPDX-License-Identifier: Apache-2.0
package main

import (
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
	"simplelang/internal/lsp"

	_ "github.com/tliron/commonlog/simple"
)

var handler protocol.Handler

func main() {
	// 1 = debug level, nil = stderr
	commonlog.Configure(1, nil)
	log := commonlog.GetLogger("simplelang.main")

	h := lsp.NewHandler()

	handler = protocol.Handler{
		Initialize:                     h.Initialize,
		Initialized:                    h.Initialized,
		Shutdown:                       h.Shutdown,
		SetTrace:                       h.SetTrace,
		TextDocumentDidOpen:            h.TextDocumentDidOpen,
		TextDocumentDidClose:           h.TextDocumentDidClose,
		TextDocumentDidChange:          h.TextDocumentDidChange,
		TextDocumentSemanticTokensFull: h.TextDocumentSemanticTokensFull,
		TextDocumentHover:              h.TextDocumentHover,
	}

	s := server.NewServer(&handler, lsp.ServerName, false)

	log.Info("starting simplelang LSP server")

	// Editors talk to the server over stdin/stdout
	if err := s.RunStdio(); err != nil {
		log.Errorf("error running LSP server: %s", err)
		os.Exit(1)
	}
}
