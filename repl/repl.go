// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"simplelang/internal/ast"
	serrors "simplelang/internal/errors"
	"simplelang/internal/parser"
)

const PROMPT = ">> "

// MaxLineLength bounds a single input line.
const MaxLineLength = 1 << 20

// Start reads one expression per line from in and writes the parsed tree,
// or a diagnostic, to out. It returns when in is exhausted or fails.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineLength)

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			if err := scanner.Err(); err != nil {
				fmt.Fprintln(out, color.RedString("error: failed to read input: %s", err))
			}
			return
		}

		line := scanner.Text()
		if line == "" {
			continue
		}

		expr, _, err := parser.ParseSource(line)
		if err != nil {
			printError(out, line, err)
			continue
		}

		fmt.Fprintf(out, "AST:\n%s\n", expr)
		fmt.Fprintf(out, "%s\n", color.GreenString(ast.Source(expr)))
	}
}

func printError(out io.Writer, line string, err error) {
	var syntaxErr *parser.SyntaxError
	if errors.As(err, &syntaxErr) {
		fmt.Fprint(out, serrors.NewErrorReporter("<stdin>", line).FormatSyntaxError(syntaxErr))
		return
	}
	fmt.Fprintln(out, color.RedString("error: %s", err))
}
