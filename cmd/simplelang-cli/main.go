// SPDX-License-Identifier: Apache-2.0
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"simplelang/grammar"
	"simplelang/internal/ast"
	serrors "simplelang/internal/errors"
	"simplelang/internal/parser"
)

func main() {
	useGrammar := false
	args := os.Args[1:]
	if len(args) > 0 && args[0] == "--grammar" {
		useGrammar = true
		args = args[1:]
	}

	if len(args) < 1 {
		fmt.Println("Usage: simplelang-cli [--grammar] <file>")
		os.Exit(1)
	}

	startTime := time.Now()
	path := args[0]

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}

	var expr ast.Expr
	if useGrammar {
		expr, err = grammar.ParseString(path, string(source))
		if err != nil {
			grammar.ReportParseError(os.Stdout, string(source), err)
		}
	} else {
		var tokens []parser.Token
		expr, tokens, err = parser.ParseSource(string(source))
		if tokens != nil {
			fmt.Println("Tokens:")
			for _, tok := range tokens {
				fmt.Printf("  %s\n", tok)
			}
		}
		if err != nil {
			report(path, string(source), err)
		}
	}

	formattedDuration := formatDuration(time.Since(startTime))

	if err != nil {
		color.Red("Parsing failed after %s", formattedDuration)
		os.Exit(1)
	}

	fmt.Printf("AST:\n%s\n", expr)
	fmt.Printf("Source:\n%s\n", ast.Source(expr))
	color.Green("Successfully parsed %s in %s", path, formattedDuration)
}

func report(path, source string, err error) {
	var syntaxErr *parser.SyntaxError
	if errors.As(err, &syntaxErr) {
		fmt.Print(serrors.NewErrorReporter(path, source).FormatSyntaxError(syntaxErr))
		return
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
