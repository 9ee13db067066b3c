package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Lexer turns source text into tokens. Its keyword table is fixed at
// construction, so one Lexer may be shared between goroutines.
type Lexer struct {
	keywords map[string]TokenKind
}

func NewLexer() *Lexer {
	return &Lexer{keywords: KEYWORDS}
}

var defaultLexer = NewLexer()

// Lex tokenizes input with the default keyword table.
func Lex(input io.Reader) ([]Token, error) {
	return defaultLexer.Lex(input)
}

// Lex reads input one line at a time and returns every token in source
// order. The first lexical error aborts the whole call.
func (l *Lexer) Lex(input io.Reader) ([]Token, error) {
	reader := bufio.NewReader(input)
	var tokens []Token

	for lineNo := 0; ; lineNo++ {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, fmt.Errorf("failed to read input: %w", readErr)
		}
		if readErr == io.EOF && line == "" {
			break
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")

		s := &lineScanner{
			keywords: l.keywords,
			source:   []rune(line),
			line:     lineNo,
			tokens:   tokens,
		}
		var err *SyntaxError
		tokens, err = s.scanTokens()
		if err != nil {
			return nil, err
		}

		if readErr == io.EOF {
			break
		}
	}

	return tokens, nil
}

// LexString is a shorthand for Lex(strings.NewReader(source)).
func LexString(source string) ([]Token, error) {
	return Lex(strings.NewReader(source))
}

type lineScanner struct {
	keywords map[string]TokenKind
	source   []rune
	line     int
	start    int
	current  int
	tokens   []Token
}

func (s *lineScanner) scanTokens() ([]Token, *SyntaxError) {
	for !s.isAtEnd() {
		s.start = s.current
		if err := s.scanToken(); err != nil {
			return nil, err
		}
	}
	return s.tokens, nil
}

func (s *lineScanner) scanToken() *SyntaxError {
	c := s.advance()

	switch {
	case isWhitespace(c):
		return nil
	case isIdentifierStart(c):
		s.scanIdentifier()
		return nil
	case isDigit(c):
		s.scanInteger()
		return nil
	case c == '"':
		return s.scanString()
	}

	switch c {
	case '+':
		s.scanPlusOperator()
	case '-':
		s.scanMinusOperator()
	case '*':
		s.scanStarOperator()
	case '(':
		s.addToken(LParen)
	case ')':
		s.addToken(RParen)
	default:
		return errUnexpectedSymbol(s.pos(s.start), c)
	}
	return nil
}

func (s *lineScanner) scanPlusOperator() {
	if s.matchNext('+') {
		s.addToken(PlusPlus)
	} else if s.matchNext('=') {
		s.addToken(PlusEqual)
	} else {
		s.addToken(Plus)
	}
}

func (s *lineScanner) scanMinusOperator() {
	if s.matchNext('-') {
		s.addToken(MinusMinus)
	} else if s.matchNext('=') {
		s.addToken(MinusEqual)
	} else {
		s.addToken(Minus)
	}
}

func (s *lineScanner) scanStarOperator() {
	if s.matchNext('=') {
		s.addToken(AsteriskEqual)
	} else {
		s.addToken(Asterisk)
	}
}

func (s *lineScanner) scanIdentifier() {
	for isIdentifierBody(s.peek()) {
		s.advance()
	}
	s.addToken(s.lookupIdentifier(string(s.source[s.start:s.current])))
}

func (s *lineScanner) scanInteger() {
	for isDigit(s.peek()) {
		s.advance()
	}
	s.addToken(Integer)
}

// scanString keeps both quotes in the token text. Strings cannot span lines.
func (s *lineScanner) scanString() *SyntaxError {
	for s.peek() != '"' && !s.isAtEnd() {
		s.advance()
	}
	if s.isAtEnd() {
		return errUnclosedString(s.pos(s.start), s.pos(s.current))
	}
	s.advance()
	s.addToken(String)
	return nil
}

func (s *lineScanner) lookupIdentifier(text string) TokenKind {
	if kind, ok := s.keywords[text]; ok {
		return kind
	}
	return Identifier
}

func (s *lineScanner) advance() rune {
	c := s.source[s.current]
	s.current++
	return c
}

func (s *lineScanner) matchNext(expected rune) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *lineScanner) peek() rune {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *lineScanner) addToken(kind TokenKind) {
	s.tokens = append(s.tokens, Token{
		Text:  string(s.source[s.start:s.current]),
		Start: s.pos(s.start),
		End:   s.pos(s.current),
		Kind:  kind,
	})
}

func (s *lineScanner) pos(index int) TextPosition {
	return TextPosition{Line: s.line, Index: index}
}

func (s *lineScanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// Helper functions.

func isWhitespace(c rune) bool {
	return c == ' ' || c == '\r' || c == '\t' || c == '\n'
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isIdentifierStart(c rune) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_'
}

func isIdentifierBody(c rune) bool {
	return isIdentifierStart(c) || isDigit(c)
}
