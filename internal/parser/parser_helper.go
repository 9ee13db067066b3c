package parser

func (p *Parser) advance() Token {
	tok := p.tokens[p.current]
	p.current++
	return tok
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) isAtEnd() bool {
	return p.current >= len(p.tokens)
}

// pop consumes the next token, failing when the input is exhausted.
func (p *Parser) pop() (Token, *SyntaxError) {
	if p.isAtEnd() {
		return Token{}, errUnexpectedEOF()
	}
	return p.advance(), nil
}

func (p *Parser) remaining() []Token {
	return p.tokens[p.current:]
}

// enter records one more level of recursion, blaming tok if the configured
// limit is exceeded.
func (p *Parser) enter(tok Token) *SyntaxError {
	if p.depth >= p.config.MaxDepth {
		return errNestingTooDeep(tok, p.config.MaxDepth)
	}
	p.depth++
	return nil
}

func (p *Parser) leave() {
	p.depth--
}
