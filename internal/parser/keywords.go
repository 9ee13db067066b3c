package parser

var KEYWORDS = map[string]TokenKind{
	"fn": FnKeyword,
}
