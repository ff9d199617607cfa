package part21

import (
	"bytes"

	"github.com/alecthomas/participle/v2/lexer"
)

// step21Lexer tokenizes Part 21 exchange structure text. Grounded on
// pgraph's dslLexer and stencil's liftLexer: a lexer.MustSimple table
// whose Comment and Whitespace rules are elided by the parser, leaving
// every other rule significant.
var step21Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `(?i)\b(ISO-10303-21|HEADER|ENDSEC|DATA|END-ISO-10303-21)\b`},
	{Name: "Real", Pattern: `[+-]?(?:\d+\.\d*|\.\d+)(?:[eE][+-]?\d+)?|[+-]?\d+[eE][+-]?\d+`},
	{Name: "Int", Pattern: `[+-]?\d+`},
	{Name: "String", Pattern: `'(?:[^']|'')*'`},
	{Name: "Enum", Pattern: `\.[A-Z_][A-Z0-9_]*\.`},
	{Name: "Binary", Pattern: `"[0-9A-Fa-f]*"`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Hash", Pattern: `#`},
	{Name: "Punct", Pattern: `[(),;=$*]`},
	{Name: "Comment", Pattern: `/\*([^*]|\*[^/])*\*/`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// lexCheck runs step21Lexer standalone over b, draining every token
// without involving the grammar layer at all. A failure here is always
// an illegal byte or an unterminated string/comment — the lexer
// couldn't tokenize the input, as opposed to the grammar rejecting a
// token sequence it did produce — so it is reported as LexError, never
// ParseError (spec.md §7).
func lexCheck(filename string, b []byte) error {
	lx, err := step21Lexer.Lex(filename, bytes.NewReader(b))
	if err != nil {
		return LexError{Offset: 0, Message: err.Error()}
	}

	for {
		tok, err := lx.Next()
		if err != nil {
			offset := 0
			if p, ok := err.(positioned); ok {
				offset = p.Position().Offset
			}
			return LexError{Offset: offset, Message: err.Error()}
		}
		if tok.EOF() {
			return nil
		}
	}
}
