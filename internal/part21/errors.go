package part21

import "fmt"

// LexError reports an unterminated string/comment or an illegal byte,
// at the byte offset the lexer was scanning when it gave up.
type LexError struct {
	Offset  int
	Message string
}

func (e LexError) Error() string {
	return fmt.Sprintf("lex error at offset %d: %s", e.Offset, e.Message)
}

// ParseError reports an unexpected token, a duplicate id, or a missing
// section marker, at the byte offset of the first defective token.
type ParseError struct {
	Offset  int
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Message)
}
