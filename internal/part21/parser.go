package part21

import (
	"io"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/arolek/stepfuse/internal/entity"
)

// positioned is implemented by participle's own error type, letting us
// recover the byte offset of the first defective token without
// depending on participle's concrete error type.
type positioned interface {
	Position() lexer.Position
}

// Parse reads a Part 21 exchange structure from r and returns its
// entity.Model. It is strict about syntax and reports the byte offset
// of the first defective token; it is permissive about entity
// vocabulary, preserving any type name or argument shape it has never
// seen as a symbolic Value.
func Parse(r io.Reader, filename string) (*entity.Model, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseBytes(b, filename)
}

// ParseBytes parses already-buffered input; Parse reads its reader
// fully and delegates here.
func ParseBytes(b []byte, filename string) (*entity.Model, error) {
	if err := lexCheck(filename, b); err != nil {
		return nil, err
	}

	ast, err := step21Parser.ParseBytes(filename, b)
	if err != nil {
		offset := 0
		if p, ok := err.(positioned); ok {
			offset = p.Position().Offset
		}
		return nil, ParseError{Offset: offset, Message: err.Error()}
	}

	m, err := convertFile(ast)
	if err != nil {
		return nil, err
	}

	if err := m.CheckReferentialClosure(); err != nil {
		return nil, err
	}

	return m, nil
}
