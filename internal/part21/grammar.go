package part21

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// FileAST is the root of a Part 21 exchange structure: a HEADER
// section of Typed entries followed by a DATA section of records.
//
//	file := "ISO-10303-21;" "HEADER;" typed* "ENDSEC;"
//	        "DATA;" record* "ENDSEC;" "END-ISO-10303-21;"
type FileAST struct {
	Pos    lexer.Position
	Header []*TypedAST  `parser:"\"ISO-10303-21\" \";\" \"HEADER\" \";\" @@* \"ENDSEC\" \";\""`
	Data   []*RecordAST `parser:"\"DATA\" \";\" @@* \"ENDSEC\" \";\" \"END-ISO-10303-21\" \";\""`
}

// RecordAST is one DATA-section entry:
//
//	record := "#" INT "=" ( typed | "(" typed+ ")" ) ";"
type RecordAST struct {
	Pos     lexer.Position
	ID      int64       `parser:"\"#\" @Int \"=\""`
	Simple  *TypedAST   `parser:"(  @@"`
	Complex []*TypedAST `parser:" | \"(\" @@+ \")\" ) \";\""`
}

// TypedAST is a named constructor wrapping a possibly empty argument
// list: typed := IDENT "(" args? ")"
type TypedAST struct {
	Pos  lexer.Position
	Name string      `parser:"@Ident"`
	Args []*ValueAST `parser:"\"(\" ( @@ ( \",\" @@ )* )? \")\""`
}

// ValueAST is the recursive heart of the grammar — every shape a Part
// 21 argument can take:
//
//	value := INT | REAL | STRING | ENUM | "#" INT
//	       | "$" | "*" | "(" args? ")" | typed
type ValueAST struct {
	Pos        lexer.Position
	Real       *float64    `parser:"(  @Real"`
	Int        *int64      `parser:" | @Int"`
	Str        *string     `parser:" | @String"`
	Enum       *string     `parser:" | @Enum"`
	Binary     *string     `parser:" | @Binary"`
	Ref        *int64      `parser:" | \"#\" @Int"`
	Omitted    bool        `parser:" | @\"$\""`
	Redeclared bool        `parser:" | @\"*\""`
	Typed      *TypedAST   `parser:" | @@"`
	List       []*ValueAST `parser:" | \"(\" ( @@ ( \",\" @@ )* )? \")\" )"`
}

var step21Parser = participle.MustBuild[FileAST](
	participle.Lexer(step21Lexer),
	participle.CaseInsensitive("Keyword"),
	participle.Elide("Comment", "Whitespace"),
	participle.UseLookahead(2),
)
