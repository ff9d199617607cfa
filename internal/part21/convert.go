package part21

import (
	"fmt"
	"strings"

	"github.com/arolek/stepfuse/internal/entity"
)

// convertFile turns a parsed FileAST into an entity.Model. Unknown
// type names and argument shapes pass through untouched — the AST
// already preserved them losslessly; this step only reshapes them into
// entity.Value/Record and checks the one thing the grammar itself
// cannot: that no id in DATA repeats.
func convertFile(ast *FileAST) (*entity.Model, error) {
	m := entity.New()

	for _, h := range ast.Header {
		m.Header = append(m.Header, convertTyped(h))
	}

	seen := make(map[entity.ID]*RecordAST, len(ast.Data))
	for _, r := range ast.Data {
		id := entity.ID(r.ID)
		if prev, ok := seen[id]; ok {
			return nil, ParseError{
				Offset:  int(r.Pos.Offset),
				Message: fmt.Sprintf("duplicate id #%d (first seen at offset %d)", r.ID, prev.Pos.Offset),
			}
		}
		seen[id] = r

		rec, err := convertRecord(r)
		if err != nil {
			return nil, err
		}
		m.Insert(rec)
	}

	if m.NextFreeID < 1 {
		m.NextFreeID = 1
	}

	return m, nil
}

func convertRecord(r *RecordAST) (entity.Record, error) {
	id := entity.ID(r.ID)

	if r.Simple != nil {
		return entity.Record{
			ID:   id,
			Type: r.Simple.Name,
			Args: convertArgs(r.Simple.Args),
		}, nil
	}

	args := make([]entity.Value, len(r.Complex))
	for i, t := range r.Complex {
		args[i] = convertTyped(t)
	}
	return entity.Record{
		ID:      id,
		Complex: true,
		Args:    []entity.Value{entity.ListVal(args...)},
	}, nil
}

func convertArgs(args []*ValueAST) []entity.Value {
	out := make([]entity.Value, len(args))
	for i, a := range args {
		out[i] = convertValue(a)
	}
	return out
}

func convertTyped(t *TypedAST) entity.Value {
	return entity.Typed(t.Name, convertArgs(t.Args)...)
}

func convertValue(v *ValueAST) entity.Value {
	switch {
	case v.Real != nil:
		return entity.Real(*v.Real)
	case v.Int != nil:
		return entity.Integer(*v.Int)
	case v.Str != nil:
		return entity.String(unquoteString(*v.Str))
	case v.Enum != nil:
		return entity.EnumVal(strings.Trim(*v.Enum, "."))
	case v.Binary != nil:
		return entity.Binary(strings.Trim(*v.Binary, `"`))
	case v.Ref != nil:
		return entity.RefVal(entity.ID(*v.Ref))
	case v.Omitted:
		return entity.Omitted()
	case v.Redeclared:
		return entity.Redeclared()
	case v.Typed != nil:
		return convertTyped(v.Typed)
	default:
		return entity.ListVal(convertArgs(v.List)...)
	}
}

// unquoteString strips the surrounding single quotes and undoubles an
// embedded '' into a single '.
func unquoteString(s string) string {
	inner := s[1 : len(s)-1]
	return strings.ReplaceAll(inner, "''", "'")
}
