package entity

// Traverse yields every Ref appearing anywhere in a Record's argument
// tree, including inside nested Lists and Typeds.
func Traverse(rec Record) []ID {
	var refs []ID
	for _, v := range rec.Args {
		traverseValue(v, &refs)
	}
	return refs
}

func traverseValue(v Value, refs *[]ID) {
	switch v.Kind {
	case KindRef:
		*refs = append(*refs, v.Ref)
	case KindList:
		for _, e := range v.List {
			traverseValue(e, refs)
		}
	case KindTyped:
		for _, a := range v.Args {
			traverseValue(a, refs)
		}
	}
}

// Rewrite produces a new Record whose own id and every embedded Ref
// have been mapped through ids. Non-Ref values are copied unchanged.
// Rewrite is total: every value in the argument tree is handled.
func Rewrite(rec Record, ids map[ID]ID) Record {
	out := Record{
		ID:      ids[rec.ID],
		Type:    rec.Type,
		Complex: rec.Complex,
		Args:    make([]Value, len(rec.Args)),
	}
	for i, v := range rec.Args {
		out.Args[i] = RewriteValue(v, ids)
	}
	return out
}

// RewriteValue maps every Ref in v (recursively) through ids, leaving
// every other variant untouched.
func RewriteValue(v Value, ids map[ID]ID) Value {
	switch v.Kind {
	case KindRef:
		return Value{Kind: KindRef, Ref: ids[v.Ref]}
	case KindList:
		out := make([]Value, len(v.List))
		for i, e := range v.List {
			out[i] = RewriteValue(e, ids)
		}
		return Value{Kind: KindList, List: out}
	case KindTyped:
		out := make([]Value, len(v.Args))
		for i, a := range v.Args {
			out[i] = RewriteValue(a, ids)
		}
		return Value{Kind: KindTyped, Name: v.Name, Args: out}
	default:
		return v
	}
}
