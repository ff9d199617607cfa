package assembly

// Validate checks the structural invariants spec.md §3 and §6 require
// of a Tree before it can be walked: child indices form a tree (no
// cycles, no node claimed by two parents, no duplicate child edges),
// and a node with a Link has no children.
func Validate(t *Tree) error {
	if t.Root < 0 || t.Root >= len(t.Nodes) {
		return Error{Kind: "InvalidRoot", NodeIndex: t.Root, Message: "root index out of range"}
	}

	parent := make([]int, len(t.Nodes))
	for i := range parent {
		parent[i] = -1
	}

	for i, n := range t.Nodes {
		seen := make(map[int]struct{}, len(n.Children))
		for _, c := range n.Children {
			if c < 0 || c >= len(t.Nodes) {
				return Error{Kind: "InvalidChild", NodeIndex: i, Message: "child index out of range"}
			}
			if _, dup := seen[c]; dup {
				return Error{Kind: "DuplicateChildEdge", NodeIndex: i, Message: "child listed more than once"}
			}
			seen[c] = struct{}{}

			if parent[c] != -1 {
				return Error{Kind: "MultiParent", NodeIndex: c, Message: "node has more than one parent"}
			}
			parent[c] = i
		}

		if n.Link != "" && len(n.Children) > 0 {
			return Error{Kind: "LinkOnNonLeaf", NodeIndex: i, Message: "a node with a link must be a leaf"}
		}
	}

	for i := range t.Nodes {
		if i != t.Root && parent[i] == -1 {
			return Error{Kind: "Orphan", NodeIndex: i, Message: "non-root node has no parent"}
		}
	}

	visited := make([]bool, len(t.Nodes))
	var walk func(i, depth int) error
	walk = func(i, depth int) error {
		if depth > len(t.Nodes) {
			return Error{Kind: "Cycle", NodeIndex: i, Message: "child traversal exceeds node count"}
		}
		if visited[i] {
			return Error{Kind: "Cycle", NodeIndex: i, Message: "node revisited during traversal"}
		}
		visited[i] = true
		for _, c := range t.Nodes[i].Children {
			if err := walk(c, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(t.Root, 0); err != nil {
		return err
	}

	// Every node already has at most one parent (checked above), so a
	// node left unvisited by the walk from Root cannot be an ordinary
	// orphan — it has a parent, just not one reachable from Root — it
	// can only be part of a cycle the root walk never reached.
	for i, v := range visited {
		if !v {
			return Error{Kind: "Cycle", NodeIndex: i, Message: "node is part of a cycle disconnected from root"}
		}
	}

	return nil
}

// RawNode is the shape a JSON (or other external) loader decodes
// before it becomes a Node — Transform here is a slice so the loader
// can detect and reject the wrong-arity case (spec.md §6) before
// constructing the fixed-size Transform array this package otherwise
// assumes is always well-formed.
type RawNode struct {
	Label     string
	Transform []float64
	Children  []int
	Metadata  []KV
	Link      string
}

// ToNode converts a RawNode to a Node, rejecting any Transform whose
// length is neither 0 (identity) nor 16.
func ToNode(raw RawNode, index int) (Node, error) {
	n := Node{
		Label:    raw.Label,
		Children: raw.Children,
		Metadata: raw.Metadata,
		Link:     raw.Link,
	}
	switch len(raw.Transform) {
	case 0:
		// identity
	case 16:
		var xf Transform
		copy(xf[:], raw.Transform)
		n.Transform = &xf
	default:
		return Node{}, Error{
			Kind:      "WrongTransformArity",
			NodeIndex: index,
			Message:   "transform must have exactly 16 entries",
		}
	}
	return n, nil
}
