// Package assembly defines the external assembly-tree shape the
// driver consumes: a finite ordered forest whose nodes optionally
// carry a label, a rigid-body transform, metadata, children, and a
// link to an external STEP file. Deserializing this shape from JSON
// is a caller's concern, not this package's (spec.md §6) — Validate
// only checks the invariants a Tree must hold once it exists.
package assembly

// Transform is a 4x4 rigid-body transform: 16 reals, column-major,
// with the last row always (0 0 0 1).
type Transform [16]float64

// Origin returns the translation column's first three entries
// (column 3, indices 12..14).
func (t Transform) Origin() (x, y, z float64) {
	return t[12], t[13], t[14]
}

// RefDirection returns column 0 (indices 0..2), the placement's
// ref_direction axis.
func (t Transform) RefDirection() (x, y, z float64) {
	return t[0], t[1], t[2]
}

// Axis returns column 2 (indices 8..10), the placement's axis.
func (t Transform) Axis() (x, y, z float64) {
	return t[8], t[9], t[10]
}

// KV is one metadata (key, value) pair.
type KV struct {
	Key   string
	Value string
}

// Node is one vertex of the assembly forest.
type Node struct {
	Label     string
	Transform *Transform // nil means identity
	Children  []int      // indices into the owning Tree.Nodes
	Metadata  []KV
	Link      string // external STEP file, "" if none
}

// Tree is a finite ordered forest with exactly one root.
type Tree struct {
	Nodes []Node
	Root  int
}
