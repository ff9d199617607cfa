package assembly

import "fmt"

// Error reports a malformed assembly tree: a cycle, a node claimed by
// more than one parent, a link on a non-leaf node, or a transform of
// the wrong arity.
type Error struct {
	Kind      string
	NodeIndex int
	Message   string
}

func (e Error) Error() string {
	return fmt.Sprintf("assembly error (%s) at node %d: %s", e.Kind, e.NodeIndex, e.Message)
}
