package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/arolek/stepfuse/internal/assembly"
)

// assemblyDoc is the on-disk JSON shape of an assembly tree. It exists
// only in cmd/stepfuse: assembly.RawNode is the lower-level per-node
// shape the internal package validates against, kept deliberately
// ignorant of any particular serialization format (spec.md §6).
type assemblyDoc struct {
	Root  int                `json:"root"`
	Nodes []assembly.RawNode `json:"nodes"`
}

func loadAssemblyTree(path string) (*assembly.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeAssemblyTree(f)
}

func decodeAssemblyTree(r io.Reader) (*assembly.Tree, error) {
	var doc assemblyDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}

	nodes := make([]assembly.Node, len(doc.Nodes))
	for i, raw := range doc.Nodes {
		n, err := assembly.ToNode(raw, i)
		if err != nil {
			return nil, err
		}
		nodes[i] = n
	}

	tree := &assembly.Tree{Nodes: nodes, Root: doc.Root}
	if err := assembly.Validate(tree); err != nil {
		return nil, err
	}
	return tree, nil
}
