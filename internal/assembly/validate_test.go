package assembly

import "testing"

func TestValidate_EmptyRootOnly(t *testing.T) {
	tree := &Tree{Nodes: []Node{{Label: "root"}}, Root: 0}
	if err := Validate(tree); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MultiParentRejected(t *testing.T) {
	tree := &Tree{
		Nodes: []Node{
			{Children: []int{1, 2}},
			{Children: []int{2}},
			{},
		},
		Root: 0,
	}
	err := Validate(tree)
	if err == nil {
		t.Fatal("expected a MultiParent error")
	}
	if ae, ok := err.(Error); !ok || ae.Kind != "MultiParent" {
		t.Errorf("err = %+v, want Kind=MultiParent", err)
	}
}

func TestValidate_CycleRejected(t *testing.T) {
	tree := &Tree{
		Nodes: []Node{
			{Children: []int{1}},
			{Children: []int{0}},
		},
		Root: 0,
	}
	if err := Validate(tree); err == nil {
		t.Fatal("expected a Cycle error")
	}
}

func TestValidate_DisconnectedCycleRejected(t *testing.T) {
	tree := &Tree{
		Nodes: []Node{
			{},              // root, no children
			{Children: []int{2}},
			{Children: []int{1}},
		},
		Root: 0,
	}
	err := Validate(tree)
	if err == nil {
		t.Fatal("expected a Cycle error for a cycle disconnected from root")
	}
	if ae, ok := err.(Error); !ok || ae.Kind != "Cycle" {
		t.Errorf("err = %+v, want Kind=Cycle", err)
	}
}

func TestValidate_LinkOnNonLeafRejected(t *testing.T) {
	tree := &Tree{
		Nodes: []Node{
			{Link: "cube.stp", Children: []int{1}},
			{},
		},
		Root: 0,
	}
	err := Validate(tree)
	if err == nil {
		t.Fatal("expected a LinkOnNonLeaf error")
	}
	if ae, ok := err.(Error); !ok || ae.Kind != "LinkOnNonLeaf" {
		t.Errorf("err = %+v, want Kind=LinkOnNonLeaf", err)
	}
}

func TestValidate_DuplicateChildEdgeRejected(t *testing.T) {
	tree := &Tree{
		Nodes: []Node{
			{Children: []int{1, 1}},
			{},
		},
		Root: 0,
	}
	if err := Validate(tree); err == nil {
		t.Fatal("expected a DuplicateChildEdge error")
	}
}

func TestToNode_WrongArityRejected(t *testing.T) {
	_, err := ToNode(RawNode{Transform: []float64{1, 2, 3}}, 0)
	if err == nil {
		t.Fatal("expected a WrongTransformArity error")
	}
}

func TestToNode_IdentityWhenEmpty(t *testing.T) {
	n, err := ToNode(RawNode{}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Transform != nil {
		t.Error("expected nil Transform for an empty RawNode.Transform")
	}
}
