package driver_test

import (
	"io"
	"strings"
	"testing"

	"github.com/arolek/stepfuse/internal/assembly"
	"github.com/arolek/stepfuse/internal/driver"
	"github.com/arolek/stepfuse/internal/entity"
)

const cubeFixture = `ISO-10303-21;
HEADER;
ENDSEC;
DATA;
#1=CARTESIAN_POINT('', (0.0, 0.0, 0.0));
#2=DIRECTION('', (0.0, 0.0, 1.0));
#3=DIRECTION('', (1.0, 0.0, 0.0));
#4=AXIS2_PLACEMENT_3D('', #1, #2, #3);
#5=SHAPE_REPRESENTATION('cube', (#4), #6);
#6=GEOMETRIC_REPRESENTATION_CONTEXT(3);
ENDSEC;
END-ISO-10303-21;
`

type stringReadCloser struct{ io.Reader }

func (stringReadCloser) Close() error { return nil }

func TestCompose_Success(t *testing.T) {
	tree := &assembly.Tree{
		Nodes: []assembly.Node{
			{Label: "root", Children: []int{1}},
			{Label: "cube", Link: "cube.stp"},
		},
		Root: 0,
	}

	resolve := func(link string) (io.ReadCloser, error) {
		return stringReadCloser{strings.NewReader(cubeFixture)}, nil
	}

	m, warnings, err := driver.Compose(tree, resolve, entity.FileMetadata{Name: "out.stp"}, nil)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if m == nil {
		t.Fatal("Compose returned a nil model")
	}
	if err := m.CheckReferentialClosure(); err != nil {
		t.Errorf("composed model is not referentially closed: %v", err)
	}
	_ = warnings
}

func TestCompose_ResolveFailurePropagates(t *testing.T) {
	tree := &assembly.Tree{
		Nodes: []assembly.Node{
			{Label: "root", Children: []int{1}},
			{Label: "missing", Link: "missing.stp"},
		},
		Root: 0,
	}

	resolve := func(link string) (io.ReadCloser, error) {
		return nil, io.ErrUnexpectedEOF
	}

	_, _, err := driver.Compose(tree, resolve, entity.FileMetadata{}, nil)
	if err == nil {
		t.Fatal("expected Compose to fail when the resolver fails")
	}
	linkErr, ok := err.(driver.LinkError)
	if !ok {
		t.Fatalf("expected driver.LinkError, got %T: %v", err, err)
	}
	if linkErr.Kind != "Resolve" {
		t.Errorf("LinkError.Kind = %q, want %q", linkErr.Kind, "Resolve")
	}
}

func TestCompose_InvalidTreeRejected(t *testing.T) {
	tree := &assembly.Tree{
		Nodes: []assembly.Node{{Label: "root", Children: []int{5}}},
		Root:  0,
	}

	_, _, err := driver.Compose(tree, nil, entity.FileMetadata{}, nil)
	if err == nil {
		t.Fatal("expected Compose to reject an out-of-range child index")
	}
}
