package merge_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arolek/stepfuse/internal/assembly"
	"github.com/arolek/stepfuse/internal/entity"
	"github.com/arolek/stepfuse/internal/merge"
	"github.com/arolek/stepfuse/internal/part21"
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

func parseFixture(t *testing.T, src string) *entity.Model {
	t.Helper()
	m, err := part21.Parse(strings.NewReader(src), "fixture.stp")
	require.NoError(t, err, "parsing fixture")
	return m
}

func countType(m *entity.Model, typ string) int {
	n := 0
	for _, rec := range m.Data {
		if !rec.Complex && rec.Type == typ {
			n++
		}
	}
	return n
}

func TestBuildAssembly_EmptyAssembly(t *testing.T) {
	mg := merge.New()
	tree := &assembly.Tree{Nodes: []assembly.Node{{Label: "root"}}, Root: 0}

	err := mg.BuildAssembly(tree, func(string) (*entity.Model, error) {
		t.Fatal("resolver should not be called for a linkless tree")
		return nil, nil
	})
	require.NoError(t, err)

	assert.Equal(t, 1, countType(mg.Model, "PRODUCT"))
	assert.Equal(t, 0, countType(mg.Model, "NEXT_ASSEMBLY_USAGE_OCCURRENCE"))
}

func TestBuildAssembly_OneCubeIdentityTransform(t *testing.T) {
	mg := merge.New()
	tree := &assembly.Tree{
		Nodes: []assembly.Node{
			{Label: "root", Children: []int{1}},
			{Label: "cube", Link: "cube.stp"},
		},
		Root: 0,
	}

	err := mg.BuildAssembly(tree, func(link string) (*entity.Model, error) {
		require.Equal(t, "cube.stp", link)
		return parseFixture(t, cubeFixture), nil
	})
	require.NoError(t, err)

	assert.Equal(t, 2, countType(mg.Model, "PRODUCT"))
	assert.Equal(t, 1, countType(mg.Model, "NEXT_ASSEMBLY_USAGE_OCCURRENCE"))

	var found bool
	for _, rec := range mg.Model.Data {
		if rec.Type == "CARTESIAN_POINT" {
			found = true
			args := rec.Args[1].List
			assert.Equal(t, float64(0), args[0].Real)
			assert.Equal(t, float64(0), args[1].Real)
			assert.Equal(t, float64(0), args[2].Real)
		}
	}
	assert.True(t, found, "expected a synthesized CARTESIAN_POINT placement")
}

func TestBuildAssembly_Translation(t *testing.T) {
	mg := merge.New()
	xf := identityWithOrigin(-2, 0, 0)
	tree := &assembly.Tree{
		Nodes: []assembly.Node{
			{Label: "root", Children: []int{1}},
			{Label: "cube", Link: "cube.stp", Transform: &xf},
		},
		Root: 0,
	}

	err := mg.BuildAssembly(tree, func(string) (*entity.Model, error) {
		return parseFixture(t, cubeFixture), nil
	})
	require.NoError(t, err)

	var pointArgs []entity.Value
	var dirs [][]entity.Value
	ids := mg.Model.SortedIDs()
	for _, id := range ids {
		rec := mg.Model.Data[id]
		switch rec.Type {
		case "CARTESIAN_POINT":
			if rec.Args[0].Str == "" { // synthesized points carry an empty label
				pointArgs = rec.Args[1].List
			}
		case "DIRECTION":
			if rec.Args[0].Str == "" {
				dirs = append(dirs, rec.Args[1].List)
			}
		}
	}

	require.Len(t, pointArgs, 3)
	assert.Equal(t, float64(-2), pointArgs[0].Real)
	assert.Equal(t, float64(0), pointArgs[1].Real)
	assert.Equal(t, float64(0), pointArgs[2].Real)

	foundRefDir, foundAxis := false, false
	for _, d := range dirs {
		if d[0].Real == 1 && d[1].Real == 0 && d[2].Real == 0 {
			foundRefDir = true
		}
		if d[0].Real == 0 && d[1].Real == 0 && d[2].Real == 1 {
			foundAxis = true
		}
	}
	assert.True(t, foundRefDir, "expected direction (1,0,0) among %+v", dirs)
	assert.True(t, foundAxis, "expected direction (0,0,1) among %+v", dirs)
}

func TestBuildAssembly_TwoInstancesOfSameFile(t *testing.T) {
	mg := merge.New()
	xfA := identityWithOrigin(-2, 0, 0)
	xfB := identityWithOrigin(2, 0, 0)
	tree := &assembly.Tree{
		Nodes: []assembly.Node{
			{Label: "root", Children: []int{1, 2}},
			{Label: "cubeA", Link: "cube.stp", Transform: &xfA},
			{Label: "cubeB", Link: "cube.stp", Transform: &xfB},
		},
		Root: 0,
	}

	calls := 0
	err := mg.BuildAssembly(tree, func(string) (*entity.Model, error) {
		calls++
		return parseFixture(t, cubeFixture), nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, countType(mg.Model, "NEXT_ASSEMBLY_USAGE_OCCURRENCE"))

	require.NoError(t, mg.Model.CheckReferentialClosure(), "merged model should have referential closure")

	ids := mg.Model.SortedIDs()
	for i := 1; i < len(ids); i++ {
		require.Equal(t, ids[i-1]+1, ids[i], "ids are not contiguous: %v", ids)
	}
}

func TestBuildAssembly_MetadataPropagation(t *testing.T) {
	mg := merge.New()
	tree := &assembly.Tree{
		Nodes: []assembly.Node{
			{Label: "root", Metadata: []assembly.KV{{Key: "k1", Value: "v1"}, {Key: "k2", Value: "v2"}}},
		},
		Root: 0,
	}

	require.NoError(t, mg.BuildAssembly(tree, nil))

	assert.Equal(t, 2, countType(mg.Model, "PROPERTY_DEFINITION"))

	seen := map[string]bool{}
	for _, rec := range mg.Model.Data {
		if rec.Type == "PROPERTY_DEFINITION" {
			seen[rec.Args[0].Str+"/"+rec.Args[1].Str] = true
		}
	}
	assert.True(t, seen["k1/v1"], "expected k1/v1 among property definitions, got %v", seen)
	assert.True(t, seen["k2/v2"], "expected k2/v2 among property definitions, got %v", seen)
}

func identityWithOrigin(x, y, z float64) assembly.Transform {
	return assembly.Transform{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}
