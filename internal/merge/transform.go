package merge

import (
	"github.com/arolek/stepfuse/internal/assembly"
	"github.com/arolek/stepfuse/internal/entity"
)

// AttachGeometryUnderTransform synthesizes the placement chain that
// positions an absorbed source's geometry root inside the parent
// assembly's coordinate system: a CARTESIAN_POINT at the transform's
// origin, two DIRECTIONs (the rotated +X and +Z axes), an
// AXIS2_PLACEMENT_3D built from them, and an
// ITEM_DEFINED_TRANSFORMATION plus REPRESENTATION_RELATIONSHIP (with
// the transformation variant) linking geometryRoot into the target
// representation.
//
// Per spec.md §4.4/§9: the transform's 3x3 upper-left block is assumed
// orthogonal; column 0 is taken as ref_direction, column 2 as axis,
// and column 3's first three entries as the origin. Non-orthogonal
// matrices are undefined behavior — rejected upstream, before the
// merger ever sees them.
func (mg *Merger) AttachGeometryUnderTransform(geometryRoot entity.ID, parentRepresentation entity.ID, xf assembly.Transform) entity.ID {
	ox, oy, oz := xf.Origin()
	ax, ay, az := xf.RefDirection()
	zx, zy, zz := xf.Axis()

	pointID := mg.insert(entity.CartesianPoint("", ox, oy, oz))
	refDirID := mg.insert(entity.Direction("", ax, ay, az))
	axisID := mg.insert(entity.Direction("", zx, zy, zz))
	placementID := mg.insert(entity.Axis2Placement3D("", pointID, axisID, refDirID))

	transformID := mg.insert(entity.ItemDefinedTransformation("", placementID, placementID))
	relationshipID := mg.insert(entity.RepresentationRelationshipWithTransformation(
		"", "", geometryRoot, parentRepresentation, transformID))

	return relationshipID
}

// identityTransform is the zero-value-safe identity used when a node
// carries no explicit Transform.
var identityTransform = assembly.Transform{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// insert allocates the next id for rec, stores it, and returns the id.
func (mg *Merger) insert(rec entity.Record) entity.ID {
	rec.ID = mg.Model.Allocate()
	mg.Model.Insert(rec)
	return rec.ID
}
