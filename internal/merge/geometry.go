package merge

import (
	"github.com/arolek/stepfuse/internal/entity"
)

// shapeRepresentationTypes are the entity types treated as
// representation roots when identifying a freshly absorbed source's
// geometric content. SHAPE_REPRESENTATION is the common AP214/AP242
// case; the others are accepted so schemas that name their top-level
// representation differently still resolve.
var shapeRepresentationTypes = map[string]bool{
	"SHAPE_REPRESENTATION":                     true,
	"ADVANCED_BREP_SHAPE_REPRESENTATION":       true,
	"MANIFOLD_SURFACE_SHAPE_REPRESENTATION":    true,
	"GEOMETRICALLY_BOUNDED_SURFACE_SHAPE_REPRESENTATION": true,
}

// IdentifyGeometryRoot returns the id of the entity that represents a
// freshly absorbed source's geometric content at the top of its
// product-structure hierarchy.
//
// The selection rule (spec.md §4.4, §9 — the open question this spec
// resolves): scan the absorbed records, in ascending *original* id
// order, for the first SHAPE_REPRESENTATION-shaped entity. If none is
// found, fall back to the last *_REPRESENTATION-typed entity absorbed,
// and record a Warning — the fallback path is a heuristic, not a
// schema guarantee.
func (mg *Merger) IdentifyGeometryRoot(ids map[entity.ID]entity.ID, src *entity.Model) entity.ID {
	var lastRepresentation entity.ID

	for _, oldID := range src.SortedIDs() {
		rec := src.Data[oldID]
		if rec.Complex {
			continue
		}
		if shapeRepresentationTypes[rec.Type] {
			return ids[oldID]
		}
		if len(rec.Type) > 15 && rec.Type[len(rec.Type)-15:] == "_REPRESENTATION" {
			lastRepresentation = ids[oldID]
		}
	}

	if lastRepresentation != 0 {
		mg.warn("GeometryRootHeuristic", "no SHAPE_REPRESENTATION found; falling back to the last *_REPRESENTATION entity absorbed")
		return lastRepresentation
	}

	mg.warn("GeometryRootHeuristic", "no representation-typed entity found in absorbed source; geometry root is unresolved")
	return 0
}
