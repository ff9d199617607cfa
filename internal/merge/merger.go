// Package merge unions many parsed STEP models into one destination
// model, rewriting ids to avoid collisions, and synthesizes the
// product-structure entities that encode an assembly tree over the
// absorbed geometry.
package merge

import (
	"github.com/arolek/stepfuse/internal/entity"
)

// Warning is a non-fatal note raised during a merge — e.g. that a
// geometry root was picked heuristically. Warnings never abort a
// merge; the caller decides whether to surface them.
type Warning struct {
	Kind    string
	Message string
}

// Merger accumulates one destination Model by absorbing source models
// and synthesizing assembly entities over them. A Merger is not safe
// for concurrent use — its NextFreeID counter is the single mechanism
// that guarantees collision-free ids, and that only holds if
// absorption is serialized (spec.md §4.4, §5).
type Merger struct {
	Model    *entity.Model
	Warnings []Warning
}

// New allocates a fresh Merger with an empty DATA section, a header
// containing placeholder FILE_DESCRIPTION/FILE_NAME/FILE_SCHEMA
// entries, and NextFreeID 1.
func New() *Merger {
	m := entity.New()
	m.Header = []entity.Value{
		entity.Typed("FILE_DESCRIPTION",
			entity.ListVal(entity.String("")),
			entity.String("2;1"),
		),
		entity.Typed("FILE_NAME",
			entity.String(""),
			entity.String(""),
			entity.ListVal(),
			entity.ListVal(),
			entity.String(""),
			entity.String(""),
			entity.String(""),
		),
		entity.Typed("FILE_SCHEMA",
			entity.ListVal(entity.String("AUTOMOTIVE_DESIGN")),
		),
	}
	return &Merger{Model: m}
}

func (mg *Merger) warn(kind, message string) {
	mg.Warnings = append(mg.Warnings, Warning{Kind: kind, Message: message})
}

// Absorb inserts every record of src into mg's destination model under
// a fresh id mapping (old id -> newly allocated id), rewriting every
// embedded Ref through that mapping, and returns the mapping so the
// caller can locate specific absorbed entities (in particular, the
// geometry root via IdentifyGeometryRoot).
func (mg *Merger) Absorb(src *entity.Model) map[entity.ID]entity.ID {
	ids := make(map[entity.ID]entity.ID, len(src.Data))
	for _, oldID := range src.SortedIDs() {
		ids[oldID] = mg.Model.Allocate()
	}

	for _, oldID := range src.SortedIDs() {
		rec := src.Data[oldID]
		mg.Model.Insert(entity.Rewrite(rec, ids))
	}

	return ids
}

// Finalize writes the caller-supplied metadata into the FILE_NAME
// header entry.
func (mg *Merger) Finalize(meta entity.FileMetadata) {
	authors := make([]entity.Value, len(meta.Author))
	for i, a := range meta.Author {
		authors[i] = entity.String(a)
	}
	orgs := make([]entity.Value, len(meta.Organization))
	for i, o := range meta.Organization {
		orgs[i] = entity.String(o)
	}

	for i, h := range mg.Model.Header {
		if h.Kind == entity.KindTyped && h.Name == "FILE_NAME" {
			mg.Model.Header[i] = entity.Typed("FILE_NAME",
				entity.String(meta.Name),
				entity.String(meta.Timestamp),
				entity.ListVal(authors...),
				entity.ListVal(orgs...),
				entity.String(meta.PreprocessorVersion),
				entity.String(meta.OriginatingSystem),
				entity.String(meta.Authorization),
			)
		}
	}
}
