package entity

import "sort"

// Model is a parsed or merged Part 21 exchange structure: header
// entries, the DATA section keyed by id, and the next id to allocate.
//
// Invariant: every Ref reachable from any Record in Data must name a
// key present in Data. Parse and merge both enforce this before
// returning a Model to their caller.
type Model struct {
	Header     []Value // Typed values, in header order
	Data       map[ID]Record
	NextFreeID ID
}

// New returns an empty Model with no header entries and NextFreeID 1.
func New() *Model {
	return &Model{
		Data:       make(map[ID]Record),
		NextFreeID: 1,
	}
}

// SortedIDs returns the Data keys in ascending order.
func (m *Model) SortedIDs() []ID {
	ids := make([]ID, 0, len(m.Data))
	for id := range m.Data {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// CheckReferentialClosure reports the first dangling Ref found in Data,
// if any.
func (m *Model) CheckReferentialClosure() error {
	for _, id := range m.SortedIDs() {
		rec := m.Data[id]
		for _, ref := range Traverse(rec) {
			if _, ok := m.Data[ref]; !ok {
				return RefError{From: rec.ID, Target: ref}
			}
		}
	}
	return nil
}

// Insert assigns rec its id (rec.ID must already be set by the
// caller), stores it, and advances NextFreeID if needed.
func (m *Model) Insert(rec Record) {
	m.Data[rec.ID] = rec
	if rec.ID >= m.NextFreeID {
		m.NextFreeID = rec.ID + 1
	}
}

// Allocate returns the next free id and advances the counter. This is
// the single mechanism — per model — that guarantees collision-free
// ids across interleaved absorption and synthesis.
func (m *Model) Allocate() ID {
	id := m.NextFreeID
	m.NextFreeID++
	return id
}
