package template

import (
	"fmt"
	"sort"
)

// Index is an immutable, queryable view of a template's layouts, keyed by
// normalized layout name. It answers "does layout L exist, and what
// placeholders of type T does it have, in what positional order?".
type Index struct {
	byName map[string]*IndexedLayout

	// order preserves template-description order for category fallback
	order []*IndexedLayout
}

// IndexedLayout is a layout with its placeholders pre-grouped by type and
// sorted by position.
type IndexedLayout struct {
	// Index is the layout's stable 1-based index from the analysis
	Index int

	// Name is the layout's original (un-normalized) name
	Name string

	// Category is the layout's role tag
	Category string

	// ByType maps a placeholder type ID to that type's placeholders sorted
	// by (top, left) ascending. The sort order IS the ordinal contract:
	// ordinal k of type T always denotes the k-th entry of ByType[T].
	ByType map[int][]Placeholder
}

// BuildIndex builds an Index from a template description.
//
// Layout names are normalized (trimmed, case-folded) as lookup keys; when two
// layouts normalize to the same key the last one wins. Placeholders are
// grouped by type ID and sorted by (top, left) ascending with no tolerance,
// so ordinal assignment is reproducible regardless of input order.
//
// Returns ErrMalformedTemplate if a layout is missing its name or index.
func BuildIndex(desc *Description) (*Index, error) {
	idx := &Index{
		byName: make(map[string]*IndexedLayout, len(desc.Layouts)),
		order:  make([]*IndexedLayout, 0, len(desc.Layouts)),
	}

	for i, layout := range desc.Layouts {
		if layout.Name == "" {
			return nil, fmt.Errorf("layout %d: missing name: %w", i, ErrMalformedTemplate)
		}
		if layout.Index < 1 {
			return nil, fmt.Errorf("layout %q: missing index: %w", layout.Name, ErrMalformedTemplate)
		}

		byType := make(map[int][]Placeholder)
		for _, ph := range layout.Placeholders {
			byType[ph.TypeID] = append(byType[ph.TypeID], ph)
		}
		for typeID := range byType {
			phs := byType[typeID]
			sort.SliceStable(phs, func(a, b int) bool {
				if phs[a].Geometry.Top != phs[b].Geometry.Top {
					return phs[a].Geometry.Top < phs[b].Geometry.Top
				}
				return phs[a].Geometry.Left < phs[b].Geometry.Left
			})
		}

		indexed := &IndexedLayout{
			Index:    layout.Index,
			Name:     layout.Name,
			Category: layout.Category,
			ByType:   byType,
		}

		// Last writer wins on duplicate normalized names.
		idx.byName[NormalizeName(layout.Name)] = indexed
		idx.order = append(idx.order, indexed)
	}

	return idx, nil
}

// Lookup returns the layout registered under the given name (normalized
// before lookup), or false if no layout matches.
func (x *Index) Lookup(name string) (*IndexedLayout, bool) {
	layout, ok := x.byName[NormalizeName(name)]
	return layout, ok
}

// FindByCategory returns the first layout in template-description order whose
// category matches (case-insensitively), or false if none does. Used as a
// fallback target when an exact name lookup fails.
func (x *Index) FindByCategory(category string) (*IndexedLayout, bool) {
	want := NormalizeName(category)
	for _, layout := range x.order {
		if NormalizeName(layout.Category) == want {
			return layout, true
		}
	}
	return nil, false
}

// Names returns the normalized layout names in template-description order.
// Duplicate normalized names appear once.
func (x *Index) Names() []string {
	seen := make(map[string]bool, len(x.order))
	names := make([]string, 0, len(x.order))
	for _, layout := range x.order {
		name := NormalizeName(layout.Name)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// Len returns the number of layouts indexed (including duplicates collapsed
// by normalized name).
func (x *Index) Len() int {
	return len(x.order)
}

// Placeholders returns the placeholders of the given type in ordinal order.
func (l *IndexedLayout) Placeholders(typeID int) []Placeholder {
	return l.ByType[typeID]
}
