// Package placeholder parses user-facing placeholder keys into stable
// (type, ordinal) addresses.
//
// Outline authors reference placeholders by type name with an optional
// ordinal, e.g. "Title", "Body[1]". The bare form implies ordinal 0. The type
// name maps through a fixed closed table to the PowerPoint placeholder type
// constant; the ordinal ranks same-typed placeholders by on-slide position
// (top, then left), which makes an Address a deterministic handle into any
// layout.
package placeholder

import (
	"strconv"
	"strings"
)

// Type pairs a placeholder type ID with its canonical display name.
type Type struct {
	// ID is the PowerPoint placeholder type constant
	ID int

	// Canonical is the display name used in plan documents
	Canonical string
}

// types is the closed table of recognized placeholder types, keyed by
// case-folded base name. Unknown names are not addressable.
var types = map[string]Type{
	"title":       {ID: 1, Canonical: "Title"},
	"body":        {ID: 2, Canonical: "Body"},
	"centertitle": {ID: 3, Canonical: "CenterTitle"},
	"subtitle":    {ID: 4, Canonical: "Subtitle"},
	"object":      {ID: 7, Canonical: "Object"},
	"chart":       {ID: 8, Canonical: "Chart"},
	"table":       {ID: 9, Canonical: "Table"},
	"slideimage":  {ID: 13, Canonical: "SlideImage"},
	"picture":     {ID: 18, Canonical: "Picture"},
	"content":     {ID: 19, Canonical: "Content"},
}

// ResolveType maps a case-folded base name to its placeholder type. Returns
// false for names outside the closed table.
func ResolveType(base string) (Type, bool) {
	t, ok := types[base]
	return t, ok
}

// TypeName returns the canonical display name for a placeholder type ID, or
// "type_<id>" for IDs outside the closed table.
func TypeName(id int) string {
	for _, t := range types {
		if t.ID == id {
			return t.Canonical
		}
	}
	return "type_" + strconv.Itoa(id)
}

// Key is a parsed placeholder key.
type Key struct {
	// Raw is the original key as written in the outline
	Raw string

	// Base is the case-folded, trimmed type name
	Base string

	// Ordinal is the zero-based rank among same-typed placeholders.
	// Defaults to 0 when the key has no bracket suffix or the ordinal
	// text is invalid.
	Ordinal int

	// OrdinalInvalid reports that a bracket suffix was present but its
	// text did not parse as an integer.
	OrdinalInvalid bool

	// BadOrdinal holds the unparseable ordinal text when OrdinalInvalid
	// is set. May be empty, as in "Body[]".
	BadOrdinal string
}

// ParseKey parses a free-form placeholder key such as "Body" or "Body[1]".
//
// The input is trimmed first. A bracket suffix is recognized only when the
// key contains "[" and ends with "]"; anything else (including an
// unterminated "[") is treated whole as the base name with ordinal 0. An
// unparseable ordinal is recoverable: Ordinal defaults to 0 and BadOrdinal
// carries the offending text for diagnostics.
func ParseKey(raw string) Key {
	key := strings.TrimSpace(raw)

	open := strings.Index(key, "[")
	if open >= 0 && strings.HasSuffix(key, "]") {
		base := key[:open]
		text := key[open+1 : len(key)-1]

		ordinal, err := strconv.Atoi(text)
		if err != nil {
			return Key{Raw: key, Base: normalize(base), OrdinalInvalid: true, BadOrdinal: text}
		}
		return Key{Raw: key, Base: normalize(base), Ordinal: ordinal}
	}

	return Key{Raw: key, Base: normalize(key)}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Address uniquely identifies one placeholder within a resolved layout.
type Address struct {
	// Type is the canonical type name
	Type string `json:"type"`

	// TypeID is the placeholder type constant
	TypeID int `json:"type_id"`

	// Ordinal is the zero-based positional rank among same-typed
	// placeholders
	Ordinal int `json:"ordinal"`
}

// Less orders addresses by (TypeID, Ordinal), the sort contract for a plan's
// expected-placeholder list.
func (a Address) Less(b Address) bool {
	if a.TypeID != b.TypeID {
		return a.TypeID < b.TypeID
	}
	return a.Ordinal < b.Ordinal
}
