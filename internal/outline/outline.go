// Package outline models the user-authored presentation outline.
//
// An outline lists slides in presentation order; each slide names a template
// layout and maps placeholder keys ("Title", "Body[1]") to content values.
// Outlines are authored as JSONC (comments and trailing commas allowed).
//
// Placeholder maps preserve document order: the order keys appear in the
// outline is the order content items land in the generated plan, which keeps
// plan output deterministic and diffs stable.
package outline

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"
)

// Document is a parsed outline.
type Document struct {
	// Meta carries presentation-level metadata
	Meta Meta `json:"meta"`

	// Slides is the ordered list of slides to generate
	Slides []Slide `json:"slides"`
}

// Meta is presentation-level outline metadata.
type Meta struct {
	// Title is the presentation title, used as the slide 1 title fallback
	Title string `json:"title"`
}

// Slide is one slide description from the outline.
type Slide struct {
	// Layout is the requested template layout name
	Layout string `json:"layout"`

	// FallbackCategory optionally names a layout category to substitute
	// when Layout is not present in the template
	FallbackCategory string `json:"fallback_category,omitempty"`

	// Placeholders maps placeholder keys to content values
	Placeholders PlaceholderMap `json:"placeholders"`
}

// Entry is one key/value pair from a slide's placeholder map.
type Entry struct {
	// Key is the placeholder key as written
	Key string

	// Value is the raw content value
	Value any
}

// PlaceholderMap is an ordered map of placeholder keys to content values.
// Iteration order is document order; a duplicated key keeps its first
// position with the last value.
type PlaceholderMap struct {
	entries []Entry
	index   map[string]int
}

// UnmarshalJSON decodes a JSON object while preserving key order.
func (m *PlaceholderMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("placeholders must be an object")
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string)

		var value any
		if err := dec.Decode(&value); err != nil {
			return err
		}
		m.Set(key, value)
	}

	// closing '}'
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// Set inserts or replaces the value for a key.
func (m *PlaceholderMap) Set(key string, value any) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[key]; ok {
		m.entries[i].Value = value
		return
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, Entry{Key: key, Value: value})
}

// Get returns the value for a key.
func (m *PlaceholderMap) Get(key string) (any, bool) {
	if m.index == nil {
		return nil, false
	}
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return m.entries[i].Value, true
}

// Entries returns the key/value pairs in document order.
func (m *PlaceholderMap) Entries() []Entry {
	return m.entries
}

// Len returns the number of distinct keys.
func (m *PlaceholderMap) Len() int {
	return len(m.entries)
}

// Parse strips JSONC comments and trailing commas from data, then unmarshals
// the result into a Document.
func Parse(data []byte) (*Document, error) {
	stripped := jsonc.ToJSON(data)

	var doc Document
	if err := json.Unmarshal(stripped, &doc); err != nil {
		return nil, fmt.Errorf("parsing outline: %w", err)
	}

	return &doc, nil
}
