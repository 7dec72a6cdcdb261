// Package template models a template analysis document and indexes its
// layouts for placeholder addressing.
//
// A template analysis describes the layouts a presentation template exposes:
// each layout has a stable 1-based index, a name, an optional category tag,
// and a set of typed, positioned placeholder shapes. The analysis is produced
// by an external template inspector and consumed read-only.
//
// Key responsibilities:
//   - Parse analysis documents (JSONC: comments and trailing commas allowed)
//   - Build an immutable Index keyed by normalized layout name
//   - Assign deterministic ordinals to same-typed placeholders by position
package template

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/jsonc"
)

// ErrMalformedTemplate indicates the template analysis is structurally
// invalid (a layout missing its name or index). This is fatal to the whole
// conversion.
var ErrMalformedTemplate = errors.New("malformed template analysis")

// Description is a parsed template analysis document.
type Description struct {
	// TemplateInfo describes the analyzed template file.
	TemplateInfo Info `json:"template_info"`

	// Layouts is the ordered list of layouts in the template. Order is
	// significant: category fallback picks the first match in this order.
	Layouts []Layout `json:"layouts"`
}

// Info carries template-level metadata from the analyzer.
type Info struct {
	// Name is the template file name
	Name string `json:"name"`

	// AnalysisDate is when the template was analyzed
	AnalysisDate string `json:"analysis_date"`

	// SlideMaster is the name of the slide master, if reported
	SlideMaster string `json:"slide_master,omitempty"`
}

// Layout is one layout record from the template analysis.
type Layout struct {
	// Index is the 1-based position within the slide master's custom
	// layouts. It is the stable addressing handle exposed downstream and
	// is never recomputed.
	Index int `json:"index"`

	// Name is the layout's display name
	Name string `json:"name"`

	// Category is the layout's role tag (e.g. "title", "content").
	// Defaults to "content" when the analyzer omits it.
	Category string `json:"category"`

	// Placeholders is the set of placeholder shapes the layout exposes
	Placeholders []Placeholder `json:"placeholders"`
}

// Placeholder is a typed, positioned content slot within a layout.
type Placeholder struct {
	// TypeID is the PowerPoint placeholder type constant
	TypeID int `json:"type_id"`

	// Geometry is the shape's on-slide position
	Geometry Geometry `json:"geometry"`
}

// Geometry is the position of a placeholder shape.
type Geometry struct {
	Top  float64 `json:"top"`
	Left float64 `json:"left"`
}

// Parse strips JSONC comments and trailing commas from data, then unmarshals
// the result into a Description. Layouts without a category are tagged
// "content".
func Parse(data []byte) (*Description, error) {
	stripped := jsonc.ToJSON(data)

	var desc Description
	if err := json.Unmarshal(stripped, &desc); err != nil {
		return nil, fmt.Errorf("parsing template analysis: %w", err)
	}

	for i := range desc.Layouts {
		if desc.Layouts[i].Category == "" {
			desc.Layouts[i].Category = "content"
		}
	}

	return &desc, nil
}

// NormalizeName normalizes a layout or category name for case-insensitive
// comparison.
func NormalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
