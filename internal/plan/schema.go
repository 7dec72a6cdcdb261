// Package plan defines the slide plan document schema.
//
// A slide plan is the deterministic intermediate artifact between an outline
// and a generated macro script: every placeholder reference has been resolved
// to a concrete (type_id, ordinal) address against a chosen layout, content
// values are classified and validated, and all diagnostics from resolution
// are embedded in the document's validation block.
package plan

import (
	"deckplan/internal/placeholder"
)

// SelectedLayout.Reason values.
const (
	// ReasonExactNameMatch means the requested layout name was found in
	// the template index.
	ReasonExactNameMatch = "exact_name_match"

	// ReasonCategoryFallback means the requested name was absent and a
	// layout was substituted by category.
	ReasonCategoryFallback = "category_fallback"
)

// Addressing and fill-policy contract markers carried per slide so the
// script generator (and any other consumer) can verify its assumptions.
const (
	AddressingByTypeThenOrdinal = "by_type_then_ordinal"
	FillPolicyStrictMatch       = "strict_match"
)

// Document is a complete slide plan.
type Document struct {
	// Meta describes the inputs and provenance of this plan
	Meta Meta `json:"meta"`

	// LayoutStrategy maps named global layout roles to resolved layout
	// indices
	LayoutStrategy map[string]int `json:"layout_strategy"`

	// Slides is the ordered list of resolved slides
	Slides []Slide `json:"slides"`

	// Validation carries the diagnostics accumulated during resolution
	Validation Validation `json:"validation"`

	// LayoutUsage counts slides per selected layout name
	LayoutUsage map[string]int `json:"layout_usage_summary"`
}

// Meta is plan provenance metadata.
type Meta struct {
	// TemplateName is the analyzed template's file name
	TemplateName string `json:"template_name"`

	// AnalysisDate is when the template was analyzed
	AnalysisDate string `json:"analysis_date"`

	// TotalLayouts is the number of layouts in the template analysis
	TotalLayouts int `json:"total_layouts"`

	// PlatformTargets lists the platforms the plan is generated for
	PlatformTargets []string `json:"platform_targets"`

	// PlannerVersion identifies the planner that produced this document
	PlannerVersion string `json:"planner_version"`

	// CreatedAt is the UTC generation timestamp (RFC 3339)
	CreatedAt string `json:"created_at"`

	// RunID uniquely identifies the conversion run
	RunID string `json:"run_id"`

	// TemplateFingerprint is the SHA-256 of the template analysis input
	TemplateFingerprint string `json:"template_fingerprint,omitempty"`

	// OutlineFingerprint is the SHA-256 of the outline input
	OutlineFingerprint string `json:"outline_fingerprint,omitempty"`
}

// Slide is one resolved slide.
type Slide struct {
	// SlideNumber is the 1-based slide position
	SlideNumber int `json:"slide_number"`

	// SlideTitle is the extracted or synthesized slide title
	SlideTitle string `json:"slide_title"`

	// SelectedLayout identifies the concrete layout chosen for this slide
	SelectedLayout SelectedLayout `json:"selected_layout"`

	// Addressing names the placeholder addressing contract
	Addressing string `json:"addressing"`

	// FillPolicy names the placeholder matching policy
	FillPolicy string `json:"fill_policy"`

	// PlaceholdersExpected lists the addresses this slide requires,
	// deduplicated and sorted by (type_id, ordinal)
	PlaceholdersExpected []placeholder.Address `json:"placeholders_expected"`

	// PlatformHints carries per-slide generation hints
	PlatformHints PlatformHints `json:"platform_hints"`

	// ContentMap is the resolved content, in outline document order
	ContentMap []ContentItem `json:"content_map"`
}

// SelectedLayout records how a slide's layout was chosen.
type SelectedLayout struct {
	// Name is the layout's original name
	Name string `json:"name"`

	// Index is the layout's stable 1-based index
	Index int `json:"index"`

	// Reason is how the layout was matched (exact_name_match or
	// category_fallback)
	Reason string `json:"reason"`
}

// PlatformHints are per-slide generation hints for the script stage.
type PlatformHints struct {
	// MacSafe indicates the slide uses only macOS-compatible APIs
	MacSafe bool `json:"mac_safe"`

	// ChartAPI names the chart creation API to use
	ChartAPI string `json:"chart_api"`

	// TextAPI names the text-setting strategy to use
	TextAPI string `json:"text_api"`
}

// DefaultPlatformHints returns the hints applied to every generated slide.
func DefaultPlatformHints() PlatformHints {
	return PlatformHints{
		MacSafe:  true,
		ChartAPI: "AddChart",
		TextAPI:  "TextFrame2_with_fallback",
	}
}

// Validation is the diagnostics block of a plan.
type Validation struct {
	// Checks names the validations the planner applied
	Checks []string `json:"checks"`

	// Errors are the recoverable errors recorded during resolution.
	// A non-empty list means the conversion failed as a whole.
	Errors []string `json:"errors"`

	// Warnings are advisories that never block output
	Warnings []string `json:"warnings"`
}

// PlannerChecks is the fixed list of checks the planner applies to every
// plan.
func PlannerChecks() []string {
	return []string{
		"indices_in_range",
		"placeholders_compatible",
		"platform_hints_applied",
		"content_fidelity_exact",
	}
}
