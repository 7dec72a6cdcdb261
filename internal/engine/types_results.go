package engine

import (
	"deckplan/internal/plan"
	"deckplan/internal/validate"
)

// PlanResult represents the result of resolving an outline into a plan.
type PlanResult struct {
	// Plan is the resolved plan document. Non-nil even when resolution
	// recorded errors; the validation block carries them.
	Plan *plan.Document

	// OutputPath is where the plan was written (empty if no artifact was
	// requested)
	OutputPath string

	// Errors are the slide-local resolution errors
	Errors []string

	// Warnings are the non-blocking resolution findings
	Warnings []string
}

// ScriptResult represents the result of generating a macro script.
type ScriptResult struct {
	// Script is the generated script text
	Script string

	// OutputPath is where the script was written (empty if no artifact
	// was requested)
	OutputPath string

	// SlideCount is the number of slides the script creates
	SlideCount int

	// UsedLayouts lists the layout indices the script references,
	// ascending
	UsedLayouts []int
}

// Check is one named artifact check and its outcome.
type Check struct {
	// Name describes the check
	Name string

	// Passed reports whether the check succeeded
	Passed bool
}

// RunResult represents the result of the full conversion pipeline.
type RunResult struct {
	// Preflight holds the input validation reports, keyed by stage
	// ("outline", "template")
	Preflight map[string]validate.Report

	// Plan is the plan stage result (nil if preflight failed)
	Plan *PlanResult

	// Script is the script stage result (nil if the plan stage failed)
	Script *ScriptResult

	// Checks are the post-generation artifact checks (empty when skipped)
	Checks []Check
}

// ValidateResult represents the result of standalone artifact validation.
type ValidateResult struct {
	// Stages lists the validated stages in order
	Stages []string

	// Reports holds the per-stage validation reports
	Reports map[string]validate.Report

	// Overall is the aggregate across all stages
	Overall validate.Overall
}

// InspectResult summarizes a template analysis document.
type InspectResult struct {
	// TemplateName is the analyzed template's file name
	TemplateName string

	// SlideMaster is the template's slide master name
	SlideMaster string

	// AnalysisDate is when the template was analyzed
	AnalysisDate string

	// Layouts summarizes each layout in analysis order
	Layouts []LayoutSummary
}

// LayoutSummary describes one layout for inspection output.
type LayoutSummary struct {
	// Index is the layout's stable 1-based index
	Index int

	// Name is the layout's name
	Name string

	// Category is the layout's category
	Category string

	// Placeholders is the total placeholder count
	Placeholders int

	// TypeCounts maps canonical placeholder type names to their counts
	TypeCounts map[string]int
}
