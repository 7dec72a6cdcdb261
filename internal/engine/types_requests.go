package engine

// PlanRequest represents a request to resolve an outline into a slide plan.
type PlanRequest struct {
	// OutlinePath is the path to the outline JSON document
	OutlinePath string

	// TemplatePath is the path to the template analysis JSON document
	TemplatePath string

	// OutputPath is where the plan is written. Empty means resolve only,
	// without writing an artifact.
	OutputPath string

	// RunID overrides the generated run identifier (used for reproducible
	// output)
	RunID string
}

// ScriptRequest represents a request to generate a macro script from a plan.
type ScriptRequest struct {
	// PlanPath is the path to the slide plan JSON document
	PlanPath string

	// OutputPath is where the script is written. Empty means generate
	// only, without writing an artifact.
	OutputPath string

	// DebugSlide, when ≥1, adds placeholder diagnostics for that slide
	DebugSlide int
}

// RunRequest represents a request to run the full conversion pipeline.
type RunRequest struct {
	// OutlinePath is the path to the outline JSON document
	OutlinePath string

	// TemplatePath is the path to the template analysis JSON document
	TemplatePath string

	// PlanOutput is where the intermediate plan is written
	PlanOutput string

	// ScriptOutput is where the generated script is written
	ScriptOutput string

	// DebugSlide, when ≥1, adds placeholder diagnostics for that slide
	DebugSlide int

	// SkipChecks disables the post-generation artifact checks
	SkipChecks bool

	// RunID overrides the generated run identifier
	RunID string
}

// ValidateRequest represents a request to validate workflow artifacts.
// Outline and template paths are required; plan and script are checked only
// when given.
type ValidateRequest struct {
	// OutlinePath is the path to the outline JSON document
	OutlinePath string

	// TemplatePath is the path to the template analysis JSON document
	TemplatePath string

	// PlanPath is an optional path to a generated plan
	PlanPath string

	// ScriptPath is an optional path to a generated script
	ScriptPath string
}

// InspectRequest represents a request for a template analysis summary.
type InspectRequest struct {
	// TemplatePath is the path to the template analysis JSON document
	TemplatePath string
}
