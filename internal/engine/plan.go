package engine

import (
	"encoding/json"
	"fmt"

	"deckplan/internal/outline"
	"deckplan/internal/planner"
	"deckplan/internal/template"
)

// Plan resolves an outline against a template analysis and, when an output
// path is given, writes the plan document artifact.
//
// Resolution errors do not abort the operation: the plan artifact is still
// written with its validation block populated, and the wrapped error
// (planner.ErrPlanInvalid) is returned alongside the result so callers can
// surface everything at once. Fatal errors (malformed template, unresolvable
// strategy role) return a nil result.
func (e *Engine) Plan(req PlanRequest) (*PlanResult, error) {
	outlineData, err := e.fs.ReadFile(req.OutlinePath)
	if err != nil {
		return nil, fmt.Errorf("%w: outline %s: %v", ErrInputUnreadable, req.OutlinePath, err)
	}
	templateData, err := e.fs.ReadFile(req.TemplatePath)
	if err != nil {
		return nil, fmt.Errorf("%w: template analysis %s: %v", ErrInputUnreadable, req.TemplatePath, err)
	}

	doc, err := outline.Parse(outlineData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse outline %s: %w", req.OutlinePath, err)
	}
	desc, err := template.Parse(templateData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template analysis %s: %w", req.TemplatePath, err)
	}

	resolver, err := planner.New(desc, doc, planner.Options{
		PlannerVersion:      e.cfg.PlannerVersion,
		PlatformTargets:     e.cfg.PlatformTargets,
		Strategy:            e.strategy(),
		Clock:               e.clock,
		RunID:               req.RunID,
		TemplateFingerprint: e.hasher.Sum(templateData),
		OutlineFingerprint:  e.hasher.Sum(outlineData),
	})
	if err != nil {
		return nil, err
	}

	planDoc, resolveErr := resolver.Resolve()
	if planDoc == nil {
		return nil, resolveErr
	}

	errs, warnings := resolver.Diagnostics()
	result := &PlanResult{
		Plan:     planDoc,
		Errors:   errs,
		Warnings: warnings,
	}

	if req.OutputPath != "" {
		data, err := json.MarshalIndent(planDoc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode plan: %w", err)
		}
		data = append(data, '\n')
		if err := e.fs.AtomicWrite(req.OutputPath, data, 0644); err != nil {
			return nil, fmt.Errorf("failed to write plan %s: %w", req.OutputPath, err)
		}
		result.OutputPath = req.OutputPath
	}

	return result, resolveErr
}
