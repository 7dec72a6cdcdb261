package engine

import (
	"fmt"
	"strconv"
	"strings"

	"deckplan/internal/validate"
)

// Run executes the full pipeline: preflight input validation, plan
// resolution, script generation, and (unless skipped) artifact checks on the
// generated script.
//
// The pipeline stops at the first failing stage; the returned RunResult
// carries everything produced up to that point.
func (e *Engine) Run(req RunRequest) (*RunResult, error) {
	result := &RunResult{}

	// Preflight: structural checks on both inputs before any work.
	outlineData, err := e.fs.ReadFile(req.OutlinePath)
	if err != nil {
		return nil, fmt.Errorf("%w: outline %s: %v", ErrInputUnreadable, req.OutlinePath, err)
	}
	templateData, err := e.fs.ReadFile(req.TemplatePath)
	if err != nil {
		return nil, fmt.Errorf("%w: template analysis %s: %v", ErrInputUnreadable, req.TemplatePath, err)
	}

	result.Preflight = map[string]validate.Report{
		"outline":  validate.Outline(outlineData),
		"template": validate.TemplateAnalysis(templateData),
	}
	for _, stage := range []string{"outline", "template"} {
		if !result.Preflight[stage].Valid {
			return result, fmt.Errorf("%w: %s", ErrPreflightFailed, stage)
		}
	}

	// Stage 1: outline → plan. The plan artifact is written even when
	// resolution records errors, but errors block the script stage.
	planResult, err := e.Plan(PlanRequest{
		OutlinePath:  req.OutlinePath,
		TemplatePath: req.TemplatePath,
		OutputPath:   req.PlanOutput,
		RunID:        req.RunID,
	})
	result.Plan = planResult
	if err != nil {
		return result, err
	}

	// Stage 2: plan → script.
	scriptResult, err := e.generateScript(planResult.Plan, req.ScriptOutput, req.DebugSlide)
	if err != nil {
		return result, err
	}
	result.Script = scriptResult

	// Stage 3: artifact checks on the generated script.
	if !req.SkipChecks {
		result.Checks = scriptChecks(planResult, scriptResult)
		for _, check := range result.Checks {
			if !check.Passed {
				return result, fmt.Errorf("%w: %s", ErrArtifactCheckFailed, check.Name)
			}
		}
	}

	return result, nil
}

// scriptChecks verifies the generated script's structural contract: a Main
// entry point, operating on the active presentation, and every layout the
// plan selected actually referenced.
func scriptChecks(planResult *PlanResult, scriptResult *ScriptResult) []Check {
	script := scriptResult.Script

	checks := []Check{
		{Name: "Main subroutine present", Passed: strings.Contains(script, "Sub Main()")},
		{Name: "Uses ActivePresentation", Passed: strings.Contains(script, "Application.ActivePresentation")},
		{Name: "Does not create a new presentation", Passed: !strings.Contains(script, "Application.Presentations.Add")},
	}

	seen := make(map[int]bool)
	for _, slide := range planResult.Plan.Slides {
		index := slide.SelectedLayout.Index
		if seen[index] {
			continue
		}
		seen[index] = true
		checks = append(checks, Check{
			Name:   fmt.Sprintf("Layout %d referenced", index),
			Passed: strings.Contains(script, "CacheGet("+strconv.Itoa(index)+")"),
		})
	}

	return checks
}
