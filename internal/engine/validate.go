package engine

import (
	"fmt"

	"deckplan/internal/validate"
)

// Validate runs structural validation over the given artifacts. Outline and
// template analysis are always checked; plan and script are checked only
// when their paths are set.
//
// A failed check is reported through the result, not the error: the error is
// non-nil only when an artifact cannot be read at all.
func (e *Engine) Validate(req ValidateRequest) (*ValidateResult, error) {
	result := &ValidateResult{Reports: make(map[string]validate.Report)}

	outlineData, err := e.fs.ReadFile(req.OutlinePath)
	if err != nil {
		return nil, fmt.Errorf("%w: outline %s: %v", ErrInputUnreadable, req.OutlinePath, err)
	}
	result.Stages = append(result.Stages, "outline")
	result.Reports["outline"] = validate.Outline(outlineData)

	templateData, err := e.fs.ReadFile(req.TemplatePath)
	if err != nil {
		return nil, fmt.Errorf("%w: template analysis %s: %v", ErrInputUnreadable, req.TemplatePath, err)
	}
	result.Stages = append(result.Stages, "template")
	result.Reports["template"] = validate.TemplateAnalysis(templateData)

	if req.PlanPath != "" {
		planData, err := e.fs.ReadFile(req.PlanPath)
		if err != nil {
			return nil, fmt.Errorf("%w: plan %s: %v", ErrInputUnreadable, req.PlanPath, err)
		}
		result.Stages = append(result.Stages, "plan")
		result.Reports["plan"] = validate.SlidePlan(planData)
	}

	if req.ScriptPath != "" {
		scriptData, err := e.fs.ReadFile(req.ScriptPath)
		if err != nil {
			return nil, fmt.Errorf("%w: script %s: %v", ErrInputUnreadable, req.ScriptPath, err)
		}
		result.Stages = append(result.Stages, "script")
		result.Reports["script"] = validate.Script(string(scriptData))
	}

	result.Overall = validate.Summarize(result.Stages, result.Reports)
	return result, nil
}
