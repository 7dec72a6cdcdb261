package engine

import (
	"encoding/json"
	"fmt"

	"deckplan/internal/plan"
	"deckplan/internal/vba"
)

// Script generates a macro script from a previously written plan document.
func (e *Engine) Script(req ScriptRequest) (*ScriptResult, error) {
	data, err := e.fs.ReadFile(req.PlanPath)
	if err != nil {
		return nil, fmt.Errorf("%w: plan %s: %v", ErrInputUnreadable, req.PlanPath, err)
	}

	var doc plan.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse plan %s: %w", req.PlanPath, err)
	}

	return e.generateScript(&doc, req.OutputPath, req.DebugSlide)
}

// generateScript renders a plan to script text and optionally writes the
// artifact. Shared by Script and Run so Run never re-reads the plan it just
// produced.
func (e *Engine) generateScript(doc *plan.Document, outputPath string, debugSlide int) (*ScriptResult, error) {
	gen := vba.NewGenerator(doc, vba.Options{
		DebugSlide: debugSlide,
		Clock:      e.clock,
	})
	script := gen.Generate()

	result := &ScriptResult{
		Script:      script,
		SlideCount:  len(doc.Slides),
		UsedLayouts: gen.UsedLayouts(),
	}

	if outputPath != "" {
		if err := e.fs.AtomicWrite(outputPath, []byte(script), 0644); err != nil {
			return nil, fmt.Errorf("failed to write script %s: %w", outputPath, err)
		}
		result.OutputPath = outputPath
	}

	return result, nil
}
