package engine

import (
	"fmt"

	"deckplan/internal/placeholder"
	"deckplan/internal/template"
)

// Inspect parses a template analysis and summarizes its layouts: index,
// name, category, and placeholder counts by type.
func (e *Engine) Inspect(req InspectRequest) (*InspectResult, error) {
	data, err := e.fs.ReadFile(req.TemplatePath)
	if err != nil {
		return nil, fmt.Errorf("%w: template analysis %s: %v", ErrInputUnreadable, req.TemplatePath, err)
	}

	desc, err := template.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template analysis %s: %w", req.TemplatePath, err)
	}

	result := &InspectResult{
		TemplateName: desc.TemplateInfo.Name,
		SlideMaster:  desc.TemplateInfo.SlideMaster,
		AnalysisDate: desc.TemplateInfo.AnalysisDate,
	}

	for _, layout := range desc.Layouts {
		summary := LayoutSummary{
			Index:        layout.Index,
			Name:         layout.Name,
			Category:     layout.Category,
			Placeholders: len(layout.Placeholders),
			TypeCounts:   make(map[string]int),
		}
		for _, ph := range layout.Placeholders {
			summary.TypeCounts[placeholder.TypeName(ph.TypeID)]++
		}
		result.Layouts = append(result.Layouts, summary)
	}

	return result, nil
}
