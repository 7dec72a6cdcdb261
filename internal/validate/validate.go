// Package validate performs structural preflight checks on workflow
// artifacts.
//
// These checks are intentionally shallow: they work on generic decoded JSON
// and catch shape problems (missing fields, wrong value types) before the
// planner or script generator runs. Full semantic resolution stays in the
// planner.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/jsonc"

	"deckplan/internal/placeholder"
)

// Report is the outcome of validating one artifact.
type Report struct {
	// Valid is true when no errors were recorded
	Valid bool `json:"valid"`

	// Errors are problems that make the artifact unusable
	Errors []string `json:"errors"`

	// Warnings are suspicious but non-blocking findings
	Warnings []string `json:"warnings"`

	// Info are informational observations
	Info []string `json:"info"`

	// Summary counts the messages above
	Summary Summary `json:"summary"`
}

// Summary counts report messages by severity.
type Summary struct {
	ErrorCount   int `json:"error_count"`
	WarningCount int `json:"warning_count"`
	InfoCount    int `json:"info_count"`
}

// collector accumulates messages while a check runs.
type collector struct {
	errors   []string
	warnings []string
	info     []string
}

func (c *collector) errorf(format string, args ...any) {
	c.errors = append(c.errors, fmt.Sprintf(format, args...))
}

func (c *collector) warnf(format string, args ...any) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
}

func (c *collector) infof(format string, args ...any) {
	c.info = append(c.info, fmt.Sprintf(format, args...))
}

func (c *collector) report() Report {
	return Report{
		Valid:    len(c.errors) == 0,
		Errors:   append([]string{}, c.errors...),
		Warnings: append([]string{}, c.warnings...),
		Info:     append([]string{}, c.info...),
		Summary: Summary{
			ErrorCount:   len(c.errors),
			WarningCount: len(c.warnings),
			InfoCount:    len(c.info),
		},
	}
}

func decode(data []byte, out any) error {
	return json.Unmarshal(jsonc.ToJSON(data), out)
}

// Outline checks an outline document's structure.
func Outline(data []byte) Report {
	var c collector

	var outline map[string]any
	if err := decode(data, &outline); err != nil {
		c.errorf("Failed to load outline: %v", err)
		return c.report()
	}

	slidesValue, ok := outline["slides"]
	if !ok {
		c.errorf("Missing 'slides' field in outline")
	}
	slides, isList := slidesValue.([]any)
	if ok && !isList {
		c.errorf("'slides' must be an array")
	}
	if isList && len(slides) == 0 {
		c.errorf("No slides defined in outline")
	}

	for i, raw := range slides {
		slideNum := i + 1
		slide, ok := raw.(map[string]any)
		if !ok {
			c.errorf("Slide %d: must be an object", slideNum)
			continue
		}
		checkOutlineSlide(&c, slide, slideNum)
	}

	if meta, ok := outline["meta"]; ok {
		if _, isObj := meta.(map[string]any); !isObj {
			c.warnf("'meta' should be an object")
		}
	}

	return c.report()
}

func checkOutlineSlide(c *collector, slide map[string]any, slideNum int) {
	layout, ok := slide["layout"]
	if !ok {
		c.errorf("Slide %d: Missing 'layout' field", slideNum)
	} else if _, isString := layout.(string); !isString {
		c.errorf("Slide %d: 'layout' must be a string", slideNum)
	}

	placeholdersValue, ok := slide["placeholders"]
	if !ok {
		c.errorf("Slide %d: Missing 'placeholders' field", slideNum)
		return
	}
	placeholders, isObj := placeholdersValue.(map[string]any)
	if !isObj {
		c.errorf("Slide %d: 'placeholders' must be an object", slideNum)
		return
	}

	for key, value := range placeholders {
		checkPlaceholderContent(c, key, value, slideNum)
	}
}

func checkPlaceholderContent(c *collector, rawKey string, value any, slideNum int) {
	key := placeholder.ParseKey(rawKey)
	if key.OrdinalInvalid {
		c.errorf("Slide %d: Invalid ordinal in '%s'", slideNum, rawKey)
	} else if key.Ordinal < 0 {
		c.errorf("Slide %d: Invalid ordinal %d in '%s'", slideNum, key.Ordinal, rawKey)
	}

	typ, known := placeholder.ResolveType(key.Base)
	if !known {
		c.warnf("Slide %d: Unknown placeholder type '%s'", slideNum, key.Base)
		return
	}

	switch typ.Canonical {
	case "chart":
		obj, isObj := value.(map[string]any)
		if !isObj {
			c.errorf("Slide %d: Chart content must be an object", slideNum)
		} else if _, hasType := obj["type"]; !hasType {
			c.errorf("Slide %d: Chart must have 'type' and 'data'", slideNum)
		} else if _, hasData := obj["data"]; !hasData {
			c.errorf("Slide %d: Chart must have 'type' and 'data'", slideNum)
		}
	case "table":
		obj, isObj := value.(map[string]any)
		if !isObj {
			c.errorf("Slide %d: Table content must be an object", slideNum)
		} else if _, hasHeaders := obj["headers"]; !hasHeaders {
			c.errorf("Slide %d: Table must have 'headers' and 'rows'", slideNum)
		} else if _, hasRows := obj["rows"]; !hasRows {
			c.errorf("Slide %d: Table must have 'headers' and 'rows'", slideNum)
		}
	case "picture", "slideimage":
		if _, isString := value.(string); !isString {
			c.errorf("Slide %d: Image placeholder must have string path", slideNum)
		}
	}
}

// TemplateAnalysis checks a template analysis document's structure.
func TemplateAnalysis(data []byte) Report {
	var c collector

	var analysis map[string]any
	if err := decode(data, &analysis); err != nil {
		c.errorf("Failed to load analysis: %v", err)
		return c.report()
	}

	for _, field := range []string{"template_info", "layouts"} {
		if _, ok := analysis[field]; !ok {
			c.errorf("Missing required field '%s'", field)
		}
	}

	if infoValue, ok := analysis["template_info"]; ok {
		if info, isObj := infoValue.(map[string]any); isObj {
			if _, ok := info["name"]; !ok {
				c.warnf("template_info missing 'name'")
			}
			if _, ok := info["slide_master"]; !ok {
				c.warnf("template_info missing 'slide_master'")
			}
		}
	}

	if layoutsValue, ok := analysis["layouts"]; ok {
		layouts, isList := layoutsValue.([]any)
		if !isList {
			c.errorf("'layouts' must be an array")
		} else {
			for i, raw := range layouts {
				if layout, isObj := raw.(map[string]any); isObj {
					checkLayout(&c, layout, i)
				} else {
					c.errorf("Layout %d: must be an object", i)
				}
			}
		}
	}

	return c.report()
}

func checkLayout(c *collector, layout map[string]any, idx int) {
	for _, field := range []string{"index", "name", "placeholders"} {
		if _, ok := layout[field]; !ok {
			c.errorf("Layout %d: Missing '%s'", idx, field)
		}
	}

	placeholdersValue, ok := layout["placeholders"]
	if !ok {
		return
	}
	placeholders, isList := placeholdersValue.([]any)
	if !isList {
		c.errorf("Layout %d: 'placeholders' must be an array", idx)
		return
	}
	for _, raw := range placeholders {
		ph, isObj := raw.(map[string]any)
		if !isObj {
			continue
		}
		if _, ok := ph["type_id"]; !ok {
			c.warnf("Layout %d: Placeholder missing 'type_id'", idx)
		}
		if _, ok := ph["geometry"]; !ok {
			c.warnf("Layout %d: Placeholder missing 'geometry'", idx)
		}
	}
}

// SlidePlan checks a generated plan document's structure and surfaces any
// errors the planner embedded in the plan's validation block.
func SlidePlan(data []byte) Report {
	var c collector

	var plan map[string]any
	if err := decode(data, &plan); err != nil {
		c.errorf("Failed to load plan: %v", err)
		return c.report()
	}

	for _, field := range []string{"meta", "slides"} {
		if _, ok := plan[field]; !ok {
			c.errorf("Missing required field '%s'", field)
		}
	}

	if slidesValue, ok := plan["slides"]; ok {
		if slides, isList := slidesValue.([]any); isList {
			for _, raw := range slides {
				if slide, isObj := raw.(map[string]any); isObj {
					checkPlanSlide(&c, slide)
				}
			}
		}
	}

	if validationValue, ok := plan["validation"]; ok {
		if validation, isObj := validationValue.(map[string]any); isObj {
			if errs, isList := validation["errors"].([]any); isList {
				for _, err := range errs {
					c.errorf("Plan error: %v", err)
				}
			}
		}
	}

	return c.report()
}

func checkPlanSlide(c *collector, slide map[string]any) {
	for _, field := range []string{"slide_number", "selected_layout", "content_map"} {
		if _, ok := slide[field]; !ok {
			c.errorf("Slide missing '%s'", field)
		}
	}

	if layoutValue, ok := slide["selected_layout"]; ok {
		if layout, isObj := layoutValue.(map[string]any); isObj {
			index, ok := layout["index"]
			if !ok {
				c.errorf("selected_layout missing 'index'")
			} else if f, isNum := index.(float64); !isNum || f != float64(int(f)) {
				c.errorf("Layout index must be integer")
			}
		}
	}

	if contentValue, ok := slide["content_map"]; ok {
		if contents, isList := contentValue.([]any); isList {
			for _, raw := range contents {
				content, isObj := raw.(map[string]any)
				if !isObj {
					continue
				}
				for _, field := range []string{"type_id", "content_type", "content_data"} {
					if _, ok := content[field]; !ok {
						c.errorf("Content missing '%s'", field)
					}
				}
			}
		}
	}
}

// Script checks a generated macro script for the structural markers the
// workflow depends on.
func Script(script string) Report {
	var c collector

	if !strings.Contains(script, "Sub Main()") {
		c.errorf("Missing 'Sub Main()' entry point")
	}
	if !strings.Contains(script, "Application.ActivePresentation") {
		c.errorf("Script doesn't use ActivePresentation")
	}
	if strings.Contains(script, "Application.Presentations.Add") {
		c.errorf("Script creates new presentation (should use active)")
	}

	for _, fn := range []string{
		"GetCustomLayoutByIndexSafe",
		"GetPlaceholderByTypeAndOrdinal",
		"SafeSetText",
	} {
		if !strings.Contains(script, fn) {
			c.warnf("Missing helper function: %s", fn)
		}
	}

	if strings.Contains(script, "#If Mac Then") {
		c.infof("Script includes macOS compatibility")
	}
	if strings.Contains(script, "On Error") {
		c.infof("Script includes error handling")
	}

	return c.report()
}

// Overall aggregates per-stage reports into a workflow-level summary.
type Overall struct {
	// Valid is true when every validated stage is valid
	Valid bool `json:"valid"`

	// TotalErrors is the error count across all stages
	TotalErrors int `json:"total_errors"`

	// TotalWarnings is the warning count across all stages
	TotalWarnings int `json:"total_warnings"`

	// StagesValidated lists the stages included, in validation order
	StagesValidated []string `json:"stages_validated"`
}

// Summarize folds stage reports into an Overall. Stage order follows the
// order given.
func Summarize(stages []string, reports map[string]Report) Overall {
	overall := Overall{Valid: true, StagesValidated: append([]string{}, stages...)}
	for _, stage := range stages {
		report := reports[stage]
		if !report.Valid {
			overall.Valid = false
		}
		overall.TotalErrors += report.Summary.ErrorCount
		overall.TotalWarnings += report.Summary.WarningCount
	}
	return overall
}
