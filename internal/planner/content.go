package planner

import (
	"fmt"
	"strings"

	"deckplan/internal/plan"
)

// classify derives a content value's kind from its placeholder base type and
// validates the payload shape. The caller never declares the kind.
//
// Failures are recoverable at the per-placeholder level: the returned error
// text is surfaced as a slide-scoped diagnostic and the item is skipped.
func classify(base string, value any) (plan.Content, error) {
	switch base {
	case "picture", "slideimage":
		path, ok := value.(string)
		if !ok || strings.TrimSpace(path) == "" {
			return plan.Content{}, fmt.Errorf("Expected image path for %s, got: %v", base, value)
		}
		return plan.ImagePath(strings.TrimSpace(path)), nil

	case "chart":
		obj, ok := value.(map[string]any)
		if !ok {
			return plan.Content{}, fmt.Errorf("Chart content must be an object, got: %T", value)
		}
		if _, ok := obj["type"]; !ok {
			return plan.Content{}, fmt.Errorf("Chart must have 'type' field")
		}
		if _, ok := obj["data"]; !ok {
			return plan.Content{}, fmt.Errorf("Chart must have 'data' field")
		}
		chartType, _ := obj["type"].(string)
		return plan.Chart(&plan.ChartSpec{Type: chartType, Raw: obj}), nil

	case "table":
		obj, ok := value.(map[string]any)
		if !ok {
			return plan.Content{}, fmt.Errorf("Table content must be an object, got: %T", value)
		}
		headers, hasHeaders := obj["headers"]
		rows, hasRows := obj["rows"]
		if !hasHeaders || !hasRows {
			return plan.Content{}, fmt.Errorf("Table must have 'headers' and 'rows' fields")
		}
		headerList, _ := headers.([]any)
		rowList, _ := rows.([]any)
		return plan.Table(&plan.TableSpec{Headers: headerList, Rows: rowList, Raw: obj}), nil

	default:
		// Text content, including bullets. Non-strings coerce; never an
		// error.
		return plan.Text(coerceString(value)), nil
	}
}

func coerceString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}
