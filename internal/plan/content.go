package plan

import (
	"encoding/json"
	"fmt"
)

// Kind classifies a content value's payload shape.
type Kind string

// Content kinds. The kind is derived from the placeholder's type at
// classification time and never reinterpreted downstream.
const (
	KindText      Kind = "text"
	KindImagePath Kind = "image_path"
	KindChart     Kind = "chart"
	KindTable     Kind = "table"
)

// Content is a tagged union of the four content payload shapes. Exactly one
// payload field is meaningful, selected by Kind.
type Content struct {
	// Kind selects the payload variant
	Kind Kind

	// Text is the payload for KindText and KindImagePath
	Text string

	// Chart is the payload for KindChart
	Chart *ChartSpec

	// Table is the payload for KindTable
	Table *TableSpec
}

// ChartSpec is a validated chart payload.
type ChartSpec struct {
	// Type is the chart type ("line", "bar", "pie", ...)
	Type string

	// Raw is the complete payload object as authored, preserved verbatim
	// for the script stage
	Raw map[string]any
}

// TableSpec is a validated table payload.
type TableSpec struct {
	// Headers is the header row
	Headers []any

	// Rows is the table body, one slice per row
	Rows []any

	// Raw is the complete payload object as authored, preserved verbatim
	// for the script stage
	Raw map[string]any
}

// Text constructs a text content value.
func Text(s string) Content {
	return Content{Kind: KindText, Text: s}
}

// ImagePath constructs an image-path content value.
func ImagePath(path string) Content {
	return Content{Kind: KindImagePath, Text: path}
}

// Chart constructs a chart content value.
func Chart(spec *ChartSpec) Content {
	return Content{Kind: KindChart, Chart: spec}
}

// Table constructs a table content value.
func Table(spec *TableSpec) Content {
	return Content{Kind: KindTable, Table: spec}
}

// MarshalJSON emits the payload for the selected variant: a JSON string for
// text and image paths, the verbatim payload object for charts and tables.
func (c Content) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case KindText, KindImagePath:
		return json.Marshal(c.Text)
	case KindChart:
		return json.Marshal(c.Chart.Raw)
	case KindTable:
		return json.Marshal(c.Table.Raw)
	default:
		return nil, fmt.Errorf("unknown content kind %q", c.Kind)
	}
}

// ContentItem is one resolved placeholder content entry in a slide's content
// map.
type ContentItem struct {
	// PlaceholderType is the canonical placeholder type name
	PlaceholderType string `json:"placeholder_type"`

	// TypeID is the placeholder type constant
	TypeID int `json:"type_id"`

	// Ordinal is the zero-based positional rank within the type
	Ordinal int `json:"ordinal"`

	// ContentType is the classified payload kind
	ContentType Kind `json:"content_type"`

	// ContentData is the kind-specific payload
	ContentData Content `json:"content_data"`
}

// UnmarshalJSON decodes a content item, using content_type to select how the
// content_data payload is interpreted.
func (item *ContentItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		PlaceholderType string          `json:"placeholder_type"`
		TypeID          int             `json:"type_id"`
		Ordinal         int             `json:"ordinal"`
		ContentType     Kind            `json:"content_type"`
		ContentData     json.RawMessage `json:"content_data"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	item.PlaceholderType = raw.PlaceholderType
	item.TypeID = raw.TypeID
	item.Ordinal = raw.Ordinal
	item.ContentType = raw.ContentType

	switch raw.ContentType {
	case KindText, KindImagePath:
		var s string
		if err := json.Unmarshal(raw.ContentData, &s); err != nil {
			return fmt.Errorf("%s content_data: %w", raw.ContentType, err)
		}
		if raw.ContentType == KindText {
			item.ContentData = Text(s)
		} else {
			item.ContentData = ImagePath(s)
		}
	case KindChart:
		var obj map[string]any
		if err := json.Unmarshal(raw.ContentData, &obj); err != nil {
			return fmt.Errorf("chart content_data: %w", err)
		}
		chartType, _ := obj["type"].(string)
		item.ContentData = Chart(&ChartSpec{Type: chartType, Raw: obj})
	case KindTable:
		var obj map[string]any
		if err := json.Unmarshal(raw.ContentData, &obj); err != nil {
			return fmt.Errorf("table content_data: %w", err)
		}
		headers, _ := obj["headers"].([]any)
		rows, _ := obj["rows"].([]any)
		item.ContentData = Table(&TableSpec{Headers: headers, Rows: rows, Raw: obj})
	default:
		return fmt.Errorf("unknown content_type %q", raw.ContentType)
	}

	return nil
}
