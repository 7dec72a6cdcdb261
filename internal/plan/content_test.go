package plan

import (
	"encoding/json"
	"testing"
)

func TestContent_MarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		content Content
		want    string
	}{
		{
			name:    "text",
			content: Text("Hello, world"),
			want:    `"Hello, world"`,
		},
		{
			name:    "image path",
			content: ImagePath("assets/logo.png"),
			want:    `"assets/logo.png"`,
		},
		{
			name: "chart payload preserved verbatim",
			content: Chart(&ChartSpec{
				Type: "line",
				Raw:  map[string]any{"type": "line", "data": map[string]any{"x": []any{1.0, 2.0}}},
			}),
			want: `{"data":{"x":[1,2]},"type":"line"}`,
		},
		{
			name: "table payload preserved verbatim",
			content: Table(&TableSpec{
				Headers: []any{"Region"},
				Rows:    []any{[]any{"EMEA"}},
				Raw:     map[string]any{"headers": []any{"Region"}, "rows": []any{[]any{"EMEA"}}},
			}),
			want: `{"headers":["Region"],"rows":[["EMEA"]]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.content)
			if err != nil {
				t.Fatalf("marshal failed: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("marshal = %s, want %s", data, tt.want)
			}
		})
	}
}

func TestContent_MarshalUnknownKind(t *testing.T) {
	if _, err := json.Marshal(Content{Kind: "video"}); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestContentItem_UnmarshalJSON(t *testing.T) {
	data := []byte(`{
		"placeholder_type": "Chart",
		"type_id": 8,
		"ordinal": 0,
		"content_type": "chart",
		"content_data": {"type": "bar", "data": {"x": ["Q1", "Q2"]}, "x": ["Q1", "Q2"]}
	}`)

	var item ContentItem
	if err := json.Unmarshal(data, &item); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if item.TypeID != 8 || item.ContentType != KindChart {
		t.Errorf("item = %+v", item)
	}
	if item.ContentData.Chart == nil {
		t.Fatal("chart payload missing")
	}
	if item.ContentData.Chart.Type != "bar" {
		t.Errorf("chart type = %q, want bar", item.ContentData.Chart.Type)
	}
	if _, ok := item.ContentData.Chart.Raw["x"]; !ok {
		t.Error("chart raw payload lost the x field")
	}
}

func TestContentItem_RoundTrip(t *testing.T) {
	original := ContentItem{
		PlaceholderType: "Table",
		TypeID:          9,
		Ordinal:         1,
		ContentType:     KindTable,
		ContentData: Table(&TableSpec{
			Headers: []any{"Region", "Total"},
			Rows:    []any{[]any{"EMEA", 42.0}},
			Raw: map[string]any{
				"headers": []any{"Region", "Total"},
				"rows":    []any{[]any{"EMEA", 42.0}},
			},
		}),
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatal(err)
	}

	var decoded ContentItem
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}

	if decoded.PlaceholderType != "Table" || decoded.Ordinal != 1 {
		t.Errorf("decoded = %+v", decoded)
	}
	if decoded.ContentData.Table == nil {
		t.Fatal("table payload missing after round trip")
	}
	if len(decoded.ContentData.Table.Headers) != 2 {
		t.Errorf("headers = %v", decoded.ContentData.Table.Headers)
	}
	if len(decoded.ContentData.Table.Rows) != 1 {
		t.Errorf("rows = %v", decoded.ContentData.Table.Rows)
	}
}

func TestContentItem_UnmarshalUnknownKind(t *testing.T) {
	data := []byte(`{"placeholder_type": "Title", "type_id": 1, "ordinal": 0,
		"content_type": "video", "content_data": "x"}`)

	var item ContentItem
	if err := json.Unmarshal(data, &item); err == nil {
		t.Error("expected error for unknown content_type")
	}
}
