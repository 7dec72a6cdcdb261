package vba

import (
	"strings"
	"testing"
	"time"

	"deckplan/internal/clock"
	"deckplan/internal/plan"
)

func testPlan() *plan.Document {
	return &plan.Document{
		Meta: plan.Meta{
			TemplateName: "corporate.pptx",
			TotalLayouts: 3,
		},
		Slides: []plan.Slide{
			{
				SlideNumber: 1,
				SlideTitle:  "Quarterly Review",
				SelectedLayout: plan.SelectedLayout{
					Name:   "Title Slide",
					Index:  1,
					Reason: plan.ReasonExactNameMatch,
				},
				ContentMap: []plan.ContentItem{
					{
						PlaceholderType: "title",
						TypeID:          1,
						Ordinal:         0,
						ContentType:     plan.KindText,
						ContentData:     plan.Text("Quarterly Review"),
					},
				},
			},
			{
				SlideNumber: 2,
				SlideTitle:  "Results",
				SelectedLayout: plan.SelectedLayout{
					Name:   "Title and Text",
					Index:  4,
					Reason: plan.ReasonExactNameMatch,
				},
				ContentMap: []plan.ContentItem{
					{
						PlaceholderType: "body",
						TypeID:          2,
						Ordinal:         1,
						ContentType:     plan.KindText,
						ContentData:     plan.Text("Line one\nLine two"),
					},
					{
						PlaceholderType: "picture",
						TypeID:          18,
						Ordinal:         0,
						ContentType:     plan.KindImagePath,
						ContentData:     plan.ImagePath("images/logo.png"),
					},
				},
			},
		},
	}
}

func generate(t *testing.T, doc *plan.Document, opts Options) string {
	t.Helper()
	if opts.Clock == nil {
		opts.Clock = clock.NewFakeClock(time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC))
	}
	return NewGenerator(doc, opts).Generate()
}

func TestGenerate_HeaderAndStructure(t *testing.T) {
	script := generate(t, testPlan(), Options{})

	for _, want := range []string{
		"' Generated: 2025-03-14 09:26:53 UTC",
		"' Template: corporate.pptx",
		"Option Explicit",
		"Sub Main()",
		"Sub ValidateTemplate()",
		"Function GetPlaceholderByTypeAndOrdinal",
		"Function SortShapesByPosition",
		"Sub SafeSetText",
		"Sub CreateChartAtPlaceholder",
		"Sub CreateTableAtPlaceholder",
	} {
		if !strings.Contains(script, want) {
			t.Errorf("script missing %q", want)
		}
	}

	if strings.Contains(script, "Presentations.Add") {
		t.Error("script must target the active presentation, not create one")
	}
	if !strings.Contains(script, "Application.ActivePresentation") {
		t.Error("script must reference Application.ActivePresentation")
	}
}

func TestGenerate_LayoutPrecache(t *testing.T) {
	script := generate(t, testPlan(), Options{})

	if !strings.Contains(script, "requiredLayouts = Array(1, 4)") {
		t.Errorf("used layout indices not pre-cached ascending:\n%s", snippet(script, "requiredLayouts"))
	}
	if !strings.Contains(script, "Set currentSlide = AddSlideWithLayout(CacheGet(1))") {
		t.Error("slide 1 does not instantiate layout 1 from the cache")
	}
	if !strings.Contains(script, "Set currentSlide = AddSlideWithLayout(CacheGet(4))") {
		t.Error("slide 2 does not instantiate layout 4 from the cache")
	}
}

func TestGenerate_StrictMatchBlock(t *testing.T) {
	script := generate(t, testPlan(), Options{})

	if !strings.Contains(script, "Set shp = GetPlaceholderByTypeAndOrdinal(currentSlide, 2, 1)") {
		t.Error("body placeholder not addressed by (type_id=2, ordinal=1)")
	}
	if !strings.Contains(script, `MsgBox "STRICT MATCH ERROR: Missing required placeholder on slide 2:"`) {
		t.Error("missing strict-match error block for slide 2")
	}
	if !strings.Contains(script, `"Type: body (type_id=2)"`) {
		t.Error("strict-match message does not name the placeholder type")
	}
}

func TestGenerate_TextEscaping(t *testing.T) {
	script := generate(t, testPlan(), Options{})

	if !strings.Contains(script, `SafeSetText shp, "Line one" & vbCrLf & "Line two"`) {
		t.Error("newline in text content not converted to vbCrLf concatenation")
	}
}

func TestGenerate_ImagePlaceholderSkipped(t *testing.T) {
	script := generate(t, testPlan(), Options{})

	if !strings.Contains(script, "' Image placeholder skipped: images/logo.png") {
		t.Error("image placeholder skip comment missing")
	}
	if strings.Contains(script, "GetPlaceholderByTypeAndOrdinal(currentSlide, 18, 0)") {
		t.Error("image placeholder must not be resolved by the script")
	}
}

func TestGenerate_ChartAndTablePayloads(t *testing.T) {
	doc := testPlan()
	doc.Slides[1].ContentMap = []plan.ContentItem{
		{
			PlaceholderType: "chart",
			TypeID:          8,
			Ordinal:         0,
			ContentType:     plan.KindChart,
			ContentData: plan.Chart(&plan.ChartSpec{
				Type: "bar",
				Raw: map[string]any{
					"type": "bar",
					"data": map[string]any{"x": []any{"Q1"}},
				},
			}),
		},
		{
			PlaceholderType: "table",
			TypeID:          9,
			Ordinal:         0,
			ContentType:     plan.KindTable,
			ContentData: plan.Table(&plan.TableSpec{
				Headers: []any{"Region"},
				Rows:    []any{[]any{"EMEA"}},
				Raw: map[string]any{
					"headers": []any{"Region"},
					"rows":    []any{[]any{"EMEA"}},
				},
			}),
		},
	}

	script := generate(t, doc, Options{})

	// JSON payloads pass through as escaped VBA string literals.
	if !strings.Contains(script, `CreateChartAtPlaceholder currentSlide, shp, "{""data"":{""x"":[""Q1""]},""type"":""bar""}"`) {
		t.Errorf("chart payload not embedded verbatim:\n%s", snippet(script, "CreateChartAtPlaceholder currentSlide"))
	}
	if !strings.Contains(script, `CreateTableAtPlaceholder currentSlide, shp, "{""headers"":[""Region""],""rows"":[[""EMEA""]]}"`) {
		t.Errorf("table payload not embedded verbatim:\n%s", snippet(script, "CreateTableAtPlaceholder currentSlide"))
	}
}

func TestGenerate_DebugSlide(t *testing.T) {
	withDebug := generate(t, testPlan(), Options{DebugSlide: 2})
	if !strings.Contains(withDebug, "' Debug: List placeholders on slide 2 (layout 4)") {
		t.Error("debug comment missing for requested slide")
	}
	if !strings.Contains(withDebug, "DebugListPlaceholders currentSlide") {
		t.Error("debug call missing for requested slide")
	}

	withoutDebug := generate(t, testPlan(), Options{})
	if strings.Contains(withoutDebug, "DebugListPlaceholders currentSlide") {
		t.Error("debug call emitted without a requested debug slide")
	}
}

func TestGenerate_ValidationSub(t *testing.T) {
	script := generate(t, testPlan(), Options{})

	start := strings.Index(script, "Sub ValidateTemplate()")
	if start < 0 {
		t.Fatal("ValidateTemplate subroutine missing")
	}
	if !strings.Contains(script[start:], "requiredLayouts = Array(1, 4)") {
		t.Error("ValidateTemplate does not check the used layout indices")
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"plain", "plain"},
		{`say "hi"`, `say ""hi""`},
		{"a\nb", `a" & vbCrLf & "b`},
		{"\"x\"\ny", `""x""" & vbCrLf & "y`},
	}
	for _, tt := range tests {
		if got := Escape(tt.in); got != tt.want {
			t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUsedLayouts_SortedAndDeduplicated(t *testing.T) {
	doc := testPlan()
	doc.Slides = append(doc.Slides, plan.Slide{
		SlideNumber:    3,
		SelectedLayout: plan.SelectedLayout{Name: "Title Slide", Index: 1},
	})

	gen := NewGenerator(doc, Options{Clock: clock.NewFakeClock(time.Unix(0, 0))})
	gen.Generate()

	got := gen.UsedLayouts()
	if len(got) != 2 || got[0] != 1 || got[1] != 4 {
		t.Errorf("UsedLayouts() = %v, want [1 4]", got)
	}
}

// snippet returns the script line containing marker, for failure messages.
func snippet(script, marker string) string {
	for _, line := range strings.Split(script, "\n") {
		if strings.Contains(line, marker) {
			return line
		}
	}
	return "(marker not found)"
}
