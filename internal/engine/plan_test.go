package engine

import (
	"encoding/json"
	"strings"
	"testing"

	"deckplan/internal/plan"
	"deckplan/internal/planner"
)

func TestPlan_WritesArtifact(t *testing.T) {
	fs := newFakeFS()
	seedInputs(fs)
	e := testEngine(fs)

	result, err := e.Plan(PlanRequest{
		OutlinePath:  "outline.json",
		TemplatePath: "template.json",
		OutputPath:   "out/slide_plan.json",
		RunID:        "run-1",
	})
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}

	if result.OutputPath != "out/slide_plan.json" {
		t.Errorf("OutputPath = %q", result.OutputPath)
	}
	if len(result.Plan.Slides) != 2 {
		t.Fatalf("plan has %d slides, want 2", len(result.Plan.Slides))
	}
	if len(result.Errors) != 0 {
		t.Errorf("unexpected resolution errors: %v", result.Errors)
	}

	// The written artifact round-trips to the same document.
	data, ok := fs.files["out/slide_plan.json"]
	if !ok {
		t.Fatal("plan artifact not written")
	}
	var written plan.Document
	if err := json.Unmarshal(data, &written); err != nil {
		t.Fatalf("written plan does not parse: %v", err)
	}
	if written.Meta.TemplateName != "corporate.pptx" {
		t.Errorf("Meta.TemplateName = %q", written.Meta.TemplateName)
	}
	if written.Meta.RunID != "run-1" {
		t.Errorf("Meta.RunID = %q", written.Meta.RunID)
	}
	if written.Meta.CreatedAt != "2025-03-14T09:26:53Z" {
		t.Errorf("Meta.CreatedAt = %q", written.Meta.CreatedAt)
	}
	if written.Meta.TemplateFingerprint != "fakehash" || written.Meta.OutlineFingerprint != "fakehash" {
		t.Errorf("fingerprints = %q / %q", written.Meta.TemplateFingerprint, written.Meta.OutlineFingerprint)
	}
}

func TestPlan_InvalidPlanStillWritten(t *testing.T) {
	fs := newFakeFS()
	seedInputs(fs)
	// Reference a placeholder that does not exist on the layout.
	fs.files["outline.json"] = []byte(`{"slides": [
		{"layout": "Title Slide", "placeholders": {"Title": "ok", "Body": "no body here"}}
	]}`)
	e := testEngine(fs)

	result, err := e.Plan(PlanRequest{
		OutlinePath:  "outline.json",
		TemplatePath: "template.json",
		OutputPath:   "out/slide_plan.json",
	})
	if !errIs(err, planner.ErrPlanInvalid) {
		t.Fatalf("err = %v, want ErrPlanInvalid", err)
	}
	if result == nil || result.Plan == nil {
		t.Fatal("plan result should be returned alongside the error")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("Errors = %v, want exactly one", result.Errors)
	}
	if !strings.Contains(result.Errors[0], "not found in layout 'Title Slide'") {
		t.Errorf("Errors[0] = %q", result.Errors[0])
	}
	if _, ok := fs.files["out/slide_plan.json"]; !ok {
		t.Error("plan artifact should be written even when resolution records errors")
	}
}

func TestPlan_MissingInput(t *testing.T) {
	fs := newFakeFS()
	fs.files["template.json"] = []byte(testTemplate)
	e := testEngine(fs)

	_, err := e.Plan(PlanRequest{OutlinePath: "outline.json", TemplatePath: "template.json"})
	if !errIs(err, ErrInputUnreadable) {
		t.Fatalf("err = %v, want ErrInputUnreadable", err)
	}
}

func TestPlan_NoOutputPathSkipsWrite(t *testing.T) {
	fs := newFakeFS()
	seedInputs(fs)
	e := testEngine(fs)

	result, err := e.Plan(PlanRequest{OutlinePath: "outline.json", TemplatePath: "template.json"})
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}
	if result.OutputPath != "" {
		t.Errorf("OutputPath = %q, want empty", result.OutputPath)
	}
	if len(fs.files) != 2 {
		t.Errorf("no artifact should be written, files = %d", len(fs.files))
	}
}
