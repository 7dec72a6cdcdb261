package planner

import (
	"errors"
	"strings"
	"testing"

	"deckplan/internal/outline"
)

func TestResolveStrategy_ExactAndFallback(t *testing.T) {
	strategy := []StrategyRole{
		{Role: "title_slide_index", Layout: "Title Slide", Category: "title"},
		{Role: "standard_content_index", Layout: "Title and Text", Category: "content"},
		{Role: "chart_layout_index", Layout: "Title, Text and Chart", Category: "content"},
	}

	r := mustResolver(t, testDescription(), &outline.Document{}, Options{Strategy: strategy})
	p, err := r.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	want := map[string]int{
		"title_slide_index":      1,
		"standard_content_index": 2,
		"chart_layout_index":     2, // category fallback to first content layout
	}
	for role, index := range want {
		if p.LayoutStrategy[role] != index {
			t.Errorf("%s = %d, want %d", role, p.LayoutStrategy[role], index)
		}
	}

	// Exactly one warning, for the single fallback.
	if len(p.Validation.Warnings) != 1 {
		t.Fatalf("warnings = %v", p.Validation.Warnings)
	}
	if !strings.Contains(p.Validation.Warnings[0], "Title, Text and Chart") {
		t.Errorf("warning %q must name the missing layout", p.Validation.Warnings[0])
	}
}

func TestResolveStrategy_UnresolvableRoleIsFatal(t *testing.T) {
	strategy := []StrategyRole{
		{Role: "closing_index", Layout: "Closing Slide", Category: "closing"},
	}

	r := mustResolver(t, testDescription(), &outline.Document{}, Options{Strategy: strategy})
	p, err := r.Resolve()
	if !errors.Is(err, ErrLayoutNotFound) {
		t.Fatalf("expected ErrLayoutNotFound, got: %v", err)
	}
	if p != nil {
		t.Error("fatal strategy failure must not emit a plan")
	}
	if !strings.Contains(err.Error(), "Closing Slide") {
		t.Errorf("error %q must name the requested layout", err)
	}
}

func TestDefaultStrategy_Roles(t *testing.T) {
	roles := DefaultStrategy()
	if len(roles) != 6 {
		t.Fatalf("expected 6 roles, got %d", len(roles))
	}

	byRole := make(map[string]StrategyRole)
	for _, role := range roles {
		byRole[role.Role] = role
	}

	if byRole["title_slide_index"].Category != "title" {
		t.Errorf("title_slide_index category = %q, want title", byRole["title_slide_index"].Category)
	}
	if byRole["standard_content_index"].Layout != "Title and Text" {
		t.Errorf("standard_content_index layout = %q", byRole["standard_content_index"].Layout)
	}
}
