package planner

import (
	"fmt"

	"deckplan/internal/plan"
)

// StrategyRole names a global layout role the plan must resolve: a layout
// name to look up, with a category to fall back on when the name is absent.
type StrategyRole struct {
	// Role is the key emitted in the plan's layout_strategy block
	Role string

	// Layout is the expected layout name
	Layout string

	// Category is the fallback layout category
	Category string
}

// DefaultStrategy returns the built-in role table. Roles can be overridden
// through configuration.
func DefaultStrategy() []StrategyRole {
	return []StrategyRole{
		{Role: "title_slide_index", Layout: "Title Slide", Category: "title"},
		{Role: "two_column_index", Layout: "title-two-text", Category: "content"},
		{Role: "three_column_index", Layout: "title-three-text", Category: "content"},
		{Role: "chart_layout_index", Layout: "Title, Text and Chart", Category: "content"},
		{Role: "standard_content_index", Layout: "Title and Text", Category: "content"},
		{Role: "contact_index", Layout: "contact-slide-white", Category: "content"},
	}
}

// resolveStrategy resolves every role to a concrete layout index. An
// unresolvable role is fatal: it means the template lacks a required global
// layout category, not that a single slide mismatched.
func (r *Resolver) resolveStrategy() (map[string]int, error) {
	strategy := make(map[string]int, len(r.opts.Strategy))
	for _, role := range r.opts.Strategy {
		index, _, err := r.findLayout(role.Layout, role.Category)
		if err != nil {
			return nil, fmt.Errorf("layout strategy role %s: %w", role.Role, err)
		}
		strategy[role.Role] = index
	}
	return strategy, nil
}

// findLayout resolves a layout name to its index: exact normalized-name match
// first, then the first layout of the fallback category in template order.
// The fallback path records exactly one warning naming both the missing
// request and the substitute.
func (r *Resolver) findLayout(name, fallbackCategory string) (int, string, error) {
	if layout, ok := r.index.Lookup(name); ok {
		return layout.Index, plan.ReasonExactNameMatch, nil
	}

	if fallbackCategory != "" {
		if layout, ok := r.index.FindByCategory(fallbackCategory); ok {
			r.diags.Warnf("Layout '%s' not found. Using '%s' (index %d) as fallback.",
				name, layout.Name, layout.Index)
			return layout.Index, plan.ReasonCategoryFallback, nil
		}
	}

	return 0, "", fmt.Errorf("required layout '%s' not found and no fallback available: %w",
		name, ErrLayoutNotFound)
}
