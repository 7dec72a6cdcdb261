package planner

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"deckplan/internal/clock"
	"deckplan/internal/diag"
	"deckplan/internal/outline"
	"deckplan/internal/placeholder"
	"deckplan/internal/plan"
	"deckplan/internal/template"
)

// createdAtFormat is the plan timestamp layout (UTC, second precision).
const createdAtFormat = "2006-01-02T15:04:05Z"

// defaultPlannerVersion identifies this planner in plan metadata.
const defaultPlannerVersion = "5.0-go"

// Options configures a Resolver. The zero value selects sensible defaults.
type Options struct {
	// PlatformTargets lists the platforms recorded in plan metadata.
	// Defaults to macos and windows.
	PlatformTargets []string

	// PlannerVersion overrides the planner version string
	PlannerVersion string

	// Strategy is the global layout role table. Defaults to
	// DefaultStrategy().
	Strategy []StrategyRole

	// Clock provides the plan's created_at timestamp. Defaults to the
	// system clock.
	Clock clock.Clock

	// RunID identifies the conversion run. Defaults to a random UUID.
	RunID string

	// TemplateFingerprint is the template analysis input fingerprint
	TemplateFingerprint string

	// OutlineFingerprint is the outline input fingerprint
	OutlineFingerprint string
}

// Resolver converts one outline into one slide plan. Each Resolver owns a
// private layout index and diagnostics collector; it is single-use and not
// safe for concurrent use.
type Resolver struct {
	desc    *template.Description
	outline *outline.Document
	index   *template.Index
	diags   diag.Collector
	opts    Options
}

// New builds a Resolver, constructing the layout index once. Returns a
// wrapped template.ErrMalformedTemplate error if the description is
// structurally invalid.
func New(desc *template.Description, doc *outline.Document, opts Options) (*Resolver, error) {
	index, err := template.BuildIndex(desc)
	if err != nil {
		return nil, err
	}

	if len(opts.PlatformTargets) == 0 {
		opts.PlatformTargets = []string{"macos", "windows"}
	}
	if opts.PlannerVersion == "" {
		opts.PlannerVersion = defaultPlannerVersion
	}
	if opts.Strategy == nil {
		opts.Strategy = DefaultStrategy()
	}
	if opts.Clock == nil {
		opts.Clock = &clock.RealClock{}
	}
	if opts.RunID == "" {
		opts.RunID = uuid.NewString()
	}

	return &Resolver{
		desc:    desc,
		outline: doc,
		index:   index,
		opts:    opts,
	}, nil
}

// Resolve processes every slide and emits the plan document.
//
// All slides are attempted before any failure is reported, so a malformed
// slide never hides diagnostics for its siblings. An unresolvable layout
// strategy role is fatal and returns a nil plan. Otherwise the plan is always
// built; if any slide-local errors were recorded, it is returned together
// with a wrapped ErrPlanInvalid so callers treat the run as failed while
// still having every diagnostic in hand.
func (r *Resolver) Resolve() (*plan.Document, error) {
	slides := make([]plan.Slide, 0, len(r.outline.Slides))
	usage := make(map[string]int)

	for i, slide := range r.outline.Slides {
		number := i + 1
		resolved, ok := r.resolveSlide(slide, number)
		if !ok {
			continue
		}
		slides = append(slides, resolved)
		usage[resolved.SelectedLayout.Name]++
	}

	strategy, err := r.resolveStrategy()
	if err != nil {
		return nil, err
	}

	doc := &plan.Document{
		Meta: plan.Meta{
			TemplateName:        r.desc.TemplateInfo.Name,
			AnalysisDate:        r.desc.TemplateInfo.AnalysisDate,
			TotalLayouts:        len(r.desc.Layouts),
			PlatformTargets:     r.opts.PlatformTargets,
			PlannerVersion:      r.opts.PlannerVersion,
			CreatedAt:           r.opts.Clock.Now().UTC().Format(createdAtFormat),
			RunID:               r.opts.RunID,
			TemplateFingerprint: r.opts.TemplateFingerprint,
			OutlineFingerprint:  r.opts.OutlineFingerprint,
		},
		LayoutStrategy: strategy,
		Slides:         slides,
		Validation: plan.Validation{
			Checks:   plan.PlannerChecks(),
			Errors:   r.diags.Errors(),
			Warnings: r.diags.Warnings(),
		},
		LayoutUsage: usage,
	}

	if r.diags.HasErrors() {
		return doc, fmt.Errorf("conversion recorded %d errors: %w",
			len(doc.Validation.Errors), ErrPlanInvalid)
	}
	return doc, nil
}

// Diagnostics exposes the collector's current contents, for callers that
// want to report errors and warnings outside the plan document.
func (r *Resolver) Diagnostics() (errors, warnings []string) {
	return r.diags.Errors(), r.diags.Warnings()
}

// resolveSlide processes one slide. Returns false when the slide's layout
// cannot be resolved at all; the slide is then excluded from the plan and a
// top-level error has been recorded.
func (r *Resolver) resolveSlide(slide outline.Slide, number int) (plan.Slide, bool) {
	layout, reason, ok := r.selectSlideLayout(slide, number)
	if !ok {
		return plan.Slide{}, false
	}

	var contentMap []plan.ContentItem
	accepted := make(map[placeholder.Address]bool)

	for _, entry := range slide.Placeholders.Entries() {
		key := placeholder.ParseKey(entry.Key)
		if key.OrdinalInvalid {
			r.diags.Errorf("Slide %d: Placeholder '%s' has invalid ordinal '%s'. Defaulting to 0.",
				number, key.Raw, key.BadOrdinal)
		}

		typ, known := placeholder.ResolveType(key.Base)
		if !known {
			r.diags.Warnf("Slide %d: Unknown placeholder type '%s'", number, key.Base)
			continue
		}

		available := layout.Placeholders(typ.ID)
		if key.Ordinal < 0 || key.Ordinal >= len(available) {
			r.diags.Errorf("Slide %d: Placeholder '%s' (type_id=%d, ordinal=%d) not found in layout '%s'. Available: %d of type %s",
				number, key.Raw, typ.ID, key.Ordinal, layout.Name, len(available), typ.Canonical)
			continue
		}

		content, err := classify(key.Base, entry.Value)
		if err != nil {
			r.diags.Errorf("Slide %d, placeholder '%s': %v", number, key.Raw, err)
			continue
		}

		contentMap = append(contentMap, plan.ContentItem{
			PlaceholderType: typ.Canonical,
			TypeID:          typ.ID,
			Ordinal:         key.Ordinal,
			ContentType:     content.Kind,
			ContentData:     content,
		})
		accepted[placeholder.Address{Type: typ.Canonical, TypeID: typ.ID, Ordinal: key.Ordinal}] = true
	}

	expected := make([]placeholder.Address, 0, len(accepted))
	for addr := range accepted {
		expected = append(expected, addr)
	}
	sort.Slice(expected, func(i, j int) bool { return expected[i].Less(expected[j]) })

	return plan.Slide{
		SlideNumber:          number,
		SlideTitle:           r.extractTitle(slide, layout.Name, number),
		SelectedLayout:       plan.SelectedLayout{Name: layout.Name, Index: layout.Index, Reason: reason},
		Addressing:           plan.AddressingByTypeThenOrdinal,
		FillPolicy:           plan.FillPolicyStrictMatch,
		PlaceholdersExpected: expected,
		PlatformHints:        plan.DefaultPlatformHints(),
		ContentMap:           contentMap,
	}, true
}

// selectSlideLayout resolves a slide's requested layout: exact name match
// first, then the slide's fallback category if it names one. A slide whose
// layout cannot be resolved at all is a top-level error, distinct from
// per-placeholder absence.
func (r *Resolver) selectSlideLayout(slide outline.Slide, number int) (*template.IndexedLayout, string, bool) {
	if layout, ok := r.index.Lookup(slide.Layout); ok {
		return layout, plan.ReasonExactNameMatch, true
	}

	if slide.FallbackCategory != "" {
		if layout, ok := r.index.FindByCategory(slide.FallbackCategory); ok {
			r.diags.Warnf("Layout '%s' not found. Using '%s' (index %d) as fallback.",
				slide.Layout, layout.Name, layout.Index)
			return layout, plan.ReasonCategoryFallback, true
		}
	}

	names := r.index.Names()
	if len(names) > 10 {
		names = names[:10]
	}
	r.diags.Errorf("Slide %d: Layout '%s' not found. Available layouts: %s",
		number, slide.Layout, strings.Join(names, ", "))
	return nil, "", false
}

// extractTitle finds the slide's title: an explicit title-typed, ordinal-0,
// non-empty string value wins; slide 1 on a layout whose name contains
// "title" falls back to the presentation title; otherwise a synthetic
// "Slide N" title is used.
func (r *Resolver) extractTitle(slide outline.Slide, layoutName string, number int) string {
	for _, entry := range slide.Placeholders.Entries() {
		key := placeholder.ParseKey(entry.Key)
		if key.Base != "title" || key.Ordinal != 0 || key.OrdinalInvalid {
			continue
		}
		if value, ok := entry.Value.(string); ok && strings.TrimSpace(value) != "" {
			return value
		}
	}

	if number == 1 && strings.Contains(template.NormalizeName(layoutName), "title") {
		if r.outline.Meta.Title != "" {
			return r.outline.Meta.Title
		}
	}

	return fmt.Sprintf("Slide %d", number)
}
