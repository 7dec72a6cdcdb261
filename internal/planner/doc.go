// Package planner resolves an outline against a template index into a slide
// plan.
//
// The planner is constructed once per conversion run with a template
// description and an outline; it builds the layout index up front, then
// processes each slide independently against that immutable index. Slide- and
// placeholder-local problems (unknown types, missing placeholders, malformed
// content) are recorded in a diagnostics collector and the offending item is
// skipped, so every slide gets a full report. Only two conditions are fatal
// and abort without a plan: a malformed template description, and a global
// layout-strategy role that cannot be resolved even by category fallback.
//
// Key responsibilities:
//   - Resolve layout names with exact/category-fallback matching
//   - Canonicalize placeholder keys into (type_id, ordinal) addresses
//   - Validate each address against the chosen layout
//   - Classify content values by placeholder type
//   - Accumulate diagnostics and embed them in the emitted plan
package planner
