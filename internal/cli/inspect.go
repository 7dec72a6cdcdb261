package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"deckplan/internal/engine"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <template_analysis.json>",
	Short: "Summarize a template analysis",
	Long: `Parse a template analysis and print its layouts: index, name, category, and
placeholder counts by type.

Useful for writing outlines: the layout names and placeholder types shown
here are exactly what the planner resolves against.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.Inspect(engine.InspectRequest{TemplatePath: args[0]})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSection("Template")
		PrintLabelValue("Name", result.TemplateName)
		if result.SlideMaster != "" {
			PrintLabelValue("Slide master", result.SlideMaster)
		}
		if result.AnalysisDate != "" {
			PrintLabelValue("Analyzed", result.AnalysisDate)
		}
		PrintLabelValue("Layouts", strconv.Itoa(len(result.Layouts)))

		if len(result.Layouts) == 0 {
			PrintEmptyState("No layouts in analysis")
			return nil
		}

		PrintSection("Layouts")
		rows := make([][]string, 0, len(result.Layouts))
		for _, layout := range result.Layouts {
			rows = append(rows, []string{
				strconv.Itoa(layout.Index),
				layout.Name,
				layout.Category,
				formatTypeCounts(layout.TypeCounts),
			})
		}
		PrintTable([]string{"Index", "Name", "Category", "Placeholders"}, rows)
		return nil
	},
}

// formatTypeCounts renders placeholder counts as "Title, Body x2".
func formatTypeCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "-"
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		if counts[name] == 1 {
			parts = append(parts, name)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s x%d", name, counts[name]))
	}
	return strings.Join(parts, ", ")
}
