package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"deckplan/internal/engine"
	"deckplan/internal/planner"
)

var (
	planOut   string
	planRunID string
)

var planCmd = &cobra.Command{
	Use:   "plan <outline.json> <template_analysis.json>",
	Short: "Resolve an outline into a slide plan",
	Long: `Resolve a presentation outline against a template analysis and write the
resulting slide plan.

Each placeholder reference is resolved to a concrete (type, ordinal) address
on the selected layout. Slide-local problems are collected into the plan's
validation block; the plan is written either way so every problem can be
reviewed at once.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.Plan(engine.PlanRequest{
			OutlinePath:  args[0],
			TemplatePath: args[1],
			OutputPath:   planOut,
			RunID:        planRunID,
		})
		if err != nil && !errors.Is(err, planner.ErrPlanInvalid) {
			return err
		}

		if jsonOutput {
			if jsonErr := outputJSON(result); jsonErr != nil {
				return jsonErr
			}
			return err
		}

		printPlanResult(result)
		return err
	},
}

func init() {
	planCmd.Flags().StringVar(&planOut, "out", "slide_plan.json", "Output path for the plan")
	planCmd.Flags().StringVar(&planRunID, "run-id", "", "Override the generated run ID (for reproducible output)")
}

// printPlanResult reports resolution outcome, diagnostics, and layout usage.
func printPlanResult(result *engine.PlanResult) {
	PrintSuccess(fmt.Sprintf("Generated plan with %s", PrintCount(len(result.Plan.Slides), "slide", "slides")))
	if result.OutputPath != "" {
		PrintLabelValue("Plan", result.OutputPath)
	}

	for _, warning := range result.Warnings {
		PrintWarning(warning)
	}
	for _, err := range result.Errors {
		PrintError(err)
	}

	if len(result.Plan.LayoutUsage) > 0 {
		PrintSection("Layout usage")
		names := make([]string, 0, len(result.Plan.LayoutUsage))
		for name := range result.Plan.LayoutUsage {
			names = append(names, name)
		}
		sort.Strings(names)

		rows := make([][]string, 0, len(names))
		for _, name := range names {
			rows = append(rows, []string{name, PrintCount(result.Plan.LayoutUsage[name], "slide", "slides")})
		}
		PrintTable([]string{"Layout", "Usage"}, rows)
	}
}
