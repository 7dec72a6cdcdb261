package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"deckplan/internal/engine"
	"deckplan/internal/planner"
)

var (
	runOutDir     string
	runDebugSlide int
	runSkipChecks bool
	runRunID      string
)

var runCmd = &cobra.Command{
	Use:   "run <outline.json> <template_analysis.json>",
	Short: "Run the full outline-to-script pipeline",
	Long: `Run the complete conversion pipeline: validate both inputs, resolve the
outline into a slide plan, generate the macro script, and check the generated
artifacts.

The pipeline stops at the first failing stage. Artifacts produced before the
failure are kept so they can be inspected.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.Run(engine.RunRequest{
			OutlinePath:  args[0],
			TemplatePath: args[1],
			PlanOutput:   filepath.Join(runOutDir, "slide_plan.json"),
			ScriptOutput: filepath.Join(runOutDir, "generated_script.vba"),
			DebugSlide:   runDebugSlide,
			SkipChecks:   runSkipChecks,
			RunID:        runRunID,
		})
		if result == nil {
			return err
		}

		if jsonOutput {
			if jsonErr := outputJSON(result); jsonErr != nil {
				return jsonErr
			}
			return err
		}

		printRunResult(result, err)
		return err
	},
}

func init() {
	runCmd.Flags().StringVar(&runOutDir, "out-dir", ".", "Directory for generated artifacts")
	runCmd.Flags().IntVar(&runDebugSlide, "debug-slide", 0, "Emit placeholder diagnostics for the given slide number")
	runCmd.Flags().BoolVar(&runSkipChecks, "skip-checks", false, "Skip post-generation artifact checks")
	runCmd.Flags().StringVar(&runRunID, "run-id", "", "Override the generated run ID (for reproducible output)")
}

func printRunResult(result *engine.RunResult, runErr error) {
	PrintSection("Preflight")
	for _, stage := range []string{"outline", "template"} {
		report, ok := result.Preflight[stage]
		if !ok {
			continue
		}
		if report.Valid {
			PrintSuccess(fmt.Sprintf("%s valid", stage))
		} else {
			PrintError(fmt.Sprintf("%s invalid", stage))
		}
		for _, msg := range report.Errors {
			PrintError(msg)
		}
		for _, msg := range report.Warnings {
			PrintWarning(msg)
		}
	}

	if result.Plan != nil {
		PrintSection("Plan")
		printPlanResult(result.Plan)
	}

	if result.Script != nil {
		PrintSection("Script")
		PrintSuccess(fmt.Sprintf("Generated VBA for %s", PrintCount(result.Script.SlideCount, "slide", "slides")))
		PrintLabelValue("Script", result.Script.OutputPath)
	}

	if len(result.Checks) > 0 {
		PrintSection("Artifact checks")
		for _, check := range result.Checks {
			if check.Passed {
				PrintSuccess(check.Name)
			} else {
				PrintError(check.Name)
			}
		}
	}

	if runErr == nil {
		PrintSection("Next steps")
		PrintList([]string{
			"Open your PowerPoint template",
			"Press Alt+F11 (Windows) or Opt+F11 (Mac)",
			"Insert > Module and paste the generated script",
			"Run 'ValidateTemplate' to check compatibility",
			"Run 'Main' to create slides",
		}, 1)
	} else if errors.Is(runErr, planner.ErrPlanInvalid) {
		PrintInfo("Review the plan's validation block, fix the outline, and run again.")
	}
}
