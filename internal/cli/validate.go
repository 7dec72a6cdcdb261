package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"deckplan/internal/engine"
)

var (
	validatePlanPath   string
	validateScriptPath string
)

var validateCmd = &cobra.Command{
	Use:   "validate <outline.json> <template_analysis.json>",
	Short: "Validate workflow artifacts",
	Long: `Run structural validation over workflow artifacts without converting
anything.

The outline and template analysis are always checked. A generated plan or
script can be included with --plan and --script.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.Validate(engine.ValidateRequest{
			OutlinePath:  args[0],
			TemplatePath: args[1],
			PlanPath:     validatePlanPath,
			ScriptPath:   validateScriptPath,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			if jsonErr := outputJSON(result); jsonErr != nil {
				return jsonErr
			}
			if !result.Overall.Valid {
				return fmt.Errorf("validation failed with %d error(s)", result.Overall.TotalErrors)
			}
			return nil
		}

		for _, stage := range result.Stages {
			report := result.Reports[stage]
			PrintSection(stage)
			if report.Valid {
				PrintSuccess("Valid")
			} else {
				PrintError("Invalid")
			}
			for _, msg := range report.Errors {
				PrintError(msg)
			}
			for _, msg := range report.Warnings {
				PrintWarning(msg)
			}
			for _, msg := range report.Info {
				PrintInfo(msg)
			}
		}

		PrintSection("Overall")
		if result.Overall.Valid {
			PrintSuccess("All validations passed")
			return nil
		}
		PrintError(fmt.Sprintf("%s, %s",
			PrintCount(result.Overall.TotalErrors, "error", "errors"),
			PrintCount(result.Overall.TotalWarnings, "warning", "warnings")))
		return fmt.Errorf("validation failed with %d error(s)", result.Overall.TotalErrors)
	},
}

func init() {
	validateCmd.Flags().StringVar(&validatePlanPath, "plan", "", "Also validate a generated plan")
	validateCmd.Flags().StringVar(&validateScriptPath, "script", "", "Also validate a generated script")
}
