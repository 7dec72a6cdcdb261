package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"deckplan/internal/engine"
)

var (
	scriptOut        string
	scriptDebugSlide int
)

var scriptCmd = &cobra.Command{
	Use:   "script <slide_plan.json>",
	Short: "Generate a macro script from a slide plan",
	Long: `Generate an executable PowerPoint VBA script from a previously written
slide plan.

The script is self-contained and targets the active presentation: open the
template, paste the script into a new VBA module, and run "Main".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.Script(engine.ScriptRequest{
			PlanPath:   args[0],
			OutputPath: scriptOut,
			DebugSlide: scriptDebugSlide,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSuccess(fmt.Sprintf("Generated VBA for %s", PrintCount(result.SlideCount, "slide", "slides")))
		PrintInfo(fmt.Sprintf("Using %s", PrintCount(len(result.UsedLayouts), "unique layout", "unique layouts")))
		if result.OutputPath != "" {
			PrintLabelValue("Script", result.OutputPath)
		}
		return nil
	},
}

func init() {
	scriptCmd.Flags().StringVar(&scriptOut, "out", "generated_script.vba", "Output path for the script")
	scriptCmd.Flags().IntVar(&scriptDebugSlide, "debug-slide", 0, "Emit placeholder diagnostics for the given slide number")
}
