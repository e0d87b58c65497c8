package cmd

import (
	"fmt"
	"os"

	"github.com/prepmate/prepmate/internal/bank"
	"github.com/prepmate/prepmate/internal/calibration"
	"github.com/prepmate/prepmate/internal/ui/theme"
	"github.com/spf13/cobra"
)

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Fill missing item parameters from content tags",
	Long: "Calibrate derives 3PL parameters for every bank item that lacks them:\n" +
		"difficulty from the score band, discrimination from the tier, and the\n" +
		"guessing floor from the answer format. Already-calibrated items are\n" +
		"left untouched.",
	RunE: func(cmd *cobra.Command, args []string) error {
		bankPath, _ := cmd.Flags().GetString("bank")
		outPath, _ := cmd.Flags().GetString("out")

		b, err := bank.Load(bankPath)
		if err != nil {
			return fmt.Errorf("load bank: %w", err)
		}

		items := b.Items()
		res := calibration.Run(items)
		rep := calibration.Coverage(items)

		fmt.Println(theme.Title.Render("Calibration"))
		fmt.Printf("  items seen     %d\n", res.ItemsSeen)
		fmt.Printf("  items touched  %d\n", res.ItemsTouched)
		fmt.Printf("  fields set     %d\n", res.FieldsSet)
		fmt.Println()
		fmt.Println(theme.Title.Render("Coverage"))
		fmt.Println(theme.TableHeader.Render(
			fmt.Sprintf("  %-16s  %9s  %8s  %7s  %7s  %7s", "parameter", "populated", "fraction", "min", "max", "mean")))
		printParamStats("discrimination", rep.Discrimination)
		printParamStats("difficulty", rep.Difficulty)
		printParamStats("guessing", rep.Guessing)

		if outPath != "" {
			raw, err := bank.Marshal(items)
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, raw, 0o644); err != nil {
				return fmt.Errorf("write calibrated bank: %w", err)
			}
			fmt.Println()
			fmt.Println("Calibrated bank written to", outPath)
		}
		return nil
	},
}

func printParamStats(name string, s calibration.ParamStats) {
	if s.Populated == 0 {
		fmt.Printf("  %-16s  %9d  %8s  %7s  %7s  %7s\n", name, 0, "0%", "-", "-", "-")
		return
	}
	fmt.Printf("  %-16s  %9d  %7.0f%%  %7.2f  %7.2f  %7.2f\n",
		name, s.Populated, s.Fraction*100, s.Min, s.Max, s.Mean)
}

func init() {
	calibrateCmd.Flags().String("bank", "", "Path to the item bank JSON file")
	calibrateCmd.Flags().String("out", "", "Write the calibrated bank to this path")
	calibrateCmd.MarkFlagRequired("bank")
}
