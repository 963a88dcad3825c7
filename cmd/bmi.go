package cmd

import (
	"github.com/mfeehan/vitals/internal/body"
	"github.com/spf13/cobra"
)

var (
	bmiHeight   float64
	bmiWeight   float64
	bmiActivity float64
)

// bmi runs locally; it needs no server.
var bmiCmd = &cobra.Command{
	Use:   "bmi",
	Short: "Compute BMI and estimated daily calories",
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := body.Report(bmiHeight, bmiWeight, bmiActivity)
		if err != nil {
			return err
		}
		cmd.Printf("BMI: %.1f (%s)\n", report.BMI, report.Category)
		cmd.Printf("Estimated daily calories: %d kcal\n", report.DailyCalories)
		return nil
	},
}

func init() {
	bmiCmd.Flags().Float64Var(&bmiHeight, "height", 0, "height in cm")
	bmiCmd.Flags().Float64Var(&bmiWeight, "weight", 0, "weight in kg")
	bmiCmd.Flags().Float64Var(&bmiActivity, "activity", 1.2, "activity multiplier")
	_ = bmiCmd.MarkFlagRequired("height")
	_ = bmiCmd.MarkFlagRequired("weight")
	rootCmd.AddCommand(bmiCmd)
}
