package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show advisories for today's metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		advisories, err := client.GetInsights(context.Background())
		if err != nil {
			return err
		}
		for _, a := range advisories {
			cmd.Printf("[%s] %s\n", a.Category, a.Text)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}
