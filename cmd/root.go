package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vitals",
	Short: "Track daily wellness metrics and get simple insights",
	Long: `
	Vitals is a personal wellness tracker. It records steps, sleep, water and
	mood, derives rule-based insights from them, and runs a small dashboard
	server with hydration reminders for subscribers.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
