package cmd

import (
	"context"
	"strconv"

	"github.com/mfeehan/vitals/internal/apiclient"
	"github.com/mfeehan/vitals/internal/config"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a wellness metric",
	Long:  `The "log" command records steps, sleep, water or mood against the running server.`,
}

var logStepsCmd = &cobra.Command{
	Use:   "steps <count>",
	Short: "Add steps to today's total",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		client, err := newClient()
		if err != nil {
			return err
		}
		total, err := client.AddSteps(context.Background(), count)
		if err != nil {
			return err
		}
		cmd.Printf("Steps today: %d\n", total)
		return nil
	},
}

var logSleepCmd = &cobra.Command{
	Use:   "sleep <hours>",
	Short: "Record last night's sleep",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hours, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return err
		}
		client, err := newClient()
		if err != nil {
			return err
		}
		if err := client.LogSleep(context.Background(), hours); err != nil {
			return err
		}
		cmd.Printf("Sleep recorded: %.1f hours\n", hours)
		return nil
	},
}

var logWaterCmd = &cobra.Command{
	Use:   "water [delta]",
	Short: "Log glasses of water (default 1)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		delta := 1
		if len(args) == 1 {
			var err error
			delta, err = strconv.Atoi(args[0])
			if err != nil {
				return err
			}
		}
		client, err := newClient()
		if err != nil {
			return err
		}
		glasses, err := client.AddWater(context.Background(), delta)
		if err != nil {
			return err
		}
		cmd.Printf("Water today: %d of 8 glasses\n", glasses)
		return nil
	},
}

var moodNote string

var logMoodCmd = &cobra.Command{
	Use:   "mood <great|good|okay|low|stressed>",
	Short: "Log how you're feeling",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		if err := client.LogMood(context.Background(), args[0], moodNote); err != nil {
			return err
		}
		cmd.Println("Mood logged.")
		return nil
	},
}

func newClient() (*apiclient.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return apiclient.New(cfg.APIBaseURL), nil
}

func init() {
	logMoodCmd.Flags().StringVarP(&moodNote, "note", "n", "", "optional note to attach")
	logCmd.AddCommand(logStepsCmd, logSleepCmd, logWaterCmd, logMoodCmd)
	rootCmd.AddCommand(logCmd)
}
