package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mfeehan/vitals/internal/config"
	"github.com/mfeehan/vitals/internal/notify"
	"github.com/mfeehan/vitals/internal/remind"

	"github.com/spf13/cobra"
)

var (
	remindCfg    *config.Config
	resendApiKey string
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Email subscribers their hydration reminder and advisory digest",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if resendApiKey = os.Getenv("VITALS_RESEND_API_KEY"); resendApiKey == "" {
			return fmt.Errorf("VITALS_RESEND_API_KEY environment variable is not set")
		}

		var err error
		remindCfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("error loading config file: %v", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		n := &notify.ResendNotifier{
			ApiKey: resendApiKey,
			From:   remindCfg.NotifyFrom,
		}
		client, err := newClient()
		if err != nil {
			return err
		}
		return remind.Run(context.Background(), client, n)
	},
}

func init() {
	rootCmd.AddCommand(remindCmd)
}
