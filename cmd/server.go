package cmd

import (
	"net/http"
	"os"

	"github.com/mfeehan/vitals/internal/config"
	"github.com/mfeehan/vitals/internal/logger"
	"github.com/mfeehan/vitals/internal/notify"
	"github.com/mfeehan/vitals/internal/server"
	"github.com/mfeehan/vitals/internal/storage/bolt"
	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the vitals HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return startServer()
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}

func startServer() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store, err := bolt.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := server.New(store, cfg, notifierFromEnv(cfg))
	if cfg.AuthEnabled {
		if err := srv.ConfigureOIDCProviders(); err != nil {
			return err
		}
	}

	srv.StartTimers()
	defer srv.StopTimers()

	logger.Info("server listening", "addr", cfg.ListenAddr)
	return http.ListenAndServe(cfg.ListenAddr, srv.Router())
}

// notifierFromEnv picks the email notifier when a resend key is present and
// silently degrades to the no-op one otherwise.
func notifierFromEnv(cfg *config.Config) notify.Notifier {
	apiKey := os.Getenv("VITALS_RESEND_API_KEY")
	if apiKey == "" {
		logger.Info("no resend API key, email reminders disabled")
		return notify.Noop{}
	}
	return &notify.ResendNotifier{ApiKey: apiKey, From: cfg.NotifyFrom}
}
