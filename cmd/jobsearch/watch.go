package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-jobsearch-automation/internal/scheduler"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var watchNow bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the job search on the configured cron schedule until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		a, err := newApp(ctx, cfg)
		if err != nil {
			return err
		}
		defer a.close()

		s, err := scheduler.New(cfg.Schedule, func(ctx context.Context) {
			if _, err := a.runner.Run(ctx); err != nil {
				log.Error().Err(err).Msg("❌ Scheduled job search failed")
			}
		})
		if err != nil {
			return err
		}
		return s.Run(ctx, watchNow)
	},
}

func init() {
	watchCmd.Flags().BoolVar(&watchNow, "now", false, "Also run once immediately")
}
