package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one job search now",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		a, err := newApp(ctx, cfg)
		if err != nil {
			return err
		}
		defer a.close()

		rep, err := a.runner.Run(ctx)
		if err != nil {
			log.Error().Err(err).Msg("❌ Job search aborted")
			return err
		}
		for _, s := range rep.Sources {
			if s.Err != nil {
				log.Warn().Str("source", s.Source).Err(s.Err).Msg("Source returned no jobs")
			}
		}
		return nil
	},
}
