package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobsearch-automation/internal/pipeline"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var digestSince string

var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Send a digest of jobs stored since a point in time",
	RunE: func(cmd *cobra.Command, args []string) error {
		since, err := pipeline.ParseSince(digestSince, time.Now())
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		a, err := newApp(ctx, cfg)
		if err != nil {
			return err
		}
		defer a.close()

		jobs, err := a.runner.Digest(ctx, since)
		if err != nil {
			return err
		}
		log.Info().Int("jobs", len(jobs)).Time("since", since).Msg("📬 Digest done")
		return nil
	},
}

func init() {
	digestCmd.Flags().StringVar(&digestSince, "since", "24h", "RFC3339 time or a duration back from now (e.g. 48h)")
}
