// Package reporter formats the job digest and delivers it.
package reporter

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
)

// Notifier delivers a digest. recipient may be empty to use the configured one.
// A notifier without credentials logs and returns nil.
type Notifier interface {
	Name() string
	Send(ctx context.Context, recipient, subject, body string) error
}

// Broadcast sends through every notifier; one failing does not stop the rest.
func Broadcast(ctx context.Context, notifiers []Notifier, subject, body string) error {
	var errs []error
	for _, n := range notifiers {
		if err := n.Send(ctx, "", subject, body); err != nil {
			log.Error().Err(err).Str("notifier", n.Name()).Msg("❌ Failed to send notification")
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
