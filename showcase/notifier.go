// Copyright (c) 2026 Bentofolio.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package showcase

import (
	"context"
	"log/slog"

	"github.com/bentofolio/showcase-api/models"
)

// WinnerNotifier is the seam to the external notification collaborator
// (email delivery lives outside this service). Notification is best-effort:
// the resolver logs failures and never lets them fail a resolution.
type WinnerNotifier interface {
	WinnerDecided(ctx context.Context, rec models.WinnerRecord) error
}

// LogNotifier announces decisions in the service log. It is the default
// collaborator in deployments where the notification worker subscribes to
// the log stream.
type LogNotifier struct{}

func (LogNotifier) WinnerDecided(_ context.Context, rec models.WinnerRecord) error {
	slog.Info("winner decided",
		"week", rec.Week,
		"candidate_id", rec.CandidateID,
		"decided_by", rec.DecidedBy,
	)
	return nil
}
