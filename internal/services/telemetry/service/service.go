// Package service implements the telemetry service
package service

import (
	"context"
	"time"

	"devskill/internal/core/detection"
	perr "devskill/internal/platform/errors"
	"devskill/internal/services/telemetry/domain"
)

// Svc implements domain.TelemetryPort and domain.ReaderPort
type Svc struct {
	repo domain.Repo
	now  func() time.Time
}

var (
	_ domain.TelemetryPort = (*Svc)(nil)
	_ domain.ReaderPort    = (*Svc)(nil)
)

// New constructs the telemetry service
func New(repo domain.Repo) *Svc {
	if repo == nil {
		panic("telemetry.Service requires a non-nil Repo")
	}
	return &Svc{repo: repo, now: time.Now}
}

// Ingest validates and appends one batch of ordered events
func (s *Svc) Ingest(ctx context.Context, sessionID string, events []detection.Event) (int, error) {
	if sessionID == "" {
		return 0, perr.InvalidArgf("session id is required")
	}
	if len(events) == 0 {
		return 0, perr.InvalidArgf("event batch is empty")
	}
	if len(events) > domain.MaxBatchEvents {
		return 0, perr.InvalidArgf("event batch exceeds %d events", domain.MaxBatchEvents)
	}
	if err := detection.ValidateEvents(events); err != nil {
		return 0, perr.Wrap(err, perr.ErrorCodeValidation, "telemetry batch rejected")
	}
	if err := s.repo.Append(ctx, sessionID, events, s.now()); err != nil {
		return 0, err
	}
	return len(events), nil
}

// Events returns a session's stored events ordered by timestamp
func (s *Svc) Events(ctx context.Context, sessionID string) ([]detection.Event, error) {
	if sessionID == "" {
		return nil, perr.InvalidArgf("session id is required")
	}
	return s.repo.BySession(ctx, sessionID)
}
