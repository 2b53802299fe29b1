// Package domain defines the core types and interfaces for the telemetry service
package domain

import (
	"context"
	"time"

	"devskill/internal/core/detection"
)

// MaxBatchEvents bounds one ingest call. Plugins flush every few seconds,
// so batches beyond this indicate a buggy or hostile collector
const MaxBatchEvents = 10000

// IngestInput is one batch of ordered events from a plugin flush
type IngestInput struct {
	Events []detection.Event `json:"events" validate:"required,min=1"`
}

// TelemetryPort is the external surface of the telemetry service
type TelemetryPort interface {
	// Ingest validates and appends a batch, returning the number stored
	Ingest(ctx context.Context, sessionID string, events []detection.Event) (int, error)
}

// ReaderPort returns a session's events ordered by timestamp
type ReaderPort interface {
	Events(ctx context.Context, sessionID string) ([]detection.Event, error)
}

// Repo is the columnar persistence surface
type Repo interface {
	Append(ctx context.Context, sessionID string, events []detection.Event, receivedAt time.Time) error
	BySession(ctx context.Context, sessionID string) ([]detection.Event, error)
}
