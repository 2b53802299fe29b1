package domain

import (
	"context"
	"time"
)

// DetectPort is the request-scoped surface of the detect service
type DetectPort interface {
	// Score runs the engine over a session's stored telemetry and persists
	// the result. Sessions with no telemetry at all return an error rather
	// than a fabricated pass
	Score(ctx context.Context, sessionID string) (Detection, error)

	// Latest returns the most recent persisted result for a session
	Latest(ctx context.Context, sessionID string) (Detection, error)

	// Analyze scores aggregate counters without an event stream
	Analyze(ctx context.Context, in AnalyzeInput) (Analysis, error)
}

// RunnerPort is the batch surface used by the rescore command
type RunnerPort interface {
	RescoreRange(ctx context.Context, since, until time.Time) (RescoreStats, error)
}

// Repo is the persistence surface for detection results
type Repo interface {
	Insert(ctx context.Context, d Detection) error
	LatestBySession(ctx context.Context, sessionID string) (Detection, error)

	// CompletedSessionIDs pages completed-session ids in a window using
	// keyset pagination on id
	CompletedSessionIDs(ctx context.Context, since, until time.Time, afterID string, limit int) ([]string, error)
}
