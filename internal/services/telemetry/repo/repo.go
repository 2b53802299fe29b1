// Package repo provides ClickHouse bindings for the telemetry domain.Repo
package repo

import (
	"context"
	"time"

	"devskill/internal/core/detection"
	perr "devskill/internal/platform/errors"
	"devskill/internal/platform/store"
	"devskill/internal/services/telemetry/domain"
)

// CH binds domain.Repo to the clickhouse seam
type CH struct {
	ch store.Clickhouse
}

// Compile-time assertion: CH implements domain.Repo
var _ domain.Repo = (*CH)(nil)

// NewCH constructs the clickhouse repo
func NewCH(ch store.Clickhouse) *CH {
	if ch == nil {
		panic("telemetry.Repo requires a non-nil Clickhouse seam")
	}
	return &CH{ch: ch}
}

// Append inserts one batch of events for a session.
// Ordering within the table comes from (session_id, at_ms)
func (r *CH) Append(
	ctx context.Context, sessionID string, events []detection.Event, receivedAt time.Time,
) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([][]any, len(events))
	for i, ev := range events {
		rows[i] = []any{
			sessionID,
			ev.AtMs,
			string(ev.Kind),
			int32(ev.SizeChars),
			receivedAt.UTC(),
		}
	}
	if err := r.ch.Insert(ctx,
		"telemetry_events (session_id, at_ms, kind, size_chars, received_at)", rows,
	); err != nil {
		return perr.Wrap(err, perr.ErrorCodeDB, "append telemetry batch")
	}
	return nil
}

// BySession returns a session's events ordered by timestamp
func (r *CH) BySession(ctx context.Context, sessionID string) ([]detection.Event, error) {
	rows, err := r.ch.Query(ctx, `
		SELECT at_ms, kind, size_chars
		FROM telemetry_events
		WHERE session_id = ?
		ORDER BY at_ms ASC
	`, sessionID)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "query telemetry events")
	}
	defer rows.Close()

	var out []detection.Event
	for rows.Next() {
		var (
			atMs int64
			kind string
			size int32
		)
		if err := rows.Scan(&atMs, &kind, &size); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeDB, "scan telemetry event")
		}
		out = append(out, detection.Event{
			AtMs:      atMs,
			Kind:      detection.EventKind(kind),
			SizeChars: int(size),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "iterate telemetry events")
	}
	return out, nil
}
