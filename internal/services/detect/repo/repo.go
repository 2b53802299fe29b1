// Package repo provides Postgres bindings for the detect domain.Repo
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"devskill/internal/core/detection"
	perr "devskill/internal/platform/errors"
	"devskill/internal/platform/store"
	"devskill/internal/services/detect/domain"
)

type (
	// PG is a Postgres binder for domain.Repo
	PG      struct{}
	queries struct{ q store.RowQuerier }
)

// Compile-time assertion: queries implements domain.Repo
var _ domain.Repo = (*queries)(nil)

// NewPG returns a Postgres binder for Repo
func NewPG() PG { return PG{} }

// Bind binds the repo to a querier or transaction
func (PG) Bind(q store.RowQuerier) domain.Repo { return &queries{q: q} }

// Insert appends one engine run. Results are append-only; Latest picks
// the newest row, so rescoring never rewrites history
func (r *queries) Insert(ctx context.Context, d domain.Detection) error {
	// column type is json, not jsonb: signal order is part of the contract
	signals, err := json.Marshal(d.Signals)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "marshal signals")
	}
	_, err = r.q.Exec(ctx, `
		INSERT INTO detection_results (
			session_id, ai_likelihood_score, confidence, verdict,
			signals, recommendation, engine_version, mode, scored_at
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		d.SessionID, d.Score, d.Confidence, string(d.Verdict),
		signals, d.Recommendation, d.EngineVersion, string(d.Mode), d.ScoredAt,
	)
	if err != nil {
		return perr.FromPostgres(err, "insert detection result")
	}
	return nil
}

func scanDetection(r store.Row) (domain.Detection, error) {
	var (
		d       domain.Detection
		verdict string
		mode    string
		signals []byte
	)
	err := r.Scan(
		&d.SessionID, &d.Score, &d.Confidence, &verdict,
		&signals, &d.Recommendation, &d.EngineVersion, &mode, &d.ScoredAt,
	)
	if err != nil {
		return domain.Detection{}, err
	}
	d.Verdict = detection.Verdict(verdict)
	d.Mode = domain.Mode(mode)
	if err := json.Unmarshal(signals, &d.Signals); err != nil {
		return domain.Detection{}, err
	}
	return d, nil
}

func (r *queries) LatestBySession(ctx context.Context, sessionID string) (domain.Detection, error) {
	d, err := store.One(ctx, r.q, scanDetection, `
		SELECT session_id, ai_likelihood_score, confidence, verdict,
		       signals, recommendation, engine_version, mode, scored_at
		FROM detection_results
		WHERE session_id = $1
		ORDER BY scored_at DESC
		LIMIT 1
	`, sessionID)
	if err != nil {
		if errors.Is(err, perr.ErrNotFound) {
			return domain.Detection{}, perr.NotFoundf("no detection result for session %s", sessionID)
		}
		return domain.Detection{}, perr.FromPostgresf(err, "latest detection for %s", sessionID)
	}
	return d, nil
}

func (r *queries) CompletedSessionIDs(
	ctx context.Context, since, until time.Time, afterID string, limit int,
) ([]string, error) {
	ids, err := store.Many(ctx, r.q,
		func(row store.Row) (string, error) {
			var id string
			err := row.Scan(&id)
			return id, err
		}, `
		SELECT id
		FROM sessions
		WHERE status = 'completed'
		  AND ended_at >= $1 AND ended_at < $2
		  AND id > $3
		ORDER BY id ASC
		LIMIT $4
	`, since, until, afterID, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "page completed sessions")
	}
	return ids, nil
}
