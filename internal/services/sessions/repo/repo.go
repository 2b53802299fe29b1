// Package repo provides Postgres bindings for the sessions domain.Repo
package repo

import (
	"context"
	"errors"
	"time"

	perr "devskill/internal/platform/errors"
	"devskill/internal/platform/store"
	"devskill/internal/services/sessions/domain"
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

const sessionCols = `
	id, user_id, editor, project_name, language, status,
	started_at, ended_at,
	total_keystrokes, total_pastes, total_edits,
	active_seconds, idle_seconds, files_edited, languages_used`

func scanSession(r store.Row) (domain.Session, error) {
	var s domain.Session
	err := r.Scan(
		&s.ID, &s.UserID, &s.Editor, &s.ProjectName, &s.Language, &s.Status,
		&s.StartedAt, &s.EndedAt,
		&s.TotalKeystrokes, &s.TotalPastes, &s.TotalEdits,
		&s.ActiveSeconds, &s.IdleSeconds, &s.FilesEdited, &s.LanguagesUsed,
	)
	return s, err
}

func (r *queries) Insert(ctx context.Context, s domain.Session) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO sessions (`+sessionCols+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`,
		s.ID, s.UserID, s.Editor, s.ProjectName, s.Language, s.Status,
		s.StartedAt, s.EndedAt,
		s.TotalKeystrokes, s.TotalPastes, s.TotalEdits,
		s.ActiveSeconds, s.IdleSeconds, s.FilesEdited, s.LanguagesUsed,
	)
	if err != nil {
		return perr.FromPostgres(err, "insert session")
	}
	return nil
}

// UpdateCounters stores the plugin's running totals.
// A non-nil endedAt also completes the session
func (r *queries) UpdateCounters(
	ctx context.Context, id string, in domain.UpdateInput, endedAt *time.Time,
) (domain.Session, error) {
	s, err := store.One(ctx, r.q, scanSession, `
		UPDATE sessions SET
			total_keystrokes = $2,
			total_pastes     = $3,
			total_edits      = $4,
			active_seconds   = $5,
			idle_seconds     = $6,
			files_edited     = $7,
			languages_used   = $8,
			ended_at         = COALESCE($9, ended_at),
			status           = CASE WHEN $9::timestamptz IS NOT NULL THEN 'completed' ELSE status END
		WHERE id = $1
		RETURNING `+sessionCols,
		id,
		in.TotalKeystrokes, in.TotalPastes, in.TotalEdits,
		in.ActiveDuration, in.IdleDuration, in.FilesEdited,
		in.LanguagesUsed, endedAt,
	)
	if err != nil {
		if errors.Is(err, perr.ErrNotFound) {
			return domain.Session{}, perr.NotFoundf("session %s not found", id)
		}
		return domain.Session{}, perr.FromPostgresf(err, "update session %s", id)
	}
	return s, nil
}

func (r *queries) Get(ctx context.Context, id string) (domain.Session, error) {
	s, err := store.One(ctx, r.q, scanSession,
		`SELECT `+sessionCols+` FROM sessions WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, perr.ErrNotFound) {
			return domain.Session{}, perr.NotFoundf("session %s not found", id)
		}
		return domain.Session{}, perr.FromPostgresf(err, "get session %s", id)
	}
	return s, nil
}

func (r *queries) List(ctx context.Context, in domain.ListInput) ([]domain.Session, int, error) {
	total, err := store.Scalar[int](ctx, r.q,
		`SELECT COUNT(*) FROM sessions WHERE user_id = $1`, in.UserID)
	if err != nil {
		return nil, 0, perr.FromPostgres(err, "count sessions")
	}

	rows, err := store.Many(ctx, r.q, scanSession, `
		SELECT `+sessionCols+`
		FROM sessions
		WHERE user_id = $1
		ORDER BY started_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`, in.UserID, in.Limit, in.Offset)
	if err != nil {
		return nil, 0, perr.FromPostgres(err, "list sessions")
	}
	return rows, total, nil
}
