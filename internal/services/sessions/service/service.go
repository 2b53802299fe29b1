// Package service implements the sessions service
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"devskill/internal/core/langid"
	perr "devskill/internal/platform/errors"
	"devskill/internal/platform/store"
	"devskill/internal/services/sessions/domain"
)

// Binder binds domain.Repo to a querier or transaction
type Binder interface {
	Bind(q store.RowQuerier) domain.Repo
}

// Svc implements domain.SessionsPort
type Svc struct {
	db     store.TxRunner
	binder Binder
	now    func() time.Time
}

// Compile-time assertion: Svc implements domain.SessionsPort
var _ domain.SessionsPort = (*Svc)(nil)

// New constructs the sessions service
func New(db store.TxRunner, binder Binder) *Svc {
	if db == nil {
		panic("sessions.Service requires a non-nil TxRunner")
	}
	if binder == nil {
		panic("sessions.Service requires a non-nil Repo binder")
	}
	return &Svc{db: db, binder: binder, now: time.Now}
}

// Start opens a new active session and returns it
func (s *Svc) Start(ctx context.Context, in domain.StartInput) (domain.Session, error) {
	if in.UserID == "" {
		return domain.Session{}, perr.InvalidArgf("userId is required")
	}

	sess := domain.Session{
		ID:          uuid.NewString(),
		UserID:      in.UserID,
		Editor:      in.Editor,
		ProjectName: in.ProjectName,
		Language:    langid.Canonical(in.Language),
		Status:      domain.StatusActive,
		StartedAt:   s.now().UTC(),
	}

	err := s.db.Tx(ctx, func(q store.RowQuerier) error {
		return s.binder.Bind(q).Insert(ctx, sess)
	})
	if err != nil {
		return domain.Session{}, err
	}
	return sess, nil
}

// Update stores the plugin's running totals for an active session
func (s *Svc) Update(ctx context.Context, id string, in domain.UpdateInput) (domain.Session, error) {
	return s.applyCounters(ctx, id, in, nil)
}

// End stores the final totals and completes the session
func (s *Svc) End(ctx context.Context, id string, in domain.UpdateInput) (domain.Session, error) {
	endedAt := s.now().UTC()
	return s.applyCounters(ctx, id, in, &endedAt)
}

func (s *Svc) applyCounters(
	ctx context.Context, id string, in domain.UpdateInput, endedAt *time.Time,
) (domain.Session, error) {
	if id == "" {
		return domain.Session{}, perr.InvalidArgf("session id is required")
	}
	in.LanguagesUsed = langid.Fold(in.LanguagesUsed)

	var out domain.Session
	err := s.db.Tx(ctx, func(q store.RowQuerier) error {
		var err error
		out, err = s.binder.Bind(q).UpdateCounters(ctx, id, in, endedAt)
		return err
	})
	if err != nil {
		return domain.Session{}, err
	}
	return out, nil
}

// Get returns one session by id
func (s *Svc) Get(ctx context.Context, id string) (domain.Session, error) {
	if id == "" {
		return domain.Session{}, perr.InvalidArgf("session id is required")
	}
	return s.binder.Bind(s.db).Get(ctx, id)
}

// List pages a user's sessions, newest first
func (s *Svc) List(ctx context.Context, in domain.ListInput) ([]domain.Session, int, error) {
	if in.UserID == "" {
		return nil, 0, perr.InvalidArgf("userId is required")
	}
	if in.Limit <= 0 || in.Limit > 200 {
		in.Limit = 50
	}
	if in.Offset < 0 {
		in.Offset = 0
	}
	return s.binder.Bind(s.db).List(ctx, in)
}
