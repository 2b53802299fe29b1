package domain

import (
	"context"
	"time"
)

// SessionsPort is the external surface of the sessions service
type SessionsPort interface {
	Start(ctx context.Context, in StartInput) (Session, error)
	Update(ctx context.Context, id string, in UpdateInput) (Session, error)
	End(ctx context.Context, id string, in UpdateInput) (Session, error)
	Get(ctx context.Context, id string) (Session, error)
	List(ctx context.Context, in ListInput) ([]Session, int, error)
}

// Repo is the persistence surface bound per query or transaction
type Repo interface {
	Insert(ctx context.Context, s Session) error
	UpdateCounters(ctx context.Context, id string, in UpdateInput, endedAt *time.Time) (Session, error)
	Get(ctx context.Context, id string) (Session, error)
	List(ctx context.Context, in ListInput) ([]Session, int, error)
}
