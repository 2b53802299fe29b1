package service

import (
	"context"
	"errors"
	"sync"
	"time"

	perr "devskill/internal/platform/errors"
	"devskill/internal/services/detect/domain"
)

// RescoreRange re-runs the engine over completed sessions in [since, until).
// Used after recalibrating weights or bumping the engine version; results
// are append-only so old scores stay auditable
func (s *Svc) RescoreRange(ctx context.Context, since, until time.Time) (domain.RescoreStats, error) {
	since = since.UTC()
	until = until.UTC()
	if !until.After(since) {
		return domain.RescoreStats{}, errors.New("until must be after since")
	}

	var (
		stats domain.RescoreStats
		mu    sync.Mutex
	)

	repo := s.binder.Bind(s.db)
	afterID := ""
	for {
		ids, err := repo.CompletedSessionIDs(ctx, since, until, afterID, s.cfg.PageSize)
		if err != nil {
			return stats, err
		}
		if len(ids) == 0 {
			return stats, nil
		}

		sem := make(chan struct{}, s.cfg.Workers)
		wg := sync.WaitGroup{}

		for _, id := range ids {
			wg.Add(1)
			sem <- struct{}{}
			go func(id string) {
				defer func() { <-sem; wg.Done() }()

				_, err := s.Score(ctx, id)

				mu.Lock()
				defer mu.Unlock()
				stats.Sessions++
				switch {
				case err == nil:
					stats.Scored++
				case perr.IsCode(err, perr.ErrorCodeValidation):
					// sessions without telemetry are expected in a backfill
					stats.Skipped++
				default:
					stats.Failed++
				}
			}(id)
		}
		wg.Wait()

		if ctx.Err() != nil {
			return stats, ctx.Err()
		}
		afterID = ids[len(ids)-1]
	}
}
