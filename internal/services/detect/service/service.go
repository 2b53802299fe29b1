// Package service implements the detect service
package service

import (
	"context"
	"time"

	"devskill/internal/core/detection"
	perr "devskill/internal/platform/errors"
	"devskill/internal/platform/store"
	"devskill/internal/services/detect/domain"
	sessdom "devskill/internal/services/sessions/domain"
	teldom "devskill/internal/services/telemetry/domain"
)

// Binder binds domain.Repo to a querier or transaction
type Binder interface {
	Bind(q store.RowQuerier) domain.Repo
}

// SessionSource is the slice of the sessions service detect needs
type SessionSource interface {
	Get(ctx context.Context, id string) (sessdom.Session, error)
}

// Config for the detect service
type Config struct {
	Workers  int
	PageSize int
}

// Svc implements domain.DetectPort and domain.RunnerPort
type Svc struct {
	db       store.TxRunner
	binder   Binder
	sessions SessionSource
	events   teldom.ReaderPort
	eng      *detection.Engine
	cfg      Config
	now      func() time.Time
}

var (
	_ domain.DetectPort = (*Svc)(nil)
	_ domain.RunnerPort = (*Svc)(nil)
)

// New constructs the detect service
func New(db store.TxRunner, binder Binder, sessions SessionSource, events teldom.ReaderPort, cfg Config) *Svc {
	if db == nil {
		panic("detect.Service requires a non-nil TxRunner")
	}
	if binder == nil {
		panic("detect.Service requires a non-nil Repo binder")
	}
	if sessions == nil || events == nil {
		panic("detect.Service requires session and telemetry sources")
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 500
	}
	return &Svc{
		db:       db,
		binder:   binder,
		sessions: sessions,
		events:   events,
		eng:      detection.New(detection.Config{}),
		cfg:      cfg,
		now:      time.Now,
	}
}

// Score runs the engine over a session's stored telemetry and persists the result
func (s *Svc) Score(ctx context.Context, sessionID string) (domain.Detection, error) {
	if sessionID == "" {
		return domain.Detection{}, perr.InvalidArgf("session id is required")
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return domain.Detection{}, err
	}
	events, err := s.events.Events(ctx, sessionID)
	if err != nil {
		return domain.Detection{}, err
	}

	var (
		res  detection.Result
		mode domain.Mode
	)
	switch {
	case len(events) > 0:
		res, err = s.eng.Evaluate(events, fullDuration(sess, events))
		mode = domain.ModeFull
	case sess.TotalKeystrokes > 0 || sess.TotalPastes > 0:
		var f detection.Features
		f, err = detection.Approximate(sess.TotalKeystrokes, sess.TotalPastes, float64(sess.ActiveSeconds))
		if err == nil {
			res, err = s.eng.EvaluateFeatures(f)
		}
		mode = domain.ModeApproximate
	default:
		return domain.Detection{}, perr.Newf(perr.ErrorCodeValidation,
			"detection skipped: session %s has no telemetry", sessionID)
	}
	if err != nil {
		return domain.Detection{}, perr.Wrap(err, perr.ErrorCodeValidation, "engine rejected telemetry")
	}

	d := s.record(sessionID, res, mode)
	if err := s.persist(ctx, d); err != nil {
		return domain.Detection{}, err
	}
	return d, nil
}

// Latest returns the most recent persisted result for a session
func (s *Svc) Latest(ctx context.Context, sessionID string) (domain.Detection, error) {
	if sessionID == "" {
		return domain.Detection{}, perr.InvalidArgf("session id is required")
	}
	return s.binder.Bind(s.db).LatestBySession(ctx, sessionID)
}

// Analyze scores aggregate counters without an event stream
func (s *Svc) Analyze(ctx context.Context, in domain.AnalyzeInput) (domain.Analysis, error) {
	f, err := detection.Approximate(in.TotalKeystrokes, in.TotalPastes, in.DurationSeconds)
	if err != nil {
		return domain.Analysis{}, perr.Wrap(err, perr.ErrorCodeValidation, "engine rejected counters")
	}
	res, err := s.eng.EvaluateFeatures(f)
	if err != nil {
		return domain.Analysis{}, perr.Wrap(err, perr.ErrorCodeValidation, "engine rejected counters")
	}

	out := domain.Analysis{
		Score:          res.AILikelihoodScore,
		Confidence:     res.Confidence,
		Verdict:        res.Verdict,
		Signals:        res.Signals,
		Recommendation: res.Recommendation,
		EngineVersion:  res.EngineVersion,
		Mode:           domain.ModeApproximate,
		SkillLevel:     skillLevel(in.Code),
	}

	if in.SessionID != "" {
		if err := s.persist(ctx, s.record(in.SessionID, res, domain.ModeApproximate)); err != nil {
			return domain.Analysis{}, err
		}
	}
	return out, nil
}

func (s *Svc) record(sessionID string, res detection.Result, mode domain.Mode) domain.Detection {
	return domain.Detection{
		SessionID:      sessionID,
		Score:          res.AILikelihoodScore,
		Confidence:     res.Confidence,
		Verdict:        res.Verdict,
		Signals:        res.Signals,
		Recommendation: res.Recommendation,
		EngineVersion:  res.EngineVersion,
		Mode:           mode,
		ScoredAt:       s.now().UTC(),
	}
}

func (s *Svc) persist(ctx context.Context, d domain.Detection) error {
	return s.db.Tx(ctx, func(q store.RowQuerier) error {
		return s.binder.Bind(q).Insert(ctx, d)
	})
}

// fullDuration prefers the plugin-reported active time and falls back to
// the event span when the plugin never sent counters
func fullDuration(sess sessdom.Session, events []detection.Event) float64 {
	if sess.ActiveSeconds > 0 {
		return float64(sess.ActiveSeconds)
	}
	if len(events) < 2 {
		return 0
	}
	return float64(events[len(events)-1].AtMs-events[0].AtMs) / 1000.0
}
