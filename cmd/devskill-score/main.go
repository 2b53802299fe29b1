package main

import (
	"context"
	"flag"
	"log"
	"time"

	"devskill/internal/platform/config"
	"devskill/internal/platform/logger"
	"devskill/internal/platform/store"

	detrepo "devskill/internal/services/detect/repo"
	detsvc "devskill/internal/services/detect/service"
	sessrepo "devskill/internal/services/sessions/repo"
	sesssvc "devskill/internal/services/sessions/service"
	telrepo "devskill/internal/services/telemetry/repo"
	telsvc "devskill/internal/services/telemetry/service"
)

func main() {
	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_")
	scoreCfg := root.Prefix("CORE_SCORE_")
	l := logger.Get()

	st, err := store.Open(context.Background(), store.Config{
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", false),
		},
		CH: store.CHConfig{
			Enabled: true,
			URL:     chCfg.MustString("DBURL"),
			Role:    "score",
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	var (
		sinceStr = flag.String("since", "", "inclusive day, e.g. 2025-08-01")
		untilStr = flag.String("until", "", "exclusive day, e.g. 2025-08-08")
		workers  = flag.Int("workers", scoreCfg.MayInt("WORKERS", 4), "concurrency (>=1)")
		page     = flag.Int("page", scoreCfg.MayInt("PAGE_SIZE", 500), "page size (sessions)")
	)
	flag.Parse()

	if *sinceStr == "" || *untilStr == "" {
		log.Fatal("since/until are required (day resolution)")
	}
	since, err := time.Parse("2006-01-02", *sinceStr)
	if err != nil {
		log.Fatalf("bad -since: %v", err)
	}
	until, err := time.Parse("2006-01-02", *untilStr)
	if err != nil {
		log.Fatalf("bad -until: %v", err)
	}
	if !since.Before(until) {
		log.Fatal("since must be < until")
	}

	sessions := sesssvc.New(st.PG, sessrepo.NewPG())
	telemetry := telsvc.New(telrepo.NewCH(st.CH))
	detect := detsvc.New(st.PG, detrepo.NewPG(), sessions, telemetry, detsvc.Config{
		Workers:  *workers,
		PageSize: *page,
	})

	stats, err := detect.RescoreRange(context.Background(), since.UTC(), until.UTC())
	if err != nil {
		l.Fatal().Err(err).Msg("rescore failed")
	}
	l.Info().
		Int("sessions", stats.Sessions).
		Int("scored", stats.Scored).
		Int("skipped", stats.Skipped).
		Int("failed", stats.Failed).
		Msg("rescore complete")
}
