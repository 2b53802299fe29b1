// Package api provides the HTTP API for the application
package api

import (
	"compress/flate"
	stdhttp "net/http"
	"time"

	"devskill/internal/platform/config"
	"devskill/internal/platform/logger"
	phttp "devskill/internal/platform/net/http"
	"devskill/internal/platform/net/middleware"
	"devskill/internal/platform/store"

	"devskill/internal/services/api/meta"
	dethttp "devskill/internal/services/detect/http"
	detrepo "devskill/internal/services/detect/repo"
	detsvc "devskill/internal/services/detect/service"
	sesshttp "devskill/internal/services/sessions/http"
	sessrepo "devskill/internal/services/sessions/repo"
	sesssvc "devskill/internal/services/sessions/service"
	telhttp "devskill/internal/services/telemetry/http"
	telrepo "devskill/internal/services/telemetry/repo"
	telsvc "devskill/internal/services/telemetry/service"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount wires the services and mounts the versioned API onto the router
func Mount(r phttp.Router, opt Options) {
	sessions := sesssvc.New(opt.Store.PG, sessrepo.NewPG())
	telemetry := telsvc.New(telrepo.NewCH(opt.Store.CH))
	detect := detsvc.New(
		opt.Store.PG, detrepo.NewPG(), sessions, telemetry,
		detsvc.Config{
			Workers:  opt.Config.MayInt("SCORE_WORKERS", 4),
			PageSize: opt.Config.MayInt("SCORE_PAGE_SIZE", 500),
		},
	)

	startedAt := time.Now()

	r.Route("/api/v1", func(api phttp.Router) {
		api.Use(commonStack()...)

		api.Route("/sessions", func(sr phttp.Router) {
			sesshttp.Register(sr, sessions)
			telhttp.Register(sr, telemetry)
			dethttp.RegisterSessionRoutes(sr, detect)
		})
		dethttp.RegisterAnalyze(api, detect)

		api.Route("/meta", func(mr phttp.Router) {
			meta.Register(mr, meta.Deps{
				ServiceName: "devskill-api",
				StartedAt:   startedAt,
				PG:          opt.Store.PG,
				CH:          opt.Store.CH,
			})
		})
	})

	phttp.MountSwagger(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
}

// commonStack is the baseline middleware stack for the versioned API
func commonStack() []func(stdhttp.Handler) stdhttp.Handler {
	return []func(stdhttp.Handler) stdhttp.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.Session(middleware.HeaderSession{}, phttp.JSON),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: 500 * time.Millisecond}),

		// cross-origin: editor plugins call from webview origins
		middleware.CORS(middleware.CORSOptions{}),
		middleware.Compress(flate.BestSpeed),
		middleware.RedirectSlashes(),
		middleware.Timeout(30 * time.Second),
	}
}
