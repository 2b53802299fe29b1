// Package http provides http transport for detection
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	phttp "devskill/internal/platform/net/http"
	"devskill/internal/services/detect/domain"
)

// RegisterSessionRoutes mounts scoring endpoints on the sessions subtree
func RegisterSessionRoutes(r phttp.Router, s domain.DetectPort) {
	h := &handlers{svc: s}

	// score takes no body; bind is skipped on purpose
	r.Post("/{id}/score", phttp.JSONHandlerNoBody(h.score))
	phttp.GetJSON(r, "/{id}/score", h.latest)
}

// RegisterAnalyze mounts the degraded stateless path at the API root
func RegisterAnalyze(r phttp.Router, s domain.DetectPort) {
	h := &handlers{svc: s}

	phttp.PostJSON[domain.AnalyzeInput](r, "/analyze", h.analyze)
}

type handlers struct{ svc domain.DetectPort }

// swagger:route POST /sessions/{id}/score Detect detectScore
// @Summary Run the detection engine over a session's telemetry
// @Tags Detect
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} domain.Detection "ok"
// @Router /sessions/{id}/score [post]
func (h *handlers) score(r *stdhttp.Request) (any, error) {
	return h.svc.Score(r.Context(), chi.URLParam(r, "id"))
}

// swagger:route GET /sessions/{id}/score Detect detectLatest
// @Summary Fetch the most recent detection result for a session
// @Tags Detect
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} domain.Detection "ok"
// @Router /sessions/{id}/score [get]
func (h *handlers) latest(r *stdhttp.Request) (any, error) {
	return h.svc.Latest(r.Context(), chi.URLParam(r, "id"))
}

// swagger:route POST /analyze Detect detectAnalyze
// @Summary Score aggregate counters without an event stream
// @Tags Detect
// @Accept json
// @Produce json
// @Param payload body domain.AnalyzeInput true "Counters and optional code sample"
// @Success 200 {object} domain.Analysis "ok"
// @Router /analyze [post]
func (h *handlers) analyze(r *stdhttp.Request, in domain.AnalyzeInput) (any, error) {
	return h.svc.Analyze(r.Context(), in)
}
