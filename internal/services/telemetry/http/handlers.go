// Package http provides http transport for telemetry ingest
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	phttp "devskill/internal/platform/net/http"
	"devskill/internal/services/telemetry/domain"
)

// Register mounts the ingest endpoint on the sessions subtree
func Register(r phttp.Router, s domain.TelemetryPort) {
	h := &handlers{svc: s}

	phttp.PostJSON[domain.IngestInput](r, "/{id}/events", h.ingest)
}

type handlers struct{ svc domain.TelemetryPort }

// IngestResponse reports how many events were stored
type IngestResponse struct {
	Accepted int `json:"accepted" example:"128"`
}

// swagger:route POST /sessions/{id}/events Telemetry telemetryIngest
// @Summary Append a batch of ordered editor events
// @Tags Telemetry
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param payload body domain.IngestInput true "Event batch"
// @Success 200 {object} IngestResponse "ok"
// @Router /sessions/{id}/events [post]
func (h *handlers) ingest(r *stdhttp.Request, in domain.IngestInput) (any, error) {
	n, err := h.svc.Ingest(r.Context(), chi.URLParam(r, "id"), in.Events)
	if err != nil {
		return nil, err
	}
	return IngestResponse{Accepted: n}, nil
}
