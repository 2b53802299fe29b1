// Package http provides http transport for sessions
package http

import (
	stdhttp "net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	phttp "devskill/internal/platform/net/http"
	"devskill/internal/services/sessions/domain"
)

// Register mounts session lifecycle endpoints on the given router
func Register(r phttp.Router, s domain.SessionsPort) {
	h := &handlers{svc: s}

	phttp.PostJSON[domain.StartInput](r, "/start", h.start)
	phttp.PutJSON[domain.UpdateInput](r, "/{id}", h.update)
	phttp.PostJSON[domain.UpdateInput](r, "/{id}/end", h.end)
	phttp.GetJSON(r, "/{id}", h.get)
	phttp.GetJSON(r, "/", h.list)
}

type handlers struct{ svc domain.SessionsPort }

// swagger:route POST /sessions/start Sessions sessionStart
// @Summary Open a coding session
// @Tags Sessions
// @Accept json
// @Produce json
// @Param payload body domain.StartInput true "Session metadata"
// @Success 200 {object} domain.Session "ok"
// @Router /sessions/start [post]
func (h *handlers) start(r *stdhttp.Request, in domain.StartInput) (any, error) {
	return h.svc.Start(r.Context(), in)
}

// swagger:route PUT /sessions/{id} Sessions sessionUpdate
// @Summary Report running totals for a session
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param payload body domain.UpdateInput true "Cumulative totals"
// @Success 200 {object} domain.Session "ok"
// @Router /sessions/{id} [put]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	return h.svc.Update(r.Context(), chi.URLParam(r, "id"), in)
}

// swagger:route POST /sessions/{id}/end Sessions sessionEnd
// @Summary Complete a session with final totals
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param payload body domain.UpdateInput true "Final totals"
// @Success 200 {object} domain.Session "ok"
// @Router /sessions/{id}/end [post]
func (h *handlers) end(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	return h.svc.End(r.Context(), chi.URLParam(r, "id"), in)
}

// swagger:route GET /sessions/{id} Sessions sessionGet
// @Summary Fetch one session
// @Tags Sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} domain.Session "ok"
// @Router /sessions/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), chi.URLParam(r, "id"))
}

// swagger:route GET /sessions Sessions sessionList
// @Summary Page a user's sessions, newest first
// @Tags Sessions
// @Produce json
// @Param userId query string true "User id"
// @Param limit  query int    false "Page size"
// @Param offset query int    false "Page offset"
// @Success 200 {array} domain.Session "ok"
// @Router /sessions [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	rows, total, err := h.svc.List(r.Context(), domain.ListInput{
		UserID: q.Get("userId"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, err
	}
	return map[string]any{"sessions": rows, "total": total}, nil
}
