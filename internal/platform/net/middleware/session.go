package middleware

import (
	"net/http"

	pnet "devskill/internal/platform/net"
)

// SessionPort resolves the reporting identity of a request
type SessionPort interface {
	// Parse returns a user id and coding session id from the request or an error
	Parse(r *http.Request) (userID string, sessionID string, err error)
}

// HeaderSession reads the identity from plugin-supplied headers.
// Missing headers are not an error; handlers that need a session id
// take it from the URL instead
type HeaderSession struct{}

// Parse implements SessionPort
func (HeaderSession) Parse(r *http.Request) (string, string, error) {
	return r.Header.Get("X-User-ID"), r.Header.Get("X-Session-ID"), nil
}

// Session attaches the caller identity to the request context.
// It is a no-op when p is nil
func Session(p SessionPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			uid, sid, err := p.Parse(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			ctx := pnet.WithUser(r.Context(), uid)
			ctx = pnet.WithRequest(ctx, pnet.RequestID(ctx), sid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
