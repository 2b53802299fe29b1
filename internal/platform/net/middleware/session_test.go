package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"devskill/internal/platform/net"
	"devskill/internal/platform/net/middleware"
)

type fakeSessionPort struct {
	user string
	sess string
	err  error
}

func (f fakeSessionPort) Parse(r *http.Request) (string, string, error) {
	return f.user, f.sess, f.err
}

func writeStub(w http.ResponseWriter, status int, body any) {
	w.WriteHeader(status)
}

func TestSession_NilPortPassesThrough(t *testing.T) {
	var nextCalled bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(200)
	})

	mw := middleware.Session(nil, writeStub)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, req)

	if !nextCalled {
		t.Fatal("expected next to be called")
	}
	if rr.Code != 200 {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
}

func TestSession_ErrorFromPortWritesMappedError(t *testing.T) {
	p := fakeSessionPort{err: http.ErrNoCookie}
	mw := middleware.Session(p, writeStub)

	var nextCalled bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, req)

	if nextCalled {
		t.Fatal("did not expect next to be called on parse error")
	}
	// exact status is delegated to pnet.Error, which can vary
	// assert it is a 4xx or 5xx rather than a 2xx
	if rr.Code < 400 {
		t.Fatalf("expected error status got %d", rr.Code)
	}
}

func TestSession_SetsIdentityOnContext(t *testing.T) {
	p := fakeSessionPort{user: "u1", sess: "s1", err: nil}
	mw := middleware.Session(p, writeStub)

	var seenSession, seenUser string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenSession = net.SessionID(r.Context())
		seenUser = net.UserID(r.Context())
		w.WriteHeader(200)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, req)

	if rr.Code != 200 {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	if seenSession != "s1" {
		t.Fatalf("expected session s1 got %q", seenSession)
	}
	if seenUser != "u1" {
		t.Fatalf("expected user u1 got %q", seenUser)
	}
}

func TestHeaderSession_ReadsHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-ID", "dev-7")
	req.Header.Set("X-Session-ID", "sess-42")

	uid, sid, err := middleware.HeaderSession{}.Parse(req)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if uid != "dev-7" || sid != "sess-42" {
		t.Fatalf("Parse = (%q, %q)", uid, sid)
	}
}
