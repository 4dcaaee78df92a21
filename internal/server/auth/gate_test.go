package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newGateRequest(t *testing.T, token string) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		r.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	}
	return r
}

func TestGate_FromRequest(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec([]byte("secret"), time.Hour)
	gate := NewGate(codec)

	valid, err := codec.Issue("u1", "ann")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	expired, err := NewTokenCodec([]byte("secret"), -time.Minute).Issue("u1", "ann")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	foreign, err := NewTokenCodec([]byte("other-secret"), time.Hour).Issue("u1", "ann")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	tests := []struct {
		name  string
		token string
		ok    bool
	}{
		{"no cookie", "", false},
		{"valid token", valid, true},
		{"expired token", expired, false},
		{"tampered token", valid + "x", false},
		{"foreign signature", foreign, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := gate.FromRequest(newGateRequest(t, tt.token))
			if ok != tt.ok {
				t.Fatalf("FromRequest ok = %v, want %v", ok, tt.ok)
			}
			if ok && (id.UserID != "u1" || id.Username != "ann") {
				t.Fatalf("unexpected identity: %+v", id)
			}
		})
	}
}

func TestGate_Middleware(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec([]byte("secret"), time.Hour)
	gate := NewGate(codec)

	var got Identity
	var ok bool
	h := gate.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = CurrentUser(r.Context())
	}))

	tok, err := codec.Issue("u7", "bob")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	h.ServeHTTP(httptest.NewRecorder(), newGateRequest(t, tok))
	if !ok || got.UserID != "u7" || got.Username != "bob" {
		t.Fatalf("expected authenticated identity, got ok=%v id=%+v", ok, got)
	}

	ok = false
	h.ServeHTTP(httptest.NewRecorder(), newGateRequest(t, ""))
	if ok {
		t.Fatalf("anonymous request must not carry an identity")
	}
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec([]byte("secret"), time.Hour)
	gate := NewGate(codec)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := gate.Middleware(RequireAuth(next))

	// Anonymous: redirected to /login.
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, newGateRequest(t, ""))
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/login" {
		t.Fatalf("expected redirect to /login, got %d %q", rec.Code, rec.Header().Get("Location"))
	}

	// Authenticated: passes through.
	tok, err := codec.Issue("u1", "ann")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, newGateRequest(t, tok))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for authenticated request, got %d", rec.Code)
	}
}
