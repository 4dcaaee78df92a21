package auth

import (
	"context"
	"net/http"
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "inkpad_session"

// Identity is the authenticated-user result derived from a valid session
// token. Values are taken verbatim from the verified claims; no store
// lookup happens per request.
type Identity struct {
	UserID   string
	Username string
}

type ctxKey string

const identityKey ctxKey = "identity"

// Gate derives an Identity from an inbound request's session cookie.
type Gate struct {
	codec *TokenCodec
}

func NewGate(codec *TokenCodec) *Gate {
	return &Gate{codec: codec}
}

// FromRequest returns the identity carried by the request's session cookie.
// A missing cookie and an invalid token are indistinguishable: both yield
// (Identity{}, false) and no error.
func (g *Gate) FromRequest(r *http.Request) (Identity, bool) {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil {
		return Identity{}, false
	}

	claims, err := g.codec.Decode(cookie.Value)
	if err != nil {
		return Identity{}, false
	}

	return Identity{UserID: claims.UserID, Username: claims.Username}, true
}

// Middleware resolves the session cookie once per request and, when valid,
// stores the identity in the request context. Anonymous requests pass
// through unchanged.
func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := g.FromRequest(r); ok {
			r = r.WithContext(context.WithValue(r.Context(), identityKey, id))
		}
		next.ServeHTTP(w, r)
	})
}

// CurrentUser returns the identity placed in ctx by Middleware, if any.
func CurrentUser(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// RequireAuth redirects anonymous requests to /login. It must run after
// Middleware in the chain.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r.Context()); !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
