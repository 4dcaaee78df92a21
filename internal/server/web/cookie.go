package web

import (
	"net/http"

	"github.com/oleksir/inkpad/internal/server/auth"
)

// setSessionCookie hands a freshly issued token to the browser. The cookie
// outlives the token on purpose: the token's own expiry governs session
// validity, the cookie max age only bounds how long the browser keeps it.
func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(h.cookieMaxAge.Seconds()),
	})
}

// clearSessionCookie is the whole of logout. Stateless tokens cannot be
// revoked server-side; an already-captured token stays valid until expiry.
func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})
}
