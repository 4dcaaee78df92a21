package web

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/oleksir/inkpad/internal/server/auth"
)

// NewRouter wires the full route table. The auth gate runs on every request
// so any handler can ask for the current user; RequireAuth protects only
// the post routes.
func NewRouter(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(h.gate.Middleware)

	r.Get("/", h.Home)
	r.Get("/login", h.LoginForm)
	r.Post("/login", h.Login)
	r.Post("/register", h.Register)
	r.Get("/logout", h.Logout)

	r.Route("/post", func(r chi.Router) {
		r.Use(auth.RequireAuth)
		r.Get("/create", h.CreatePostForm)
		r.Post("/create", h.CreatePost)
		r.Get("/{id}", h.ViewPost)
		r.Get("/{id}/edit", h.EditPostForm)
		r.Post("/{id}/edit", h.EditPost)
		r.Post("/{id}/delete", h.DeletePost)
	})

	static, _ := fs.Sub(staticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	return r
}
