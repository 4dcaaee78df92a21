package web

import (
	"net/http"
	"time"

	"github.com/oleksir/inkpad/internal/logging"
	"github.com/oleksir/inkpad/internal/server/auth"
	"github.com/oleksir/inkpad/internal/server/services"
)

// Handler holds the HTTP handlers and their collaborators.
type Handler struct {
	authSvc      *services.AuthService
	postSvc      *services.PostService
	gate         *auth.Gate
	render       *Renderer
	log          logging.Logger
	cookieMaxAge time.Duration
}

func NewHandler(authSvc *services.AuthService, postSvc *services.PostService, gate *auth.Gate, render *Renderer, log logging.Logger, cookieMaxAge time.Duration) *Handler {
	return &Handler{
		authSvc:      authSvc,
		postSvc:      postSvc,
		gate:         gate,
		render:       render,
		log:          log,
		cookieMaxAge: cookieMaxAge,
	}
}

func (h *Handler) baseData(r *http.Request) viewData {
	data := viewData{}
	if id, ok := auth.CurrentUser(r.Context()); ok {
		data.LoggedIn = true
		data.User = id
	}
	return data
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, name string, data viewData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.render.Render(w, name, data); err != nil {
		h.log.Error(r.Context(), "template render failed", "template", name, "error", err.Error())
	}
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.log.Error(r.Context(), msg, "error", err.Error())
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// Home renders the dashboard for a logged-in user and the registration
// page for everyone else.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	data := h.baseData(r)
	if !data.LoggedIn {
		h.renderPage(w, r, "homepage", data)
		return
	}

	posts, err := h.postSvc.ListByAuthor(r.Context(), data.User.UserID)
	if err != nil {
		h.serverError(w, r, "listing posts failed", err)
		return
	}
	data.Posts = posts
	h.renderPage(w, r, "dashboard", data)
}

// Register handles the registration form. Validation failures re-render the
// homepage with the messages and the submitted username; success sets the
// session cookie and redirects home.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	pass := r.FormValue("password")

	res, errs, err := h.authSvc.Register(r.Context(), username, pass)
	if err != nil {
		h.serverError(w, r, "registration failed", err)
		return
	}
	if len(errs) > 0 {
		data := h.baseData(r)
		data.Errors = errs
		data.Username = username
		h.renderPage(w, r, "homepage", data)
		return
	}

	h.log.Info(r.Context(), "user registered", "username", res.User.Username)
	h.setSessionCookie(w, res.Token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// LoginForm renders the login page.
func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "login", h.baseData(r))
}

// Login handles the login form, mirroring Register.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	pass := r.FormValue("password")

	res, errs, err := h.authSvc.Login(r.Context(), username, pass)
	if err != nil {
		h.serverError(w, r, "login failed", err)
		return
	}
	if len(errs) > 0 {
		data := h.baseData(r)
		data.Errors = errs
		data.Username = username
		h.renderPage(w, r, "login", data)
		return
	}

	h.setSessionCookie(w, res.Token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout clears the session cookie and redirects home.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
