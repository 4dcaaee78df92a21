package web

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oleksir/inkpad/internal/common"
	"github.com/oleksir/inkpad/internal/server/auth"
	"github.com/oleksir/inkpad/internal/server/models"
)

// Post routes run behind RequireAuth, so CurrentUser is always set here.

func (h *Handler) CreatePostForm(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "create-post", h.baseData(r))
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r.Context())
	title := r.FormValue("title")
	body := r.FormValue("body")

	post, errs, err := h.postSvc.Create(r.Context(), user.UserID, title, body)
	if err != nil {
		h.serverError(w, r, "creating post failed", err)
		return
	}
	if len(errs) > 0 {
		data := h.baseData(r)
		data.Errors = errs
		data.Title = title
		data.Body = body
		h.renderPage(w, r, "create-post", data)
		return
	}

	http.Redirect(w, r, "/post/"+post.ID, http.StatusSeeOther)
}

// ownedGuard loads the post and checks it belongs to the current user.
// Missing posts and other people's posts both send the user home.
func (h *Handler) ownedGuard(w http.ResponseWriter, r *http.Request) (*models.Post, bool) {
	user, _ := auth.CurrentUser(r.Context())

	post, err := h.postSvc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return nil, false
		}
		h.serverError(w, r, "loading post failed", err)
		return nil, false
	}
	if post.AuthorID != user.UserID {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return nil, false
	}

	return post, true
}

func (h *Handler) ViewPost(w http.ResponseWriter, r *http.Request) {
	post, ok := h.ownedGuard(w, r)
	if !ok {
		return
	}

	data := h.baseData(r)
	data.Post = post
	h.renderPage(w, r, "single-post", data)
}

func (h *Handler) EditPostForm(w http.ResponseWriter, r *http.Request) {
	post, ok := h.ownedGuard(w, r)
	if !ok {
		return
	}

	data := h.baseData(r)
	data.Post = post
	h.renderPage(w, r, "edit-post", data)
}

func (h *Handler) EditPost(w http.ResponseWriter, r *http.Request) {
	post, ok := h.ownedGuard(w, r)
	if !ok {
		return
	}

	user, _ := auth.CurrentUser(r.Context())
	title := r.FormValue("title")
	body := r.FormValue("body")

	errs, err := h.postSvc.Update(r.Context(), user.UserID, post.ID, title, body)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		h.serverError(w, r, "updating post failed", err)
		return
	}
	if len(errs) > 0 {
		data := h.baseData(r)
		data.Errors = errs
		data.Post = &models.Post{ID: post.ID, AuthorID: post.AuthorID, Title: title, Body: body}
		h.renderPage(w, r, "edit-post", data)
		return
	}

	http.Redirect(w, r, "/post/"+post.ID, http.StatusSeeOther)
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	post, ok := h.ownedGuard(w, r)
	if !ok {
		return
	}

	user, _ := auth.CurrentUser(r.Context())
	if err := h.postSvc.Delete(r.Context(), user.UserID, post.ID); err != nil && !errors.Is(err, common.ErrNotFound) {
		h.serverError(w, r, "deleting post failed", err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
