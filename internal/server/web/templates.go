// Package web is the HTTP surface of inkpad: routing, form handling,
// server-rendered templates, static assets, and the session cookie
// transport. All business decisions live in the services layer; handlers
// only translate between HTTP and service calls.
package web

import (
	"embed"
	"html/template"
	"io"

	"github.com/oleksir/inkpad/internal/server/auth"
	"github.com/oleksir/inkpad/internal/server/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// viewData is the data passed to every template. Username, Title and Body
// echo submitted form values so the user does not retype them after a
// validation failure.
type viewData struct {
	LoggedIn bool
	User     auth.Identity
	Errors   []string
	Username string
	Title    string
	Body     string
	Post     *models.Post
	Posts    []*models.Post
}

type Renderer struct {
	t *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{t: t}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data viewData) error {
	return r.t.ExecuteTemplate(w, name, data)
}
