package rest

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blog-posts/internal/postlist"
)

const templateIndex = "index.html"

//go:embed templates/*.html
var templatesFS embed.FS

type templateRenderer struct {
	templates *template.Template
}

func newTemplateRenderer() *templateRenderer {
	return &templateRenderer{
		templates: template.Must(template.ParseFS(templatesFS, "templates/*.html")),
	}
}

func (t *templateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.templates.ExecuteTemplate(w, name, data)
}

type indexData struct {
	postlist.PageView
	Loading bool
	Failed  bool
}

func newIndexData(view postlist.PageView) indexData {
	return indexData{
		PageView: view,
		Loading:  view.Status == postlist.StatusLoading,
		Failed:   view.Status == postlist.StatusError,
	}
}
