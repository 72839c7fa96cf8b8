package server

import (
	"embed"
	"html/template"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/vdobler/facet/chart/internal/demo"
)

//go:embed template/*.html
var templateFs embed.FS

// TemplateRenderer renders every page into layout.html. The page name
// selects the content template.
type TemplateRenderer struct {
	tmpl *template.Template
}

// layoutData is what layout.html sees.
type layoutData struct {
	Page  string
	Title string
	Data  any
}

// errorData is the content of the error page.
type errorData struct {
	Code    int
	Message string
}

func (t *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	ld := layoutData{Page: name, Data: data}
	switch d := data.(type) {
	case *demo.Page:
		ld.Title = d.Title
	case errorData:
		ld.Title = http.StatusText(d.Code)
	}
	if err := t.tmpl.ExecuteTemplate(w, "layout.html", ld); err != nil {
		c.Logger().Error(err)
		return err
	}
	return nil
}

func NewTemplateRenderer() *TemplateRenderer {
	funcMap := template.FuncMap{
		"statusText": http.StatusText,
	}
	return &TemplateRenderer{
		tmpl: template.Must(template.New("").Funcs(funcMap).ParseFS(templateFs, "template/*.html")),
	}
}
