// Package views embeds the HTML templates and static assets of the site.
package views

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

var funcs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}

// Templates parses every page template.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templateFiles, "templates/*.html")
}

// Static serves the embedded assets, rooted so /static/app.js maps to static/app.js.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
