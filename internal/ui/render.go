package ui

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/index.html templates/style.css
var templateFS embed.FS

var page = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Render writes the whole document for s.
func Render(w io.Writer, s State) error {
	return page.ExecuteTemplate(w, "index.html", s)
}

// WriteStylesheet writes the page stylesheet.
func WriteStylesheet(w io.Writer) error {
	css, err := templateFS.ReadFile("templates/style.css")
	if err != nil {
		return err
	}
	_, err = w.Write(css)
	return err
}
