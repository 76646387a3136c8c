package templates

import (
	"embed"
	"html/template"
	"net/url"
	"time"
)

//go:embed *.html
var files embed.FS

const dateLayout = "02 Jan 2006 15:04"

// New parses every page together with the shared layout blocks.
// Slugs and tag titles go through pathseg before landing in a link.
func New() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"pathseg": url.PathEscape,
		"date": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format(dateLayout)
		},
	}).ParseFS(files, "*.html")
}
