package ui

import (
	"embed"
	"html/template"
	"io/fs"
	"strings"
	"time"
)

//go:embed templates/*
var templateFS embed.FS

var templates = mustParseTemplates()

var funcMap = template.FuncMap{
	"formatTime": func(v string) string {
		if v == "" {
			return ""
		}
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t.UTC().Format("2006-01-02 15:04")
		}
		return v
	},
	"add": func(a, b int) int { return a + b },
	"sub": func(a, b int) int { return a - b },
	"deref": func(v *int64) int64 {
		if v == nil {
			return 0
		}
		return *v
	},
	// localInput feeds a stored RFC 3339 instant back into a
	// datetime-local control, in the server's local zone.
	"localInput": func(v string) string {
		if v == "" {
			return ""
		}
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t.Local().Format("2006-01-02T15:04")
		}
		return v
	},
	"title": func(v string) string {
		if v == "" {
			return ""
		}
		return strings.ToUpper(v[:1]) + v[1:]
	},
}

func mustParseTemplates() map[string]*template.Template {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		panic(err)
	}

	base := template.Must(template.New("base.html").Funcs(funcMap).ParseFS(templateFS, "templates/base.html"))

	sets := make(map[string]*template.Template)
	for _, file := range files {
		if file == "templates/base.html" {
			continue
		}

		set := template.Must(base.Clone())
		template.Must(set.ParseFS(templateFS, file))
		sets[file[len("templates/"):]] = set
	}

	return sets
}
