// Package web implements the hubsite rendering boundary over
// html/template, with the page and embed-component templates embedded in
// the binary.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/hubsite/hubsite/pkg/hubsite"
)

//go:embed templates
var templateFS embed.FS

// templateFiles maps logical template identifiers to embedded files.
var templateFiles = map[string]string{
	hubsite.TemplateHome:            "templates/home.html",
	hubsite.TemplateEcosystemsList:  "templates/ecosystems-list.html",
	hubsite.TemplateEcosystemSingle: "templates/ecosystem-single.html",
	hubsite.TemplateToolsList:       "templates/tools-list.html",
	hubsite.TemplateToolSingle:      "templates/tool-single.html",
	hubsite.TemplateEventsList:      "templates/events-list.html",
	hubsite.TemplateEventSingle:     "templates/event-single.html",
	hubsite.TemplateLearnList:       "templates/learn-list.html",
	hubsite.TemplateLearningSingle:  "templates/learning-single.html",
	hubsite.TemplateCreatorsList:    "templates/creators-list.html",
	hubsite.TemplateCreatorSingle:   "templates/creator-single.html",
	hubsite.TemplateNewsList:        "templates/news-list.html",
	hubsite.TemplatePostSingle:      "templates/post-single.html",
	hubsite.TemplateJobsList:        "templates/jobs-list.html",
	hubsite.TemplateYouTubeEmbed:    "templates/components/youtube-embed.html",
	hubsite.TemplateTwitterEmbed:    "templates/components/twitter-embed.html",
	TemplateNotFound:                "templates/not-found.html",
}

// TemplateNotFound renders the HTML 404 page.
const TemplateNotFound = "not-found"

// funcs are helpers available to every page template. "safe" marks
// pre-rendered fragments (embed components, markdown bodies) as trusted
// markup so they are not escaped a second time.
var funcs = template.FuncMap{
	"safe": func(s string) template.HTML { return template.HTML(s) },
}

// Renderer renders page templates by logical identifier. It satisfies
// hubsite.Renderer.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses all embedded templates. Failing to parse any of them
// is a startup error.
func NewRenderer() (*Renderer, error) {
	templates := make(map[string]*template.Template, len(templateFiles))
	for name, path := range templateFiles {
		src, err := templateFS.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read template %s: %w", name, err)
		}
		t, err := template.New(name).Funcs(funcs).Parse(string(src))
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		templates[name] = t
	}
	return &Renderer{templates: templates}, nil
}

// Render executes the named template against the given context.
func (r *Renderer) Render(name string, data any) (string, error) {
	t, ok := r.templates[name]
	if !ok {
		return "", &hubsite.RenderError{Template: name, Err: fmt.Errorf("unknown template")}
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", &hubsite.RenderError{Template: name, Err: err}
	}
	return buf.String(), nil
}
