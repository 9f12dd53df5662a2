// Package render turns an authored campaign into deliverable message
// bodies. Templates are embedded at build time. The renderer performs no
// sanitization: callers must only pass content that is already trusted for
// embedding, which is a documented contract of the admin send surface.
package render

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/*
var templatesFS embed.FS

const (
	htmlTemplate = "campaign.gohtml"
	textTemplate = "campaign.gotxt"
)

// Message is a rendered campaign for one recipient.
type Message struct {
	HTML string
	Text string
}

// campaignData is what the templates are executed with.
type campaignData struct {
	Title          string
	Content        string
	UnsubscribeURL string
}

// Renderer renders campaign bodies from the embedded templates.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates. Parsing happens once at
// construction so a broken template fails at startup, not mid-broadcast.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*")
	if err != nil {
		return nil, fmt.Errorf("parse campaign templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

// Render produces the HTML and plain-text bodies for one recipient. The
// subject becomes the heading, newlines in content become <br/> in the HTML
// body, and the fixed footer carries the per-recipient unsubscribe link.
func (r *Renderer) Render(title, content, unsubscribeURL string) (Message, error) {
	var msg Message

	html := &strings.Builder{}
	err := r.templates.ExecuteTemplate(html, htmlTemplate, campaignData{
		Title:          title,
		Content:        strings.ReplaceAll(content, "\n", "<br/>"),
		UnsubscribeURL: unsubscribeURL,
	})
	if err != nil {
		return msg, fmt.Errorf("render html body: %w", err)
	}

	text := &strings.Builder{}
	err = r.templates.ExecuteTemplate(text, textTemplate, campaignData{
		Title:          title,
		Content:        content,
		UnsubscribeURL: unsubscribeURL,
	})
	if err != nil {
		return msg, fmt.Errorf("render text body: %w", err)
	}

	msg.HTML = html.String()
	msg.Text = text.String()
	return msg, nil
}
