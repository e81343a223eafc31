package email

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"devevent/internal/domain"
)

// Each template set is three files: <name>_subject.txt, <name>.txt and <name>.html.
//
//go:embed templates/*
var templateFS embed.FS

type templateRenderer struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

// NewTemplateRenderer parses every embedded email template.
func NewTemplateRenderer() (domain.EmailTemplateRenderer, error) {
	html, err := htmltemplate.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse html email templates: %w", err)
	}
	text, err := texttemplate.ParseFS(templateFS, "templates/*.txt")
	if err != nil {
		return nil, fmt.Errorf("parse text email templates: %w", err)
	}
	return &templateRenderer{html: html, text: text}, nil
}

// Render executes the subject, text and HTML parts of templateName with data.
func (r *templateRenderer) Render(templateName string, data any) (domain.EmailMessage, error) {
	subject, err := executeText(r.text, templateName+"_subject.txt", data)
	if err != nil {
		return domain.EmailMessage{}, fmt.Errorf("render subject: %w", err)
	}
	text, err := executeText(r.text, templateName+".txt", data)
	if err != nil {
		return domain.EmailMessage{}, fmt.Errorf("render text: %w", err)
	}
	t := r.html.Lookup(templateName + ".html")
	if t == nil {
		return domain.EmailMessage{}, fmt.Errorf("render html: unknown template %q", templateName)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return domain.EmailMessage{}, fmt.Errorf("render html: %w", err)
	}
	return domain.EmailMessage{
		Subject: strings.TrimSpace(subject),
		HTML:    buf.String(),
		Text:    text,
	}, nil
}

func executeText(set *texttemplate.Template, name string, data any) (string, error) {
	t := set.Lookup(name)
	if t == nil {
		return "", fmt.Errorf("unknown template %q", name)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
