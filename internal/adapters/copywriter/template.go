// Package copywriter produces the invitation and welcome message copy shown
// to artists. The core treats copy generation as an opaque collaborator: a
// template renderer is the default, and a remote generative-text client can
// be enabled through configuration, falling back to the templates on failure.
package copywriter

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/glauberagbaiye-droid/teamflow-agency/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

type templateWriter struct{}

// NewTemplateWriter returns a CopyWriter that renders copy from the embedded
// template files.
func NewTemplateWriter() domain.CopyWriter {
	return &templateWriter{}
}

func (w *templateWriter) InvitationCopy(_ context.Context, data domain.CopyContext) (string, error) {
	return w.render("invitation.txt", data)
}

func (w *templateWriter) WelcomeCopy(_ context.Context, data domain.CopyContext) (string, error) {
	return w.render("welcome.txt", data)
}

func (w *templateWriter) render(name string, data domain.CopyContext) (string, error) {
	raw, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return "", fmt.Errorf("read template %s: %w", name, err)
	}
	t, err := template.New(name).Parse(string(raw))
	if err != nil {
		return "", fmt.Errorf("parse template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template %s: %w", name, err)
	}
	return strings.TrimSpace(buf.String()), nil
}
