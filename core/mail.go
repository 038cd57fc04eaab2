package core

import (
	"bytes"
	"io/fs"
	"net/mail"
	"path"
	"strings"
	"sync"
	"text/template"

	"github.com/pkg/errors"
)

var (
	templates map[string]*template.Template // {name: *Template}
	tmplErr   error
	tmplInit  sync.Once
)

type (
	EmailMessage struct {
		To      []mail.Address
		Subject string
		BodyStr string // simple text/plain, non-templated content

		// templated contents
		TemplateName string // without ext
		TemplateData interface{}
		TextContent  string
	}

	ContextData struct {
		AppName string
		Data    interface{}
	}

	// EmailService is any service that can send emails
	EmailService interface {
		// SendMessages sends messages concurrently
		SendMessages(messages ...*EmailMessage)
	}
)

// ParseEmailTemplates parses `templates/email/*.txt` from fsys; files starting with "_" are
// layouts shared by every template. Must be called before rendering templated messages.
func ParseEmailTemplates(fsys fs.FS) error {
	tmplInit.Do(func() { templates, tmplErr = parseTemplates(fsys) })
	return tmplErr
}

func parseTemplates(fsys fs.FS) (map[string]*template.Template, error) {
	root := "templates/email"
	fps, err := fs.Glob(fsys, path.Join(root, "*.txt"))
	if err != nil {
		return nil, errors.Wrap(err, "globbing email templates")
	}

	parsed := make(map[string]*template.Template, len(fps))
	for _, fp := range fps {
		fname := path.Base(fp)
		if strings.HasPrefix(fname, "_") {
			continue
		}
		name := strings.TrimSuffix(fname, ".txt")
		tmpl, err := template.ParseFS(fsys, path.Join(root, "_base.txt"), fp)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing email template %q", name)
		}
		parsed[name] = tmpl.Option("missingkey=error")
	}
	return parsed, nil
}

func (m *EmailMessage) Render(appName string) error {
	if m.BodyStr != "" {
		m.TextContent = m.BodyStr
		return nil
	} else if m.TemplateName == "" {
		return nil
	}

	tmpl, ok := templates[m.TemplateName]
	if !ok {
		return errors.Errorf("email template %q not found", m.TemplateName)
	}
	var buff bytes.Buffer
	if err := tmpl.Execute(&buff, ContextData{AppName: appName, Data: m.TemplateData}); err != nil {
		return errors.Wrap(err, "rendering email template")
	}
	m.TextContent = buff.String()
	return nil
}

func (m *EmailMessage) HasRecipients() bool { return len(m.To) > 0 }
func (m *EmailMessage) HasContent() bool    { return m.TextContent != "" }
