package email

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"gopkg.in/yaml.v3"
)

// templateFile is the on-disk layout of the template catalog: a map of
// template name to subject and body, both Go text templates.
type templateFile struct {
	Templates map[string]templateEntry `yaml:"templates"`
}

type templateEntry struct {
	Subject string `yaml:"subject"`
	Body    string `yaml:"body"`
}

type renderedTemplate struct {
	subject *template.Template
	body    *template.Template
}

// TemplateCatalog holds the parsed notification email templates.
type TemplateCatalog struct {
	templates map[string]renderedTemplate
}

// LoadTemplates reads and parses the template catalog from a yaml file.
// Every template must parse at load time so a bad catalog fails the
// boot instead of the first notification.
func LoadTemplates(path string) (*TemplateCatalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read email templates: %w", err)
	}

	var file templateFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}
	if len(file.Templates) == 0 {
		return nil, fmt.Errorf("email template file %s defines no templates", path)
	}

	catalog := &TemplateCatalog{templates: make(map[string]renderedTemplate, len(file.Templates))}
	for name, entry := range file.Templates {
		subject, err := template.New(name + ".subject").Parse(entry.Subject)
		if err != nil {
			return nil, fmt.Errorf("failed to parse subject template %q: %w", name, err)
		}
		body, err := template.New(name + ".body").Parse(entry.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to parse body template %q: %w", name, err)
		}
		catalog.templates[name] = renderedTemplate{subject: subject, body: body}
	}

	return catalog, nil
}

// Render executes the named template against the data map and returns
// the subject and body.
func (c *TemplateCatalog) Render(name string, data map[string]any) (string, string, error) {
	tmpl, ok := c.templates[name]
	if !ok {
		return "", "", fmt.Errorf("unknown email template %q", name)
	}

	var subject bytes.Buffer
	if err := tmpl.subject.Execute(&subject, data); err != nil {
		return "", "", fmt.Errorf("failed to render subject for %q: %w", name, err)
	}

	var body bytes.Buffer
	if err := tmpl.body.Execute(&body, data); err != nil {
		return "", "", fmt.Errorf("failed to render body for %q: %w", name, err)
	}

	return subject.String(), body.String(), nil
}
