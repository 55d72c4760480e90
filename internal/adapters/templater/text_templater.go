package templater

import (
	"log/slog"
	"strings"
	"text/template"

	"appctl/internal/ports"
)

var _ ports.Templater = (*TextTemplater)(nil)

type TextTemplater struct{}

func ProvideTextTemplater() ports.Templater {
	return &TextTemplater{}
}

// Render executes templateText against values. A reference to a missing key is logged
// and rendered as the zero value instead of failing the whole manifest.
func (t TextTemplater) Render(templateText string, templateName string, values map[string]interface{}) (string, error) {
	tmpl, err := template.New(templateName).Option("missingkey=error").Parse(templateText)
	if err != nil {
		return "", err
	}

	var result strings.Builder
	err = tmpl.Execute(&result, values)
	if err == nil {
		return result.String(), nil
	}
	slog.Warn("Template references a missing value", "template", templateName, "error", err)

	tmpl, err = template.New(templateName).Option("missingkey=zero").Parse(templateText)
	if err != nil {
		return "", err
	}
	var lenient strings.Builder
	if err := tmpl.Execute(&lenient, values); err != nil {
		return "", err
	}

	return lenient.String(), nil
}
