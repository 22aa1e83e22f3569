// Package report renders the dashboard pages as markdown for the terminal
package report

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/charmbracelet/glamour"

	"github.com/wonny/govdash/internal/view"
)

//go:embed templates/*.md
var templates embed.FS

var funcs = template.FuncMap{
	"cell": cell,
	"num":  view.Number,
}

var (
	companyTmpl  = template.Must(template.New("company.md").Funcs(funcs).ParseFS(templates, "templates/company.md"))
	industryTmpl = template.Must(template.New("industry.md").Funcs(funcs).ParseFS(templates, "templates/industry.md"))
)

// cell escapes a value for a markdown table cell
func cell(s string) string {
	if s == "" {
		return "-"
	}
	return strings.ReplaceAll(s, "|", `\|`)
}

// Company renders the Company Details page as markdown
func Company(p view.CompanyPage) (string, error) {
	return execute(companyTmpl, p)
}

// Industry renders the Industry Performance page as markdown
func Industry(p view.IndustryPage) (string, error) {
	return execute(industryTmpl, p)
}

func execute(tmpl *template.Template, data any) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}
	return b.String(), nil
}

// Pretty styles markdown for a terminal with glamour.
// style is a glamour standard style name ("dark", "light", "notty", ...).
func Pretty(md, style string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create terminal renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
