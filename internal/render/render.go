// Package render turns a catalog registry into reference
// documentation. Every entry goes through the same header helper
// (title, FO element, docutils sources, parent reference) before its
// description paragraphs are appended, so the output has a uniform
// shape regardless of which catalog an entry came from.
package render

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"git.home.luguber.info/inful/attrdoc/internal/catalog"
)

// Format selects the output markup.
type Format string

const (
	FormatRST      Format = "rst"
	FormatMarkdown Format = "markdown"
)

// ParseFormat maps a config/CLI string onto a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rst", "rest", "restructuredtext":
		return FormatRST, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown output format: %s", s)
	}
}

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string {
	if f == FormatMarkdown {
		return "md"
	}
	return "rst"
}

const rstEntryTemplate = `{{.Name}}
{{underline .Name}}

:fo: ` + "``{{.FOElement}}``" + `
:docutils: {{join .DocutilsSources ", "}}
{{- if .InheritsFrom}}
:inherits: ` + "`{{.InheritsFrom}}`_" + `
{{- end}}

{{range $i, $p := .Description}}{{if $i}}
{{end}}{{$p}}
{{end}}`

const markdownEntryTemplate = `## {{.Name}}

- **fo:** ` + "`{{.FOElement}}`" + `
- **docutils:** {{join .DocutilsSources ", "}}
{{- if .InheritsFrom}}
- **inherits:** [{{.InheritsFrom}}](#{{.InheritsFrom}})
{{- end}}

{{range $i, $p := .Description}}{{if $i}}
{{end}}{{$p}}
{{end}}`

// Renderer renders entries in one output format.
type Renderer struct {
	format Format
	tpl    *template.Template
}

// New creates a renderer for the given format.
func New(format Format) (*Renderer, error) {
	body := rstEntryTemplate
	if format == FormatMarkdown {
		body = markdownEntryTemplate
	}

	funcs := template.FuncMap{
		"join": strings.Join,
		"underline": func(s string) string {
			return strings.Repeat("=", len(s))
		},
	}
	tpl, err := template.New("entry").Funcs(funcs).Option("missingkey=error").Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse entry template: %w", err)
	}
	return &Renderer{format: format, tpl: tpl}, nil
}

// Format returns the renderer's output format.
func (r *Renderer) Format() Format {
	return r.format
}

// Entry renders a single entry: the shared header block followed by
// the description paragraphs.
func (r *Renderer) Entry(e catalog.Entry) (string, error) {
	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, e); err != nil {
		return "", fmt.Errorf("render entry %s: %w", e.Name, err)
	}
	return buf.String(), nil
}

// Registry renders the whole registry in document order, preceded by
// the document title. Rendering the same registry twice yields
// identical bytes.
func (r *Renderer) Registry(title string, reg *catalog.Registry) ([]byte, error) {
	var buf bytes.Buffer
	r.writeTitle(&buf, title)

	for i, e := range reg.Entries() {
		if i > 0 {
			buf.WriteString("\n")
		}
		block, err := r.Entry(e)
		if err != nil {
			return nil, err
		}
		buf.WriteString(block)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) writeTitle(buf *bytes.Buffer, title string) {
	if title == "" {
		return
	}
	if r.format == FormatMarkdown {
		fmt.Fprintf(buf, "# %s\n\n", title)
		return
	}
	overline := strings.Repeat("#", len(title))
	fmt.Fprintf(buf, "%s\n%s\n%s\n\n", overline, title, overline)
}
