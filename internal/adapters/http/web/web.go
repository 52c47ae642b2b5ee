// Package web renders the age calculator's HTML page from embedded templates.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/jsamuelsen11/agecalc/internal/domain/age"
	"github.com/jsamuelsen11/agecalc/internal/ports"
)

//go:embed templates/*.html
var templateFS embed.FS

const pageTemplate = "page"

// Placeholder is shown in place of a result number when there is no result.
const Placeholder = "- -"

// FieldView is one entry field as rendered.
type FieldView struct {
	Name        string
	Caption     string
	Placeholder string
	MaxLength   int
	Text        string
	Error       string
}

// ResultView is one number of the result panel.
type ResultView struct {
	Number string
	Label  string
}

// Page is the template's data. HasError is the global error flag: when set,
// every caption is marked and each field's message is shown.
type Page struct {
	Fields   []FieldView
	HasError bool
	Results  []ResultView
}

// NewPage builds the view for a set of fields, the global error flag and an
// optional result.
func NewPage(fields []age.FieldSpec, hasError bool, result age.Elapsed, hasResult bool) Page {
	p := Page{
		Fields:   make([]FieldView, len(fields)),
		HasError: hasError,
	}
	for i, f := range fields {
		p.Fields[i] = FieldView{
			Name:        f.ID.String(),
			Caption:     f.Caption,
			Placeholder: f.Placeholder,
			MaxLength:   f.MaxLength,
			Text:        f.Value.String(),
			Error:       f.Error,
		}
	}

	number := func(n int) string {
		if !hasResult {
			return Placeholder
		}
		return strconv.Itoa(n)
	}
	p.Results = []ResultView{
		{Number: number(result.Years), Label: "years"},
		{Number: number(result.Months), Label: "months"},
		{Number: number(result.Days), Label: "days"},
	}
	return p
}

// Renderer executes the page template.
type Renderer struct {
	tmpl *template.Template
}

var _ ports.HealthChecker = (*Renderer)(nil)

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing page templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the page to w.
func (r *Renderer) Render(w io.Writer, p Page) error {
	if err := r.tmpl.ExecuteTemplate(w, pageTemplate, p); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

// Name implements ports.HealthChecker.
func (r *Renderer) Name() string { return "templates" }

// HealthCheck reports whether the page template is loaded.
func (r *Renderer) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r == nil || r.tmpl == nil || r.tmpl.Lookup(pageTemplate) == nil {
		return errors.New("page template not loaded")
	}
	return nil
}
