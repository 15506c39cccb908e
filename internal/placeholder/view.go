package placeholder

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/x1khalil1x/turbo-breaks/internal/seo"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Notice copy shown on every placeholder page.
const (
	StatusHeadline = "Integration in Progress"
	StatusDetail   = "This project is being integrated into the AMF Hub. The full application will be available here soon."
)

// PageContent is the per-project copy rendered by the placeholder view.
type PageContent struct {
	Title       string
	Description string
}

// StatusHeadline returns the fixed notice headline.
func (PageContent) StatusHeadline() string { return StatusHeadline }

// StatusDetail returns the fixed notice explanation.
func (PageContent) StatusDetail() string { return StatusDetail }

// Page is the view model for a full placeholder document.
type Page struct {
	Meta    seo.Meta
	Content PageContent
	// Notes is pre-sanitized HTML, see RenderNotes.
	Notes template.HTML
}

// View renders placeholder pages from the embedded templates.
// A View is immutable once built and safe for concurrent use.
type View struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*View, error) {
	t, err := template.New("_root").ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("placeholder: parse templates: %w", err)
	}
	return &View{tmpl: t}, nil
}

// Must is like New but panics when the embedded templates are broken.
func Must() *View {
	v, err := New()
	if err != nil {
		panic(err)
	}
	return v
}

// Render writes the full HTML document for page to w.
func (v *View) Render(w io.Writer, page Page) error {
	return v.execute(w, "base", page)
}

// RenderFragment writes only the placeholder block, without the document layout.
func (v *View) RenderFragment(w io.Writer, content PageContent) error {
	return v.execute(w, "placeholder", Page{Content: content})
}

// execute buffers the output so a failed render never leaves half a page on w.
func (v *View) execute(w io.Writer, name string, data Page) error {
	var buf bytes.Buffer
	if err := v.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("placeholder: execute %s: %w", name, err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("placeholder: write %s: %w", name, err)
	}
	return nil
}
