package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/x1khalil1x/turbo-breaks/internal/placeholder"
	"github.com/x1khalil1x/turbo-breaks/internal/seo"
)

// ProjectHandler renders the placeholder page for /projects/{slug}.
func (a *app) ProjectHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := a.catalog.Lookup(chi.URLParam(r, "slug"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	page := placeholder.Page{
		Meta:    seo.ForProject(a.siteName, a.baseURL, p.Path(), p.Title, p.Description),
		Content: p.Content(),
		Notes:   placeholder.RenderNotes(p.Notes),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.view.Render(w, page); err != nil {
		log.Printf("render project %s: %v", p.Slug, err)
		http.Error(w, "template exec error", http.StatusInternalServerError)
	}
}

// ProjectsIndexHandler sends /projects to the first catalog entry.
func (a *app) ProjectsIndexHandler(w http.ResponseWriter, r *http.Request) {
	all := a.catalog.All()
	if len(all) == 0 {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, all[0].Path(), http.StatusFound)
}
