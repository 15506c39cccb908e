package projects

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/x1khalil1x/turbo-breaks/internal/placeholder"
)

// Project describes a hub project that is still shown as a placeholder.
type Project struct {
	Slug        string
	Title       string
	Description string
	// Notes is optional Markdown rendered below the status notice.
	Notes string
}

// Content returns the copy rendered by the placeholder view.
func (p Project) Content() placeholder.PageContent {
	return placeholder.PageContent{Title: p.Title, Description: p.Description}
}

// Path returns the hub route for the project.
func (p Project) Path() string { return "/projects/" + p.Slug }

var (
	// ErrCatalogNotFound indicates the catalog file does not exist.
	ErrCatalogNotFound = fmt.Errorf("projects: catalog not found: %w", fs.ErrNotExist)
	// ErrInvalidSlug indicates a slug outside [a-z0-9-].
	ErrInvalidSlug = errors.New("projects: invalid slug")
	// ErrDuplicateSlug indicates two projects share a slug.
	ErrDuplicateSlug = errors.New("projects: duplicate slug")
)

// Defaults returns the built-in project pages.
func Defaults() []Project {
	return []Project{
		{
			Slug:        "sports-tracker",
			Title:       "Sports Tracker",
			Description: "Track sports events, games, and athletic activities with real-time updates",
		},
		{
			Slug:        "tc-timeline",
			Title:       "TC Timeline",
			Description: "Project timeline and milestone tracking for creative workflows",
		},
	}
}

// Catalog is an ordered, read-only set of projects keyed by slug.
type Catalog struct {
	order  []string
	bySlug map[string]Project
}

// NewCatalog validates projects and indexes them in the given order.
func NewCatalog(projects ...Project) (*Catalog, error) {
	c := &Catalog{
		order:  make([]string, 0, len(projects)),
		bySlug: make(map[string]Project, len(projects)),
	}
	for _, p := range projects {
		slug := normalizeSlug(p.Slug)
		if !validSlug(slug) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSlug, p.Slug)
		}
		if _, dup := c.bySlug[slug]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSlug, slug)
		}
		p.Slug = slug
		c.order = append(c.order, slug)
		c.bySlug[slug] = p
	}
	return c, nil
}

// Default returns a catalog of the built-in projects.
func Default() *Catalog {
	c, err := NewCatalog(Defaults()...)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup finds a project by slug. Case, surrounding whitespace and slashes are ignored.
func (c *Catalog) Lookup(slug string) (Project, bool) {
	if c == nil {
		return Project{}, false
	}
	p, ok := c.bySlug[normalizeSlug(slug)]
	return p, ok
}

// All returns the projects in catalog order.
func (c *Catalog) All() []Project {
	if c == nil {
		return nil
	}
	out := make([]Project, 0, len(c.order))
	for _, slug := range c.order {
		out = append(out, c.bySlug[slug])
	}
	return out
}

// Len reports the number of projects.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

type catalogFile struct {
	Projects []catalogEntry `yaml:"projects"`
}

type catalogEntry struct {
	Slug        string `yaml:"slug"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Notes       string `yaml:"notes"`
}

// LoadFile reads a YAML catalog and overlays it on the defaults. Entries whose
// slug matches a default replace it in place; other entries are appended.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrCatalogNotFound, path)
		}
		return nil, fmt.Errorf("projects: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes a YAML catalog document and overlays it on the defaults.
func Parse(raw []byte) (*Catalog, error) {
	var doc catalogFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("projects: parse catalog: %w", err)
	}
	merged := Defaults()
	index := make(map[string]int, len(merged))
	for i, p := range merged {
		index[p.Slug] = i
	}
	for _, e := range doc.Projects {
		p := Project{
			Slug:        normalizeSlug(e.Slug),
			Title:       strings.TrimSpace(e.Title),
			Description: strings.TrimSpace(e.Description),
			Notes:       e.Notes,
		}
		if i, ok := index[p.Slug]; ok {
			merged[i] = p
			continue
		}
		index[p.Slug] = len(merged)
		merged = append(merged, p)
	}
	return NewCatalog(merged...)
}

func normalizeSlug(slug string) string {
	return strings.Trim(strings.ToLower(strings.TrimSpace(slug)), "/")
}

func validSlug(slug string) bool {
	if slug == "" {
		return false
	}
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
		default:
			return false
		}
	}
	return true
}
