package seo

import "strings"

// Meta holds document-level metadata for the layout head.
type Meta struct {
	Title       string
	Description string
	Canonical   string
}

// ForProject builds head metadata for a project page served at path.
// The document title is "<title> | <siteName>", or just siteName when title is blank.
func ForProject(siteName, baseURL, path, title, description string) Meta {
	siteName = strings.TrimSpace(siteName)
	title = strings.TrimSpace(title)
	m := Meta{Description: strings.TrimSpace(description)}
	switch {
	case title == "":
		m.Title = siteName
	case siteName == "":
		m.Title = title
	default:
		m.Title = title + " | " + siteName
	}
	if base := strings.TrimRight(strings.TrimSpace(baseURL), "/"); base != "" {
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		m.Canonical = base + path
	}
	return m
}
