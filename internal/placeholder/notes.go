package placeholder

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	notesMarkdown = goldmark.New(goldmark.WithExtensions(extension.Linkify, extension.Strikethrough))
	notesPolicy   = bluemonday.UGCPolicy()
)

// RenderNotes converts project notes from Markdown to sanitized HTML.
// Blank or unconvertible input yields an empty result.
func RenderNotes(md string) template.HTML {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := notesMarkdown.Convert([]byte(md), &buf); err != nil {
		return ""
	}
	// bluemonday output is safe to embed as-is.
	return template.HTML(notesPolicy.SanitizeBytes(buf.Bytes()))
}
