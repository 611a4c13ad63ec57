// Package cms turns stored post markdown into sanitized HTML for the
// public storefront API.
package cms

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer converts markdown post bodies to HTML safe to serve to any
// client. Rendering and sanitation are both stateless, so one Renderer
// serves all requests.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewRenderer creates a renderer with GFM tables/strikethrough enabled
// and a UGC sanitation policy.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			// Raw HTML must pass through goldmark so bluemonday is the
			// one deciding what survives. Without this goldmark drops
			// the tags but leaks their text content.
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
		policy: bluemonday.UGCPolicy(),
	}
}

// Render converts a markdown body to sanitized HTML.
func (r *Renderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("cms: render markdown: %w", err)
	}
	return r.policy.Sanitize(buf.String()), nil
}

// Excerpt returns the first line of a markdown body with heading and
// emphasis markers stripped, for list views in the terminal client.
func Excerpt(markdown string, maxLen int) string {
	line := markdown
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	for len(line) > 0 && (line[0] == '#' || line[0] == ' ' || line[0] == '*' || line[0] == '_' || line[0] == '>') {
		line = line[1:]
	}
	if maxLen > 0 && utf8.RuneCountInString(line) > maxLen {
		runes := []rune(line)
		line = string(runes[:maxLen-1]) + "…"
	}
	return line
}
