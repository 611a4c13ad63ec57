package cms

import (
	"strings"
	"testing"
)

func TestRenderer_RendersMarkdown(t *testing.T) {
	t.Parallel()

	r := NewRenderer()
	html, err := r.Render("# Spring sale\n\nUp to **50%** off.")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(html, "<h1") || !strings.Contains(html, "<strong>50%</strong>") {
		t.Fatalf("unexpected html: %q", html)
	}
}

func TestRenderer_StripsScripts(t *testing.T) {
	t.Parallel()

	r := NewRenderer()
	html, err := r.Render("hello <script>alert(1)</script> world")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(html, "<script") || strings.Contains(html, "alert(1)") {
		t.Fatalf("script survived sanitation: %q", html)
	}
	if !strings.Contains(html, "hello") || !strings.Contains(html, "world") {
		t.Fatalf("surrounding text lost: %q", html)
	}
}

func TestRenderer_StripsEventHandlers(t *testing.T) {
	t.Parallel()

	r := NewRenderer()
	html, err := r.Render(`click <a href="/x" onclick="steal()">here</a>`)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(html, "onclick") || strings.Contains(html, "steal") {
		t.Fatalf("event handler survived sanitation: %q", html)
	}
	if !strings.Contains(html, "<a") || !strings.Contains(html, "here") {
		t.Fatalf("link stripped entirely: %q", html)
	}
}

func TestExcerpt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"# Big News\nbody", 0, "Big News"},
		{"plain text only", 0, "plain text only"},
		{"a very long first line here", 10, "a very lo…"},
		{"héllo wörld from the café", 8, "héllo w…"},
	}
	for _, tt := range tests {
		if got := Excerpt(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("Excerpt(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}
