package content

import (
	"strings"
	"testing"
)

func TestParseFrontmatter(t *testing.T) {
	source := []byte("---\ntitle: Hello\ndescription: A greeting\ntags:\n  - go\n  - site\npublished: false\norder: 2\n---\n\n# Body\n")

	meta, body, ok := ParseFrontmatter(source)
	if !ok {
		t.Fatalf("expected frontmatter to be detected")
	}
	if meta.Title != "Hello" || meta.Description != "A greeting" {
		t.Fatalf("metadata mismatch: %+v", meta)
	}
	if len(meta.Tags) != 2 || meta.Tags[0] != "go" {
		t.Fatalf("tags mismatch: %#v", meta.Tags)
	}
	if meta.IsPublished() {
		t.Fatalf("expected published: false to be honored")
	}
	if meta.ArticleOrder() != 2 {
		t.Fatalf("ArticleOrder = %d, want 2", meta.ArticleOrder())
	}
	if body != "# Body" {
		t.Fatalf("body = %q, want trimmed body", body)
	}
}

func TestParseFrontmatterDefaults(t *testing.T) {
	meta, _, _ := ParseFrontmatter([]byte("---\ntitle: Bare\n---\nbody"))

	if !meta.IsPublished() {
		t.Fatalf("published should default to true")
	}
	if meta.ArticleOrder() != DefaultArticleOrder {
		t.Fatalf("ArticleOrder = %d, want %d", meta.ArticleOrder(), DefaultArticleOrder)
	}
}

func TestParseFrontmatterAbsent(t *testing.T) {
	source := "# Just a body\n\nwith no metadata block\n"

	meta, body, ok := ParseFrontmatter([]byte(source))
	if ok {
		t.Fatalf("expected no frontmatter")
	}
	if meta.Title != "" {
		t.Fatalf("expected empty metadata, got %+v", meta)
	}
	if body != source {
		t.Fatalf("body must be returned unmodified, got %q", body)
	}
}

func TestParseFrontmatterBodyKeepsDelimiter(t *testing.T) {
	source := []byte("---\ntitle: Rules\n---\nintro\n\n---\n\noutro")

	_, body, ok := ParseFrontmatter(source)
	if !ok {
		t.Fatalf("expected frontmatter to be detected")
	}
	if !strings.Contains(body, "---") {
		t.Fatalf("delimiter inside the body must survive, got %q", body)
	}
}

func TestParseFrontmatterMalformed(t *testing.T) {
	source := []byte("---\ntitle: \"unterminated\ndescription: [nope\n---\nstill a body\n")

	meta, body, ok := ParseFrontmatter(source)
	if !ok {
		t.Fatalf("expected delimiter to be detected despite bad metadata")
	}
	if meta.Title != "" || meta.Description != "" {
		t.Fatalf("malformed block must yield empty metadata, got %+v", meta)
	}
	if body != "still a body" {
		t.Fatalf("body = %q, want best-effort split body", body)
	}
}

func TestParseFrontmatterUnterminatedBlock(t *testing.T) {
	meta, body, ok := ParseFrontmatter([]byte("---\ntitle: Never closed\n"))
	if !ok {
		t.Fatalf("expected delimiter to be detected")
	}
	if meta.Title != "" {
		t.Fatalf("expected empty metadata, got %+v", meta)
	}
	if body != "" {
		t.Fatalf("unterminated block has no body, got %q", body)
	}
}
