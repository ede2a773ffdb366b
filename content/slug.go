package content

import (
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

var (
	timestampPrefix = regexp.MustCompile(`^\d{14}_`)
	datePrefix      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-`)
)

// PageSlug derives a page slug from a file stem. Pages use the stem verbatim,
// case preserved.
func PageSlug(stem string) string {
	return stem
}

// PostSlug derives a blog post slug from a file stem. A 14-digit timestamp
// prefix ("20231215143022_my-post") takes priority over a date prefix
// ("2023-12-15-my-post-title"); hyphens inside the remainder are preserved.
// Stems matching neither pattern are used whole.
func PostSlug(stem string) string {
	if m := timestampPrefix.FindString(stem); m != "" {
		return stem[len(m):]
	}
	if m := datePrefix.FindString(stem); m != "" {
		return stem[len(m):]
	}
	return stem
}

// PostDate resolves a post's calendar date. The frontmatter date wins when it
// parses; otherwise the file's modification time is truncated to a date. The
// fallback is silent, a bad date value never surfaces as an error.
func PostDate(metaDate string, modified time.Time) time.Time {
	if metaDate != "" {
		if t, ok := parseDate(metaDate); ok {
			return t
		}
	}
	return time.Date(modified.Year(), modified.Month(), modified.Day(), 0, 0, 0, 0, time.UTC)
}

// DateSlug builds the canonical "YYYY/MM/DD/<slug>" URL fragment.
func DateSlug(date time.Time, slug string) string {
	return date.Format("2006/01/02") + "/" + slug
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// TitleFromSlug upper-cases the first rune of the slug, leaving the rest
// unchanged. Used by pages and blog posts when frontmatter has no title.
func TitleFromSlug(slug string) string {
	return capitalize(slug)
}

// ArticleTitleFromSlug replaces hyphens with spaces before capitalizing.
// Used by documentation articles when frontmatter has no title.
func ArticleTitleFromSlug(slug string) string {
	return capitalize(strings.ReplaceAll(slug, "-", " "))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
