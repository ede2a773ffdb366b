package content

import (
	"testing"
	"time"
)

func TestPostSlug(t *testing.T) {
	cases := []struct {
		stem string
		want string
	}{
		{"20231215143022_my-post", "my-post"},
		{"20231215143022_with_underscore", "with_underscore"},
		{"2023-12-15-my-post-title", "my-post-title"},
		{"2023-12-15-a", "a"},
		{"plain-filename", "plain-filename"},
		{"202312151430_short-timestamp", "202312151430_short-timestamp"},
		{"2023-1-15-bad-date-width", "2023-1-15-bad-date-width"},
	}

	for _, tc := range cases {
		if got := PostSlug(tc.stem); got != tc.want {
			t.Fatalf("PostSlug(%q) = %q, want %q", tc.stem, got, tc.want)
		}
	}
}

func TestPageSlugPreservesCase(t *testing.T) {
	if got := PageSlug("About-Me"); got != "About-Me" {
		t.Fatalf("PageSlug = %q, want About-Me", got)
	}
}

func TestPostDatePrefersMetadata(t *testing.T) {
	modified := time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)

	got := PostDate("2023-12-15", modified)
	want := time.Date(2023, 12, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("PostDate = %v, want %v", got, want)
	}
}

func TestPostDateFallsBackToModTime(t *testing.T) {
	modified := time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)
	want := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	for _, metaDate := range []string{"", "not a date", "15/12/2023"} {
		if got := PostDate(metaDate, modified); !got.Equal(want) {
			t.Fatalf("PostDate(%q) = %v, want fallback %v", metaDate, got, want)
		}
	}
}

func TestDateSlug(t *testing.T) {
	date := time.Date(2023, 12, 15, 0, 0, 0, 0, time.UTC)
	if got := DateSlug(date, "my-post"); got != "2023/12/15/my-post" {
		t.Fatalf("DateSlug = %q", got)
	}
}

func TestTitleDefaults(t *testing.T) {
	if got := TitleFromSlug("my-post"); got != "My-post" {
		t.Fatalf("TitleFromSlug = %q, want My-post", got)
	}
	if got := ArticleTitleFromSlug("getting-started"); got != "Getting started" {
		t.Fatalf("ArticleTitleFromSlug = %q, want Getting started", got)
	}
	if got := TitleFromSlug(""); got != "" {
		t.Fatalf("TitleFromSlug(\"\") = %q, want empty", got)
	}
}
