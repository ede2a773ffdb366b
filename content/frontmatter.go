package content

import (
	"bytes"
	"strings"

	"github.com/adrg/frontmatter"
)

const frontmatterDelimiter = "---"

// Metadata is the decoded frontmatter envelope. Every field is optional;
// consumers treat the zero value as absence and apply their own defaults.
type Metadata struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Date        string   `yaml:"date"`
	CreatedAt   string   `yaml:"created_at"`
	Author      string   `yaml:"author"`
	Tags        []string `yaml:"tags"`
	Published   *bool    `yaml:"published"`
	Order       *int     `yaml:"order"`
}

// IsPublished resolves the published flag, defaulting to true when the
// frontmatter carries none.
func (m Metadata) IsPublished() bool {
	return m.Published == nil || *m.Published
}

// ArticleOrder resolves the documentation sort order, defaulting unordered
// articles past every ordered one.
func (m Metadata) ArticleOrder() int {
	if m.Order == nil {
		return DefaultArticleOrder
	}
	return *m.Order
}

// ParseFrontmatter splits source into a decoded metadata envelope and a body.
// It reports whether a leading delimiter was present at all.
//
// Sources that do not begin with "---" yield empty metadata and the source
// unmodified. A malformed metadata block is tolerated: the envelope comes
// back empty and the body is recovered with a best-effort split. The function
// never fails.
func ParseFrontmatter(source []byte) (Metadata, string, bool) {
	if !bytes.HasPrefix(source, []byte(frontmatterDelimiter)) {
		return Metadata{}, string(source), false
	}

	// SplitN keeps a body that itself contains the delimiter sequence intact.
	parts := strings.SplitN(string(source), frontmatterDelimiter, 3)
	if len(parts) < 3 {
		// Opening delimiter that never closes: nothing left to call a body.
		return Metadata{}, "", true
	}
	body := strings.TrimSpace(parts[2])

	var meta Metadata
	if _, err := frontmatter.Parse(bytes.NewReader(source), &meta); err != nil {
		return Metadata{}, body, true
	}
	return meta, body, true
}
