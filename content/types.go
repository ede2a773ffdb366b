package content

import "time"

// DefaultAuthor is attributed to blog posts whose frontmatter names no author.
const DefaultAuthor = "Ember Maddox"

// DefaultArticleOrder sorts articles without an explicit order after every
// article that has one.
const DefaultArticleOrder = 999

// Page is a standalone page backed by an HTML file. Body is raw HTML and is
// handed to the template layer untouched.
type Page struct {
	Slug        string
	Title       string
	Description string
	Body        string
	UpdatedAt   time.Time
}

// BlogPost is a dated post backed by a Markdown file. Body is raw Markdown;
// callers render it on the way out.
type BlogPost struct {
	Slug        string
	Title       string
	Description string
	Body        string
	UpdatedAt   time.Time

	// DateSlug is the canonical URL fragment "YYYY/MM/DD/<slug>" built from
	// the resolved post date.
	DateSlug  string
	Filename  string
	Author    string
	Date      time.Time
	CreatedAt *time.Time
	Tags      []string
	Published bool
}

// Article is a documentation entry backed by a Markdown file inside a
// category directory.
type Article struct {
	Slug        string
	Title       string
	Description string
	Body        string
	UpdatedAt   time.Time

	Category string
	Order    int
}

// ArticleSummary is the listing shape exposed by DocumentationIndex.
type ArticleSummary struct {
	Title       string
	Slug        string
	Description string
}

// Stats is a point-in-time snapshot of collection sizes.
type Stats struct {
	Pages       int
	BlogPosts   int
	Articles    int
	LastUpdated time.Time
}
