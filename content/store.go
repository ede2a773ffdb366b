package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Options configures a Store. Any directory may be missing: the matching
// collection simply stays empty.
type Options struct {
	// PagesDir holds standalone *.html pages.
	PagesDir string
	// BlogDir holds *.md posts. A post file must carry a frontmatter block to
	// be indexed at all.
	BlogDir string
	// DocsDir holds one subdirectory per documentation category.
	DocsDir string
	// Development disables the publication filter so unpublished posts show up.
	Development bool
	// Logger defaults to a nop logger when nil.
	Logger *zap.Logger
}

// Store is the in-memory content index: three collections built by a single
// filesystem scan and replaced wholesale on Reload. Records are never mutated
// after insertion; queries read whichever snapshot is current. The Store does
// no locking of its own, callers that reload concurrently with reads must
// serialize externally.
type Store struct {
	opts Options
	log  *zap.Logger
	snap *snapshot
}

type snapshot struct {
	pages map[string]*Page

	posts      map[string]*BlogPost
	byDateSlug map[string]*BlogPost
	ordered    []*BlogPost

	articles     map[string]map[string]*Article
	articleOrder map[string][]*Article
	categories   []string

	loadedAt time.Time
}

// NewStore builds a store and performs the initial scan. The only errors it
// returns are catastrophic filesystem failures; per-file problems are logged
// and skipped.
func NewStore(opts Options) (*Store, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	s := &Store{opts: opts, log: opts.Logger}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload discards every collection and rescans the three content trees. The
// previous snapshot stays visible until the rebuild completes.
func (s *Store) Reload() error {
	snap := &snapshot{
		pages:        map[string]*Page{},
		posts:        map[string]*BlogPost{},
		byDateSlug:   map[string]*BlogPost{},
		articles:     map[string]map[string]*Article{},
		articleOrder: map[string][]*Article{},
	}

	if err := s.scanPages(snap); err != nil {
		return err
	}
	if err := s.scanPosts(snap); err != nil {
		return err
	}
	if err := s.scanArticles(snap); err != nil {
		return err
	}

	snap.loadedAt = time.Now().UTC()
	s.snap = snap

	s.log.Info("content loaded",
		zap.Int("pages", len(snap.pages)),
		zap.Int("posts", len(snap.posts)),
		zap.Int("categories", len(snap.categories)),
	)
	return nil
}

// GetPage looks a page up by slug.
func (s *Store) GetPage(slug string) (*Page, error) {
	page, ok := s.snap.pages[slug]
	if !ok {
		return nil, ErrPageNotFound
	}
	return page, nil
}

// GetBlogPost looks a post up by slug.
func (s *Store) GetBlogPost(slug string) (*BlogPost, error) {
	post, ok := s.snap.posts[slug]
	if !ok {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// GetBlogPostByDateSlug looks a post up by its resolved date components and
// slug. All four must match exactly.
func (s *Store) GetBlogPostByDateSlug(year, month, day int, slug string) (*BlogPost, error) {
	key := fmt.Sprintf("%04d/%02d/%02d/%s", year, month, day, slug)
	post, ok := s.snap.byDateSlug[key]
	if !ok {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// GetBlogPosts returns posts sorted by date descending, ties keeping scan
// order. A limit above zero truncates from the front.
func (s *Store) GetBlogPosts(limit int) []*BlogPost {
	ordered := s.snap.ordered
	if limit > 0 && limit < len(ordered) {
		ordered = ordered[:limit]
	}
	out := make([]*BlogPost, len(ordered))
	copy(out, ordered)
	return out
}

// GetArticle looks a documentation article up by category and slug.
func (s *Store) GetArticle(category, slug string) (*Article, error) {
	articles, ok := s.snap.articles[category]
	if !ok {
		return nil, ErrArticleNotFound
	}
	article, ok := articles[slug]
	if !ok {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// DocumentationIndex returns per-category article summaries, each list in the
// stored ascending-order position.
func (s *Store) DocumentationIndex() map[string][]ArticleSummary {
	index := make(map[string][]ArticleSummary, len(s.snap.articleOrder))
	for _, category := range s.snap.categories {
		articles := s.snap.articleOrder[category]
		summaries := make([]ArticleSummary, 0, len(articles))
		for _, a := range articles {
			summaries = append(summaries, ArticleSummary{
				Title:       a.Title,
				Slug:        a.Slug,
				Description: a.Description,
			})
		}
		index[category] = summaries
	}
	return index
}

// Categories returns documentation category names in lexicographic order.
func (s *Store) Categories() []string {
	out := make([]string, len(s.snap.categories))
	copy(out, s.snap.categories)
	return out
}

// Stats reports collection sizes and the time of the last completed load.
func (s *Store) Stats() Stats {
	snap := s.snap
	articles := 0
	for _, list := range snap.articleOrder {
		articles += len(list)
	}
	return Stats{
		Pages:       len(snap.pages),
		BlogPosts:   len(snap.posts),
		Articles:    articles,
		LastUpdated: snap.loadedAt,
	}
}

// scanPages indexes every *.html file in the pages directory. os.ReadDir
// enumerates lexicographically, so duplicate slugs resolve deterministically
// to the greatest filename.
func (s *Store) scanPages(snap *snapshot) error {
	entries, err := readContentDir(s.opts.PagesDir)
	if err != nil {
		return fmt.Errorf("content: scan pages: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".html") {
			continue
		}
		source, modified, ok := s.readFile(filepath.Join(s.opts.PagesDir, entry.Name()))
		if !ok {
			continue
		}

		slug := PageSlug(stem(entry.Name()))
		meta, body, _ := ParseFrontmatter(source)

		title := meta.Title
		if title == "" {
			title = TitleFromSlug(slug)
		}

		snap.pages[slug] = &Page{
			Slug:        slug,
			Title:       title,
			Description: meta.Description,
			Body:        body,
			UpdatedAt:   modified,
		}
	}
	return nil
}

// scanPosts indexes every *.md file in the blog directory. Files without a
// frontmatter delimiter are skipped entirely; the publication filter runs
// once, after the whole directory has been read.
func (s *Store) scanPosts(snap *snapshot) error {
	entries, err := readContentDir(s.opts.BlogDir)
	if err != nil {
		return fmt.Errorf("content: scan blog: %w", err)
	}

	var scanned []*BlogPost
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".md") {
			continue
		}
		source, modified, ok := s.readFile(filepath.Join(s.opts.BlogDir, entry.Name()))
		if !ok {
			continue
		}

		meta, body, hasFrontmatter := ParseFrontmatter(source)
		if !hasFrontmatter {
			s.log.Debug("skipping post without frontmatter", zap.String("file", entry.Name()))
			continue
		}

		slug := PostSlug(stem(entry.Name()))
		date := PostDate(meta.Date, modified)

		title := meta.Title
		if title == "" {
			title = TitleFromSlug(slug)
		}
		author := meta.Author
		if author == "" {
			author = DefaultAuthor
		}
		tags := meta.Tags
		if tags == nil {
			tags = []string{}
		}
		var createdAt *time.Time
		if t, ok := parseDate(meta.CreatedAt); ok {
			createdAt = &t
		}

		scanned = append(scanned, &BlogPost{
			Slug:        slug,
			Title:       title,
			Description: meta.Description,
			Body:        body,
			UpdatedAt:   modified,
			DateSlug:    DateSlug(date, slug),
			Filename:    entry.Name(),
			Author:      author,
			Date:        date,
			CreatedAt:   createdAt,
			Tags:        tags,
			Published:   meta.IsPublished(),
		})
	}

	for _, post := range scanned {
		if !post.Published && !s.opts.Development {
			continue
		}
		if prev, exists := snap.posts[post.Slug]; exists {
			// Later files win; evict the earlier record everywhere it is indexed.
			delete(snap.byDateSlug, prev.DateSlug)
			for i, p := range snap.ordered {
				if p == prev {
					snap.ordered = append(snap.ordered[:i], snap.ordered[i+1:]...)
					break
				}
			}
		}
		snap.posts[post.Slug] = post
		snap.byDateSlug[post.DateSlug] = post
		snap.ordered = append(snap.ordered, post)
	}
	sort.SliceStable(snap.ordered, func(i, j int) bool {
		return snap.ordered[i].Date.After(snap.ordered[j].Date)
	})
	return nil
}

// scanArticles indexes *.md files one level below the documentation root.
// Only subdirectories count as categories; stray files at the root level are
// ignored.
func (s *Store) scanArticles(snap *snapshot) error {
	entries, err := readContentDir(s.opts.DocsDir)
	if err != nil {
		return fmt.Errorf("content: scan documentation: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		category := entry.Name()
		files, err := os.ReadDir(filepath.Join(s.opts.DocsDir, category))
		if err != nil {
			s.log.Warn("skipping unreadable category", zap.String("category", category), zap.Error(err))
			continue
		}

		byCategory := map[string]*Article{}
		var order []*Article
		for _, file := range files {
			if file.IsDir() || !strings.EqualFold(filepath.Ext(file.Name()), ".md") {
				continue
			}
			source, modified, ok := s.readFile(filepath.Join(s.opts.DocsDir, category, file.Name()))
			if !ok {
				continue
			}

			slug := stem(file.Name())
			meta, body, _ := ParseFrontmatter(source)

			title := meta.Title
			if title == "" {
				title = ArticleTitleFromSlug(slug)
			}

			article := &Article{
				Slug:        slug,
				Title:       title,
				Description: meta.Description,
				Body:        body,
				UpdatedAt:   modified,
				Category:    category,
				Order:       meta.ArticleOrder(),
			}
			byCategory[slug] = article
			order = append(order, article)
		}

		if len(byCategory) == 0 {
			continue
		}
		sort.SliceStable(order, func(i, j int) bool {
			return order[i].Order < order[j].Order
		})
		snap.articles[category] = byCategory
		snap.articleOrder[category] = order
		snap.categories = append(snap.categories, category)
	}
	return nil
}

// readFile loads a file and its modification time, logging and skipping on
// failure so one bad file never aborts a scan.
func (s *Store) readFile(path string) ([]byte, time.Time, bool) {
	source, err := os.ReadFile(path)
	if err != nil {
		s.log.Warn("skipping unreadable file", zap.String("path", path), zap.Error(err))
		return nil, time.Time{}, false
	}
	info, err := os.Stat(path)
	if err != nil {
		s.log.Warn("skipping unstattable file", zap.String("path", path), zap.Error(err))
		return nil, time.Time{}, false
	}
	return source, info.ModTime(), true
}

// readContentDir enumerates a content directory. A missing directory is not
// an error, the collection just stays empty. Anything else (permissions, an
// unreadable root) is catastrophic and propagates.
func readContentDir(dir string) ([]os.DirEntry, error) {
	if dir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return entries, nil
}

func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
