package emberwick

import (
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config is the full runtime configuration.
type Config struct {
	Server  ServerConfig
	Content ContentConfig
	// Development relaxes blog publication filtering and permits ad hoc
	// reloads through the web layer.
	Development bool
}

// ServerConfig covers the HTTP listener.
type ServerConfig struct {
	Host string
	Port int
}

// ContentConfig locates the content trees on disk. PagesDir, BlogDir and
// DocsDir are resolved relative to Root when not absolute.
type ContentConfig struct {
	Root      string
	PagesDir  string
	BlogDir   string
	DocsDir   string
	StaticDir string
	// CodeStyle names the chroma style used for highlighted code.
	CodeStyle string
}

// DefaultConfig returns the conventional layout: a content/ root with pages,
// blog and docs subdirectories, serving on :8080.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Host: "",
			Port: 8080,
		},
		Content: ContentConfig{
			Root:      "content",
			PagesDir:  "pages",
			BlogDir:   "blog",
			DocsDir:   "docs",
			StaticDir: "static",
		},
	}
}

// Validate checks the configuration before anything is wired.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Server),
		validation.Field(&c.Content),
	)
}

// Validate implements validation.Validatable.
func (c ServerConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// Validate implements validation.Validatable.
func (c ContentConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Root, validation.Required),
		validation.Field(&c.PagesDir, validation.Required),
		validation.Field(&c.BlogDir, validation.Required),
		validation.Field(&c.DocsDir, validation.Required),
	)
}

func (c ContentConfig) resolve(dir string) string {
	if dir == "" || filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(c.Root, dir)
}

// PagesPath is the resolved pages directory.
func (c ContentConfig) PagesPath() string { return c.resolve(c.PagesDir) }

// BlogPath is the resolved blog directory.
func (c ContentConfig) BlogPath() string { return c.resolve(c.BlogDir) }

// DocsPath is the resolved documentation root.
func (c ContentConfig) DocsPath() string { return c.resolve(c.DocsDir) }

// StaticPath is the resolved static asset directory.
func (c ContentConfig) StaticPath() string { return c.resolve(c.StaticDir) }
