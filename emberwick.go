// Package emberwick assembles a file-backed site: content is discovered on
// disk, indexed into three collections (pages, blog posts, documentation),
// and served through a small query API plus a Markdown renderer.
package emberwick

import (
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/emberwick/emberwick/content"
	"github.com/emberwick/emberwick/internal/markdown"
	"github.com/emberwick/emberwick/internal/web"
)

// App wires the store, renderer, and routing layer together.
type App struct {
	Config   Config
	Store    *content.Store
	Renderer *markdown.Renderer
	Handler  http.Handler
}

// New validates cfg, performs the initial content scan, and builds the HTTP
// handler. The initial scan fails only on catastrophic filesystem errors.
func New(cfg Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("emberwick: invalid config: %w", err)
	}

	store, err := content.NewStore(content.Options{
		PagesDir:    cfg.Content.PagesPath(),
		BlogDir:     cfg.Content.BlogPath(),
		DocsDir:     cfg.Content.DocsPath(),
		Development: cfg.Development,
		Logger:      logger.Named("content"),
	})
	if err != nil {
		return nil, err
	}

	renderer := markdown.NewRenderer(markdown.Options{CodeStyle: cfg.Content.CodeStyle})

	var static http.FileSystem
	if dir := cfg.Content.StaticPath(); dir != "" {
		if _, err := os.Stat(dir); err == nil {
			static = http.Dir(dir)
		}
	}

	handler := web.NewHandler(store, renderer, logger.Named("web"), cfg.Development)

	return &App{
		Config:   cfg,
		Store:    store,
		Renderer: renderer,
		Handler:  web.Routes(handler, static),
	}, nil
}

// Addr is the listen address derived from the server config.
func (a *App) Addr() string {
	return fmt.Sprintf("%s:%d", a.Config.Server.Host, a.Config.Server.Port)
}
