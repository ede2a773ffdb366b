// Package web is the thin routing layer over the content store: path
// parameters map to store lookups, Markdown bodies pass through the renderer,
// and a small layout template wraps the result. All content rules live in the
// content and markdown packages.
package web

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/emberwick/emberwick/content"
	"github.com/emberwick/emberwick/internal/markdown"
)

// Handler serves site requests from the store.
type Handler struct {
	Store       *content.Store
	Renderer    *markdown.Renderer
	Log         *zap.Logger
	Development bool
}

// NewHandler creates a site handler.
func NewHandler(store *content.Store, renderer *markdown.Renderer, logger *zap.Logger, development bool) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Store:       store,
		Renderer:    renderer,
		Log:         logger,
		Development: development,
	}
}

// ServeHome handles GET / by serving the "home" page.
func (h *Handler) ServeHome(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, "home")
}

// ServePage handles GET /{slug}.
func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, chi.URLParam(r, "slug"))
}

func (h *Handler) servePage(w http.ResponseWriter, r *http.Request, slug string) {
	page, err := h.Store.GetPage(slug)
	if err != nil {
		h.notFound(w, err)
		return
	}
	h.renderLayout(w, viewData{
		Title:       page.Title,
		Description: page.Description,
		Content:     template.HTML(page.Body),
	})
}

// ServeBlogIndex handles GET /blog.
func (h *Handler) ServeBlogIndex(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}
	posts := h.Store.GetBlogPosts(limit)

	body, err := h.renderTemplate("blog", map[string]any{"Posts": posts})
	if err != nil {
		h.serverError(w, err)
		return
	}
	h.renderLayout(w, viewData{Title: "Blog", Content: body})
}

// ServeBlogPost handles GET /blog/{year}/{month}/{day}/{slug}.
func (h *Handler) ServeBlogPost(w http.ResponseWriter, r *http.Request) {
	year, errY := strconv.Atoi(chi.URLParam(r, "year"))
	month, errM := strconv.Atoi(chi.URLParam(r, "month"))
	day, errD := strconv.Atoi(chi.URLParam(r, "day"))
	if errY != nil || errM != nil || errD != nil {
		h.notFound(w, content.ErrPostNotFound)
		return
	}

	post, err := h.Store.GetBlogPostByDateSlug(year, month, day, chi.URLParam(r, "slug"))
	if err != nil {
		h.notFound(w, err)
		return
	}

	body, err := h.Renderer.Render(post.Body)
	if err != nil {
		h.serverError(w, err)
		return
	}
	h.renderLayout(w, viewData{
		Title:       post.Title,
		Description: post.Description,
		Content:     template.HTML(body),
	})
}

// ServeDocsIndex handles GET /docs.
func (h *Handler) ServeDocsIndex(w http.ResponseWriter, r *http.Request) {
	body, err := h.renderTemplate("docs", map[string]any{
		"Categories": h.Store.Categories(),
		"Index":      h.Store.DocumentationIndex(),
	})
	if err != nil {
		h.serverError(w, err)
		return
	}
	h.renderLayout(w, viewData{Title: "Documentation", Content: body})
}

// ServeArticle handles GET /docs/{category}/{slug}.
func (h *Handler) ServeArticle(w http.ResponseWriter, r *http.Request) {
	article, err := h.Store.GetArticle(chi.URLParam(r, "category"), chi.URLParam(r, "slug"))
	if err != nil {
		h.notFound(w, err)
		return
	}

	body, err := h.Renderer.Render(article.Body)
	if err != nil {
		h.serverError(w, err)
		return
	}
	h.renderLayout(w, viewData{
		Title:       article.Title,
		Description: article.Description,
		Content:     template.HTML(body),
	})
}

// ServeStats handles GET /stats with a JSON snapshot.
func (h *Handler) ServeStats(w http.ResponseWriter, r *http.Request) {
	stats := h.Store.Stats()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{
		"pageCount":          stats.Pages,
		"blogPostCount":      stats.BlogPosts,
		"documentationCount": stats.Articles,
		"lastUpdated":        stats.LastUpdated,
	}); err != nil {
		h.Log.Warn("encode stats", zap.Error(err))
	}
}

// ServeReload handles POST /reload. Only development mode may trigger ad hoc
// reloads.
func (h *Handler) ServeReload(w http.ResponseWriter, r *http.Request) {
	if !h.Development {
		http.Error(w, "reload disabled outside development mode", http.StatusForbidden)
		return
	}
	if err := h.Store.Reload(); err != nil {
		h.serverError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) renderTemplate(name string, data any) (template.HTML, error) {
	var buf strings.Builder
	if err := renderView(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func (h *Handler) renderLayout(w http.ResponseWriter, data viewData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderView(w, "layout", data); err != nil {
		h.Log.Warn("render layout", zap.Error(err))
	}
}

func (h *Handler) notFound(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, content.ErrPageNotFound),
		errors.Is(err, content.ErrPostNotFound),
		errors.Is(err, content.ErrArticleNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	default:
		h.serverError(w, err)
	}
}

func (h *Handler) serverError(w http.ResponseWriter, err error) {
	h.Log.Error("request failed", zap.Error(err))
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
