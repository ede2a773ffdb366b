package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes builds the site router. Static routes are registered before the
// page wildcard so /blog, /docs, /stats and /reload are never shadowed.
func Routes(h *Handler, static http.FileSystem) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeHome)
	r.Get("/blog", h.ServeBlogIndex)
	r.Get("/blog/{year}/{month}/{day}/{slug}", h.ServeBlogPost)
	r.Get("/docs", h.ServeDocsIndex)
	r.Get("/docs/{category}/{slug}", h.ServeArticle)
	r.Get("/stats", h.ServeStats)
	r.Post("/reload", h.ServeReload)

	if static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(static)))
	}

	r.Get("/{slug}", h.ServePage)

	return r
}
