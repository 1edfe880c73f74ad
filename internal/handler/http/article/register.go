package article

import (
	"log/slog"
	"net/http"

	artUC "gamepulse/internal/usecase/article"
)

// Register registers all article-related HTTP handlers with the given mux.
// The exact featured pattern takes precedence over the ID prefix route.
func Register(mux *http.ServeMux, svc artUC.Service, logger *slog.Logger) {
	mux.Handle("GET /api/articles", ListHandler{Svc: svc, Logger: logger})
	mux.Handle("GET /api/articles/featured", FeaturedHandler{svc})
	mux.Handle("GET /api/articles/", GetHandler{svc})
	mux.Handle("GET /api/search", SearchHandler{svc})
}
