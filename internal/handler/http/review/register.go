package review

import (
	"net/http"

	revUC "gamepulse/internal/usecase/review"
)

// Register registers all review-related HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc revUC.Service) {
	mux.Handle("GET /api/reviews", ListHandler{svc})
	mux.Handle("GET /api/reviews/", GetHandler{svc})
}
