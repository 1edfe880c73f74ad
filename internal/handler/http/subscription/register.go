package subscription

import (
	"net/http"

	subUC "gamepulse/internal/usecase/subscription"
)

// Register registers the newsletter sign-up handler with the given mux.
func Register(mux *http.ServeMux, svc subUC.Service) {
	mux.Handle("POST /api/subscribe", CreateHandler{svc})
}
