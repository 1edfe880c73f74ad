package article

import (
	"errors"
	"net/http"

	"gamepulse/internal/handler/http/respond"
	artUC "gamepulse/internal/usecase/article"
)

type FeaturedHandler struct{ Svc artUC.Service }

// ServeHTTP returns the single featured article, or 404 when the
// catalog holds none yet.
func (h FeaturedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	article, err := h.Svc.GetFeatured(r.Context())
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, artUC.ErrNoFeaturedArticle) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(article))
}
