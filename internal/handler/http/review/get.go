package review

import (
	"errors"
	"net/http"

	"gamepulse/internal/handler/http/pathutil"
	"gamepulse/internal/handler/http/respond"
	revUC "gamepulse/internal/usecase/review"
)

type GetHandler struct{ Svc revUC.Service }

// ServeHTTP returns a single review by its path ID.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/reviews/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	review, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, revUC.ErrInvalidReviewID) {
			code = http.StatusBadRequest
		} else if errors.Is(err, revUC.ErrReviewNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(review))
}
