package article

import (
	"errors"
	"net/http"

	"gamepulse/internal/handler/http/pathutil"
	"gamepulse/internal/handler/http/respond"
	artUC "gamepulse/internal/usecase/article"
)

type GetHandler struct{ Svc artUC.Service }

// ServeHTTP returns a single article by its path ID.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	article, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, artUC.ErrInvalidArticleID) {
			code = http.StatusBadRequest
		} else if errors.Is(err, artUC.ErrArticleNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(article))
}
