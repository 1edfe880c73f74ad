package article

import (
	"errors"
	"net/http"

	"gamepulse/internal/handler/http/respond"
	artUC "gamepulse/internal/usecase/article"
)

type SearchHandler struct{ Svc artUC.Service }

// ServeHTTP searches articles by substring across title, summary and
// content. The q query parameter is required and must not be blank.
func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("q query param required"))
		return
	}

	list, err := h.Svc.Search(r.Context(), q)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, artUC.ErrEmptyQuery) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTOs(list))
}
