package review

import (
	"errors"
	"net/http"
	"strconv"

	"gamepulse/internal/handler/http/respond"
	"gamepulse/internal/repository"
	revUC "gamepulse/internal/usecase/review"
)

type ListHandler struct{ Svc revUC.Service }

// ServeHTTP lists reviews newest first with the same optional category
// and limit query parameters as the article listing.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	opts := repository.ListOptions{Category: r.URL.Query().Get("category")}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			respond.SafeError(w, http.StatusBadRequest,
				errors.New("invalid limit: must be a non-negative integer"))
			return
		}
		opts.Limit = limit
	}

	list, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTOs(list))
}
