package article

import (
	"errors"
	"net/http"
	"strconv"

	"gamepulse/internal/repository"
)

// parseListOptions reads the optional category and limit query parameters.
// An absent limit means no truncation; an absent category means all.
func parseListOptions(r *http.Request) (repository.ListOptions, error) {
	opts := repository.ListOptions{Category: r.URL.Query().Get("category")}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			return opts, errors.New("invalid limit: must be a non-negative integer")
		}
		opts.Limit = limit
	}
	return opts, nil
}
