package article

import (
	"log/slog"
	"net/http"
	"time"

	"gamepulse/internal/handler/http/requestid"
	"gamepulse/internal/handler/http/respond"
	"gamepulse/internal/observability/logging"
	artUC "gamepulse/internal/usecase/article"
)

type ListHandler struct {
	Svc    artUC.Service
	Logger *slog.Logger
}

// ServeHTTP lists articles newest first. Supports optional ?category=
// (case-insensitive, "all" matches everything) and ?limit= query params.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()

	reqID := requestid.FromContext(ctx)
	logger := logging.WithRequestID(ctx, h.Logger)

	opts, err := parseListOptions(r)
	if err != nil {
		logger.Warn("invalid list parameters",
			"error", err.Error(),
			"request_id", reqID)
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	list, err := h.Svc.List(ctx, opts)
	if err != nil {
		logger.Error("failed to list articles",
			"error", err.Error(),
			"category", opts.Category,
			"limit", opts.Limit,
			"request_id", reqID)
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	logger.Info("article list served",
		"category", opts.Category,
		"limit", opts.Limit,
		"returned_count", len(list),
		"duration_ms", time.Since(startTime).Milliseconds(),
		"request_id", reqID)

	respond.JSON(w, http.StatusOK, toDTOs(list))
}
