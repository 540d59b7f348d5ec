package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"partnerplan/internal/planning"
	"partnerplan/internal/planning/wire"
	"partnerplan/pkg/platform/httputil"
)

// Planner is the part of the planning service the handler needs.
type Planner interface {
	Plan(ctx context.Context, partners []planning.Partner) planning.ResultSet
}

// Handler exposes the planner over HTTP.
type Handler struct {
	planner Planner
	logger  *slog.Logger
}

func New(planner Planner, logger *slog.Logger) *Handler {
	return &Handler{planner: planner, logger: logger}
}

// Register mounts planning endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/v1/plans", h.HandlePlan)
}

// HandlePlan handles POST /v1/plans. The body is a dataset document and the
// response is the result document the result API expects.
func (h *Handler) HandlePlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetReqID(ctx)
	start := time.Now()

	doc, err := httputil.DecodeJSON[wire.PartnersDocument](w, r)
	if err != nil {
		h.logger.WarnContext(ctx, "rejected plan request",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	partners := doc.ToPartners()
	results := h.planner.Plan(ctx, partners)

	h.logger.InfoContext(ctx, "plan computed",
		"request_id", requestID,
		"partners", len(partners),
		"countries", len(results),
		"scheduled", results.Scheduled(),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, wire.FromResults(results))
}
