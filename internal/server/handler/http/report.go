package http

import (
	"context"
	"net/http"

	"github.com/foodfairhq/fairtrack/internal/models"
)

// ReportService defines the interface for report building required by
// the HTTP handlers.
type ReportService interface {
	// Build aggregates sales and costs over the filter and derives profit.
	Build(ctx context.Context, f models.ListFilter) (models.Report, error)
}

// ReportHandler handles HTTP requests for the profit report.
type ReportHandler struct {
	// ReportService computes the aggregates.
	ReportService ReportService
}

// Get handles GET /api/report requests.
// Optional place/from/to query parameters use the same filter semantics
// as the sale and cost lists; both totals are computed over the same
// match and profit is their difference.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	f, err := parseListFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := h.ReportService.Build(r.Context(), f)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, report)
}
