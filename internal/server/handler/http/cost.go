package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/foodfairhq/fairtrack/internal/models"
	"github.com/foodfairhq/fairtrack/internal/service"
)

// CostService defines the interface for cost operations required by the
// HTTP handlers.
type CostService interface {
	// Create records a cost.
	Create(ctx context.Context, in service.CostInput) (models.InsertResult, error)
	// List retrieves costs matching the filter, newest first.
	List(ctx context.Context, f models.ListFilter) ([]models.Cost, error)
}

// CostHandler handles HTTP requests for the cost collection.
type CostHandler struct {
	// CostService performs the underlying cost operations.
	CostService CostService
}

// CreateCostRequest represents the JSON payload for recording a cost.
// Amount accepts a JSON number or a numeric string; Date is a
// YYYY-MM-DD or RFC 3339 string. Type is free-form (see models.CostType
// for the documented convention).
type CreateCostRequest struct {
	Place  string `json:"place"`
	Type   string `json:"type"`
	Amount any    `json:"amount"`
	Date   string `json:"date"`
}

// Create handles POST /api/costs requests.
// Non-numeric amounts and unparsable dates are rejected with 400
// instead of being stored as invalid values.
func (h *CostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "amount must be numeric")
		return
	}

	date, err := parseCostDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.CostService.Create(r.Context(), service.CostInput{
		Place:  req.Place,
		Type:   req.Type,
		Amount: amount,
		Date:   date,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// List handles GET /api/costs requests, with the same query semantics
// as the sales list.
func (h *CostHandler) List(w http.ResponseWriter, r *http.Request) {
	f, err := parseListFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	costs, err := h.CostService.List(r.Context(), f)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, costs)
}

// parseAmount coerces a decoded JSON value to a number. Callers send
// amounts both as numbers and as numeric strings ("100").
func parseAmount(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(n), 64)
	case json.Number:
		return n.Float64()
	default:
		return 0, fmt.Errorf("unsupported amount type %T", v)
	}
}

// parseCostDate parses the caller-supplied date string, accepting the
// plain date form first and full RFC 3339 timestamps as a fallback.
func parseCostDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}
