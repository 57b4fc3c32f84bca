package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/foodfairhq/fairtrack/internal/models"
	"github.com/foodfairhq/fairtrack/internal/service"
)

// SaleService defines the interface for sale operations required by the
// HTTP handlers.
type SaleService interface {
	// Create records a sale with a server-assigned date.
	Create(ctx context.Context, in service.SaleInput) (models.InsertResult, error)
	// List retrieves sales matching the filter, newest first.
	List(ctx context.Context, f models.ListFilter) ([]models.Sale, error)
}

// SaleHandler handles HTTP requests for the sale collection.
type SaleHandler struct {
	// SaleService performs the underlying sale operations.
	SaleService SaleService
}

// CreateSaleRequest represents the JSON payload for recording a sale.
// Exactly these six fields are taken from the body; anything else is
// discarded, and the record date is stamped server-side.
type CreateSaleRequest struct {
	FoodID    string  `json:"foodId"`
	FoodName  string  `json:"foodName"`
	Place     string  `json:"place"`
	Quantity  int64   `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Total     float64 `json:"total"`
}

// Create handles POST /api/sales requests.
// Fields that fail to decode as their declared types are rejected with
// 400 rather than silently coerced.
func (h *SaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.SaleService.Create(r.Context(), service.SaleInput{
		FoodID:    req.FoodID,
		FoodName:  req.FoodName,
		Place:     req.Place,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
		Total:     req.Total,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// List handles GET /api/sales requests.
// Optional place equality filter; optional from/to range applied only
// when both are present. Results are newest first, unpaginated.
func (h *SaleHandler) List(w http.ResponseWriter, r *http.Request) {
	f, err := parseListFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sales, err := h.SaleService.List(r.Context(), f)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, sales)
}
