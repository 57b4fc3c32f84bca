package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/foodfairhq/fairtrack/internal/models"
)

// ItemService defines the interface for item operations required by the
// HTTP handlers.
type ItemService interface {
	// Create stores the caller-supplied object and returns the insert
	// acknowledgement.
	Create(ctx context.Context, fields map[string]any) (models.InsertResult, error)
	// List retrieves every stored item.
	List(ctx context.Context) ([]models.Item, error)
}

// ItemHandler handles HTTP requests for the item collection.
type ItemHandler struct {
	// ItemService performs the underlying item operations.
	ItemService ItemService
}

// Create handles POST /api/items requests.
// The body is an arbitrary JSON object, stored as submitted.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.ItemService.Create(r.Context(), fields)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// List handles GET /api/items requests.
// Every item is returned; no filter, no pagination, no sort.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.ItemService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, items)
}
