package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/foodfairhq/fairtrack/internal/models"
	"github.com/foodfairhq/fairtrack/internal/service"
)

// PlaceService defines the interface for place operations required by
// the HTTP handlers.
type PlaceService interface {
	// Create stores a new place; a taken name yields service.ErrPlaceExists.
	Create(ctx context.Context, name string) (models.InsertResult, error)
	// List retrieves all places in non-decreasing name order.
	List(ctx context.Context) ([]models.Place, error)
}

// PlaceHandler handles HTTP requests for the place collection.
type PlaceHandler struct {
	// PlaceService performs the underlying place operations.
	PlaceService PlaceService
}

// CreatePlaceRequest represents the JSON payload for creating a place.
type CreatePlaceRequest struct {
	// Name is the unique display name of the place.
	Name string `json:"name"`
}

// Create handles POST /api/places requests.
// It expects a JSON body with a non-empty "name" field. A duplicate
// name fails with 409 and does not insert.
func (h *PlaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePlaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name required")
		return
	}

	result, err := h.PlaceService.Create(r.Context(), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrPlaceExists) {
			writeError(w, http.StatusConflict, "place already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success":    true,
		"insertedId": result.InsertedID,
	})
}

// List handles GET /api/places requests, returning all places sorted by
// name ascending.
func (h *PlaceHandler) List(w http.ResponseWriter, r *http.Request) {
	places, err := h.PlaceService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, places)
}
