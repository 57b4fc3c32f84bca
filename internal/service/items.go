// Package service provides business-logic services for the food-fair
// tracker, delegating persistence to repository interfaces.
package service

import (
	"context"
	"time"

	"github.com/foodfairhq/fairtrack/internal/models"
	"github.com/google/uuid"
)

// ItemRepository defines the persistence operations needed by the ItemService.
type ItemRepository interface {
	// InsertItem stores the item verbatim with the given creation time.
	InsertItem(ctx context.Context, item models.Item, createdAt time.Time) error
	// ListItems retrieves every stored item.
	ListItems(ctx context.Context) ([]models.Item, error)
}

// ItemService stores and lists schemaless item documents.
type ItemService struct {
	// repo is the underlying persistence repository.
	repo ItemRepository
}

// NewItemService constructs an ItemService with the provided repository.
func NewItemService(repo ItemRepository) *ItemService {
	return &ItemService{repo: repo}
}

// Create stores the caller-supplied object as submitted, under a
// server-generated id, and returns the insert acknowledgement.
func (s *ItemService) Create(ctx context.Context, fields map[string]any) (models.InsertResult, error) {
	item := models.Item{
		ID:     uuid.NewString(),
		Fields: fields,
	}
	if err := s.repo.InsertItem(ctx, item, time.Now().UTC()); err != nil {
		return models.InsertResult{}, err
	}
	return models.InsertResult{Acknowledged: true, InsertedID: item.ID}, nil
}

// List returns every item, no filter, no pagination.
func (s *ItemService) List(ctx context.Context) ([]models.Item, error) {
	return s.repo.ListItems(ctx)
}
