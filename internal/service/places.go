package service

import (
	"context"
	"errors"
	"time"

	"github.com/foodfairhq/fairtrack/internal/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ErrPlaceExists reports an attempt to create a place whose name is
// already taken.
var ErrPlaceExists = errors.New("place already exists")

// PlaceRepository defines the persistence operations needed by the PlaceService.
type PlaceRepository interface {
	// InsertPlace stores a single place; a duplicate name surfaces as a
	// unique-violation error from the store.
	InsertPlace(ctx context.Context, place models.Place) error
	// ListPlaces retrieves all places in non-decreasing name order.
	ListPlaces(ctx context.Context) ([]models.Place, error)
}

// PlaceService manages vendor locations.
type PlaceService struct {
	// repo is the underlying persistence repository.
	repo PlaceRepository
	// now supplies the server clock, injectable for tests.
	now func() time.Time
}

// NewPlaceService constructs a PlaceService with the provided repository.
func NewPlaceService(repo PlaceRepository) *PlaceService {
	return &PlaceService{repo: repo, now: time.Now}
}

// Create stamps the place with a server-generated id and creation time
// and stores it. The insert relies on the store's UNIQUE constraint, so
// two concurrent creates with the same name cannot both succeed; the
// loser gets ErrPlaceExists.
func (s *PlaceService) Create(ctx context.Context, name string) (models.InsertResult, error) {
	place := models.Place{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.InsertPlace(ctx, place); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return models.InsertResult{}, ErrPlaceExists
		}
		return models.InsertResult{}, err
	}
	return models.InsertResult{Acknowledged: true, InsertedID: place.ID}, nil
}

// List returns all places sorted by name ascending.
func (s *PlaceService) List(ctx context.Context) ([]models.Place, error) {
	return s.repo.ListPlaces(ctx)
}
