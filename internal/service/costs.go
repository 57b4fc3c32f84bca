package service

import (
	"context"
	"time"

	"github.com/foodfairhq/fairtrack/internal/models"
	"github.com/google/uuid"
)

// CostRepository defines the persistence operations needed by the CostService.
type CostRepository interface {
	// InsertCost stores a single cost record.
	InsertCost(ctx context.Context, cost models.Cost) error
	// ListCosts retrieves costs matching the filter, newest first.
	ListCosts(ctx context.Context, f models.ListFilter) ([]models.Cost, error)
}

// CostInput carries the caller-supplied cost fields, already normalized
// by the transport layer (numeric amount, parsed date).
type CostInput struct {
	Place  string
	Type   string
	Amount float64
	Date   time.Time
}

// CostService records and lists costs.
type CostService struct {
	// repo is the underlying persistence repository.
	repo CostRepository
}

// NewCostService constructs a CostService with the provided repository.
func NewCostService(repo CostRepository) *CostService {
	return &CostService{repo: repo}
}

// Create stores the cost under a server-generated id and returns the
// insert acknowledgement.
func (s *CostService) Create(ctx context.Context, in CostInput) (models.InsertResult, error) {
	cost := models.Cost{
		ID:     uuid.NewString(),
		Place:  in.Place,
		Type:   in.Type,
		Amount: in.Amount,
		Date:   in.Date,
	}
	if err := s.repo.InsertCost(ctx, cost); err != nil {
		return models.InsertResult{}, err
	}
	return models.InsertResult{Acknowledged: true, InsertedID: cost.ID}, nil
}

// List returns costs matching the filter, newest first.
func (s *CostService) List(ctx context.Context, f models.ListFilter) ([]models.Cost, error) {
	return s.repo.ListCosts(ctx, f)
}
