package service

import (
	"context"
	"time"

	"github.com/foodfairhq/fairtrack/internal/models"
	"github.com/google/uuid"
)

// SaleRepository defines the persistence operations needed by the SaleService.
type SaleRepository interface {
	// InsertSale stores a single sale record.
	InsertSale(ctx context.Context, sale models.Sale) error
	// ListSales retrieves sales matching the filter, newest first.
	ListSales(ctx context.Context, f models.ListFilter) ([]models.Sale, error)
}

// SaleInput carries the caller-supplied sale fields. The record date is
// deliberately absent: it is always assigned by the server.
type SaleInput struct {
	FoodID    string
	FoodName  string
	Place     string
	Quantity  int64
	UnitPrice float64
	Total     float64
}

// SaleService records and lists sales.
type SaleService struct {
	// repo is the underlying persistence repository.
	repo SaleRepository
	// now supplies the server clock, injectable for tests.
	now func() time.Time
}

// NewSaleService constructs a SaleService with the provided repository.
func NewSaleService(repo SaleRepository) *SaleService {
	return &SaleService{repo: repo, now: time.Now}
}

// Create stamps the sale with a server-generated id and the current
// server time, stores it, and returns the insert acknowledgement.
func (s *SaleService) Create(ctx context.Context, in SaleInput) (models.InsertResult, error) {
	sale := models.Sale{
		ID:        uuid.NewString(),
		FoodID:    in.FoodID,
		FoodName:  in.FoodName,
		Place:     in.Place,
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
		Total:     in.Total,
		Date:      s.now().UTC(),
	}
	if err := s.repo.InsertSale(ctx, sale); err != nil {
		return models.InsertResult{}, err
	}
	return models.InsertResult{Acknowledged: true, InsertedID: sale.ID}, nil
}

// List returns sales matching the filter, newest first.
func (s *SaleService) List(ctx context.Context, f models.ListFilter) ([]models.Sale, error) {
	return s.repo.ListSales(ctx, f)
}
