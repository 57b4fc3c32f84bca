package service

import (
	"context"

	"github.com/foodfairhq/fairtrack/internal/models"
)

// ReportRepository defines the aggregate queries needed by the ReportService.
type ReportRepository interface {
	// TotalSales sums sale totals over the matching rows, 0 on empty match.
	TotalSales(ctx context.Context, f models.ListFilter) (float64, error)
	// TotalCost sums cost amounts over the matching rows, 0 on empty match.
	TotalCost(ctx context.Context, f models.ListFilter) (float64, error)
}

// ReportService builds profit reports from store-side aggregates.
type ReportService struct {
	// repo is the underlying persistence repository.
	repo ReportRepository
}

// NewReportService constructs a ReportService with the provided repository.
func NewReportService(repo ReportRepository) *ReportService {
	return &ReportService{repo: repo}
}

// Build computes total sales and total cost over the same filter,
// each aggregated independently in the store, and derives profit.
func (s *ReportService) Build(ctx context.Context, f models.ListFilter) (models.Report, error) {
	totalSales, err := s.repo.TotalSales(ctx, f)
	if err != nil {
		return models.Report{}, err
	}
	totalCost, err := s.repo.TotalCost(ctx, f)
	if err != nil {
		return models.Report{}, err
	}
	return models.Report{
		TotalSales: totalSales,
		TotalCost:  totalCost,
		Profit:     totalSales - totalCost,
	}, nil
}
