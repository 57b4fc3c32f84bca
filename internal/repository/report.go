package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/foodfairhq/fairtrack/internal/models"
)

// PostgresReportRepository computes sale and cost aggregates in the store.
type PostgresReportRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresReportRepository creates a new PostgresReportRepository using the provided *sql.DB.
func NewPostgresReportRepository(db *sql.DB) *PostgresReportRepository {
	return &PostgresReportRepository{DB: db}
}

// TotalSales sums sales.total over the matching rows. An empty match
// yields 0, not NULL.
func (r *PostgresReportRepository) TotalSales(ctx context.Context, f models.ListFilter) (float64, error) {
	query, args := applyFilter(`SELECT COALESCE(SUM(total), 0) FROM sales`, f)

	var total float64
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("TotalSales: %w", err)
	}
	return total, nil
}

// TotalCost sums costs.amount over the matching rows. An empty match
// yields 0, not NULL.
func (r *PostgresReportRepository) TotalCost(ctx context.Context, f models.ListFilter) (float64, error) {
	query, args := applyFilter(`SELECT COALESCE(SUM(amount), 0) FROM costs`, f)

	var total float64
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("TotalCost: %w", err)
	}
	return total, nil
}
