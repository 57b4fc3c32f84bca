package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/foodfairhq/fairtrack/internal/models"
)

// PostgresSaleRepository implements sale persistence against a PostgreSQL database.
type PostgresSaleRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresSaleRepository creates a new PostgresSaleRepository using the provided *sql.DB.
func NewPostgresSaleRepository(db *sql.DB) *PostgresSaleRepository {
	return &PostgresSaleRepository{DB: db}
}

// InsertSale stores a single sale record.
func (r *PostgresSaleRepository) InsertSale(ctx context.Context, sale models.Sale) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO sales (id, food_id, food_name, place, quantity, unit_price, total, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, sale.ID, sale.FoodID, sale.FoodName, sale.Place, sale.Quantity, sale.UnitPrice, sale.Total, sale.Date)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// ListSales returns sales matching the filter, newest first.
//
//	ctx: context for cancellation and deadlines
//	f:   optional place and date-range filter
func (r *PostgresSaleRepository) ListSales(ctx context.Context, f models.ListFilter) ([]models.Sale, error) {
	query, args := applyFilter(`SELECT id, food_id, food_name, place, quantity, unit_price, total, date FROM sales`, f)
	query += ` ORDER BY date DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListSales: %w", err)
	}
	defer rows.Close()

	sales := make([]models.Sale, 0)
	for rows.Next() {
		var s models.Sale
		if err := rows.Scan(&s.ID, &s.FoodID, &s.FoodName, &s.Place, &s.Quantity, &s.UnitPrice, &s.Total, &s.Date); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}
