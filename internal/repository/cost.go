package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/foodfairhq/fairtrack/internal/models"
)

// PostgresCostRepository implements cost persistence against a PostgreSQL database.
type PostgresCostRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresCostRepository creates a new PostgresCostRepository using the provided *sql.DB.
func NewPostgresCostRepository(db *sql.DB) *PostgresCostRepository {
	return &PostgresCostRepository{DB: db}
}

// InsertCost stores a single cost record.
func (r *PostgresCostRepository) InsertCost(ctx context.Context, cost models.Cost) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO costs (id, place, type, amount, date)
		VALUES ($1, $2, $3, $4, $5)
	`, cost.ID, cost.Place, cost.Type, cost.Amount, cost.Date)
	if err != nil {
		return fmt.Errorf("insert cost: %w", err)
	}
	return nil
}

// ListCosts returns costs matching the filter, newest first.
func (r *PostgresCostRepository) ListCosts(ctx context.Context, f models.ListFilter) ([]models.Cost, error) {
	query, args := applyFilter(`SELECT id, place, type, amount, date FROM costs`, f)
	query += ` ORDER BY date DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListCosts: %w", err)
	}
	defer rows.Close()

	costs := make([]models.Cost, 0)
	for rows.Next() {
		var c models.Cost
		if err := rows.Scan(&c.ID, &c.Place, &c.Type, &c.Amount, &c.Date); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		costs = append(costs, c)
	}
	return costs, rows.Err()
}
