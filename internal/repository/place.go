package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/foodfairhq/fairtrack/internal/models"
)

// PostgresPlaceRepository implements place persistence against a PostgreSQL database.
type PostgresPlaceRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresPlaceRepository creates a new PostgresPlaceRepository using the provided *sql.DB.
func NewPostgresPlaceRepository(db *sql.DB) *PostgresPlaceRepository {
	return &PostgresPlaceRepository{DB: db}
}

// InsertPlace stores a single place. The places.name UNIQUE constraint
// rejects duplicates atomically; the raw pq error is returned so the
// caller can recognize a unique violation.
func (r *PostgresPlaceRepository) InsertPlace(ctx context.Context, place models.Place) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO places (id, name, created_at)
		VALUES ($1, $2, $3)
	`, place.ID, place.Name, place.CreatedAt)
	return err
}

// ListPlaces returns all places in non-decreasing name order.
func (r *PostgresPlaceRepository) ListPlaces(ctx context.Context) ([]models.Place, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name, created_at FROM places ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("ListPlaces: %w", err)
	}
	defer rows.Close()

	places := make([]models.Place, 0)
	for rows.Next() {
		var p models.Place
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		places = append(places, p)
	}
	return places, rows.Err()
}
