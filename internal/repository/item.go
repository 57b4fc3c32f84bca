package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/foodfairhq/fairtrack/internal/models"
)

// PostgresItemRepository stores schemaless item documents as jsonb.
type PostgresItemRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresItemRepository creates a new PostgresItemRepository with the
// given database connection.
func NewPostgresItemRepository(db *sql.DB) *PostgresItemRepository {
	return &PostgresItemRepository{DB: db}
}

// InsertItem stores the caller-supplied object verbatim under the given id.
func (r *PostgresItemRepository) InsertItem(ctx context.Context, item models.Item, createdAt time.Time) error {
	data, err := json.Marshal(item.Fields)
	if err != nil {
		return fmt.Errorf("marshal item: %w", err)
	}
	_, err = r.DB.ExecContext(
		ctx,
		`INSERT INTO items (id, data, created_at) VALUES ($1, $2, $3)`,
		item.ID, data, createdAt,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// ListItems returns every item, unfiltered and unsorted.
func (r *PostgresItemRepository) ListItems(ctx context.Context) ([]models.Item, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, data FROM items`)
	if err != nil {
		return nil, fmt.Errorf("ListItems: %w", err)
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		var item models.Item
		var data []byte
		if err := rows.Scan(&item.ID, &data); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		if err := json.Unmarshal(data, &item.Fields); err != nil {
			return nil, fmt.Errorf("unmarshal item %s: %w", item.ID, err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
