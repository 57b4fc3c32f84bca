// Package repository provides PostgreSQL persistence for items, sales,
// costs and places.
package repository

import (
	"fmt"
	"strings"

	"github.com/foodfairhq/fairtrack/internal/models"
)

// applyFilter appends WHERE conditions for the optional place and
// date-range filter to query and returns it with the matching args.
// Sales and costs share the column names, so one builder serves both.
func applyFilter(query string, f models.ListFilter) (string, []any) {
	var conds []string
	var args []any

	if f.Place != "" {
		args = append(args, f.Place)
		conds = append(conds, fmt.Sprintf("place = $%d", len(args)))
	}
	if f.ByDate {
		args = append(args, f.From)
		conds = append(conds, fmt.Sprintf("date >= $%d", len(args)))
		args = append(args, f.To)
		conds = append(conds, fmt.Sprintf("date < $%d", len(args)))
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	return query, args
}
