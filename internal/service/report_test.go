package service

import (
	"context"
	"errors"
	"testing"

	"github.com/foodfairhq/fairtrack/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockReportRepo struct {
	TotalSalesFunc func(ctx context.Context, f models.ListFilter) (float64, error)
	TotalCostFunc  func(ctx context.Context, f models.ListFilter) (float64, error)
}

func (m *mockReportRepo) TotalSales(ctx context.Context, f models.ListFilter) (float64, error) {
	return m.TotalSalesFunc(ctx, f)
}
func (m *mockReportRepo) TotalCost(ctx context.Context, f models.ListFilter) (float64, error) {
	return m.TotalCostFunc(ctx, f)
}

func TestReportBuild(t *testing.T) {
	tests := []struct {
		name       string
		totalSales float64
		totalCost  float64
		want       models.Report
	}{
		{"profit", 500, 180, models.Report{TotalSales: 500, TotalCost: 180, Profit: 320}},
		{"loss", 100, 250.5, models.Report{TotalSales: 100, TotalCost: 250.5, Profit: -150.5}},
		{"empty match is all zeros", 0, 0, models.Report{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockReportRepo{
				TotalSalesFunc: func(ctx context.Context, f models.ListFilter) (float64, error) {
					return tt.totalSales, nil
				},
				TotalCostFunc: func(ctx context.Context, f models.ListFilter) (float64, error) {
					return tt.totalCost, nil
				},
			}
			svc := NewReportService(repo)

			got, err := svc.Build(context.Background(), models.ListFilter{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReportBuild_SameFilterForBothSides(t *testing.T) {
	f := models.ListFilter{Place: "A"}
	var salesFilter, costFilter models.ListFilter

	repo := &mockReportRepo{
		TotalSalesFunc: func(ctx context.Context, got models.ListFilter) (float64, error) {
			salesFilter = got
			return 0, nil
		},
		TotalCostFunc: func(ctx context.Context, got models.ListFilter) (float64, error) {
			costFilter = got
			return 0, nil
		},
	}
	svc := NewReportService(repo)

	_, err := svc.Build(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, f, salesFilter)
	assert.Equal(t, f, costFilter)
}

func TestReportBuild_Errors(t *testing.T) {
	wantErr := errors.New("query failed")

	t.Run("sales side", func(t *testing.T) {
		repo := &mockReportRepo{
			TotalSalesFunc: func(ctx context.Context, f models.ListFilter) (float64, error) {
				return 0, wantErr
			},
		}
		_, err := NewReportService(repo).Build(context.Background(), models.ListFilter{})
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("cost side", func(t *testing.T) {
		repo := &mockReportRepo{
			TotalSalesFunc: func(ctx context.Context, f models.ListFilter) (float64, error) {
				return 100, nil
			},
			TotalCostFunc: func(ctx context.Context, f models.ListFilter) (float64, error) {
				return 0, wantErr
			},
		}
		_, err := NewReportService(repo).Build(context.Background(), models.ListFilter{})
		assert.ErrorIs(t, err, wantErr)
	})
}
