// Package customers serves the read-only customer views.
package customers

import (
	"context"

	"invoice-dashboard-backend/internal/format"
	"invoice-dashboard-backend/internal/models"

	"go.uber.org/zap"
)

type Repository interface {
	All(ctx context.Context) ([]models.CustomerField, error)
	FilteredWithTotals(ctx context.Context, query string) ([]models.CustomerTableRow, error)
}

type Service struct {
	repo Repository
	log  *zap.Logger
}

func NewService(repo Repository, log *zap.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// All lists every customer's id and name for selection lists.
func (s *Service) All(ctx context.Context) ([]models.CustomerField, error) {
	return s.repo.All(ctx)
}

// Filtered returns matching customers with their invoice aggregates,
// pending and paid totals formatted for display.
func (s *Service) Filtered(ctx context.Context, query string) ([]models.CustomerSummary, error) {
	rows, err := s.repo.FilteredWithTotals(ctx, query)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.CustomerSummary, len(rows))
	for i, row := range rows {
		summaries[i] = models.CustomerSummary{
			ID:            row.ID,
			Name:          row.Name,
			Email:         row.Email,
			ImageURL:      row.ImageURL,
			TotalInvoices: row.TotalInvoices,
			TotalPending:  format.Currency(row.TotalPending),
			TotalPaid:     format.Currency(row.TotalPaid),
		}
	}
	return summaries, nil
}
