// Package dashboard serves the overview page: revenue chart rows, the
// latest invoices and the four summary cards.
package dashboard

import (
	"context"

	"invoice-dashboard-backend/internal/format"
	"invoice-dashboard-backend/internal/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const latestInvoiceLimit = 5

type InvoiceReader interface {
	Latest(ctx context.Context, limit int) ([]models.LatestInvoiceRow, error)
	Count(ctx context.Context) (int64, error)
	StatusTotals(ctx context.Context) (models.StatusTotals, error)
}

type CustomerCounter interface {
	Count(ctx context.Context) (int64, error)
}

type RevenueReader interface {
	All(ctx context.Context) ([]models.Revenue, error)
}

type Service struct {
	invoices  InvoiceReader
	customers CustomerCounter
	revenue   RevenueReader
	log       *zap.Logger
}

func NewService(invoices InvoiceReader, customers CustomerCounter, revenue RevenueReader, log *zap.Logger) *Service {
	return &Service{invoices: invoices, customers: customers, revenue: revenue, log: log}
}

// Revenue returns the precomputed revenue rows. Failures surface to the
// caller instead of being swallowed.
func (s *Service) Revenue(ctx context.Context) ([]models.Revenue, error) {
	return s.revenue.All(ctx)
}

// LatestInvoices returns the five most recent invoices with the amount
// already formatted for display.
func (s *Service) LatestInvoices(ctx context.Context) ([]models.LatestInvoice, error) {
	rows, err := s.invoices.Latest(ctx, latestInvoiceLimit)
	if err != nil {
		return nil, err
	}

	latest := make([]models.LatestInvoice, len(rows))
	for i, row := range rows {
		latest[i] = models.LatestInvoice{
			ID:       row.ID,
			Name:     row.Name,
			ImageURL: row.ImageURL,
			Email:    row.Email,
			Amount:   format.Currency(row.Amount),
		}
	}
	return latest, nil
}

// CardData computes the four summary figures. The three underlying
// queries run concurrently and the first failure cancels the rest.
func (s *Service) CardData(ctx context.Context) (models.CardData, error) {
	var (
		invoiceCount  int64
		customerCount int64
		totals        models.StatusTotals
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		invoiceCount, err = s.invoices.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		customerCount, err = s.customers.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		totals, err = s.invoices.StatusTotals(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.CardData{}, err
	}

	return models.CardData{
		NumberOfInvoices:     invoiceCount,
		NumberOfCustomers:    customerCount,
		TotalPaidInvoices:    format.Currency(totals.Paid),
		TotalPendingInvoices: format.Currency(totals.Pending),
	}, nil
}
