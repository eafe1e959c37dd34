package repository

import (
	"context"
	"errors"

	"invoice-dashboard-backend/internal/apperr"
	"invoice-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PageSize is the fixed listing page size; the page argument is 1-indexed.
const PageSize = 6

// invoiceSearchPredicate matches the listing filter: any of the joined
// display columns contains the query, case-insensitively. Every value
// is bound, never interpolated.
const invoiceSearchPredicate = `
	customers.name ILIKE ? OR
	customers.email ILIKE ? OR
	invoices.amount::text ILIKE ? OR
	invoices.date::text ILIKE ? OR
	invoices.status ILIKE ?`

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Latest returns the most recent invoices joined with customer display
// fields, newest first.
func (r *InvoiceRepository) Latest(ctx context.Context, limit int) ([]models.LatestInvoiceRow, error) {
	var rows []models.LatestInvoiceRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT invoices.id, invoices.amount, customers.name, customers.image_url, customers.email
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		ORDER BY invoices.date DESC
		LIMIT ?`, limit).Scan(&rows).Error
	if err != nil {
		return nil, apperr.Storage("fetch latest invoices", err)
	}
	return rows, nil
}

// FilteredPage returns one page of invoices matching the search query,
// ordered by date descending. Pages below 1 are clamped to the first.
func (r *InvoiceRepository) FilteredPage(ctx context.Context, query string, page int) ([]models.InvoiceTableRow, error) {
	if page < 1 {
		page = 1
	}
	like := "%" + query + "%"
	offset := (page - 1) * PageSize

	var rows []models.InvoiceTableRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT invoices.id, invoices.amount, invoices.date, invoices.status,
		       customers.name, customers.email, customers.image_url
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE `+invoiceSearchPredicate+`
		ORDER BY invoices.date DESC
		LIMIT ? OFFSET ?`, like, like, like, like, like, PageSize, offset).Scan(&rows).Error
	if err != nil {
		return nil, apperr.Storage("fetch filtered invoices", err)
	}
	return rows, nil
}

// CountFiltered returns the number of invoices matching the same
// predicate as FilteredPage.
func (r *InvoiceRepository) CountFiltered(ctx context.Context, query string) (int64, error) {
	like := "%" + query + "%"

	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE `+invoiceSearchPredicate, like, like, like, like, like).Scan(&count).Error
	if err != nil {
		return 0, apperr.Storage("count filtered invoices", err)
	}
	return count, nil
}

// GetByID fetches a single invoice. A missing row is apperr.ErrNotFound,
// distinct from any other storage failure.
func (r *InvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Storage("fetch invoice by id", err)
	}
	return &invoice, nil
}

func (r *InvoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(invoice).Error
	})
	return apperr.Storage("create invoice", err)
}

// Update rewrites the mutable fields of an existing invoice.
func (r *InvoiceRepository) Update(ctx context.Context, id uuid.UUID, customerID uuid.UUID, amount int64, status string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Invoice{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"customer_id": customerID,
				"amount":      amount,
				"status":      status,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperr.ErrNotFound
		}
		return nil
	})
	return apperr.Storage("update invoice", err)
}

// Delete removes an invoice by id; deleting a missing id reports
// not-found rather than succeeding silently.
func (r *InvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Invoice{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperr.ErrNotFound
		}
		return nil
	})
	return apperr.Storage("delete invoice", err)
}

func (r *InvoiceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Invoice{}).Count(&count).Error; err != nil {
		return 0, apperr.Storage("count invoices", err)
	}
	return count, nil
}

// StatusTotals sums invoice amounts by status in one grouped query;
// an empty table reads as zero totals.
func (r *InvoiceRepository) StatusTotals(ctx context.Context) (models.StatusTotals, error) {
	var totals models.StatusTotals
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0) AS paid,
			COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0) AS pending
		FROM invoices`).Scan(&totals).Error
	if err != nil {
		return models.StatusTotals{}, apperr.Storage("sum invoice amounts", err)
	}
	return totals, nil
}
