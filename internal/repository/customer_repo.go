package repository

import (
	"context"

	"invoice-dashboard-backend/internal/apperr"
	"invoice-dashboard-backend/internal/models"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// All returns every customer's id and name for selection lists,
// ordered by name.
func (r *CustomerRepository) All(ctx context.Context) ([]models.CustomerField, error) {
	var fields []models.CustomerField
	err := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Select("id, name").
		Order("name ASC").
		Scan(&fields).Error
	if err != nil {
		return nil, apperr.Storage("fetch customers", err)
	}
	return fields, nil
}

func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Customer{}).Count(&count).Error; err != nil {
		return 0, apperr.Storage("count customers", err)
	}
	return count, nil
}

// FilteredWithTotals returns customers whose name or email contains the
// query, annotated with invoice counts and pending/paid sums in cents.
func (r *CustomerRepository) FilteredWithTotals(ctx context.Context, query string) ([]models.CustomerTableRow, error) {
	like := "%" + query + "%"

	var rows []models.CustomerTableRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			customers.id,
			customers.name,
			customers.email,
			customers.image_url,
			COUNT(invoices.id) AS total_invoices,
			COALESCE(SUM(CASE WHEN invoices.status = 'pending' THEN invoices.amount ELSE 0 END), 0) AS total_pending,
			COALESCE(SUM(CASE WHEN invoices.status = 'paid' THEN invoices.amount ELSE 0 END), 0) AS total_paid
		FROM customers
		LEFT JOIN invoices ON customers.id = invoices.customer_id
		WHERE customers.name ILIKE ? OR customers.email ILIKE ?
		GROUP BY customers.id, customers.name, customers.email, customers.image_url
		ORDER BY customers.name ASC`, like, like).Scan(&rows).Error
	if err != nil {
		return nil, apperr.Storage("fetch filtered customers", err)
	}
	return rows, nil
}
