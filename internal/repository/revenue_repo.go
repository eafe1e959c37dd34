package repository

import (
	"context"

	"invoice-dashboard-backend/internal/apperr"
	"invoice-dashboard-backend/internal/models"

	"gorm.io/gorm"
)

type RevenueRepository struct {
	db *gorm.DB
}

func NewRevenueRepository(db *gorm.DB) *RevenueRepository {
	return &RevenueRepository{db: db}
}

// All returns the precomputed revenue rows in storage order.
func (r *RevenueRepository) All(ctx context.Context) ([]models.Revenue, error) {
	var rows []models.Revenue
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, apperr.Storage("fetch revenue", err)
	}
	return rows, nil
}
