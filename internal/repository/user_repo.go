package repository

import (
	"context"
	"errors"

	"invoice-dashboard-backend/internal/apperr"
	"invoice-dashboard-backend/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByEmail looks up a user for authentication. The email is always a
// bound parameter so hostile input cannot alter the query.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Storage("fetch user by email", err)
	}
	return &user, nil
}
