package models

import "github.com/google/uuid"

// User holds login credentials. Password is a bcrypt hash and never
// leaves the service.
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string    `json:"name"`
	Email    string    `gorm:"uniqueIndex" json:"email"`
	Password string    `json:"-"`
}
