// Package model contains the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminModel mirrors the 'administrators' table. PostgreSQL generates UUIDs
// via uuid_generate_v4(). The unique index on email is the true linearization
// point for concurrent registrations; the service-level existence check is
// only an optimization.
type AdminModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	FullName     string    `gorm:"type:varchar(100)"`
	Username     string    `gorm:"type:varchar(100)"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminModel) TableName() string {
	return "administrators"
}
