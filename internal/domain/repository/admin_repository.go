// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"warden/internal/domain/entity"
)

// ErrAdminNotFound is a domain-specific error returned when no administrator
// matches the lookup. The application layer handles it without depending on
// database-specific errors.
var ErrAdminNotFound = errors.New("administrator not found")

// AdminRepository defines the standard operations for administrator persistence.
// The application layer depends on this interface, not the concrete implementation.
type AdminRepository interface {
	// FindByEmail retrieves a single administrator by their email address.
	// Returns ErrAdminNotFound when no record exists.
	FindByEmail(ctx context.Context, email string) (*entity.Administrator, error)

	// Create persists a new administrator. The email column carries a unique
	// constraint; a violation surfaces as the conflict AppError so concurrent
	// registrations for the same email cannot both succeed.
	Create(ctx context.Context, admin *entity.Administrator) error
}
