// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RoleAdmin is the role claim embedded in access tokens issued to administrators.
const RoleAdmin = "admin"

// Administrator is the sole account entity in the system. It represents the
// person who may register and log in through the admin endpoints.
type Administrator struct {
	ID           uuid.UUID // The unique identifier for the administrator, assigned at creation.
	FullName     string    // The administrator's display name. Optional at registration.
	Username     string    // A free-text handle. Optional at registration, not uniqueness-constrained.
	Email        string    // The login identifier. Trimmed, lowercased, globally unique.
	PasswordHash string    // The bcrypt hash of the password. The plaintext is never stored.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
