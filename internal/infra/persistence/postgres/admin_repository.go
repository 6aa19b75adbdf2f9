// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/domain/repository"
	"warden/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// adminRepository implements the repository.AdminRepository interface using GORM.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
// It returns the repository as a repository.AdminRepository interface, adhering to dependency inversion.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

// FindByEmail retrieves a single administrator by their email address.
func (repo *adminRepository) FindByEmail(ctx context.Context, email string) (*entity.Administrator, error) {
	var adminM model.AdminModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&adminM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find administrator by email")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toAdminDomain(&adminM), nil
}

// Create persists a new administrator entity. The entity's PasswordHash must
// already be set; this layer never sees plaintext passwords.
func (repo *adminRepository) Create(ctx context.Context, admin *entity.Administrator) error {
	adminM := fromAdminDomain(admin)

	if err := repo.db.WithContext(ctx).Create(adminM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors. The unique index on
		// email is the backstop for two concurrent registrations passing the
		// service-level existence check at the same time.
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAdminAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAdminCreationFailed.WrapMessage("missing required administrator information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create administrator")
	}

	// Update the entity with the generated ID and timestamps
	admin.ID = adminM.ID
	admin.CreatedAt = adminM.CreatedAt
	admin.UpdatedAt = adminM.UpdatedAt

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toAdminDomain converts a GORM AdminModel to a domain Administrator entity.
func toAdminDomain(data *model.AdminModel) *entity.Administrator {
	if data == nil {
		return nil
	}

	return &entity.Administrator{
		ID:           data.ID,
		FullName:     data.FullName,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromAdminDomain converts a domain Administrator entity to a GORM AdminModel for persistence.
func fromAdminDomain(data *entity.Administrator) *model.AdminModel {
	if data == nil {
		return nil
	}

	return &model.AdminModel{
		ID:           data.ID,
		FullName:     data.FullName,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
	}
}
