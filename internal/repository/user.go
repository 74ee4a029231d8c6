package repository

import (
	"errors"

	"trainit-backend/internal/database/models"
	apperrors "trainit-backend/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Omit(clause.Associations).Create(user).Error
}

// CreateWithOrganization creates the user inside the organization named organizationName,
// creating that organization first if it does not exist yet. Both writes share one transaction.
func (r *UserRepository) CreateWithOrganization(user *models.User, organizationName string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		org, err := findOrCreateOrganization(tx, organizationName)
		if err != nil {
			return err
		}

		user.OrganizationID = org.ID
		if err := tx.Omit(clause.Associations).Create(user).Error; err != nil {
			return err
		}
		user.Organization = org
		return nil
	})
}

// findOrCreateOrganization inserts the organization unless the name is taken, then loads it.
// A concurrent signup that inserts the same name first is joined instead of failing on the unique index.
func findOrCreateOrganization(tx *gorm.DB, name string) (*models.Organization, error) {
	var org models.Organization
	err := tx.Where("name = ?", name).First(&org).Error
	if err == nil {
		return &org, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	org = models.Organization{Name: name}
	result := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&org)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 1 {
		return &org, nil
	}

	var existing models.Organization
	if err := tx.Where("name = ?", name).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationExists
		}
		return nil, err
	}
	return &existing, nil
}

// GetByID retrieves a user by ID with its organization
func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Organization").First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email with its organization
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Organization").First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetOrganizationID returns the organization the user currently belongs to
func (r *UserRepository) GetOrganizationID(id uint) (uint, error) {
	var user models.User
	err := r.db.Select("id", "organization_id").First(&user, "id = ?", id).Error
	if err != nil {
		return 0, err
	}
	return user.OrganizationID, nil
}
