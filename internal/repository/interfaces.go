package repository

import (
	"time"

	"trainit-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uint) (*models.Organization, error)
	GetByName(name string) (*models.Organization, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	CreateWithOrganization(user *models.User, organizationName string) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetOrganizationID(id uint) (uint, error)
}

// AnimalRepositoryInterface defines the interface for animal repository operations
type AnimalRepositoryInterface interface {
	Create(animal *models.Animal) error
	GetByID(id uint) (*models.Animal, error)
	GetByOrganizationID(orgID uint, limit, offset int) ([]models.Animal, error)
	Update(animal *models.Animal) error
	Delete(id uint) error
}

// TrainingPlanRepositoryInterface defines the interface for training plan repository operations
type TrainingPlanRepositoryInterface interface {
	Create(plan *models.TrainingPlan) error
	GetByID(id uint) (*models.TrainingPlan, error)
	GetByAnimalID(animalID uint) ([]models.TrainingPlan, error)
	GetByOrganizationID(orgID uint) ([]models.TrainingPlan, error)
	Update(plan *models.TrainingPlan) error
	Delete(id uint) error
}

// PlanStepRepositoryInterface defines the interface for plan step repository operations
type PlanStepRepositoryInterface interface {
	GetByID(id uint) (*models.PlanStep, error)
	Update(step *models.PlanStep) error
	MarkComplete(id uint) error
	Delete(id uint) error
}

// StepSessionNoteRepositoryInterface defines the interface for step session note repository operations
type StepSessionNoteRepositoryInterface interface {
	Create(note *models.StepSessionNote) error
	GetByID(id uint) (*models.StepSessionNote, error)
	GetByStepID(stepID uint) ([]models.StepSessionNote, error)
	Update(note *models.StepSessionNote) error
	Delete(id uint) error
}

// TimeLogRepositoryInterface defines the interface for time log repository operations
type TimeLogRepositoryInterface interface {
	Create(log *models.TimeLog) error
	GetByUserID(userID uint, limit, offset int) ([]models.TimeLog, error)
	GetStatsByUserID(userID uint, since time.Time) (*TimeLogStats, error)
}
