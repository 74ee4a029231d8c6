package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"trainit-backend/internal/database/models"

	"gorm.io/gorm"
)

var factorySeq atomic.Uint64

func nextSeq() uint64 {
	return factorySeq.Add(1)
}

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with a unique name
func (f *OrganizationFactory) Create() *models.Organization {
	description := "A test organization for testing purposes"
	return &models.Organization{
		Name:        fmt.Sprintf("Test Organization %d", nextSeq()),
		Description: &description,
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	return org
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with a unique email
func (f *UserFactory) Create() *models.User {
	return &models.User{
		Email:          fmt.Sprintf("trainer%d@example.com", nextSeq()),
		HashedPassword: "$2a$10$placeholderplaceholderplaceholderplaceholderplacehold",
	}
}

// WithOrganization sets the organization ID for the user
func (f *UserFactory) WithOrganization(orgID uint) *models.User {
	user := f.Create()
	user.OrganizationID = orgID
	return user
}

// AnimalFactory provides methods to create test Animal data
type AnimalFactory struct{}

// NewAnimalFactory creates a new AnimalFactory
func NewAnimalFactory() *AnimalFactory {
	return &AnimalFactory{}
}

// Create creates a test Animal with default values
func (f *AnimalFactory) Create() *models.Animal {
	age := 4
	location := "Kennel A"
	return &models.Animal{
		Name:     fmt.Sprintf("Rex %d", nextSeq()),
		Species:  "Dog",
		Sex:      models.AnimalSexMale,
		Age:      &age,
		Location: &location,
	}
}

// WithOwner sets the owner and the owner's organization
func (f *AnimalFactory) WithOwner(owner *models.User) *models.Animal {
	animal := f.Create()
	animal.OwnerID = owner.ID
	animal.OrganizationID = owner.OrganizationID
	return animal
}

// TrainingPlanFactory provides methods to create test TrainingPlan data
type TrainingPlanFactory struct{}

// NewTrainingPlanFactory creates a new TrainingPlanFactory
func NewTrainingPlanFactory() *TrainingPlanFactory {
	return &TrainingPlanFactory{}
}

// Create creates a test TrainingPlan with three steps listed out of order
func (f *TrainingPlanFactory) Create() *models.TrainingPlan {
	description := "Teach a reliable sit"
	category := "Obedience"
	started := models.NewDate(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	sessions := 5
	return &models.TrainingPlan{
		Name:        fmt.Sprintf("Sit %d", nextSeq()),
		Description: &description,
		Category:    &category,
		StartedDate: &started,
		Steps: []models.PlanStep{
			{Name: "Add duration", Order: 3},
			{Name: "Lure into position", Order: 1, EstimatedSessions: &sessions},
			{Name: "Fade the lure", Order: 2},
		},
	}
}

// ForAnimal sets the animal the plan belongs to
func (f *TrainingPlanFactory) ForAnimal(animalID uint) *models.TrainingPlan {
	plan := f.Create()
	plan.AnimalID = animalID
	return plan
}

// StepSessionNoteFactory provides methods to create test StepSessionNote data
type StepSessionNoteFactory struct{}

// NewStepSessionNoteFactory creates a new StepSessionNoteFactory
func NewStepSessionNoteFactory() *StepSessionNoteFactory {
	return &StepSessionNoteFactory{}
}

// ForStep creates a test note for the given step
func (f *StepSessionNoteFactory) ForStep(stepID uint) *models.StepSessionNote {
	note := "Good focus today"
	count := 2
	return &models.StepSessionNote{
		StepID:       stepID,
		Note:         &note,
		SessionCount: &count,
	}
}

// TimeLogFactory provides methods to create test TimeLog data
type TimeLogFactory struct{}

// NewTimeLogFactory creates a new TimeLogFactory
func NewTimeLogFactory() *TimeLogFactory {
	return &TimeLogFactory{}
}

// ForUser creates a test log for the given user
func (f *TimeLogFactory) ForUser(userID uint, duration float64) *models.TimeLog {
	return &models.TimeLog{
		UserID:   userID,
		Duration: duration,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization *OrganizationFactory
	User         *UserFactory
	Animal       *AnimalFactory
	TrainingPlan *TrainingPlanFactory
	Note         *StepSessionNoteFactory
	TimeLog      *TimeLogFactory
}

// NewFactorySet creates a new FactorySet with all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization: NewOrganizationFactory(),
		User:         NewUserFactory(),
		Animal:       NewAnimalFactory(),
		TrainingPlan: NewTrainingPlanFactory(),
		Note:         NewStepSessionNoteFactory(),
		TimeLog:      NewTimeLogFactory(),
	}
}

// Tenant is a persisted organization with one user, one animal owned by that user and one plan
type Tenant struct {
	Organization *models.Organization
	User         *models.User
	Animal       *models.Animal
	Plan         *models.TrainingPlan
}

// CreateTenantHierarchy persists a complete tenant into db
func (fs *FactorySet) CreateTenantHierarchy(db *gorm.DB) (*Tenant, error) {
	org := fs.Organization.Create()
	if err := db.Create(org).Error; err != nil {
		return nil, fmt.Errorf("create organization: %w", err)
	}

	user := fs.User.WithOrganization(org.ID)
	if err := db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	animal := fs.Animal.WithOwner(user)
	if err := db.Create(animal).Error; err != nil {
		return nil, fmt.Errorf("create animal: %w", err)
	}

	plan := fs.TrainingPlan.ForAnimal(animal.ID)
	if err := db.Create(plan).Error; err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}

	return &Tenant{Organization: org, User: user, Animal: animal, Plan: plan}, nil
}
