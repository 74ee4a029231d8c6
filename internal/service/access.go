package service

import (
	"errors"
	"fmt"

	"trainit-backend/internal/database/models"
	apperrors "trainit-backend/internal/errors"
	"trainit-backend/internal/repository"

	"gorm.io/gorm"
)

// OwnershipVerifier walks an entity up its ownership chain
// (note -> step -> plan -> animal -> organization) and compares the organization
// with the caller's, re-read from the users table on every call.
// A missing link and a foreign organization are reported the same way: as the
// NotFound sentinel of the entity that was asked for.
type OwnershipVerifier struct {
	userRepo   repository.UserRepositoryInterface
	animalRepo repository.AnimalRepositoryInterface
	planRepo   repository.TrainingPlanRepositoryInterface
	stepRepo   repository.PlanStepRepositoryInterface
	noteRepo   repository.StepSessionNoteRepositoryInterface
}

// NewOwnershipVerifier creates a new ownership verifier
func NewOwnershipVerifier(
	userRepo repository.UserRepositoryInterface,
	animalRepo repository.AnimalRepositoryInterface,
	planRepo repository.TrainingPlanRepositoryInterface,
	stepRepo repository.PlanStepRepositoryInterface,
	noteRepo repository.StepSessionNoteRepositoryInterface,
) *OwnershipVerifier {
	return &OwnershipVerifier{
		userRepo:   userRepo,
		animalRepo: animalRepo,
		planRepo:   planRepo,
		stepRepo:   stepRepo,
		noteRepo:   noteRepo,
	}
}

// OrganizationOf returns the caller's organization ID
func (v *OwnershipVerifier) OrganizationOf(userID uint) (uint, error) {
	orgID, err := v.userRepo.GetOrganizationID(userID)
	if err != nil {
		return 0, lookupError(err, apperrors.ErrUserNotFound, "user")
	}
	return orgID, nil
}

// Animal returns the animal if it belongs to the caller's organization
func (v *OwnershipVerifier) Animal(userID, animalID uint) (*models.Animal, error) {
	orgID, err := v.OrganizationOf(userID)
	if err != nil {
		return nil, chainError(err, apperrors.ErrAnimalNotFound)
	}

	animal, err := v.animalRepo.GetByID(animalID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrAnimalNotFound, "animal")
	}
	if animal.OrganizationID != orgID {
		return nil, apperrors.ErrAnimalNotFound
	}
	return animal, nil
}

// Plan returns the plan, with its steps, if its animal belongs to the caller's organization
func (v *OwnershipVerifier) Plan(userID, planID uint) (*models.TrainingPlan, error) {
	plan, err := v.planRepo.GetByID(planID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrPlanNotFound, "plan")
	}
	if _, err := v.Animal(userID, plan.AnimalID); err != nil {
		return nil, chainError(err, apperrors.ErrPlanNotFound)
	}
	return plan, nil
}

// Step returns the step if its plan belongs to the caller's organization
func (v *OwnershipVerifier) Step(userID, stepID uint) (*models.PlanStep, error) {
	step, err := v.stepRepo.GetByID(stepID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrStepNotFound, "step")
	}
	if _, err := v.Plan(userID, step.PlanID); err != nil {
		return nil, chainError(err, apperrors.ErrStepNotFound)
	}
	return step, nil
}

// Note returns the session note if its step belongs to the caller's organization
func (v *OwnershipVerifier) Note(userID, noteID uint) (*models.StepSessionNote, error) {
	note, err := v.noteRepo.GetByID(noteID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrSessionNoteNotFound, "session note")
	}
	if _, err := v.Step(userID, note.StepID); err != nil {
		return nil, chainError(err, apperrors.ErrSessionNoteNotFound)
	}
	return note, nil
}

// lookupError maps a missing row to sentinel and wraps any other repository failure
func lookupError(err, sentinel error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return fmt.Errorf("failed to get %s: %w", entity, err)
}

// chainError reports a broken link further up the chain as sentinel
func chainError(err, sentinel error) error {
	if apperrors.IsNotFound(err) {
		return sentinel
	}
	return err
}
