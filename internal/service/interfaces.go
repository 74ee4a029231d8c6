package service

import (
	"trainit-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OwnershipVerifierInterface resolves an entity only if it belongs to the caller's organization
type OwnershipVerifierInterface interface {
	OrganizationOf(userID uint) (uint, error)
	Animal(userID, animalID uint) (*models.Animal, error)
	Plan(userID, planID uint) (*models.TrainingPlan, error)
	Step(userID, stepID uint) (*models.PlanStep, error)
	Note(userID, noteID uint) (*models.StepSessionNote, error)
}

// AnimalServiceInterface defines the interface for animal service
type AnimalServiceInterface interface {
	Create(userID uint, req *AnimalRequest) (*AnimalResponse, error)
	List(userID uint, skip, limit int) ([]AnimalResponse, error)
	GetByID(userID, id uint) (*AnimalResponse, error)
	Update(userID, id uint, req *AnimalRequest) (*AnimalResponse, error)
	Delete(userID, id uint) error
}

// TrainingPlanServiceInterface defines the interface for training plan service
type TrainingPlanServiceInterface interface {
	CreateForAnimal(userID, animalID uint, req *CreateTrainingPlanRequest) (*TrainingPlanResponse, error)
	ListForAnimal(userID, animalID uint) ([]TrainingPlanResponse, error)
	ListForOrganization(userID uint) ([]TrainingPlanResponse, error)
	GetByID(userID, id uint) (*TrainingPlanResponse, error)
	Update(userID, id uint, req *UpdateTrainingPlanRequest) (*TrainingPlanResponse, error)
	Delete(userID, id uint) error
}

// PlanStepServiceInterface defines the interface for plan step and session note service
type PlanStepServiceInterface interface {
	Update(userID, id uint, req *UpdatePlanStepRequest) (*PlanStepResponse, error)
	Delete(userID, id uint) error
	MarkComplete(userID, id uint) (*PlanStepResponse, error)
	AddNote(userID, stepID uint, req *StepSessionNoteRequest) (*StepSessionNoteResponse, error)
	ListNotes(userID, stepID uint) ([]StepSessionNoteResponse, error)
	UpdateNote(userID, noteID uint, req *StepSessionNoteRequest) (*StepSessionNoteResponse, error)
	DeleteNote(userID, noteID uint) error
}

// TimeLogServiceInterface defines the interface for time log service
type TimeLogServiceInterface interface {
	Create(userID uint, req *CreateTimeLogRequest) (*TimeLogResponse, error)
	List(userID uint, skip, limit int) ([]TimeLogResponse, error)
	Stats(userID uint) (*TimeLogStatsResponse, error)
}
