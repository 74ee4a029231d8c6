package service

import (
	"errors"
	"fmt"

	"trainit-backend/internal/database/models"
	apperrors "trainit-backend/internal/errors"
	"trainit-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// TrainingPlanService handles business logic for training plans
type TrainingPlanService struct {
	repo      repository.TrainingPlanRepositoryInterface
	access    OwnershipVerifierInterface
	validator *validator.Validate
}

// NewTrainingPlanService creates a new training plan service
func NewTrainingPlanService(repo repository.TrainingPlanRepositoryInterface, access OwnershipVerifierInterface, validator *validator.Validate) *TrainingPlanService {
	return &TrainingPlanService{
		repo:      repo,
		access:    access,
		validator: validator,
	}
}

// CreatePlanStepRequest represents one step of a new plan
type CreatePlanStepRequest struct {
	Name              string  `json:"name" validate:"required" example:"Lure into position"`
	Description       *string `json:"description,omitempty"`
	Order             *int    `json:"order" validate:"required" example:"1"`
	EstimatedSessions *int    `json:"estimated_sessions,omitempty" validate:"omitempty,min=0" example:"5"`
	IsComplete        *bool   `json:"is_complete,omitempty"`
}

// CreateTrainingPlanRequest represents the request to create a plan with its steps
type CreateTrainingPlanRequest struct {
	Name           string                  `json:"name" validate:"required" example:"Sit"`
	Description    *string                 `json:"description,omitempty"`
	CueDescription *string                 `json:"cue_description,omitempty"`
	CueVideoURL    *string                 `json:"cue_video_url,omitempty"`
	Criteria       *string                 `json:"criteria,omitempty"`
	Category       *string                 `json:"category,omitempty" example:"Obedience"`
	StartedDate    *models.Date            `json:"started_date,omitempty" swaggertype:"string" format:"date" example:"2024-01-15"`
	Steps          []CreatePlanStepRequest `json:"steps" validate:"required,dive"`
}

// UpdateTrainingPlanRequest represents a partial update of a plan; absent fields are left unchanged
type UpdateTrainingPlanRequest struct {
	Name           *string      `json:"name,omitempty" validate:"omitempty,min=1"`
	Description    *string      `json:"description,omitempty"`
	CueDescription *string      `json:"cue_description,omitempty"`
	CueVideoURL    *string      `json:"cue_video_url,omitempty"`
	Criteria       *string      `json:"criteria,omitempty"`
	Category       *string      `json:"category,omitempty"`
	StartedDate    *models.Date `json:"started_date,omitempty" swaggertype:"string" format:"date"`
}

// PlanStepResponse represents a step in API responses
type PlanStepResponse struct {
	ID                uint    `json:"id"`
	Name              string  `json:"name"`
	Description       *string `json:"description"`
	Order             int     `json:"order"`
	EstimatedSessions *int    `json:"estimated_sessions"`
	IsComplete        bool    `json:"is_complete"`
}

// TrainingPlanResponse represents a plan with its steps
type TrainingPlanResponse struct {
	ID             uint               `json:"id"`
	Name           string             `json:"name"`
	Description    *string            `json:"description"`
	CueDescription *string            `json:"cue_description"`
	CueVideoURL    *string            `json:"cue_video_url"`
	Criteria       *string            `json:"criteria"`
	Category       *string            `json:"category"`
	StartedDate    *models.Date       `json:"started_date" swaggertype:"string" format:"date"`
	AnimalID       uint               `json:"animal_id"`
	Steps          []PlanStepResponse `json:"steps"`
}

// CreateForAnimal creates a plan and all of its steps for an animal of the caller's organization
func (s *TrainingPlanService) CreateForAnimal(userID, animalID uint, req *CreateTrainingPlanRequest) (*TrainingPlanResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	if _, err := s.access.Animal(userID, animalID); err != nil {
		return nil, err
	}

	plan := &models.TrainingPlan{
		Name:           req.Name,
		Description:    req.Description,
		CueDescription: req.CueDescription,
		CueVideoURL:    req.CueVideoURL,
		Criteria:       req.Criteria,
		Category:       req.Category,
		StartedDate:    req.StartedDate,
		AnimalID:       animalID,
		Steps:          make([]models.PlanStep, len(req.Steps)),
	}
	for i, stepReq := range req.Steps {
		step := models.PlanStep{
			Name:              stepReq.Name,
			Description:       stepReq.Description,
			Order:             *stepReq.Order,
			EstimatedSessions: stepReq.EstimatedSessions,
		}
		step.SetCompleted(stepReq.IsComplete != nil && *stepReq.IsComplete)
		plan.Steps[i] = step
	}

	if err := s.repo.Create(plan); err != nil {
		return nil, fmt.Errorf("failed to create training plan: %w", err)
	}

	return toTrainingPlanResponse(plan), nil
}

// ListForAnimal returns the plans of an animal of the caller's organization
func (s *TrainingPlanService) ListForAnimal(userID, animalID uint) ([]TrainingPlanResponse, error) {
	if _, err := s.access.Animal(userID, animalID); err != nil {
		return nil, err
	}

	plans, err := s.repo.GetByAnimalID(animalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list training plans: %w", err)
	}
	return toTrainingPlanResponses(plans), nil
}

// ListForOrganization returns every plan of every animal in the caller's organization
func (s *TrainingPlanService) ListForOrganization(userID uint) ([]TrainingPlanResponse, error) {
	orgID, err := s.access.OrganizationOf(userID)
	if err != nil {
		return nil, err
	}

	plans, err := s.repo.GetByOrganizationID(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list training plans: %w", err)
	}
	return toTrainingPlanResponses(plans), nil
}

// GetByID retrieves a plan with its steps sorted by order
func (s *TrainingPlanService) GetByID(userID, id uint) (*TrainingPlanResponse, error) {
	plan, err := s.access.Plan(userID, id)
	if err != nil {
		return nil, err
	}
	return toTrainingPlanResponse(plan), nil
}

// Update merges the present fields of req into the plan
func (s *TrainingPlanService) Update(userID, id uint, req *UpdateTrainingPlanRequest) (*TrainingPlanResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	plan, err := s.access.Plan(userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.Description != nil {
		plan.Description = req.Description
	}
	if req.CueDescription != nil {
		plan.CueDescription = req.CueDescription
	}
	if req.CueVideoURL != nil {
		plan.CueVideoURL = req.CueVideoURL
	}
	if req.Criteria != nil {
		plan.Criteria = req.Criteria
	}
	if req.Category != nil {
		plan.Category = req.Category
	}
	if req.StartedDate != nil {
		plan.StartedDate = req.StartedDate
	}

	if err := s.repo.Update(plan); err != nil {
		return nil, fmt.Errorf("failed to update training plan: %w", err)
	}

	return toTrainingPlanResponse(plan), nil
}

// Delete deletes a plan, its steps and their session notes
func (s *TrainingPlanService) Delete(userID, id uint) error {
	if _, err := s.access.Plan(userID, id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPlanNotFound
		}
		return fmt.Errorf("failed to delete training plan: %w", err)
	}
	return nil
}

func toPlanStepResponse(step *models.PlanStep) *PlanStepResponse {
	return &PlanStepResponse{
		ID:                step.ID,
		Name:              step.Name,
		Description:       step.Description,
		Order:             step.Order,
		EstimatedSessions: step.EstimatedSessions,
		IsComplete:        step.Completed(),
	}
}

func toTrainingPlanResponse(plan *models.TrainingPlan) *TrainingPlanResponse {
	steps := make([]PlanStepResponse, len(plan.Steps))
	for i := range plan.Steps {
		steps[i] = *toPlanStepResponse(&plan.Steps[i])
	}

	return &TrainingPlanResponse{
		ID:             plan.ID,
		Name:           plan.Name,
		Description:    plan.Description,
		CueDescription: plan.CueDescription,
		CueVideoURL:    plan.CueVideoURL,
		Criteria:       plan.Criteria,
		Category:       plan.Category,
		StartedDate:    plan.StartedDate,
		AnimalID:       plan.AnimalID,
		Steps:          steps,
	}
}

func toTrainingPlanResponses(plans []models.TrainingPlan) []TrainingPlanResponse {
	responses := make([]TrainingPlanResponse, len(plans))
	for i := range plans {
		responses[i] = *toTrainingPlanResponse(&plans[i])
	}
	return responses
}
