package service

import (
	"errors"
	"fmt"
	"time"

	"trainit-backend/internal/database/models"
	apperrors "trainit-backend/internal/errors"
	"trainit-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// PlanStepService handles business logic for plan steps and their session notes
type PlanStepService struct {
	stepRepo  repository.PlanStepRepositoryInterface
	noteRepo  repository.StepSessionNoteRepositoryInterface
	access    OwnershipVerifierInterface
	validator *validator.Validate
}

// NewPlanStepService creates a new plan step service
func NewPlanStepService(
	stepRepo repository.PlanStepRepositoryInterface,
	noteRepo repository.StepSessionNoteRepositoryInterface,
	access OwnershipVerifierInterface,
	validator *validator.Validate,
) *PlanStepService {
	return &PlanStepService{
		stepRepo:  stepRepo,
		noteRepo:  noteRepo,
		access:    access,
		validator: validator,
	}
}

// UpdatePlanStepRequest represents a partial update of a step; absent fields are left unchanged
type UpdatePlanStepRequest struct {
	Name              *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Description       *string `json:"description,omitempty"`
	Order             *int    `json:"order,omitempty"`
	EstimatedSessions *int    `json:"estimated_sessions,omitempty" validate:"omitempty,min=0"`
	IsComplete        *bool   `json:"is_complete,omitempty"`
}

// StepSessionNoteRequest represents the request to add a note or partially update one
type StepSessionNoteRequest struct {
	Note          *string      `json:"note,omitempty" example:"Held the sit for 10 seconds"`
	SessionCount  *int         `json:"session_count,omitempty" validate:"omitempty,min=0" example:"2"`
	PerformedDate *models.Date `json:"performed_date,omitempty" swaggertype:"string" format:"date" example:"2024-02-01"`
}

// StepSessionNoteResponse represents a session note in API responses
type StepSessionNoteResponse struct {
	ID            uint         `json:"id"`
	StepID        uint         `json:"step_id"`
	Timestamp     time.Time    `json:"timestamp"`
	Note          *string      `json:"note"`
	SessionCount  *int         `json:"session_count"`
	PerformedDate *models.Date `json:"performed_date" swaggertype:"string" format:"date"`
}

// Update merges the present fields of req into the step
func (s *PlanStepService) Update(userID, id uint, req *UpdatePlanStepRequest) (*PlanStepResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	step, err := s.access.Step(userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		step.Name = *req.Name
	}
	if req.Description != nil {
		step.Description = req.Description
	}
	if req.Order != nil {
		step.Order = *req.Order
	}
	if req.EstimatedSessions != nil {
		step.EstimatedSessions = req.EstimatedSessions
	}
	if req.IsComplete != nil {
		step.SetCompleted(*req.IsComplete)
	}

	if err := s.stepRepo.Update(step); err != nil {
		return nil, fmt.Errorf("failed to update step: %w", err)
	}

	return toPlanStepResponse(step), nil
}

// Delete deletes a step and its session notes
func (s *PlanStepService) Delete(userID, id uint) error {
	if _, err := s.access.Step(userID, id); err != nil {
		return err
	}

	if err := s.stepRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrStepNotFound
		}
		return fmt.Errorf("failed to delete step: %w", err)
	}
	return nil
}

// MarkComplete marks a step complete; calling it again leaves the step complete
func (s *PlanStepService) MarkComplete(userID, id uint) (*PlanStepResponse, error) {
	step, err := s.access.Step(userID, id)
	if err != nil {
		return nil, err
	}

	if err := s.stepRepo.MarkComplete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStepNotFound
		}
		return nil, fmt.Errorf("failed to mark step complete: %w", err)
	}

	step.SetCompleted(true)
	return toPlanStepResponse(step), nil
}

// AddNote records a session note on a step
func (s *PlanStepService) AddNote(userID, stepID uint, req *StepSessionNoteRequest) (*StepSessionNoteResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	if _, err := s.access.Step(userID, stepID); err != nil {
		return nil, err
	}

	note := &models.StepSessionNote{
		StepID:        stepID,
		Note:          req.Note,
		SessionCount:  req.SessionCount,
		PerformedDate: req.PerformedDate,
	}
	if err := s.noteRepo.Create(note); err != nil {
		return nil, fmt.Errorf("failed to create session note: %w", err)
	}

	return toStepSessionNoteResponse(note), nil
}

// ListNotes returns the notes of a step, oldest first
func (s *PlanStepService) ListNotes(userID, stepID uint) ([]StepSessionNoteResponse, error) {
	if _, err := s.access.Step(userID, stepID); err != nil {
		return nil, err
	}

	notes, err := s.noteRepo.GetByStepID(stepID)
	if err != nil {
		return nil, fmt.Errorf("failed to list session notes: %w", err)
	}

	responses := make([]StepSessionNoteResponse, len(notes))
	for i := range notes {
		responses[i] = *toStepSessionNoteResponse(&notes[i])
	}
	return responses, nil
}

// UpdateNote merges the present fields of req into the note
func (s *PlanStepService) UpdateNote(userID, noteID uint, req *StepSessionNoteRequest) (*StepSessionNoteResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	note, err := s.access.Note(userID, noteID)
	if err != nil {
		return nil, err
	}

	if req.Note != nil {
		note.Note = req.Note
	}
	if req.SessionCount != nil {
		note.SessionCount = req.SessionCount
	}
	if req.PerformedDate != nil {
		note.PerformedDate = req.PerformedDate
	}

	if err := s.noteRepo.Update(note); err != nil {
		return nil, fmt.Errorf("failed to update session note: %w", err)
	}

	return toStepSessionNoteResponse(note), nil
}

// DeleteNote deletes a session note
func (s *PlanStepService) DeleteNote(userID, noteID uint) error {
	if _, err := s.access.Note(userID, noteID); err != nil {
		return err
	}

	if err := s.noteRepo.Delete(noteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSessionNoteNotFound
		}
		return fmt.Errorf("failed to delete session note: %w", err)
	}
	return nil
}

func toStepSessionNoteResponse(note *models.StepSessionNote) *StepSessionNoteResponse {
	return &StepSessionNoteResponse{
		ID:            note.ID,
		StepID:        note.StepID,
		Timestamp:     note.Timestamp,
		Note:          note.Note,
		SessionCount:  note.SessionCount,
		PerformedDate: note.PerformedDate,
	}
}
