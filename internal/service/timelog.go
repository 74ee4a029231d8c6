package service

import (
	"fmt"
	"time"

	"trainit-backend/internal/database/models"
	"trainit-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// statsWindow is how far back "this week" reaches
const statsWindow = 7 * 24 * time.Hour

// TimeLogService handles business logic for time logs
type TimeLogService struct {
	repo      repository.TimeLogRepositoryInterface
	access    OwnershipVerifierInterface
	validator *validator.Validate
}

// NewTimeLogService creates a new time log service
func NewTimeLogService(repo repository.TimeLogRepositoryInterface, access OwnershipVerifierInterface, validator *validator.Validate) *TimeLogService {
	return &TimeLogService{
		repo:      repo,
		access:    access,
		validator: validator,
	}
}

// CreateTimeLogRequest represents the request to log training time
type CreateTimeLogRequest struct {
	Duration *float64 `json:"duration" validate:"required,gte=0" example:"25"`
	Notes    *string  `json:"notes,omitempty" example:"Recall practice at the park"`
	AnimalID *uint    `json:"animal_id,omitempty" example:"1"`
}

// TimeLogResponse represents a time log in API responses
type TimeLogResponse struct {
	ID        uint      `json:"id"`
	Duration  float64   `json:"duration"`
	Timestamp time.Time `json:"timestamp"`
	Notes     *string   `json:"notes"`
	AnimalID  *uint     `json:"animal_id"`
}

// TimeLogStatsResponse summarizes the caller's logged time
type TimeLogStatsResponse struct {
	TotalSessions int64   `json:"total_sessions"`
	TotalTime     float64 `json:"total_time"`
	ThisWeekTime  float64 `json:"this_week_time"`
}

// Create logs training time for the caller, optionally against an animal of the caller's organization
func (s *TimeLogService) Create(userID uint, req *CreateTimeLogRequest) (*TimeLogResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	if req.AnimalID != nil {
		if _, err := s.access.Animal(userID, *req.AnimalID); err != nil {
			return nil, err
		}
	}

	log := &models.TimeLog{
		Duration:  *req.Duration,
		Timestamp: time.Now().UTC(),
		Notes:     req.Notes,
		UserID:    userID,
		AnimalID:  req.AnimalID,
	}
	if err := s.repo.Create(log); err != nil {
		return nil, fmt.Errorf("failed to create time log: %w", err)
	}

	return toTimeLogResponse(log), nil
}

// List returns the caller's own logs, newest first
func (s *TimeLogService) List(userID uint, skip, limit int) ([]TimeLogResponse, error) {
	skip, limit = clampPage(skip, limit)
	logs, err := s.repo.GetByUserID(userID, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list time logs: %w", err)
	}

	responses := make([]TimeLogResponse, len(logs))
	for i := range logs {
		responses[i] = *toTimeLogResponse(&logs[i])
	}
	return responses, nil
}

// Stats returns the caller's session count, total time and time logged in the last 7 days
func (s *TimeLogService) Stats(userID uint) (*TimeLogStatsResponse, error) {
	stats, err := s.repo.GetStatsByUserID(userID, time.Now().UTC().Add(-statsWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to get time log stats: %w", err)
	}

	return &TimeLogStatsResponse{
		TotalSessions: stats.TotalSessions,
		TotalTime:     stats.TotalTime,
		ThisWeekTime:  stats.ThisWeekTime,
	}, nil
}

func toTimeLogResponse(log *models.TimeLog) *TimeLogResponse {
	return &TimeLogResponse{
		ID:        log.ID,
		Duration:  log.Duration,
		Timestamp: log.Timestamp,
		Notes:     log.Notes,
		AnimalID:  log.AnimalID,
	}
}
