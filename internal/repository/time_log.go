package repository

import (
	"time"

	"trainit-backend/internal/database/models"

	"gorm.io/gorm"
)

// TimeLogStats aggregates a user's logged training time
type TimeLogStats struct {
	TotalSessions int64
	TotalTime     float64
	ThisWeekTime  float64
}

// TimeLogRepository handles database operations for time logs
type TimeLogRepository struct {
	db *gorm.DB
}

// NewTimeLogRepository creates a new time log repository
func NewTimeLogRepository(db *gorm.DB) *TimeLogRepository {
	return &TimeLogRepository{db: db}
}

// Create creates a new time log
func (r *TimeLogRepository) Create(log *models.TimeLog) error {
	return r.db.Create(log).Error
}

// GetByUserID retrieves a user's logs, newest first
func (r *TimeLogRepository) GetByUserID(userID uint, limit, offset int) ([]models.TimeLog, error) {
	var logs []models.TimeLog
	err := r.db.Where("user_id = ?", userID).
		Order("timestamp DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// GetStatsByUserID counts a user's logs and sums their durations, overall and since the given time
func (r *TimeLogRepository) GetStatsByUserID(userID uint, since time.Time) (*TimeLogStats, error) {
	var stats TimeLogStats

	err := r.db.Model(&models.TimeLog{}).
		Select("COUNT(*), COALESCE(SUM(duration), 0)").
		Where("user_id = ?", userID).
		Row().
		Scan(&stats.TotalSessions, &stats.TotalTime)
	if err != nil {
		return nil, err
	}

	err = r.db.Model(&models.TimeLog{}).
		Select("COALESCE(SUM(duration), 0)").
		Where("user_id = ? AND timestamp >= ?", userID, since).
		Row().
		Scan(&stats.ThisWeekTime)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}
