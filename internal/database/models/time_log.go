package models

import (
	"time"

	"gorm.io/gorm"
)

// TimeLog is a block of training time recorded by a user
type TimeLog struct {
	BaseModel
	Duration  float64   `json:"duration" gorm:"not null"`
	Timestamp time.Time `json:"timestamp" gorm:"not null;index"`
	Notes     *string   `json:"notes"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	AnimalID  *uint     `json:"animal_id" gorm:"index"`
}

// TableName returns the table name for TimeLog
func (TimeLog) TableName() string {
	return "timelogs"
}

// BeforeCreate stamps the log with the current UTC time if not already set
func (l *TimeLog) BeforeCreate(tx *gorm.DB) error {
	if l.Timestamp.IsZero() {
		l.Timestamp = time.Now().UTC()
	}
	return nil
}
