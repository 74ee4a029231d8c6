package models

import (
	"time"

	"gorm.io/gorm"
)

// StepSessionNote records one or more training sessions performed on a step
type StepSessionNote struct {
	BaseModel
	StepID        uint      `json:"step_id" gorm:"not null;index"`
	Timestamp     time.Time `json:"timestamp" gorm:"not null"`
	Note          *string   `json:"note" gorm:"type:text"`
	SessionCount  *int      `json:"session_count"`
	PerformedDate *Date     `json:"performed_date" gorm:"type:date"`
}

// TableName returns the table name for StepSessionNote
func (StepSessionNote) TableName() string {
	return "step_session_notes"
}

// BeforeCreate stamps the note with the current UTC time if not already set
func (n *StepSessionNote) BeforeCreate(tx *gorm.DB) error {
	if n.Timestamp.IsZero() {
		n.Timestamp = time.Now().UTC()
	}
	return nil
}
