package models

// PlanStep is a single stage of a training plan
type PlanStep struct {
	BaseModel
	Name              string  `json:"name" gorm:"not null" validate:"required"`
	Description       *string `json:"description" gorm:"type:text"`
	Order             int     `json:"order" gorm:"column:order;not null"`
	EstimatedSessions *int    `json:"estimated_sessions"`
	PlanID            uint    `json:"plan_id" gorm:"not null;index"`
	// IsComplete is stored as 0/1
	IsComplete int `json:"-" gorm:"not null;default:0"`

	// Relationships
	SessionNotes []StepSessionNote `json:"session_notes,omitempty" gorm:"foreignKey:StepID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for PlanStep
func (PlanStep) TableName() string {
	return "plan_steps"
}

// Completed reports whether the step has been marked complete
func (s *PlanStep) Completed() bool {
	return s.IsComplete != 0
}

// SetCompleted stores the completion flag as 0/1
func (s *PlanStep) SetCompleted(complete bool) {
	if complete {
		s.IsComplete = 1
		return
	}
	s.IsComplete = 0
}
