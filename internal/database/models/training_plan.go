package models

// TrainingPlan is an ordered sequence of steps for one animal
type TrainingPlan struct {
	BaseModel
	Name           string  `json:"name" gorm:"not null" validate:"required"`
	Description    *string `json:"description" gorm:"type:text"`
	CueDescription *string `json:"cue_description" gorm:"type:text"`
	CueVideoURL    *string `json:"cue_video_url"`
	Criteria       *string `json:"criteria" gorm:"type:text"`
	Category       *string `json:"category"`
	StartedDate    *Date   `json:"started_date" gorm:"type:date"`
	AnimalID       uint    `json:"animal_id" gorm:"not null;index"`

	// Relationships
	Steps []PlanStep `json:"steps" gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TrainingPlan
func (TrainingPlan) TableName() string {
	return "training_plans"
}
