package models

// Animal is a trainee owned by a user and visible to the owner's organization
type Animal struct {
	BaseModel
	Name           string    `json:"name" gorm:"not null" validate:"required"`
	Species        string    `json:"species" gorm:"not null" validate:"required"`
	Sex            AnimalSex `json:"sex" gorm:"type:varchar(20);not null" validate:"required"`
	Age            *int      `json:"age"` // years
	Location       *string   `json:"location"`
	OwnerID        uint      `json:"owner_id" gorm:"not null;index"`
	OrganizationID uint      `json:"organization_id" gorm:"not null;index"`

	// Relationships
	Plans []TrainingPlan `json:"plans,omitempty" gorm:"foreignKey:AnimalID;constraint:OnDelete:CASCADE"`
	Logs  []TimeLog      `json:"logs,omitempty" gorm:"foreignKey:AnimalID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Animal
func (Animal) TableName() string {
	return "animals"
}
