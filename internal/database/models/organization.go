package models

import (
	"time"
)

// Organization represents the root entity for multi-tenancy
type Organization struct {
	BaseModel
	Name        string    `json:"name" gorm:"uniqueIndex;not null" validate:"required,min=1"`
	Description *string   `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`

	// Relationships
	Users   []User   `json:"users,omitempty" gorm:"foreignKey:OrganizationID"`
	Animals []Animal `json:"animals,omitempty" gorm:"foreignKey:OrganizationID"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
