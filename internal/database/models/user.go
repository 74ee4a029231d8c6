package models

// User is an account belonging to exactly one organization
type User struct {
	BaseModel
	Email          string `json:"email" gorm:"uniqueIndex;not null" validate:"required,email"`
	HashedPassword string `json:"-" gorm:"not null"`
	OrganizationID uint   `json:"organization_id" gorm:"not null;index"`

	// Relationships
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
	Animals      []Animal      `json:"animals,omitempty" gorm:"foreignKey:OwnerID"`
	Logs         []TimeLog     `json:"logs,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
