package models

// BaseModel provides the auto-increment integer primary key shared by every table
type BaseModel struct {
	ID uint `json:"id" gorm:"primaryKey"`
}
