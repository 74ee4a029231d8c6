package repository

import (
	"trainit-backend/internal/database/models"

	"gorm.io/gorm"
)

// StepSessionNoteRepository handles database operations for step session notes
type StepSessionNoteRepository struct {
	db *gorm.DB
}

// NewStepSessionNoteRepository creates a new step session note repository
func NewStepSessionNoteRepository(db *gorm.DB) *StepSessionNoteRepository {
	return &StepSessionNoteRepository{db: db}
}

// Create creates a new note
func (r *StepSessionNoteRepository) Create(note *models.StepSessionNote) error {
	return r.db.Create(note).Error
}

// GetByID retrieves a note by ID
func (r *StepSessionNoteRepository) GetByID(id uint) (*models.StepSessionNote, error) {
	var note models.StepSessionNote
	err := r.db.First(&note, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// GetByStepID retrieves the notes of a step, oldest first
func (r *StepSessionNoteRepository) GetByStepID(stepID uint) ([]models.StepSessionNote, error) {
	var notes []models.StepSessionNote
	err := r.db.Where("step_id = ?", stepID).
		Order("timestamp ASC").
		Order("id ASC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// Update updates a note
func (r *StepSessionNoteRepository) Update(note *models.StepSessionNote) error {
	return r.db.Save(note).Error
}

// Delete deletes a note
func (r *StepSessionNoteRepository) Delete(id uint) error {
	result := r.db.Delete(&models.StepSessionNote{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
