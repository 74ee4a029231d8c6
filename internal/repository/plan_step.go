package repository

import (
	"trainit-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlanStepRepository handles database operations for plan steps
type PlanStepRepository struct {
	db *gorm.DB
}

// NewPlanStepRepository creates a new plan step repository
func NewPlanStepRepository(db *gorm.DB) *PlanStepRepository {
	return &PlanStepRepository{db: db}
}

// GetByID retrieves a step by ID
func (r *PlanStepRepository) GetByID(id uint) (*models.PlanStep, error) {
	var step models.PlanStep
	err := r.db.First(&step, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &step, nil
}

// Update updates a step
func (r *PlanStepRepository) Update(step *models.PlanStep) error {
	return r.db.Omit(clause.Associations).Save(step).Error
}

// MarkComplete sets the completion flag; repeated calls leave the step complete
func (r *PlanStepRepository) MarkComplete(id uint) error {
	result := r.db.Model(&models.PlanStep{}).Where("id = ?", id).Update("is_complete", 1)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes a step and its session notes
func (r *PlanStepRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("step_id = ?", id).Delete(&models.StepSessionNote{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.PlanStep{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
