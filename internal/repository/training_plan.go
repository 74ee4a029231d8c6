package repository

import (
	"trainit-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TrainingPlanRepository handles database operations for training plans
type TrainingPlanRepository struct {
	db *gorm.DB
}

// NewTrainingPlanRepository creates a new training plan repository
func NewTrainingPlanRepository(db *gorm.DB) *TrainingPlanRepository {
	return &TrainingPlanRepository{db: db}
}

// stepsInOrder sorts preloaded steps by their position in the plan
func stepsInOrder(db *gorm.DB) *gorm.DB {
	return db.Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).Order("id")
}

// Create creates a plan together with its steps
func (r *TrainingPlanRepository) Create(plan *models.TrainingPlan) error {
	return r.db.Create(plan).Error
}

// GetByID retrieves a plan with its steps sorted by order
func (r *TrainingPlanRepository) GetByID(id uint) (*models.TrainingPlan, error) {
	var plan models.TrainingPlan
	err := r.db.Preload("Steps", stepsInOrder).First(&plan, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetByAnimalID retrieves the plans of an animal
func (r *TrainingPlanRepository) GetByAnimalID(animalID uint) ([]models.TrainingPlan, error) {
	var plans []models.TrainingPlan
	err := r.db.Preload("Steps", stepsInOrder).
		Where("animal_id = ?", animalID).
		Order("id").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

// GetByOrganizationID retrieves the plans of every animal in an organization
func (r *TrainingPlanRepository) GetByOrganizationID(orgID uint) ([]models.TrainingPlan, error) {
	var plans []models.TrainingPlan
	err := r.db.Preload("Steps", stepsInOrder).
		Joins("JOIN animals ON animals.id = training_plans.animal_id").
		Where("animals.organization_id = ?", orgID).
		Order("training_plans.id").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

// Update updates the plan's own columns; steps are left untouched
func (r *TrainingPlanRepository) Update(plan *models.TrainingPlan) error {
	return r.db.Omit(clause.Associations).Save(plan).Error
}

// Delete deletes a plan, its steps and their session notes
func (r *TrainingPlanRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		stepIDs := tx.Model(&models.PlanStep{}).Select("id").Where("plan_id = ?", id)

		if err := tx.Where("step_id IN (?)", stepIDs).Delete(&models.StepSessionNote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("plan_id = ?", id).Delete(&models.PlanStep{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.TrainingPlan{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
