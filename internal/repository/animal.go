package repository

import (
	"trainit-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AnimalRepository handles database operations for animals
type AnimalRepository struct {
	db *gorm.DB
}

// NewAnimalRepository creates a new animal repository
func NewAnimalRepository(db *gorm.DB) *AnimalRepository {
	return &AnimalRepository{db: db}
}

// Create creates a new animal
func (r *AnimalRepository) Create(animal *models.Animal) error {
	return r.db.Omit(clause.Associations).Create(animal).Error
}

// GetByID retrieves an animal by ID
func (r *AnimalRepository) GetByID(id uint) (*models.Animal, error) {
	var animal models.Animal
	err := r.db.First(&animal, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &animal, nil
}

// GetByOrganizationID retrieves the animals of an organization with pagination
func (r *AnimalRepository) GetByOrganizationID(orgID uint, limit, offset int) ([]models.Animal, error) {
	var animals []models.Animal
	err := r.db.Where("organization_id = ?", orgID).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&animals).Error
	if err != nil {
		return nil, err
	}
	return animals, nil
}

// Update updates an animal
func (r *AnimalRepository) Update(animal *models.Animal) error {
	return r.db.Omit(clause.Associations).Save(animal).Error
}

// Delete deletes an animal together with its plans, their steps and the steps' notes.
// Time logs that referenced the animal are kept with animal_id cleared.
func (r *AnimalRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		planIDs := tx.Model(&models.TrainingPlan{}).Select("id").Where("animal_id = ?", id)
		stepIDs := tx.Model(&models.PlanStep{}).Select("id").Where("plan_id IN (?)", planIDs)

		if err := tx.Where("step_id IN (?)", stepIDs).Delete(&models.StepSessionNote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("plan_id IN (?)", planIDs).Delete(&models.PlanStep{}).Error; err != nil {
			return err
		}
		if err := tx.Where("animal_id = ?", id).Delete(&models.TrainingPlan{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.TimeLog{}).Where("animal_id = ?", id).Update("animal_id", nil).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Animal{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
