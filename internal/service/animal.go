package service

import (
	"errors"
	"fmt"

	"trainit-backend/internal/database/models"
	apperrors "trainit-backend/internal/errors"
	"trainit-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// AnimalService handles business logic for animals
type AnimalService struct {
	repo      repository.AnimalRepositoryInterface
	access    OwnershipVerifierInterface
	validator *validator.Validate
}

// NewAnimalService creates a new animal service
func NewAnimalService(repo repository.AnimalRepositoryInterface, access OwnershipVerifierInterface, validator *validator.Validate) *AnimalService {
	return &AnimalService{
		repo:      repo,
		access:    access,
		validator: validator,
	}
}

// AnimalRequest represents the request to create or replace an animal
type AnimalRequest struct {
	Name     string  `json:"name" validate:"required" example:"Bella"`
	Species  string  `json:"species" validate:"required" example:"Dog"`
	Sex      string  `json:"sex" validate:"required,oneof=Male Female Unknown" example:"Female"`
	Age      *int    `json:"age,omitempty" validate:"omitempty,min=0" example:"3"`
	Location *string `json:"location,omitempty" example:"Kennel B"`
}

// AnimalResponse represents the response for animal operations
type AnimalResponse struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	Species        string  `json:"species"`
	Sex            string  `json:"sex"`
	Age            *int    `json:"age"`
	Location       *string `json:"location"`
	OwnerID        uint    `json:"owner_id"`
	OrganizationID uint    `json:"organization_id"`
}

// Create creates an animal owned by the caller inside the caller's organization
func (s *AnimalService) Create(userID uint, req *AnimalRequest) (*AnimalResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	orgID, err := s.access.OrganizationOf(userID)
	if err != nil {
		return nil, err
	}

	animal := &models.Animal{
		Name:           req.Name,
		Species:        req.Species,
		Sex:            models.AnimalSex(req.Sex),
		Age:            req.Age,
		Location:       req.Location,
		OwnerID:        userID,
		OrganizationID: orgID,
	}
	if err := s.repo.Create(animal); err != nil {
		return nil, fmt.Errorf("failed to create animal: %w", err)
	}

	return toAnimalResponse(animal), nil
}

// List returns the animals of the caller's organization
func (s *AnimalService) List(userID uint, skip, limit int) ([]AnimalResponse, error) {
	orgID, err := s.access.OrganizationOf(userID)
	if err != nil {
		return nil, err
	}

	skip, limit = clampPage(skip, limit)
	animals, err := s.repo.GetByOrganizationID(orgID, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list animals: %w", err)
	}

	responses := make([]AnimalResponse, len(animals))
	for i := range animals {
		responses[i] = *toAnimalResponse(&animals[i])
	}
	return responses, nil
}

// GetByID retrieves an animal of the caller's organization
func (s *AnimalService) GetByID(userID, id uint) (*AnimalResponse, error) {
	animal, err := s.access.Animal(userID, id)
	if err != nil {
		return nil, err
	}
	return toAnimalResponse(animal), nil
}

// Update replaces the descriptive fields of an animal; owner and organization never change
func (s *AnimalService) Update(userID, id uint, req *AnimalRequest) (*AnimalResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationFailed(err)
	}

	animal, err := s.access.Animal(userID, id)
	if err != nil {
		return nil, err
	}

	animal.Name = req.Name
	animal.Species = req.Species
	animal.Sex = models.AnimalSex(req.Sex)
	animal.Age = req.Age
	animal.Location = req.Location

	if err := s.repo.Update(animal); err != nil {
		return nil, fmt.Errorf("failed to update animal: %w", err)
	}

	return toAnimalResponse(animal), nil
}

// Delete deletes an animal together with its plans
func (s *AnimalService) Delete(userID, id uint) error {
	if _, err := s.access.Animal(userID, id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAnimalNotFound
		}
		return fmt.Errorf("failed to delete animal: %w", err)
	}
	return nil
}

func toAnimalResponse(animal *models.Animal) *AnimalResponse {
	return &AnimalResponse{
		ID:             animal.ID,
		Name:           animal.Name,
		Species:        animal.Species,
		Sex:            string(animal.Sex),
		Age:            animal.Age,
		Location:       animal.Location,
		OwnerID:        animal.OwnerID,
		OrganizationID: animal.OrganizationID,
	}
}
