package service_test

import (
	"errors"
	"testing"

	"trainit-backend/internal/database/models"
	apperrors "trainit-backend/internal/errors"
	"trainit-backend/internal/mocks"
	"trainit-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AnimalServiceTestSuite defines the test suite for AnimalService
type AnimalServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRepo      *mocks.MockAnimalRepositoryInterface
	mockAccess    *mocks.MockOwnershipVerifierInterface
	animalService *service.AnimalService
}

// SetupTest sets up the test suite
func (suite *AnimalServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockAnimalRepositoryInterface(suite.ctrl)
	suite.mockAccess = mocks.NewMockOwnershipVerifierInterface(suite.ctrl)
	suite.animalService = service.NewAnimalService(suite.mockRepo, suite.mockAccess, service.NewValidator())
}

// TearDownTest cleans up after each test
func (suite *AnimalServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func validAnimalRequest() *service.AnimalRequest {
	age := 3
	return &service.AnimalRequest{
		Name:    "Bella",
		Species: "Dog",
		Sex:     "Female",
		Age:     &age,
	}
}

// TestCreateAnimal tests that a new animal is owned by the caller and scoped to the caller's organization
func (suite *AnimalServiceTestSuite) TestCreateAnimal() {
	req := validAnimalRequest()

	suite.mockAccess.EXPECT().OrganizationOf(uint(1)).Return(uint(7), nil)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(animal *models.Animal) error {
			assert.Equal(suite.T(), uint(1), animal.OwnerID)
			assert.Equal(suite.T(), uint(7), animal.OrganizationID)
			assert.Equal(suite.T(), models.AnimalSexFemale, animal.Sex)
			animal.ID = 11
			return nil
		})

	response, err := suite.animalService.Create(1, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), uint(11), response.ID)
	assert.Equal(suite.T(), "Bella", response.Name)
	assert.Equal(suite.T(), "Female", response.Sex)
	assert.Equal(suite.T(), 3, *response.Age)
	assert.Equal(suite.T(), uint(7), response.OrganizationID)
}

// TestCreateAnimalValidationError tests the required fields and the sex enumeration
func (suite *AnimalServiceTestSuite) TestCreateAnimalValidationError() {
	tests := []struct {
		name  string
		mut   func(r *service.AnimalRequest)
		field string
	}{
		{"missing name", func(r *service.AnimalRequest) { r.Name = "" }, "name"},
		{"missing species", func(r *service.AnimalRequest) { r.Species = "" }, "species"},
		{"unknown sex", func(r *service.AnimalRequest) { r.Sex = "Other" }, "sex"},
		{"negative age", func(r *service.AnimalRequest) { age := -1; r.Age = &age }, "age"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			req := validAnimalRequest()
			tt.mut(req)

			response, err := suite.animalService.Create(1, req)

			assert.Nil(suite.T(), response)
			assert.True(suite.T(), apperrors.IsValidation(err))
			assert.Contains(suite.T(), err.Error(), "validation failed")
			assert.Contains(suite.T(), err.Error(), tt.field)
		})
	}
}

// TestListAnimalsClampsPagination tests that the page size is bounded before reaching the repository
func (suite *AnimalServiceTestSuite) TestListAnimalsClampsPagination() {
	suite.mockAccess.EXPECT().OrganizationOf(uint(1)).Return(uint(7), nil)
	suite.mockRepo.EXPECT().
		GetByOrganizationID(uint(7), service.MaxPageSize, 0).
		Return([]models.Animal{{BaseModel: models.BaseModel{ID: 1}, Name: "Rex", OrganizationID: 7}}, nil)

	animals, err := suite.animalService.List(1, -5, 1000)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), animals, 1)
	assert.Equal(suite.T(), "Rex", animals[0].Name)
}

// TestGetAnimalOtherOrganization tests that an animal outside the caller's organization is not found
func (suite *AnimalServiceTestSuite) TestGetAnimalOtherOrganization() {
	suite.mockAccess.EXPECT().Animal(uint(1), uint(5)).Return(nil, apperrors.ErrAnimalNotFound)

	response, err := suite.animalService.GetByID(1, 5)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAnimalNotFound)
}

// TestUpdateAnimal tests that update replaces descriptive fields but keeps owner and organization
func (suite *AnimalServiceTestSuite) TestUpdateAnimal() {
	existing := &models.Animal{
		BaseModel:      models.BaseModel{ID: 5},
		Name:           "Rex",
		Species:        "Dog",
		Sex:            models.AnimalSexMale,
		OwnerID:        2,
		OrganizationID: 7,
	}
	req := validAnimalRequest()

	suite.mockAccess.EXPECT().Animal(uint(1), uint(5)).Return(existing, nil)
	suite.mockRepo.EXPECT().Update(existing).Return(nil)

	response, err := suite.animalService.Update(1, 5, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Bella", response.Name)
	assert.Equal(suite.T(), uint(2), response.OwnerID)
	assert.Equal(suite.T(), uint(7), response.OrganizationID)
}

// TestDeleteAnimal tests deleting an animal
func (suite *AnimalServiceTestSuite) TestDeleteAnimal() {
	suite.mockAccess.EXPECT().Animal(uint(1), uint(5)).Return(&models.Animal{BaseModel: models.BaseModel{ID: 5}}, nil)
	suite.mockRepo.EXPECT().Delete(uint(5)).Return(nil)

	assert.NoError(suite.T(), suite.animalService.Delete(1, 5))
}

// TestDeleteAnimalVanished tests an animal removed between the check and the delete
func (suite *AnimalServiceTestSuite) TestDeleteAnimalVanished() {
	suite.mockAccess.EXPECT().Animal(uint(1), uint(5)).Return(&models.Animal{BaseModel: models.BaseModel{ID: 5}}, nil)
	suite.mockRepo.EXPECT().Delete(uint(5)).Return(gorm.ErrRecordNotFound)

	err := suite.animalService.Delete(1, 5)

	assert.ErrorIs(suite.T(), err, apperrors.ErrAnimalNotFound)
}

// TestDeleteAnimalRepositoryError tests that unexpected failures are wrapped
func (suite *AnimalServiceTestSuite) TestDeleteAnimalRepositoryError() {
	suite.mockAccess.EXPECT().Animal(uint(1), uint(5)).Return(&models.Animal{BaseModel: models.BaseModel{ID: 5}}, nil)
	suite.mockRepo.EXPECT().Delete(uint(5)).Return(errors.New("disk full"))

	err := suite.animalService.Delete(1, 5)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to delete animal")
}

// TestAnimalServiceTestSuite runs the test suite
func TestAnimalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnimalServiceTestSuite))
}
