package repository

import (
	"testing"

	"trainit-backend/internal/database/models"
	"trainit-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// AnimalRepositoryTestSuite tests the AnimalRepository
type AnimalRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AnimalRepository
	factories     *testutils.FactorySet
	tenant        *testutils.Tenant
}

// SetupSuite runs before all tests in the suite
func (suite *AnimalRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewAnimalRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *AnimalRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AnimalRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	tenant, err := suite.factories.CreateTenantHierarchy(suite.baseTestSuite.DB)
	suite.Require().NoError(err)
	suite.tenant = tenant
}

// TestCreateAndGet tests creating and retrieving an animal
func (suite *AnimalRepositoryTestSuite) TestCreateAndGet() {
	animal := suite.factories.Animal.WithOwner(suite.tenant.User)
	animal.Sex = models.AnimalSexFemale
	animal.Age = nil

	suite.Require().NoError(suite.repo.Create(animal))
	suite.NotZero(animal.ID)

	retrieved, err := suite.repo.GetByID(animal.ID)
	suite.NoError(err)
	suite.Equal(animal.Name, retrieved.Name)
	suite.Equal(models.AnimalSexFemale, retrieved.Sex)
	suite.Nil(retrieved.Age)
	suite.Equal(suite.tenant.Organization.ID, retrieved.OrganizationID)
	suite.Equal(suite.tenant.User.ID, retrieved.OwnerID)
}

// TestGetByOrganizationID tests that listing is scoped to one organization and paginated
func (suite *AnimalRepositoryTestSuite) TestGetByOrganizationID() {
	for i := 0; i < 3; i++ {
		suite.Require().NoError(suite.repo.Create(suite.factories.Animal.WithOwner(suite.tenant.User)))
	}

	other, err := suite.factories.CreateTenantHierarchy(suite.baseTestSuite.DB)
	suite.Require().NoError(err)

	animals, err := suite.repo.GetByOrganizationID(suite.tenant.Organization.ID, 100, 0)
	suite.NoError(err)
	suite.Len(animals, 4)
	for _, a := range animals {
		suite.Equal(suite.tenant.Organization.ID, a.OrganizationID)
		suite.NotEqual(other.Animal.ID, a.ID)
	}

	page, err := suite.repo.GetByOrganizationID(suite.tenant.Organization.ID, 2, 3)
	suite.NoError(err)
	suite.Len(page, 1)
}

// TestUpdate tests replacing an animal's fields
func (suite *AnimalRepositoryTestSuite) TestUpdate() {
	animal := suite.tenant.Animal
	animal.Name = "Renamed"
	animal.Location = nil

	suite.Require().NoError(suite.repo.Update(animal))

	retrieved, err := suite.repo.GetByID(animal.ID)
	suite.NoError(err)
	suite.Equal("Renamed", retrieved.Name)
	suite.Nil(retrieved.Location)
}

// TestDeleteCascades tests that deleting an animal removes its plans, steps and notes and detaches its logs
func (suite *AnimalRepositoryTestSuite) TestDeleteCascades() {
	db := suite.baseTestSuite.DB
	step := suite.tenant.Plan.Steps[0]
	suite.Require().NoError(db.Create(suite.factories.Note.ForStep(step.ID)).Error)

	log := suite.factories.TimeLog.ForUser(suite.tenant.User.ID, 15)
	log.AnimalID = &suite.tenant.Animal.ID
	suite.Require().NoError(db.Create(log).Error)

	suite.Require().NoError(suite.repo.Delete(suite.tenant.Animal.ID))

	_, err := suite.repo.GetByID(suite.tenant.Animal.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	var plans, steps, notes int64
	db.Model(&models.TrainingPlan{}).Where("animal_id = ?", suite.tenant.Animal.ID).Count(&plans)
	db.Model(&models.PlanStep{}).Where("plan_id = ?", suite.tenant.Plan.ID).Count(&steps)
	db.Model(&models.StepSessionNote{}).Where("step_id = ?", step.ID).Count(&notes)
	suite.Zero(plans)
	suite.Zero(steps)
	suite.Zero(notes)

	var kept models.TimeLog
	suite.Require().NoError(db.First(&kept, log.ID).Error)
	suite.Nil(kept.AnimalID)
}

// TestDeleteNotFound tests deleting a non-existent animal
func (suite *AnimalRepositoryTestSuite) TestDeleteNotFound() {
	err := suite.repo.Delete(999999)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestAnimalRepositoryTestSuite runs the test suite
func TestAnimalRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AnimalRepositoryTestSuite))
}
