package repository

import (
	"testing"

	"trainit-backend/internal/database/models"
	"trainit-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TrainingPlanRepositoryTestSuite tests the TrainingPlanRepository
type TrainingPlanRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TrainingPlanRepository
	factories     *testutils.FactorySet
	tenant        *testutils.Tenant
}

// SetupSuite runs before all tests in the suite
func (suite *TrainingPlanRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTrainingPlanRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TrainingPlanRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TrainingPlanRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	tenant, err := suite.factories.CreateTenantHierarchy(suite.baseTestSuite.DB)
	suite.Require().NoError(err)
	suite.tenant = tenant
}

// TestCreateWithSteps tests creating a plan together with its steps
func (suite *TrainingPlanRepositoryTestSuite) TestCreateWithSteps() {
	plan := suite.factories.TrainingPlan.ForAnimal(suite.tenant.Animal.ID)

	suite.Require().NoError(suite.repo.Create(plan))

	suite.NotZero(plan.ID)
	suite.Len(plan.Steps, 3)
	for _, step := range plan.Steps {
		suite.NotZero(step.ID)
		suite.Equal(plan.ID, step.PlanID)
		suite.False(step.Completed())
	}
}

// TestCreateWithoutSteps tests that an empty step list is accepted
func (suite *TrainingPlanRepositoryTestSuite) TestCreateWithoutSteps() {
	plan := &models.TrainingPlan{Name: "Recall", AnimalID: suite.tenant.Animal.ID, Steps: []models.PlanStep{}}

	suite.Require().NoError(suite.repo.Create(plan))

	retrieved, err := suite.repo.GetByID(plan.ID)
	suite.NoError(err)
	suite.Empty(retrieved.Steps)
}

// TestGetByIDOrdersSteps tests that steps come back sorted by order
func (suite *TrainingPlanRepositoryTestSuite) TestGetByIDOrdersSteps() {
	retrieved, err := suite.repo.GetByID(suite.tenant.Plan.ID)

	suite.NoError(err)
	suite.Require().Len(retrieved.Steps, 3)
	suite.Equal(1, retrieved.Steps[0].Order)
	suite.Equal(2, retrieved.Steps[1].Order)
	suite.Equal(3, retrieved.Steps[2].Order)
	suite.Equal("Lure into position", retrieved.Steps[0].Name)
	suite.Require().NotNil(retrieved.StartedDate)
	suite.Equal("2024-01-15", retrieved.StartedDate.String())
}

// TestGetByIDNotFound tests retrieving a non-existent plan
func (suite *TrainingPlanRepositoryTestSuite) TestGetByIDNotFound() {
	plan, err := suite.repo.GetByID(999999)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(plan)
}

// TestGetByAnimalAndOrganization tests the list queries
func (suite *TrainingPlanRepositoryTestSuite) TestGetByAnimalAndOrganization() {
	suite.Require().NoError(suite.repo.Create(suite.factories.TrainingPlan.ForAnimal(suite.tenant.Animal.ID)))

	second := suite.factories.Animal.WithOwner(suite.tenant.User)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(second).Error)
	suite.Require().NoError(suite.repo.Create(suite.factories.TrainingPlan.ForAnimal(second.ID)))

	_, err := suite.factories.CreateTenantHierarchy(suite.baseTestSuite.DB)
	suite.Require().NoError(err)

	byAnimal, err := suite.repo.GetByAnimalID(suite.tenant.Animal.ID)
	suite.NoError(err)
	suite.Len(byAnimal, 2)

	byOrg, err := suite.repo.GetByOrganizationID(suite.tenant.Organization.ID)
	suite.NoError(err)
	suite.Len(byOrg, 3)
	for _, plan := range byOrg {
		suite.Len(plan.Steps, 3)
	}
}

// TestUpdate tests that updating a plan leaves its steps untouched
func (suite *TrainingPlanRepositoryTestSuite) TestUpdate() {
	plan, err := suite.repo.GetByID(suite.tenant.Plan.ID)
	suite.Require().NoError(err)

	criteria := "5 of 5 correct"
	plan.Criteria = &criteria
	plan.Steps[0].Name = "changed through plan"
	suite.Require().NoError(suite.repo.Update(plan))

	retrieved, err := suite.repo.GetByID(plan.ID)
	suite.NoError(err)
	suite.Equal(criteria, *retrieved.Criteria)
	suite.Equal("Lure into position", retrieved.Steps[0].Name)
}

// TestDeleteCascades tests that deleting a plan removes its steps and their notes
func (suite *TrainingPlanRepositoryTestSuite) TestDeleteCascades() {
	db := suite.baseTestSuite.DB
	for _, step := range suite.tenant.Plan.Steps {
		suite.Require().NoError(db.Create(suite.factories.Note.ForStep(step.ID)).Error)
	}

	suite.Require().NoError(suite.repo.Delete(suite.tenant.Plan.ID))

	var steps, notes int64
	db.Model(&models.PlanStep{}).Where("plan_id = ?", suite.tenant.Plan.ID).Count(&steps)
	db.Model(&models.StepSessionNote{}).Count(&notes)
	suite.Zero(steps)
	suite.Zero(notes)

	_, err := suite.repo.GetByID(suite.tenant.Plan.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	suite.ErrorIs(suite.repo.Delete(suite.tenant.Plan.ID), gorm.ErrRecordNotFound)
}

// TestTrainingPlanRepositoryTestSuite runs the test suite
func TestTrainingPlanRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TrainingPlanRepositoryTestSuite))
}
