package repository

import (
	"testing"
	"time"

	"trainit-backend/internal/database/models"
	"trainit-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PlanStepRepositoryTestSuite tests the PlanStepRepository and StepSessionNoteRepository
type PlanStepRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *PlanStepRepository
	noteRepo      *StepSessionNoteRepository
	factories     *testutils.FactorySet
	step          models.PlanStep
}

// SetupSuite runs before all tests in the suite
func (suite *PlanStepRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewPlanStepRepository(suite.baseTestSuite.DB)
	suite.noteRepo = NewStepSessionNoteRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *PlanStepRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *PlanStepRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	tenant, err := suite.factories.CreateTenantHierarchy(suite.baseTestSuite.DB)
	suite.Require().NoError(err)
	suite.step = tenant.Plan.Steps[0]
}

// TestUpdate tests updating a step
func (suite *PlanStepRepositoryTestSuite) TestUpdate() {
	step, err := suite.repo.GetByID(suite.step.ID)
	suite.Require().NoError(err)

	step.Name = "Lure with a target stick"
	step.Order = 7
	step.SetCompleted(true)
	suite.Require().NoError(suite.repo.Update(step))

	retrieved, err := suite.repo.GetByID(step.ID)
	suite.NoError(err)
	suite.Equal("Lure with a target stick", retrieved.Name)
	suite.Equal(7, retrieved.Order)
	suite.True(retrieved.Completed())
}

// TestMarkCompleteIsIdempotent tests that repeated completion leaves the step complete
func (suite *PlanStepRepositoryTestSuite) TestMarkCompleteIsIdempotent() {
	suite.Require().NoError(suite.repo.MarkComplete(suite.step.ID))
	suite.Require().NoError(suite.repo.MarkComplete(suite.step.ID))

	retrieved, err := suite.repo.GetByID(suite.step.ID)
	suite.NoError(err)
	suite.Equal(1, retrieved.IsComplete)

	suite.ErrorIs(suite.repo.MarkComplete(999999), gorm.ErrRecordNotFound)
}

// TestNotes tests creating, listing, updating and deleting session notes
func (suite *PlanStepRepositoryTestSuite) TestNotes() {
	first := suite.factories.Note.ForStep(suite.step.ID)
	suite.Require().NoError(suite.noteRepo.Create(first))
	suite.NotZero(first.Timestamp)

	second := suite.factories.Note.ForStep(suite.step.ID)
	second.Timestamp = first.Timestamp.Add(-time.Hour)
	suite.Require().NoError(suite.noteRepo.Create(second))

	notes, err := suite.noteRepo.GetByStepID(suite.step.ID)
	suite.NoError(err)
	suite.Require().Len(notes, 2)
	suite.Equal(second.ID, notes[0].ID)
	suite.Equal(first.ID, notes[1].ID)

	performed := models.NewDate(first.Timestamp)
	first.PerformedDate = &performed
	suite.Require().NoError(suite.noteRepo.Update(first))

	retrieved, err := suite.noteRepo.GetByID(first.ID)
	suite.NoError(err)
	suite.Require().NotNil(retrieved.PerformedDate)
	suite.Equal(performed.String(), retrieved.PerformedDate.String())

	suite.Require().NoError(suite.noteRepo.Delete(first.ID))
	_, err = suite.noteRepo.GetByID(first.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.ErrorIs(suite.noteRepo.Delete(first.ID), gorm.ErrRecordNotFound)
}

// TestDeleteRemovesNotes tests that deleting a step removes its notes
func (suite *PlanStepRepositoryTestSuite) TestDeleteRemovesNotes() {
	suite.Require().NoError(suite.noteRepo.Create(suite.factories.Note.ForStep(suite.step.ID)))
	suite.Require().NoError(suite.noteRepo.Create(suite.factories.Note.ForStep(suite.step.ID)))

	suite.Require().NoError(suite.repo.Delete(suite.step.ID))

	notes, err := suite.noteRepo.GetByStepID(suite.step.ID)
	suite.NoError(err)
	suite.Empty(notes)

	_, err = suite.repo.GetByID(suite.step.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestPlanStepRepositoryTestSuite runs the test suite
func TestPlanStepRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PlanStepRepositoryTestSuite))
}
