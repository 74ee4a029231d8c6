package service_test

import (
	"errors"
	"testing"
	"time"

	"trainit-backend/internal/database/models"
	apperrors "trainit-backend/internal/errors"
	"trainit-backend/internal/mocks"
	"trainit-backend/internal/repository"
	"trainit-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TimeLogServiceTestSuite defines the test suite for TimeLogService
type TimeLogServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockTimeLogRepositoryInterface
	mockAccess     *mocks.MockOwnershipVerifierInterface
	timeLogService *service.TimeLogService
}

// SetupTest sets up the test suite
func (suite *TimeLogServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockTimeLogRepositoryInterface(suite.ctrl)
	suite.mockAccess = mocks.NewMockOwnershipVerifierInterface(suite.ctrl)
	suite.timeLogService = service.NewTimeLogService(suite.mockRepo, suite.mockAccess, service.NewValidator())
}

// TearDownTest cleans up after each test
func (suite *TimeLogServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateTimeLog tests logging time without an animal
func (suite *TimeLogServiceTestSuite) TestCreateTimeLog() {
	req := &service.CreateTimeLogRequest{Duration: floatPtr(25.5), Notes: strPtr("Recall at the park")}

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(log *models.TimeLog) error {
			assert.Equal(suite.T(), uint(1), log.UserID)
			assert.Nil(suite.T(), log.AnimalID)
			log.ID = 50
			return nil
		})

	response, err := suite.timeLogService.Create(1, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), uint(50), response.ID)
	assert.Equal(suite.T(), 25.5, response.Duration)
	assert.WithinDuration(suite.T(), time.Now().UTC(), response.Timestamp, time.Minute)
}

// TestCreateTimeLogForAnimal tests that the referenced animal must belong to the caller's organization
func (suite *TimeLogServiceTestSuite) TestCreateTimeLogForAnimal() {
	req := &service.CreateTimeLogRequest{Duration: floatPtr(10), AnimalID: uintPtr(10)}

	suite.mockAccess.EXPECT().Animal(uint(1), uint(10)).Return(&models.Animal{BaseModel: models.BaseModel{ID: 10}}, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	response, err := suite.timeLogService.Create(1, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), uint(10), *response.AnimalID)
}

// TestCreateTimeLogForeignAnimal tests logging against an animal of another organization
func (suite *TimeLogServiceTestSuite) TestCreateTimeLogForeignAnimal() {
	req := &service.CreateTimeLogRequest{Duration: floatPtr(10), AnimalID: uintPtr(10)}

	suite.mockAccess.EXPECT().Animal(uint(1), uint(10)).Return(nil, apperrors.ErrAnimalNotFound)

	_, err := suite.timeLogService.Create(1, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrAnimalNotFound)
}

// TestCreateTimeLogValidation tests that duration is required and non-negative
func (suite *TimeLogServiceTestSuite) TestCreateTimeLogValidation() {
	_, err := suite.timeLogService.Create(1, &service.CreateTimeLogRequest{})
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "duration")

	_, err = suite.timeLogService.Create(1, &service.CreateTimeLogRequest{Duration: floatPtr(-1)})
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestListTimeLogs tests that only the caller's logs are requested
func (suite *TimeLogServiceTestSuite) TestListTimeLogs() {
	suite.mockRepo.EXPECT().GetByUserID(uint(1), service.DefaultTimeLogLimit, 0).Return([]models.TimeLog{
		{BaseModel: models.BaseModel{ID: 2}, UserID: 1, Duration: 15},
		{BaseModel: models.BaseModel{ID: 1}, UserID: 1, Duration: 30},
	}, nil)

	logs, err := suite.timeLogService.List(1, 0, service.DefaultTimeLogLimit)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), logs, 2)
	assert.Equal(suite.T(), uint(2), logs[0].ID)
}

// TestStats tests the seven day window passed to the repository
func (suite *TimeLogServiceTestSuite) TestStats() {
	suite.mockRepo.EXPECT().
		GetStatsByUserID(uint(1), gomock.Any()).
		DoAndReturn(func(_ uint, since time.Time) (*repository.TimeLogStats, error) {
			assert.WithinDuration(suite.T(), time.Now().UTC().Add(-7*24*time.Hour), since, time.Minute)
			return &repository.TimeLogStats{TotalSessions: 3, TotalTime: 90, ThisWeekTime: 45}, nil
		})

	stats, err := suite.timeLogService.Stats(1)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(3), stats.TotalSessions)
	assert.Equal(suite.T(), 90.0, stats.TotalTime)
	assert.Equal(suite.T(), 45.0, stats.ThisWeekTime)
}

// TestStatsRepositoryError tests that stats failures are wrapped
func (suite *TimeLogServiceTestSuite) TestStatsRepositoryError() {
	suite.mockRepo.EXPECT().GetStatsByUserID(uint(1), gomock.Any()).Return(nil, errors.New("timeout"))

	_, err := suite.timeLogService.Stats(1)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to get time log stats")
}

// TestTimeLogServiceTestSuite runs the test suite
func TestTimeLogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TimeLogServiceTestSuite))
}
