package repository

import (
	"testing"
	"time"

	"trainit-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// TimeLogRepositoryTestSuite tests the TimeLogRepository
type TimeLogRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TimeLogRepository
	factories     *testutils.FactorySet
	tenant        *testutils.Tenant
}

// SetupSuite runs before all tests in the suite
func (suite *TimeLogRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTimeLogRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TimeLogRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TimeLogRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	tenant, err := suite.factories.CreateTenantHierarchy(suite.baseTestSuite.DB)
	suite.Require().NoError(err)
	suite.tenant = tenant
}

// TestCreateStampsTimestamp tests that a new log gets the current time
func (suite *TimeLogRepositoryTestSuite) TestCreateStampsTimestamp() {
	log := suite.factories.TimeLog.ForUser(suite.tenant.User.ID, 20)

	suite.Require().NoError(suite.repo.Create(log))

	suite.NotZero(log.ID)
	suite.WithinDuration(time.Now(), log.Timestamp, time.Minute)
}

// TestGetByUserIDNewestFirst tests ordering, pagination and user scoping
func (suite *TimeLogRepositoryTestSuite) TestGetByUserIDNewestFirst() {
	now := time.Now().UTC()
	for i := 0; i < 3; i++ {
		log := suite.factories.TimeLog.ForUser(suite.tenant.User.ID, float64(10*(i+1)))
		log.Timestamp = now.Add(time.Duration(-i) * time.Hour)
		suite.Require().NoError(suite.repo.Create(log))
	}

	other, err := suite.factories.CreateTenantHierarchy(suite.baseTestSuite.DB)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Create(suite.factories.TimeLog.ForUser(other.User.ID, 99)))

	logs, err := suite.repo.GetByUserID(suite.tenant.User.ID, 10, 0)
	suite.NoError(err)
	suite.Require().Len(logs, 3)
	suite.Equal(10.0, logs[0].Duration)
	suite.Equal(30.0, logs[2].Duration)

	page, err := suite.repo.GetByUserID(suite.tenant.User.ID, 1, 1)
	suite.NoError(err)
	suite.Require().Len(page, 1)
	suite.Equal(20.0, page[0].Duration)
}

// TestGetStatsByUserID tests the totals and the time logged since a cutoff
func (suite *TimeLogRepositoryTestSuite) TestGetStatsByUserID() {
	now := time.Now().UTC()

	recent := suite.factories.TimeLog.ForUser(suite.tenant.User.ID, 30)
	recent.Timestamp = now.Add(-24 * time.Hour)
	suite.Require().NoError(suite.repo.Create(recent))

	old := suite.factories.TimeLog.ForUser(suite.tenant.User.ID, 45.5)
	old.Timestamp = now.Add(-10 * 24 * time.Hour)
	suite.Require().NoError(suite.repo.Create(old))

	stats, err := suite.repo.GetStatsByUserID(suite.tenant.User.ID, now.Add(-7*24*time.Hour))

	suite.NoError(err)
	suite.Equal(int64(2), stats.TotalSessions)
	suite.InDelta(75.5, stats.TotalTime, 0.001)
	suite.InDelta(30.0, stats.ThisWeekTime, 0.001)
}

// TestGetStatsByUserIDEmpty tests stats for a user without logs
func (suite *TimeLogRepositoryTestSuite) TestGetStatsByUserIDEmpty() {
	stats, err := suite.repo.GetStatsByUserID(suite.tenant.User.ID, time.Now().UTC().Add(-7*24*time.Hour))

	suite.NoError(err)
	suite.Zero(stats.TotalSessions)
	suite.Zero(stats.TotalTime)
	suite.Zero(stats.ThisWeekTime)
}

// TestTimeLogRepositoryTestSuite runs the test suite
func TestTimeLogRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TimeLogRepositoryTestSuite))
}
