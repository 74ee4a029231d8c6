package testutils

import (
	"testing"

	"trainit-backend/internal/database/models"

	"github.com/stretchr/testify/suite"
)

type BaseTestSuiteTestSuite struct {
	suite.Suite
	base      *BaseTestSuite
	factories *FactorySet
}

func (s *BaseTestSuiteTestSuite) SetupSuite() {
	s.base = SetupTestSuite(s.T())
	s.factories = NewFactorySet()
}

func (s *BaseTestSuiteTestSuite) TearDownSuite() {
	s.base.TeardownTestSuite()
}

func (s *BaseTestSuiteTestSuite) TestSharedConfig() {
	s.Equal("test", s.base.Config.Environment)
	s.Equal(TestJWTSecret, s.base.Config.JWTSecret)
	s.NotEmpty(s.base.Config.DatabaseURL)
}

func (s *BaseTestSuiteTestSuite) TestCleanTestDB() {
	org := s.factories.Organization.Create()
	s.Require().NoError(s.base.DB.Create(org).Error)

	user := s.factories.User.WithOrganization(org.ID)
	s.Require().NoError(s.base.DB.Create(user).Error)

	s.base.CleanTestDB()

	var orgs, users int64
	s.base.DB.Model(&models.Organization{}).Count(&orgs)
	s.base.DB.Model(&models.User{}).Count(&users)
	s.Zero(orgs)
	s.Zero(users)
}

func TestBaseTestSuite(t *testing.T) {
	suite.Run(t, new(BaseTestSuiteTestSuite))
}
