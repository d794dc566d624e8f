//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"hackathon-portal-backend/internal/database/models"
	"hackathon-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// SettingRepositoryTestSuite tests the SettingRepository and EditDeadlineRepository
type SettingRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	settings      *SettingRepository
	deadlines     *EditDeadlineRepository
}

// SetupSuite runs before all tests in the suite
func (suite *SettingRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.settings = NewSettingRepository(suite.baseTestSuite.DB)
	suite.deadlines = NewEditDeadlineRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *SettingRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *SettingRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *SettingRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestUpsertInsertsAndUpdates tests that Upsert handles both paths
func (suite *SettingRepositoryTestSuite) TestUpsertInsertsAndUpdates() {
	suite.Require().NoError(suite.settings.Upsert(models.SettingMaxTeams, 25))

	value, err := suite.settings.GetValue(models.SettingMaxTeams)
	suite.Require().NoError(err)
	suite.Equal(25, value)

	suite.Require().NoError(suite.settings.Upsert(models.SettingMaxTeams, 30))

	value, err = suite.settings.GetValue(models.SettingMaxTeams)
	suite.Require().NoError(err)
	suite.Equal(30, value)
}

// TestGetValueMissing tests lookup of an unknown setting
func (suite *SettingRepositoryTestSuite) TestGetValueMissing() {
	_, err := suite.settings.GetValue("no_such_setting")
	suite.Error(err)
}

// TestDeadlineUpsertAndLookup tests deadline persistence by field name
func (suite *SettingRepositoryTestSuite) TestDeadlineUpsertAndLookup() {
	date := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	suite.Require().NoError(suite.deadlines.Upsert(models.EditDeadlineTeamEditable, date))

	deadline, err := suite.deadlines.GetByField(models.EditDeadlineTeamEditable)
	suite.Require().NoError(err)
	suite.True(deadline.Date.Equal(date))

	// Moving the deadline keeps a single record per field
	moved := date.AddDate(0, 0, 7)
	suite.Require().NoError(suite.deadlines.Upsert(models.EditDeadlineTeamEditable, moved))

	all, err := suite.deadlines.GetAll()
	suite.Require().NoError(err)
	suite.Len(all, 1)
	suite.True(all[0].Date.Equal(moved))
}

// TestSettingRepositoryTestSuite runs the test suite
func TestSettingRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SettingRepositoryTestSuite))
}
