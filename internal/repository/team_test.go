//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"hackathon-portal-backend/internal/database/models"
	"hackathon-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRepository
	teams         *testutils.TeamFactory
	users         *testutils.UserFactory
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.teams = testutils.NewTeamFactory()
	suite.users = testutils.NewUserFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TeamRepositoryTestSuite) createTeam(team *models.Team) *models.Team {
	suite.Require().NoError(suite.baseTestSuite.DB.Create(team).Error)
	return team
}

// TestCreateAndGetByID tests basic persistence
func (suite *TeamRepositoryTestSuite) TestCreateAndGetByID() {
	team := suite.teams.Create()
	suite.Require().NoError(suite.repo.Create(team))

	retrieved, err := suite.repo.GetByID(team.ID)
	suite.Require().NoError(err)
	suite.Equal(team.Name, retrieved.Name)
	suite.Equal(team.GithubLink, retrieved.GithubLink)
	suite.False(retrieved.Confirmed)
}

// TestGetByIDNotFound tests retrieval of a missing team
func (suite *TeamRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(uuid.New())
	suite.Error(err)
}

// TestGetWithMembers tests that members come back with the team
func (suite *TeamRepositoryTestSuite) TestGetWithMembers() {
	team := suite.createTeam(suite.teams.Confirmed())
	captain := suite.users.Captain(team.ID)
	member := suite.users.WithTeam(team.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(captain).Error)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(member).Error)

	retrieved, err := suite.repo.GetWithMembers(team.ID)
	suite.Require().NoError(err)
	suite.Len(retrieved.Members, 2)
}

// TestGetAll tests pagination and total count
func (suite *TeamRepositoryTestSuite) TestGetAll() {
	for i := 0; i < 5; i++ {
		suite.createTeam(suite.teams.Create())
	}

	teams, total, err := suite.repo.GetAll(3, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(teams, 3)

	teams, total, err = suite.repo.GetAll(3, 3)
	suite.Require().NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(teams, 2)
}

// TestCountConfirmed tests that only confirmed teams count against the slot limit
func (suite *TeamRepositoryTestSuite) TestCountConfirmed() {
	suite.createTeam(suite.teams.Confirmed())
	suite.createTeam(suite.teams.Confirmed())
	suite.createTeam(suite.teams.Create())
	suite.createTeam(suite.teams.Queued(time.Now()))

	count, err := suite.repo.CountConfirmed()
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)
}

// TestNextQueued tests FIFO ordering of the ready queue
func (suite *TeamRepositoryTestSuite) TestNextQueued() {
	now := time.Now()
	second := suite.createTeam(suite.teams.Queued(now.Add(-time.Hour)))
	first := suite.createTeam(suite.teams.Queued(now.Add(-2 * time.Hour)))
	suite.createTeam(suite.teams.Confirmed())

	next, err := suite.repo.NextQueued(now)
	suite.Require().NoError(err)
	suite.Require().NotNil(next)
	suite.Equal(first.ID, next.ID)

	// Promote the first and the second becomes next in line
	first.Ready = nil
	first.Confirmed = true
	suite.Require().NoError(suite.repo.Update(first))

	next, err = suite.repo.NextQueued(now)
	suite.Require().NoError(err)
	suite.Require().NotNil(next)
	suite.Equal(second.ID, next.ID)
}

// TestNextQueuedSkipsFutureEntries tests that a future enqueue time is not eligible
func (suite *TeamRepositoryTestSuite) TestNextQueuedSkipsFutureEntries() {
	now := time.Now()
	suite.createTeam(suite.teams.Queued(now.Add(time.Hour)))

	next, err := suite.repo.NextQueued(now)
	suite.Require().NoError(err)
	suite.Nil(next)
}

// TestNextQueuedEmpty tests the empty-queue case
func (suite *TeamRepositoryTestSuite) TestNextQueuedEmpty() {
	next, err := suite.repo.NextQueued(time.Now())
	suite.Require().NoError(err)
	suite.Nil(next)
}

// TestDelete tests team removal
func (suite *TeamRepositoryTestSuite) TestDelete() {
	team := suite.createTeam(suite.teams.Create())

	suite.Require().NoError(suite.repo.Delete(team.ID))

	_, err := suite.repo.GetByID(team.ID)
	suite.Error(err)
}

// TestTeamRepositoryTestSuite runs the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
