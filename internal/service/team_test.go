package service_test

import (
	"context"
	"testing"
	"time"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/service"
	"hackathon-portal-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamServiceTestSuite exercises the team rules against an in-memory database
type TeamServiceTestSuite struct {
	suite.Suite
	db    *gorm.DB
	svc   *service.TeamService
	users *testutils.UserFactory
	teams *testutils.TeamFactory
}

func (suite *TeamServiceTestSuite) SetupTest() {
	suite.db = testutils.NewTestDB(suite.T())
	suite.svc = service.NewTeamService(suite.db, validator.New(), nil)
	suite.users = testutils.NewUserFactory()
	suite.teams = testutils.NewTeamFactory()
	suite.seedSettings(2, 4, 2)
}

func (suite *TeamServiceTestSuite) seedSettings(minUsers, maxUsers, maxTeams int) {
	suite.db.Where("1 = 1").Delete(&models.Setting{})
	for _, setting := range testutils.SettingsFixture(minUsers, maxUsers, maxTeams) {
		suite.Require().NoError(suite.db.Create(&setting).Error)
	}
}

func (suite *TeamServiceTestSuite) seedTeamDeadline(date time.Time) {
	deadline := testutils.DeadlineFixture(models.EditDeadlineTeamEditable, date)
	suite.Require().NoError(suite.db.Create(&deadline).Error)
}

func (suite *TeamServiceTestSuite) createUser() *models.User {
	user := suite.users.Create()
	suite.Require().NoError(suite.db.Create(user).Error)
	return user
}

func (suite *TeamServiceTestSuite) createTeamWithMembers(confirmed bool, memberCount int) (*models.Team, []*models.User) {
	team := suite.teams.Create()
	team.Confirmed = confirmed
	suite.Require().NoError(suite.db.Create(team).Error)

	members := make([]*models.User, 0, memberCount)
	for i := 0; i < memberCount; i++ {
		user := suite.users.Create()
		user.TeamID = &team.ID
		user.IsCaptain = i == 0
		suite.Require().NoError(suite.db.Create(user).Error)
		members = append(members, user)
	}
	return team, members
}

func (suite *TeamServiceTestSuite) reloadTeam(id uuid.UUID) *models.Team {
	var team models.Team
	suite.Require().NoError(suite.db.First(&team, "id = ?", id).Error)
	return &team
}

func (suite *TeamServiceTestSuite) reloadUser(id uuid.UUID) *models.User {
	var user models.User
	suite.Require().NoError(suite.db.First(&user, "id = ?", id).Error)
	return &user
}

func (suite *TeamServiceTestSuite) TestCreateConfirmsTeamWhenSlotFree() {
	captain := suite.createUser()
	mate := suite.createUser()

	resp, err := suite.svc.Create(context.Background(), captain.ID, &service.CreateTeamRequest{
		Name:       "night shift",
		GithubLink: "https://github.com/night/shift",
		MemberIDs:  []uuid.UUID{mate.ID},
	})
	suite.Require().NoError(err)
	suite.True(resp.Confirmed)
	suite.Nil(resp.Ready)
	suite.Len(resp.Members, 2)

	suite.True(suite.reloadUser(captain.ID).IsCaptain)
	suite.False(suite.reloadUser(mate.ID).IsCaptain)
}

func (suite *TeamServiceTestSuite) TestCreateBelowMinimumStaysUnconfirmed() {
	captain := suite.createUser()

	resp, err := suite.svc.Create(context.Background(), captain.ID, &service.CreateTeamRequest{
		Name:       "solo",
		GithubLink: "https://github.com/solo/project",
		IsFull:     true,
	})
	suite.Require().NoError(err)
	suite.False(resp.Confirmed)
	suite.Nil(resp.Ready)
	suite.False(resp.IsFull, "a team without a confirmed slot cannot be full")
}

func (suite *TeamServiceTestSuite) TestCreateQueuesWhenSlotsExhausted() {
	suite.createTeamWithMembers(true, 2)
	suite.createTeamWithMembers(true, 2)

	captain := suite.createUser()
	mate := suite.createUser()

	resp, err := suite.svc.Create(context.Background(), captain.ID, &service.CreateTeamRequest{
		Name:       "late arrivals",
		GithubLink: "https://github.com/late/arrivals",
		MemberIDs:  []uuid.UUID{mate.ID},
	})
	suite.Require().NoError(err)
	suite.False(resp.Confirmed)
	suite.Require().NotNil(resp.Ready)
}

func (suite *TeamServiceTestSuite) TestCreateRejectsOversizedRosterBeforeWindowCheck() {
	// Past deadline must not mask the size error
	suite.seedTeamDeadline(time.Now().AddDate(0, 0, -2))

	captain := suite.createUser()
	memberIDs := make([]uuid.UUID, 0, 4)
	for i := 0; i < 4; i++ {
		memberIDs = append(memberIDs, suite.createUser().ID)
	}

	_, err := suite.svc.Create(context.Background(), captain.ID, &service.CreateTeamRequest{
		Name:       "crowd",
		GithubLink: "https://github.com/crowd/project",
		MemberIDs:  memberIDs,
	})
	suite.Require().ErrorIs(err, apperrors.ErrTooManyMembers)
}

func (suite *TeamServiceTestSuite) TestCreateRejectedAfterDeadline() {
	suite.seedTeamDeadline(time.Now().AddDate(0, 0, -2))

	captain := suite.createUser()
	_, err := suite.svc.Create(context.Background(), captain.ID, &service.CreateTeamRequest{
		Name:       "too late",
		GithubLink: "https://github.com/too/late",
	})
	suite.Require().Error(err)
	suite.True(apperrors.IsValidation(err))
}

func (suite *TeamServiceTestSuite) TestCreateRejectsActorAlreadyInTeam() {
	_, members := suite.createTeamWithMembers(true, 2)

	_, err := suite.svc.Create(context.Background(), members[0].ID, &service.CreateTeamRequest{
		Name:       "second team",
		GithubLink: "https://github.com/second/team",
	})
	suite.Require().ErrorIs(err, apperrors.ErrAlreadyHasTeam)
}

func (suite *TeamServiceTestSuite) TestCreateRejectsMemberFromAnotherTeam() {
	_, members := suite.createTeamWithMembers(true, 2)
	captain := suite.createUser()

	_, err := suite.svc.Create(context.Background(), captain.ID, &service.CreateTeamRequest{
		Name:       "poachers",
		GithubLink: "https://github.com/poachers/project",
		MemberIDs:  []uuid.UUID{members[1].ID},
	})
	suite.Require().ErrorIs(err, apperrors.ErrUserAlreadyInTeam)
}

func (suite *TeamServiceTestSuite) TestCreateRejectsMalformedGithubLink() {
	captain := suite.createUser()

	_, err := suite.svc.Create(context.Background(), captain.ID, &service.CreateTeamRequest{
		Name:       "nolink",
		GithubLink: "https://gitlab.com/owner/repo",
	})
	suite.Require().ErrorIs(err, apperrors.ErrInvalidGithubLink)
}

func (suite *TeamServiceTestSuite) TestUpdateRequiresCaptain() {
	team, members := suite.createTeamWithMembers(true, 2)
	name := "renamed"

	_, err := suite.svc.Update(context.Background(), members[1].ID, team.ID, &service.UpdateTeamRequest{
		Name: &name,
	})
	suite.Require().ErrorIs(err, apperrors.ErrNotTeamCaptain)
}

func (suite *TeamServiceTestSuite) TestUpdateFieldsPastDeadlineAllowedWithoutRosterChange() {
	suite.seedTeamDeadline(time.Now().AddDate(0, 0, -2))
	team, members := suite.createTeamWithMembers(true, 2)
	name := "renamed"

	resp, err := suite.svc.Update(context.Background(), members[0].ID, team.ID, &service.UpdateTeamRequest{
		Name: &name,
	})
	suite.Require().NoError(err)
	suite.Equal("renamed", resp.Name)
}

func (suite *TeamServiceTestSuite) TestUpdateRosterPastDeadlineRejected() {
	suite.seedTeamDeadline(time.Now().AddDate(0, 0, -2))
	team, members := suite.createTeamWithMembers(true, 2)
	joiner := suite.createUser()
	roster := []uuid.UUID{members[0].ID, members[1].ID, joiner.ID}

	_, err := suite.svc.Update(context.Background(), members[0].ID, team.ID, &service.UpdateTeamRequest{
		MemberIDs: &roster,
	})
	suite.Require().Error(err)
	suite.True(apperrors.IsValidation(err))
}

func (suite *TeamServiceTestSuite) TestUpdateRejectsDuplicateRoster() {
	suite.seedSettings(3, 4, 2)
	team, members := suite.createTeamWithMembers(false, 2)

	// Listing a member twice must not inflate the count past the minimum
	full := true
	roster := []uuid.UUID{members[0].ID, members[0].ID, members[1].ID}
	_, err := suite.svc.Update(context.Background(), members[0].ID, team.ID, &service.UpdateTeamRequest{
		MemberIDs: &roster,
		IsFull:    &full,
	})
	suite.Require().ErrorIs(err, apperrors.ErrDuplicateMember)

	reloaded := suite.reloadTeam(team.ID)
	suite.False(reloaded.Confirmed)
	suite.False(reloaded.IsFull)
}

func (suite *TeamServiceTestSuite) TestCreateRejectsDuplicateRoster() {
	suite.seedSettings(3, 4, 2)
	captain := suite.createUser()
	mate := suite.createUser()

	_, err := suite.svc.Create(context.Background(), captain.ID, &service.CreateTeamRequest{
		Name:       "echo chamber",
		GithubLink: "https://github.com/echo/chamber",
		MemberIDs:  []uuid.UUID{mate.ID, mate.ID},
	})
	suite.Require().ErrorIs(err, apperrors.ErrDuplicateMember)
}

func (suite *TeamServiceTestSuite) TestCreateRejectsDuplicateTeamName() {
	existing, _ := suite.createTeamWithMembers(false, 1)
	captain := suite.createUser()

	_, err := suite.svc.Create(context.Background(), captain.ID, &service.CreateTeamRequest{
		Name:       existing.Name,
		GithubLink: "https://github.com/copy/cat",
	})
	suite.Require().ErrorIs(err, apperrors.ErrTeamExists)
}

func (suite *TeamServiceTestSuite) TestUpdateRenameToExistingNameRejected() {
	other, _ := suite.createTeamWithMembers(false, 1)
	team, members := suite.createTeamWithMembers(true, 2)

	_, err := suite.svc.Update(context.Background(), members[0].ID, team.ID, &service.UpdateTeamRequest{
		Name: &other.Name,
	})
	suite.Require().ErrorIs(err, apperrors.ErrTeamExists)
}

func (suite *TeamServiceTestSuite) TestUpdateShrinkingConfirmedTeamPromotesQueued() {
	queuedAt := time.Now().Add(-time.Hour)
	queued := suite.teams.Queued(queuedAt)
	suite.Require().NoError(suite.db.Create(queued).Error)
	for i := 0; i < 2; i++ {
		user := suite.users.Create()
		user.TeamID = &queued.ID
		suite.Require().NoError(suite.db.Create(user).Error)
	}

	team, members := suite.createTeamWithMembers(true, 2)
	roster := []uuid.UUID{members[0].ID}

	resp, err := suite.svc.Update(context.Background(), members[0].ID, team.ID, &service.UpdateTeamRequest{
		MemberIDs: &roster,
	})
	suite.Require().NoError(err)
	suite.False(resp.Confirmed)

	promoted := suite.reloadTeam(queued.ID)
	suite.True(promoted.Confirmed)
	suite.Nil(promoted.Ready)

	removed := suite.reloadUser(members[1].ID)
	suite.Nil(removed.TeamID)
}

func (suite *TeamServiceTestSuite) TestUpdatePromotesEarliestQueuedFirst() {
	older := suite.teams.Queued(time.Now().Add(-2 * time.Hour))
	newer := suite.teams.Queued(time.Now().Add(-time.Hour))
	suite.Require().NoError(suite.db.Create(older).Error)
	suite.Require().NoError(suite.db.Create(newer).Error)

	team, members := suite.createTeamWithMembers(true, 2)
	roster := []uuid.UUID{members[0].ID}

	_, err := suite.svc.Update(context.Background(), members[0].ID, team.ID, &service.UpdateTeamRequest{
		MemberIDs: &roster,
	})
	suite.Require().NoError(err)

	suite.True(suite.reloadTeam(older.ID).Confirmed)
	suite.False(suite.reloadTeam(newer.ID).Confirmed)
}

func (suite *TeamServiceTestSuite) TestUpdateIsFullOnlyWhenConfirmed() {
	suite.createTeamWithMembers(true, 2)
	suite.createTeamWithMembers(true, 2)

	// Queued team cannot declare itself full
	queued := suite.teams.Queued(time.Now())
	suite.Require().NoError(suite.db.Create(queued).Error)
	captain := suite.users.Captain(queued.ID)
	suite.Require().NoError(suite.db.Create(captain).Error)
	mate := suite.users.Create()
	mate.TeamID = &queued.ID
	suite.Require().NoError(suite.db.Create(mate).Error)

	full := true
	resp, err := suite.svc.Update(context.Background(), captain.ID, queued.ID, &service.UpdateTeamRequest{
		IsFull: &full,
	})
	suite.Require().NoError(err)
	suite.False(resp.Confirmed)
	suite.False(resp.IsFull)
}

func (suite *TeamServiceTestSuite) TestUpdateWritesAuditLog() {
	team, members := suite.createTeamWithMembers(true, 2)
	name := "audited"

	_, err := suite.svc.Update(context.Background(), members[0].ID, team.ID, &service.UpdateTeamRequest{
		Name: &name,
	})
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&models.AuditLog{}).
		Where("user_id = ?", members[0].ID).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *TeamServiceTestSuite) TestDeleteReleasesMembersAndPromotes() {
	queued := suite.teams.Queued(time.Now().Add(-time.Minute))
	suite.Require().NoError(suite.db.Create(queued).Error)

	team, members := suite.createTeamWithMembers(true, 2)

	suite.Require().NoError(suite.svc.Delete(members[0].ID, team.ID))

	for _, member := range members {
		reloaded := suite.reloadUser(member.ID)
		suite.Nil(reloaded.TeamID)
		suite.False(reloaded.IsCaptain)
	}
	suite.True(suite.reloadTeam(queued.ID).Confirmed)
}

func (suite *TeamServiceTestSuite) TestDeleteRejectedAfterDeadline() {
	suite.seedTeamDeadline(time.Now().AddDate(0, 0, -2))
	team, members := suite.createTeamWithMembers(true, 2)

	err := suite.svc.Delete(members[0].ID, team.ID)
	suite.Require().Error(err)
	suite.True(apperrors.IsValidation(err))
}

func (suite *TeamServiceTestSuite) TestChangeCaptainSwapsFlags() {
	team, members := suite.createTeamWithMembers(true, 3)

	suite.Require().NoError(suite.svc.ChangeCaptain(members[0].ID, team.ID, members[2].ID))

	suite.False(suite.reloadUser(members[0].ID).IsCaptain)
	suite.True(suite.reloadUser(members[2].ID).IsCaptain)
}

func (suite *TeamServiceTestSuite) TestChangeCaptainAllowedAfterDeadline() {
	suite.seedTeamDeadline(time.Now().AddDate(0, 0, -2))
	team, members := suite.createTeamWithMembers(true, 2)

	suite.Require().NoError(suite.svc.ChangeCaptain(members[0].ID, team.ID, members[1].ID))
	suite.True(suite.reloadUser(members[1].ID).IsCaptain)
}

func (suite *TeamServiceTestSuite) TestChangeCaptainRejectsOutsider() {
	team, members := suite.createTeamWithMembers(true, 2)
	outsider := suite.createUser()

	err := suite.svc.ChangeCaptain(members[0].ID, team.ID, outsider.ID)
	suite.Require().ErrorIs(err, apperrors.ErrCaptainNotInTeam)
}

func (suite *TeamServiceTestSuite) TestRemoveMemberDemotesAndPromotes() {
	queued := suite.teams.Queued(time.Now().Add(-time.Minute))
	suite.Require().NoError(suite.db.Create(queued).Error)

	team, members := suite.createTeamWithMembers(true, 2)

	suite.Require().NoError(suite.svc.RemoveMember(members[1].ID, members[1].ID))

	suite.Nil(suite.reloadUser(members[1].ID).TeamID)
	demoted := suite.reloadTeam(team.ID)
	suite.False(demoted.Confirmed)
	suite.False(demoted.IsFull)
	suite.True(suite.reloadTeam(queued.ID).Confirmed)
}

func (suite *TeamServiceTestSuite) TestRemoveMemberOnlySelf() {
	_, members := suite.createTeamWithMembers(true, 3)

	err := suite.svc.RemoveMember(members[1].ID, members[2].ID)
	suite.Require().ErrorIs(err, apperrors.ErrNotResourceOwner)
}

func (suite *TeamServiceTestSuite) TestRemoveMemberRejectedAfterDeadline() {
	suite.seedTeamDeadline(time.Now().AddDate(0, 0, -2))
	_, members := suite.createTeamWithMembers(true, 2)

	err := suite.svc.RemoveMember(members[1].ID, members[1].ID)
	suite.Require().ErrorIs(err, apperrors.ErrEditWindowClosed)
}

func (suite *TeamServiceTestSuite) TestRemoveMemberWithoutTeam() {
	user := suite.createUser()

	err := suite.svc.RemoveMember(user.ID, user.ID)
	suite.Require().ErrorIs(err, apperrors.ErrUserNotInTeam)
}

func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
