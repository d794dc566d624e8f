package service_test

import (
	"testing"

	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/service"
	"hackathon-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// MentorServiceTestSuite exercises the read-only mentor catalog
type MentorServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	svc     *service.MentorService
	mentors *testutils.MentorFactory
}

func (suite *MentorServiceTestSuite) SetupTest() {
	suite.db = testutils.NewTestDB(suite.T())
	suite.svc = service.NewMentorService(suite.db)
	suite.mentors = testutils.NewMentorFactory()
}

func (suite *MentorServiceTestSuite) TestGetByID() {
	mentor := suite.mentors.Create()
	suite.Require().NoError(suite.db.Create(mentor).Error)

	resp, err := suite.svc.GetByID(mentor.ID)
	suite.Require().NoError(err)
	suite.Equal(mentor.FullName, resp.FullName)
	suite.Equal(mentor.Organization, resp.Organization)
}

func (suite *MentorServiceTestSuite) TestGetByIDNotFound() {
	_, err := suite.svc.GetByID(uuid.New())
	suite.Require().ErrorIs(err, apperrors.ErrMentorNotFound)
}

func (suite *MentorServiceTestSuite) TestListPaginates() {
	for i := 0; i < 5; i++ {
		suite.Require().NoError(suite.db.Create(suite.mentors.Create()).Error)
	}

	resp, err := suite.svc.List(1, 3)
	suite.Require().NoError(err)
	suite.Len(resp.Mentors, 3)
	suite.Equal(int64(5), resp.Total)

	resp, err = suite.svc.List(2, 3)
	suite.Require().NoError(err)
	suite.Len(resp.Mentors, 2)
}

func TestMentorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MentorServiceTestSuite))
}
