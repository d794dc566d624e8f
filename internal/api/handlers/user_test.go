package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"hackathon-portal-backend/internal/api/handlers"
	"hackathon-portal-backend/internal/auth"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/mocks"
	"hackathon-portal-backend/internal/service"
	"hackathon-portal-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockUserService *mocks.MockUserServiceInterface
	mockTeamService *mocks.MockTeamServiceInterface
	handler         *handlers.UserHandler
	httpSuite       *testutils.HTTPTestSuite
	actorID         uuid.UUID
}

// SetupTest sets up the test suite
func (suite *UserHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserService = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.mockTeamService = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.handler = handlers.NewUserHandler(suite.mockUserService, suite.mockTeamService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.actorID = uuid.New()

	authed := func(c *gin.Context) {
		c.Set(auth.ContextUserID, suite.actorID.String())
		c.Next()
	}

	users := suite.httpSuite.Router.Group("/users")
	{
		users.POST("", suite.handler.CreateUser)
		users.GET("", suite.handler.ListUsers)
		users.GET("/:id", suite.handler.GetUser)
		users.PATCH("/:id", authed, suite.handler.UpdateUser)
		users.DELETE("/:id", authed, suite.handler.DeleteUser)
		users.POST("/:id/leave_team", authed, suite.handler.LeaveTeam)
		users.POST("/forgotten_password", suite.handler.ForgottenPassword)
		users.POST("/change_password", suite.handler.ChangePassword)
		users.POST("/confirm_email", suite.handler.ConfirmEmail)
	}
}

// TearDownTest cleans up after each test
func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateUser tests the CreateUser handler
func (suite *UserHandlerTestSuite) TestCreateUser() {
	suite.T().Run("Success", func(t *testing.T) {
		userID := uuid.New()
		requestBody := map[string]interface{}{
			"first_name": "Dana",
			"last_name":  "Cole",
			"email":      "dana@example.com",
			"password":   "hunter2hunter2",
		}

		expectedResponse := &service.UserResponse{
			ID:        userID,
			FirstName: "Dana",
			LastName:  "Cole",
			Email:     "dana@example.com",
			IsActive:  false,
		}

		suite.mockUserService.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/users", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.UserResponse
		assert.NoError(t, testutils.DecodeResponse(recorder, &response))
		assert.Equal(t, "dana@example.com", response.Email)
		assert.False(t, response.IsActive)
	})

	suite.T().Run("DuplicateEmail", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"first_name": "Dana",
			"last_name":  "Cole",
			"email":      "dana@example.com",
			"password":   "hunter2hunter2",
		}

		suite.mockUserService.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrUserExists).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/users", requestBody)
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	suite.T().Run("RegistrationClosed", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"first_name":  "Dana",
			"last_name":   "Cole",
			"email":       "dana2@example.com",
			"password":    "hunter2hunter2",
			"tshirt_size": "m",
		}

		suite.mockUserService.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.RegistrationClosedError("2026-08-01")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/users", requestBody)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestGetUser tests the GetUser handler
func (suite *UserHandlerTestSuite) TestGetUser() {
	suite.T().Run("Success", func(t *testing.T) {
		userID := uuid.New()

		suite.mockUserService.EXPECT().
			GetByID(userID).
			Return(&service.UserResponse{ID: userID, FirstName: "Dana"}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/users/%s", userID), nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		userID := uuid.New()

		suite.mockUserService.EXPECT().
			GetByID(userID).
			Return(nil, apperrors.ErrUserNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/users/%s", userID), nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestUpdateUser tests the UpdateUser handler
func (suite *UserHandlerTestSuite) TestUpdateUser() {
	suite.T().Run("Success", func(t *testing.T) {
		userID := uuid.New()
		requestBody := map[string]interface{}{"first_name": "Daniela"}

		suite.mockUserService.EXPECT().
			Update(suite.actorID, userID, gomock.Any()).
			Return(&service.UserResponse{ID: userID, FirstName: "Daniela"}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PATCH", fmt.Sprintf("/users/%s", userID), requestBody)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("NotOwner", func(t *testing.T) {
		userID := uuid.New()

		suite.mockUserService.EXPECT().
			Update(suite.actorID, userID, gomock.Any()).
			Return(nil, apperrors.ErrNotResourceOwner).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PATCH", fmt.Sprintf("/users/%s", userID), map[string]interface{}{
			"first_name": "Mallory",
		})
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	suite.T().Run("FieldFrozen", func(t *testing.T) {
		userID := uuid.New()

		suite.mockUserService.EXPECT().
			Update(suite.actorID, userID, gomock.Any()).
			Return(nil, apperrors.FieldFrozenError("tshirt_size", "2026-08-01")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PATCH", fmt.Sprintf("/users/%s", userID), map[string]interface{}{
			"tshirt_size": "xl",
		})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestDeleteUser tests the DeleteUser handler
func (suite *UserHandlerTestSuite) TestDeleteUser() {
	suite.T().Run("Success", func(t *testing.T) {
		userID := uuid.New()

		suite.mockUserService.EXPECT().
			Delete(suite.actorID, userID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/users/%s", userID), nil)
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})
}

// TestLeaveTeam tests the LeaveTeam handler
func (suite *UserHandlerTestSuite) TestLeaveTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		userID := uuid.New()

		suite.mockTeamService.EXPECT().
			RemoveMember(suite.actorID, userID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/users/%s/leave_team", userID), nil)
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("NoTeam", func(t *testing.T) {
		userID := uuid.New()

		suite.mockTeamService.EXPECT().
			RemoveMember(suite.actorID, userID).
			Return(apperrors.ErrUserNotInTeam).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/users/%s/leave_team", userID), nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("WindowClosed", func(t *testing.T) {
		userID := uuid.New()

		suite.mockTeamService.EXPECT().
			RemoveMember(suite.actorID, userID).
			Return(apperrors.ErrEditWindowClosed).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/users/%s/leave_team", userID), nil)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

// TestPasswordFlows tests the token driven account endpoints
func (suite *UserHandlerTestSuite) TestPasswordFlows() {
	suite.T().Run("ForgottenPassword", func(t *testing.T) {
		suite.mockUserService.EXPECT().
			ForgottenPassword(gomock.Any(), "dana@example.com").
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/users/forgotten_password", map[string]interface{}{
			"email": "dana@example.com",
		})
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("ForgottenPasswordUnknownEmail", func(t *testing.T) {
		suite.mockUserService.EXPECT().
			ForgottenPassword(gomock.Any(), "ghost@example.com").
			Return(apperrors.ErrUserNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/users/forgotten_password", map[string]interface{}{
			"email": "ghost@example.com",
		})
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	suite.T().Run("ChangePassword", func(t *testing.T) {
		suite.mockUserService.EXPECT().
			ChangePassword("reset-token", "new-password-123").
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/users/change_password", map[string]interface{}{
			"token":    "reset-token",
			"password": "new-password-123",
		})
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("ChangePasswordBadToken", func(t *testing.T) {
		suite.mockUserService.EXPECT().
			ChangePassword("stale-token", "new-password-123").
			Return(apperrors.ErrInvalidToken).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/users/change_password", map[string]interface{}{
			"token":    "stale-token",
			"password": "new-password-123",
		})
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	suite.T().Run("ConfirmEmail", func(t *testing.T) {
		suite.mockUserService.EXPECT().
			ConfirmEmail("verify-token").
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/users/confirm_email", map[string]interface{}{
			"token": "verify-token",
		})
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})
}

// TestUserHandlerTestSuite runs the test suite
func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
