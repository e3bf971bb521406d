package handlers_test

import (
	"net/http"
	"testing"

	"smart-erd-backend/internal/api/handlers"
	"smart-erd-backend/internal/database/models"
	apperrors "smart-erd-backend/internal/errors"
	"smart-erd-backend/internal/mocks"
	"smart-erd-backend/internal/service"
	"smart-erd-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// identityFor injects the requester identity the way the auth middleware does
func identityFor(loginID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("login_id", loginID)
		c.Next()
	}
}

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamServiceInterface
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.httpSuite = testutils.SetupHTTPTest()

	handler := handlers.NewTeamHandler(suite.mockService)
	teams := suite.httpSuite.Router.Group("/api/teams", identityFor("hong"))
	teams.POST("", handler.CreateTeam)
	teams.GET("", handler.GetMyTeams)
	teams.GET("/:teamId", handler.GetTeam)
	teams.DELETE("/:teamId", handler.DeleteTeam)
	teams.GET("/:teamId/members", handler.ListMembers)
	teams.POST("/:teamId/members", handler.AddMember)
	teams.PUT("/:teamId/members/:userId", handler.ChangeMemberRole)
	teams.DELETE("/:teamId/members/:userId", handler.RemoveMember)
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamHandlerTestSuite) TestCreateTeamCreated() {
	teamID := uuid.New()
	suite.mockService.EXPECT().
		Create("hong", gomock.Any()).
		Return(&service.TeamResponse{ID: teamID, Name: "Data Platform"}, nil)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/teams", service.CreateTeamRequest{Name: "Data Platform"})

	var resp service.TeamResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &resp)
	assert.Equal(suite.T(), teamID, resp.ID)
	assert.Equal(suite.T(), "Data Platform", resp.Name)
}

func (suite *TeamHandlerTestSuite) TestCreateTeamValidationError() {
	suite.mockService.EXPECT().
		Create("hong", gomock.Any()).
		Return(nil, apperrors.NewValidationError("Name", "required"))

	recorder := suite.httpSuite.MakeRequest("POST", "/api/teams", service.CreateTeamRequest{Name: ""})

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func (suite *TeamHandlerTestSuite) TestGetTeamForbiddenForNonMember() {
	teamID := uuid.New()
	suite.mockService.EXPECT().
		GetByID("hong", teamID).
		Return(nil, apperrors.ErrNotTeamMember)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/teams/"+teamID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "not a member")
}

func (suite *TeamHandlerTestSuite) TestGetTeamNotFound() {
	teamID := uuid.New()
	suite.mockService.EXPECT().
		GetByID("hong", teamID).
		Return(nil, apperrors.ErrTeamNotFound)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/teams/"+teamID.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

func (suite *TeamHandlerTestSuite) TestGetTeamInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/teams/not-a-uuid", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func (suite *TeamHandlerTestSuite) TestAddMemberConflict() {
	teamID := uuid.New()
	suite.mockService.EXPECT().
		AddMember("hong", teamID, gomock.Any()).
		Return(nil, apperrors.ErrMembershipExists)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/teams/"+teamID.String()+"/members",
		service.AddMemberRequest{LoginID: "lee", Role: models.TeamRoleMember})

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

func (suite *TeamHandlerTestSuite) TestAddMemberRequiresAdmin() {
	teamID := uuid.New()
	suite.mockService.EXPECT().
		AddMember("hong", teamID, gomock.Any()).
		Return(nil, apperrors.ErrAdminRequired)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/teams/"+teamID.String()+"/members",
		service.AddMemberRequest{LoginID: "lee", Role: models.TeamRoleMember})

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
}

func (suite *TeamHandlerTestSuite) TestRemoveMemberOwnerProtected() {
	teamID := uuid.New()
	userID := uuid.New()
	suite.mockService.EXPECT().
		RemoveMember("hong", teamID, userID).
		Return(apperrors.ErrOwnerImmutable)

	recorder := suite.httpSuite.MakeRequest("DELETE",
		"/api/teams/"+teamID.String()+"/members/"+userID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "owner")
}

func (suite *TeamHandlerTestSuite) TestRemoveMemberNoContent() {
	teamID := uuid.New()
	userID := uuid.New()
	suite.mockService.EXPECT().
		RemoveMember("hong", teamID, userID).
		Return(nil)

	recorder := suite.httpSuite.MakeRequest("DELETE",
		"/api/teams/"+teamID.String()+"/members/"+userID.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

func (suite *TeamHandlerTestSuite) TestChangeMemberRoleOK() {
	teamID := uuid.New()
	userID := uuid.New()
	suite.mockService.EXPECT().
		ChangeRole("hong", teamID, userID, gomock.Any()).
		Return(&service.TeamMemberResponse{TeamID: teamID, UserID: userID, Role: models.TeamRoleViewer}, nil)

	recorder := suite.httpSuite.MakeRequest("PUT",
		"/api/teams/"+teamID.String()+"/members/"+userID.String(),
		service.UpdateMemberRoleRequest{Role: models.TeamRoleViewer})

	var resp service.TeamMemberResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Equal(suite.T(), models.TeamRoleViewer, resp.Role)
}

func (suite *TeamHandlerTestSuite) TestListMembersOK() {
	teamID := uuid.New()
	suite.mockService.EXPECT().
		ListMembers("hong", teamID).
		Return([]service.TeamMemberResponse{
			{TeamID: teamID, LoginID: "hong", Role: models.TeamRoleAdmin},
			{TeamID: teamID, LoginID: "lee", Role: models.TeamRoleViewer},
		}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/teams/"+teamID.String()+"/members", nil)

	var resp []service.TeamMemberResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Len(suite.T(), resp, 2)
}

func (suite *TeamHandlerTestSuite) TestDeleteTeamForbidden() {
	teamID := uuid.New()
	suite.mockService.EXPECT().
		Delete("hong", teamID).
		Return(apperrors.NewAuthorizationError("only the team owner can delete the team"))

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/teams/"+teamID.String(), nil)

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
}

func (suite *TeamHandlerTestSuite) TestGetMyTeamsOK() {
	suite.mockService.EXPECT().
		GetMyTeams("hong").
		Return([]service.TeamResponse{{ID: uuid.New(), Name: "A"}}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/teams", nil)

	var resp []service.TeamResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Len(suite.T(), resp, 1)
}

// TestTeamHandlerTestSuite runs the test suite
func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
