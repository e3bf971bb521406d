package service_test

import (
	"testing"

	"smart-erd-backend/internal/database/models"
	apperrors "smart-erd-backend/internal/errors"
	"smart-erd-backend/internal/mocks"
	"smart-erd-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TeamServiceTestSuite defines the test suite for TeamService
type TeamServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockUserRepo   *mocks.MockUserRepositoryInterface
	mockTeamRepo   *mocks.MockTeamRepositoryInterface
	mockMemberRepo *mocks.MockTeamMemberRepositoryInterface
	teamService    *service.TeamService
}

// SetupTest sets up the test suite
func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockTeamMemberRepositoryInterface(suite.ctrl)
	suite.teamService = service.NewTeamService(suite.mockUserRepo, suite.mockTeamRepo, suite.mockMemberRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamServiceTestSuite) user(loginID string) *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		LoginID:   loginID,
		Name:      "Test User",
	}
}

func (suite *TeamServiceTestSuite) team(ownerID uuid.UUID) *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Test Team",
		OwnerID:   ownerID,
	}
}

func (suite *TeamServiceTestSuite) membership(teamID, userID uuid.UUID, role models.TeamRole) *models.TeamMember {
	return &models.TeamMember{TeamID: teamID, UserID: userID, Role: role}
}

func (suite *TeamServiceTestSuite) TestCreateGrantsOwnerAdminMembership() {
	owner := suite.user("hong")

	suite.mockUserRepo.EXPECT().GetByLoginID("hong").Return(owner, nil)
	suite.mockTeamRepo.EXPECT().
		CreateWithOwner(gomock.Any(), gomock.Any()).
		DoAndReturn(func(team *models.Team, member *models.TeamMember) error {
			assert.Equal(suite.T(), owner.ID, team.OwnerID)
			assert.Equal(suite.T(), owner.ID, member.UserID)
			assert.Equal(suite.T(), models.TeamRoleAdmin, member.Role)
			team.ID = uuid.New()
			return nil
		})

	resp, err := suite.teamService.Create("hong", &service.CreateTeamRequest{Name: "Data Platform"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Data Platform", resp.Name)
	assert.Equal(suite.T(), owner.ID, resp.OwnerID)
}

func (suite *TeamServiceTestSuite) TestCreateRejectsEmptyName() {
	resp, err := suite.teamService.Create("hong", &service.CreateTeamRequest{Name: ""})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *TeamServiceTestSuite) TestGetByIDRejectsNonMember() {
	requester := suite.user("stranger")
	team := suite.team(uuid.New())

	suite.mockUserRepo.EXPECT().GetByLoginID("stranger").Return(requester, nil)
	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockMemberRepo.EXPECT().GetByTeamAndUser(team.ID, requester.ID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.teamService.GetByID("stranger", team.ID)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func (suite *TeamServiceTestSuite) TestGetByIDUnknownTeam() {
	requester := suite.user("hong")
	teamID := uuid.New()

	suite.mockUserRepo.EXPECT().GetByLoginID("hong").Return(requester, nil)
	suite.mockTeamRepo.EXPECT().GetByID(teamID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.teamService.GetByID("hong", teamID)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamNotFound)
}

func (suite *TeamServiceTestSuite) TestAddMemberRequiresAdmin() {
	requester := suite.user("kim")
	team := suite.team(uuid.New())

	suite.mockUserRepo.EXPECT().GetByLoginID("kim").Return(requester, nil)
	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockMemberRepo.EXPECT().GetByTeamAndUser(team.ID, requester.ID).
		Return(suite.membership(team.ID, requester.ID, models.TeamRoleMember), nil)

	resp, err := suite.teamService.AddMember("kim", team.ID, &service.AddMemberRequest{
		LoginID: "lee",
		Role:    models.TeamRoleViewer,
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAdminRequired)
}

func (suite *TeamServiceTestSuite) TestAddMemberDuplicateConflict() {
	requester := suite.user("hong")
	team := suite.team(requester.ID)
	target := suite.user("lee")

	suite.mockUserRepo.EXPECT().GetByLoginID("hong").Return(requester, nil)
	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockMemberRepo.EXPECT().GetByTeamAndUser(team.ID, requester.ID).
		Return(suite.membership(team.ID, requester.ID, models.TeamRoleAdmin), nil)
	suite.mockUserRepo.EXPECT().GetByLoginID("lee").Return(target, nil)
	suite.mockMemberRepo.EXPECT().ExistsByTeamAndUser(team.ID, target.ID).Return(true, nil)

	resp, err := suite.teamService.AddMember("hong", team.ID, &service.AddMemberRequest{
		LoginID: "lee",
		Role:    models.TeamRoleMember,
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsConflict(err))
}

// A concurrent invite can slip between the exists check and the insert; the
// database constraint is what surfaces the conflict then.
func (suite *TeamServiceTestSuite) TestAddMemberRacingDuplicateConflict() {
	requester := suite.user("hong")
	team := suite.team(requester.ID)
	target := suite.user("lee")

	suite.mockUserRepo.EXPECT().GetByLoginID("hong").Return(requester, nil)
	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockMemberRepo.EXPECT().GetByTeamAndUser(team.ID, requester.ID).
		Return(suite.membership(team.ID, requester.ID, models.TeamRoleAdmin), nil)
	suite.mockUserRepo.EXPECT().GetByLoginID("lee").Return(target, nil)
	suite.mockMemberRepo.EXPECT().ExistsByTeamAndUser(team.ID, target.ID).Return(false, nil)
	suite.mockMemberRepo.EXPECT().Create(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	resp, err := suite.teamService.AddMember("hong", team.ID, &service.AddMemberRequest{
		LoginID: "lee",
		Role:    models.TeamRoleMember,
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMembershipExists)
}

func (suite *TeamServiceTestSuite) TestAddMemberUnknownUser() {
	requester := suite.user("hong")
	team := suite.team(requester.ID)

	suite.mockUserRepo.EXPECT().GetByLoginID("hong").Return(requester, nil)
	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockMemberRepo.EXPECT().GetByTeamAndUser(team.ID, requester.ID).
		Return(suite.membership(team.ID, requester.ID, models.TeamRoleAdmin), nil)
	suite.mockUserRepo.EXPECT().GetByLoginID("ghost").Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.teamService.AddMember("hong", team.ID, &service.AddMemberRequest{
		LoginID: "ghost",
		Role:    models.TeamRoleMember,
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

func (suite *TeamServiceTestSuite) TestRemoveMemberProtectsOwner() {
	requester := suite.user("admin2")
	owner := suite.user("hong")
	team := suite.team(owner.ID)

	suite.mockUserRepo.EXPECT().GetByLoginID("admin2").Return(requester, nil)
	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockMemberRepo.EXPECT().GetByTeamAndUser(team.ID, requester.ID).
		Return(suite.membership(team.ID, requester.ID, models.TeamRoleAdmin), nil)

	err := suite.teamService.RemoveMember("admin2", team.ID, owner.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrOwnerImmutable)
	assert.True(suite.T(), apperrors.IsBusinessRule(err))
}

func (suite *TeamServiceTestSuite) TestRemoveMemberRequiresAdmin() {
	requester := suite.user("viewer")
	team := suite.team(uuid.New())

	suite.mockUserRepo.EXPECT().GetByLoginID("viewer").Return(requester, nil)
	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockMemberRepo.EXPECT().GetByTeamAndUser(team.ID, requester.ID).
		Return(suite.membership(team.ID, requester.ID, models.TeamRoleViewer), nil)

	err := suite.teamService.RemoveMember("viewer", team.ID, uuid.New())

	assert.ErrorIs(suite.T(), err, apperrors.ErrAdminRequired)
}

func (suite *TeamServiceTestSuite) TestRemoveMemberUnknownMembership() {
	requester := suite.user("hong")
	team := suite.team(requester.ID)
	targetID := uuid.New()

	suite.mockUserRepo.EXPECT().GetByLoginID("hong").Return(requester, nil)
	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockMemberRepo.EXPECT().GetByTeamAndUser(team.ID, requester.ID).
		Return(suite.membership(team.ID, requester.ID, models.TeamRoleAdmin), nil)
	suite.mockMemberRepo.EXPECT().GetByTeamAndUser(team.ID, targetID).Return(nil, gorm.ErrRecordNotFound)

	err := suite.teamService.RemoveMember("hong", team.ID, targetID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrMembershipNotFound)
}

func (suite *TeamServiceTestSuite) TestRemoveMemberSucceeds() {
	requester := suite.user("hong")
	team := suite.team(requester.ID)
	targetID := uuid.New()

	suite.mockUserRepo.EXPECT().GetByLoginID("hong").Return(requester, nil)
	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockMemberRepo.EXPECT().GetByTeamAndUser(team.ID, requester.ID).
		Return(suite.membership(team.ID, requester.ID, models.TeamRoleAdmin), nil)
	suite.mockMemberRepo.EXPECT().GetByTeamAndUser(team.ID, targetID).
		Return(suite.membership(team.ID, targetID, models.TeamRoleMember), nil)
	suite.mockMemberRepo.EXPECT().Delete(team.ID, targetID).Return(nil)

	err := suite.teamService.RemoveMember("hong", team.ID, targetID)

	assert.NoError(suite.T(), err)
}

func (suite *TeamServiceTestSuite) TestChangeRoleProtectsOwner() {
	requester := suite.user("hong")
	team := suite.team(requester.ID)

	suite.mockUserRepo.EXPECT().GetByLoginID("hong").Return(requester, nil)
	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockMemberRepo.EXPECT().GetByTeamAndUser(team.ID, requester.ID).
		Return(suite.membership(team.ID, requester.ID, models.TeamRoleAdmin), nil)

	resp, err := suite.teamService.ChangeRole("hong", team.ID, requester.ID, &service.UpdateMemberRoleRequest{
		Role: models.TeamRoleViewer,
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOwnerImmutable)
}

func (suite *TeamServiceTestSuite) TestChangeRoleUpdatesInPlace() {
	requester := suite.user("hong")
	team := suite.team(requester.ID)
	target := suite.user("lee")

	suite.mockUserRepo.EXPECT().GetByLoginID("hong").Return(requester, nil)
	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockMemberRepo.EXPECT().GetByTeamAndUser(team.ID, requester.ID).
		Return(suite.membership(team.ID, requester.ID, models.TeamRoleAdmin), nil)
	suite.mockMemberRepo.EXPECT().GetByTeamAndUser(team.ID, target.ID).
		Return(suite.membership(team.ID, target.ID, models.TeamRoleMember), nil)
	suite.mockMemberRepo.EXPECT().UpdateRole(team.ID, target.ID, models.TeamRoleViewer).Return(nil)
	suite.mockUserRepo.EXPECT().GetByID(target.ID).Return(target, nil)

	resp, err := suite.teamService.ChangeRole("hong", team.ID, target.ID, &service.UpdateMemberRoleRequest{
		Role: models.TeamRoleViewer,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.TeamRoleViewer, resp.Role)
	assert.Equal(suite.T(), "lee", resp.LoginID)
}

func (suite *TeamServiceTestSuite) TestChangeRoleRejectsUnknownRole() {
	resp, err := suite.teamService.ChangeRole("hong", uuid.New(), uuid.New(), &service.UpdateMemberRoleRequest{
		Role: "SUPERUSER",
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *TeamServiceTestSuite) TestDeleteRequiresOwner() {
	requester := suite.user("admin2")
	team := suite.team(uuid.New())

	suite.mockUserRepo.EXPECT().GetByLoginID("admin2").Return(requester, nil)
	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockMemberRepo.EXPECT().GetByTeamAndUser(team.ID, requester.ID).
		Return(suite.membership(team.ID, requester.ID, models.TeamRoleAdmin), nil)

	err := suite.teamService.Delete("admin2", team.ID)

	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func (suite *TeamServiceTestSuite) TestDeleteByOwner() {
	requester := suite.user("hong")
	team := suite.team(requester.ID)

	suite.mockUserRepo.EXPECT().GetByLoginID("hong").Return(requester, nil)
	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockMemberRepo.EXPECT().GetByTeamAndUser(team.ID, requester.ID).
		Return(suite.membership(team.ID, requester.ID, models.TeamRoleAdmin), nil)
	suite.mockTeamRepo.EXPECT().Delete(team.ID).Return(nil)

	err := suite.teamService.Delete("hong", team.ID)

	assert.NoError(suite.T(), err)
}

func (suite *TeamServiceTestSuite) TestListMembersIncludesRoles() {
	requester := suite.user("hong")
	team := suite.team(requester.ID)

	members := []models.TeamMember{
		{TeamID: team.ID, UserID: requester.ID, Role: models.TeamRoleAdmin, User: *requester},
		{TeamID: team.ID, UserID: uuid.New(), Role: models.TeamRoleViewer, User: *suite.user("lee")},
	}

	suite.mockUserRepo.EXPECT().GetByLoginID("hong").Return(requester, nil)
	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockMemberRepo.EXPECT().GetByTeamAndUser(team.ID, requester.ID).
		Return(&members[0], nil)
	suite.mockMemberRepo.EXPECT().GetByTeamID(team.ID).Return(members, nil)

	resp, err := suite.teamService.ListMembers("hong", team.ID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 2)
	assert.Equal(suite.T(), models.TeamRoleAdmin, resp[0].Role)
	assert.Equal(suite.T(), "hong", resp[0].LoginID)
	assert.Equal(suite.T(), models.TeamRoleViewer, resp[1].Role)
}

func (suite *TeamServiceTestSuite) TestGetMyTeams() {
	requester := suite.user("hong")
	teams := []models.Team{*suite.team(requester.ID), *suite.team(uuid.New())}

	suite.mockUserRepo.EXPECT().GetByLoginID("hong").Return(requester, nil)
	suite.mockTeamRepo.EXPECT().GetByUserID(requester.ID).Return(teams, nil)

	resp, err := suite.teamService.GetMyTeams("hong")

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 2)
}

// TestTeamServiceTestSuite runs the test suite
func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
