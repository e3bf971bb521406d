package repository

import (
	"testing"

	"smart-erd-backend/internal/database/models"
	"smart-erd-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRepository
	memberRepo    *TeamMemberRepository
	userRepo      *UserRepository
	users         *testutils.UserFactory
	teams         *testutils.TeamFactory
	memberships   *testutils.TeamMemberFactory
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.memberRepo = NewTeamMemberRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.users = testutils.NewUserFactory()
	suite.teams = testutils.NewTeamFactory()
	suite.memberships = testutils.NewTeamMemberFactory()
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

// createUser persists a fresh user and returns it
func (suite *TeamRepositoryTestSuite) createUser() *models.User {
	user := suite.users.Create()
	suite.Require().NoError(suite.userRepo.Create(user))
	return user
}

// TestCreateWithOwner tests that the team and the owner membership are
// created together
func (suite *TeamRepositoryTestSuite) TestCreateWithOwner() {
	owner := suite.createUser()
	team := suite.teams.Create(owner.ID)
	membership := &models.TeamMember{UserID: owner.ID, Role: models.TeamRoleAdmin}

	err := suite.repo.CreateWithOwner(team, membership)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, team.ID)
	suite.Equal(team.ID, membership.TeamID)

	stored, err := suite.memberRepo.GetByTeamAndUser(team.ID, owner.ID)
	suite.NoError(err)
	suite.Equal(models.TeamRoleAdmin, stored.Role)
}

// TestGetByUserID tests listing only the teams the user belongs to
func (suite *TeamRepositoryTestSuite) TestGetByUserID() {
	owner := suite.createUser()
	outsider := suite.createUser()

	first := suite.teams.WithName(owner.ID, "Data Platform")
	suite.NoError(suite.repo.CreateWithOwner(first, &models.TeamMember{UserID: owner.ID, Role: models.TeamRoleAdmin}))
	second := suite.teams.WithName(outsider.ID, "Payments")
	suite.NoError(suite.repo.CreateWithOwner(second, &models.TeamMember{UserID: outsider.ID, Role: models.TeamRoleAdmin}))

	teams, err := suite.repo.GetByUserID(owner.ID)

	suite.NoError(err)
	suite.Len(teams, 1)
	suite.Equal("Data Platform", teams[0].Name)
}

// TestGetByIDNotFound tests retrieving a nonexistent team
func (suite *TeamRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDeleteCascadesMemberships tests that deleting a team removes its
// memberships
func (suite *TeamRepositoryTestSuite) TestDeleteCascadesMemberships() {
	owner := suite.createUser()
	member := suite.createUser()
	team := suite.teams.Create(owner.ID)
	suite.NoError(suite.repo.CreateWithOwner(team, &models.TeamMember{UserID: owner.ID, Role: models.TeamRoleAdmin}))
	suite.NoError(suite.memberRepo.Create(suite.memberships.Create(team.ID, member.ID, models.TeamRoleMember)))

	err := suite.repo.Delete(team.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(team.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	members, err := suite.memberRepo.GetByTeamID(team.ID)
	suite.NoError(err)
	suite.Empty(members)
}

// TestTeamRepositoryTestSuite runs the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
