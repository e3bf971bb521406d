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

// DiagramServiceTestSuite defines the test suite for DiagramService
type DiagramServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockUserRepo    *mocks.MockUserRepositoryInterface
	mockTeamRepo    *mocks.MockTeamRepositoryInterface
	mockMemberRepo  *mocks.MockTeamMemberRepositoryInterface
	mockProjectRepo *mocks.MockProjectRepositoryInterface
	mockDiagramRepo *mocks.MockDiagramRepositoryInterface
	diagramService  *service.DiagramService

	requester *models.User
	team      *models.Team
	project   *models.Project
}

// SetupTest sets up the test suite
func (suite *DiagramServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockTeamMemberRepositoryInterface(suite.ctrl)
	suite.mockProjectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.mockDiagramRepo = mocks.NewMockDiagramRepositoryInterface(suite.ctrl)
	suite.diagramService = service.NewDiagramService(
		suite.mockUserRepo, suite.mockTeamRepo, suite.mockMemberRepo,
		suite.mockProjectRepo, suite.mockDiagramRepo, validator.New())

	suite.requester = &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, LoginID: "hong", Name: "Hong"}
	suite.team = &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Team", OwnerID: suite.requester.ID}
	suite.project = &models.Project{BaseModel: models.BaseModel{ID: uuid.New()}, TeamID: suite.team.ID, Name: "Project"}
}

// TearDownTest cleans up after each test
func (suite *DiagramServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DiagramServiceTestSuite) expectScope(role models.TeamRole) {
	suite.mockUserRepo.EXPECT().GetByLoginID("hong").Return(suite.requester, nil)
	suite.mockTeamRepo.EXPECT().GetByID(suite.team.ID).Return(suite.team, nil)
	suite.mockMemberRepo.EXPECT().GetByTeamAndUser(suite.team.ID, suite.requester.ID).
		Return(&models.TeamMember{TeamID: suite.team.ID, UserID: suite.requester.ID, Role: role}, nil)
}

func (suite *DiagramServiceTestSuite) TestCreateAsMember() {
	suite.expectScope(models.TeamRoleMember)
	suite.mockProjectRepo.EXPECT().GetByID(suite.project.ID).Return(suite.project, nil)
	suite.mockDiagramRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(d *models.Diagram) error {
		assert.Equal(suite.T(), suite.project.ID, d.ProjectID)
		d.ID = uuid.New()
		return nil
	})

	resp, err := suite.diagramService.Create("hong", suite.team.ID, suite.project.ID, &service.CreateDiagramRequest{
		Name:    "Order ERD",
		Content: `{"entities":[]}`,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Order ERD", resp.Name)
	assert.Equal(suite.T(), `{"entities":[]}`, resp.Content)
}

func (suite *DiagramServiceTestSuite) TestCreateRejectsViewer() {
	suite.expectScope(models.TeamRoleViewer)

	resp, err := suite.diagramService.Create("hong", suite.team.ID, suite.project.ID, &service.CreateDiagramRequest{
		Name: "Order ERD",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrReadOnlyRole)
}

// A project that belongs to another team must fail the scope check before
// any diagram is touched.
func (suite *DiagramServiceTestSuite) TestCreateCrossTeamProject() {
	suite.expectScope(models.TeamRoleMember)

	foreign := &models.Project{BaseModel: models.BaseModel{ID: uuid.New()}, TeamID: uuid.New()}
	suite.mockProjectRepo.EXPECT().GetByID(foreign.ID).Return(foreign, nil)

	resp, err := suite.diagramService.Create("hong", suite.team.ID, foreign.ID, &service.CreateDiagramRequest{
		Name: "Order ERD",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrProjectTeamMismatch)
}

func (suite *DiagramServiceTestSuite) TestGetByIDCrossProjectMismatch() {
	suite.expectScope(models.TeamRoleViewer)
	suite.mockProjectRepo.EXPECT().GetByID(suite.project.ID).Return(suite.project, nil)

	foreign := &models.Diagram{BaseModel: models.BaseModel{ID: uuid.New()}, ProjectID: uuid.New()}
	suite.mockDiagramRepo.EXPECT().GetByID(foreign.ID).Return(foreign, nil)

	resp, err := suite.diagramService.GetByID("hong", suite.team.ID, suite.project.ID, foreign.ID)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrDiagramScopeMismatch)
}

func (suite *DiagramServiceTestSuite) TestUpdateContentOverwrites() {
	suite.expectScope(models.TeamRoleMember)
	suite.mockProjectRepo.EXPECT().GetByID(suite.project.ID).Return(suite.project, nil)

	diagram := &models.Diagram{
		BaseModel: models.BaseModel{ID: uuid.New()},
		ProjectID: suite.project.ID,
		Name:      "Order ERD",
		Content:   `{"v":1}`,
	}
	suite.mockDiagramRepo.EXPECT().GetByID(diagram.ID).Return(diagram, nil)
	suite.mockDiagramRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(d *models.Diagram) error {
		assert.Equal(suite.T(), `{"v":2}`, d.Content)
		return nil
	})

	resp, err := suite.diagramService.UpdateContent("hong", suite.team.ID, suite.project.ID, diagram.ID,
		&service.UpdateDiagramContentRequest{Content: `{"v":2}`})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), `{"v":2}`, resp.Content)
}

func (suite *DiagramServiceTestSuite) TestUpdateContentRejectsViewer() {
	suite.expectScope(models.TeamRoleViewer)

	resp, err := suite.diagramService.UpdateContent("hong", suite.team.ID, suite.project.ID, uuid.New(),
		&service.UpdateDiagramContentRequest{Content: `{}`})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrReadOnlyRole)
}

func (suite *DiagramServiceTestSuite) TestListAsViewer() {
	suite.expectScope(models.TeamRoleViewer)
	suite.mockProjectRepo.EXPECT().GetByID(suite.project.ID).Return(suite.project, nil)

	diagrams := []models.Diagram{
		{BaseModel: models.BaseModel{ID: uuid.New()}, ProjectID: suite.project.ID, Name: "A"},
	}
	suite.mockDiagramRepo.EXPECT().GetByProjectID(suite.project.ID).Return(diagrams, nil)

	resp, err := suite.diagramService.List("hong", suite.team.ID, suite.project.ID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 1)
}

func (suite *DiagramServiceTestSuite) TestDeleteUnknownDiagram() {
	suite.expectScope(models.TeamRoleAdmin)
	suite.mockProjectRepo.EXPECT().GetByID(suite.project.ID).Return(suite.project, nil)

	diagramID := uuid.New()
	suite.mockDiagramRepo.EXPECT().GetByID(diagramID).Return(nil, gorm.ErrRecordNotFound)

	err := suite.diagramService.Delete("hong", suite.team.ID, suite.project.ID, diagramID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrDiagramNotFound)
}

// TestDiagramServiceTestSuite runs the test suite
func TestDiagramServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DiagramServiceTestSuite))
}
