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
)

// DictionaryServiceTestSuite covers the term and domain services together
// since they share the team dictionary.
type DictionaryServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockUserRepo   *mocks.MockUserRepositoryInterface
	mockTeamRepo   *mocks.MockTeamRepositoryInterface
	mockMemberRepo *mocks.MockTeamMemberRepositoryInterface
	mockTermRepo   *mocks.MockTermRepositoryInterface
	mockDomainRepo *mocks.MockDomainRepositoryInterface
	termService    *service.TermService
	domainService  *service.DomainService

	requester *models.User
	team      *models.Team
}

// SetupTest sets up the test suite
func (suite *DictionaryServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockTeamMemberRepositoryInterface(suite.ctrl)
	suite.mockTermRepo = mocks.NewMockTermRepositoryInterface(suite.ctrl)
	suite.mockDomainRepo = mocks.NewMockDomainRepositoryInterface(suite.ctrl)

	v := validator.New()
	suite.termService = service.NewTermService(
		suite.mockUserRepo, suite.mockTeamRepo, suite.mockMemberRepo, suite.mockTermRepo, suite.mockDomainRepo, v)
	suite.domainService = service.NewDomainService(
		suite.mockUserRepo, suite.mockTeamRepo, suite.mockMemberRepo, suite.mockDomainRepo, suite.mockTermRepo, v)

	suite.requester = &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, LoginID: "hong", Name: "Hong"}
	suite.team = &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Team", OwnerID: suite.requester.ID}
}

// TearDownTest cleans up after each test
func (suite *DictionaryServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DictionaryServiceTestSuite) expectScope(role models.TeamRole) {
	suite.mockUserRepo.EXPECT().GetByLoginID("hong").Return(suite.requester, nil)
	suite.mockTeamRepo.EXPECT().GetByID(suite.team.ID).Return(suite.team, nil)
	suite.mockMemberRepo.EXPECT().GetByTeamAndUser(suite.team.ID, suite.requester.ID).
		Return(&models.TeamMember{TeamID: suite.team.ID, UserID: suite.requester.ID, Role: role}, nil)
}

func (suite *DictionaryServiceTestSuite) TestCreateTermWithoutDomain() {
	suite.expectScope(models.TeamRoleMember)
	suite.mockTermRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(t *models.Term) error {
		assert.Equal(suite.T(), suite.team.ID, t.TeamID)
		assert.Nil(suite.T(), t.DomainID)
		t.ID = uuid.New()
		return nil
	})

	resp, err := suite.termService.Create("hong", suite.team.ID, &service.CreateTermRequest{
		LogicalName:  "Customer",
		PhysicalName: "customer",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Customer", resp.LogicalName)
	assert.Nil(suite.T(), resp.DomainID)
}

func (suite *DictionaryServiceTestSuite) TestCreateTermWithDomain() {
	suite.expectScope(models.TeamRoleMember)

	domain := &models.Domain{BaseModel: models.BaseModel{ID: uuid.New()}, TeamID: suite.team.ID}
	suite.mockDomainRepo.EXPECT().GetByID(domain.ID).Return(domain, nil)
	suite.mockTermRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.termService.Create("hong", suite.team.ID, &service.CreateTermRequest{
		LogicalName:  "Amount",
		PhysicalName: "amount",
		DomainID:     &domain.ID,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.ID, *resp.DomainID)
}

func (suite *DictionaryServiceTestSuite) TestCreateTermRejectsForeignDomain() {
	suite.expectScope(models.TeamRoleMember)

	foreign := &models.Domain{BaseModel: models.BaseModel{ID: uuid.New()}, TeamID: uuid.New()}
	suite.mockDomainRepo.EXPECT().GetByID(foreign.ID).Return(foreign, nil)

	resp, err := suite.termService.Create("hong", suite.team.ID, &service.CreateTermRequest{
		LogicalName:  "Amount",
		PhysicalName: "amount",
		DomainID:     &foreign.ID,
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrDomainTeamMismatch)
}

func (suite *DictionaryServiceTestSuite) TestCreateTermRejectsViewer() {
	suite.expectScope(models.TeamRoleViewer)

	resp, err := suite.termService.Create("hong", suite.team.ID, &service.CreateTermRequest{
		LogicalName:  "Customer",
		PhysicalName: "customer",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrReadOnlyRole)
}

func (suite *DictionaryServiceTestSuite) TestUpdateTermCrossTeamMismatch() {
	suite.expectScope(models.TeamRoleMember)

	foreign := &models.Term{BaseModel: models.BaseModel{ID: uuid.New()}, TeamID: uuid.New()}
	suite.mockTermRepo.EXPECT().GetByID(foreign.ID).Return(foreign, nil)

	resp, err := suite.termService.Update("hong", suite.team.ID, foreign.ID, &service.UpdateTermRequest{
		LogicalName:  "Customer",
		PhysicalName: "customer",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTermTeamMismatch)
}

func (suite *DictionaryServiceTestSuite) TestDeleteTerm() {
	suite.expectScope(models.TeamRoleMember)

	term := &models.Term{BaseModel: models.BaseModel{ID: uuid.New()}, TeamID: suite.team.ID}
	suite.mockTermRepo.EXPECT().GetByID(term.ID).Return(term, nil)
	suite.mockTermRepo.EXPECT().Delete(term.ID).Return(nil)

	err := suite.termService.Delete("hong", suite.team.ID, term.ID)

	assert.NoError(suite.T(), err)
}

func (suite *DictionaryServiceTestSuite) TestListTermsAsViewer() {
	suite.expectScope(models.TeamRoleViewer)

	terms := []models.Term{{BaseModel: models.BaseModel{ID: uuid.New()}, TeamID: suite.team.ID, LogicalName: "Customer"}}
	suite.mockTermRepo.EXPECT().GetByTeamID(suite.team.ID).Return(terms, nil)

	resp, err := suite.termService.List("hong", suite.team.ID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 1)
}

func (suite *DictionaryServiceTestSuite) TestCreateDomain() {
	suite.expectScope(models.TeamRoleMember)
	suite.mockDomainRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.domainService.Create("hong", suite.team.ID, &service.CreateDomainRequest{
		LogicalName:  "Money",
		PhysicalType: "NUMERIC(18,2)",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Money", resp.LogicalName)
	assert.Equal(suite.T(), "NUMERIC(18,2)", resp.PhysicalType)
}

func (suite *DictionaryServiceTestSuite) TestUpdateDomain() {
	suite.expectScope(models.TeamRoleMember)

	domain := &models.Domain{BaseModel: models.BaseModel{ID: uuid.New()}, TeamID: suite.team.ID, LogicalName: "Money", PhysicalType: "NUMERIC(10,0)"}
	suite.mockDomainRepo.EXPECT().GetByID(domain.ID).Return(domain, nil)
	suite.mockDomainRepo.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := suite.domainService.Update("hong", suite.team.ID, domain.ID, &service.UpdateDomainRequest{
		LogicalName:  "Money",
		PhysicalType: "NUMERIC(18,2)",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "NUMERIC(18,2)", resp.PhysicalType)
}

func (suite *DictionaryServiceTestSuite) TestDeleteDomainInUse() {
	suite.expectScope(models.TeamRoleMember)

	domain := &models.Domain{BaseModel: models.BaseModel{ID: uuid.New()}, TeamID: suite.team.ID}
	suite.mockDomainRepo.EXPECT().GetByID(domain.ID).Return(domain, nil)
	suite.mockTermRepo.EXPECT().CountByDomainID(domain.ID).Return(int64(3), nil)

	err := suite.domainService.Delete("hong", suite.team.ID, domain.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrDomainInUse)
	assert.True(suite.T(), apperrors.IsBusinessRule(err))
}

func (suite *DictionaryServiceTestSuite) TestDeleteUnusedDomain() {
	suite.expectScope(models.TeamRoleMember)

	domain := &models.Domain{BaseModel: models.BaseModel{ID: uuid.New()}, TeamID: suite.team.ID}
	suite.mockDomainRepo.EXPECT().GetByID(domain.ID).Return(domain, nil)
	suite.mockTermRepo.EXPECT().CountByDomainID(domain.ID).Return(int64(0), nil)
	suite.mockDomainRepo.EXPECT().Delete(domain.ID).Return(nil)

	err := suite.domainService.Delete("hong", suite.team.ID, domain.ID)

	assert.NoError(suite.T(), err)
}

func (suite *DictionaryServiceTestSuite) TestDeleteDomainCrossTeamMismatch() {
	suite.expectScope(models.TeamRoleAdmin)

	foreign := &models.Domain{BaseModel: models.BaseModel{ID: uuid.New()}, TeamID: uuid.New()}
	suite.mockDomainRepo.EXPECT().GetByID(foreign.ID).Return(foreign, nil)

	err := suite.domainService.Delete("hong", suite.team.ID, foreign.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrDomainTeamMismatch)
}

func (suite *DictionaryServiceTestSuite) TestDomainValidationBounds() {
	tooLong := make([]byte, 51)
	for i := range tooLong {
		tooLong[i] = 'x'
	}

	resp, err := suite.domainService.Create("hong", suite.team.ID, &service.CreateDomainRequest{
		LogicalName:  "Money",
		PhysicalType: string(tooLong),
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestDictionaryServiceTestSuite runs the test suite
func TestDictionaryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DictionaryServiceTestSuite))
}
