package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/lexora/lexora-backend/mocks"
	"github.com/lexora/lexora-backend/models"
	"github.com/lexora/lexora-backend/utils"
)

type CaseWorkflowUsecaseTestSuite struct {
	suite.Suite
	repository      *mocks.CaseRepository
	executorFactory *mocks.ExecutorFactory
	executor        *mocks.Executor

	caseId string
	now    time.Time
}

func (suite *CaseWorkflowUsecaseTestSuite) SetupTest() {
	suite.executor = new(mocks.Executor)
	suite.executorFactory = &mocks.ExecutorFactory{ExecMock: suite.executor}
	suite.repository = new(mocks.CaseRepository)

	suite.caseId = "8711b1b9-8bf0-4458-90b5-7bcbe5f2b426"
	suite.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func (suite *CaseWorkflowUsecaseTestSuite) makeUsecase() *CaseWorkflowUseCase {
	return &CaseWorkflowUseCase{
		executorFactory: suite.executorFactory,
		repository:      suite.repository,
	}
}

func (suite *CaseWorkflowUsecaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.repository.AssertExpectations(t)
	suite.executorFactory.AssertExpectations(t)
	suite.executor.AssertExpectations(t)
}

func (suite *CaseWorkflowUsecaseTestSuite) fixtureCase() models.LegalCase {
	deadline := suite.now.Add(72 * time.Hour)
	assignedAt := suite.now.Add(-24 * time.Hour)
	return models.LegalCase{
		Id:               suite.caseId,
		CaseNumber:       "LEX-8711B1B9",
		ClientId:         "client-1",
		AssignedLawyerId: utils.Ptr(models.UserId("lawyer-1")),
		Title:            "Employment contract review",
		Status:           models.CaseInReview,
		Priority:         models.PriorityHigh,
		SlaDeadline:      &deadline,
		CreatedAt:        suite.now.Add(-48 * time.Hour),
		UpdatedAt:        suite.now.Add(-time.Hour),
		AssignedAt:       &assignedAt,
	}
}

func (suite *CaseWorkflowUsecaseTestSuite) expectRelationLoads(c models.LegalCase) {
	suite.repository.On("GetUserById", mock.Anything, suite.executor, c.ClientId).
		Return(models.User{Id: c.ClientId, FullName: "Ada Client", Role: models.RoleClient}, nil)
	suite.repository.On("GetUserById", mock.Anything, suite.executor, models.UserId("lawyer-1")).
		Return(models.User{Id: "lawyer-1", FullName: "Lou Lawyer", Role: models.RoleLawyer}, nil)
	suite.repository.On("ListCaseClarifications", mock.Anything, suite.executor, c.Id).
		Return([]models.Clarification{}, nil)
	suite.repository.On("ListCaseDocuments", mock.Anything, suite.executor, c.Id).
		Return([]models.Document{}, nil)
	suite.repository.On("GetCaseOpinion", mock.Anything, suite.executor, c.Id).
		Return((*models.Opinion)(nil), nil)
	suite.repository.On("ListCaseEvents", mock.Anything, suite.executor, c.Id).
		Return([]models.CaseEvent{}, nil)
}

func (suite *CaseWorkflowUsecaseTestSuite) Test_ResolveCaseWorkflow_nominal() {
	ctx := context.Background()
	c := suite.fixtureCase()

	suite.executorFactory.On("NewExecutor").Return()
	suite.repository.On("GetCaseById", mock.Anything, suite.executor, suite.caseId).Return(c, nil)
	suite.expectRelationLoads(c)

	summary, err := suite.makeUsecase().ResolveCaseWorkflow(ctx, suite.caseId, models.RoleLawyer,
		WorkflowOptions{})

	t := suite.T()
	suite.NoError(err)
	suite.Equal(models.LifecycleInReview, summary.LifecycleState)
	suite.Equal(2, summary.CurrentStageIndex)
	suite.False(summary.IsTerminal)
	suite.Equal(models.SLAOnTrack, summary.Sla.Status)
	suite.Equal(models.HealthHealthy, summary.Health.Status)
	suite.Equal(models.BucketActive, summary.Bucket)
	if suite.NotNil(summary.NextStep) {
		suite.Equal("Submit Opinion", summary.NextStep.Title)
	}
	suite.Nil(summary.Metrics)
	suite.Len(summary.HorizontalStages, 5)
	suite.NotEmpty(summary.Timeline)
	suite.repository.AssertExpectations(t)
}

func (suite *CaseWorkflowUsecaseTestSuite) Test_ResolveCaseWorkflow_missingCase() {
	ctx := context.Background()

	suite.executorFactory.On("NewExecutor").Return()
	suite.repository.On("GetCaseById", mock.Anything, suite.executor, suite.caseId).
		Return(models.LegalCase{}, errors.Wrap(models.NotFoundError, "case not found"))

	_, err := suite.makeUsecase().ResolveCaseWorkflow(ctx, suite.caseId, models.RoleClient,
		WorkflowOptions{})

	suite.ErrorIs(err, models.NotFoundError)
	suite.AssertExpectations()
}

func (suite *CaseWorkflowUsecaseTestSuite) Test_ResolveCaseWorkflow_degradesOnAuxiliaryFailure() {
	ctx := context.Background()
	c := suite.fixtureCase()

	suite.executorFactory.On("NewExecutor").Return()
	suite.repository.On("GetCaseById", mock.Anything, suite.executor, suite.caseId).Return(c, nil)
	suite.repository.On("GetUserById", mock.Anything, suite.executor, c.ClientId).
		Return(models.User{Id: c.ClientId, FullName: "Ada Client"}, nil)
	suite.repository.On("GetUserById", mock.Anything, suite.executor, models.UserId("lawyer-1")).
		Return(models.User{Id: "lawyer-1", FullName: "Lou Lawyer"}, nil)
	suite.repository.On("ListCaseClarifications", mock.Anything, suite.executor, c.Id).
		Return([]models.Clarification{}, errors.New("clarifications table unavailable"))
	suite.repository.On("ListCaseDocuments", mock.Anything, suite.executor, c.Id).
		Return([]models.Document{}, nil)
	suite.repository.On("GetCaseOpinion", mock.Anything, suite.executor, c.Id).
		Return((*models.Opinion)(nil), errors.New("opinions table unavailable"))
	suite.repository.On("ListCaseEvents", mock.Anything, suite.executor, c.Id).
		Return([]models.CaseEvent{}, nil)

	summary, err := suite.makeUsecase().ResolveCaseWorkflow(ctx, suite.caseId, models.RoleClient,
		WorkflowOptions{})

	suite.NoError(err)
	suite.Equal(models.LifecycleInReview, summary.LifecycleState)
	suite.NotEmpty(summary.Timeline)
	suite.AssertExpectations()
}

func (suite *CaseWorkflowUsecaseTestSuite) Test_ResolveCaseWorkflow_includeMetrics() {
	ctx := context.Background()
	c := suite.fixtureCase()

	suite.executorFactory.On("NewExecutor").Return()
	suite.repository.On("GetCaseById", mock.Anything, suite.executor, suite.caseId).Return(c, nil)
	suite.repository.On("GetUserById", mock.Anything, suite.executor, c.ClientId).
		Return(models.User{Id: c.ClientId, FullName: "Ada Client"}, nil)
	suite.repository.On("GetUserById", mock.Anything, suite.executor, models.UserId("lawyer-1")).
		Return(models.User{Id: "lawyer-1", FullName: "Lou Lawyer"}, nil)
	suite.repository.On("ListCaseClarifications", mock.Anything, suite.executor, c.Id).
		Return([]models.Clarification{}, nil)
	suite.repository.On("ListCaseDocuments", mock.Anything, suite.executor, c.Id).
		Return([]models.Document{}, nil)
	suite.repository.On("GetCaseOpinion", mock.Anything, suite.executor, c.Id).
		Return((*models.Opinion)(nil), nil)
	suite.repository.On("ListCaseEvents", mock.Anything, suite.executor, c.Id).
		Return([]models.CaseEvent{
			{EventType: models.CaseEventCreated, CreatedAt: c.CreatedAt},
			{
				EventType: models.CaseEventStatusChanged,
				NewValue:  string(models.CaseAssigned),
				CreatedAt: c.CreatedAt.Add(2 * time.Hour),
			},
		}, nil)

	summary, err := suite.makeUsecase().ResolveCaseWorkflow(ctx, suite.caseId, models.RoleLawyer,
		WorkflowOptions{IncludeMetrics: true})

	suite.NoError(err)
	if suite.NotNil(summary.Metrics) {
		suite.InDelta(2*3600, summary.Metrics.StageDurations["requested"], 0.1)
	}
	suite.AssertExpectations()
}

func (suite *CaseWorkflowUsecaseTestSuite) Test_ResolveCaseWorkflow_satisfiedClientHasNoNextStep() {
	ctx := context.Background()
	c := suite.fixtureCase()
	c.Status = models.CaseNoFurtherQueriesConfirmed
	completedAt := suite.now.Add(-2 * time.Hour)
	c.CompletedAt = &completedAt

	suite.executorFactory.On("NewExecutor").Return()
	suite.repository.On("GetCaseById", mock.Anything, suite.executor, suite.caseId).Return(c, nil)
	suite.expectRelationLoads(c)

	summary, err := suite.makeUsecase().ResolveCaseWorkflow(ctx, suite.caseId, models.RoleClient,
		WorkflowOptions{})

	suite.NoError(err)
	suite.Equal(models.LifecycleCompleted, summary.LifecycleState)
	suite.True(summary.IsTerminal)
	suite.Equal(&completedAt, summary.CompletedAt)
	suite.Equal("Delivered", summary.Sla.Text)
	suite.Equal(models.BucketCompleted, summary.Bucket)
	suite.Equal(0, summary.UrgencyScore)
	suite.Nil(summary.NextStep)
	suite.AssertExpectations()
}

func (suite *CaseWorkflowUsecaseTestSuite) Test_ListCaseWorkflows_scopedToClient() {
	ctx := context.Background()
	c := suite.fixtureCase()
	creds := models.Credentials{UserId: "client-1", Role: models.RoleClient}

	suite.executorFactory.On("NewExecutor").Return()
	suite.repository.On("ListCases", mock.Anything, suite.executor,
		models.CaseFilters{ClientId: "client-1"}).
		Return([]models.LegalCase{c}, nil)
	suite.expectRelationLoads(c)

	summaries, err := suite.makeUsecase().ListCaseWorkflows(ctx, creds, models.CaseFilters{})

	suite.NoError(err)
	if suite.Len(summaries, 1) {
		suite.Equal(suite.caseId, summaries[0].CaseId)
		suite.Equal(models.LifecycleInReview, summaries[0].LifecycleState)
	}
	suite.AssertExpectations()
}

func TestCaseWorkflowUsecase(t *testing.T) {
	suite.Run(t, new(CaseWorkflowUsecaseTestSuite))
}
