package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/lexora/lexora-backend/mocks"
	"github.com/lexora/lexora-backend/models"
	"github.com/lexora/lexora-backend/utils"
)

type CaseUsecaseTestSuite struct {
	suite.Suite
	repository      *mocks.CaseRepository
	executorFactory *mocks.ExecutorFactory
	executor        *mocks.Executor

	caseId string
	creds  models.Credentials
}

func (suite *CaseUsecaseTestSuite) SetupTest() {
	suite.executor = new(mocks.Executor)
	suite.executorFactory = &mocks.ExecutorFactory{ExecMock: suite.executor}
	suite.repository = new(mocks.CaseRepository)

	suite.caseId = "43981c7b-db44-4ec8-9d81-0e601eed9d93"
	suite.creds = models.Credentials{UserId: "lawyer-1", Role: models.RoleLawyer}
}

func (suite *CaseUsecaseTestSuite) makeUsecase() *CaseUseCase {
	return &CaseUseCase{
		executorFactory: suite.executorFactory,
		repository:      suite.repository,
	}
}

func (suite *CaseUsecaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.repository.AssertExpectations(t)
	suite.executorFactory.AssertExpectations(t)
	suite.executor.AssertExpectations(t)
}

func (suite *CaseUsecaseTestSuite) expectRelationLoads(c models.LegalCase) {
	suite.repository.On("GetUserById", mock.Anything, suite.executor, c.ClientId).
		Return(models.User{Id: c.ClientId, FullName: "Ada Client"}, nil)
	if c.AssignedLawyerId != nil {
		suite.repository.On("GetUserById", mock.Anything, suite.executor, *c.AssignedLawyerId).
			Return(models.User{Id: *c.AssignedLawyerId, FullName: "Lou Lawyer"}, nil)
	}
	suite.repository.On("ListCaseClarifications", mock.Anything, suite.executor, c.Id).
		Return([]models.Clarification{}, nil)
	suite.repository.On("ListCaseDocuments", mock.Anything, suite.executor, c.Id).
		Return([]models.Document{}, nil)
	suite.repository.On("GetCaseOpinion", mock.Anything, suite.executor, c.Id).
		Return((*models.Opinion)(nil), nil)
	suite.repository.On("ListCaseEvents", mock.Anything, suite.executor, c.Id).
		Return([]models.CaseEvent{}, nil)
}

func (suite *CaseUsecaseTestSuite) Test_CreateCase_requiresTitle() {
	ctx := context.Background()

	_, err := suite.makeUsecase().CreateCase(ctx, suite.creds, models.CreateCaseAttributes{
		Title: "   ",
	})

	suite.ErrorIs(err, models.BadParameterError)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_CreateCase_nominal() {
	ctx := context.Background()
	creds := models.Credentials{UserId: "client-1", Role: models.RoleClient}

	var createdCaseId string
	suite.executorFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.repository.On("CreateCase", mock.Anything, suite.executor,
		mock.MatchedBy(func(attrs models.CreateCaseAttributes) bool {
			return attrs.Title == "Tenant dispute" &&
				attrs.ClientId == "client-1" &&
				attrs.Priority == models.PriorityMedium
		}),
		mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) {
			createdCaseId = args.Get(3).(string)
		}).
		Return(nil)
	suite.repository.On("CreateCaseEvent", mock.Anything, suite.executor,
		mock.MatchedBy(func(attrs models.CreateCaseEventAttributes) bool {
			return attrs.EventType == models.CaseEventCreated && attrs.UserId == "client-1"
		})).
		Return(nil)
	suite.executorFactory.On("NewExecutor").Return()
	suite.repository.On("GetCaseById", mock.Anything, suite.executor, mock.AnythingOfType("string")).
		Return(models.LegalCase{Id: suite.caseId, ClientId: "client-1", Title: "Tenant dispute"}, nil)
	suite.expectRelationLoads(models.LegalCase{Id: suite.caseId, ClientId: "client-1"})

	createdCase, err := suite.makeUsecase().CreateCase(ctx, creds, models.CreateCaseAttributes{
		Title: "Tenant dispute",
	})

	suite.NoError(err)
	suite.NotEmpty(createdCaseId)
	suite.Equal("Tenant dispute", createdCase.Title)
	suite.Equal("Ada Client", createdCase.Client.FullName)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_AssignLawyer_terminalCase() {
	ctx := context.Background()

	suite.executorFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.repository.On("GetCaseById", mock.Anything, suite.executor, suite.caseId).
		Return(models.LegalCase{Id: suite.caseId, Status: models.CaseCompleted}, nil)

	_, err := suite.makeUsecase().AssignLawyer(ctx, suite.creds, suite.caseId, "lawyer-1")

	suite.ErrorIs(err, models.ErrCaseTerminal)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_AcceptCase_assignedToAnotherLawyer() {
	ctx := context.Background()

	suite.executorFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.repository.On("GetCaseById", mock.Anything, suite.executor, suite.caseId).
		Return(models.LegalCase{
			Id:               suite.caseId,
			Status:           models.CaseAssigned,
			AssignedLawyerId: utils.Ptr(models.UserId("lawyer-2")),
		}, nil)

	_, err := suite.makeUsecase().AcceptCase(ctx, suite.creds, suite.caseId)

	suite.ErrorIs(err, models.ForbiddenError)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_AcceptCase_unassignedCase() {
	ctx := context.Background()

	suite.executorFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.repository.On("GetCaseById", mock.Anything, suite.executor, suite.caseId).
		Return(models.LegalCase{Id: suite.caseId, Status: models.CaseSubmitted}, nil)

	_, err := suite.makeUsecase().AcceptCase(ctx, suite.creds, suite.caseId)

	suite.ErrorIs(err, models.ErrCaseNotAssigned)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_UpdateCaseStatus_invalidStatus() {
	ctx := context.Background()

	_, err := suite.makeUsecase().UpdateCaseStatus(ctx, suite.creds, suite.caseId,
		models.CaseStatusFrom("definitely_not_a_status"))

	suite.ErrorIs(err, models.BadParameterError)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_UpdateCaseStatus_terminalTransitionUsesCompletion() {
	ctx := context.Background()
	existing := models.LegalCase{
		Id:               suite.caseId,
		ClientId:         "client-1",
		Status:           models.CaseOpinionReady,
		AssignedLawyerId: utils.Ptr(models.UserId("lawyer-1")),
	}

	suite.executorFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.executorFactory.On("NewExecutor").Return()
	suite.repository.On("GetCaseById", mock.Anything, suite.executor, suite.caseId).
		Return(existing, nil)
	suite.repository.On("MarkCaseCompleted", mock.Anything, suite.executor, suite.caseId,
		models.CaseCompleted, mock.AnythingOfType("time.Time")).
		Return(nil)
	suite.repository.On("CreateCaseEvent", mock.Anything, suite.executor,
		mock.MatchedBy(func(attrs models.CreateCaseEventAttributes) bool {
			return attrs.EventType == models.CaseEventStatusChanged &&
				attrs.NewValue != nil && *attrs.NewValue == string(models.CaseCompleted) &&
				attrs.PreviousValue != nil && *attrs.PreviousValue == string(models.CaseOpinionReady)
		})).
		Return(nil)
	suite.expectRelationLoads(existing)

	_, err := suite.makeUsecase().UpdateCaseStatus(ctx, suite.creds, suite.caseId, models.CaseCompleted)

	suite.NoError(err)
	suite.repository.AssertNotCalled(suite.T(), "UpdateCaseStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_UpdateCaseStatus_postOpinionCloseFlow() {
	ctx := context.Background()
	confirmed := models.LegalCase{
		Id:               suite.caseId,
		ClientId:         "client-1",
		Status:           models.CaseNoFurtherQueriesConfirmed,
		AssignedLawyerId: utils.Ptr(models.UserId("lawyer-1")),
	}

	suite.executorFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.executorFactory.On("NewExecutor").Return()
	suite.repository.On("GetCaseById", mock.Anything, suite.executor, suite.caseId).
		Return(confirmed, nil)
	suite.repository.On("MarkCaseCompleted", mock.Anything, suite.executor, suite.caseId,
		models.CaseClosed, mock.AnythingOfType("time.Time")).
		Return(nil)
	suite.repository.On("CreateCaseEvent", mock.Anything, suite.executor,
		mock.MatchedBy(func(attrs models.CreateCaseEventAttributes) bool {
			return attrs.EventType == models.CaseEventStatusChanged &&
				attrs.NewValue != nil && *attrs.NewValue == string(models.CaseClosed) &&
				attrs.PreviousValue != nil &&
				*attrs.PreviousValue == string(models.CaseNoFurtherQueriesConfirmed)
		})).
		Return(nil)
	suite.expectRelationLoads(confirmed)

	_, err := suite.makeUsecase().UpdateCaseStatus(ctx, suite.creds, suite.caseId, models.CaseClosed)

	suite.NoError(err)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_UpdateCaseStatus_acknowledgedConfirmsNoFurtherQuestions() {
	ctx := context.Background()
	acknowledged := models.LegalCase{
		Id:       suite.caseId,
		ClientId: "client-1",
		Status:   models.CaseClientAcknowledged,
	}

	suite.executorFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.executorFactory.On("NewExecutor").Return()
	suite.repository.On("GetCaseById", mock.Anything, suite.executor, suite.caseId).
		Return(acknowledged, nil)
	suite.repository.On("UpdateCaseStatus", mock.Anything, suite.executor,
		models.UpdateCaseStatusAttributes{
			Id:     suite.caseId,
			Status: models.CaseNoFurtherQueriesConfirmed,
		}, mock.AnythingOfType("time.Time")).
		Return(nil)
	suite.repository.On("CreateCaseEvent", mock.Anything, suite.executor,
		mock.MatchedBy(func(attrs models.CreateCaseEventAttributes) bool {
			return attrs.EventType == models.CaseEventStatusChanged &&
				attrs.NewValue != nil &&
				*attrs.NewValue == string(models.CaseNoFurtherQueriesConfirmed)
		})).
		Return(nil)
	suite.expectRelationLoads(acknowledged)

	_, err := suite.makeUsecase().UpdateCaseStatus(ctx, suite.creds, suite.caseId,
		models.CaseNoFurtherQueriesConfirmed)

	suite.NoError(err)
	suite.repository.AssertNotCalled(suite.T(), "MarkCaseCompleted",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_UpdateCaseStatus_acknowledgedCannotSkipConfirmation() {
	ctx := context.Background()

	suite.executorFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.repository.On("GetCaseById", mock.Anything, suite.executor, suite.caseId).
		Return(models.LegalCase{Id: suite.caseId, Status: models.CaseClientAcknowledged}, nil)

	_, err := suite.makeUsecase().UpdateCaseStatus(ctx, suite.creds, suite.caseId, models.CaseClosed)

	suite.ErrorIs(err, models.ErrCaseTerminal)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_UpdateCaseStatus_closedCaseRejectsWrites() {
	ctx := context.Background()

	suite.executorFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.repository.On("GetCaseById", mock.Anything, suite.executor, suite.caseId).
		Return(models.LegalCase{Id: suite.caseId, Status: models.CaseClosed}, nil)

	_, err := suite.makeUsecase().UpdateCaseStatus(ctx, suite.creds, suite.caseId, models.CaseInReview)

	suite.ErrorIs(err, models.ErrCaseTerminal)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_RequestClarification_newQuestionFlipsStatus() {
	ctx := context.Background()
	existing := models.LegalCase{Id: suite.caseId, Status: models.CaseInReview}

	suite.executorFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.repository.On("GetCaseById", mock.Anything, suite.executor, suite.caseId).
		Return(existing, nil)
	suite.repository.On("CreateClarification", mock.Anything, suite.executor,
		mock.AnythingOfType("models.CreateClarificationAttributes"), mock.AnythingOfType("string")).
		Return(nil)
	suite.repository.On("UpdateCaseStatus", mock.Anything, suite.executor,
		models.UpdateCaseStatusAttributes{
			Id:     suite.caseId,
			Status: models.CaseClarificationPending,
		}, mock.AnythingOfType("time.Time")).
		Return(nil)
	suite.repository.On("CreateCaseEvent", mock.Anything, suite.executor,
		mock.MatchedBy(func(attrs models.CreateCaseEventAttributes) bool {
			return attrs.EventType == models.CaseEventStatusChanged &&
				attrs.PreviousValue != nil && *attrs.PreviousValue == string(models.CaseInReview)
		})).
		Return(nil)
	suite.repository.On("CreateCaseEvent", mock.Anything, suite.executor,
		mock.MatchedBy(func(attrs models.CreateCaseEventAttributes) bool {
			return attrs.EventType == models.CaseEventClarificationRequested
		})).
		Return(nil)

	clarificationId, err := suite.makeUsecase().RequestClarification(ctx, suite.creds,
		models.CreateClarificationAttributes{
			CaseId:   suite.caseId,
			Question: "Which jurisdiction governs the contract?",
		})

	suite.NoError(err)
	suite.NotEmpty(clarificationId)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_RequestClarification_replyDoesNotChangeStatus() {
	ctx := context.Background()

	suite.executorFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.repository.On("GetCaseById", mock.Anything, suite.executor, suite.caseId).
		Return(models.LegalCase{Id: suite.caseId, Status: models.CaseInReview}, nil)
	suite.repository.On("CreateClarification", mock.Anything, suite.executor,
		mock.AnythingOfType("models.CreateClarificationAttributes"), mock.AnythingOfType("string")).
		Return(nil)
	suite.repository.On("CreateCaseEvent", mock.Anything, suite.executor,
		mock.MatchedBy(func(attrs models.CreateCaseEventAttributes) bool {
			return attrs.EventType == models.CaseEventClarificationRequested
		})).
		Return(nil)

	creds := models.Credentials{UserId: "client-1", Role: models.RoleClient}
	_, err := suite.makeUsecase().RequestClarification(ctx, creds,
		models.CreateClarificationAttributes{
			CaseId:   suite.caseId,
			Question: "The governing law clause names Delaware.",
			ParentId: utils.Ptr("clarification-1"),
		})

	suite.NoError(err)
	suite.repository.AssertNotCalled(suite.T(), "UpdateCaseStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_RequestClarification_postOpinionQuestionKeepsStatus() {
	ctx := context.Background()

	suite.executorFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.repository.On("GetCaseById", mock.Anything, suite.executor, suite.caseId).
		Return(models.LegalCase{Id: suite.caseId, Status: models.CaseClientAcknowledged}, nil)
	suite.repository.On("CreateClarification", mock.Anything, suite.executor,
		mock.AnythingOfType("models.CreateClarificationAttributes"), mock.AnythingOfType("string")).
		Return(nil)
	suite.repository.On("CreateCaseEvent", mock.Anything, suite.executor,
		mock.MatchedBy(func(attrs models.CreateCaseEventAttributes) bool {
			return attrs.EventType == models.CaseEventClarificationRequested
		})).
		Return(nil)

	creds := models.Credentials{UserId: "client-1", Role: models.RoleClient}
	_, err := suite.makeUsecase().RequestClarification(ctx, creds,
		models.CreateClarificationAttributes{
			CaseId:   suite.caseId,
			Question: "Does the opinion cover the sublease as well?",
		})

	suite.NoError(err)
	suite.repository.AssertNotCalled(suite.T(), "UpdateCaseStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_RequestClarification_confirmedCaseRejectsQuestions() {
	ctx := context.Background()

	suite.executorFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	suite.repository.On("GetCaseById", mock.Anything, suite.executor, suite.caseId).
		Return(models.LegalCase{Id: suite.caseId, Status: models.CaseNoFurtherQueriesConfirmed}, nil)

	creds := models.Credentials{UserId: "client-1", Role: models.RoleClient}
	_, err := suite.makeUsecase().RequestClarification(ctx, creds,
		models.CreateClarificationAttributes{
			CaseId:   suite.caseId,
			Question: "One more thing came up.",
		})

	suite.ErrorIs(err, models.ErrCaseTerminal)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_ListCases_scopedToLawyer() {
	ctx := context.Background()

	suite.executorFactory.On("NewExecutor").Return()
	suite.repository.On("ListCases", mock.Anything, suite.executor,
		models.CaseFilters{LawyerId: "lawyer-1"}).
		Return([]models.LegalCase{{Id: suite.caseId}}, nil)

	cases, err := suite.makeUsecase().ListCases(ctx, suite.creds, models.CaseFilters{})

	suite.NoError(err)
	suite.Len(cases, 1)
	suite.AssertExpectations()
}

func TestCaseUsecase(t *testing.T) {
	suite.Run(t, new(CaseUsecaseTestSuite))
}

