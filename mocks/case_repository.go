package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/lexora/lexora-backend/models"
	"github.com/lexora/lexora-backend/repositories"
)

type CaseRepository struct {
	mock.Mock
}

func (r *CaseRepository) GetCaseById(ctx context.Context, exec repositories.Executor, caseId string) (models.LegalCase, error) {
	args := r.Called(ctx, exec, caseId)
	return args.Get(0).(models.LegalCase), args.Error(1)
}

func (r *CaseRepository) ListCases(ctx context.Context, exec repositories.Executor, filters models.CaseFilters) ([]models.LegalCase, error) {
	args := r.Called(ctx, exec, filters)
	return args.Get(0).([]models.LegalCase), args.Error(1)
}

func (r *CaseRepository) CreateCase(ctx context.Context, exec repositories.Executor,
	attributes models.CreateCaseAttributes, newCaseId string, caseNumber string,
) error {
	args := r.Called(ctx, exec, attributes, newCaseId, caseNumber)
	return args.Error(0)
}

func (r *CaseRepository) AssignLawyer(ctx context.Context, exec repositories.Executor,
	caseId string, lawyerId models.UserId, now time.Time,
) error {
	args := r.Called(ctx, exec, caseId, lawyerId, now)
	return args.Error(0)
}

func (r *CaseRepository) UpdateCaseStatus(ctx context.Context, exec repositories.Executor,
	attributes models.UpdateCaseStatusAttributes, now time.Time,
) error {
	args := r.Called(ctx, exec, attributes, now)
	return args.Error(0)
}

func (r *CaseRepository) UpdateCaseAcceptance(ctx context.Context, exec repositories.Executor,
	caseId string, status models.AcceptanceStatus, now time.Time,
) error {
	args := r.Called(ctx, exec, caseId, status, now)
	return args.Error(0)
}

func (r *CaseRepository) MarkCaseCompleted(ctx context.Context, exec repositories.Executor,
	caseId string, status models.CaseStatus, now time.Time,
) error {
	args := r.Called(ctx, exec, caseId, status, now)
	return args.Error(0)
}

func (r *CaseRepository) ListCaseClarifications(ctx context.Context, exec repositories.Executor, caseId string) ([]models.Clarification, error) {
	args := r.Called(ctx, exec, caseId)
	return args.Get(0).([]models.Clarification), args.Error(1)
}

func (r *CaseRepository) CreateClarification(ctx context.Context, exec repositories.Executor,
	attributes models.CreateClarificationAttributes, newClarificationId string,
) error {
	args := r.Called(ctx, exec, attributes, newClarificationId)
	return args.Error(0)
}

func (r *CaseRepository) ListCaseDocuments(ctx context.Context, exec repositories.Executor, caseId string) ([]models.Document, error) {
	args := r.Called(ctx, exec, caseId)
	return args.Get(0).([]models.Document), args.Error(1)
}

func (r *CaseRepository) GetCaseOpinion(ctx context.Context, exec repositories.Executor, caseId string) (*models.Opinion, error) {
	args := r.Called(ctx, exec, caseId)
	return args.Get(0).(*models.Opinion), args.Error(1)
}

func (r *CaseRepository) ListCaseEvents(ctx context.Context, exec repositories.Executor, caseId string) ([]models.CaseEvent, error) {
	args := r.Called(ctx, exec, caseId)
	return args.Get(0).([]models.CaseEvent), args.Error(1)
}

func (r *CaseRepository) CreateCaseEvent(ctx context.Context, exec repositories.Executor,
	attributes models.CreateCaseEventAttributes,
) error {
	args := r.Called(ctx, exec, attributes)
	return args.Error(0)
}

func (r *CaseRepository) GetUserById(ctx context.Context, exec repositories.Executor, userId models.UserId) (models.User, error) {
	args := r.Called(ctx, exec, userId)
	return args.Get(0).(models.User), args.Error(1)
}
