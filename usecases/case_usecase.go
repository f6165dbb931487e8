package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/lexora/lexora-backend/models"
	"github.com/lexora/lexora-backend/repositories"
	"github.com/lexora/lexora-backend/usecases/executor_factory"
	"github.com/lexora/lexora-backend/utils"
)

type CaseUseCaseRepository interface {
	GetCaseById(ctx context.Context, exec repositories.Executor, caseId string) (models.LegalCase, error)
	ListCases(ctx context.Context, exec repositories.Executor, filters models.CaseFilters) ([]models.LegalCase, error)
	CreateCase(ctx context.Context, exec repositories.Executor, attributes models.CreateCaseAttributes,
		newCaseId string, caseNumber string) error
	AssignLawyer(ctx context.Context, exec repositories.Executor, caseId string,
		lawyerId models.UserId, now time.Time) error
	UpdateCaseStatus(ctx context.Context, exec repositories.Executor,
		attributes models.UpdateCaseStatusAttributes, now time.Time) error
	UpdateCaseAcceptance(ctx context.Context, exec repositories.Executor, caseId string,
		status models.AcceptanceStatus, now time.Time) error
	MarkCaseCompleted(ctx context.Context, exec repositories.Executor, caseId string,
		status models.CaseStatus, now time.Time) error

	ListCaseClarifications(ctx context.Context, exec repositories.Executor, caseId string) ([]models.Clarification, error)
	CreateClarification(ctx context.Context, exec repositories.Executor,
		attributes models.CreateClarificationAttributes, newClarificationId string) error
	ListCaseDocuments(ctx context.Context, exec repositories.Executor, caseId string) ([]models.Document, error)
	GetCaseOpinion(ctx context.Context, exec repositories.Executor, caseId string) (*models.Opinion, error)
	ListCaseEvents(ctx context.Context, exec repositories.Executor, caseId string) ([]models.CaseEvent, error)
	CreateCaseEvent(ctx context.Context, exec repositories.Executor,
		attributes models.CreateCaseEventAttributes) error
	GetUserById(ctx context.Context, exec repositories.Executor, userId models.UserId) (models.User, error)
}

type CaseUseCase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      CaseUseCaseRepository
}

func (uc *CaseUseCase) CreateCase(
	ctx context.Context,
	creds models.Credentials,
	attributes models.CreateCaseAttributes,
) (models.LegalCase, error) {
	if strings.TrimSpace(attributes.Title) == "" {
		return models.LegalCase{}, errors.Wrap(models.BadParameterError, "case title is required")
	}
	if attributes.Priority == "" {
		attributes.Priority = models.PriorityMedium
	}
	attributes.ClientId = creds.UserId

	newCaseId := uuid.NewString()
	caseNumber := newCaseNumber(newCaseId)

	err := uc.executorFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		if err := uc.repository.CreateCase(ctx, tx, attributes, newCaseId, caseNumber); err != nil {
			return err
		}
		return uc.repository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
			CaseId:    newCaseId,
			UserId:    creds.UserId,
			EventType: models.CaseEventCreated,
		})
	})
	if err != nil {
		return models.LegalCase{}, err
	}
	return uc.GetCase(ctx, newCaseId)
}

// GetCase returns the case with all its relations loaded.
func (uc *CaseUseCase) GetCase(ctx context.Context, caseId string) (models.LegalCase, error) {
	exec := uc.executorFactory.NewExecutor()
	c, err := uc.repository.GetCaseById(ctx, exec, caseId)
	if err != nil {
		return models.LegalCase{}, err
	}
	return uc.loadCaseRelations(ctx, exec, c)
}

func (uc *CaseUseCase) ListCases(
	ctx context.Context,
	creds models.Credentials,
	filters models.CaseFilters,
) ([]models.LegalCase, error) {
	switch creds.Role {
	case models.RoleClient:
		filters.ClientId = creds.UserId
	case models.RoleLawyer:
		filters.LawyerId = creds.UserId
	}
	return uc.repository.ListCases(ctx, uc.executorFactory.NewExecutor(), filters)
}

// AssignLawyer claims an unassigned case for the given lawyer. The claim is
// atomic: a concurrent assignment surfaces as ErrCaseAlreadyAssigned.
func (uc *CaseUseCase) AssignLawyer(
	ctx context.Context,
	creds models.Credentials,
	caseId string,
	lawyerId models.UserId,
) (models.LegalCase, error) {
	now := time.Now()
	err := uc.executorFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		c, err := uc.repository.GetCaseById(ctx, tx, caseId)
		if err != nil {
			return err
		}
		if c.Status.IsTerminal() {
			return models.ErrCaseTerminal
		}
		if err := uc.repository.AssignLawyer(ctx, tx, caseId, lawyerId, now); err != nil {
			return err
		}
		return uc.repository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
			CaseId:    caseId,
			UserId:    creds.UserId,
			EventType: models.CaseEventAssigned,
			NewValue:  utils.Ptr(string(lawyerId)),
		})
	})
	if err != nil {
		return models.LegalCase{}, err
	}
	return uc.GetCase(ctx, caseId)
}

func (uc *CaseUseCase) AcceptCase(
	ctx context.Context,
	creds models.Credentials,
	caseId string,
) (models.LegalCase, error) {
	now := time.Now()
	err := uc.executorFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		c, err := uc.repository.GetCaseById(ctx, tx, caseId)
		if err != nil {
			return err
		}
		if err := enforceAssignedLawyer(c, creds); err != nil {
			return err
		}
		if err := uc.repository.UpdateCaseAcceptance(ctx, tx, caseId, models.AcceptanceAccepted, now); err != nil {
			return err
		}
		return uc.repository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
			CaseId:    caseId,
			UserId:    creds.UserId,
			EventType: models.CaseEventAccepted,
		})
	})
	if err != nil {
		return models.LegalCase{}, err
	}
	return uc.GetCase(ctx, caseId)
}

// RejectCase releases the case back to the unassigned pool.
func (uc *CaseUseCase) RejectCase(
	ctx context.Context,
	creds models.Credentials,
	caseId string,
) (models.LegalCase, error) {
	now := time.Now()
	err := uc.executorFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		c, err := uc.repository.GetCaseById(ctx, tx, caseId)
		if err != nil {
			return err
		}
		if err := enforceAssignedLawyer(c, creds); err != nil {
			return err
		}
		if err := uc.repository.UpdateCaseAcceptance(ctx, tx, caseId, models.AcceptanceRejected, now); err != nil {
			return err
		}
		return uc.repository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
			CaseId:    caseId,
			UserId:    creds.UserId,
			EventType: models.CaseEventRejected,
		})
	})
	if err != nil {
		return models.LegalCase{}, err
	}
	return uc.GetCase(ctx, caseId)
}

func (uc *CaseUseCase) UpdateCaseStatus(
	ctx context.Context,
	creds models.Credentials,
	caseId string,
	newStatus models.CaseStatus,
) (models.LegalCase, error) {
	if newStatus == models.CaseUnknownStatus {
		return models.LegalCase{}, errors.Wrap(models.BadParameterError, "invalid case status")
	}
	now := time.Now()
	err := uc.executorFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		c, err := uc.repository.GetCaseById(ctx, tx, caseId)
		if err != nil {
			return err
		}
		if c.Status == newStatus {
			return nil
		}
		if !c.Status.CanTransitionTo(newStatus) {
			return errors.Wrap(models.ErrCaseTerminal,
				fmt.Sprintf("case %s cannot move from %s to %s", caseId, c.Status, newStatus))
		}
		if newStatus.IsClosed() {
			if err := uc.repository.MarkCaseCompleted(ctx, tx, caseId, newStatus, now); err != nil {
				return err
			}
		} else if err := uc.repository.UpdateCaseStatus(ctx, tx, models.UpdateCaseStatusAttributes{
			Id:     caseId,
			Status: newStatus,
		}, now); err != nil {
			return err
		}
		return uc.repository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
			CaseId:        caseId,
			UserId:        creds.UserId,
			EventType:     models.CaseEventStatusChanged,
			NewValue:      utils.Ptr(string(newStatus)),
			PreviousValue: utils.Ptr(string(c.Status)),
		})
	})
	if err != nil {
		return models.LegalCase{}, err
	}
	return uc.GetCase(ctx, caseId)
}

// RequestClarification records a lawyer question, or a reply when a parent
// clarification id is given.
func (uc *CaseUseCase) RequestClarification(
	ctx context.Context,
	creds models.Credentials,
	attributes models.CreateClarificationAttributes,
) (string, error) {
	if strings.TrimSpace(attributes.Question) == "" {
		return "", errors.Wrap(models.BadParameterError, "clarification question is required")
	}
	attributes.CreatedByRole = creds.Role

	newClarificationId := uuid.NewString()
	err := uc.executorFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		c, err := uc.repository.GetCaseById(ctx, tx, attributes.CaseId)
		if err != nil {
			return err
		}
		if c.Status.IsClosed() || c.Status == models.CaseNoFurtherQueriesConfirmed {
			return models.ErrCaseTerminal
		}
		if err := uc.repository.CreateClarification(ctx, tx, attributes, newClarificationId); err != nil {
			return err
		}
		// Post-opinion questions and replies do not move the case; only a new
		// question during review flips it to clarification_pending.
		if attributes.ParentId == nil && !c.Status.IsTerminal() &&
			c.Status != models.CaseClarificationPending {
			if err := uc.repository.UpdateCaseStatus(ctx, tx, models.UpdateCaseStatusAttributes{
				Id:     attributes.CaseId,
				Status: models.CaseClarificationPending,
			}, time.Now()); err != nil {
				return err
			}
			if err := uc.repository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
				CaseId:        attributes.CaseId,
				UserId:        creds.UserId,
				EventType:     models.CaseEventStatusChanged,
				NewValue:      utils.Ptr(string(models.CaseClarificationPending)),
				PreviousValue: utils.Ptr(string(c.Status)),
			}); err != nil {
				return err
			}
		}
		return uc.repository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
			CaseId:    attributes.CaseId,
			UserId:    creds.UserId,
			EventType: models.CaseEventClarificationRequested,
			NewValue:  utils.Ptr(newClarificationId),
		})
	})
	if err != nil {
		return "", err
	}
	return newClarificationId, nil
}

func (uc *CaseUseCase) loadCaseRelations(
	ctx context.Context,
	exec repositories.Executor,
	c models.LegalCase,
) (models.LegalCase, error) {
	client, err := uc.repository.GetUserById(ctx, exec, c.ClientId)
	if err != nil {
		return models.LegalCase{}, errors.Wrap(err, "failed to load case client")
	}
	c.Client = client

	if c.AssignedLawyerId != nil {
		lawyer, err := uc.repository.GetUserById(ctx, exec, *c.AssignedLawyerId)
		if err != nil {
			return models.LegalCase{}, errors.Wrap(err, "failed to load case lawyer")
		}
		c.Lawyer = &lawyer
	}

	if c.Clarifications, err = uc.repository.ListCaseClarifications(ctx, exec, c.Id); err != nil {
		return models.LegalCase{}, err
	}
	if c.Documents, err = uc.repository.ListCaseDocuments(ctx, exec, c.Id); err != nil {
		return models.LegalCase{}, err
	}
	if c.Opinion, err = uc.repository.GetCaseOpinion(ctx, exec, c.Id); err != nil {
		return models.LegalCase{}, err
	}
	if c.Events, err = uc.repository.ListCaseEvents(ctx, exec, c.Id); err != nil {
		return models.LegalCase{}, err
	}
	return c, nil
}

func enforceAssignedLawyer(c models.LegalCase, creds models.Credentials) error {
	if c.AssignedLawyerId == nil {
		return models.ErrCaseNotAssigned
	}
	if *c.AssignedLawyerId != creds.UserId {
		return errors.Wrap(models.ForbiddenError, "case is assigned to another lawyer")
	}
	return nil
}

// newCaseNumber derives the human-facing reference from the case id.
func newCaseNumber(caseId string) string {
	return "LEX-" + strings.ToUpper(strings.ReplaceAll(caseId, "-", "")[:8])
}
