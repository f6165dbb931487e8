package usecases

import (
	"context"
	"time"

	"github.com/lexora/lexora-backend/models"
	"github.com/lexora/lexora-backend/repositories"
	"github.com/lexora/lexora-backend/usecases/executor_factory"
	"github.com/lexora/lexora-backend/usecases/lifecycle"
	"github.com/lexora/lexora-backend/utils"
)

type CaseWorkflowRepository interface {
	GetCaseById(ctx context.Context, exec repositories.Executor, caseId string) (models.LegalCase, error)
	ListCases(ctx context.Context, exec repositories.Executor, filters models.CaseFilters) ([]models.LegalCase, error)
	ListCaseClarifications(ctx context.Context, exec repositories.Executor, caseId string) ([]models.Clarification, error)
	ListCaseDocuments(ctx context.Context, exec repositories.Executor, caseId string) ([]models.Document, error)
	GetCaseOpinion(ctx context.Context, exec repositories.Executor, caseId string) (*models.Opinion, error)
	ListCaseEvents(ctx context.Context, exec repositories.Executor, caseId string) ([]models.CaseEvent, error)
	GetUserById(ctx context.Context, exec repositories.Executor, userId models.UserId) (models.User, error)
}

// CaseWorkflowUseCase is the read side of the case lifecycle: it loads a case
// with its relations and derives the full workflow summary from them.
type CaseWorkflowUseCase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      CaseWorkflowRepository
}

type WorkflowOptions struct {
	IncludeMetrics bool
}

// ResolveCaseWorkflow computes the workflow summary for one case as seen by
// the given role. A missing case is an error; failures loading auxiliary
// relations are logged and the summary degrades to what could be loaded.
func (uc *CaseWorkflowUseCase) ResolveCaseWorkflow(
	ctx context.Context,
	caseId string,
	role models.UserRole,
	options WorkflowOptions,
) (models.WorkflowSummary, error) {
	exec := uc.executorFactory.NewExecutor()
	c, err := uc.repository.GetCaseById(ctx, exec, caseId)
	if err != nil {
		return models.WorkflowSummary{}, err
	}
	c = uc.loadRelationsBestEffort(ctx, exec, c)
	return uc.buildSummary(c, role, options, time.Now()), nil
}

// ListCaseWorkflows returns the workflow summary of every case visible to the
// caller, for dashboard grouping by bucket and sorting by urgency.
func (uc *CaseWorkflowUseCase) ListCaseWorkflows(
	ctx context.Context,
	creds models.Credentials,
	filters models.CaseFilters,
) ([]models.WorkflowSummary, error) {
	switch creds.Role {
	case models.RoleClient:
		filters.ClientId = creds.UserId
	case models.RoleLawyer:
		filters.LawyerId = creds.UserId
	}

	exec := uc.executorFactory.NewExecutor()
	cases, err := uc.repository.ListCases(ctx, exec, filters)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	summaries := make([]models.WorkflowSummary, len(cases))
	for i, c := range cases {
		c = uc.loadRelationsBestEffort(ctx, exec, c)
		summaries[i] = uc.buildSummary(c, creds.Role, WorkflowOptions{}, now)
	}
	return summaries, nil
}

func (uc *CaseWorkflowUseCase) buildSummary(
	c models.LegalCase,
	role models.UserRole,
	options WorkflowOptions,
	now time.Time,
) models.WorkflowSummary {
	state := lifecycle.ResolveLifecycleStatus(c)
	sla := lifecycle.ComputeCaseSLA(c, state, now)
	blocked := lifecycle.DetectBlockedState(c, state)
	horizontal, currentIndex := lifecycle.BuildHorizontalStages(state)

	pending := c.PendingClarifications()
	unreviewed := c.UnreviewedDocuments()

	health := lifecycle.ComputeHealth(lifecycle.HealthFactors{
		SlaStatus:             sla.Status,
		PendingClarifications: pending,
		UnreviewedDocuments:   unreviewed,
		DaysSinceLastActivity: daysSinceLastActivity(c, now),
		HasAssignedLawyer:     c.HasAssignedLawyer(),
	})

	nextStep := lifecycle.NextActionFor(role, lifecycle.ActionContext{
		Status:                   c.Status,
		HasPendingClarifications: pending > 0,
		HasUnreviewedDocuments:   unreviewed > 0,
		OpinionSubmitted:         c.OpinionSubmittedAt != nil,
		Rated:                    c.Rated,
		HasAssignedLawyer:        c.HasAssignedLawyer(),
	})

	summary := models.WorkflowSummary{
		CaseId:            c.Id,
		LifecycleState:    state,
		CurrentStageIndex: currentIndex,
		IsTerminal:        state.IsTerminal(),
		CompletedAt:       completionTime(c, state),
		HorizontalStages:  horizontal,
		TimelineStages:    lifecycle.BuildTimelineStages(c, state, blocked, role, now),
		Timeline:          lifecycle.GenerateTimeline(c),
		Sla:               sla,
		Health:            health,
		NextStep:          nextStep,
		Bucket:            lifecycle.BucketFor(state, sla.Status),
		UrgencyScore:      lifecycle.UrgencyScore(c.Priority, state, sla.Status),
	}
	if options.IncludeMetrics {
		summary.Metrics = lifecycle.ComputeStageMetrics(c.Events, now)
	}
	return summary
}

func (uc *CaseWorkflowUseCase) loadRelationsBestEffort(
	ctx context.Context,
	exec repositories.Executor,
	c models.LegalCase,
) models.LegalCase {
	logger := utils.LoggerFromContext(ctx)

	client, err := uc.repository.GetUserById(ctx, exec, c.ClientId)
	if err != nil {
		logger.WarnContext(ctx, "failed to load case client", "case_id", c.Id, "error", err)
	} else {
		c.Client = client
	}

	if c.AssignedLawyerId != nil {
		lawyer, err := uc.repository.GetUserById(ctx, exec, *c.AssignedLawyerId)
		if err != nil {
			logger.WarnContext(ctx, "failed to load case lawyer", "case_id", c.Id, "error", err)
		} else {
			c.Lawyer = &lawyer
		}
	}

	if c.Clarifications, err = uc.repository.ListCaseClarifications(ctx, exec, c.Id); err != nil {
		logger.WarnContext(ctx, "failed to load case clarifications", "case_id", c.Id, "error", err)
		c.Clarifications = nil
	}
	if c.Documents, err = uc.repository.ListCaseDocuments(ctx, exec, c.Id); err != nil {
		logger.WarnContext(ctx, "failed to load case documents", "case_id", c.Id, "error", err)
		c.Documents = nil
	}
	if c.Opinion, err = uc.repository.GetCaseOpinion(ctx, exec, c.Id); err != nil {
		logger.WarnContext(ctx, "failed to load case opinion", "case_id", c.Id, "error", err)
		c.Opinion = nil
	}
	if c.Events, err = uc.repository.ListCaseEvents(ctx, exec, c.Id); err != nil {
		logger.WarnContext(ctx, "failed to load case events", "case_id", c.Id, "error", err)
		c.Events = nil
	}
	return c
}

// completionTime picks the moment the case reached its terminal state.
func completionTime(c models.LegalCase, state models.LifecycleStatus) *time.Time {
	if !state.IsTerminal() {
		return nil
	}
	if c.CompletedAt != nil {
		return c.CompletedAt
	}
	return c.OpinionSubmittedAt
}

// daysSinceLastActivity measures staleness from the newest touch on the case
// across its own update time, events, documents and clarifications.
func daysSinceLastActivity(c models.LegalCase, now time.Time) int {
	last := c.UpdatedAt
	for _, event := range c.Events {
		if event.CreatedAt.After(last) {
			last = event.CreatedAt
		}
	}
	for _, doc := range c.Documents {
		if doc.UploadedAt.After(last) {
			last = doc.UploadedAt
		}
		if doc.ReviewedAt != nil && doc.ReviewedAt.After(last) {
			last = *doc.ReviewedAt
		}
	}
	for _, clarification := range c.Clarifications {
		if clarification.CreatedAt.After(last) {
			last = clarification.CreatedAt
		}
		if clarification.RespondedAt != nil && clarification.RespondedAt.After(last) {
			last = *clarification.RespondedAt
		}
		if clarification.ResolvedAt != nil && clarification.ResolvedAt.After(last) {
			last = *clarification.ResolvedAt
		}
	}
	days := int(now.Sub(last).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
