package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/lexora/lexora-backend/models"
	"github.com/lexora/lexora-backend/pure_utils"
	"github.com/lexora/lexora-backend/repositories/dbmodels"
)

func (repo *LexoraDbRepository) GetCaseById(ctx context.Context, exec Executor, caseId string) (models.LegalCase, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectCaseColumns...).
			From(dbmodels.TABLE_CASES).
			Where(squirrel.Eq{"id": caseId}),
		dbmodels.AdaptCase,
	)
}

func (repo *LexoraDbRepository) ListCases(ctx context.Context, exec Executor, filters models.CaseFilters) ([]models.LegalCase, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectCaseColumns...).
		From(dbmodels.TABLE_CASES).
		OrderBy("created_at DESC")

	if filters.ClientId != "" {
		query = query.Where(squirrel.Eq{"client_id": string(filters.ClientId)})
	}
	if filters.LawyerId != "" {
		query = query.Where(squirrel.Eq{"assigned_lawyer_id": string(filters.LawyerId)})
	}
	if len(filters.Statuses) > 0 {
		query = query.Where(squirrel.Eq{"status": pure_utils.Map(filters.Statuses,
			func(s models.CaseStatus) string { return string(s) })})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptCase)
}

func (repo *LexoraDbRepository) CreateCase(
	ctx context.Context,
	exec Executor,
	attributes models.CreateCaseAttributes,
	newCaseId string,
	caseNumber string,
) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_CASES).
			Columns(
				"id",
				"case_number",
				"client_id",
				"title",
				"description",
				"status",
				"priority",
				"sla_deadline",
				"lawyer_acceptance_status",
			).
			Values(
				newCaseId,
				caseNumber,
				string(attributes.ClientId),
				attributes.Title,
				attributes.Description,
				string(models.CaseSubmitted),
				string(attributes.Priority),
				attributes.SlaDeadline,
				string(models.AcceptancePending),
			),
	)
	return err
}

// AssignLawyer claims the case for a lawyer only if no one is assigned yet.
// Returns ErrCaseAlreadyAssigned when the conditional update matches no row.
func (repo *LexoraDbRepository) AssignLawyer(
	ctx context.Context,
	exec Executor,
	caseId string,
	lawyerId models.UserId,
	now time.Time,
) error {
	affected, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_CASES).
			Set("assigned_lawyer_id", string(lawyerId)).
			Set("assigned_at", now).
			Set("status", string(models.CaseAssigned)).
			Set("lawyer_acceptance_status", string(models.AcceptancePending)).
			Set("updated_at", now).
			Where(squirrel.Eq{"id": caseId}).
			Where(squirrel.Eq{"assigned_lawyer_id": nil}),
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrCaseAlreadyAssigned
	}
	return nil
}

func (repo *LexoraDbRepository) UpdateCaseStatus(
	ctx context.Context,
	exec Executor,
	attributes models.UpdateCaseStatusAttributes,
	now time.Time,
) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_CASES).
			Set("status", string(attributes.Status)).
			Set("updated_at", now).
			Where(squirrel.Eq{"id": attributes.Id}),
	)
	return err
}

func (repo *LexoraDbRepository) UpdateCaseAcceptance(
	ctx context.Context,
	exec Executor,
	caseId string,
	status models.AcceptanceStatus,
	now time.Time,
) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_CASES).
		Set("lawyer_acceptance_status", string(status)).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": caseId})

	switch status {
	case models.AcceptanceAccepted:
		query = query.Set("lawyer_accepted_at", now)
	case models.AcceptanceRejected:
		query = query.
			Set("lawyer_rejected_at", now).
			Set("assigned_lawyer_id", nil).
			Set("status", string(models.CaseSubmitted))
	}

	_, err := ExecBuilder(ctx, exec, query)
	return err
}

func (repo *LexoraDbRepository) MarkCaseCompleted(
	ctx context.Context,
	exec Executor,
	caseId string,
	status models.CaseStatus,
	now time.Time,
) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_CASES).
			Set("status", string(status)).
			Set("completed_at", now).
			Set("updated_at", now).
			Where(squirrel.Eq{"id": caseId}),
	)
	return err
}
