package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/lexora/lexora-backend/models"
	"github.com/lexora/lexora-backend/repositories/dbmodels"
)

func (repo *LexoraDbRepository) ListCaseEvents(ctx context.Context, exec Executor, caseId string) ([]models.CaseEvent, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectCaseEventColumns...).
			From(dbmodels.TABLE_CASE_EVENTS).
			Where(squirrel.Eq{"case_id": caseId}).
			OrderBy("created_at DESC"),
		dbmodels.AdaptCaseEvent,
	)
}

func (repo *LexoraDbRepository) CreateCaseEvent(
	ctx context.Context,
	exec Executor,
	attributes models.CreateCaseEventAttributes,
) error {
	return repo.BatchCreateCaseEvents(ctx, exec, []models.CreateCaseEventAttributes{attributes})
}

func (repo *LexoraDbRepository) BatchCreateCaseEvents(
	ctx context.Context,
	exec Executor,
	attributes []models.CreateCaseEventAttributes,
) error {
	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_CASE_EVENTS).
		Columns(
			"id",
			"case_id",
			"user_id",
			"event_type",
			"new_value",
			"previous_value",
		)

	for _, attrs := range attributes {
		query = query.Values(
			uuid.NewString(),
			attrs.CaseId,
			string(attrs.UserId),
			string(attrs.EventType),
			attrs.NewValue,
			attrs.PreviousValue,
		)
	}

	_, err := ExecBuilder(ctx, exec, query)
	return err
}
