package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/lexora/lexora-backend/models"
	"github.com/lexora/lexora-backend/repositories/dbmodels"
)

func (repo *LexoraDbRepository) ListCaseClarifications(ctx context.Context, exec Executor, caseId string) ([]models.Clarification, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectClarificationColumns...).
			From(dbmodels.TABLE_CLARIFICATIONS).
			Where(squirrel.Eq{"case_id": caseId}).
			OrderBy("created_at ASC"),
		dbmodels.AdaptClarification,
	)
}

func (repo *LexoraDbRepository) CreateClarification(
	ctx context.Context,
	exec Executor,
	attributes models.CreateClarificationAttributes,
	newClarificationId string,
) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_CLARIFICATIONS).
			Columns(
				"id",
				"case_id",
				"parent_id",
				"question",
				"priority",
				"created_by_role",
			).
			Values(
				newClarificationId,
				attributes.CaseId,
				attributes.ParentId,
				attributes.Question,
				string(attributes.Priority),
				string(attributes.CreatedByRole),
			),
	)
	return err
}
