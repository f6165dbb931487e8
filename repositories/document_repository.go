package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/lexora/lexora-backend/models"
	"github.com/lexora/lexora-backend/repositories/dbmodels"
)

func (repo *LexoraDbRepository) ListCaseDocuments(ctx context.Context, exec Executor, caseId string) ([]models.Document, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectDocumentColumns...).
			From(dbmodels.TABLE_DOCUMENTS).
			Where(squirrel.Eq{"case_id": caseId}).
			OrderBy("uploaded_at ASC"),
		dbmodels.AdaptDocument,
	)
}
