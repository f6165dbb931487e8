package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/lexora/lexora-backend/models"
	"github.com/lexora/lexora-backend/repositories/dbmodels"
)

// GetCaseOpinion loads the case's opinion aggregate with all its versions,
// or nil when no opinion exists yet.
func (repo *LexoraDbRepository) GetCaseOpinion(ctx context.Context, exec Executor, caseId string) (*models.Opinion, error) {
	opinion, err := SqlToOptionalModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectOpinionColumns...).
			From(dbmodels.TABLE_OPINIONS).
			Where(squirrel.Eq{"case_id": caseId}),
		dbmodels.AdaptOpinion,
	)
	if err != nil || opinion == nil {
		return nil, err
	}

	versions, err := SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectOpinionVersionColumns...).
			From(dbmodels.TABLE_OPINION_VERSIONS).
			Where(squirrel.Eq{"opinion_id": opinion.Id}).
			OrderBy("version_number ASC"),
		dbmodels.AdaptOpinionVersion,
	)
	if err != nil {
		return nil, err
	}
	opinion.Versions = versions
	return opinion, nil
}
