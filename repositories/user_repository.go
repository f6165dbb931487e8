package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/lexora/lexora-backend/models"
	"github.com/lexora/lexora-backend/repositories/dbmodels"
)

func (repo *LexoraDbRepository) GetUserById(ctx context.Context, exec Executor, userId models.UserId) (models.User, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectUserColumns...).
			From(dbmodels.TABLE_USERS).
			Where(squirrel.Eq{"id": string(userId)}),
		dbmodels.AdaptUser,
	)
}
