package dbmodels

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/lexora/lexora-backend/models"
)

type DBUser struct {
	Id        string      `db:"id"`
	FullName  string      `db:"full_name"`
	Email     string      `db:"email"`
	Role      string      `db:"role"`
	AvatarUrl null.String `db:"avatar_url"`
	CreatedAt time.Time   `db:"created_at"`
}

const TABLE_USERS = "users"

var SelectUserColumns = ColumnList[DBUser]()

func AdaptUser(db DBUser) (models.User, error) {
	return models.User{
		Id:        models.UserId(db.Id),
		FullName:  db.FullName,
		Email:     db.Email,
		Role:      models.UserRoleFrom(db.Role),
		AvatarUrl: db.AvatarUrl.ValueOrZero(),
	}, nil
}
