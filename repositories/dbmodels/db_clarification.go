package dbmodels

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/lexora/lexora-backend/models"
)

type DBClarification struct {
	Id            string      `db:"id"`
	CaseId        string      `db:"case_id"`
	ParentId      null.String `db:"parent_id"`
	Question      string      `db:"question"`
	Priority      string      `db:"priority"`
	IsResolved    bool        `db:"is_resolved"`
	Response      null.String `db:"response"`
	RespondedAt   null.Time   `db:"responded_at"`
	ResolvedBy    null.String `db:"resolved_by"`
	ResolvedAt    null.Time   `db:"resolved_at"`
	CreatedByRole string      `db:"created_by_role"`
	CreatedAt     time.Time   `db:"created_at"`
}

const TABLE_CLARIFICATIONS = "clarifications"

var SelectClarificationColumns = ColumnList[DBClarification]()

func AdaptClarification(db DBClarification) (models.Clarification, error) {
	clarification := models.Clarification{
		Id:            db.Id,
		CaseId:        db.CaseId,
		ParentId:      db.ParentId.Ptr(),
		Question:      db.Question,
		Priority:      models.CasePriority(db.Priority),
		IsResolved:    db.IsResolved,
		Response:      db.Response.Ptr(),
		RespondedAt:   db.RespondedAt.Ptr(),
		ResolvedAt:    db.ResolvedAt.Ptr(),
		CreatedByRole: models.UserRoleFrom(db.CreatedByRole),
		CreatedAt:     db.CreatedAt,
	}
	if db.ResolvedBy.Valid {
		resolvedBy := models.UserId(db.ResolvedBy.String)
		clarification.ResolvedBy = &resolvedBy
	}
	return clarification, nil
}
