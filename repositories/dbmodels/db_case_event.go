package dbmodels

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/lexora/lexora-backend/models"
)

type DBCaseEvent struct {
	Id            string      `db:"id"`
	CaseId        string      `db:"case_id"`
	UserId        string      `db:"user_id"`
	EventType     string      `db:"event_type"`
	NewValue      null.String `db:"new_value"`
	PreviousValue null.String `db:"previous_value"`
	CreatedAt     time.Time   `db:"created_at"`
}

const TABLE_CASE_EVENTS = "case_events"

var SelectCaseEventColumns = ColumnList[DBCaseEvent]()

func AdaptCaseEvent(db DBCaseEvent) (models.CaseEvent, error) {
	return models.CaseEvent{
		Id:            db.Id,
		CaseId:        db.CaseId,
		UserId:        models.UserId(db.UserId),
		EventType:     models.CaseEventTypeFrom(db.EventType),
		NewValue:      db.NewValue.ValueOrZero(),
		PreviousValue: db.PreviousValue.ValueOrZero(),
		CreatedAt:     db.CreatedAt,
	}, nil
}
