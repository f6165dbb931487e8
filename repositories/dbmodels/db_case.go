package dbmodels

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/lexora/lexora-backend/models"
)

type DBCase struct {
	Id                     string      `db:"id"`
	CaseNumber             string      `db:"case_number"`
	ClientId               string      `db:"client_id"`
	AssignedLawyerId       null.String `db:"assigned_lawyer_id"`
	Title                  string      `db:"title"`
	Description            string      `db:"description"`
	Status                 string      `db:"status"`
	Priority               string      `db:"priority"`
	SlaDeadline            null.Time   `db:"sla_deadline"`
	CreatedAt              time.Time   `db:"created_at"`
	UpdatedAt              time.Time   `db:"updated_at"`
	AssignedAt             null.Time   `db:"assigned_at"`
	CompletedAt            null.Time   `db:"completed_at"`
	LawyerAcceptanceStatus string      `db:"lawyer_acceptance_status"`
	LawyerAcceptedAt       null.Time   `db:"lawyer_accepted_at"`
	LawyerRejectedAt       null.Time   `db:"lawyer_rejected_at"`
	OpinionSubmittedAt     null.Time   `db:"opinion_submitted_at"`
	ClientConfirmedAt      null.Time   `db:"client_confirmed_at"`
	OpinionViewed          bool        `db:"opinion_viewed"`
	Rated                  bool        `db:"rated"`
}

const TABLE_CASES = "cases"

var SelectCaseColumns = ColumnList[DBCase]()

func AdaptCase(db DBCase) (models.LegalCase, error) {
	c := models.LegalCase{
		Id:                     db.Id,
		CaseNumber:             db.CaseNumber,
		ClientId:               models.UserId(db.ClientId),
		Title:                  db.Title,
		Description:            db.Description,
		Status:                 models.CaseStatusFrom(db.Status),
		Priority:               models.CasePriority(db.Priority),
		SlaDeadline:            db.SlaDeadline.Ptr(),
		CreatedAt:              db.CreatedAt,
		UpdatedAt:              db.UpdatedAt,
		AssignedAt:             db.AssignedAt.Ptr(),
		CompletedAt:            db.CompletedAt.Ptr(),
		LawyerAcceptanceStatus: models.AcceptanceStatus(db.LawyerAcceptanceStatus),
		LawyerAcceptedAt:       db.LawyerAcceptedAt.Ptr(),
		LawyerRejectedAt:       db.LawyerRejectedAt.Ptr(),
		OpinionSubmittedAt:     db.OpinionSubmittedAt.Ptr(),
		ClientConfirmedAt:      db.ClientConfirmedAt.Ptr(),
		OpinionViewed:          db.OpinionViewed,
		Rated:                  db.Rated,
	}
	if db.AssignedLawyerId.Valid {
		lawyerId := models.UserId(db.AssignedLawyerId.String)
		c.AssignedLawyerId = &lawyerId
	}
	return c, nil
}
