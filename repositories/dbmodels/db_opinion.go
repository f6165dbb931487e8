package dbmodels

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/lexora/lexora-backend/models"
)

type DBOpinion struct {
	Id        string    `db:"id"`
	CaseId    string    `db:"case_id"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

type DBOpinionVersion struct {
	Id            string      `db:"id"`
	OpinionId     string      `db:"opinion_id"`
	VersionNumber int         `db:"version_number"`
	Content       string      `db:"content"`
	PdfUrl        null.String `db:"pdf_url"`
	IsDraft       bool        `db:"is_draft"`
	SubmittedAt   null.Time   `db:"submitted_at"`
	CreatedAt     time.Time   `db:"created_at"`
}

const (
	TABLE_OPINIONS         = "opinions"
	TABLE_OPINION_VERSIONS = "opinion_versions"
)

var (
	SelectOpinionColumns        = ColumnList[DBOpinion]()
	SelectOpinionVersionColumns = ColumnList[DBOpinionVersion]()
)

func AdaptOpinion(db DBOpinion) (models.Opinion, error) {
	return models.Opinion{
		Id:        db.Id,
		CaseId:    db.CaseId,
		Status:    models.OpinionStatus(db.Status),
		CreatedAt: db.CreatedAt,
	}, nil
}

func AdaptOpinionVersion(db DBOpinionVersion) (models.OpinionVersion, error) {
	return models.OpinionVersion{
		Id:            db.Id,
		OpinionId:     db.OpinionId,
		VersionNumber: db.VersionNumber,
		Content:       db.Content,
		PdfUrl:        db.PdfUrl.Ptr(),
		IsDraft:       db.IsDraft,
		SubmittedAt:   db.SubmittedAt.Ptr(),
		CreatedAt:     db.CreatedAt,
	}, nil
}
