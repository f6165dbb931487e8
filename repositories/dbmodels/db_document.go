package dbmodels

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/lexora/lexora-backend/models"
)

type DBDocument struct {
	Id           string      `db:"id"`
	CaseId       string      `db:"case_id"`
	FileName     string      `db:"file_name"`
	DocumentType string      `db:"document_type"`
	UploadedBy   string      `db:"uploaded_by"`
	UploadedAt   time.Time   `db:"uploaded_at"`
	ReviewStatus string      `db:"review_status"`
	ReviewedAt   null.Time   `db:"reviewed_at"`
	ReviewedBy   null.String `db:"reviewed_by"`
}

const TABLE_DOCUMENTS = "documents"

var SelectDocumentColumns = ColumnList[DBDocument]()

func AdaptDocument(db DBDocument) (models.Document, error) {
	return models.Document{
		Id:           db.Id,
		CaseId:       db.CaseId,
		FileName:     db.FileName,
		DocumentType: models.DocumentType(db.DocumentType),
		UploadedBy:   db.UploadedBy,
		UploadedAt:   db.UploadedAt,
		ReviewStatus: models.DocumentReviewStatus(db.ReviewStatus),
		ReviewedAt:   db.ReviewedAt.Ptr(),
		ReviewedBy:   db.ReviewedBy.Ptr(),
	}, nil
}
