package dto

import (
	"time"

	"github.com/lexora/lexora-backend/models"
)

type APIDocument struct {
	Id           string     `json:"id"`
	CaseId       string     `json:"case_id"`
	FileName     string     `json:"file_name"`
	DocumentType string     `json:"document_type"`
	UploadedBy   string     `json:"uploaded_by"`
	UploadedAt   time.Time  `json:"uploaded_at"`
	ReviewStatus string     `json:"review_status"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
	ReviewedBy   *string    `json:"reviewed_by,omitempty"`
}

func AdaptDocumentDto(document models.Document) APIDocument {
	return APIDocument{
		Id:           document.Id,
		CaseId:       document.CaseId,
		FileName:     document.FileName,
		DocumentType: string(document.DocumentType),
		UploadedBy:   document.UploadedBy,
		UploadedAt:   document.UploadedAt,
		ReviewStatus: string(document.ReviewStatus),
		ReviewedAt:   document.ReviewedAt,
		ReviewedBy:   document.ReviewedBy,
	}
}
