package models

import "time"

type Document struct {
	Id           string
	CaseId       string
	FileName     string
	DocumentType DocumentType
	// UploadedBy holds the uploader's display name as the original system
	// recorded it, not a stable id. The timeline generator attributes the
	// upload by comparing it against the client's full name.
	UploadedBy   string
	UploadedAt   time.Time
	ReviewStatus DocumentReviewStatus
	ReviewedAt   *time.Time
	ReviewedBy   *string
}

type DocumentType string

const (
	DocumentTypeGeneral DocumentType = "general"
	DocumentTypeOpinion DocumentType = "opinion"
)

type DocumentReviewStatus string

const (
	DocumentReviewPending  DocumentReviewStatus = "pending"
	DocumentReviewApproved DocumentReviewStatus = "approved"
	DocumentReviewRejected DocumentReviewStatus = "rejected"
)
