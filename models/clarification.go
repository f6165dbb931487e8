package models

import "time"

// Clarification is a question raised by one party requiring a response from
// the other. Responses are stored as child clarifications through ParentId.
type Clarification struct {
	Id            string
	CaseId        string
	ParentId      *string
	Question      string
	Priority      CasePriority
	IsResolved    bool
	Response      *string
	RespondedAt   *time.Time
	ResolvedBy    *UserId
	ResolvedAt    *time.Time
	CreatedByRole UserRole
	CreatedAt     time.Time
}

type CreateClarificationAttributes struct {
	CaseId        string
	ParentId      *string
	Question      string
	Priority      CasePriority
	CreatedByRole UserRole
}
