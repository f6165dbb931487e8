package models

import (
	"fmt"
	"slices"
	"time"
)

// LegalCase is the unit of work tracked through the legal-opinion workflow.
// Status is the system-of-record value written by mutating actions; the
// lifecycle resolver derives a separate presentation state from it and from
// the auxiliary flags and relations below.
type LegalCase struct {
	Id              string
	CaseNumber      string
	ClientId        UserId
	AssignedLawyerId *UserId
	Title           string
	Description     string
	Status          CaseStatus
	Priority        CasePriority
	SlaDeadline     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	AssignedAt      *time.Time
	CompletedAt     *time.Time

	LawyerAcceptanceStatus AcceptanceStatus
	LawyerAcceptedAt       *time.Time
	LawyerRejectedAt       *time.Time

	OpinionSubmittedAt *time.Time
	ClientConfirmedAt  *time.Time
	OpinionViewed      bool
	Rated              bool

	// Relations, loaded on demand by the repositories.
	Client         User
	Lawyer         *User
	Clarifications []Clarification
	Documents      []Document
	Opinion        *Opinion
	Events         []CaseEvent
}

type CaseStatus string

const (
	CaseSubmitted                 CaseStatus = "submitted"
	CaseAssigned                  CaseStatus = "assigned"
	CaseInReview                  CaseStatus = "in_review"
	CaseClarificationPending      CaseStatus = "clarification_pending"
	CaseOpinionReady              CaseStatus = "opinion_ready"
	CaseDelivered                 CaseStatus = "delivered"
	CaseClientAcknowledged        CaseStatus = "client_acknowledged"
	CaseNoFurtherQueriesConfirmed CaseStatus = "no_further_queries_confirmed"
	CaseClosed                    CaseStatus = "case_closed"
	CaseCompleted                 CaseStatus = "completed"
	CaseCancelled                 CaseStatus = "cancelled"
	CaseArchived                  CaseStatus = "archived"
	CaseUnknownStatus             CaseStatus = "unknown"
)

var validCaseStatuses = []CaseStatus{
	CaseSubmitted,
	CaseAssigned,
	CaseInReview,
	CaseClarificationPending,
	CaseOpinionReady,
	CaseDelivered,
	CaseClientAcknowledged,
	CaseNoFurtherQueriesConfirmed,
	CaseClosed,
	CaseCompleted,
	CaseCancelled,
	CaseArchived,
}

// Terminal statuses stop the SLA clock and freeze the progress stepper.
var terminalCaseStatuses = []CaseStatus{
	CaseClientAcknowledged,
	CaseNoFurtherQueriesConfirmed,
	CaseClosed,
	CaseCompleted,
	CaseCancelled,
	CaseArchived,
}

// Closed statuses admit no further writes. The acknowledgment statuses are
// terminal for display purposes but still advance through the post-opinion
// flow: client_acknowledged -> no_further_queries_confirmed -> case_closed.
var closedCaseStatuses = []CaseStatus{
	CaseClosed,
	CaseCompleted,
	CaseCancelled,
	CaseArchived,
}

var postOpinionTransitions = map[CaseStatus][]CaseStatus{
	CaseClientAcknowledged:        {CaseNoFurtherQueriesConfirmed},
	CaseNoFurtherQueriesConfirmed: {CaseClosed},
}

func (s CaseStatus) IsTerminal() bool {
	return slices.Contains(terminalCaseStatuses, s)
}

func (s CaseStatus) IsClosed() bool {
	return slices.Contains(closedCaseStatuses, s)
}

// CanTransitionTo reports whether a case may move from s to next. Closed
// cases never move. Cases in the acknowledgment phase only move forward
// along the post-opinion flow.
func (s CaseStatus) CanTransitionTo(next CaseStatus) bool {
	if s.IsClosed() {
		return false
	}
	if !s.IsTerminal() {
		return true
	}
	return slices.Contains(postOpinionTransitions[s], next)
}

func CaseStatusFrom(s string) CaseStatus {
	if slices.Contains(validCaseStatuses, CaseStatus(s)) {
		return CaseStatus(s)
	}
	return CaseUnknownStatus
}

func ValidateCaseStatuses(statuses []string) ([]CaseStatus, error) {
	sanitized := make([]CaseStatus, len(statuses))
	for i, status := range statuses {
		sanitized[i] = CaseStatusFrom(status)
		if sanitized[i] == CaseUnknownStatus {
			return []CaseStatus{}, fmt.Errorf("invalid status: %s %w", status, BadParameterError)
		}
	}
	return sanitized, nil
}

type CasePriority string

const (
	PriorityLow    CasePriority = "low"
	PriorityMedium CasePriority = "medium"
	PriorityHigh   CasePriority = "high"
	PriorityUrgent CasePriority = "urgent"
)

type AcceptanceStatus string

const (
	AcceptancePending  AcceptanceStatus = "pending"
	AcceptanceAccepted AcceptanceStatus = "accepted"
	AcceptanceRejected AcceptanceStatus = "rejected"
)

func (c LegalCase) HasAssignedLawyer() bool {
	return c.AssignedLawyerId != nil
}

// PendingClarifications counts unresolved parentless clarifications.
// Responses are modeled as child rows and never count as pending.
func (c LegalCase) PendingClarifications() int {
	n := 0
	for _, cl := range c.Clarifications {
		if cl.ParentId == nil && !cl.IsResolved {
			n++
		}
	}
	return n
}

func (c LegalCase) UnreviewedDocuments() int {
	n := 0
	for _, doc := range c.Documents {
		if doc.ReviewedAt == nil {
			n++
		}
	}
	return n
}

type CreateCaseAttributes struct {
	ClientId    UserId
	Title       string
	Description string
	Priority    CasePriority
	SlaDeadline *time.Time
}

type UpdateCaseStatusAttributes struct {
	Id     string
	Status CaseStatus
}

type CaseFilters struct {
	ClientId UserId
	LawyerId UserId
	Statuses []CaseStatus
}
