package models

import "time"

// CaseEvent is one audit log row, written opportunistically by mutating
// actions in the same transaction as the change it records. The lifecycle
// resolver reads them to detect terminal overrides and to measure stage
// durations; it never writes them.
type CaseEvent struct {
	Id            string
	CaseId        string
	UserId        UserId
	EventType     CaseEventType
	NewValue      string
	PreviousValue string
	CreatedAt     time.Time
}

type CaseEventType string

const (
	CaseEventCreated                CaseEventType = "case_created"
	CaseEventAssigned               CaseEventType = "lawyer_assigned"
	CaseEventAccepted               CaseEventType = "lawyer_accepted"
	CaseEventRejected               CaseEventType = "lawyer_rejected"
	CaseEventStatusChanged          CaseEventType = "status_changed"
	CaseEventClarificationRequested CaseEventType = "clarification_requested"
	CaseEventOpinionSubmitted       CaseEventType = "opinion_submitted"
	CaseEventClosed                 CaseEventType = "case_closed"
	CaseEventCompleted              CaseEventType = "completed"
	CaseEventArchived               CaseEventType = "archived"
	CaseEventCancelled              CaseEventType = "cancelled"
	CaseEventUnknown                CaseEventType = "unknown_event"
)

func CaseEventTypeFrom(s string) CaseEventType {
	switch s {
	case "case_created":
		return CaseEventCreated
	case "lawyer_assigned":
		return CaseEventAssigned
	case "lawyer_accepted":
		return CaseEventAccepted
	case "lawyer_rejected":
		return CaseEventRejected
	case "status_changed":
		return CaseEventStatusChanged
	case "clarification_requested":
		return CaseEventClarificationRequested
	case "opinion_submitted":
		return CaseEventOpinionSubmitted
	case "case_closed":
		return CaseEventClosed
	case "completed":
		return CaseEventCompleted
	case "archived":
		return CaseEventArchived
	case "cancelled":
		return CaseEventCancelled
	default:
		return CaseEventUnknown
	}
}

type CreateCaseEventAttributes struct {
	CaseId        string
	UserId        UserId
	EventType     CaseEventType
	NewValue      *string
	PreviousValue *string
}
