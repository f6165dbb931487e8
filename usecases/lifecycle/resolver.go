package lifecycle

import (
	"slices"
	"sort"

	"github.com/lexora/lexora-backend/models"
)

// Raw persisted statuses that fold onto the completed lifecycle position.
// case_closed never regresses to an earlier stepper position once reached.
var completedRawStatuses = []models.CaseStatus{
	models.CaseCompleted,
	models.CaseClosed,
	models.CaseClientAcknowledged,
	models.CaseNoFurtherQueriesConfirmed,
}

// ResolveLifecycleStatus derives the presentation lifecycle state of a case
// from its persisted status, audit trail, opinion versions and pending
// clarifications. It is a total mapping: every persisted status resolves to
// exactly one lifecycle state. The resolver only classifies; transition
// legality belongs to the mutating actions.
func ResolveLifecycleStatus(c models.LegalCase) models.LifecycleStatus {
	// Terminal overrides first. The audit trail outranks the status column:
	// a case whose log says it was closed is completed even if the column
	// lags behind.
	if state, ok := terminalStateFromEvents(c.Events); ok {
		return state
	}

	if slices.Contains(completedRawStatuses, c.Status) {
		return models.LifecycleCompleted
	}
	if c.Status == models.CaseArchived {
		return models.LifecycleArchived
	}
	if c.Status == models.CaseCancelled {
		return models.LifecycleCancelled
	}

	// Opinion state overrides the in-progress statuses.
	latest := c.Opinion.LatestVersion()
	if latest != nil && !latest.IsDraft && latest.SubmittedAt != nil {
		if c.Status == models.CaseDelivered || c.OpinionViewed {
			return models.LifecycleDelivered
		}
		return models.LifecycleOpinionReady
	}

	if c.Status == models.CaseClarificationPending || c.PendingClarifications() > 0 {
		return models.LifecycleClarificationPending
	}

	if c.Status == models.CaseInReview || (latest != nil && latest.IsDraft) {
		return models.LifecycleInReview
	}

	if c.Status == models.CaseAssigned {
		return models.LifecycleAssigned
	}
	return models.LifecycleSubmitted
}

func terminalStateFromEvents(events []models.CaseEvent) (models.LifecycleStatus, bool) {
	if len(events) == 0 {
		return "", false
	}

	sorted := make([]models.CaseEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	for _, event := range sorted {
		switch event.EventType {
		case models.CaseEventClosed, models.CaseEventCompleted:
			return models.LifecycleCompleted, true
		case models.CaseEventArchived:
			return models.LifecycleArchived, true
		case models.CaseEventCancelled:
			return models.LifecycleCancelled, true
		case models.CaseEventStatusChanged:
			if slices.Contains(completedRawStatuses, models.CaseStatus(event.NewValue)) {
				return models.LifecycleCompleted, true
			}
		}
	}
	return "", false
}
