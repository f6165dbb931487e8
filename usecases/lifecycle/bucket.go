package lifecycle

import (
	"github.com/lexora/lexora-backend/models"
)

// BucketFor sorts a case into its dashboard bucket. Action-needed states
// take precedence over SLA risk.
func BucketFor(state models.LifecycleStatus, sla models.SLAStatus) models.DashboardBucket {
	switch {
	case state.IsTerminal():
		return models.BucketCompleted
	case state == models.LifecycleClarificationPending,
		state == models.LifecycleOpinionReady:
		return models.BucketActionNeeded
	case sla == models.SLADelayed, sla == models.SLAAtRisk:
		return models.BucketSLARisk
	default:
		return models.BucketActive
	}
}

// UrgencyScore ranks active cases for dashboard ordering. Terminal cases
// always score zero.
func UrgencyScore(priority models.CasePriority, state models.LifecycleStatus, sla models.SLAStatus) int {
	if state.IsTerminal() {
		return 0
	}

	score := 0
	switch priority {
	case models.PriorityUrgent:
		score += 100
	case models.PriorityHigh:
		score += 75
	case models.PriorityMedium:
		score += 50
	case models.PriorityLow:
		score += 25
	}

	switch sla {
	case models.SLADelayed:
		score += 200
	case models.SLAAtRisk:
		score += 150
	}

	switch state {
	case models.LifecycleClarificationPending:
		score += 100
	case models.LifecycleOpinionReady:
		score += 50
	}

	return score
}
