package lifecycle

import (
	"fmt"

	"github.com/lexora/lexora-backend/models"
)

// HealthFactors are the inputs of the health classifier, precomputed by the
// aggregator from the case and its relations.
type HealthFactors struct {
	SlaStatus             models.SLAStatus
	PendingClarifications int
	UnreviewedDocuments   int
	DaysSinceLastActivity int
	HasAssignedLawyer     bool
}

// ComputeHealth combines the factors into a tri-state verdict. Blocking
// rules are evaluated in order and the first match returns immediately with
// a single reason; risk reasons accumulate.
func ComputeHealth(factors HealthFactors) models.CaseHealth {
	if factors.SlaStatus == models.SLADelayed {
		return blockedHealth("SLA deadline passed")
	}
	if factors.PendingClarifications > 3 {
		return blockedHealth(fmt.Sprintf("%d pending clarifications", factors.PendingClarifications))
	}
	if !factors.HasAssignedLawyer {
		return blockedHealth("Awaiting lawyer assignment")
	}

	var reasons []string
	if factors.SlaStatus == models.SLAAtRisk {
		reasons = append(reasons, "SLA deadline approaching")
	}
	if factors.PendingClarifications > 0 {
		word := "clarifications"
		if factors.PendingClarifications == 1 {
			word = "clarification"
		}
		reasons = append(reasons, fmt.Sprintf("%d pending %s", factors.PendingClarifications, word))
	}
	if factors.UnreviewedDocuments > 2 {
		reasons = append(reasons, fmt.Sprintf("%d documents need review", factors.UnreviewedDocuments))
	}
	if factors.DaysSinceLastActivity > 3 {
		reasons = append(reasons, fmt.Sprintf("No activity for %d days", factors.DaysSinceLastActivity))
	}

	if len(reasons) > 0 {
		return models.CaseHealth{
			Status:  models.HealthAtRisk,
			Label:   "At Risk",
			Color:   "text-amber-700",
			BgColor: "bg-amber-100",
			Reasons: reasons,
		}
	}

	return models.CaseHealth{
		Status:  models.HealthHealthy,
		Label:   "Healthy",
		Color:   "text-green-700",
		BgColor: "bg-green-100",
		Reasons: []string{"On track", "All actions completed"},
	}
}

func blockedHealth(reason string) models.CaseHealth {
	return models.CaseHealth{
		Status:  models.HealthBlocked,
		Label:   "Blocked",
		Color:   "text-red-700",
		BgColor: "bg-red-100",
		Reasons: []string{reason},
	}
}
