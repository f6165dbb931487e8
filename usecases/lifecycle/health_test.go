package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lexora/lexora-backend/models"
)

func TestComputeHealth_blockedOnPassedSla(t *testing.T) {
	// The SLA rule wins over every other factor, including other blockers.
	health := ComputeHealth(HealthFactors{
		SlaStatus:             models.SLADelayed,
		PendingClarifications: 5,
		HasAssignedLawyer:     false,
	})

	assert.Equal(t, models.HealthBlocked, health.Status)
	assert.Equal(t, []string{"SLA deadline passed"}, health.Reasons)
}

func TestComputeHealth_blockedOnTooManyClarifications(t *testing.T) {
	health := ComputeHealth(HealthFactors{
		SlaStatus:             models.SLAOnTrack,
		PendingClarifications: 4,
		HasAssignedLawyer:     true,
	})

	assert.Equal(t, models.HealthBlocked, health.Status)
	assert.Equal(t, []string{"4 pending clarifications"}, health.Reasons)
}

func TestComputeHealth_blockedWithoutLawyer(t *testing.T) {
	health := ComputeHealth(HealthFactors{
		SlaStatus:         models.SLAOnTrack,
		HasAssignedLawyer: false,
	})

	assert.Equal(t, models.HealthBlocked, health.Status)
	assert.Equal(t, []string{"Awaiting lawyer assignment"}, health.Reasons)
}

func TestComputeHealth_riskReasonsAccumulate(t *testing.T) {
	health := ComputeHealth(HealthFactors{
		SlaStatus:             models.SLAAtRisk,
		PendingClarifications: 1,
		UnreviewedDocuments:   3,
		DaysSinceLastActivity: 5,
		HasAssignedLawyer:     true,
	})

	assert.Equal(t, models.HealthAtRisk, health.Status)
	assert.Equal(t, []string{
		"SLA deadline approaching",
		"1 pending clarification",
		"3 documents need review",
		"No activity for 5 days",
	}, health.Reasons)
}

func TestComputeHealth_pluralClarifications(t *testing.T) {
	health := ComputeHealth(HealthFactors{
		SlaStatus:             models.SLAOnTrack,
		PendingClarifications: 2,
		HasAssignedLawyer:     true,
	})

	assert.Equal(t, models.HealthAtRisk, health.Status)
	assert.Equal(t, []string{"2 pending clarifications"}, health.Reasons)
}

func TestComputeHealth_healthy(t *testing.T) {
	health := ComputeHealth(HealthFactors{
		SlaStatus:             models.SLAOnTrack,
		UnreviewedDocuments:   2,
		DaysSinceLastActivity: 3,
		HasAssignedLawyer:     true,
	})

	assert.Equal(t, models.HealthHealthy, health.Status)
	assert.Equal(t, "Healthy", health.Label)
	assert.Equal(t, []string{"On track", "All actions completed"}, health.Reasons)
}
