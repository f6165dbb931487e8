package lifecycle

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lexora/lexora-backend/models"
	"github.com/lexora/lexora-backend/utils"
)

func TestComputeSLA_noDeadline(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	sla := ComputeSLA(nil, now)

	assert.Equal(t, models.SLAOnTrack, sla.Status)
	assert.True(t, math.IsInf(sla.HoursRemaining, 1))
	assert.Equal(t, "No deadline set", sla.Label)
	assert.Equal(t, "No deadline", sla.Text)
}

func TestComputeSLA_bands(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline time.Time
		status   models.SLAStatus
		label    string
	}{
		{"well in the future", now.Add(72 * time.Hour), models.SLAOnTrack, "On track"},
		{"exactly 24h away is still on track", now.Add(24 * time.Hour), models.SLAOnTrack, "On track"},
		{"just under 24h", now.Add(24*time.Hour - time.Second), models.SLAAtRisk, "Due soon"},
		{"deadline is now", now, models.SLAAtRisk, "Due soon"},
		{"past deadline", now.Add(-time.Hour), models.SLADelayed, "Overdue"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sla := ComputeSLA(&tt.deadline, now)
			assert.Equal(t, tt.status, sla.Status)
			assert.Equal(t, tt.label, sla.Label)
		})
	}
}

func TestComputeSLA_overdueText(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	deadline := now.Add(-5*time.Hour - 30*time.Minute)

	sla := ComputeSLA(&deadline, now)

	assert.Equal(t, models.SLADelayed, sla.Status)
	assert.Equal(t, "6h overdue", sla.Text)
}

func TestFormatTimeRemaining(t *testing.T) {
	tests := []struct {
		hours    float64
		expected string
	}{
		{math.Inf(1), "No deadline"},
		{-0.5, "1h overdue"},
		{-26, "26h overdue"},
		{0.5, "30m remaining"},
		{2.9, "2h remaining"},
		{23.9, "23h remaining"},
		{24, "1d remaining"},
		{49, "2d remaining"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatTimeRemaining(tt.hours))
	}
}

func TestComputeCaseSLA_stopsTheClockWhenDelivered(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	deadline := now.Add(-48 * time.Hour)
	submittedAt := now.Add(-72 * time.Hour)

	c := models.LegalCase{
		SlaDeadline:        &deadline,
		OpinionSubmittedAt: &submittedAt,
	}

	sla := ComputeCaseSLA(c, models.LifecycleDelivered, now)

	assert.Equal(t, models.SLAOnTrack, sla.Status)
	assert.Equal(t, "Delivered", sla.Label)
	assert.Equal(t, "Delivered", sla.Text)
	assert.Equal(t, &submittedAt, sla.DeliveredAt)
}

func TestComputeCaseSLA_terminalPrefersCompletedAt(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	completedAt := now.Add(-24 * time.Hour)
	submittedAt := now.Add(-72 * time.Hour)

	c := models.LegalCase{
		SlaDeadline:        utils.Ptr(now.Add(-time.Hour)),
		CompletedAt:        &completedAt,
		OpinionSubmittedAt: &submittedAt,
	}

	sla := ComputeCaseSLA(c, models.LifecycleCompleted, now)

	assert.Equal(t, &completedAt, sla.DeliveredAt)
}

func TestComputeCaseSLA_activeCaseUsesDeadline(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	deadline := now.Add(-time.Hour)

	c := models.LegalCase{SlaDeadline: &deadline}

	sla := ComputeCaseSLA(c, models.LifecycleInReview, now)

	assert.Equal(t, models.SLADelayed, sla.Status)
	assert.Nil(t, sla.DeliveredAt)
}
