package lifecycle

import (
	"sort"
	"time"

	"github.com/lexora/lexora-backend/models"
)

// ComputeStageMetrics derives the seconds spent in each stage from the
// status_changed audit events, attributing the open interval since the last
// change to the current stage. Returns nil when there is no audit trail.
func ComputeStageMetrics(events []models.CaseEvent, now time.Time) *models.StageMetrics {
	if len(events) == 0 {
		return nil
	}

	sorted := make([]models.CaseEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	durations := make(map[string]float64)
	currentStage := "requested"
	stageStart := sorted[0].CreatedAt

	for _, event := range sorted {
		if event.EventType != models.CaseEventStatusChanged || event.NewValue == "" {
			continue
		}
		durations[currentStage] += event.CreatedAt.Sub(stageStart).Seconds()
		currentStage = event.NewValue
		stageStart = event.CreatedAt
	}

	durations[currentStage] += now.Sub(stageStart).Seconds()

	total := 0.0
	for _, d := range durations {
		total += d
	}

	return &models.StageMetrics{
		StageDurations: durations,
		TotalDuration:  total,
	}
}
