package lifecycle

import (
	"fmt"
	"time"

	"github.com/lexora/lexora-backend/models"
)

type stageDefinition struct {
	id    string
	label string
}

// Canonical stepper order. Every lifecycle state maps onto exactly one of
// these positions.
var canonicalStages = []stageDefinition{
	{id: "requested", label: "Requested"},
	{id: "assigned", label: "Assigned"},
	{id: "in_review", label: "Under Review"},
	{id: "opinion_ready", label: "Opinion Ready"},
	{id: "completed", label: "Completed"},
}

// stageIndexFor folds a lifecycle state onto its stepper position.
func stageIndexFor(state models.LifecycleStatus) int {
	switch state {
	case models.LifecycleSubmitted:
		return 0
	case models.LifecycleAssigned:
		return 1
	case models.LifecycleClarificationPending, models.LifecycleInReview:
		return 2
	case models.LifecycleOpinionReady, models.LifecycleDelivered:
		return 3
	case models.LifecycleCompleted, models.LifecycleArchived, models.LifecycleCancelled:
		return 4
	default:
		return 0
	}
}

// BuildHorizontalStages derives the horizontal stepper: stages before the
// current position are completed, the current one is active, and a terminal
// state completes everything.
func BuildHorizontalStages(state models.LifecycleStatus) ([]models.HorizontalStage, int) {
	current := stageIndexFor(state)
	terminal := state.IsTerminal()

	stages := make([]models.HorizontalStage, len(canonicalStages))
	for i, def := range canonicalStages {
		stages[i] = models.HorizontalStage{
			Id:        def.id,
			Label:     def.label,
			Completed: terminal || i <= current,
			Active:    !terminal && i == current,
		}
	}
	return stages, current
}

// BlockedState reports whether a case is waiting on a client response, with
// a human readable reason.
type BlockedState struct {
	IsBlocked bool
	Reason    string
}

// DetectBlockedState flags cases with pending clarifications awaiting a
// client response. Terminal cases are never blocked.
func DetectBlockedState(c models.LegalCase, state models.LifecycleStatus) BlockedState {
	if state.IsTerminal() {
		return BlockedState{}
	}

	pending := 0
	for _, cl := range c.Clarifications {
		if cl.ParentId == nil && !cl.IsResolved && cl.Response == nil {
			pending++
		}
	}
	if pending > 0 {
		word := "clarifications"
		if pending == 1 {
			word = "clarification"
		}
		return BlockedState{
			IsBlocked: true,
			Reason:    fmt.Sprintf("%d %s need your response", pending, word),
		}
	}
	return BlockedState{}
}

// BuildTimelineStages derives the vertical stage list with per-stage status,
// actor, icon and description. The opinion stage is shown to clients only
// once it is reached; lawyers always see it.
func BuildTimelineStages(
	c models.LegalCase,
	state models.LifecycleStatus,
	blocked BlockedState,
	role models.UserRole,
	now time.Time,
) []models.WorkflowStage {
	stages := make([]models.WorkflowStage, 0, len(canonicalStages))

	stages = append(stages, models.WorkflowStage{
		Id:          "requested",
		Label:       "Requested",
		Status:      models.StageCompleted,
		Actor:       models.RoleClient,
		Timestamp:   &c.CreatedAt,
		Description: "Case submitted by client",
		IconName:    "FileText",
		Visible:     true,
	})

	assigned := state != models.LifecycleSubmitted
	assignedStage := models.WorkflowStage{
		Id:          "assigned",
		Label:       "Assigned",
		Status:      models.StagePending,
		Actor:       models.RoleLawyer,
		Timestamp:   c.AssignedAt,
		Description: "Awaiting lawyer assignment",
		IconName:    "User",
		Visible:     true,
	}
	if assigned {
		assignedStage.Status = models.StageCompleted
	}
	if c.Lawyer != nil {
		assignedStage.Description = fmt.Sprintf("Assigned to %s", c.Lawyer.FullName)
	}
	stages = append(stages, assignedStage)

	reviewStage := models.WorkflowStage{
		Id:          "in_review",
		Label:       "Under Review",
		Status:      reviewStageStatus(state, blocked),
		Actor:       models.RoleLawyer,
		Description: "Lawyer reviewing case",
		IconName:    "Eye",
		Visible:     true,
	}
	switch reviewStage.Status {
	case models.StageBlocked:
		reviewStage.Label = "Clarification Needed"
		reviewStage.Description = blocked.Reason
		reviewStage.IconName = "AlertCircle"
	case models.StageActive:
		reviewStage.Timestamp = &now
	}
	stages = append(stages, reviewStage)

	opinionReached := stageIndexFor(state) >= 3
	opinionStage := models.WorkflowStage{
		Id:          "opinion_ready",
		Label:       "Opinion Ready",
		Status:      models.StagePending,
		Actor:       models.RoleLawyer,
		Timestamp:   c.OpinionSubmittedAt,
		Description: "Legal opinion prepared",
		IconName:    "FileText",
		Visible:     opinionReached || role == models.RoleLawyer,
	}
	switch {
	case state == models.LifecycleOpinionReady || state == models.LifecycleDelivered:
		opinionStage.Status = models.StageActive
	case opinionReached:
		opinionStage.Status = models.StageCompleted
	}
	stages = append(stages, opinionStage)

	completedStage := models.WorkflowStage{
		Id:          "completed",
		Label:       "Completed",
		Status:      models.StagePending,
		Actor:       models.RoleClient,
		Timestamp:   c.CompletedAt,
		Description: "Awaiting completion",
		IconName:    "CheckCircle",
		Visible:     true,
	}
	if state == models.LifecycleCompleted {
		completedStage.Status = models.StageCompleted
		completedStage.Description = "Case successfully completed"
	}
	stages = append(stages, completedStage)

	return stages
}

func reviewStageStatus(state models.LifecycleStatus, blocked BlockedState) models.StageStatus {
	if state == models.LifecycleClarificationPending && blocked.IsBlocked {
		return models.StageBlocked
	}
	switch state {
	case models.LifecycleInReview, models.LifecycleClarificationPending:
		return models.StageActive
	}
	if stageIndexFor(state) > 2 {
		return models.StageCompleted
	}
	return models.StagePending
}
