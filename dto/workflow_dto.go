package dto

import (
	"math"
	"time"

	"github.com/lexora/lexora-backend/models"
	"github.com/lexora/lexora-backend/pure_utils"
)

type APISlaMetrics struct {
	Status string `json:"status"`
	// HoursRemaining is null when the case has no deadline.
	HoursRemaining *float64   `json:"hours_remaining"`
	Label          string     `json:"label"`
	Text           string     `json:"text"`
	Color          string     `json:"color"`
	BgColor        string     `json:"bg_color"`
	BorderColor    string     `json:"border_color"`
	DeliveredAt    *time.Time `json:"delivered_at,omitempty"`
}

func AdaptSlaMetricsDto(sla models.SLAMetrics) APISlaMetrics {
	var hoursRemaining *float64
	if !math.IsInf(sla.HoursRemaining, 1) {
		hoursRemaining = &sla.HoursRemaining
	}
	return APISlaMetrics{
		Status:         string(sla.Status),
		HoursRemaining: hoursRemaining,
		Label:          sla.Label,
		Text:           sla.Text,
		Color:          sla.Color,
		BgColor:        sla.BgColor,
		BorderColor:    sla.BorderColor,
		DeliveredAt:    sla.DeliveredAt,
	}
}

type APICaseHealth struct {
	Status  string   `json:"status"`
	Label   string   `json:"label"`
	Color   string   `json:"color"`
	BgColor string   `json:"bg_color"`
	Reasons []string `json:"reasons"`
}

func AdaptCaseHealthDto(health models.CaseHealth) APICaseHealth {
	return APICaseHealth{
		Status:  string(health.Status),
		Label:   health.Label,
		Color:   health.Color,
		BgColor: health.BgColor,
		Reasons: health.Reasons,
	}
}

type APINextAction struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ActionLabel string `json:"action_label"`
	ActionHref  string `json:"action_href"`
	Priority    string `json:"priority"`
	Icon        string `json:"icon"`
	Actor       string `json:"actor"`
}

func AdaptNextActionDto(action models.NextAction) APINextAction {
	return APINextAction{
		Title:       action.Title,
		Description: action.Description,
		ActionLabel: action.ActionLabel,
		ActionHref:  action.ActionHref,
		Priority:    string(action.Priority),
		Icon:        action.Icon,
		Actor:       string(action.Actor),
	}
}

type APITimelineActor struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	AvatarUrl string `json:"avatar_url,omitempty"`
}

type APITimelineEvent struct {
	Id        string           `json:"id"`
	Actor     APITimelineActor `json:"actor"`
	Action    string           `json:"action"`
	Entity    string           `json:"entity,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
	Icon      string           `json:"icon"`
}

func AdaptTimelineEventDto(event models.TimelineEvent) APITimelineEvent {
	return APITimelineEvent{
		Id: event.Id,
		Actor: APITimelineActor{
			Name:      event.Actor.Name,
			Role:      string(event.Actor.Role),
			AvatarUrl: event.Actor.AvatarUrl,
		},
		Action:    event.Action,
		Entity:    event.Entity,
		Timestamp: event.Timestamp,
		Icon:      string(event.Icon),
	}
}

type APIWorkflowStage struct {
	Id          string     `json:"id"`
	Label       string     `json:"label"`
	Status      string     `json:"status"`
	Actor       string     `json:"actor"`
	Timestamp   *time.Time `json:"timestamp,omitempty"`
	Description string     `json:"description"`
	IconName    string     `json:"icon_name"`
	Visible     bool       `json:"visible"`
}

func AdaptWorkflowStageDto(stage models.WorkflowStage) APIWorkflowStage {
	return APIWorkflowStage{
		Id:          stage.Id,
		Label:       stage.Label,
		Status:      string(stage.Status),
		Actor:       string(stage.Actor),
		Timestamp:   stage.Timestamp,
		Description: stage.Description,
		IconName:    stage.IconName,
		Visible:     stage.Visible,
	}
}

type APIHorizontalStage struct {
	Id        string `json:"id"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
	Active    bool   `json:"active"`
}

func AdaptHorizontalStageDto(stage models.HorizontalStage) APIHorizontalStage {
	return APIHorizontalStage(stage)
}

type APIStageMetrics struct {
	StageDurations map[string]float64 `json:"stage_durations"`
	TotalDuration  float64            `json:"total_duration"`
}

type APIWorkflowSummary struct {
	CaseId            string               `json:"case_id"`
	LifecycleState    string               `json:"lifecycle_state"`
	LifecycleLabel    string               `json:"lifecycle_label"`
	CurrentStageIndex int                  `json:"current_stage_index"`
	IsTerminal        bool                 `json:"is_terminal"`
	CompletedAt       *time.Time           `json:"completed_at,omitempty"`
	HorizontalStages  []APIHorizontalStage `json:"horizontal_stages"`
	TimelineStages    []APIWorkflowStage   `json:"timeline_stages"`
	Timeline          []APITimelineEvent   `json:"timeline"`
	Sla               APISlaMetrics        `json:"sla"`
	Health            APICaseHealth        `json:"health"`
	NextStep          *APINextAction       `json:"next_step"`
	Bucket            string               `json:"bucket"`
	UrgencyScore      int                  `json:"urgency_score"`
	Metrics           *APIStageMetrics     `json:"metrics,omitempty"`
}

func AdaptWorkflowSummaryDto(summary models.WorkflowSummary) APIWorkflowSummary {
	dto := APIWorkflowSummary{
		CaseId:            summary.CaseId,
		LifecycleState:    string(summary.LifecycleState),
		LifecycleLabel:    summary.LifecycleState.Label(),
		CurrentStageIndex: summary.CurrentStageIndex,
		IsTerminal:        summary.IsTerminal,
		CompletedAt:       summary.CompletedAt,
		HorizontalStages:  pure_utils.Map(summary.HorizontalStages, AdaptHorizontalStageDto),
		TimelineStages:    pure_utils.Map(summary.TimelineStages, AdaptWorkflowStageDto),
		Timeline:          pure_utils.Map(summary.Timeline, AdaptTimelineEventDto),
		Sla:               AdaptSlaMetricsDto(summary.Sla),
		Health:            AdaptCaseHealthDto(summary.Health),
		Bucket:            string(summary.Bucket),
		UrgencyScore:      summary.UrgencyScore,
	}
	if summary.NextStep != nil {
		nextStep := AdaptNextActionDto(*summary.NextStep)
		dto.NextStep = &nextStep
	}
	if summary.Metrics != nil {
		dto.Metrics = &APIStageMetrics{
			StageDurations: summary.Metrics.StageDurations,
			TotalDuration:  summary.Metrics.TotalDuration,
		}
	}
	return dto
}
