package models

import (
	"slices"
	"time"
)

// LifecycleStatus is the presentation-level derived status of a case. It is
// computed from the persisted Status column and auxiliary flags, and may
// diverge from it: several terminal statuses fold onto "completed".
type LifecycleStatus string

const (
	LifecycleSubmitted            LifecycleStatus = "submitted"
	LifecycleAssigned             LifecycleStatus = "assigned"
	LifecycleClarificationPending LifecycleStatus = "clarification_pending"
	LifecycleInReview             LifecycleStatus = "in_review"
	LifecycleOpinionReady         LifecycleStatus = "opinion_ready"
	LifecycleDelivered            LifecycleStatus = "delivered"
	LifecycleCompleted            LifecycleStatus = "completed"
	LifecycleArchived             LifecycleStatus = "archived"
	LifecycleCancelled            LifecycleStatus = "cancelled"
)

var TerminalLifecycleStatuses = []LifecycleStatus{
	LifecycleCompleted,
	LifecycleArchived,
	LifecycleCancelled,
}

func (s LifecycleStatus) IsTerminal() bool {
	return slices.Contains(TerminalLifecycleStatuses, s)
}

func (s LifecycleStatus) Label() string {
	switch s {
	case LifecycleSubmitted:
		return "Submitted"
	case LifecycleAssigned:
		return "Assigned"
	case LifecycleClarificationPending:
		return "Clarification Needed"
	case LifecycleInReview:
		return "In Review"
	case LifecycleOpinionReady:
		return "Opinion Ready"
	case LifecycleDelivered:
		return "Delivered"
	case LifecycleCompleted:
		return "Completed"
	case LifecycleArchived:
		return "Archived"
	case LifecycleCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

type SLAStatus string

const (
	SLAOnTrack SLAStatus = "on_track"
	SLAAtRisk  SLAStatus = "at_risk"
	SLADelayed SLAStatus = "delayed"
)

// SLAMetrics is the derived SLA view of a case. HoursRemaining is +Inf when
// no deadline is set.
type SLAMetrics struct {
	Status         SLAStatus
	HoursRemaining float64
	Label          string
	Text           string
	Color          string
	BgColor        string
	BorderColor    string
	DeliveredAt    *time.Time
}

type HealthStatus string

const (
	HealthHealthy HealthStatus = "healthy"
	HealthAtRisk  HealthStatus = "at_risk"
	HealthBlocked HealthStatus = "blocked"
)

type CaseHealth struct {
	Status  HealthStatus
	Label   string
	Color   string
	BgColor string
	Reasons []string
}

type ActionPriority string

const (
	ActionPriorityHigh   ActionPriority = "high"
	ActionPriorityMedium ActionPriority = "medium"
	ActionPriorityLow    ActionPriority = "low"
)

// NextAction is the single highest-priority suggested action for a given
// case and role. ActionHref is a fixed tab anchor or route; the caller is
// responsible for contextualizing it with the case id.
type NextAction struct {
	Title       string
	Description string
	ActionLabel string
	ActionHref  string
	Priority    ActionPriority
	Icon        string
	Actor       UserRole
}

type TimelineIcon string

const (
	IconUpload  TimelineIcon = "upload"
	IconMessage TimelineIcon = "message"
	IconCheck   TimelineIcon = "check"
	IconEye     TimelineIcon = "eye"
	IconFile    TimelineIcon = "file"
	IconClock   TimelineIcon = "clock"
)

type TimelineActor struct {
	Name      string
	Role      UserRole
	AvatarUrl string
}

// TimelineEvent is an ephemeral value produced per resolution, never stored.
type TimelineEvent struct {
	Id        string
	Actor     TimelineActor
	Action    string
	Entity    string
	Timestamp time.Time
	Icon      TimelineIcon
}

type StageStatus string

const (
	StageCompleted StageStatus = "completed"
	StageActive    StageStatus = "active"
	StageBlocked   StageStatus = "blocked"
	StagePending   StageStatus = "pending"
)

// WorkflowStage is one node in the vertical timeline presentation.
type WorkflowStage struct {
	Id          string
	Label       string
	Status      StageStatus
	Actor       UserRole
	Timestamp   *time.Time
	Description string
	IconName    string
	Visible     bool
}

// HorizontalStage is one node of the horizontal progress stepper.
type HorizontalStage struct {
	Id        string
	Label     string
	Completed bool
	Active    bool
}

type DashboardBucket string

const (
	BucketActive       DashboardBucket = "ACTIVE"
	BucketActionNeeded DashboardBucket = "ACTION_NEEDED"
	BucketSLARisk      DashboardBucket = "SLA_RISK"
	BucketCompleted    DashboardBucket = "COMPLETED"
)

// StageMetrics reports the time spent in each lifecycle stage, derived from
// status_changed audit events.
type StageMetrics struct {
	StageDurations map[string]float64
	TotalDuration  float64
}

// WorkflowSummary is the consolidated read-side view of a case. It is
// rebuilt from persisted state on every resolution and never cached.
type WorkflowSummary struct {
	CaseId            string
	LifecycleState    LifecycleStatus
	CurrentStageIndex int
	IsTerminal        bool
	CompletedAt       *time.Time
	HorizontalStages  []HorizontalStage
	TimelineStages    []WorkflowStage
	Timeline          []TimelineEvent
	Sla               SLAMetrics
	Health            CaseHealth
	NextStep          *NextAction
	Bucket            DashboardBucket
	UrgencyScore      int
	Metrics           *StageMetrics
}
