package lifecycle

import (
	"fmt"
	"math"
	"time"

	"github.com/lexora/lexora-backend/models"
)

// ComputeSLA classifies the remaining time until deadline into on-track,
// at-risk and delayed bands. The at-risk band is [0h, 24h): a deadline
// exactly 24 hours away is still on track, and a deadline of exactly now is
// at risk, not delayed.
func ComputeSLA(deadline *time.Time, now time.Time) models.SLAMetrics {
	if deadline == nil {
		return models.SLAMetrics{
			Status:         models.SLAOnTrack,
			HoursRemaining: math.Inf(1),
			Label:          "No deadline set",
			Text:           FormatTimeRemaining(math.Inf(1)),
			Color:          "text-slate-500",
			BgColor:        "bg-slate-50",
			BorderColor:    "border-slate-200",
		}
	}

	hoursRemaining := deadline.Sub(now).Hours()

	switch {
	case hoursRemaining < 0:
		return models.SLAMetrics{
			Status:         models.SLADelayed,
			HoursRemaining: hoursRemaining,
			Label:          "Overdue",
			Text:           FormatTimeRemaining(hoursRemaining),
			Color:          "text-red-600",
			BgColor:        "bg-red-50",
			BorderColor:    "border-red-200",
		}
	case hoursRemaining < 24:
		return models.SLAMetrics{
			Status:         models.SLAAtRisk,
			HoursRemaining: hoursRemaining,
			Label:          "Due soon",
			Text:           FormatTimeRemaining(hoursRemaining),
			Color:          "text-amber-600",
			BgColor:        "bg-amber-50",
			BorderColor:    "border-amber-200",
		}
	default:
		return models.SLAMetrics{
			Status:         models.SLAOnTrack,
			HoursRemaining: hoursRemaining,
			Label:          "On track",
			Text:           FormatTimeRemaining(hoursRemaining),
			Color:          "text-green-600",
			BgColor:        "bg-green-50",
			BorderColor:    "border-green-200",
		}
	}
}

// ComputeCaseSLA wraps ComputeSLA with the terminal stop condition: once a
// case is delivered or terminal the SLA clock stops, whatever the deadline
// says.
func ComputeCaseSLA(c models.LegalCase, state models.LifecycleStatus, now time.Time) models.SLAMetrics {
	if state.IsTerminal() || state == models.LifecycleDelivered {
		deliveredAt := c.CompletedAt
		if deliveredAt == nil {
			deliveredAt = c.OpinionSubmittedAt
		}
		return models.SLAMetrics{
			Status:         models.SLAOnTrack,
			HoursRemaining: 0,
			Label:          "Delivered",
			Text:           "Delivered",
			Color:          "text-emerald-700",
			BgColor:        "bg-emerald-50",
			BorderColor:    "border-emerald-200",
			DeliveredAt:    deliveredAt,
		}
	}
	return ComputeSLA(c.SlaDeadline, now)
}

// FormatTimeRemaining renders an hour count as a short human readable
// duration. Negative values render as overdue.
func FormatTimeRemaining(hours float64) string {
	switch {
	case math.IsInf(hours, 1):
		return "No deadline"
	case hours < 0:
		return fmt.Sprintf("%dh overdue", int(math.Abs(math.Floor(hours))))
	case hours < 1:
		return fmt.Sprintf("%dm remaining", int(math.Floor(hours*60)))
	case hours < 24:
		return fmt.Sprintf("%dh remaining", int(math.Floor(hours)))
	default:
		return fmt.Sprintf("%dd remaining", int(math.Floor(hours/24)))
	}
}
