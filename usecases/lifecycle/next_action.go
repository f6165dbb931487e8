package lifecycle

import (
	"github.com/lexora/lexora-backend/models"
)

// ActionContext is the small derived view of a case a next-action rule can
// look at. The aggregator fills it from the loaded case.
type ActionContext struct {
	Status                   models.CaseStatus
	HasPendingClarifications bool
	HasUnreviewedDocuments   bool
	OpinionSubmitted         bool
	Rated                    bool
	HasAssignedLawyer        bool
}

// NextActionFor returns the single recommended next action for the given
// role, or nil when no rule matches. Each role has its own ordered rule
// chain; the first matching rule wins and order alone defines precedence.
func NextActionFor(role models.UserRole, ctx ActionContext) *models.NextAction {
	if role == models.RoleClient {
		return clientNextAction(ctx)
	}
	return lawyerNextAction(ctx)
}

func clientNextAction(ctx ActionContext) *models.NextAction {
	if ctx.Status == models.CaseOpinionReady && !ctx.Rated {
		return &models.NextAction{
			Title:       "Opinion Ready",
			Description: "Your legal opinion is ready for review",
			ActionLabel: "View Opinion",
			ActionHref:  "?tab=opinion",
			Priority:    models.ActionPriorityHigh,
			Icon:        "Eye",
			Actor:       models.RoleClient,
		}
	}

	if ctx.HasPendingClarifications {
		return &models.NextAction{
			Title:       "Clarification Needed",
			Description: "Your lawyer needs additional information",
			ActionLabel: "Respond Now",
			ActionHref:  "?tab=clarifications",
			Priority:    models.ActionPriorityHigh,
			Icon:        "MessageCircle",
			Actor:       models.RoleClient,
		}
	}

	if ctx.Status == models.CaseCompleted && !ctx.Rated {
		return &models.NextAction{
			Title:       "Rate Your Experience",
			Description: "Help us improve by rating the service",
			ActionLabel: "Rate Lawyer",
			ActionHref:  "/client/ratings",
			Priority:    models.ActionPriorityMedium,
			Icon:        "Star",
			Actor:       models.RoleClient,
		}
	}

	if !ctx.HasAssignedLawyer {
		return &models.NextAction{
			Title:       "Assignment in Progress",
			Description: "A lawyer will be assigned to your case soon",
			ActionLabel: "View Details",
			ActionHref:  "?tab=overview",
			Priority:    models.ActionPriorityLow,
			Icon:        "Clock",
			Actor:       models.RoleClient,
		}
	}

	if ctx.Status == models.CaseInReview {
		return &models.NextAction{
			Title:       "Case Under Review",
			Description: "Your lawyer is reviewing your case",
			ActionLabel: "View Progress",
			ActionHref:  "?tab=overview",
			Priority:    models.ActionPriorityLow,
			Icon:        "FileText",
			Actor:       models.RoleClient,
		}
	}

	return nil
}

func lawyerNextAction(ctx ActionContext) *models.NextAction {
	if ctx.HasPendingClarifications {
		return &models.NextAction{
			Title:       "Review Clarifications",
			Description: "Client has responded to your clarifications",
			ActionLabel: "Review Responses",
			ActionHref:  "?tab=clarifications",
			Priority:    models.ActionPriorityHigh,
			Icon:        "CheckCircle",
			Actor:       models.RoleLawyer,
		}
	}

	if ctx.HasUnreviewedDocuments {
		return &models.NextAction{
			Title:       "Review Documents",
			Description: "Uploaded documents are waiting for your review",
			ActionLabel: "Review Now",
			ActionHref:  "?tab=documents",
			Priority:    models.ActionPriorityHigh,
			Icon:        "FileText",
			Actor:       models.RoleLawyer,
		}
	}

	if ctx.Status == models.CaseInReview && !ctx.OpinionSubmitted {
		return &models.NextAction{
			Title:       "Submit Opinion",
			Description: "Review complete, ready to draft opinion",
			ActionLabel: "Draft Opinion",
			ActionHref:  "?tab=opinion",
			Priority:    models.ActionPriorityHigh,
			Icon:        "Edit3",
			Actor:       models.RoleLawyer,
		}
	}

	if ctx.Status == models.CaseAssigned {
		return &models.NextAction{
			Title:       "Begin Review",
			Description: "Start reviewing case documents and details",
			ActionLabel: "Start Review",
			ActionHref:  "?tab=documents",
			Priority:    models.ActionPriorityMedium,
			Icon:        "Play",
			Actor:       models.RoleLawyer,
		}
	}

	if ctx.Status == models.CaseNoFurtherQueriesConfirmed {
		return &models.NextAction{
			Title:       "Close Case",
			Description: "Client is satisfied. You can now close the case.",
			ActionLabel: "Close Case",
			ActionHref:  "?tab=opinion",
			Priority:    models.ActionPriorityHigh,
			Icon:        "CheckCircle",
			Actor:       models.RoleLawyer,
		}
	}

	return nil
}
