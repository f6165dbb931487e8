package lifecycle

import (
	"fmt"
	"sort"

	"github.com/lexora/lexora-backend/models"
)

// GenerateTimeline projects a case and its relations into a flat list of
// discrete events, newest first. It is a pure projection: every event is
// rebuilt from the current rows on each call.
//
// Document uploads are attributed by comparing the stored uploader display
// name against the client's full name. This mirrors the recording system,
// which keeps a name rather than a stable id on the document row.
func GenerateTimeline(c models.LegalCase) []models.TimelineEvent {
	events := []models.TimelineEvent{
		{
			Id:        "created",
			Actor:     clientActor(c),
			Action:    "submitted case",
			Timestamp: c.CreatedAt,
			Icon:      models.IconFile,
		},
	}

	if c.AssignedAt != nil && c.Lawyer != nil {
		events = append(events, models.TimelineEvent{
			Id:        "assigned",
			Actor:     models.TimelineActor{Name: "System", Role: models.RoleSystem},
			Action:    "assigned case to",
			Entity:    c.Lawyer.FullName,
			Timestamp: *c.AssignedAt,
			Icon:      models.IconCheck,
		})
	}

	if c.LawyerAcceptedAt != nil && c.Lawyer != nil {
		events = append(events, models.TimelineEvent{
			Id:        "lawyer-accepted",
			Actor:     lawyerActor(c),
			Action:    "accepted the case",
			Timestamp: *c.LawyerAcceptedAt,
			Icon:      models.IconCheck,
		})
	}

	if c.LawyerRejectedAt != nil && c.Lawyer != nil {
		events = append(events, models.TimelineEvent{
			Id:        "lawyer-rejected",
			Actor:     lawyerActor(c),
			Action:    "rejected the case",
			Timestamp: *c.LawyerRejectedAt,
			Icon:      models.IconClock,
		})
	}

	for _, doc := range c.Documents {
		actor := lawyerActor(c)
		if doc.UploadedBy == c.Client.FullName {
			actor = clientActor(c)
		}
		events = append(events, models.TimelineEvent{
			Id:        fmt.Sprintf("doc-%s", doc.Id),
			Actor:     actor,
			Action:    "uploaded document",
			Entity:    doc.FileName,
			Timestamp: doc.UploadedAt,
			Icon:      models.IconUpload,
		})

		if doc.ReviewedAt != nil && c.Lawyer != nil {
			events = append(events, documentReviewEvent(c, doc))
		}
	}

	for _, clarification := range c.Clarifications {
		if c.Lawyer != nil {
			events = append(events, models.TimelineEvent{
				Id:        fmt.Sprintf("clarification-%s", clarification.Id),
				Actor:     lawyerActor(c),
				Action:    "requested clarification",
				Timestamp: clarification.CreatedAt,
				Icon:      models.IconMessage,
			})
		}

		if clarification.RespondedAt != nil {
			events = append(events, models.TimelineEvent{
				Id:        fmt.Sprintf("clarification-response-%s", clarification.Id),
				Actor:     clientActor(c),
				Action:    "responded to clarification",
				Timestamp: *clarification.RespondedAt,
				Icon:      models.IconMessage,
			})
		}

		if clarification.ResolvedAt != nil && c.Lawyer != nil {
			events = append(events, models.TimelineEvent{
				Id:        fmt.Sprintf("clarification-resolved-%s", clarification.Id),
				Actor:     lawyerActor(c),
				Action:    "resolved clarification",
				Timestamp: *clarification.ResolvedAt,
				Icon:      models.IconCheck,
			})
		}
	}

	if c.OpinionSubmittedAt != nil && c.Lawyer != nil {
		events = append(events, models.TimelineEvent{
			Id:        "opinion-submitted",
			Actor:     lawyerActor(c),
			Action:    "submitted legal opinion report to client",
			Timestamp: *c.OpinionSubmittedAt,
			Icon:      models.IconCheck,
		})
	}

	if c.ClientConfirmedAt != nil {
		events = append(events, models.TimelineEvent{
			Id:        "client-confirmed",
			Actor:     clientActor(c),
			Action:    "confirmed no further questions",
			Timestamp: *c.ClientConfirmedAt,
			Icon:      models.IconCheck,
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp)
	})
	return events
}

func documentReviewEvent(c models.LegalCase, doc models.Document) models.TimelineEvent {
	action := "reviewed document"
	icon := models.IconEye
	switch doc.ReviewStatus {
	case models.DocumentReviewApproved:
		action = "verified document"
		icon = models.IconCheck
	case models.DocumentReviewRejected:
		action = "rejected document"
	}

	actor := lawyerActor(c)
	if doc.ReviewedBy != nil && *doc.ReviewedBy != "" {
		actor.Name = *doc.ReviewedBy
	}

	return models.TimelineEvent{
		Id:        fmt.Sprintf("doc-reviewed-%s", doc.Id),
		Actor:     actor,
		Action:    action,
		Entity:    doc.FileName,
		Timestamp: *doc.ReviewedAt,
		Icon:      icon,
	}
}

func clientActor(c models.LegalCase) models.TimelineActor {
	return models.TimelineActor{
		Name:      c.Client.FullName,
		Role:      models.RoleClient,
		AvatarUrl: c.Client.AvatarUrl,
	}
}

func lawyerActor(c models.LegalCase) models.TimelineActor {
	actor := models.TimelineActor{Name: "Lawyer", Role: models.RoleLawyer}
	if c.Lawyer != nil {
		actor.Name = c.Lawyer.FullName
		actor.AvatarUrl = c.Lawyer.AvatarUrl
	}
	return actor
}
