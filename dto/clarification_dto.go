package dto

import (
	"time"

	"github.com/lexora/lexora-backend/models"
)

type APIClarification struct {
	Id            string     `json:"id"`
	CaseId        string     `json:"case_id"`
	ParentId      *string    `json:"parent_id,omitempty"`
	Question      string     `json:"question"`
	Priority      string     `json:"priority"`
	IsResolved    bool       `json:"is_resolved"`
	Response      *string    `json:"response,omitempty"`
	RespondedAt   *time.Time `json:"responded_at,omitempty"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty"`
	CreatedByRole string     `json:"created_by_role"`
	CreatedAt     time.Time  `json:"created_at"`
}

func AdaptClarificationDto(clarification models.Clarification) APIClarification {
	return APIClarification{
		Id:            clarification.Id,
		CaseId:        clarification.CaseId,
		ParentId:      clarification.ParentId,
		Question:      clarification.Question,
		Priority:      string(clarification.Priority),
		IsResolved:    clarification.IsResolved,
		Response:      clarification.Response,
		RespondedAt:   clarification.RespondedAt,
		ResolvedAt:    clarification.ResolvedAt,
		CreatedByRole: string(clarification.CreatedByRole),
		CreatedAt:     clarification.CreatedAt,
	}
}

type CreateClarificationBody struct {
	Question string  `json:"question" binding:"required"`
	Priority string  `json:"priority"`
	ParentId *string `json:"parent_id"`
}
