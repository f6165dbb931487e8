package dto

import (
	"time"

	"github.com/lexora/lexora-backend/models"
)

type APICaseEvent struct {
	Id            string    `json:"id"`
	CaseId        string    `json:"case_id"`
	UserId        string    `json:"user_id"`
	EventType     string    `json:"event_type"`
	NewValue      string    `json:"new_value,omitempty"`
	PreviousValue string    `json:"previous_value,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func AdaptCaseEventDto(event models.CaseEvent) APICaseEvent {
	return APICaseEvent{
		Id:            event.Id,
		CaseId:        event.CaseId,
		UserId:        string(event.UserId),
		EventType:     string(event.EventType),
		NewValue:      event.NewValue,
		PreviousValue: event.PreviousValue,
		CreatedAt:     event.CreatedAt,
	}
}
