package dto

import (
	"time"

	"github.com/lexora/lexora-backend/models"
	"github.com/lexora/lexora-backend/pure_utils"
)

type APIUser struct {
	Id        string `json:"id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	AvatarUrl string `json:"avatar_url,omitempty"`
}

func AdaptUserDto(user models.User) APIUser {
	return APIUser{
		Id:        string(user.Id),
		FullName:  user.FullName,
		Email:     user.Email,
		Role:      string(user.Role),
		AvatarUrl: user.AvatarUrl,
	}
}

type APICase struct {
	Id               string     `json:"id"`
	CaseNumber       string     `json:"case_number"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Status           string     `json:"status"`
	Priority         string     `json:"priority"`
	SlaDeadline      *time.Time `json:"sla_deadline"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	AssignedAt       *time.Time `json:"assigned_at,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	AcceptanceStatus string     `json:"acceptance_status"`
	OpinionViewed    bool       `json:"opinion_viewed"`
	Rated            bool       `json:"rated"`

	Client         APIUser            `json:"client"`
	Lawyer         *APIUser           `json:"lawyer,omitempty"`
	Clarifications []APIClarification `json:"clarifications"`
	Documents      []APIDocument      `json:"documents"`
	Events         []APICaseEvent     `json:"events"`
}

func AdaptCaseDto(c models.LegalCase) APICase {
	dto := APICase{
		Id:               c.Id,
		CaseNumber:       c.CaseNumber,
		Title:            c.Title,
		Description:      c.Description,
		Status:           string(c.Status),
		Priority:         string(c.Priority),
		SlaDeadline:      c.SlaDeadline,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
		AssignedAt:       c.AssignedAt,
		CompletedAt:      c.CompletedAt,
		AcceptanceStatus: string(c.LawyerAcceptanceStatus),
		OpinionViewed:    c.OpinionViewed,
		Rated:            c.Rated,
		Client:           AdaptUserDto(c.Client),
		Clarifications:   pure_utils.Map(c.Clarifications, AdaptClarificationDto),
		Documents:        pure_utils.Map(c.Documents, AdaptDocumentDto),
		Events:           pure_utils.Map(c.Events, AdaptCaseEventDto),
	}
	if c.Lawyer != nil {
		lawyer := AdaptUserDto(*c.Lawyer)
		dto.Lawyer = &lawyer
	}
	return dto
}

type CreateCaseBody struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	SlaDeadline *time.Time `json:"sla_deadline"`
}

type UpdateCaseStatusBody struct {
	Status string `json:"status" binding:"required"`
}

type AssignLawyerBody struct {
	LawyerId string `json:"lawyer_id" binding:"required"`
}
