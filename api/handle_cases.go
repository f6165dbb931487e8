package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lexora/lexora-backend/dto"
	"github.com/lexora/lexora-backend/models"
	"github.com/lexora/lexora-backend/pure_utils"
	"github.com/lexora/lexora-backend/usecases"
	"github.com/lexora/lexora-backend/utils"
)

type CaseInput struct {
	Id string `uri:"case_id" binding:"required,uuid"`
}

func handleCreateCase(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds, found := utils.CredentialsFromCtx(ctx)
		if !found {
			c.Status(http.StatusUnauthorized)
			return
		}

		var body dto.CreateCaseBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewCaseUseCase()
		createdCase, err := usecase.CreateCase(ctx, creds, models.CreateCaseAttributes{
			Title:       body.Title,
			Description: body.Description,
			Priority:    models.CasePriority(body.Priority),
			SlaDeadline: body.SlaDeadline,
		})
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{"case": dto.AdaptCaseDto(createdCase)})
	}
}

func handleListCases(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds, found := utils.CredentialsFromCtx(ctx)
		if !found {
			c.Status(http.StatusUnauthorized)
			return
		}

		statuses, err := models.ValidateCaseStatuses(c.QueryArray("status"))
		if presentError(ctx, c, err) {
			return
		}

		usecase := uc.NewCaseWorkflowUseCase()
		summaries, err := usecase.ListCaseWorkflows(ctx, creds, models.CaseFilters{
			Statuses: statuses,
		})
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"workflows": pure_utils.Map(summaries, dto.AdaptWorkflowSummaryDto),
		})
	}
}

func handleGetCase(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var caseInput CaseInput
		if err := c.ShouldBindUri(&caseInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewCaseUseCase()
		legalCase, err := usecase.GetCase(ctx, caseInput.Id)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"case": dto.AdaptCaseDto(legalCase)})
	}
}

func handleAssignLawyer(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds, found := utils.CredentialsFromCtx(ctx)
		if !found {
			c.Status(http.StatusUnauthorized)
			return
		}

		var caseInput CaseInput
		if err := c.ShouldBindUri(&caseInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		var body dto.AssignLawyerBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewCaseUseCase()
		legalCase, err := usecase.AssignLawyer(ctx, creds, caseInput.Id, models.UserId(body.LawyerId))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"case": dto.AdaptCaseDto(legalCase)})
	}
}

func handleAcceptCase(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds, found := utils.CredentialsFromCtx(ctx)
		if !found {
			c.Status(http.StatusUnauthorized)
			return
		}

		var caseInput CaseInput
		if err := c.ShouldBindUri(&caseInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewCaseUseCase()
		legalCase, err := usecase.AcceptCase(ctx, creds, caseInput.Id)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"case": dto.AdaptCaseDto(legalCase)})
	}
}

func handleRejectCase(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds, found := utils.CredentialsFromCtx(ctx)
		if !found {
			c.Status(http.StatusUnauthorized)
			return
		}

		var caseInput CaseInput
		if err := c.ShouldBindUri(&caseInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewCaseUseCase()
		legalCase, err := usecase.RejectCase(ctx, creds, caseInput.Id)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"case": dto.AdaptCaseDto(legalCase)})
	}
}

func handleUpdateCaseStatus(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds, found := utils.CredentialsFromCtx(ctx)
		if !found {
			c.Status(http.StatusUnauthorized)
			return
		}

		var caseInput CaseInput
		if err := c.ShouldBindUri(&caseInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		var body dto.UpdateCaseStatusBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewCaseUseCase()
		legalCase, err := usecase.UpdateCaseStatus(ctx, creds, caseInput.Id,
			models.CaseStatusFrom(body.Status))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"case": dto.AdaptCaseDto(legalCase)})
	}
}
