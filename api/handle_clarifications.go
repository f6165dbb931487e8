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

func handleListCaseClarifications(uc usecases.Usecases) func(c *gin.Context) {
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
		c.JSON(http.StatusOK, gin.H{
			"clarifications": pure_utils.Map(legalCase.Clarifications, dto.AdaptClarificationDto),
		})
	}
}

func handleCreateClarification(uc usecases.Usecases) func(c *gin.Context) {
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
		var body dto.CreateClarificationBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewCaseUseCase()
		clarificationId, err := usecase.RequestClarification(ctx, creds,
			models.CreateClarificationAttributes{
				CaseId:   caseInput.Id,
				ParentId: body.ParentId,
				Question: body.Question,
				Priority: models.CasePriority(body.Priority),
			})
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": clarificationId})
	}
}
