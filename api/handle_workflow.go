package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lexora/lexora-backend/dto"
	"github.com/lexora/lexora-backend/models"
	"github.com/lexora/lexora-backend/usecases"
	"github.com/lexora/lexora-backend/utils"
)

func handleGetCaseWorkflow(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var caseInput CaseInput
		if err := c.ShouldBindUri(&caseInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		// The summary is viewer dependent. The role defaults to the caller's
		// own role and can be overridden by query param, so a client UI can
		// preview the lawyer view of the same case.
		role := models.RoleUnknownUser
		if creds, found := utils.CredentialsFromCtx(ctx); found {
			role = creds.Role
		}
		if param := c.Query("role"); param != "" {
			role = models.UserRoleFrom(param)
			if role == models.RoleUnknownUser {
				c.JSON(http.StatusBadRequest, gin.H{"message": "invalid role query param"})
				return
			}
		}

		usecase := uc.NewCaseWorkflowUseCase()
		summary, err := usecase.ResolveCaseWorkflow(ctx, caseInput.Id, role,
			usecases.WorkflowOptions{
				IncludeMetrics: c.Query("include_metrics") == "true",
			})
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"workflow": dto.AdaptWorkflowSummaryDto(summary)})
	}
}
