package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lexora/lexora-backend/dto"
	"github.com/lexora/lexora-backend/pure_utils"
	"github.com/lexora/lexora-backend/usecases"
)

func handleListCaseDocuments(uc usecases.Usecases) func(c *gin.Context) {
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
			"documents": pure_utils.Map(legalCase.Documents, dto.AdaptDocumentDto),
		})
	}
}
