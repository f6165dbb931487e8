package api

import (
	"github.com/gin-gonic/gin"

	"github.com/lexora/lexora-backend/usecases"
)

func AddRoutes(r *gin.Engine, uc usecases.Usecases) {
	r.GET("/liveness", handleLiveness())

	router := r.Group("/", CredentialsMiddleware())

	router.POST("/cases", handleCreateCase(uc))
	router.GET("/cases", handleListCases(uc))
	router.GET("/cases/:case_id", handleGetCase(uc))
	router.GET("/cases/:case_id/workflow", handleGetCaseWorkflow(uc))
	router.PATCH("/cases/:case_id", handleUpdateCaseStatus(uc))
	router.POST("/cases/:case_id/assign", handleAssignLawyer(uc))
	router.POST("/cases/:case_id/accept", handleAcceptCase(uc))
	router.POST("/cases/:case_id/reject", handleRejectCase(uc))

	router.GET("/cases/:case_id/clarifications", handleListCaseClarifications(uc))
	router.POST("/cases/:case_id/clarifications", handleCreateClarification(uc))
	router.GET("/cases/:case_id/documents", handleListCaseDocuments(uc))
	router.GET("/cases/:case_id/events", handleListCaseEvents(uc))
}
