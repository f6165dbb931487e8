package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/lexora/lexora-backend/utils"
)

func corsOption(env string) cors.Config {
	allowedOrigins := []string{"*"}

	if env == "development" {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://localhost:5173")
	}

	return cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{
			http.MethodOptions, http.MethodHead, http.MethodGet,
			http.MethodPost, http.MethodDelete, http.MethodPatch,
		},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-User-Id", "X-User-Role"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
}

func initRouter(ctx context.Context, conf AppConfiguration) *gin.Engine {
	if conf.env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := utils.LoggerFromContext(ctx)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(corsOption(conf.env)))
	r.Use(utils.StoreLoggerInContextMiddleware(logger))

	return r
}
