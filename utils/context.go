package utils

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/lexora/lexora-backend/models"
)

type ContextKey int

const (
	ContextKeyLogger ContextKey = iota
	ContextKeyCredentials
)

func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger, found := ctx.Value(ContextKeyLogger).(*slog.Logger)
	if !found {
		return slog.Default()
	}
	return logger
}

func StoreLoggerInContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ContextKeyLogger, logger)
}

func StoreLoggerInContextMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctxWithLogger := StoreLoggerInContext(c.Request.Context(), logger)
		c.Request = c.Request.WithContext(ctxWithLogger)
		c.Next()
	}
}

func CredentialsFromCtx(ctx context.Context) (models.Credentials, bool) {
	creds, found := ctx.Value(ContextKeyCredentials).(models.Credentials)
	return creds, found
}

func StoreCredentialsInContext(ctx context.Context, creds models.Credentials) context.Context {
	return context.WithValue(ctx, ContextKeyCredentials, creds)
}

func Ptr[T any](v T) *T {
	return &v
}
