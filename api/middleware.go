package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lexora/lexora-backend/models"
	"github.com/lexora/lexora-backend/utils"
)

// CredentialsMiddleware reads the caller identity from the X-User-Id and
// X-User-Role headers. Authentication itself lives upstream; this service
// only needs to know who the upstream authenticated.
func CredentialsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetHeader("X-User-Id")
		role := models.UserRoleFrom(c.GetHeader("X-User-Role"))
		if userId == "" || role == models.RoleUnknownUser {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"message": "missing or invalid caller identity headers"})
			return
		}

		creds := models.Credentials{
			UserId: models.UserId(userId),
			Role:   role,
		}
		newContext := utils.StoreCredentialsInContext(c.Request.Context(), creds)
		c.Request = c.Request.WithContext(newContext)
		c.Next()
	}
}
