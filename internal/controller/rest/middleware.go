package rest

import (
	"net/http"
	"strings"

	"disputeresolver/internal/domain/auth"

	"github.com/gin-gonic/gin"
)

const (
	ctxKeyUserID = "auth_user_id"
	ctxKeyPhone  = "auth_phone"
)

// RequireAuth validates the Bearer token and stores the caller identity
// in the request context.
func RequireAuth(service *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing bearer token"})
			return
		}

		userID, phone, err := service.VerifyToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			return
		}

		c.Set(ctxKeyUserID, userID)
		c.Set(ctxKeyPhone, phone)
		c.Next()
	}
}
