package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and resolves its subject to a
// fresh user row. Every failure is the same 401: callers cannot tell an
// expired token from a forged one.
func AuthMiddleware(tokens *token.Manager, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		if tokenString == "" || tokenString == authHeader {
			response.Error(c, http.StatusUnauthorized, "Not authenticated", nil)
			c.Abort()
			return
		}

		claims, err := tokens.Validate(tokenString, time.Now())
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Not authenticated", nil)
			c.Abort()
			return
		}

		// The token only proves identity. Role comes from the current user
		// row so a role that drifted since issuance wins over the claim.
		user, err := authUC.GetCurrentUser(c.Request.Context(), claims.Subject)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Not authenticated", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), user.Email)
		c.Set(string(domain.KeyUserRole), user.Role)

		// Usecases read identity from the request context, not gin's keys.
		ctx := c.Request.Context()
		ctx = context.WithValue(ctx, domain.KeyUserID, user.ID)
		ctx = context.WithValue(ctx, domain.KeyUserEmail, user.Email)
		ctx = context.WithValue(ctx, domain.KeyUserRole, user.Role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
