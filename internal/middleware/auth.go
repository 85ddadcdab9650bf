package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/radianceacademy/radiance-backend/internal/model"
	"github.com/radianceacademy/radiance-backend/internal/response"
	"github.com/radianceacademy/radiance-backend/internal/service"
)

const (
	// ContextKeyAdmin is the Gin context key for the authenticated admin.
	ContextKeyAdmin = "admin"
)

// RequireAdmin validates the bearer token and resolves it to an active admin
// account. The account is looked up on every request so deactivations take
// effect immediately.
func RequireAdmin(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractBearerToken(c)
		if tokenStr == "" {
			response.AbortFail(c, http.StatusUnauthorized, response.MsgNoToken)
			return
		}

		admin, err := authService.Authenticate(c.Request.Context(), tokenStr)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenExpired):
				response.AbortFail(c, http.StatusUnauthorized, response.MsgTokenExpired)
			case errors.Is(err, service.ErrAdminNotFound):
				response.AbortFail(c, http.StatusUnauthorized, response.MsgAdminNotFound)
			case errors.Is(err, service.ErrAccountDeactivated):
				response.AbortFail(c, http.StatusUnauthorized, response.MsgAccountDeactivated)
			case errors.Is(err, service.ErrTokenInvalid):
				response.AbortFail(c, http.StatusUnauthorized, response.MsgInvalidToken)
			default:
				response.AbortFail(c, http.StatusInternalServerError, response.MsgAuthServerError)
			}
			return
		}

		c.Set(ContextKeyAdmin, admin)
		c.Next()
	}
}

// GetAdmin retrieves the authenticated admin from the Gin context.
func GetAdmin(c *gin.Context) *model.Admin {
	val, exists := c.Get(ContextKeyAdmin)
	if !exists {
		return nil
	}
	admin, ok := val.(*model.Admin)
	if !ok {
		return nil
	}
	return admin
}

func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
