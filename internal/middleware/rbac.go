package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/radianceacademy/radiance-backend/internal/response"
)

// RequirePermission checks that the authenticated admin holds the named
// permission. Super-admins pass every check.
func RequirePermission(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin := GetAdmin(c)
		if admin == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.MsgNoToken)
			return
		}

		if !admin.HasPermission(name) {
			response.AbortFail(c, http.StatusForbidden, "Access denied. Required permission: "+name)
			return
		}
		c.Next()
	}
}
