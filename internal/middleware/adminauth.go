package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/rimedu/resultats-portal-api/internal/service"
	"github.com/rimedu/resultats-portal-api/pkg/response"
)

// RequireAdmin blocks admin routes unless a live admin session is held.
// The token itself never leaves the store; handlers reach the upstream
// through the admin service, which attaches it per call.
func RequireAdmin(adminSvc *service.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := adminSvc.Token(); err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}
