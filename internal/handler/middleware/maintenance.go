package middleware

import (
	"net/http"
	"strings"

	"allure-rental/internal/handler/httperr"
	"allure-rental/internal/pkg/errs"
	"allure-rental/internal/usecase/maintenance"

	"github.com/gin-gonic/gin"
)

var ErrMaintenance = errs.New("service in maintenance")

// exempt paths stay reachable so the flag can be turned off again
var maintenanceExempt = []string{
	"/health",
	"/api/maintenance",
	"/api/webhook/",
}

func Maintenance(sw *maintenance.Switch) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !sw.Enabled() || isMaintenanceExempt(c.Request.URL.Path) {
			c.Next()
			return
		}
		st := sw.Status()
		c.Header("Retry-After", "300")
		httperr.AbortWithError(c, http.StatusServiceUnavailable, ErrMaintenance, st.Message, gin.H{"maintenance": true})
	}
}

func isMaintenanceExempt(path string) bool {
	for _, p := range maintenanceExempt {
		if path == p || (strings.HasSuffix(p, "/") && strings.HasPrefix(path, p)) {
			return true
		}
	}
	return false
}
