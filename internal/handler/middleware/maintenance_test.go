//go:build unit

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"allure-rental/internal/usecase/maintenance"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaintenance(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2025, time.November, 20, 9, 0, 0, 0, time.UTC)

	newRouter := func(sw *maintenance.Switch) *gin.Engine {
		r := gin.New()
		r.Use(Maintenance(sw))
		ok := func(c *gin.Context) { c.Status(http.StatusOK) }
		r.GET("/health", ok)
		r.GET("/api/dresses", ok)
		r.GET("/api/maintenance", ok)
		r.POST("/api/webhook/maintenance", ok)
		r.GET("/api/maintenance-report", ok)
		return r
	}
	do := func(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
		return w
	}

	t.Run("off lets everything through", func(t *testing.T) {
		r := newRouter(maintenance.NewSwitch(false, "", now))
		assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/dresses").Code)
	})

	t.Run("on blocks the API with 503", func(t *testing.T) {
		sw := maintenance.NewSwitch(true, "Inventaire en cours", now)
		w := do(newRouter(sw), http.MethodGet, "/api/dresses")

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "300", w.Header().Get("Retry-After"))

		var body struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
			Detail struct {
				Maintenance bool `json:"maintenance"`
			} `json:"detail"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Inventaire en cours", body.Error.Message)
		assert.True(t, body.Detail.Maintenance)
	})

	t.Run("on keeps the control paths reachable", func(t *testing.T) {
		r := newRouter(maintenance.NewSwitch(true, "", now))
		assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/health").Code)
		assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/maintenance").Code)
		assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/webhook/maintenance").Code)
		assert.Equal(t, http.StatusServiceUnavailable, do(r, http.MethodGet, "/api/maintenance-report").Code)
	})

	t.Run("switching off takes effect immediately", func(t *testing.T) {
		sw := maintenance.NewSwitch(true, "", now)
		r := newRouter(sw)
		require.Equal(t, http.StatusServiceUnavailable, do(r, http.MethodGet, "/api/dresses").Code)

		sw.Set(false, "", now.Add(time.Minute))
		assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/dresses").Code)
	})
}
