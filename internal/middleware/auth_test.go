package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hostel-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/admin-only", AuthMiddleware(), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/student-only", AuthMiddleware(), RequireStudent(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doRequest(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	utils.InitJWT("test-access-secret", "test-refresh-secret", 15*time.Minute, 24*time.Hour)
	r := setupRouter()

	t.Run("missing header", func(t *testing.T) {
		w := doRequest(r, "/protected", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "not-a-bearer-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := doRequest(r, "/protected", "garbage")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := utils.GenerateAccessToken(1, "admin", "")
		require.NoError(t, err)
		w := doRequest(r, "/protected", token)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRoleGuards(t *testing.T) {
	utils.InitJWT("test-access-secret", "test-refresh-secret", 15*time.Minute, 24*time.Hour)
	r := setupRouter()

	adminToken, err := utils.GenerateAccessToken(1, "admin", "")
	require.NoError(t, err)
	studentToken, err := utils.GenerateAccessToken(2, "student", "101cs0001")
	require.NoError(t, err)

	t.Run("admin passes admin guard", func(t *testing.T) {
		w := doRequest(r, "/admin-only", adminToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("student rejected by admin guard", func(t *testing.T) {
		w := doRequest(r, "/admin-only", studentToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("student passes student guard", func(t *testing.T) {
		w := doRequest(r, "/student-only", studentToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("admin rejected by student guard", func(t *testing.T) {
		w := doRequest(r, "/student-only", adminToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
