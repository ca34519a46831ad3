package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-gateway/models"
	"hotel-gateway/services"
	"hotel-gateway/utils"
)

func newProtectedRouter(tokens *services.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	admin := r.Group("/admin")
	admin.Use(Auth(tokens), RequireAdmin())
	admin.GET("/ping", func(c *gin.Context) {
		utils.JSONSuccess(c, http.StatusOK, gin.H{"user": SessionUser(c).Username})
	})
	return r
}

func request(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware(t *testing.T) {
	tokens := services.NewTokenService("secreto-de-prueba", time.Hour)
	r := newProtectedRouter(tokens)

	t.Run("missing header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, request(r, "").Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, request(r, "Token abc").Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, request(r, "Bearer no.es.jwt").Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		token, err := tokens.Issue(models.User{ID: "u1", Username: "admin", Role: "admin"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, request(r, "Bearer "+token).Code)
	})

	t.Run("non admin is forbidden", func(t *testing.T) {
		token, err := tokens.Issue(models.User{ID: "u2", Username: "cliente", Role: "user"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, request(r, "Bearer "+token).Code)
	})
}
