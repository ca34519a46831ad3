package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-gateway/models"
	"hotel-gateway/services"
	"hotel-gateway/utils"
)

const userContextKey = "session_user"

// Auth validates the Bearer session token and puts the session user on the
// context.
func Auth(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			utils.JSONError(c, http.StatusUnauthorized, "Falta el encabezado de autorización")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.JSONError(c, http.StatusUnauthorized, "Encabezado de autorización inválido")
			c.Abort()
			return
		}

		user, err := tokens.Parse(parts[1])
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "Sesión inválida o expirada")
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// RequireAdmin rejects sessions whose user is not an admin. Must run after
// Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := SessionUser(c)
		if user == nil || !user.IsAdmin() {
			utils.JSONError(c, http.StatusForbidden, "Acceso restringido a administradores")
			c.Abort()
			return
		}
		c.Next()
	}
}

// SessionUser returns the authenticated user, or nil outside an Auth'd
// route.
func SessionUser(c *gin.Context) *models.User {
	value, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}
