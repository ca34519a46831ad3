package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T, handler http.HandlerFunc) *AuthService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewAuthService(NewClient(srv.URL), NewTokenService("secreto-de-prueba", time.Hour))
}

func TestAuthServiceLogin(t *testing.T) {
	t.Run("issues a session token", func(t *testing.T) {
		svc := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/login", r.URL.Path)
			var body map[string]string
			require.NoError(t, jsonDecode(r, &body))
			assert.Equal(t, "admin", body["username"])
			w.Write([]byte(`{"user":{"_id":"u1","username":"admin","role":"admin"}}`))
		})

		user, token, err := svc.Login(context.Background(), "admin", "secreta")
		require.NoError(t, err)
		assert.Equal(t, "admin", user.Username)
		assert.NotEmpty(t, token)
	})

	t.Run("generic rejection becomes bad credentials", func(t *testing.T) {
		svc := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, _, err := svc.Login(context.Background(), "admin", "mala")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Credenciales incorrectas", apiErr.Message)
	})

	t.Run("upstream message survives", func(t *testing.T) {
		svc := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"message":"Cuenta bloqueada"}`))
		})

		_, _, err := svc.Login(context.Background(), "admin", "mala")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Cuenta bloqueada", apiErr.Message)
	})

	t.Run("empty credentials fail locally", func(t *testing.T) {
		svc := NewAuthService(NewClient("http://localhost:0"), NewTokenService("s", time.Hour))
		_, _, err := svc.Login(context.Background(), "", "")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})
}
