package services

import (
	"context"
	"errors"
	"strings"

	"hotel-gateway/models"
)

type AuthService struct {
	api    *Client
	tokens *TokenService
}

func NewAuthService(api *Client, tokens *TokenService) *AuthService {
	return &AuthService{api: api, tokens: tokens}
}

type loginResponse struct {
	User models.User `json:"user"`
}

// Login checks credentials against the upstream API and, on success, issues
// the gateway's own session token. Upstream rejections without a usable
// message become the generic bad-credentials message.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	if username == "" || password == "" {
		return nil, "", invalid("Usuario y contraseña son obligatorios.")
	}

	body := map[string]string{"username": username, "password": password}
	var resp loginResponse
	if err := s.api.Post(ctx, "/api/login", body, &resp); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && strings.HasPrefix(apiErr.Message, "Error ") {
			apiErr.Message = "Credenciales incorrectas"
		}
		return nil, "", err
	}

	token, err := s.tokens.Issue(resp.User)
	if err != nil {
		return nil, "", err
	}
	return &resp.User, token, nil
}
