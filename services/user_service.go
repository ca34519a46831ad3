package services

import (
	"context"

	"hotel-gateway/models"
)

type UserService struct {
	api *Client
}

func NewUserService(api *Client) *UserService {
	return &UserService{api: api}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.api.Get(ctx, "/api/users-list", &users); err != nil {
		return nil, err
	}
	return users, nil
}
