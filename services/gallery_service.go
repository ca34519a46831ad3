package services

import (
	"context"

	"hotel-gateway/models"
	"hotel-gateway/utils"
)

// DefaultWhatsappURL is shown when the contact config is missing or
// unreachable. The public site always offers some contact action.
const DefaultWhatsappURL = "tel:+529514401726"

type GalleryService struct {
	api *Client
}

func NewGalleryService(api *Client) *GalleryService {
	return &GalleryService{api: api}
}

// Pool returns the pool gallery image URLs, resolved against the upstream
// origin.
func (s *GalleryService) Pool(ctx context.Context) ([]string, error) {
	return s.gallery(ctx, "/api/gallery/pool")
}

// Food returns the restaurant gallery image URLs.
func (s *GalleryService) Food(ctx context.Context) ([]string, error) {
	return s.gallery(ctx, "/api/gallery/food")
}

func (s *GalleryService) gallery(ctx context.Context, path string) ([]string, error) {
	var urls []string
	if err := s.api.Get(ctx, path, &urls); err != nil {
		return nil, err
	}
	return utils.ResolveImageURLs(s.api.Origin(), urls), nil
}

// Contact fetches the WhatsApp contact link. Any failure or an empty value
// falls back to the phone link so the call-to-action never dangles.
func (s *GalleryService) Contact(ctx context.Context) models.ContactConfig {
	var cfg models.ContactConfig
	if err := s.api.Get(ctx, "/api/config/contacto", &cfg); err != nil || cfg.WhatsappURL == "" {
		return models.ContactConfig{WhatsappURL: DefaultWhatsappURL}
	}
	return cfg
}
