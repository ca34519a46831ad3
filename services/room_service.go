package services

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"sort"
	"strings"

	"hotel-gateway/models"
	"hotel-gateway/utils"
)

type RoomService struct {
	api *Client
}

func NewRoomService(api *Client) *RoomService {
	return &RoomService{api: api}
}

// List fetches every room, ordered by room number for display.
func (s *RoomService) List(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.api.Get(ctx, "/api/habitaciones", &rooms); err != nil {
		return nil, err
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].Numero < rooms[j].Numero })
	return rooms, nil
}

// ListViews is List enriched for the public site: resolved image URLs and the
// bed description per room type.
func (s *RoomService) ListViews(ctx context.Context) ([]models.RoomView, error) {
	rooms, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]models.RoomView, len(rooms))
	for i, room := range rooms {
		views[i] = models.RoomView{
			Room:           room,
			ResolvedImages: utils.ResolveImageURLs(s.api.Origin(), room.ImageUrls),
			Description:    RoomDescription(room.Tipo),
		}
	}
	return views, nil
}

// Available queries rooms free for a date range. Dates are passed through as
// received; callers validate ordering before getting here.
func (s *RoomService) Available(ctx context.Context, fechaInicio, fechaFin string) ([]models.Room, error) {
	path := fmt.Sprintf("/api/habitaciones/disponibles?fechaInicio=%s&fechaFin=%s",
		url.QueryEscape(fechaInicio), url.QueryEscape(fechaFin))

	var rooms []models.Room
	if err := s.api.Get(ctx, path, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func validateRoomForm(form models.RoomForm) error {
	if form.Numero <= 0 {
		return invalid("El número de habitación es obligatorio.")
	}
	if !models.ValidRoomType(form.Tipo) {
		return invalid("Tipo de habitación inválido: %s", form.Tipo)
	}
	if form.Precio < 0 {
		return invalid("El precio no puede ser negativo.")
	}
	return nil
}

func (s *RoomService) Create(ctx context.Context, form models.RoomForm) error {
	if err := validateRoomForm(form); err != nil {
		return err
	}
	return s.api.Post(ctx, "/api/habitaciones", form, nil)
}

func (s *RoomService) Update(ctx context.Context, id string, form models.RoomForm) error {
	if err := validateRoomForm(form); err != nil {
		return err
	}
	return s.api.Put(ctx, "/api/habitaciones/"+url.PathEscape(id), form, nil)
}

func (s *RoomService) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/api/habitaciones/"+url.PathEscape(id), nil)
}

// imageListResponse is the authoritative image list the upstream answers
// image mutations with.
type imageListResponse struct {
	ImageUrls []string `json:"imageUrls"`
}

// UploadImages streams a multipart body (field `images`) through to the
// upstream. Only valid for a room that already exists; pending files for an
// unsaved room stay on the browser side.
func (s *RoomService) UploadImages(ctx context.Context, roomID, contentType string, body io.Reader) ([]string, error) {
	var resp imageListResponse
	path := "/api/upload/room-images/" + url.PathEscape(roomID)
	if err := s.api.PostMultipart(ctx, path, contentType, body, &resp); err != nil {
		return nil, err
	}
	return resp.ImageUrls, nil
}

// DeleteImage removes one image by filename and returns the upstream's
// post-delete list, which replaces whatever the caller was showing.
func (s *RoomService) DeleteImage(ctx context.Context, roomID, filename string) ([]string, error) {
	var resp imageListResponse
	path := "/api/images/" + url.PathEscape(roomID) + "/" + url.PathEscape(filename)
	if err := s.api.Delete(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.ImageUrls, nil
}

// RoomDescription is the bed summary the public cards show per room type.
func RoomDescription(tipo string) string {
	switch {
	case strings.EqualFold(tipo, "individual"):
		return "1 Cama Matrimonial (Máximo 2)"
	case strings.EqualFold(tipo, "doble"):
		return "2 Camas Matrimoniales (Máximo 4)"
	case strings.EqualFold(tipo, "king"), strings.EqualFold(tipo, "rey"):
		return "1 Cama King Size (Máximo 2)"
	case strings.EqualFold(tipo, "doble superior"):
		return "2 Matrimoniales + Balcón"
	case strings.EqualFold(tipo, "king deluxe"):
		return "1 King Size + Terraza"
	default:
		return "Habitación Estándar"
	}
}
