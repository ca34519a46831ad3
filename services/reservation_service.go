package services

import (
	"context"
	"net/http"
	"net/url"
	"sort"

	"golang.org/x/sync/errgroup"

	"hotel-gateway/models"
	"hotel-gateway/utils"
)

// Periods the reservations list accepts.
var reservationPeriods = map[string]bool{
	"todas":  true,
	"semana": true,
	"mes":    true,
	"año":    true,
}

type ReservationService struct {
	api   *Client
	users *UserService
	rooms *RoomService
}

func NewReservationService(api *Client, users *UserService, rooms *RoomService) *ReservationService {
	return &ReservationService{api: api, users: users, rooms: rooms}
}

// List fetches reservations for a period filter, oldest stay first, with
// dates reduced to YYYY-MM-DD for the table and edit prefill.
func (s *ReservationService) List(ctx context.Context, periodo string) ([]models.Reservation, error) {
	if periodo == "" {
		periodo = "todas"
	}
	if !reservationPeriods[periodo] {
		return nil, invalid("Período inválido: %s", periodo)
	}

	var reservations []models.Reservation
	if err := s.api.Get(ctx, "/api/reservas?periodo="+url.QueryEscape(periodo), &reservations); err != nil {
		return nil, err
	}

	for i := range reservations {
		reservations[i].FechaInicio = utils.FormatDate(reservations[i].FechaInicio)
		reservations[i].FechaFin = utils.FormatDate(reservations[i].FechaFin)
	}
	sort.SliceStable(reservations, func(i, j int) bool {
		return reservations[i].FechaInicio < reservations[j].FechaInicio
	})
	return reservations, nil
}

func validateReservationForm(form models.ReservationForm) error {
	if form.HabitacionID == "" {
		return invalid("Debes seleccionar una habitación.")
	}
	if form.FechaInicio == "" || form.FechaFin == "" {
		return invalid("Las fechas son obligatorias.")
	}
	inicio, err := utils.ParseDate(form.FechaInicio)
	if err != nil {
		return invalid("Fecha de inicio inválida.")
	}
	fin, err := utils.ParseDate(form.FechaFin)
	if err != nil {
		return invalid("Fecha de fin inválida.")
	}
	if !inicio.Before(fin) {
		return invalid("La fecha de salida debe ser posterior a la de llegada.")
	}
	if form.UsuarioID == "" && form.NombreHuesped == "" {
		return invalid("El nombre del huésped es requerido para reservas públicas.")
	}
	return nil
}

// payload builds the upstream body: a registered-user reference OR the inline
// guest fields, never both (the upstream precedence when both are present is
// unspecified, so the gateway never sends both).
func reservationPayload(form models.ReservationForm) map[string]interface{} {
	body := map[string]interface{}{
		"habitacionId": form.HabitacionID,
		"fechaInicio":  form.FechaInicio,
		"fechaFin":     form.FechaFin,
		"tipoPago":     form.TipoPago,
		"estado":       form.Estado,
	}
	if form.UsuarioID != "" {
		body["usuarioId"] = form.UsuarioID
	} else {
		body["nombreHuesped"] = form.NombreHuesped
		body["emailHuesped"] = form.EmailHuesped
	}
	return body
}

func (s *ReservationService) Create(ctx context.Context, form models.ReservationForm) error {
	if err := validateReservationForm(form); err != nil {
		return err
	}
	return s.api.Post(ctx, "/api/reservas", reservationPayload(form), nil)
}

func (s *ReservationService) Update(ctx context.Context, id string, form models.ReservationForm) error {
	if err := validateReservationForm(form); err != nil {
		return err
	}
	return s.api.Put(ctx, "/api/reservas/"+url.PathEscape(id), reservationPayload(form), nil)
}

// UpdateStatus is the quick transition from the table row: a PUT carrying
// only the status field. Cancellation applies to any state; confirmation is
// only offered for a pending row, so the current status is checked first
// (the upstream still arbitrates).
func (s *ReservationService) UpdateStatus(ctx context.Context, id, estado string) error {
	switch estado {
	case models.ReservationCancelled:
	case models.ReservationConfirmed:
		current, err := s.find(ctx, id)
		if err != nil {
			return err
		}
		if current.Estado != models.ReservationPending {
			return invalid("Solo una reserva pendiente puede confirmarse.")
		}
	default:
		return invalid("Estado inválido: %s", estado)
	}

	body := map[string]string{"estado": estado}
	return s.api.Put(ctx, "/api/reservas/"+url.PathEscape(id), body, nil)
}

func (s *ReservationService) find(ctx context.Context, id string) (*models.Reservation, error) {
	reservations, err := s.List(ctx, "todas")
	if err != nil {
		return nil, err
	}
	for i := range reservations {
		if reservations[i].ID == id {
			return &reservations[i], nil
		}
	}
	return nil, invalid("Reserva no encontrada.")
}

func (s *ReservationService) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/api/reservas/"+url.PathEscape(id), nil)
}

// Contract proxies the stay-contract download.
func (s *ReservationService) Contract(ctx context.Context, id string) (*http.Response, error) {
	return s.api.Stream(ctx, "/api/reservas/"+url.PathEscape(id)+"/contrato?tipo=contrato_tipo1")
}

// ModalOptions is the pair of lists the create/edit modal needs, fetched
// concurrently. Either failure fails the pair; there is no partial recovery.
type ModalOptions struct {
	Users []models.User `json:"users"`
	Rooms []models.Room `json:"rooms"`
}

func (s *ReservationService) ModalOptions(ctx context.Context) (*ModalOptions, error) {
	opts := &ModalOptions{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		users, err := s.users.List(gctx)
		if err != nil {
			return err
		}
		opts.Users = users
		return nil
	})
	g.Go(func() error {
		rooms, err := s.rooms.List(gctx)
		if err != nil {
			return err
		}
		opts.Rooms = rooms
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return opts, nil
}
