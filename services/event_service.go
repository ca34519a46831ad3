package services

import (
	"context"
	"net/http"
	"net/url"
	"sort"

	"hotel-gateway/models"
	"hotel-gateway/utils"
)

type EventService struct {
	api *Client
}

func NewEventService(api *Client) *EventService {
	return &EventService{api: api}
}

// List fetches every event, earliest first, event dates reduced to
// YYYY-MM-DD.
func (s *EventService) List(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := s.api.Get(ctx, "/api/eventos", &events); err != nil {
		return nil, err
	}

	for i := range events {
		events[i].FechaEvento = utils.FormatDate(events[i].FechaEvento)
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].FechaEvento < events[j].FechaEvento
	})
	return events, nil
}

func validateEventForm(form models.EventForm) error {
	if form.NombreCliente == "" || form.FechaEvento == "" || form.HoraInicio == "" ||
		form.HoraFin == "" || form.UsoEspecifico == "" || form.LimiteAsistentes == 0 {
		return invalid("Todos los campos marcados con * son obligatorios.")
	}
	if _, err := utils.ParseDate(form.FechaEvento); err != nil {
		return invalid("Fecha del evento inválida.")
	}
	if form.Monto < 0 {
		return invalid("El monto no puede ser negativo.")
	}
	if form.LimiteAsistentes <= 0 {
		return invalid("El límite de asistentes debe ser un número positivo.")
	}
	return nil
}

func (s *EventService) Create(ctx context.Context, form models.EventForm) error {
	if err := validateEventForm(form); err != nil {
		return err
	}
	if form.Estado == "" {
		form.Estado = models.EventPending
	}
	return s.api.Post(ctx, "/api/eventos", form, nil)
}

func (s *EventService) Update(ctx context.Context, id string, form models.EventForm) error {
	if err := validateEventForm(form); err != nil {
		return err
	}
	return s.api.Put(ctx, "/api/eventos/"+url.PathEscape(id), form, nil)
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/api/eventos/"+url.PathEscape(id), nil)
}

// Contract proxies the event-contract download.
func (s *EventService) Contract(ctx context.Context, id string) (*http.Response, error) {
	return s.api.Stream(ctx, "/api/eventos/"+url.PathEscape(id)+"/contrato")
}
