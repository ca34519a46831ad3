package services

import (
	"context"

	"github.com/go-playground/validator/v10"

	"hotel-gateway/models"
	"hotel-gateway/utils"
)

// CheckoutForm is the guest data collected on the checkout step.
type CheckoutForm struct {
	Nombre   string `json:"nombre" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Telefono string `json:"telefono" validate:"required,phone10"`
	TipoPago string `json:"tipoPago" validate:"required,oneof=efectivo transferencia"`
}

var checkoutValidate = newCheckoutValidator()

func newCheckoutValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if len(value) != 10 {
			return false
		}
		for _, r := range value {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	})
	return v
}

func validateCheckoutForm(form CheckoutForm) error {
	err := checkoutValidate.Struct(form)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return invalid("Todos los campos son obligatorios.")
	}
	switch errs[0].Field() {
	case "Telefono":
		if errs[0].Tag() == "phone10" {
			return invalid("El teléfono debe tener exactamente 10 dígitos.")
		}
		return invalid("Todos los campos son obligatorios.")
	case "Email":
		if errs[0].Tag() == "email" {
			return invalid("El correo electrónico no es válido.")
		}
		return invalid("Todos los campos son obligatorios.")
	case "TipoPago":
		if errs[0].Tag() == "oneof" {
			return invalid("Tipo de pago inválido.")
		}
		return invalid("Todos los campos son obligatorios.")
	default:
		return invalid("Todos los campos son obligatorios.")
	}
}

// BookingService drives the public three-step reservation wizard. All state
// between steps lives in the search store; the upstream is only touched on
// the initial search and the final submit.
type BookingService struct {
	rooms *RoomService
	store *SearchStore
}

func NewBookingService(rooms *RoomService, store *SearchStore) *BookingService {
	return &BookingService{rooms: rooms, store: store}
}

// StartSearch validates the date pair, queries availability and opens a
// session at the results step. An empty availability list is still a valid
// session; the results step shows the no-rooms message. huespedes is carried
// for the results summary only; availability is filtered upstream by dates.
func (s *BookingService) StartSearch(ctx context.Context, fechaInicio, fechaFin string, huespedes int) (*BookingSession, error) {
	if fechaInicio == "" || fechaFin == "" {
		return nil, invalid("Debes seleccionar ambas fechas.")
	}
	llegada, err := utils.ParseDate(fechaInicio)
	if err != nil {
		return nil, invalid("Debes seleccionar ambas fechas.")
	}
	salida, err := utils.ParseDate(fechaFin)
	if err != nil {
		return nil, invalid("Debes seleccionar ambas fechas.")
	}
	if !llegada.Before(salida) {
		return nil, invalid("La fecha de salida debe ser posterior a la de llegada.")
	}

	rooms, err := s.rooms.Available(ctx, fechaInicio, fechaFin)
	if err != nil {
		return nil, err
	}

	nights := utils.Nights(llegada, salida)
	origin := s.rooms.api.Origin()
	offers := make([]models.AvailableRoom, len(rooms))
	for i, room := range rooms {
		room.ImageUrls = utils.ResolveImageURLs(origin, room.ImageUrls)
		offers[i] = models.AvailableRoom{
			Room:   room,
			Nights: nights,
			Total:  utils.StayTotal(room.Precio, nights),
		}
	}

	if huespedes < 1 {
		huespedes = 1
	}
	return s.store.Put(&BookingSession{
		FechaInicio: fechaInicio,
		FechaFin:    fechaFin,
		Huespedes:   huespedes,
		Nights:      nights,
		Step:        StepResults,
		Rooms:       offers,
	})
}

// Session returns the wizard state for a token, or nil when the token is
// unknown or expired.
func (s *BookingService) Session(token string) *BookingSession {
	session, ok := s.store.Get(token)
	if !ok {
		return nil
	}
	return session
}

func errSearchExpired() error {
	return invalid("La búsqueda ha expirado. Vuelve a buscar disponibilidad.")
}

// SelectRoom moves a results-step session to checkout for one of its offered
// rooms. The transition runs inside the store so a concurrent session poll
// never sees a half-written step.
func (s *BookingService) SelectRoom(token, roomID string) (*BookingSession, error) {
	return s.store.Update(token, func(session *BookingSession) error {
		for i := range session.Rooms {
			if session.Rooms[i].ID == roomID {
				session.Selected = &session.Rooms[i]
				session.Step = StepCheckout
				return nil
			}
		}
		return invalid("La habitación seleccionada no está en los resultados.")
	})
}

type bookingCreateResponse struct {
	Reserva           *models.Reservation   `json:"reserva"`
	ConfiguracionPago *models.PaymentConfig `json:"configuracionPago"`
}

// Checkout validates the guest form and submits the reservation. The
// upstream POST runs against a snapshot; the SUCCESS transition is then
// applied inside the store. On validation or upstream failure the session
// stays at the checkout step so the guest can retry without re-searching.
func (s *BookingService) Checkout(ctx context.Context, token string, form CheckoutForm) (*BookingSession, error) {
	session, ok := s.store.Get(token)
	if !ok {
		return nil, errSearchExpired()
	}
	if session.Step != StepCheckout || session.Selected == nil {
		return nil, invalid("Primero selecciona una habitación.")
	}
	if err := validateCheckoutForm(form); err != nil {
		return nil, err
	}

	body := map[string]interface{}{
		"habitacionId":  session.Selected.ID,
		"fechaInicio":   session.FechaInicio,
		"fechaFin":      session.FechaFin,
		"tipoPago":      form.TipoPago,
		"clientName":    form.Nombre,
		"clientEmail":   form.Email,
		"clientPhone":   form.Telefono,
		"nombreHuesped": form.Nombre,
		"emailHuesped":  form.Email,
	}

	var resp bookingCreateResponse
	if err := s.rooms.api.Post(ctx, "/api/reservas", body, &resp); err != nil {
		return nil, err
	}

	return s.store.Update(token, func(live *BookingSession) error {
		live.Confirmation = confirmationFor(form.TipoPago, resp.ConfiguracionPago)
		live.Step = StepSuccess
		return nil
	})
}

// confirmationFor picks the success layout. Cash gets the pay-on-arrival
// note; a transfer with bank details gets the account block; anything else
// gets the generic confirmation.
func confirmationFor(tipoPago string, cfg *models.PaymentConfig) *BookingConfirmation {
	switch {
	case tipoPago == models.PaymentCash:
		return &BookingConfirmation{Kind: models.PaymentCash}
	case tipoPago == models.PaymentTransfer && cfg != nil && cfg.Banco != "":
		return &BookingConfirmation{Kind: models.PaymentTransfer, PaymentConfig: cfg}
	default:
		return &BookingConfirmation{Kind: "generica"}
	}
}

// Close discards a session once the guest leaves the wizard.
func (s *BookingService) Close(token string) {
	s.store.Delete(token)
}
