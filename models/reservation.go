package models

// Reservation statuses used by the upstream API.
const (
	ReservationPending   = "pendiente"
	ReservationConfirmed = "confirmada"
	ReservationCancelled = "cancelada"
)

// Payment types.
const (
	PaymentCash     = "efectivo"
	PaymentTransfer = "transferencia"
)

// ReservationUser is the registered-user reference embedded in a reservation.
type ReservationUser struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// ReservationRoom is the room reference embedded in a reservation. It is nil
// when the room has since been deleted.
type ReservationRoom struct {
	ID     string `json:"_id"`
	Numero int    `json:"numero"`
	Tipo   string `json:"tipo"`
}

// Reservation as served by the upstream API. Dates arrive as ISO timestamps;
// the gateway reformats them to plain YYYY-MM-DD for display and edit
// prefill. PrecioTotal is computed upstream and merely displayed.
type Reservation struct {
	ID            string           `json:"_id"`
	Habitacion    *ReservationRoom `json:"habitacion,omitempty"`
	Usuario       *ReservationUser `json:"usuario,omitempty"`
	NombreHuesped string           `json:"nombreHuesped,omitempty"`
	EmailHuesped  string           `json:"emailHuesped,omitempty"`
	FechaInicio   string           `json:"fechaInicio"`
	FechaFin      string           `json:"fechaFin"`
	TipoPago      string           `json:"tipoPago"`
	Estado        string           `json:"estado"`
	PrecioTotal   float64          `json:"precioTotal"`
}

// GuestName is what the tables show in the guest column: the registered
// username when present, otherwise the inline guest name, otherwise the
// generic public-guest label.
func (r Reservation) GuestName() string {
	if r.Usuario != nil && r.Usuario.Username != "" {
		return r.Usuario.Username
	}
	if r.NombreHuesped != "" {
		return r.NombreHuesped
	}
	return "Huésped Público"
}

// ReservationForm is the admin create/update payload. Exactly one of
// UsuarioID or NombreHuesped identifies the guest; the service validates
// that, and every required field, before anything is sent upstream.
type ReservationForm struct {
	HabitacionID  string `json:"habitacionId"`
	UsuarioID     string `json:"usuarioId"`
	NombreHuesped string `json:"nombreHuesped"`
	EmailHuesped  string `json:"emailHuesped"`
	FechaInicio   string `json:"fechaInicio"`
	FechaFin      string `json:"fechaFin"`
	TipoPago      string `json:"tipoPago"`
	Estado        string `json:"estado"`
}
