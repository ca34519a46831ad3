package models

// Event statuses. Note the masculine forms: events use confirmado/cancelado
// where reservations use confirmada/cancelada.
const (
	EventPending   = "pendiente"
	EventConfirmed = "confirmado"
	EventCancelled = "cancelado"
)

// Event is a booking of the social-use area, independent of room
// reservations.
type Event struct {
	ID               string  `json:"_id"`
	NombreCliente    string  `json:"nombreCliente"`
	FechaEvento      string  `json:"fechaEvento"`
	HoraInicio       string  `json:"horaInicio"`
	HoraFin          string  `json:"horaFin"`
	UsoEspecifico    string  `json:"usoEspecifico"`
	LimiteAsistentes int     `json:"limiteAsistentes"`
	AreaRentada      string  `json:"areaRentada"`
	Monto            float64 `json:"monto"`
	Estado           string  `json:"estado"`
}

// EventForm is the create/update payload for an event. Required fields are
// checked in the service so the per-field messages reach the caller and a
// missing status can default to pendiente.
type EventForm struct {
	NombreCliente    string  `json:"nombreCliente"`
	FechaEvento      string  `json:"fechaEvento"`
	HoraInicio       string  `json:"horaInicio"`
	HoraFin          string  `json:"horaFin"`
	UsoEspecifico    string  `json:"usoEspecifico"`
	LimiteAsistentes int     `json:"limiteAsistentes"`
	AreaRentada      string  `json:"areaRentada"`
	Monto            float64 `json:"monto"`
	Estado           string  `json:"estado"`
}
