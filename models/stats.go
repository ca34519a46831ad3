package models

// ReservationsByStatus carries per-status reservation counts. Every field is
// present-with-default-zero so callers never probe for missing aggregates.
type ReservationsByStatus struct {
	Confirmada int `json:"confirmada"`
	Pendiente  int `json:"pendiente"`
	Cancelada  int `json:"cancelada"`
}

// EventsByStatus mirrors ReservationsByStatus for events.
type EventsByStatus struct {
	Confirmado int `json:"confirmado"`
	Pendiente  int `json:"pendiente"`
	Cancelado  int `json:"cancelado"`
}

// Stats is the snapshot served by GET /api/stats/reservas. It is recomputed
// upstream on every fetch; the gateway never caches it.
type Stats struct {
	TotalIngresosReservas float64              `json:"totalIngresosReservas"`
	TotalIngresosEventos  float64              `json:"totalIngresosEventos"`
	TotalReservas         int                  `json:"totalReservas"`
	TotalEventos          int                  `json:"totalEventos"`
	TotalHabitaciones     int                  `json:"totalHabitaciones"`
	ReservasPorEstado     ReservationsByStatus `json:"reservasPorEstado"`
	EventosPorEstado      EventsByStatus       `json:"eventosPorEstado"`
}

// StatsView is the snapshot plus the derived figures the dashboard tiles
// show. All arithmetic is addition and division of upstream totals.
type StatsView struct {
	Stats
	TotalIngresos float64 `json:"totalIngresos"`
	Ocupacion     float64 `json:"ocupacion"`
	HasActivity   bool    `json:"hasActivity"`
}

// NewStatsView derives the dashboard figures from a snapshot. Occupancy is
// confirmed reservations over total rooms; zero rooms yields zero, not a
// division error. HasActivity is false when every counter is zero so the
// dashboard can render an explicit empty state instead of a zero-filled
// chart.
func NewStatsView(s Stats) StatsView {
	view := StatsView{
		Stats:         s,
		TotalIngresos: s.TotalIngresosReservas + s.TotalIngresosEventos,
	}
	if s.TotalHabitaciones > 0 {
		view.Ocupacion = float64(s.ReservasPorEstado.Confirmada) / float64(s.TotalHabitaciones) * 100
	}
	view.HasActivity = s.ReservasPorEstado.Pendiente > 0 ||
		s.ReservasPorEstado.Confirmada > 0 ||
		s.EventosPorEstado.Pendiente > 0 ||
		s.EventosPorEstado.Confirmado > 0
	return view
}
