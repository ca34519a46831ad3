package services

import (
	"context"

	"hotel-gateway/models"
)

type StatsService struct {
	api *Client
}

func NewStatsService(api *Client) *StatsService {
	return &StatsService{api: api}
}

// Snapshot fetches the aggregate stats and derives the dashboard figures.
// Absent aggregates decode to zero, so the view never checks for missing
// fields.
func (s *StatsService) Snapshot(ctx context.Context) (*models.StatsView, error) {
	var stats models.Stats
	if err := s.api.Get(ctx, "/api/stats/reservas", &stats); err != nil {
		return nil, err
	}
	view := models.NewStatsView(stats)
	return &view, nil
}
