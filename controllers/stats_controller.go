package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-gateway/services"
	"hotel-gateway/utils"
)

type StatsController struct {
	stats *services.StatsService
}

func NewStatsController(stats *services.StatsService) *StatsController {
	return &StatsController{stats: stats}
}

// GetStats answers the dashboard snapshot.
func (ctrl *StatsController) GetStats(c *gin.Context) {
	view, err := ctrl.stats.Snapshot(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, view)
}
