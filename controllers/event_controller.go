package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-gateway/models"
	"hotel-gateway/services"
	"hotel-gateway/utils"
)

type EventController struct {
	events *services.EventService
}

func NewEventController(events *services.EventService) *EventController {
	return &EventController{events: events}
}

func (ctrl *EventController) GetEvents(c *gin.Context) {
	events, err := ctrl.events.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, events)
}

// Mutations answer with the re-fetched list, same contract as rooms.
func (ctrl *EventController) respondList(c *gin.Context, code int) {
	events, err := ctrl.events.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, code, events)
}

func (ctrl *EventController) CreateEvent(c *gin.Context) {
	var form models.EventForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	if err := ctrl.events.Create(c.Request.Context(), form); err != nil {
		respondError(c, err)
		return
	}
	ctrl.respondList(c, http.StatusCreated)
}

func (ctrl *EventController) UpdateEvent(c *gin.Context) {
	var form models.EventForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	if err := ctrl.events.Update(c.Request.Context(), c.Param("id"), form); err != nil {
		respondError(c, err)
		return
	}
	ctrl.respondList(c, http.StatusOK)
}

func (ctrl *EventController) DeleteEvent(c *gin.Context) {
	if err := ctrl.events.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	ctrl.respondList(c, http.StatusOK)
}

// DownloadContract streams the event contract through unchanged.
func (ctrl *EventController) DownloadContract(c *gin.Context) {
	resp, err := ctrl.events.Contract(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	defer resp.Body.Close()

	proxyDownload(c, resp)
}
