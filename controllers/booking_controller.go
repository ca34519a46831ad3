package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-gateway/services"
	"hotel-gateway/utils"
)

type BookingController struct {
	booking *services.BookingService
}

func NewBookingController(booking *services.BookingService) *BookingController {
	return &BookingController{booking: booking}
}

type searchRequest struct {
	FechaInicio string `json:"fechaInicio"`
	FechaFin    string `json:"fechaFin"`
	Huespedes   int    `json:"huespedes"`
}

// StartSearch opens a wizard session for a date range and answers with the
// results step. An empty room list is still a success.
func (ctrl *BookingController) StartSearch(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	session, err := ctrl.booking.StartSearch(c.Request.Context(), req.FechaInicio, req.FechaFin, req.Huespedes)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, session)
}

// GetSession returns the current wizard state for a token.
func (ctrl *BookingController) GetSession(c *gin.Context) {
	session := ctrl.booking.Session(c.Param("token"))
	if session == nil {
		utils.JSONError(c, http.StatusNotFound, "La búsqueda ha expirado. Vuelve a buscar disponibilidad.")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, session)
}

type selectRoomRequest struct {
	HabitacionID string `json:"habitacionId"`
}

// SelectRoom advances the session to checkout for one of the offered rooms.
func (ctrl *BookingController) SelectRoom(c *gin.Context) {
	var req selectRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	session, err := ctrl.booking.SelectRoom(c.Param("token"), req.HabitacionID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, session)
}

// Checkout submits the reservation. On failure the session stays at checkout
// so the guest can fix the form and retry.
func (ctrl *BookingController) Checkout(c *gin.Context) {
	var form services.CheckoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	session, err := ctrl.booking.Checkout(c.Request.Context(), c.Param("token"), form)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, session)
}

// Close discards the session once the guest leaves the wizard.
func (ctrl *BookingController) Close(c *gin.Context) {
	ctrl.booking.Close(c.Param("token"))
	utils.JSONSuccess(c, http.StatusOK, gin.H{"closed": true})
}
