package controllers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-gateway/models"
	"hotel-gateway/services"
	"hotel-gateway/utils"
)

// Rows per page in the reservations table.
const reservationsPerPage = 7

type ReservationController struct {
	reservations *services.ReservationService
}

func NewReservationController(reservations *services.ReservationService) *ReservationController {
	return &ReservationController{reservations: reservations}
}

// GetReservations lists reservations for a period filter, paginated. Any
// out-of-range or malformed page collapses to the first one, so changing the
// filter never strands the caller on an empty page.
func (ctrl *ReservationController) GetReservations(c *gin.Context) {
	reservations, err := ctrl.reservations.List(c.Request.Context(), c.Query("periodo"))
	if err != nil {
		respondError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	utils.JSONSuccess(c, http.StatusOK, utils.Paginate(reservations, page, reservationsPerPage))
}

// GetModalOptions answers the user and room lists the create/edit modal
// needs.
func (ctrl *ReservationController) GetModalOptions(c *gin.Context) {
	opts, err := ctrl.reservations.ModalOptions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, opts)
}

// Mutations answer with the re-fetched page for the caller's current filter.
func (ctrl *ReservationController) respondList(c *gin.Context, code int) {
	reservations, err := ctrl.reservations.List(c.Request.Context(), c.Query("periodo"))
	if err != nil {
		respondError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	utils.JSONSuccess(c, code, utils.Paginate(reservations, page, reservationsPerPage))
}

func (ctrl *ReservationController) CreateReservation(c *gin.Context) {
	var form models.ReservationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	if err := ctrl.reservations.Create(c.Request.Context(), form); err != nil {
		respondError(c, err)
		return
	}
	ctrl.respondList(c, http.StatusCreated)
}

func (ctrl *ReservationController) UpdateReservation(c *gin.Context) {
	var form models.ReservationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	if err := ctrl.reservations.Update(c.Request.Context(), c.Param("id"), form); err != nil {
		respondError(c, err)
		return
	}
	ctrl.respondList(c, http.StatusOK)
}

type statusRequest struct {
	Estado string `json:"estado"`
}

// UpdateStatus is the quick confirm/cancel action from the table row.
func (ctrl *ReservationController) UpdateStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	if err := ctrl.reservations.UpdateStatus(c.Request.Context(), c.Param("id"), req.Estado); err != nil {
		respondError(c, err)
		return
	}
	ctrl.respondList(c, http.StatusOK)
}

func (ctrl *ReservationController) DeleteReservation(c *gin.Context) {
	if err := ctrl.reservations.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	ctrl.respondList(c, http.StatusOK)
}

// DownloadContract streams the stay contract through unchanged.
func (ctrl *ReservationController) DownloadContract(c *gin.Context) {
	resp, err := ctrl.reservations.Contract(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	defer resp.Body.Close()

	proxyDownload(c, resp)
}

// proxyDownload copies a streamed upstream answer (contract PDFs) to the
// caller, keeping the headers that matter for a file download.
func proxyDownload(c *gin.Context, resp *http.Response) {
	for _, header := range []string{"Content-Type", "Content-Disposition", "Content-Length"} {
		if value := resp.Header.Get(header); value != "" {
			c.Header(header, value)
		}
	}
	c.Status(resp.StatusCode)
	io.Copy(c.Writer, resp.Body)
}
