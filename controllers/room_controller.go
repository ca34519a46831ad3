package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-gateway/models"
	"hotel-gateway/services"
	"hotel-gateway/utils"
)

type RoomController struct {
	rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{rooms: rooms}
}

// GetRooms answers the admin list, plain rooms ordered by number.
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.rooms.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// GetRoomViews answers the public cards: resolved images plus the bed
// description.
func (ctrl *RoomController) GetRoomViews(c *gin.Context) {
	views, err := ctrl.rooms.ListViews(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, views)
}

// Mutations answer with the re-fetched authoritative list, never an
// optimistic echo of the payload.
func (ctrl *RoomController) respondList(c *gin.Context, code int) {
	rooms, err := ctrl.rooms.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, code, rooms)
}

func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var form models.RoomForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	if err := ctrl.rooms.Create(c.Request.Context(), form); err != nil {
		respondError(c, err)
		return
	}
	ctrl.respondList(c, http.StatusCreated)
}

func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	var form models.RoomForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	if err := ctrl.rooms.Update(c.Request.Context(), c.Param("id"), form); err != nil {
		respondError(c, err)
		return
	}
	ctrl.respondList(c, http.StatusOK)
}

func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	if err := ctrl.rooms.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	ctrl.respondList(c, http.StatusOK)
}

// UploadImages forwards the multipart body untouched and answers with the
// authoritative post-upload image list.
func (ctrl *RoomController) UploadImages(c *gin.Context) {
	contentType := c.GetHeader("Content-Type")
	if contentType == "" {
		utils.JSONError(c, http.StatusBadRequest, "Se esperaba una carga multipart")
		return
	}

	urls, err := ctrl.rooms.UploadImages(c.Request.Context(), c.Param("id"), contentType, c.Request.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"imageUrls": urls})
}

// DeleteImage removes one image and answers with the remaining list.
func (ctrl *RoomController) DeleteImage(c *gin.Context) {
	urls, err := ctrl.rooms.DeleteImage(c.Request.Context(), c.Param("id"), c.Param("filename"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"imageUrls": urls})
}
