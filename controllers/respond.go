package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-gateway/services"
	"hotel-gateway/utils"
)

// respondError maps a service error onto the response envelope: local
// validation failures are 400 with the inline message, upstream rejections
// keep their status and message, and anything else is a 502 with the generic
// connectivity message.
func respondError(c *gin.Context, err error) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		utils.JSONError(c, http.StatusBadRequest, verr.Message)
		return
	}

	var apiErr *services.APIError
	if errors.As(err, &apiErr) {
		utils.JSONError(c, apiErr.Status, apiErr.Message)
		return
	}

	utils.JSONError(c, http.StatusBadGateway, services.ErrConnection.Error())
}
