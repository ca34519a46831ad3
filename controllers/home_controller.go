package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"hotel-gateway/models"
	"hotel-gateway/services"
	"hotel-gateway/utils"
)

type HomeController struct {
	rooms     *services.RoomService
	galleries *services.GalleryService
}

func NewHomeController(rooms *services.RoomService, galleries *services.GalleryService) *HomeController {
	return &HomeController{rooms: rooms, galleries: galleries}
}

type homePayload struct {
	Rooms       []models.RoomView    `json:"rooms"`
	PoolImages  []string             `json:"poolImages"`
	FoodImages  []string             `json:"foodImages"`
	Contact     models.ContactConfig `json:"contact"`
	RoomTypes   []string             `json:"roomTypes"`
	Placeholder string               `json:"placeholder"`
}

// GetHome aggregates everything the landing page needs in one answer. The
// room list is the page's backbone, so its failure fails the request; a
// missing gallery just renders empty and the contact link always has a
// fallback.
func (ctrl *HomeController) GetHome(c *gin.Context) {
	ctx := c.Request.Context()
	payload := homePayload{
		RoomTypes:   models.RoomTypes,
		Placeholder: utils.PlaceholderImage,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		views, err := ctrl.rooms.ListViews(gctx)
		if err != nil {
			return err
		}
		payload.Rooms = views
		return nil
	})
	g.Go(func() error {
		if images, err := ctrl.galleries.Pool(gctx); err == nil {
			payload.PoolImages = images
		}
		return nil
	})
	g.Go(func() error {
		if images, err := ctrl.galleries.Food(gctx); err == nil {
			payload.FoodImages = images
		}
		return nil
	})
	g.Go(func() error {
		payload.Contact = ctrl.galleries.Contact(gctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, payload)
}
