package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-gateway/services"
	"hotel-gateway/utils"
)

type GalleryController struct {
	galleries *services.GalleryService
}

func NewGalleryController(galleries *services.GalleryService) *GalleryController {
	return &GalleryController{galleries: galleries}
}

// GetPool answers the pool carousel frame for an index and optional
// navigation direction.
func (ctrl *GalleryController) GetPool(c *gin.Context) {
	images, err := ctrl.galleries.Pool(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondCarousel(c, images)
}

// GetFood answers the restaurant carousel frame.
func (ctrl *GalleryController) GetFood(c *gin.Context) {
	images, err := ctrl.galleries.Food(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondCarousel(c, images)
}

// respondCarousel applies the index/dir query pair to an image list. dir is
// "next" or "prev"; anything else just clamps the index. An empty list pins
// the index to zero and shows the placeholder.
func respondCarousel(c *gin.Context, images []string) {
	index, _ := strconv.Atoi(c.DefaultQuery("index", "0"))
	switch c.Query("dir") {
	case "next":
		index = utils.NextIndex(index, len(images))
	case "prev":
		index = utils.PrevIndex(index, len(images))
	default:
		index = utils.ClampIndex(index, len(images))
	}

	current := utils.PlaceholderImage
	if len(images) > 0 {
		current = images[index]
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"images":  images,
		"index":   index,
		"total":   len(images),
		"current": current,
	})
}
