package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lotrinh/internal/services"
	"lotrinh/pkg/utils"
)

type DestinationsController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewDestinationsController(itineraryService services.ItineraryServiceInterface) *DestinationsController {
	return &DestinationsController{itineraryService: itineraryService}
}

func (d *DestinationsController) GetAllDestinations(c *gin.Context) {
	destinations, err := d.itineraryService.ListDestinations(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, destinations)
}
